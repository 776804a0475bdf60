package dto

import (
	"time"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record a payment
// against a sale. Overpayment is accepted and left on the customer account.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"required,oneof=CASH BANK"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	SaleID      string          `json:"saleID"`
	CustomerID  string          `json:"customerID"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"paymentDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		SaleID:      p.SaleID,
		CustomerID:  p.CustomerID,
		Amount:      p.Amount,
		Method:      string(p.Method),
		PaymentDate: p.PaymentDate,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain.Payment.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}

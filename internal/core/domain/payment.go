package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how money physically moved for a payment.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentBank PaymentMethod = "BANK"
)

// Payment records money received from a customer against a sale.
// Immutable once created.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	SaleID      string          `json:"saleID"`
	CustomerID  string          `json:"customerID"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	PaymentDate time.Time       `json:"paymentDate"`
	AuditFields
}

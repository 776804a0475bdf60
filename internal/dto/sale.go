package dto

import (
	"time"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the data needed to record a sale.
// PaidAmount is the cash settled at the counter; zero means fully on credit.
type CreateSaleRequest struct {
	CustomerID   string          `json:"customerID" binding:"required"`
	ProductID    string          `json:"productID" binding:"required"`
	Qty          int64           `json:"qty" binding:"required,gt=0"`
	SellingPrice decimal.Decimal `json:"sellingPrice" binding:"required"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	SaleDate     time.Time       `json:"saleDate" binding:"required"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID       string                `json:"saleID"`
	CustomerID   string                `json:"customerID"`
	ProductID    string                `json:"productID"`
	Qty          int64                 `json:"qty"`
	SellingPrice decimal.Decimal       `json:"sellingPrice"`
	TotalAmount  decimal.Decimal       `json:"totalAmount"`
	PaidAmount   decimal.Decimal       `json:"paidAmount"`
	Profit       decimal.Decimal       `json:"profit"`
	IsFullyPaid  bool                  `json:"isFullyPaid"`
	SaleDate     time.Time             `json:"saleDate"`
	CreatedAt    time.Time             `json:"createdAt"`
	Payments     []PaymentResponse     `json:"payments,omitempty"`
	Returns      []SalesReturnResponse `json:"returns,omitempty"`
}

// ListSalesParams holds parameters for listing sales.
type ListSalesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListSalesResponse is the paginated sale listing.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:       s.SaleID,
		CustomerID:   s.CustomerID,
		ProductID:    s.ProductID,
		Qty:          s.Qty,
		SellingPrice: s.SellingPrice,
		TotalAmount:  s.TotalAmount,
		PaidAmount:   s.PaidAmount,
		Profit:       s.Profit,
		IsFullyPaid:  s.IsFullyPaid,
		SaleDate:     s.SaleDate,
		CreatedAt:    s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of domain.Sale.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}

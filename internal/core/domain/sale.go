package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records stock sold to a customer.
// Profit snapshots the product cost price at the moment of sale; it is not
// recalculated when the cost price later changes. PaidAmount, TotalAmount,
// Profit and IsFullyPaid are mutated in place by payments and sales returns.
type Sale struct {
	SaleID       string          `json:"saleID"`
	CustomerID   string          `json:"customerID"`
	ProductID    string          `json:"productID"`
	Qty          int64           `json:"qty"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	Profit       decimal.Decimal `json:"profit"`
	IsFullyPaid  bool            `json:"isFullyPaid"`
	SaleDate     time.Time       `json:"saleDate"`
	AuditFields
}

// RecalculateFullyPaid refreshes the derived IsFullyPaid flag.
// Overpayment is allowed, so >= rather than ==.
func (s *Sale) RecalculateFullyPaid() {
	s.IsFullyPaid = s.PaidAmount.GreaterThanOrEqual(s.TotalAmount)
}

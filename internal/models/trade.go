package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the purchases table row.
type Purchase struct {
	PurchaseID    string          `db:"purchase_id"`
	SupplierID    string          `db:"supplier_id"`
	ProductID     string          `db:"product_id"`
	Qty           int64           `db:"qty"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PurchaseDate  time.Time       `db:"purchase_date"`
	AuditFields
}

// Sale is the sales table row.
type Sale struct {
	SaleID       string          `db:"sale_id"`
	CustomerID   string          `db:"customer_id"`
	ProductID    string          `db:"product_id"`
	Qty          int64           `db:"qty"`
	SellingPrice decimal.Decimal `db:"selling_price"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	PaidAmount   decimal.Decimal `db:"paid_amount"`
	Profit       decimal.Decimal `db:"profit"`
	IsFullyPaid  bool            `db:"is_fully_paid"`
	SaleDate     time.Time       `db:"sale_date"`
	AuditFields
}

// Payment is the payments table row.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	SaleID      string          `db:"sale_id"`
	CustomerID  string          `db:"customer_id"`
	Amount      decimal.Decimal `db:"amount"`
	Method      string          `db:"method"`
	PaymentDate time.Time       `db:"payment_date"`
	AuditFields
}

// SalesReturn is the sales_returns table row.
type SalesReturn struct {
	ReturnID         string          `db:"return_id"`
	SaleID           string          `db:"sale_id"`
	CustomerID       string          `db:"customer_id"`
	ProductID        string          `db:"product_id"`
	ReturnQty        int64           `db:"return_qty"`
	UnitPrice        decimal.Decimal `db:"unit_price"`
	RefundAmount     decimal.Decimal `db:"refund_amount"`
	RefundMethod     string          `db:"refund_method"`
	ProfitAdjustment decimal.Decimal `db:"profit_adjustment"`
	Reason           string          `db:"reason"`
	ReturnDate       time.Time       `db:"return_date"`
	AuditFields
}

// PurchaseReturn is the purchase_returns table row.
type PurchaseReturn struct {
	ReturnID     string          `db:"return_id"`
	PurchaseID   string          `db:"purchase_id"`
	SupplierID   string          `db:"supplier_id"`
	ProductID    string          `db:"product_id"`
	ReturnQty    int64           `db:"return_qty"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	RefundAmount decimal.Decimal `db:"refund_amount"`
	RefundMethod string          `db:"refund_method"`
	Reason       string          `db:"reason"`
	ReturnDate   time.Time       `db:"return_date"`
	AuditFields
}

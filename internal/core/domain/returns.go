package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundMethod is how a return is settled: cash paid out now, or a
// credit against the outstanding balance.
type RefundMethod string

const (
	RefundCash   RefundMethod = "CASH"
	RefundCredit RefundMethod = "CREDIT"
)

// SalesReturn records stock coming back from a customer.
// UnitPrice snapshots the originating sale's selling price;
// RefundAmount = ReturnQty * UnitPrice. Immutable once created.
type SalesReturn struct {
	ReturnID         string          `json:"returnID"`
	SaleID           string          `json:"saleID"`
	CustomerID       string          `json:"customerID"`
	ProductID        string          `json:"productID"`
	ReturnQty        int64           `json:"returnQty"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	RefundAmount     decimal.Decimal `json:"refundAmount"`
	RefundMethod     RefundMethod    `json:"refundMethod"`
	ProfitAdjustment decimal.Decimal `json:"profitAdjustment"` // Negative: unwinds sale margin
	Reason           string          `json:"reason"`
	ReturnDate       time.Time       `json:"returnDate"`
	AuditFields
}

// PurchaseReturn records stock going back to a supplier.
// UnitPrice snapshots the originating purchase price. Immutable once created.
type PurchaseReturn struct {
	ReturnID     string          `json:"returnID"`
	PurchaseID   string          `json:"purchaseID"`
	SupplierID   string          `json:"supplierID"`
	ProductID    string          `json:"productID"`
	ReturnQty    int64           `json:"returnQty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	RefundAmount decimal.Decimal `json:"refundAmount"`
	RefundMethod RefundMethod    `json:"refundMethod"`
	Reason       string          `json:"reason"`
	ReturnDate   time.Time       `json:"returnDate"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalesReturnRequest defines the data needed to record a sales return.
type CreateSalesReturnRequest struct {
	ReturnQty    int64     `json:"returnQty" binding:"required,gt=0"`
	RefundMethod string    `json:"refundMethod" binding:"required,oneof=CASH CREDIT"`
	Reason       string    `json:"reason"`
	ReturnDate   time.Time `json:"returnDate" binding:"required"`
}

// CreatePurchaseReturnRequest defines the data needed to record a purchase return.
type CreatePurchaseReturnRequest struct {
	ReturnQty    int64     `json:"returnQty" binding:"required,gt=0"`
	RefundMethod string    `json:"refundMethod" binding:"required,oneof=CASH CREDIT"`
	Reason       string    `json:"reason"`
	ReturnDate   time.Time `json:"returnDate" binding:"required"`
}

// SalesReturnResponse defines the data returned for a sales return.
type SalesReturnResponse struct {
	ReturnID         string          `json:"returnID"`
	SaleID           string          `json:"saleID"`
	CustomerID       string          `json:"customerID"`
	ProductID        string          `json:"productID"`
	ReturnQty        int64           `json:"returnQty"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	RefundAmount     decimal.Decimal `json:"refundAmount"`
	RefundMethod     string          `json:"refundMethod"`
	ProfitAdjustment decimal.Decimal `json:"profitAdjustment"`
	Reason           string          `json:"reason"`
	ReturnDate       time.Time       `json:"returnDate"`
}

// PurchaseReturnResponse defines the data returned for a purchase return.
type PurchaseReturnResponse struct {
	ReturnID     string          `json:"returnID"`
	PurchaseID   string          `json:"purchaseID"`
	SupplierID   string          `json:"supplierID"`
	ProductID    string          `json:"productID"`
	ReturnQty    int64           `json:"returnQty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	RefundAmount decimal.Decimal `json:"refundAmount"`
	RefundMethod string          `json:"refundMethod"`
	Reason       string          `json:"reason"`
	ReturnDate   time.Time       `json:"returnDate"`
}

// ToSalesReturnResponse converts a domain.SalesReturn to SalesReturnResponse.
func ToSalesReturnResponse(r *domain.SalesReturn) SalesReturnResponse {
	return SalesReturnResponse{
		ReturnID:         r.ReturnID,
		SaleID:           r.SaleID,
		CustomerID:       r.CustomerID,
		ProductID:        r.ProductID,
		ReturnQty:        r.ReturnQty,
		UnitPrice:        r.UnitPrice,
		RefundAmount:     r.RefundAmount,
		RefundMethod:     string(r.RefundMethod),
		ProfitAdjustment: r.ProfitAdjustment,
		Reason:           r.Reason,
		ReturnDate:       r.ReturnDate,
	}
}

// ToSalesReturnResponses converts a slice of domain.SalesReturn.
func ToSalesReturnResponses(returns []domain.SalesReturn) []SalesReturnResponse {
	responses := make([]SalesReturnResponse, len(returns))
	for i := range returns {
		responses[i] = ToSalesReturnResponse(&returns[i])
	}
	return responses
}

// ToPurchaseReturnResponse converts a domain.PurchaseReturn to PurchaseReturnResponse.
func ToPurchaseReturnResponse(r *domain.PurchaseReturn) PurchaseReturnResponse {
	return PurchaseReturnResponse{
		ReturnID:     r.ReturnID,
		PurchaseID:   r.PurchaseID,
		SupplierID:   r.SupplierID,
		ProductID:    r.ProductID,
		ReturnQty:    r.ReturnQty,
		UnitPrice:    r.UnitPrice,
		RefundAmount: r.RefundAmount,
		RefundMethod: string(r.RefundMethod),
		Reason:       r.Reason,
		ReturnDate:   r.ReturnDate,
	}
}

// ToPurchaseReturnResponses converts a slice of domain.PurchaseReturn.
func ToPurchaseReturnResponses(returns []domain.PurchaseReturn) []PurchaseReturnResponse {
	responses := make([]PurchaseReturnResponse, len(returns))
	for i := range returns {
		responses[i] = ToPurchaseReturnResponse(&returns[i])
	}
	return responses
}

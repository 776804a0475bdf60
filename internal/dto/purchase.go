package dto

import (
	"time"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to record a purchase.
type CreatePurchaseRequest struct {
	SupplierID    string          `json:"supplierID" binding:"required"`
	ProductID     string          `json:"productID" binding:"required"`
	Qty           int64           `json:"qty" binding:"required,gt=0"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" binding:"required"`
	PurchaseDate  time.Time       `json:"purchaseDate" binding:"required"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID    string                   `json:"purchaseID"`
	SupplierID    string                   `json:"supplierID"`
	ProductID     string                   `json:"productID"`
	Qty           int64                    `json:"qty"`
	PurchasePrice decimal.Decimal          `json:"purchasePrice"`
	TotalAmount   decimal.Decimal          `json:"totalAmount"`
	PurchaseDate  time.Time                `json:"purchaseDate"`
	CreatedAt     time.Time                `json:"createdAt"`
	Returns       []PurchaseReturnResponse `json:"returns,omitempty"`
}

// ListPurchasesParams holds parameters for listing purchases.
type ListPurchasesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListPurchasesResponse is the paginated purchase listing.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:    p.PurchaseID,
		SupplierID:    p.SupplierID,
		ProductID:     p.ProductID,
		Qty:           p.Qty,
		PurchasePrice: p.PurchasePrice,
		TotalAmount:   p.TotalAmount,
		PurchaseDate:  p.PurchaseDate,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPurchaseResponses converts a slice of domain.Purchase.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}

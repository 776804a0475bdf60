package dto

import (
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
// Stock starts at zero; it only moves through the trade workflows.
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	CostPrice decimal.Decimal `json:"costPrice" binding:"required"`
	SellPrice decimal.Decimal `json:"sellPrice" binding:"required"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	StockQty  int64           `json:"stockQty"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	IsActive  bool            `json:"isActive"`
}

// ToProductResponse converts a domain.Product to ProductResponse.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		StockQty:  p.StockQty,
		CostPrice: p.CostPrice,
		SellPrice: p.SellPrice,
		IsActive:  p.IsActive,
	}
}

// ToProductResponses converts a slice of domain.Product.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a stocked item. StockQty never goes negative; it is mutated
// only by the purchase, sale and return workflows.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	StockQty  int64           `json:"stockQty"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}

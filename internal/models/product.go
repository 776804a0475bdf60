package models

import (
	"github.com/shopspring/decimal"
)

// Product is the products table row.
// stock_qty carries a CHECK (stock_qty >= 0) constraint as a last line of
// defence behind the workflow checks.
type Product struct {
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	StockQty  int64           `db:"stock_qty"`
	CostPrice decimal.Decimal `db:"cost_price"`
	SellPrice decimal.Decimal `db:"sell_price"`
	IsActive  bool            `db:"is_active"`
	AuditFields
}

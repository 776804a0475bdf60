package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records stock bought from a supplier.
// TotalAmount = Qty * PurchasePrice at creation; purchase returns reduce it.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"`
	SupplierID    string          `json:"supplierID"`
	ProductID     string          `json:"productID"`
	Qty           int64           `json:"qty"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	AuditFields
}

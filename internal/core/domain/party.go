package domain

// Customer is a trade counterparty on the sales side.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"` // Nullable
	Address    string `json:"address"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// Supplier is a trade counterparty on the purchase side.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

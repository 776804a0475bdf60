package models

// Customer is the customers table row.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}

// Supplier is the suppliers table row.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}

package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account is the accounts table row.
// reference_type/reference_id are NULL for system accounts; a partial
// unique index guarantees one system account per type and one account
// per (reference_type, reference_id).
type Account struct {
	AccountID     string          `db:"account_id"`
	Name          string          `db:"name"`
	AccountType   AccountType     `db:"account_type"`
	IsSystem      bool            `db:"is_system"`
	ReferenceType string          `db:"reference_type"` // Nullable
	ReferenceID   string          `db:"reference_id"`   // Nullable
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the ledger_entries table row. Rows are insert-only.
type LedgerEntry struct {
	EntryID         string          `db:"entry_id"`
	AccountID       string          `db:"account_id"`
	TransactionType string          `db:"transaction_type"`
	TransactionID   *string         `db:"transaction_id"` // NULL for manual adjustments
	DebitAmount     decimal.Decimal `db:"debit_amount"`
	CreditAmount    decimal.Decimal `db:"credit_amount"`
	BalanceAfter    decimal.Decimal `db:"balance_after"`
	Narration       string          `db:"narration"`
	EntryDate       time.Time       `db:"entry_date"`
	AuditFields
}

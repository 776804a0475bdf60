package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the business record a ledger entry originates from.
type TransactionType string

const (
	TxnPurchase       TransactionType = "PURCHASE"
	TxnSale           TransactionType = "SALE"
	TxnPayment        TransactionType = "PAYMENT"
	TxnSalesReturn    TransactionType = "SALES_RETURN"
	TxnPurchaseReturn TransactionType = "PURCHASE_RETURN"
	TxnAdjustment     TransactionType = "ADJUSTMENT"
)

// LedgerEntry is one immutable line of the append-only ledger.
// Exactly one of DebitAmount / CreditAmount is non-zero. BalanceAfter is
// the owning account's balance immediately after this entry in entry order.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	AccountID       string          `json:"accountID"`
	TransactionType TransactionType `json:"transactionType"`
	TransactionID   *string         `json:"transactionID,omitempty"` // Nil for manual adjustments
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Narration       string          `json:"narration"`
	EntryDate       time.Time       `json:"entryDate"`
	AuditFields
}

// IsDebit reports whether the entry debits its account.
func (e LedgerEntry) IsDebit() bool {
	return e.DebitAmount.IsPositive()
}

// Signed returns the entry's effect on its account balance:
// debit increases, credit decreases.
func (e LedgerEntry) Signed() decimal.Decimal {
	return e.DebitAmount.Sub(e.CreditAmount)
}

package dto

import (
	"time"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for a ledger account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	AccountType   string          `json:"accountType"`
	IsSystem      bool            `json:"isSystem"`
	ReferenceType string          `json:"referenceType,omitempty"`
	ReferenceID   string          `json:"referenceID,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	AccountID       string          `json:"accountID"`
	TransactionType string          `json:"transactionType"`
	TransactionID   *string         `json:"transactionID,omitempty"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Narration       string          `json:"narration"`
	EntryDate       time.Time       `json:"entryDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListEntriesParams holds parameters for listing an account's ledger entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse is the paginated ledger entry listing.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// CreateAdjustmentRequest defines a manual double-entry adjustment posting.
type CreateAdjustmentRequest struct {
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Narration       string          `json:"narration" binding:"required"`
	EntryDate       time.Time       `json:"entryDate" binding:"required"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		Name:          a.Name,
		AccountType:   string(a.AccountType),
		IsSystem:      a.IsSystem,
		ReferenceType: string(a.ReferenceType),
		ReferenceID:   a.ReferenceID,
		Balance:       a.Balance,
	}
}

// ToAccountResponses converts a slice of domain.Account.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:         e.EntryID,
		AccountID:       e.AccountID,
		TransactionType: string(e.TransactionType),
		TransactionID:   e.TransactionID,
		DebitAmount:     e.DebitAmount,
		CreditAmount:    e.CreditAmount,
		BalanceAfter:    e.BalanceAfter,
		Narration:       e.Narration,
		EntryDate:       e.EntryDate,
		CreatedAt:       e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}

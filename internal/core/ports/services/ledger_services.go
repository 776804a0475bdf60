package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// PostingParams is the input to the double-entry poster: one debit
// account, one credit account, one positive amount.
type PostingParams struct {
	DebitAccountID  string
	CreditAccountID string
	Amount          decimal.Decimal
	TransactionType domain.TransactionType
	TransactionID   *string // Nil only for ADJUSTMENT
	Narration       string
	EntryDate       time.Time
	ActorID         string
}

// LedgerSvcFacade is the double-entry poster and the ledger's read surface.
// PostInTx is the only code path in the system that appends ledger entries
// or moves account balances.
type LedgerSvcFacade interface {
	// PostInTx appends one debit and one credit entry inside the given
	// transaction, stamping each with the account balance after the entry.
	PostInTx(ctx context.Context, tx pgx.Tx, params PostingParams) (debit *domain.LedgerEntry, credit *domain.LedgerEntry, err error)

	// PostAdjustment posts a manual balanced adjustment in its own transaction.
	PostAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, actorID string) ([]domain.LedgerEntry, error)

	// GetEntriesByTransaction retrieves the entries posted for one business record.
	GetEntriesByTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string) ([]domain.LedgerEntry, error)

	// ListAccountEntries retrieves an account's entries newest first with token pagination.
	ListAccountEntries(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
)

// LedgerWriter appends entries to the ledger. Entries are immutable;
// there is no update or delete operation on this port.
type LedgerWriter interface {
	// AppendEntriesInTx inserts ledger entries within a transaction.
	// BalanceAfter must already be stamped by the caller (the poster).
	AppendEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error
}

// LedgerReader defines read operations over the ledger.
type LedgerReader interface {
	// FindEntriesByAccount retrieves an account's entries within a date range,
	// ordered by entry_date then created_at.
	FindEntriesByAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerEntry, error)

	// FindEntriesByTransaction retrieves all entries posted for one business record.
	FindEntriesByTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string) ([]domain.LedgerEntry, error)

	// ListEntriesByAccountID retrieves a paginated list of an account's entries,
	// newest first, using token-based pagination.
	ListEntriesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerRepositoryFacade combines ledger reader and writer.
type LedgerRepositoryFacade interface {
	LedgerWriter
	LedgerReader
}

package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	"github.com/quickstock/shop_ledger_app/internal/models"
	"github.com/quickstock/shop_ledger_app/internal/utils/mapping"
	"github.com/quickstock/shop_ledger_app/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const entryColumns = `entry_id, account_id, transaction_type, transaction_id, debit_amount, credit_amount, balance_after, narration, entry_date, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row rowScanner) (*domain.LedgerEntry, error) {
	var m models.LedgerEntry
	var txnID sql.NullString

	err := row.Scan(
		&m.EntryID,
		&m.AccountID,
		&m.TransactionType,
		&txnID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.BalanceAfter,
		&m.Narration,
		&m.EntryDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if txnID.Valid {
		m.TransactionID = &txnID.String
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// AppendEntriesInTx inserts ledger entries within a transaction. The table
// has no update path; rows only ever get inserted here.
func (r *PgxLedgerRepository) AppendEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)
		batch.Queue(query,
			m.EntryID,
			m.AccountID,
			m.TransactionType,
			m.TransactionID,
			m.DebitAmount,
			m.CreditAmount,
			m.BalanceAfter,
			m.Narration,
			m.EntryDate,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to append ledger entries: %w", err)
	}
	return nil
}

// FindEntriesByAccount retrieves an account's entries within a date range,
// ordered by entry_date then insertion order.
func (r *PgxLedgerRepository) FindEntriesByAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE account_id = $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY entry_date, created_at;
	`
	rows, err := r.pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// FindEntriesByTransaction retrieves all entries posted for one business record.
func (r *PgxLedgerRepository) FindEntriesByTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE transaction_type = $1 AND transaction_id = $2
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, string(txnType), transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for %s %s: %w", txnType, transactionID, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListEntriesByAccountID retrieves a paginated list of an account's entries,
// newest first, using token-based pagination over (entry_date, created_at).
func (r *PgxLedgerRepository) ListEntriesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE account_id = $1
	`
	orderByClause := `ORDER BY entry_date DESC, created_at DESC`

	args := []interface{}{accountID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastEntryDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("invalid nextToken: %w", decodeErr)
		}
		query += ` AND (entry_date, created_at) < ($2, $3)`
		args = append(args, lastEntryDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		nextTokenVal = &token
		entries = entries[:limit]
	}
	return entries, nextTokenVal, nil
}

func collectEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	entries := []domain.LedgerEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	"github.com/quickstock/shop_ledger_app/internal/models"
	"github.com/quickstock/shop_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

func newAccountID() string {
	return uuid.NewString()
}

// systemAccountName derives the display name for a system account, e.g.
// "SALES_RETURN" -> "Sales Return".
func systemAccountName(accountType domain.AccountType) string {
	words := strings.Split(strings.ToLower(string(accountType)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, account_type, is_system, reference_type, reference_id, balance, created_at, created_by, last_updated_at, last_updated_by`

// rowScanner abstracts pgx.Row / pgx.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var m models.Account
	var refType, refID sql.NullString

	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.AccountType,
		&m.IsSystem,
		&refType,
		&refID,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if refType.Valid {
		m.ReferenceType = refType.String
	}
	if refID.Valid {
		m.ReferenceID = refID.String
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	acc, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return acc, nil
}

// FindSystemAccount retrieves the singleton account for a system account type.
func (r *PgxAccountRepository) FindSystemAccount(ctx context.Context, accountType domain.AccountType) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_type = $1 AND is_system;`

	acc, err := scanAccount(r.pool.QueryRow(ctx, query, string(accountType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find system account %s: %w", accountType, err)
	}
	return acc, nil
}

// FindReferenceAccount retrieves the account owned by a customer or supplier.
func (r *PgxAccountRepository) FindReferenceAccount(ctx context.Context, refType domain.ReferenceType, refID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE reference_type = $1 AND reference_id = $2;`

	acc, err := scanAccount(r.pool.QueryRow(ctx, query, string(refType), refID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s account for %s: %w", refType, refID, err)
	}
	return acc, nil
}

// ListAccounts retrieves all accounts ordered by type then name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_type, name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// GetOrCreateSystemAccountInTx resolves the singleton system account for a
// type, creating it on first use. The insert races safely on the partial
// unique index over (account_type) WHERE is_system: a concurrent creator
// wins and the follow-up select returns its row.
func (r *PgxAccountRepository) GetOrCreateSystemAccountInTx(ctx context.Context, tx pgx.Tx, accountType domain.AccountType, actorID string, now time.Time) (*domain.Account, error) {
	selectQuery := `SELECT ` + accountColumns + ` FROM accounts WHERE account_type = $1 AND is_system;`

	acc, err := scanAccount(tx.QueryRow(ctx, selectQuery, string(accountType)))
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find system account %s: %w", accountType, err)
	}

	insertQuery := `
		INSERT INTO accounts (account_id, name, account_type, is_system, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, TRUE, 0, $4, $5, $4, $5)
		ON CONFLICT (account_type) WHERE is_system DO NOTHING;
	`
	if _, err := tx.Exec(ctx, insertQuery,
		newAccountID(), systemAccountName(accountType), string(accountType), now, actorID,
	); err != nil {
		return nil, fmt.Errorf("failed to insert system account %s: %w", accountType, err)
	}

	acc, err = scanAccount(tx.QueryRow(ctx, selectQuery, string(accountType)))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch system account %s after insert: %w", accountType, err)
	}
	return acc, nil
}

// GetOrCreateReferenceAccountInTx resolves the account owned by a customer
// or supplier, creating it on first use. Same insert-or-fetch pattern over
// the unique index on (reference_type, reference_id).
func (r *PgxAccountRepository) GetOrCreateReferenceAccountInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID string, name string, actorID string, now time.Time) (*domain.Account, error) {
	selectQuery := `SELECT ` + accountColumns + ` FROM accounts WHERE reference_type = $1 AND reference_id = $2;`

	acc, err := scanAccount(tx.QueryRow(ctx, selectQuery, string(refType), refID))
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find %s account for %s: %w", refType, refID, err)
	}

	accountType := domain.AccountCustomer
	if refType == domain.ReferenceSupplier {
		accountType = domain.AccountSupplier
	}

	insertQuery := `
		INSERT INTO accounts (account_id, name, account_type, is_system, reference_type, reference_id, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, FALSE, $4, $5, 0, $6, $7, $6, $7)
		ON CONFLICT (reference_type, reference_id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, insertQuery,
		newAccountID(), name, string(accountType), string(refType), refID, now, actorID,
	); err != nil {
		return nil, fmt.Errorf("failed to insert %s account for %s: %w", refType, refID, err)
	}

	acc, err = scanAccount(tx.QueryRow(ctx, selectQuery, string(refType), refID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s account for %s after insert: %w", refType, refID, err)
	}
	return acc, nil
}

// FindAccountsByIDsForUpdate selects accounts and locks them for update
// within a transaction. Rows are locked in account_id order so concurrent
// posters acquire locks in a consistent order. Ids with no matching row
// are simply absent from the result map.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	sorted := make([]string, len(accountIDs))
	copy(sorted, accountIDs)
	sort.Strings(sorted)

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, sorted)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts for update: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account, len(sorted))
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accountsMap[acc.AccountID] = *acc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}
	return accountsMap, nil
}

// UpdateAccountBalancesInTx applies balance deltas within a transaction.
// Callers must hold FOR UPDATE locks on the affected rows.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, actorID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = balance + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE account_id = $1;
	`

	// Apply in sorted id order for determinism.
	ids := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(query, id, balanceChanges[id], now, actorID)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to update account balances: %w", err)
	}
	return nil
}

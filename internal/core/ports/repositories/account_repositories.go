package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindSystemAccount retrieves the singleton account for a system account type.
	FindSystemAccount(ctx context.Context, accountType domain.AccountType) (*domain.Account, error)

	// FindReferenceAccount retrieves the account owned by a customer or supplier.
	FindReferenceAccount(ctx context.Context, refType domain.ReferenceType, refID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by type then name.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountResolver defines the race-free get-or-create operations.
// Both rely on unique indexes plus insert-or-fetch, so concurrent first
// use cannot create duplicates.
type AccountResolver interface {
	// GetOrCreateSystemAccountInTx resolves the singleton system account
	// for the given type, creating it on first use.
	GetOrCreateSystemAccountInTx(ctx context.Context, tx pgx.Tx, accountType domain.AccountType, actorID string, now time.Time) (*domain.Account, error)

	// GetOrCreateReferenceAccountInTx resolves the account owned by the
	// given customer/supplier, creating it on first use.
	GetOrCreateReferenceAccountInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID string, name string, actorID string, now time.Time) (*domain.Account, error)
}

// AccountTransactionSupport defines operations used by the ledger poster
// inside a posting transaction.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	// Ids with no matching row are omitted from the result map.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx applies balance deltas for multiple accounts within a transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, actorID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountResolver
	AccountTransactionSupport
}

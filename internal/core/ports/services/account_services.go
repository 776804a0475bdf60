package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
)

// AccountSvcFacade resolves and reads ledger accounts.
// The get-or-create operations are explicit, idempotent writes: safe to
// call on every workflow invocation, race-free on first use.
type AccountSvcFacade interface {
	// GetOrCreateSystemAccountInTx resolves a singleton system account inside
	// a workflow transaction.
	GetOrCreateSystemAccountInTx(ctx context.Context, tx pgx.Tx, accountType domain.AccountType, actorID string) (*domain.Account, error)

	// GetOrCreateCustomerAccountInTx resolves the account owned by a customer.
	// Fails with ErrReferenceNotFound when the customer does not exist.
	GetOrCreateCustomerAccountInTx(ctx context.Context, tx pgx.Tx, customerID string, actorID string) (*domain.Account, error)

	// GetOrCreateSupplierAccountInTx resolves the account owned by a supplier.
	// Fails with ErrReferenceNotFound when the supplier does not exist.
	GetOrCreateSupplierAccountInTx(ctx context.Context, tx pgx.Tx, supplierID string, actorID string) (*domain.Account, error)

	// GetAccountByID retrieves an account by id.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetCustomerAccount retrieves the account owned by a customer, without creating it.
	GetCustomerAccount(ctx context.Context, customerID string) (*domain.Account, error)

	// GetSupplierAccount retrieves the account owned by a supplier, without creating it.
	GetSupplierAccount(ctx context.Context, supplierID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

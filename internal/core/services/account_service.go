package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
)

// accountService resolves ledger accounts. Customer and supplier accounts
// are created lazily on first use; system accounts on first posting.
type accountService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// GetOrCreateSystemAccountInTx resolves a singleton system account inside
// a workflow transaction.
func (s *accountService) GetOrCreateSystemAccountInTx(ctx context.Context, tx pgx.Tx, accountType domain.AccountType, actorID string) (*domain.Account, error) {
	account, err := s.accountRepo.GetOrCreateSystemAccountInTx(ctx, tx, accountType, actorID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve system account %s: %w", accountType, err)
	}
	return account, nil
}

// GetOrCreateCustomerAccountInTx resolves the account owned by a customer,
// verifying the customer exists first.
func (s *accountService) GetOrCreateCustomerAccountInTx(ctx context.Context, tx pgx.Tx, customerID string, actorID string) (*domain.Account, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrReferenceNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}

	account, err := s.accountRepo.GetOrCreateReferenceAccountInTx(ctx, tx, domain.ReferenceCustomer, customerID, customer.Name, actorID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account for customer %s: %w", customerID, err)
	}
	return account, nil
}

// GetOrCreateSupplierAccountInTx resolves the account owned by a supplier,
// verifying the supplier exists first.
func (s *accountService) GetOrCreateSupplierAccountInTx(ctx context.Context, tx pgx.Tx, supplierID string, actorID string) (*domain.Account, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrReferenceNotFound, supplierID)
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}

	account, err := s.accountRepo.GetOrCreateReferenceAccountInTx(ctx, tx, domain.ReferenceSupplier, supplierID, supplier.Name, actorID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account for supplier %s: %w", supplierID, err)
	}
	return account, nil
}

// GetAccountByID retrieves an account by id.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// GetCustomerAccount retrieves the account owned by a customer, without creating it.
func (s *accountService) GetCustomerAccount(ctx context.Context, customerID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindReferenceAccount(ctx, domain.ReferenceCustomer, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for customer %s: %w", customerID, err)
	}
	return account, nil
}

// GetSupplierAccount retrieves the account owned by a supplier, without creating it.
func (s *accountService) GetSupplierAccount(ctx context.Context, supplierID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindReferenceAccount(ctx, domain.ReferenceSupplier, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for supplier %s: %w", supplierID, err)
	}
	return account, nil
}

// ListAccounts retrieves all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
)

// reportingService builds the read-only statement and summary views.
type reportingService struct {
	accountRepo   portsrepo.AccountRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	customerRepo  portsrepo.CustomerRepositoryFacade
	supplierRepo  portsrepo.SupplierRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:   accountRepo,
		ledgerRepo:    ledgerRepo,
		customerRepo:  customerRepo,
		supplierRepo:  supplierRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// statementRange resolves the optional from/to bounds. An open lower
// bound starts at the zero time; an open upper bound ends now.
func statementRange(params dto.StatementParams) (time.Time, time.Time) {
	from := time.Time{}
	if params.From != nil {
		from = *params.From
	}
	to := time.Now().UTC()
	if params.To != nil {
		// Make the upper bound inclusive of the named day.
		to = params.To.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to
}

// buildStatement assembles an account statement over a date range.
// ClosingBalance is the account's current balance, not a range total.
func (s *reportingService) buildStatement(ctx context.Context, account domain.Account, params dto.StatementParams) (*domain.AccountStatement, error) {
	from, to := statementRange(params)
	entries, err := s.ledgerRepo.FindEntriesByAccount(ctx, account.AccountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for account %s: %w", account.AccountID, err)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.DebitAmount)
		totalCredit = totalCredit.Add(e.CreditAmount)
	}

	return &domain.AccountStatement{
		Account:        account,
		Entries:        entries,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		ClosingBalance: account.Balance,
	}, nil
}

// AccountStatement returns an account's ordered entries over a date range.
func (s *reportingService) AccountStatement(ctx context.Context, accountID string, params dto.StatementParams) (*domain.AccountStatement, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return s.buildStatement(ctx, *account, params)
}

// CustomerStatement returns a customer's statement with sales, payments
// and returns subtotals. A customer with no trades yet gets an empty
// statement rather than a NotFound.
func (s *reportingService) CustomerStatement(ctx context.Context, customerID string, params dto.StatementParams) (*domain.PartyStatement, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}

	account, err := s.accountRepo.FindReferenceAccount(ctx, domain.ReferenceCustomer, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return emptyPartyStatement(customer.Name, domain.AccountCustomer, domain.ReferenceCustomer, customerID), nil
		}
		return nil, fmt.Errorf("failed to find account for customer %s: %w", customerID, err)
	}

	statement, err := s.buildStatement(ctx, *account, params)
	if err != nil {
		return nil, err
	}

	// Sales debit the customer; settlements and payments credit it.
	trade := decimal.Zero
	payments := decimal.Zero
	returns := decimal.Zero
	for _, e := range statement.Entries {
		switch e.TransactionType {
		case domain.TxnSale:
			if e.IsDebit() {
				trade = trade.Add(e.DebitAmount)
			} else {
				payments = payments.Add(e.CreditAmount)
			}
		case domain.TxnPayment:
			payments = payments.Add(e.CreditAmount)
		case domain.TxnSalesReturn:
			returns = returns.Add(e.CreditAmount)
		}
	}

	return &domain.PartyStatement{
		AccountStatement: *statement,
		TradeTotal:       trade,
		PaymentsTotal:    payments,
		ReturnsTotal:     returns,
	}, nil
}

// SupplierStatement returns a supplier's statement with purchases,
// payments and returns subtotals.
func (s *reportingService) SupplierStatement(ctx context.Context, supplierID string, params dto.StatementParams) (*domain.PartyStatement, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}

	account, err := s.accountRepo.FindReferenceAccount(ctx, domain.ReferenceSupplier, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return emptyPartyStatement(supplier.Name, domain.AccountSupplier, domain.ReferenceSupplier, supplierID), nil
		}
		return nil, fmt.Errorf("failed to find account for supplier %s: %w", supplierID, err)
	}

	statement, err := s.buildStatement(ctx, *account, params)
	if err != nil {
		return nil, err
	}

	// Purchases credit the supplier; returns and settlements debit it.
	trade := decimal.Zero
	payments := decimal.Zero
	returns := decimal.Zero
	for _, e := range statement.Entries {
		switch e.TransactionType {
		case domain.TxnPurchase:
			trade = trade.Add(e.CreditAmount)
		case domain.TxnPayment:
			payments = payments.Add(e.DebitAmount)
		case domain.TxnPurchaseReturn:
			returns = returns.Add(e.DebitAmount)
		}
	}

	return &domain.PartyStatement{
		AccountStatement: *statement,
		TradeTotal:       trade,
		PaymentsTotal:    payments,
		ReturnsTotal:     returns,
	}, nil
}

func emptyPartyStatement(name string, accountType domain.AccountType, refType domain.ReferenceType, refID string) *domain.PartyStatement {
	return &domain.PartyStatement{
		AccountStatement: domain.AccountStatement{
			Account: domain.Account{
				Name:          name,
				AccountType:   accountType,
				ReferenceType: refType,
				ReferenceID:   refID,
				Balance:       decimal.Zero,
			},
			Entries:        []domain.LedgerEntry{},
			TotalDebit:     decimal.Zero,
			TotalCredit:    decimal.Zero,
			ClosingBalance: decimal.Zero,
		},
		TradeTotal:    decimal.Zero,
		PaymentsTotal: decimal.Zero,
		ReturnsTotal:  decimal.Zero,
	}
}

// AccountsSummary aggregates current balances across all accounts.
// Customer accounts carry positive balances when customers owe the shop;
// supplier accounts carry negative balances when the shop owes suppliers.
func (s *reportingService) AccountsSummary(ctx context.Context) (*domain.AccountsSummary, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summary := &domain.AccountsSummary{
		Accounts:    accounts,
		CashBalance: decimal.Zero,
		BankBalance: decimal.Zero,
		Receivables: decimal.Zero,
		Payables:    decimal.Zero,
	}
	for _, a := range accounts {
		switch a.AccountType {
		case domain.AccountCash:
			summary.CashBalance = a.Balance
		case domain.AccountBank:
			summary.BankBalance = a.Balance
		case domain.AccountCustomer:
			if a.Balance.IsPositive() {
				summary.Receivables = summary.Receivables.Add(a.Balance)
			}
		case domain.AccountSupplier:
			if a.Balance.IsNegative() {
				summary.Payables = summary.Payables.Add(a.Balance.Neg())
			}
		}
	}
	return summary, nil
}

// FinancialSummary computes the headline trading totals.
func (s *reportingService) FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	summary, err := s.reportingRepo.GetFinancialSummary(ctx)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

package services

import (
	"context"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/quickstock/shop_ledger_app/internal/dto"
)

// ReportingSvcFacade provides the read-only statement and summary views.
// These are pure projections over accounts and the ledger: no mutation,
// no failure modes beyond NotFound on the owning entity.
type ReportingSvcFacade interface {
	// AccountStatement returns an account's ordered entries over a date
	// range with debit/credit totals and the current balance.
	AccountStatement(ctx context.Context, accountID string, params dto.StatementParams) (*domain.AccountStatement, error)

	// CustomerStatement returns the statement for a customer's account
	// with sales/payments/returns subtotals.
	CustomerStatement(ctx context.Context, customerID string, params dto.StatementParams) (*domain.PartyStatement, error)

	// SupplierStatement returns the statement for a supplier's account
	// with purchases/payments/returns subtotals.
	SupplierStatement(ctx context.Context, supplierID string, params dto.StatementParams) (*domain.PartyStatement, error)

	// AccountsSummary aggregates current balances across all accounts.
	AccountsSummary(ctx context.Context) (*domain.AccountsSummary, error)

	// FinancialSummary computes the headline trading totals.
	FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error)
}

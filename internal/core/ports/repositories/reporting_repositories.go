package repositories

import (
	"context"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
)

// ReportingRepository provides aggregate read projections for reports.
type ReportingRepository interface {
	// GetFinancialSummary computes the headline trading totals over all
	// sales and purchases.
	GetFinancialSummary(ctx context.Context) (*domain.FinancialSummary, error)
}

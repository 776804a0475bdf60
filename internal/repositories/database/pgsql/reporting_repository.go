package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for report projections.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetFinancialSummary computes the headline trading totals over all sales
// and purchases in a single round trip.
func (r *PgxReportingRepository) GetFinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(total_amount), 0) FROM sales)                                          AS total_revenue,
			(SELECT COALESCE(SUM(total_amount), 0) FROM purchases)                                      AS total_expenses,
			(SELECT COALESCE(SUM(total_amount - paid_amount), 0) FROM sales WHERE NOT is_fully_paid)    AS outstanding_receivables,
			(SELECT COALESCE(SUM(profit), 0) FROM sales)                                                AS gross_profit;
	`
	var revenue, expenses, outstanding, gross decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&revenue, &expenses, &outstanding, &gross); err != nil {
		return nil, fmt.Errorf("failed to compute financial summary: %w", err)
	}
	return &domain.FinancialSummary{
		TotalRevenue:           revenue,
		TotalExpenses:          expenses,
		OutstandingReceivables: outstanding,
		NetProfit:              revenue.Sub(expenses),
		GrossProfit:            gross,
	}, nil
}

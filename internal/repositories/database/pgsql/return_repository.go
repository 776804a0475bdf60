package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	"github.com/quickstock/shop_ledger_app/internal/models"
	"github.com/quickstock/shop_ledger_app/internal/utils/mapping"
)

type PgxReturnRepository struct {
	pool *pgxpool.Pool
}

// newPgxReturnRepository creates a new repository for sales and purchase returns.
func newPgxReturnRepository(pool *pgxpool.Pool) portsrepo.ReturnRepositoryFacade {
	return &PgxReturnRepository{pool: pool}
}

var _ portsrepo.ReturnRepositoryFacade = (*PgxReturnRepository)(nil)

const salesReturnColumns = `return_id, sale_id, customer_id, product_id, return_qty, unit_price, refund_amount, refund_method, profit_adjustment, reason, return_date, created_at, created_by, last_updated_at, last_updated_by`

const purchaseReturnColumns = `return_id, purchase_id, supplier_id, product_id, return_qty, unit_price, refund_amount, refund_method, reason, return_date, created_at, created_by, last_updated_at, last_updated_by`

// SaveSalesReturnInTx inserts a sales return within a workflow transaction.
func (r *PgxReturnRepository) SaveSalesReturnInTx(ctx context.Context, tx pgx.Tx, ret domain.SalesReturn) error {
	m := mapping.ToModelSalesReturn(ret)
	query := `
		INSERT INTO sales_returns (` + salesReturnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.ReturnID, m.SaleID, m.CustomerID, m.ProductID, m.ReturnQty, m.UnitPrice,
		m.RefundAmount, m.RefundMethod, m.ProfitAdjustment, m.Reason, m.ReturnDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sales return %s: %w", m.ReturnID, err)
	}
	return nil
}

// SavePurchaseReturnInTx inserts a purchase return within a workflow transaction.
func (r *PgxReturnRepository) SavePurchaseReturnInTx(ctx context.Context, tx pgx.Tx, ret domain.PurchaseReturn) error {
	m := mapping.ToModelPurchaseReturn(ret)
	query := `
		INSERT INTO purchase_returns (` + purchaseReturnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.ReturnID, m.PurchaseID, m.SupplierID, m.ProductID, m.ReturnQty, m.UnitPrice,
		m.RefundAmount, m.RefundMethod, m.Reason, m.ReturnDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase return %s: %w", m.ReturnID, err)
	}
	return nil
}

// SumSalesReturnQtyInTx totals return_qty over a sale's returns.
func (r *PgxReturnRepository) SumSalesReturnQtyInTx(ctx context.Context, tx pgx.Tx, saleID string) (int64, error) {
	query := `SELECT COALESCE(SUM(return_qty), 0) FROM sales_returns WHERE sale_id = $1;`
	var total int64
	if err := tx.QueryRow(ctx, query, saleID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum returned qty for sale %s: %w", saleID, err)
	}
	return total, nil
}

// SumPurchaseReturnQtyInTx totals return_qty over a purchase's returns.
func (r *PgxReturnRepository) SumPurchaseReturnQtyInTx(ctx context.Context, tx pgx.Tx, purchaseID string) (int64, error) {
	query := `SELECT COALESCE(SUM(return_qty), 0) FROM purchase_returns WHERE purchase_id = $1;`
	var total int64
	if err := tx.QueryRow(ctx, query, purchaseID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum returned qty for purchase %s: %w", purchaseID, err)
	}
	return total, nil
}

// FindSalesReturnsBySaleID retrieves all returns recorded against a sale.
func (r *PgxReturnRepository) FindSalesReturnsBySaleID(ctx context.Context, saleID string) ([]domain.SalesReturn, error) {
	query := `
		SELECT ` + salesReturnColumns + `
		FROM sales_returns
		WHERE sale_id = $1
		ORDER BY return_date, created_at;
	`
	rows, err := r.pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query returns for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	returns := []domain.SalesReturn{}
	for rows.Next() {
		var m models.SalesReturn
		if err := rows.Scan(
			&m.ReturnID, &m.SaleID, &m.CustomerID, &m.ProductID, &m.ReturnQty, &m.UnitPrice,
			&m.RefundAmount, &m.RefundMethod, &m.ProfitAdjustment, &m.Reason, &m.ReturnDate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sales return row: %w", err)
		}
		returns = append(returns, mapping.ToDomainSalesReturn(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales return rows: %w", err)
	}
	return returns, nil
}

// FindPurchaseReturnsByPurchaseID retrieves all returns recorded against a purchase.
func (r *PgxReturnRepository) FindPurchaseReturnsByPurchaseID(ctx context.Context, purchaseID string) ([]domain.PurchaseReturn, error) {
	query := `
		SELECT ` + purchaseReturnColumns + `
		FROM purchase_returns
		WHERE purchase_id = $1
		ORDER BY return_date, created_at;
	`
	rows, err := r.pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query returns for purchase %s: %w", purchaseID, err)
	}
	defer rows.Close()

	returns := []domain.PurchaseReturn{}
	for rows.Next() {
		var m models.PurchaseReturn
		if err := rows.Scan(
			&m.ReturnID, &m.PurchaseID, &m.SupplierID, &m.ProductID, &m.ReturnQty, &m.UnitPrice,
			&m.RefundAmount, &m.RefundMethod, &m.Reason, &m.ReturnDate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase return row: %w", err)
		}
		returns = append(returns, mapping.ToDomainPurchaseReturn(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase return rows: %w", err)
	}
	return returns, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	"github.com/quickstock/shop_ledger_app/internal/models"
	"github.com/quickstock/shop_ledger_app/internal/utils/mapping"
	"github.com/quickstock/shop_ledger_app/internal/utils/pagination"
)

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// newPgxSaleRepository creates a new repository for sale records.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{pool: pool}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, customer_id, product_id, qty, selling_price, total_amount, paid_amount, profit, is_fully_paid, sale_date, created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row rowScanner) (*domain.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.CustomerID,
		&m.ProductID,
		&m.Qty,
		&m.SellingPrice,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.Profit,
		&m.IsFullyPaid,
		&m.SaleDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	s := mapping.ToDomainSale(m)
	return &s, nil
}

// SaveSaleInTx inserts a sale within a workflow transaction.
func (r *PgxSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.SaleID, m.CustomerID, m.ProductID, m.Qty, m.SellingPrice,
		m.TotalAmount, m.PaidAmount, m.Profit, m.IsFullyPaid, m.SaleDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale %s: %w", m.SaleID, err)
	}
	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`

	sale, err := scanSale(r.pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}
	return sale, nil
}

// FindSaleByIDForUpdate selects a sale and locks its row within a
// transaction. Concurrent payments and returns on the same sale serialize
// here, so the returnable-quantity check reads a stable total.
func (r *PgxSaleRepository) FindSaleByIDForUpdate(ctx context.Context, tx pgx.Tx, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1 FOR UPDATE;`

	sale, err := scanSale(tx.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock sale %s for update: %w", saleID, err)
	}
	return sale, nil
}

// UpdateSaleTotalsInTx rewrites a sale's mutable monetary fields.
func (r *PgxSaleRepository) UpdateSaleTotalsInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		UPDATE sales
		SET total_amount = $2,
		    paid_amount = $3,
		    profit = $4,
		    is_fully_paid = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE sale_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.SaleID, m.TotalAmount, m.PaidAmount, m.Profit, m.IsFullyPaid,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update sale %s: %w", m.SaleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sale %s: %w", m.SaleID, apperrors.ErrNotFound)
	}
	return nil
}

// ListSales retrieves sales newest first with token pagination over
// (sale_date, created_at).
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + saleColumns + ` FROM sales`
	orderByClause := `ORDER BY sale_date DESC, created_at DESC`

	args := []interface{}{}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("invalid nextToken: %w", decodeErr)
		}
		query += ` WHERE (sale_date, created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	var nextTokenVal *string
	if len(sales) > limit {
		last := sales[limit-1]
		token := pagination.EncodeToken(last.SaleDate, last.CreatedAt)
		nextTokenVal = &token
		sales = sales[:limit]
	}
	return sales, nextTokenVal, nil
}

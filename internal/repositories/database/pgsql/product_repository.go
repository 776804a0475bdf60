package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	"github.com/quickstock/shop_ledger_app/internal/models"
	"github.com/quickstock/shop_ledger_app/internal/utils/mapping"
)

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{pool: pool}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, stock_qty, cost_price, sell_price, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row rowScanner) (*domain.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.StockQty,
		&m.CostPrice,
		&m.SellPrice,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.StockQty,
		m.CostPrice,
		m.SellPrice,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product with ID %s already exists", apperrors.ErrDuplicate, m.ProductID)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts retrieves a paginated list of active products.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// FindProductByIDForUpdate selects a product and locks its row within a
// transaction. This serializes concurrent check-and-decrement on the same
// product: the second workflow blocks here until the first commits.
func (r *PgxProductRepository) FindProductByIDForUpdate(ctx context.Context, tx pgx.Tx, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 FOR UPDATE;`

	product, err := scanProduct(tx.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock product %s for update: %w", productID, err)
	}
	return product, nil
}

// AdjustStockInTx applies a stock delta to an already-locked product row.
// The CHECK (stock_qty >= 0) constraint backstops the workflow-level check.
func (r *PgxProductRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int64, actorID string, now time.Time) error {
	query := `
		UPDATE products
		SET stock_qty = stock_qty + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE product_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, productID, delta, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}
	return nil
}

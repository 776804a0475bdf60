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

type PgxPurchaseRepository struct {
	pool *pgxpool.Pool
}

// newPgxPurchaseRepository creates a new repository for purchase records.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{pool: pool}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, supplier_id, product_id, qty, purchase_price, total_amount, purchase_date, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchase(row rowScanner) (*domain.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID,
		&m.SupplierID,
		&m.ProductID,
		&m.Qty,
		&m.PurchasePrice,
		&m.TotalAmount,
		&m.PurchaseDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPurchase(m)
	return &p, nil
}

// SavePurchaseInTx inserts a purchase within a workflow transaction.
func (r *PgxPurchaseRepository) SavePurchaseInTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.PurchaseID, m.SupplierID, m.ProductID, m.Qty, m.PurchasePrice,
		m.TotalAmount, m.PurchaseDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase %s: %w", m.PurchaseID, err)
	}
	return nil
}

// FindPurchaseByID retrieves a purchase by its ID.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`

	purchase, err := scanPurchase(r.pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}
	return purchase, nil
}

// FindPurchaseByIDForUpdate selects a purchase and locks its row within a
// transaction. Concurrent returns against the same purchase serialize here.
func (r *PgxPurchaseRepository) FindPurchaseByIDForUpdate(ctx context.Context, tx pgx.Tx, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1 FOR UPDATE;`

	purchase, err := scanPurchase(tx.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock purchase %s for update: %w", purchaseID, err)
	}
	return purchase, nil
}

// UpdatePurchaseTotalsInTx rewrites a purchase's mutable monetary fields.
func (r *PgxPurchaseRepository) UpdatePurchaseTotalsInTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	query := `
		UPDATE purchases
		SET total_amount = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE purchase_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, m.PurchaseID, m.TotalAmount, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update purchase %s: %w", m.PurchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("purchase %s: %w", m.PurchaseID, apperrors.ErrNotFound)
	}
	return nil
}

// ListPurchases retrieves purchases newest first with token pagination
// over (purchase_date, created_at).
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, limit int, nextToken *string) ([]domain.Purchase, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + purchaseColumns + ` FROM purchases`
	orderByClause := `ORDER BY purchase_date DESC, created_at DESC`

	args := []interface{}{}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("invalid nextToken: %w", decodeErr)
		}
		query += ` WHERE (purchase_date, created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}

	var nextTokenVal *string
	if len(purchases) > limit {
		last := purchases[limit-1]
		token := pagination.EncodeToken(last.PurchaseDate, last.CreatedAt)
		nextTokenVal = &token
		purchases = purchases[:limit]
	}
	return purchases, nextTokenVal, nil
}

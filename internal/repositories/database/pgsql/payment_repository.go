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

type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

// newPgxPaymentRepository creates a new repository for payment records.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{pool: pool}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, sale_id, customer_id, amount, method, payment_date, created_at, created_by, last_updated_at, last_updated_by`

// SavePaymentInTx inserts a payment within a workflow transaction.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID, m.SaleID, m.CustomerID, m.Amount, m.Method, m.PaymentDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// FindPaymentsBySaleID retrieves all payments recorded against a sale.
func (r *PgxPaymentRepository) FindPaymentsBySaleID(ctx context.Context, saleID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE sale_id = $1
		ORDER BY payment_date, created_at;
	`
	rows, err := r.pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID, &m.SaleID, &m.CustomerID, &m.Amount, &m.Method, &m.PaymentDate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

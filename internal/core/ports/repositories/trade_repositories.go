package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
)

// PurchaseRepositoryFacade defines operations for purchase records.
type PurchaseRepositoryFacade interface {
	// SavePurchaseInTx inserts a purchase within a workflow transaction.
	SavePurchaseInTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error

	// FindPurchaseByID retrieves a purchase by its unique identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// FindPurchaseByIDForUpdate selects a purchase and locks its row within a
	// transaction, serializing concurrent returns against the same purchase.
	FindPurchaseByIDForUpdate(ctx context.Context, tx pgx.Tx, purchaseID string) (*domain.Purchase, error)

	// UpdatePurchaseTotalsInTx rewrites a purchase's mutable monetary fields.
	UpdatePurchaseTotalsInTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error

	// ListPurchases retrieves purchases newest first with token pagination.
	ListPurchases(ctx context.Context, limit int, nextToken *string) ([]domain.Purchase, *string, error)
}

// SaleRepositoryFacade defines operations for sale records.
type SaleRepositoryFacade interface {
	// SaveSaleInTx inserts a sale within a workflow transaction.
	SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error

	// FindSaleByID retrieves a sale by its unique identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSaleByIDForUpdate selects a sale and locks its row within a
	// transaction, serializing concurrent payments/returns on the same sale.
	FindSaleByIDForUpdate(ctx context.Context, tx pgx.Tx, saleID string) (*domain.Sale, error)

	// UpdateSaleTotalsInTx rewrites a sale's mutable monetary fields
	// (total_amount, paid_amount, profit, is_fully_paid).
	UpdateSaleTotalsInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error

	// ListSales retrieves sales newest first with token pagination.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// PaymentRepositoryFacade defines operations for payment records.
type PaymentRepositoryFacade interface {
	// SavePaymentInTx inserts a payment within a workflow transaction.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// FindPaymentsBySaleID retrieves all payments recorded against a sale.
	FindPaymentsBySaleID(ctx context.Context, saleID string) ([]domain.Payment, error)
}

// ReturnRepositoryFacade defines operations for sales and purchase returns.
type ReturnRepositoryFacade interface {
	// SaveSalesReturnInTx inserts a sales return within a workflow transaction.
	SaveSalesReturnInTx(ctx context.Context, tx pgx.Tx, ret domain.SalesReturn) error

	// SavePurchaseReturnInTx inserts a purchase return within a workflow transaction.
	SavePurchaseReturnInTx(ctx context.Context, tx pgx.Tx, ret domain.PurchaseReturn) error

	// SumSalesReturnQtyInTx totals return_qty over a sale's returns. Called
	// with the sale row already locked so the total cannot move underneath.
	SumSalesReturnQtyInTx(ctx context.Context, tx pgx.Tx, saleID string) (int64, error)

	// SumPurchaseReturnQtyInTx totals return_qty over a purchase's returns.
	SumPurchaseReturnQtyInTx(ctx context.Context, tx pgx.Tx, purchaseID string) (int64, error)

	// FindSalesReturnsBySaleID retrieves all returns recorded against a sale.
	FindSalesReturnsBySaleID(ctx context.Context, saleID string) ([]domain.SalesReturn, error)

	// FindPurchaseReturnsByPurchaseID retrieves all returns recorded against a purchase.
	FindPurchaseReturnsByPurchaseID(ctx context.Context, purchaseID string) ([]domain.PurchaseReturn, error)
}

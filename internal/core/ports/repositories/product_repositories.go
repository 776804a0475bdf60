package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
)

// ProductReader defines read operations for product data.
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of active products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// ProductStockSupport defines the stock operations used inside workflow
// transactions. The FOR UPDATE read serializes concurrent check-and-decrement
// on the same product.
type ProductStockSupport interface {
	// FindProductByIDForUpdate selects a product and locks its row within a transaction.
	FindProductByIDForUpdate(ctx context.Context, tx pgx.Tx, productID string) (*domain.Product, error)

	// AdjustStockInTx applies a stock delta to an already-locked product row.
	// The products table CHECK constraint rejects any negative result.
	AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int64, actorID string, now time.Time) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductStockSupport
}

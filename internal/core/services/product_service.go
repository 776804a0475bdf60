package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

const (
	defaultListPageSize = 20
	maxListPageSize     = 100
)

// normalizeLimit clamps a caller-supplied page size to sane bounds.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListPageSize
	}
	if limit > maxListPageSize {
		return maxListPageSize
	}
	return limit
}

// productService manages product reference data.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct persists a new product with zero opening stock.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, actorID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CostPrice.LessThanOrEqual(decimal.Zero) || req.SellPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: product prices must be positive", apperrors.ErrInvalidAmount)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      req.Name,
		StockQty:  0,
		CostPrice: req.CostPrice,
		SellPrice: req.SellPrice,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

// GetProductByID retrieves a product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts retrieves a page of active products.
func (s *productService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if offset < 0 {
		offset = 0
	}
	products, err := s.productRepo.ListProducts(ctx, normalizeLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

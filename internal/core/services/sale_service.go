package services

import (
	"context"
	"errors"
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

// saleService runs the sale workflow: stock out, sale record, the
// customer/income double entry and, when cash changes hands at the
// counter, the cash/customer settlement entry.
type saleService struct {
	saleRepo    portsrepo.SaleRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	txManager   portsrepo.TransactionManager
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade, accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSvcFacade, txManager portsrepo.TransactionManager) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		accountSvc:  accountSvc,
		ledgerSvc:   ledgerSvc,
		txManager:   txManager,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale records a sale to a customer. The product row is locked for
// the duration so concurrent sales cannot both pass the stock check.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, actorID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Qty <= 0 {
		return nil, fmt.Errorf("%w: sale qty %d", apperrors.ErrInvalidAmount, req.Qty)
	}
	if req.SellingPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: selling price %s", apperrors.ErrInvalidAmount, req.SellingPrice.String())
	}
	if req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount %s", apperrors.ErrInvalidAmount, req.PaidAmount.String())
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.txManager.Rollback(ctx, tx)

	product, err := s.productRepo.FindProductByIDForUpdate(ctx, tx, req.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", req.ProductID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock product %s: %w", req.ProductID, err)
	}
	if product.StockQty < req.Qty {
		return nil, apperrors.NewInsufficientStock(req.ProductID, req.Qty, product.StockQty)
	}

	customerAccount, err := s.accountSvc.GetOrCreateCustomerAccountInTx(ctx, tx, req.CustomerID, actorID)
	if err != nil {
		return nil, err
	}
	incomeAccount, err := s.accountSvc.GetOrCreateSystemAccountInTx(ctx, tx, domain.AccountIncome, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	qty := decimal.NewFromInt(req.Qty)
	totalAmount := req.SellingPrice.Mul(qty)
	// Profit snapshots the cost price at the moment of sale.
	profit := req.SellingPrice.Sub(product.CostPrice).Mul(qty)

	sale := domain.Sale{
		SaleID:       uuid.NewString(),
		CustomerID:   req.CustomerID,
		ProductID:    req.ProductID,
		Qty:          req.Qty,
		SellingPrice: req.SellingPrice,
		TotalAmount:  totalAmount,
		PaidAmount:   req.PaidAmount,
		Profit:       profit,
		SaleDate:     req.SaleDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	sale.RecalculateFullyPaid()

	if err := s.saleRepo.SaveSaleInTx(ctx, tx, sale); err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	if err := s.productRepo.AdjustStockInTx(ctx, tx, req.ProductID, -req.Qty, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to decrease stock for product %s: %w", req.ProductID, err)
	}

	narration := fmt.Sprintf("Sale of %d x %s to %s", req.Qty, product.Name, customerAccount.Name)
	_, _, err = s.ledgerSvc.PostInTx(ctx, tx, portssvc.PostingParams{
		DebitAccountID:  customerAccount.AccountID,
		CreditAccountID: incomeAccount.AccountID,
		Amount:          totalAmount,
		TransactionType: domain.TxnSale,
		TransactionID:   &sale.SaleID,
		Narration:       narration,
		EntryDate:       req.SaleDate,
		ActorID:         actorID,
	})
	if err != nil {
		return nil, err
	}

	if req.PaidAmount.IsPositive() {
		cashAccount, err := s.accountSvc.GetOrCreateSystemAccountInTx(ctx, tx, domain.AccountCash, actorID)
		if err != nil {
			return nil, err
		}
		_, _, err = s.ledgerSvc.PostInTx(ctx, tx, portssvc.PostingParams{
			DebitAccountID:  cashAccount.AccountID,
			CreditAccountID: customerAccount.AccountID,
			Amount:          req.PaidAmount,
			TransactionType: domain.TxnSale,
			TransactionID:   &sale.SaleID,
			Narration:       fmt.Sprintf("Cash received on sale of %s", product.Name),
			EntryDate:       req.SaleDate,
			ActorID:         actorID,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	logger.Info("Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("customer_id", req.CustomerID),
		slog.String("total_amount", totalAmount.String()),
		slog.Bool("fully_paid", sale.IsFullyPaid),
	)
	return &sale, nil
}

// GetSaleByID retrieves a sale.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return sale, nil
}

// ListSales retrieves sales newest first with token pagination.
func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	sales, nextToken, err := s.saleRepo.ListSales(ctx, normalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return &dto.ListSalesResponse{
		Sales:     dto.ToSaleResponses(sales),
		NextToken: nextToken,
	}, nil
}

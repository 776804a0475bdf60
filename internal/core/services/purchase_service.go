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

// purchaseService runs the purchase workflow: stock in, purchase record,
// and the expense/supplier double entry, all in one transaction.
type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	accountSvc   portssvc.AccountSvcFacade
	ledgerSvc    portssvc.LedgerSvcFacade
	txManager    portsrepo.TransactionManager
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade, accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSvcFacade, txManager portsrepo.TransactionManager) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		accountSvc:   accountSvc,
		ledgerSvc:    ledgerSvc,
		txManager:    txManager,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CreatePurchase records a purchase from a supplier.
func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, actorID string) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Qty <= 0 {
		return nil, fmt.Errorf("%w: purchase qty %d", apperrors.ErrInvalidAmount, req.Qty)
	}
	if req.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: purchase price %s", apperrors.ErrInvalidAmount, req.PurchasePrice.String())
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

	supplierAccount, err := s.accountSvc.GetOrCreateSupplierAccountInTx(ctx, tx, req.SupplierID, actorID)
	if err != nil {
		return nil, err
	}
	expenseAccount, err := s.accountSvc.GetOrCreateSystemAccountInTx(ctx, tx, domain.AccountExpense, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	totalAmount := req.PurchasePrice.Mul(decimal.NewFromInt(req.Qty))
	purchase := domain.Purchase{
		PurchaseID:    uuid.NewString(),
		SupplierID:    req.SupplierID,
		ProductID:     req.ProductID,
		Qty:           req.Qty,
		PurchasePrice: req.PurchasePrice,
		TotalAmount:   totalAmount,
		PurchaseDate:  req.PurchaseDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.purchaseRepo.SavePurchaseInTx(ctx, tx, purchase); err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	if err := s.productRepo.AdjustStockInTx(ctx, tx, req.ProductID, req.Qty, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to increase stock for product %s: %w", req.ProductID, err)
	}

	narration := fmt.Sprintf("Purchase of %d x %s from %s", req.Qty, product.Name, supplierAccount.Name)
	_, _, err = s.ledgerSvc.PostInTx(ctx, tx, portssvc.PostingParams{
		DebitAccountID:  expenseAccount.AccountID,
		CreditAccountID: supplierAccount.AccountID,
		Amount:          totalAmount,
		TransactionType: domain.TxnPurchase,
		TransactionID:   &purchase.PurchaseID,
		Narration:       narration,
		EntryDate:       req.PurchaseDate,
		ActorID:         actorID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	logger.Info("Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("supplier_id", req.SupplierID),
		slog.String("total_amount", totalAmount.String()),
	)
	return &purchase, nil
}

// GetPurchaseByID retrieves a purchase.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}
	return purchase, nil
}

// ListPurchases retrieves purchases newest first with token pagination.
func (s *purchaseService) ListPurchases(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error) {
	purchases, nextToken, err := s.purchaseRepo.ListPurchases(ctx, normalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return &dto.ListPurchasesResponse{
		Purchases: dto.ToPurchaseResponses(purchases),
		NextToken: nextToken,
	}, nil
}

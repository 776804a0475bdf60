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

// returnService runs the sales-return and purchase-return workflows.
// Each locks the originating trade row first, so the returned-so-far
// total cannot move between the limit check and the insert.
type returnService struct {
	returnRepo   portsrepo.ReturnRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	accountSvc   portssvc.AccountSvcFacade
	ledgerSvc    portssvc.LedgerSvcFacade
	txManager    portsrepo.TransactionManager
}

// NewReturnService creates a new ReturnService.
func NewReturnService(returnRepo portsrepo.ReturnRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade, purchaseRepo portsrepo.PurchaseRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade, accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSvcFacade, txManager portsrepo.TransactionManager) portssvc.ReturnSvcFacade {
	return &returnService{
		returnRepo:   returnRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		accountSvc:   accountSvc,
		ledgerSvc:    ledgerSvc,
		txManager:    txManager,
	}
}

var _ portssvc.ReturnSvcFacade = (*returnService)(nil)

// CreateSalesReturn reverses part of a sale: stock back in, sale totals
// adjusted, the returned units' margin unwound, and the return postings.
func (s *returnService) CreateSalesReturn(ctx context.Context, saleID string, req dto.CreateSalesReturnRequest, actorID string) (*domain.SalesReturn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ReturnQty <= 0 {
		return nil, fmt.Errorf("%w: return qty %d", apperrors.ErrInvalidAmount, req.ReturnQty)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.txManager.Rollback(ctx, tx)

	sale, err := s.saleRepo.FindSaleByIDForUpdate(ctx, tx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("sale %s: %w", saleID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock sale %s: %w", saleID, err)
	}

	alreadyReturned, err := s.returnRepo.SumSalesReturnQtyInTx(ctx, tx, saleID)
	if err != nil {
		return nil, err
	}
	remaining := sale.Qty - alreadyReturned
	if req.ReturnQty > remaining {
		return nil, apperrors.NewReturnExceedsLimit(saleID, req.ReturnQty, remaining)
	}

	product, err := s.productRepo.FindProductByIDForUpdate(ctx, tx, sale.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock product %s: %w", sale.ProductID, err)
	}

	customerAccount, err := s.accountSvc.GetOrCreateCustomerAccountInTx(ctx, tx, sale.CustomerID, actorID)
	if err != nil {
		return nil, err
	}
	salesReturnAccount, err := s.accountSvc.GetOrCreateSystemAccountInTx(ctx, tx, domain.AccountSalesReturn, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	returnQty := decimal.NewFromInt(req.ReturnQty)
	refundAmount := sale.SellingPrice.Mul(returnQty)
	// Unwind the per-unit margin on the returned units. Working from the
	// unit margin rather than the sale's remaining profit keeps later
	// returns from diluting against an already-reduced figure.
	profitAdjustment := sale.SellingPrice.Sub(product.CostPrice).Mul(returnQty).Neg()

	ret := domain.SalesReturn{
		ReturnID:         uuid.NewString(),
		SaleID:           saleID,
		CustomerID:       sale.CustomerID,
		ProductID:        sale.ProductID,
		ReturnQty:        req.ReturnQty,
		UnitPrice:        sale.SellingPrice,
		RefundAmount:     refundAmount,
		RefundMethod:     domain.RefundMethod(req.RefundMethod),
		ProfitAdjustment: profitAdjustment,
		Reason:           req.Reason,
		ReturnDate:       req.ReturnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.returnRepo.SaveSalesReturnInTx(ctx, tx, ret); err != nil {
		return nil, fmt.Errorf("failed to save sales return: %w", err)
	}

	if err := s.productRepo.AdjustStockInTx(ctx, tx, sale.ProductID, req.ReturnQty, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to restock product %s: %w", sale.ProductID, err)
	}

	narration := fmt.Sprintf("Return of %d x %s by %s", req.ReturnQty, product.Name, customerAccount.Name)
	_, _, err = s.ledgerSvc.PostInTx(ctx, tx, portssvc.PostingParams{
		DebitAccountID:  salesReturnAccount.AccountID,
		CreditAccountID: customerAccount.AccountID,
		Amount:          refundAmount,
		TransactionType: domain.TxnSalesReturn,
		TransactionID:   &ret.ReturnID,
		Narration:       narration,
		EntryDate:       req.ReturnDate,
		ActorID:         actorID,
	})
	if err != nil {
		return nil, err
	}

	if ret.RefundMethod == domain.RefundCash {
		cashAccount, err := s.accountSvc.GetOrCreateSystemAccountInTx(ctx, tx, domain.AccountCash, actorID)
		if err != nil {
			return nil, err
		}
		_, _, err = s.ledgerSvc.PostInTx(ctx, tx, portssvc.PostingParams{
			DebitAccountID:  customerAccount.AccountID,
			CreditAccountID: cashAccount.AccountID,
			Amount:          refundAmount,
			TransactionType: domain.TxnSalesReturn,
			TransactionID:   &ret.ReturnID,
			Narration:       fmt.Sprintf("Cash refund to %s", customerAccount.Name),
			EntryDate:       req.ReturnDate,
			ActorID:         actorID,
		})
		if err != nil {
			return nil, err
		}
	}

	// The sale shrinks by the returned value. A cash refund also hands
	// back settled money, so the paid amount shrinks with it, floored
	// at zero when the refund exceeds what was actually paid.
	sale.TotalAmount = sale.TotalAmount.Sub(refundAmount)
	if ret.RefundMethod == domain.RefundCash {
		sale.PaidAmount = sale.PaidAmount.Sub(refundAmount)
		if sale.PaidAmount.IsNegative() {
			sale.PaidAmount = decimal.Zero
		}
	}
	sale.Profit = sale.Profit.Add(profitAdjustment)
	sale.RecalculateFullyPaid()
	sale.LastUpdatedAt = now
	sale.LastUpdatedBy = actorID
	if err := s.saleRepo.UpdateSaleTotalsInTx(ctx, tx, *sale); err != nil {
		return nil, fmt.Errorf("failed to update sale totals: %w", err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit sales return: %w", err)
	}

	logger.Info("Sales return recorded",
		slog.String("return_id", ret.ReturnID),
		slog.String("sale_id", saleID),
		slog.Int64("return_qty", req.ReturnQty),
		slog.String("refund_amount", refundAmount.String()),
	)
	return &ret, nil
}

// CreatePurchaseReturn reverses part of a purchase: stock back out,
// purchase total reduced, and the return postings.
func (s *returnService) CreatePurchaseReturn(ctx context.Context, purchaseID string, req dto.CreatePurchaseReturnRequest, actorID string) (*domain.PurchaseReturn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ReturnQty <= 0 {
		return nil, fmt.Errorf("%w: return qty %d", apperrors.ErrInvalidAmount, req.ReturnQty)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.txManager.Rollback(ctx, tx)

	purchase, err := s.purchaseRepo.FindPurchaseByIDForUpdate(ctx, tx, purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("purchase %s: %w", purchaseID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock purchase %s: %w", purchaseID, err)
	}

	alreadyReturned, err := s.returnRepo.SumPurchaseReturnQtyInTx(ctx, tx, purchaseID)
	if err != nil {
		return nil, err
	}
	remaining := purchase.Qty - alreadyReturned
	if req.ReturnQty > remaining {
		return nil, apperrors.NewReturnExceedsLimit(purchaseID, req.ReturnQty, remaining)
	}

	product, err := s.productRepo.FindProductByIDForUpdate(ctx, tx, purchase.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock product %s: %w", purchase.ProductID, err)
	}
	if product.StockQty < req.ReturnQty {
		return nil, apperrors.NewInsufficientStock(purchase.ProductID, req.ReturnQty, product.StockQty)
	}

	supplierAccount, err := s.accountSvc.GetOrCreateSupplierAccountInTx(ctx, tx, purchase.SupplierID, actorID)
	if err != nil {
		return nil, err
	}
	purchaseReturnAccount, err := s.accountSvc.GetOrCreateSystemAccountInTx(ctx, tx, domain.AccountPurchaseReturn, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	refundAmount := purchase.PurchasePrice.Mul(decimal.NewFromInt(req.ReturnQty))

	ret := domain.PurchaseReturn{
		ReturnID:     uuid.NewString(),
		PurchaseID:   purchaseID,
		SupplierID:   purchase.SupplierID,
		ProductID:    purchase.ProductID,
		ReturnQty:    req.ReturnQty,
		UnitPrice:    purchase.PurchasePrice,
		RefundAmount: refundAmount,
		RefundMethod: domain.RefundMethod(req.RefundMethod),
		Reason:       req.Reason,
		ReturnDate:   req.ReturnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.returnRepo.SavePurchaseReturnInTx(ctx, tx, ret); err != nil {
		return nil, fmt.Errorf("failed to save purchase return: %w", err)
	}

	if err := s.productRepo.AdjustStockInTx(ctx, tx, purchase.ProductID, -req.ReturnQty, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to destock product %s: %w", purchase.ProductID, err)
	}

	narration := fmt.Sprintf("Return of %d x %s to %s", req.ReturnQty, product.Name, supplierAccount.Name)
	_, _, err = s.ledgerSvc.PostInTx(ctx, tx, portssvc.PostingParams{
		DebitAccountID:  supplierAccount.AccountID,
		CreditAccountID: purchaseReturnAccount.AccountID,
		Amount:          refundAmount,
		TransactionType: domain.TxnPurchaseReturn,
		TransactionID:   &ret.ReturnID,
		Narration:       narration,
		EntryDate:       req.ReturnDate,
		ActorID:         actorID,
	})
	if err != nil {
		return nil, err
	}

	if ret.RefundMethod == domain.RefundCash {
		cashAccount, err := s.accountSvc.GetOrCreateSystemAccountInTx(ctx, tx, domain.AccountCash, actorID)
		if err != nil {
			return nil, err
		}
		_, _, err = s.ledgerSvc.PostInTx(ctx, tx, portssvc.PostingParams{
			DebitAccountID:  cashAccount.AccountID,
			CreditAccountID: supplierAccount.AccountID,
			Amount:          refundAmount,
			TransactionType: domain.TxnPurchaseReturn,
			TransactionID:   &ret.ReturnID,
			Narration:       fmt.Sprintf("Cash refund from %s", supplierAccount.Name),
			EntryDate:       req.ReturnDate,
			ActorID:         actorID,
		})
		if err != nil {
			return nil, err
		}
	}

	purchase.TotalAmount = purchase.TotalAmount.Sub(refundAmount)
	purchase.LastUpdatedAt = now
	purchase.LastUpdatedBy = actorID
	if err := s.purchaseRepo.UpdatePurchaseTotalsInTx(ctx, tx, *purchase); err != nil {
		return nil, fmt.Errorf("failed to update purchase totals: %w", err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit purchase return: %w", err)
	}

	logger.Info("Purchase return recorded",
		slog.String("return_id", ret.ReturnID),
		slog.String("purchase_id", purchaseID),
		slog.Int64("return_qty", req.ReturnQty),
		slog.String("refund_amount", refundAmount.String()),
	)
	return &ret, nil
}

// ListSalesReturns retrieves the returns recorded against a sale.
func (s *returnService) ListSalesReturns(ctx context.Context, saleID string) ([]domain.SalesReturn, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	returns, err := s.returnRepo.FindSalesReturnsBySaleID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns for sale %s: %w", saleID, err)
	}
	return returns, nil
}

// ListPurchaseReturns retrieves the returns recorded against a purchase.
func (s *returnService) ListPurchaseReturns(ctx context.Context, purchaseID string) ([]domain.PurchaseReturn, error) {
	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}
	returns, err := s.returnRepo.FindPurchaseReturnsByPurchaseID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns for purchase %s: %w", purchaseID, err)
	}
	return returns, nil
}

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

// paymentService runs the payment workflow: payment record, sale totals
// update, and the cash-or-bank/customer double entry, in one transaction.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	saleRepo    portsrepo.SaleRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	txManager   portsrepo.TransactionManager
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade, accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSvcFacade, txManager portsrepo.TransactionManager) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		saleRepo:    saleRepo,
		accountSvc:  accountSvc,
		ledgerSvc:   ledgerSvc,
		txManager:   txManager,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment applies a payment to a sale. The sale row is locked so
// concurrent payments against the same sale serialize.
func (s *paymentService) RecordPayment(ctx context.Context, saleID string, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount %s", apperrors.ErrInvalidAmount, req.Amount.String())
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

	customerAccount, err := s.accountSvc.GetOrCreateCustomerAccountInTx(ctx, tx, sale.CustomerID, actorID)
	if err != nil {
		return nil, err
	}

	settlementType := domain.AccountCash
	if domain.PaymentMethod(req.Method) == domain.PaymentBank {
		settlementType = domain.AccountBank
	}
	settlementAccount, err := s.accountSvc.GetOrCreateSystemAccountInTx(ctx, tx, settlementType, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		SaleID:      saleID,
		CustomerID:  sale.CustomerID,
		Amount:      req.Amount,
		Method:      domain.PaymentMethod(req.Method),
		PaymentDate: req.PaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.paymentRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	_, _, err = s.ledgerSvc.PostInTx(ctx, tx, portssvc.PostingParams{
		DebitAccountID:  settlementAccount.AccountID,
		CreditAccountID: customerAccount.AccountID,
		Amount:          req.Amount,
		TransactionType: domain.TxnPayment,
		TransactionID:   &payment.PaymentID,
		Narration:       fmt.Sprintf("Payment received from %s", customerAccount.Name),
		EntryDate:       req.PaymentDate,
		ActorID:         actorID,
	})
	if err != nil {
		return nil, err
	}

	sale.PaidAmount = sale.PaidAmount.Add(req.Amount)
	sale.RecalculateFullyPaid()
	sale.LastUpdatedAt = now
	sale.LastUpdatedBy = actorID
	if err := s.saleRepo.UpdateSaleTotalsInTx(ctx, tx, *sale); err != nil {
		return nil, fmt.Errorf("failed to update sale totals: %w", err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("sale_id", saleID),
		slog.String("amount", req.Amount.String()),
		slog.String("method", req.Method),
	)
	return &payment, nil
}

// ListPaymentsBySale retrieves the payments recorded against a sale.
func (s *paymentService) ListPaymentsBySale(ctx context.Context, saleID string) ([]domain.Payment, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	payments, err := s.paymentRepo.FindPaymentsBySaleID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for sale %s: %w", saleID, err)
	}
	return payments, nil
}

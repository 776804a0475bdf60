package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

const (
	defaultEntriesPageSize = 20
	maxEntriesPageSize     = 100
)

// ledgerService is the double-entry poster. Every balance movement in the
// system flows through PostInTx: it locks both accounts, stamps each entry
// with the balance after it, and applies the balance deltas, all inside
// the caller's transaction.
type ledgerService struct {
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostInTx appends one debit and one credit entry inside the given
// transaction. Accounts are locked in sorted id order so concurrent
// postings touching the same pair cannot deadlock.
func (s *ledgerService) PostInTx(ctx context.Context, tx pgx.Tx, params portssvc.PostingParams) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: posting amount %s", apperrors.ErrInvalidAmount, params.Amount.String())
	}
	if params.DebitAccountID == params.CreditAccountID {
		return nil, nil, fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{params.DebitAccountID, params.CreditAccountID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock accounts for posting: %w", err)
	}
	debitAccount, ok := accounts[params.DebitAccountID]
	if !ok {
		return nil, nil, fmt.Errorf("debit account %s: %w", params.DebitAccountID, apperrors.ErrNotFound)
	}
	creditAccount, ok := accounts[params.CreditAccountID]
	if !ok {
		return nil, nil, fmt.Errorf("credit account %s: %w", params.CreditAccountID, apperrors.ErrNotFound)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     params.ActorID,
		LastUpdatedAt: now,
		LastUpdatedBy: params.ActorID,
	}

	debitEntry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		AccountID:       params.DebitAccountID,
		TransactionType: params.TransactionType,
		TransactionID:   params.TransactionID,
		DebitAmount:     params.Amount,
		CreditAmount:    decimal.Zero,
		BalanceAfter:    debitAccount.Balance.Add(params.Amount),
		Narration:       params.Narration,
		EntryDate:       params.EntryDate,
		AuditFields:     audit,
	}
	creditEntry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		AccountID:       params.CreditAccountID,
		TransactionType: params.TransactionType,
		TransactionID:   params.TransactionID,
		DebitAmount:     decimal.Zero,
		CreditAmount:    params.Amount,
		BalanceAfter:    creditAccount.Balance.Sub(params.Amount),
		Narration:       params.Narration,
		EntryDate:       params.EntryDate,
		AuditFields:     audit,
	}

	balanceChanges := map[string]decimal.Decimal{
		params.DebitAccountID:  params.Amount,
		params.CreditAccountID: params.Amount.Neg(),
	}
	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, params.ActorID, now); err != nil {
		return nil, nil, fmt.Errorf("failed to apply balance changes: %w", err)
	}

	if err := s.ledgerRepo.AppendEntriesInTx(ctx, tx, []domain.LedgerEntry{debitEntry, creditEntry}); err != nil {
		return nil, nil, fmt.Errorf("failed to append ledger entries: %w", err)
	}

	logger.Debug("Posted double entry",
		slog.String("transaction_type", string(params.TransactionType)),
		slog.String("debit_account", params.DebitAccountID),
		slog.String("credit_account", params.CreditAccountID),
		slog.String("amount", params.Amount.String()),
	)
	return &debitEntry, &creditEntry, nil
}

// PostAdjustment posts a manual balanced adjustment in its own transaction.
func (s *ledgerService) PostAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, actorID string) ([]domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.txManager.Rollback(ctx, tx)

	debit, credit, err := s.PostInTx(ctx, tx, portssvc.PostingParams{
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Amount:          req.Amount,
		TransactionType: domain.TxnAdjustment,
		TransactionID:   nil,
		Narration:       req.Narration,
		EntryDate:       req.EntryDate,
		ActorID:         actorID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit adjustment: %w", err)
	}

	logger.Info("Adjustment posted",
		slog.String("debit_account", req.DebitAccountID),
		slog.String("credit_account", req.CreditAccountID),
		slog.String("amount", req.Amount.String()),
	)
	return []domain.LedgerEntry{*debit, *credit}, nil
}

// GetEntriesByTransaction retrieves the entries posted for one business record.
func (s *ledgerService) GetEntriesByTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindEntriesByTransaction(ctx, txnType, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entries for %s %s: %w", txnType, transactionID, err)
	}
	return entries, nil
}

// ListAccountEntries retrieves an account's entries newest first with token pagination.
func (s *ledgerService) ListAccountEntries(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultEntriesPageSize
	}
	if limit > maxEntriesPageSize {
		limit = maxEntriesPageSize
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for account %s: %w", accountID, err)
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

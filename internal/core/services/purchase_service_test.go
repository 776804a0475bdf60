package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/core/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockProductRepo  *MockProductRepository
	mockAccountSvc   *MockAccountService
	mockLedgerSvc    *MockLedgerService
	mockTxManager    *MockTxManager
	service          portssvc.PurchaseSvcFacade
	tx               stubTx
	product          domain.Product
	supplierAccount  domain.Account
	expenseAccount   domain.Account
	supplierID       string
	actorID          string
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockTxManager = new(MockTxManager)
	suite.service = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockProductRepo, suite.mockAccountSvc, suite.mockLedgerSvc, suite.mockTxManager)

	suite.tx = stubTx{}
	suite.supplierID = uuid.NewString()
	suite.actorID = uuid.NewString()
	suite.product = domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Tea 500g",
		StockQty:  4,
		CostPrice: decimal.NewFromInt(120),
		SellPrice: decimal.NewFromInt(150),
		IsActive:  true,
	}
	suite.supplierAccount = domain.Account{
		AccountID:     uuid.NewString(),
		Name:          "Mahal Traders",
		AccountType:   domain.AccountSupplier,
		ReferenceType: domain.ReferenceSupplier,
		ReferenceID:   suite.supplierID,
	}
	suite.expenseAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Expense",
		AccountType: domain.AccountExpense,
		IsSystem:    true,
	}
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		SupplierID:    suite.supplierID,
		ProductID:     suite.product.ProductID,
		Qty:           6,
		PurchasePrice: decimal.NewFromInt(120),
		PurchaseDate:  time.Now().UTC(),
	}

	suite.mockTxManager.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockTxManager.On("Rollback", ctx, suite.tx).Return(nil)
	suite.mockTxManager.On("Commit", ctx, suite.tx).Return(nil).Once()

	suite.mockProductRepo.On("FindProductByIDForUpdate", ctx, suite.tx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSupplierAccountInTx", ctx, suite.tx, suite.supplierID, suite.actorID).Return(&suite.supplierAccount, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountExpense, suite.actorID).Return(&suite.expenseAccount, nil).Once()
	suite.mockPurchaseRepo.On("SavePurchaseInTx", ctx, suite.tx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.Qty == 6 && p.TotalAmount.Equal(decimal.NewFromInt(720))
	})).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStockInTx", ctx, suite.tx, suite.product.ProductID, int64(6), suite.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedgerSvc.On("PostInTx", ctx, suite.tx, mock.MatchedBy(func(p portssvc.PostingParams) bool {
		return p.DebitAccountID == suite.expenseAccount.AccountID &&
			p.CreditAccountID == suite.supplierAccount.AccountID &&
			p.Amount.Equal(decimal.NewFromInt(720)) &&
			p.TransactionType == domain.TxnPurchase &&
			p.TransactionID != nil
	})).Return(nil, nil, nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.NotEmpty(purchase.PurchaseID)
	suite.True(purchase.TotalAmount.Equal(decimal.NewFromInt(720)))

	suite.mockTxManager.AssertExpectations(suite.T())
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_ProductMissing() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		SupplierID:    suite.supplierID,
		ProductID:     uuid.NewString(),
		Qty:           1,
		PurchasePrice: decimal.NewFromInt(120),
		PurchaseDate:  time.Now().UTC(),
	}

	suite.mockTxManager.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockTxManager.On("Rollback", ctx, suite.tx).Return(nil)
	suite.mockProductRepo.On("FindProductByIDForUpdate", ctx, suite.tx, req.ProductID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePurchase(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchaseInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_SupplierMissing() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		SupplierID:    uuid.NewString(),
		ProductID:     suite.product.ProductID,
		Qty:           2,
		PurchasePrice: decimal.NewFromInt(120),
		PurchaseDate:  time.Now().UTC(),
	}

	suite.mockTxManager.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockTxManager.On("Rollback", ctx, suite.tx).Return(nil)
	suite.mockProductRepo.On("FindProductByIDForUpdate", ctx, suite.tx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSupplierAccountInTx", ctx, suite.tx, req.SupplierID, suite.actorID).Return(nil, apperrors.ErrReferenceNotFound).Once()

	_, err := suite.service.CreatePurchase(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferenceNotFound)
	suite.mockTxManager.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_InvalidInputs() {
	ctx := context.Background()
	base := dto.CreatePurchaseRequest{
		SupplierID:    suite.supplierID,
		ProductID:     suite.product.ProductID,
		Qty:           1,
		PurchasePrice: decimal.NewFromInt(120),
		PurchaseDate:  time.Now().UTC(),
	}

	zeroQty := base
	zeroQty.Qty = 0
	zeroPrice := base
	zeroPrice.PurchasePrice = decimal.Zero

	for _, req := range []dto.CreatePurchaseRequest{zeroQty, zeroPrice} {
		_, err := suite.service.CreatePurchase(ctx, req, suite.actorID)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	}
	suite.mockTxManager.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func TestPurchaseService(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

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

type ReturnServiceTestSuite struct {
	suite.Suite
	mockReturnRepo    *MockReturnRepository
	mockSaleRepo      *MockSaleRepository
	mockPurchaseRepo  *MockPurchaseRepository
	mockProductRepo   *MockProductRepository
	mockAccountSvc    *MockAccountService
	mockLedgerSvc     *MockLedgerService
	mockTxManager     *MockTxManager
	service           portssvc.ReturnSvcFacade
	tx                stubTx
	product           domain.Product
	sale              domain.Sale
	purchase          domain.Purchase
	customerAccount   domain.Account
	supplierAccount   domain.Account
	salesRetAccount   domain.Account
	purchRetAccount   domain.Account
	cashAccount       domain.Account
	actorID           string
}

func (suite *ReturnServiceTestSuite) SetupTest() {
	suite.mockReturnRepo = new(MockReturnRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockTxManager = new(MockTxManager)
	suite.service = services.NewReturnService(suite.mockReturnRepo, suite.mockSaleRepo, suite.mockPurchaseRepo, suite.mockProductRepo, suite.mockAccountSvc, suite.mockLedgerSvc, suite.mockTxManager)

	suite.tx = stubTx{}
	suite.actorID = uuid.NewString()

	suite.product = domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Sugar 1kg",
		StockQty:  20,
		CostPrice: decimal.NewFromInt(40),
		SellPrice: decimal.NewFromInt(50),
		IsActive:  true,
	}
	suite.sale = domain.Sale{
		SaleID:       uuid.NewString(),
		CustomerID:   uuid.NewString(),
		ProductID:    suite.product.ProductID,
		Qty:          5,
		SellingPrice: decimal.NewFromInt(50),
		TotalAmount:  decimal.NewFromInt(250),
		PaidAmount:   decimal.NewFromInt(250),
		Profit:       decimal.NewFromInt(50),
		IsFullyPaid:  true,
		SaleDate:     time.Now().UTC(),
	}
	suite.purchase = domain.Purchase{
		PurchaseID:    uuid.NewString(),
		SupplierID:    uuid.NewString(),
		ProductID:     suite.product.ProductID,
		Qty:           10,
		PurchasePrice: decimal.NewFromInt(40),
		TotalAmount:   decimal.NewFromInt(400),
		PurchaseDate:  time.Now().UTC(),
	}
	suite.customerAccount = domain.Account{AccountID: uuid.NewString(), Name: "Ravi", AccountType: domain.AccountCustomer}
	suite.supplierAccount = domain.Account{AccountID: uuid.NewString(), Name: "Mahal Traders", AccountType: domain.AccountSupplier}
	suite.salesRetAccount = domain.Account{AccountID: uuid.NewString(), AccountType: domain.AccountSalesReturn, IsSystem: true}
	suite.purchRetAccount = domain.Account{AccountID: uuid.NewString(), AccountType: domain.AccountPurchaseReturn, IsSystem: true}
	suite.cashAccount = domain.Account{AccountID: uuid.NewString(), AccountType: domain.AccountCash, IsSystem: true}
}

func (suite *ReturnServiceTestSuite) expectTx(ctx context.Context, commits bool) {
	suite.mockTxManager.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockTxManager.On("Rollback", ctx, suite.tx).Return(nil)
	if commits {
		suite.mockTxManager.On("Commit", ctx, suite.tx).Return(nil).Once()
	}
}

func (suite *ReturnServiceTestSuite) TestCreateSalesReturn_CashRefund() {
	ctx := context.Background()
	sale := suite.sale
	req := dto.CreateSalesReturnRequest{
		ReturnQty:    2,
		RefundMethod: "CASH",
		Reason:       "damaged packets",
		ReturnDate:   time.Now().UTC(),
	}

	suite.expectTx(ctx, true)
	suite.mockSaleRepo.On("FindSaleByIDForUpdate", ctx, suite.tx, sale.SaleID).Return(&sale, nil).Once()
	suite.mockReturnRepo.On("SumSalesReturnQtyInTx", ctx, suite.tx, sale.SaleID).Return(int64(0), nil).Once()
	suite.mockProductRepo.On("FindProductByIDForUpdate", ctx, suite.tx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateCustomerAccountInTx", ctx, suite.tx, sale.CustomerID, suite.actorID).Return(&suite.customerAccount, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountSalesReturn, suite.actorID).Return(&suite.salesRetAccount, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountCash, suite.actorID).Return(&suite.cashAccount, nil).Once()

	suite.mockReturnRepo.On("SaveSalesReturnInTx", ctx, suite.tx, mock.MatchedBy(func(r domain.SalesReturn) bool {
		return r.ReturnQty == 2 &&
			r.RefundAmount.Equal(decimal.NewFromInt(100)) &&
			r.ProfitAdjustment.Equal(decimal.NewFromInt(-20))
	})).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStockInTx", ctx, suite.tx, suite.product.ProductID, int64(2), suite.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	// Return posting unwinds the receivable, cash posting refunds it.
	suite.mockLedgerSvc.On("PostInTx", ctx, suite.tx, mock.MatchedBy(func(p portssvc.PostingParams) bool {
		return p.DebitAccountID == suite.salesRetAccount.AccountID &&
			p.CreditAccountID == suite.customerAccount.AccountID &&
			p.Amount.Equal(decimal.NewFromInt(100)) &&
			p.TransactionType == domain.TxnSalesReturn
	})).Return(nil, nil, nil).Once()
	suite.mockLedgerSvc.On("PostInTx", ctx, suite.tx, mock.MatchedBy(func(p portssvc.PostingParams) bool {
		return p.DebitAccountID == suite.customerAccount.AccountID &&
			p.CreditAccountID == suite.cashAccount.AccountID &&
			p.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil, nil, nil).Once()

	suite.mockSaleRepo.On("UpdateSaleTotalsInTx", ctx, suite.tx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.TotalAmount.Equal(decimal.NewFromInt(150)) &&
			s.PaidAmount.Equal(decimal.NewFromInt(150)) &&
			s.Profit.Equal(decimal.NewFromInt(30)) &&
			s.IsFullyPaid
	})).Return(nil).Once()

	ret, err := suite.service.CreateSalesReturn(ctx, sale.SaleID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(ret)
	suite.Equal(domain.RefundCash, ret.RefundMethod)
	suite.True(ret.UnitPrice.Equal(sale.SellingPrice))

	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockReturnRepo.AssertExpectations(suite.T())
	suite.mockLedgerSvc.AssertExpectations(suite.T())
	suite.mockTxManager.AssertExpectations(suite.T())
}

func (suite *ReturnServiceTestSuite) TestCreateSalesReturn_CreditKeepsPaidAmount() {
	ctx := context.Background()
	sale := suite.sale
	sale.PaidAmount = decimal.NewFromInt(100)
	sale.IsFullyPaid = false
	req := dto.CreateSalesReturnRequest{
		ReturnQty:    1,
		RefundMethod: "CREDIT",
		ReturnDate:   time.Now().UTC(),
	}

	suite.expectTx(ctx, true)
	suite.mockSaleRepo.On("FindSaleByIDForUpdate", ctx, suite.tx, sale.SaleID).Return(&sale, nil).Once()
	suite.mockReturnRepo.On("SumSalesReturnQtyInTx", ctx, suite.tx, sale.SaleID).Return(int64(0), nil).Once()
	suite.mockProductRepo.On("FindProductByIDForUpdate", ctx, suite.tx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateCustomerAccountInTx", ctx, suite.tx, sale.CustomerID, suite.actorID).Return(&suite.customerAccount, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountSalesReturn, suite.actorID).Return(&suite.salesRetAccount, nil).Once()
	suite.mockReturnRepo.On("SaveSalesReturnInTx", ctx, suite.tx, mock.AnythingOfType("domain.SalesReturn")).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStockInTx", ctx, suite.tx, suite.product.ProductID, int64(1), suite.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedgerSvc.On("PostInTx", ctx, suite.tx, mock.Anything).Return(nil, nil, nil).Once()

	// A credit refund leaves the paid amount alone; only the total shrinks.
	suite.mockSaleRepo.On("UpdateSaleTotalsInTx", ctx, suite.tx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.TotalAmount.Equal(decimal.NewFromInt(200)) &&
			s.PaidAmount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	_, err := suite.service.CreateSalesReturn(ctx, sale.SaleID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.mockLedgerSvc.AssertNumberOfCalls(suite.T(), "PostInTx", 1)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *ReturnServiceTestSuite) TestCreateSalesReturn_SecondReturnUnwindsUnitMargin() {
	ctx := context.Background()
	// Two of five units already returned on credit: total and profit are
	// down, but the unit margin of 10 must still drive the adjustment.
	sale := suite.sale
	sale.TotalAmount = decimal.NewFromInt(150)
	sale.Profit = decimal.NewFromInt(30)
	req := dto.CreateSalesReturnRequest{
		ReturnQty:    2,
		RefundMethod: "CREDIT",
		ReturnDate:   time.Now().UTC(),
	}

	suite.expectTx(ctx, true)
	suite.mockSaleRepo.On("FindSaleByIDForUpdate", ctx, suite.tx, sale.SaleID).Return(&sale, nil).Once()
	suite.mockReturnRepo.On("SumSalesReturnQtyInTx", ctx, suite.tx, sale.SaleID).Return(int64(2), nil).Once()
	suite.mockProductRepo.On("FindProductByIDForUpdate", ctx, suite.tx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateCustomerAccountInTx", ctx, suite.tx, sale.CustomerID, suite.actorID).Return(&suite.customerAccount, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountSalesReturn, suite.actorID).Return(&suite.salesRetAccount, nil).Once()

	suite.mockReturnRepo.On("SaveSalesReturnInTx", ctx, suite.tx, mock.MatchedBy(func(r domain.SalesReturn) bool {
		return r.ReturnQty == 2 &&
			r.RefundAmount.Equal(decimal.NewFromInt(100)) &&
			r.ProfitAdjustment.Equal(decimal.NewFromInt(-20))
	})).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStockInTx", ctx, suite.tx, suite.product.ProductID, int64(2), suite.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedgerSvc.On("PostInTx", ctx, suite.tx, mock.Anything).Return(nil, nil, nil).Once()

	// Margin on one remaining unit: 30 - 20 = 10.
	suite.mockSaleRepo.On("UpdateSaleTotalsInTx", ctx, suite.tx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.TotalAmount.Equal(decimal.NewFromInt(50)) &&
			s.Profit.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()

	ret, err := suite.service.CreateSalesReturn(ctx, sale.SaleID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(ret)
	suite.True(ret.ProfitAdjustment.Equal(decimal.NewFromInt(-20)))
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockReturnRepo.AssertExpectations(suite.T())
}

func (suite *ReturnServiceTestSuite) TestCreateSalesReturn_ExceedsLimit() {
	ctx := context.Background()
	sale := suite.sale
	req := dto.CreateSalesReturnRequest{
		ReturnQty:    4,
		RefundMethod: "CREDIT",
		ReturnDate:   time.Now().UTC(),
	}

	suite.expectTx(ctx, false)
	suite.mockSaleRepo.On("FindSaleByIDForUpdate", ctx, suite.tx, sale.SaleID).Return(&sale, nil).Once()
	suite.mockReturnRepo.On("SumSalesReturnQtyInTx", ctx, suite.tx, sale.SaleID).Return(int64(2), nil).Once()

	_, err := suite.service.CreateSalesReturn(ctx, sale.SaleID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReturnExceedsLimit)
	var limitErr *apperrors.ReturnExceedsLimitError
	suite.Require().ErrorAs(err, &limitErr)
	suite.Equal(int64(4), limitErr.Requested)
	suite.Equal(int64(3), limitErr.RemainingMax)
	suite.mockReturnRepo.AssertNotCalled(suite.T(), "SaveSalesReturnInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReturnServiceTestSuite) TestCreateSalesReturn_SaleMissing() {
	ctx := context.Background()
	saleID := uuid.NewString()
	req := dto.CreateSalesReturnRequest{
		ReturnQty:    1,
		RefundMethod: "CASH",
		ReturnDate:   time.Now().UTC(),
	}

	suite.expectTx(ctx, false)
	suite.mockSaleRepo.On("FindSaleByIDForUpdate", ctx, suite.tx, saleID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateSalesReturn(ctx, saleID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReturnServiceTestSuite) TestCreatePurchaseReturn_Success() {
	ctx := context.Background()
	purchase := suite.purchase
	req := dto.CreatePurchaseReturnRequest{
		ReturnQty:    3,
		RefundMethod: "CREDIT",
		Reason:       "expired batch",
		ReturnDate:   time.Now().UTC(),
	}

	suite.expectTx(ctx, true)
	suite.mockPurchaseRepo.On("FindPurchaseByIDForUpdate", ctx, suite.tx, purchase.PurchaseID).Return(&purchase, nil).Once()
	suite.mockReturnRepo.On("SumPurchaseReturnQtyInTx", ctx, suite.tx, purchase.PurchaseID).Return(int64(0), nil).Once()
	suite.mockProductRepo.On("FindProductByIDForUpdate", ctx, suite.tx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSupplierAccountInTx", ctx, suite.tx, purchase.SupplierID, suite.actorID).Return(&suite.supplierAccount, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountPurchaseReturn, suite.actorID).Return(&suite.purchRetAccount, nil).Once()
	suite.mockReturnRepo.On("SavePurchaseReturnInTx", ctx, suite.tx, mock.MatchedBy(func(r domain.PurchaseReturn) bool {
		return r.ReturnQty == 3 && r.RefundAmount.Equal(decimal.NewFromInt(120))
	})).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStockInTx", ctx, suite.tx, suite.product.ProductID, int64(-3), suite.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedgerSvc.On("PostInTx", ctx, suite.tx, mock.MatchedBy(func(p portssvc.PostingParams) bool {
		return p.DebitAccountID == suite.supplierAccount.AccountID &&
			p.CreditAccountID == suite.purchRetAccount.AccountID &&
			p.Amount.Equal(decimal.NewFromInt(120)) &&
			p.TransactionType == domain.TxnPurchaseReturn
	})).Return(nil, nil, nil).Once()
	suite.mockPurchaseRepo.On("UpdatePurchaseTotalsInTx", ctx, suite.tx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.TotalAmount.Equal(decimal.NewFromInt(280))
	})).Return(nil).Once()

	ret, err := suite.service.CreatePurchaseReturn(ctx, purchase.PurchaseID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(ret)
	suite.True(ret.UnitPrice.Equal(purchase.PurchasePrice))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *ReturnServiceTestSuite) TestCreatePurchaseReturn_InsufficientStock() {
	ctx := context.Background()
	purchase := suite.purchase
	product := suite.product
	product.StockQty = 1
	req := dto.CreatePurchaseReturnRequest{
		ReturnQty:    2,
		RefundMethod: "CREDIT",
		ReturnDate:   time.Now().UTC(),
	}

	suite.expectTx(ctx, false)
	suite.mockPurchaseRepo.On("FindPurchaseByIDForUpdate", ctx, suite.tx, purchase.PurchaseID).Return(&purchase, nil).Once()
	suite.mockReturnRepo.On("SumPurchaseReturnQtyInTx", ctx, suite.tx, purchase.PurchaseID).Return(int64(0), nil).Once()
	suite.mockProductRepo.On("FindProductByIDForUpdate", ctx, suite.tx, product.ProductID).Return(&product, nil).Once()

	_, err := suite.service.CreatePurchaseReturn(ctx, purchase.PurchaseID, req, suite.actorID)

	suite.Require().Error(err)
	var stockErr *apperrors.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)
	suite.Equal(int64(1), stockErr.Available)
	suite.mockReturnRepo.AssertNotCalled(suite.T(), "SavePurchaseReturnInTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestReturnService(t *testing.T) {
	suite.Run(t, new(ReturnServiceTestSuite))
}

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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockSaleRepo    *MockSaleRepository
	mockAccountSvc  *MockAccountService
	mockLedgerSvc   *MockLedgerService
	mockTxManager   *MockTxManager
	service         portssvc.PaymentSvcFacade
	tx              stubTx
	sale            domain.Sale
	customerAccount domain.Account
	cashAccount     domain.Account
	bankAccount     domain.Account
	actorID         string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockTxManager = new(MockTxManager)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockSaleRepo, suite.mockAccountSvc, suite.mockLedgerSvc, suite.mockTxManager)

	suite.tx = stubTx{}
	suite.actorID = uuid.NewString()
	suite.sale = domain.Sale{
		SaleID:       uuid.NewString(),
		CustomerID:   uuid.NewString(),
		ProductID:    uuid.NewString(),
		Qty:          5,
		SellingPrice: decimal.NewFromInt(100),
		TotalAmount:  decimal.NewFromInt(500),
		PaidAmount:   decimal.NewFromInt(200),
		SaleDate:     time.Now().UTC(),
	}
	suite.customerAccount = domain.Account{
		AccountID:     uuid.NewString(),
		Name:          "Meera",
		AccountType:   domain.AccountCustomer,
		ReferenceType: domain.ReferenceCustomer,
		ReferenceID:   suite.sale.CustomerID,
	}
	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		AccountType: domain.AccountCash,
		IsSystem:    true,
	}
	suite.bankAccount = domain.Account{
		AccountID:   uuid.NewString(),
		AccountType: domain.AccountBank,
		IsSystem:    true,
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_SettlesRemainder() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(300),
		Method:      "CASH",
		PaymentDate: time.Now().UTC(),
	}
	sale := suite.sale

	suite.mockTxManager.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockTxManager.On("Rollback", ctx, suite.tx).Return(nil)
	suite.mockTxManager.On("Commit", ctx, suite.tx).Return(nil).Once()

	suite.mockSaleRepo.On("FindSaleByIDForUpdate", ctx, suite.tx, sale.SaleID).Return(&sale, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateCustomerAccountInTx", ctx, suite.tx, sale.CustomerID, suite.actorID).Return(&suite.customerAccount, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountCash, suite.actorID).Return(&suite.cashAccount, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, suite.tx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.SaleID == sale.SaleID && p.Amount.Equal(req.Amount) && p.Method == domain.PaymentCash
	})).Return(nil).Once()
	suite.mockLedgerSvc.On("PostInTx", ctx, suite.tx, mock.MatchedBy(func(p portssvc.PostingParams) bool {
		return p.DebitAccountID == suite.cashAccount.AccountID &&
			p.CreditAccountID == suite.customerAccount.AccountID &&
			p.Amount.Equal(req.Amount) &&
			p.TransactionType == domain.TxnPayment &&
			p.TransactionID != nil
	})).Return(nil, nil, nil).Once()
	suite.mockSaleRepo.On("UpdateSaleTotalsInTx", ctx, suite.tx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.PaidAmount.Equal(decimal.NewFromInt(500)) && s.IsFullyPaid
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, sale.SaleID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.NotEmpty(payment.PaymentID)
	suite.Equal(sale.CustomerID, payment.CustomerID)

	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockLedgerSvc.AssertExpectations(suite.T())
	suite.mockTxManager.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BankMethod() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(100),
		Method:      "BANK",
		PaymentDate: time.Now().UTC(),
	}
	sale := suite.sale

	suite.mockTxManager.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockTxManager.On("Rollback", ctx, suite.tx).Return(nil)
	suite.mockTxManager.On("Commit", ctx, suite.tx).Return(nil).Once()

	suite.mockSaleRepo.On("FindSaleByIDForUpdate", ctx, suite.tx, sale.SaleID).Return(&sale, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateCustomerAccountInTx", ctx, suite.tx, sale.CustomerID, suite.actorID).Return(&suite.customerAccount, nil).Once()
	suite.mockAccountSvc.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountBank, suite.actorID).Return(&suite.bankAccount, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, suite.tx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockLedgerSvc.On("PostInTx", ctx, suite.tx, mock.MatchedBy(func(p portssvc.PostingParams) bool {
		return p.DebitAccountID == suite.bankAccount.AccountID
	})).Return(nil, nil, nil).Once()
	suite.mockSaleRepo.On("UpdateSaleTotalsInTx", ctx, suite.tx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.PaidAmount.Equal(decimal.NewFromInt(300)) && !s.IsFullyPaid
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, sale.SaleID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentBank, payment.Method)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		Amount:      decimal.Zero,
		Method:      "CASH",
		PaymentDate: time.Now().UTC(),
	}

	_, err := suite.service.RecordPayment(ctx, suite.sale.SaleID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockTxManager.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_SaleMissing() {
	ctx := context.Background()
	saleID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(50),
		Method:      "CASH",
		PaymentDate: time.Now().UTC(),
	}

	suite.mockTxManager.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockTxManager.On("Rollback", ctx, suite.tx).Return(nil)
	suite.mockSaleRepo.On("FindSaleByIDForUpdate", ctx, suite.tx, saleID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(ctx, saleID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePaymentInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsBySale_SaleMissing() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListPaymentsBySale(ctx, saleID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindPaymentsBySaleID", mock.Anything, mock.Anything)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

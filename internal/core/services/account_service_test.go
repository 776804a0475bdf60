package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quickstock/shop_ledger_app/internal/apperrors"
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/core/services"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCustomerRepo *MockCustomerRepository
	mockSupplierRepo *MockSupplierRepository
	service          portssvc.AccountSvcFacade
	tx               stubTx
	actorID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCustomerRepo, suite.mockSupplierRepo)
	suite.tx = stubTx{}
	suite.actorID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestGetOrCreateCustomerAccountInTx_Success() {
	ctx := context.Background()
	customer := domain.Customer{CustomerID: uuid.NewString(), Name: "Ravi", IsActive: true}
	account := domain.Account{
		AccountID:     uuid.NewString(),
		Name:          customer.Name,
		AccountType:   domain.AccountCustomer,
		ReferenceType: domain.ReferenceCustomer,
		ReferenceID:   customer.CustomerID,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customer.CustomerID).Return(&customer, nil).Once()
	suite.mockAccountRepo.On("GetOrCreateReferenceAccountInTx", ctx, suite.tx, domain.ReferenceCustomer, customer.CustomerID, customer.Name, suite.actorID, mock.AnythingOfType("time.Time")).Return(&account, nil).Once()

	got, err := suite.service.GetOrCreateCustomerAccountInTx(ctx, suite.tx, customer.CustomerID, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(account.AccountID, got.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetOrCreateCustomerAccountInTx_CustomerMissing() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetOrCreateCustomerAccountInTx(ctx, suite.tx, customerID, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferenceNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "GetOrCreateReferenceAccountInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetOrCreateSupplierAccountInTx_SupplierMissing() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetOrCreateSupplierAccountInTx(ctx, suite.tx, supplierID, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferenceNotFound)
}

func (suite *AccountServiceTestSuite) TestGetOrCreateSystemAccountInTx_Delegates() {
	ctx := context.Background()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Cash",
		AccountType: domain.AccountCash,
		IsSystem:    true,
	}

	suite.mockAccountRepo.On("GetOrCreateSystemAccountInTx", ctx, suite.tx, domain.AccountCash, suite.actorID, mock.AnythingOfType("time.Time")).Return(&account, nil).Once()

	got, err := suite.service.GetOrCreateSystemAccountInTx(ctx, suite.tx, domain.AccountCash, suite.actorID)

	suite.Require().NoError(err)
	suite.True(got.IsSystem)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetCustomerAccount_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockAccountRepo.On("FindReferenceAccount", ctx, domain.ReferenceCustomer, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCustomerAccount(ctx, customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

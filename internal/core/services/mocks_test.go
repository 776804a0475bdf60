package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
)

// stubTx is a placeholder pgx.Tx handed out by the mock transaction
// manager. The services pass it through to repositories without calling
// any of its methods, so the embedded nil interface is never touched.
type stubTx struct {
	pgx.Tx
}

// --- Mock TransactionManager ---

type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindSystemAccount(ctx context.Context, accountType domain.AccountType) (*domain.Account, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindReferenceAccount(ctx context.Context, refType domain.ReferenceType, refID string) (*domain.Account, error) {
	args := m.Called(ctx, refType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetOrCreateSystemAccountInTx(ctx context.Context, tx pgx.Tx, accountType domain.AccountType, actorID string, now time.Time) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountType, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetOrCreateReferenceAccountInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID string, name string, actorID string, now time.Time) (*domain.Account, error) {
	args := m.Called(ctx, tx, refType, refID, name, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, actorID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, actorID, now)
	return args.Error(0)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) AppendEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, tx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindEntriesByAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, txnType, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedToken, args.Error(2)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByIDForUpdate(ctx context.Context, tx pgx.Tx, productID string) (*domain.Product, error) {
	args := m.Called(ctx, tx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int64, actorID string, now time.Time) error {
	args := m.Called(ctx, tx, productID, delta, actorID, now)
	return args.Error(0)
}

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Mock SupplierRepository ---

type MockSupplierRepository struct {
	mock.Mock
}

var _ portsrepo.SupplierRepositoryFacade = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	args := m.Called(ctx, tx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindSaleByIDForUpdate(ctx context.Context, tx pgx.Tx, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, tx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) UpdateSaleTotalsInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	args := m.Called(ctx, tx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.Sale), returnedToken, args.Error(2)
}

// --- Mock PurchaseRepository ---

type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepositoryFacade = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) SavePurchaseInTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error {
	args := m.Called(ctx, tx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchaseByIDForUpdate(ctx context.Context, tx pgx.Tx, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, tx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) UpdatePurchaseTotalsInTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error {
	args := m.Called(ctx, tx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, limit int, nextToken *string) ([]domain.Purchase, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.Purchase), returnedToken, args.Error(2)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentsBySaleID(ctx context.Context, saleID string) ([]domain.Payment, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock ReturnRepository ---

type MockReturnRepository struct {
	mock.Mock
}

var _ portsrepo.ReturnRepositoryFacade = (*MockReturnRepository)(nil)

func (m *MockReturnRepository) SaveSalesReturnInTx(ctx context.Context, tx pgx.Tx, ret domain.SalesReturn) error {
	args := m.Called(ctx, tx, ret)
	return args.Error(0)
}

func (m *MockReturnRepository) SavePurchaseReturnInTx(ctx context.Context, tx pgx.Tx, ret domain.PurchaseReturn) error {
	args := m.Called(ctx, tx, ret)
	return args.Error(0)
}

func (m *MockReturnRepository) SumSalesReturnQtyInTx(ctx context.Context, tx pgx.Tx, saleID string) (int64, error) {
	args := m.Called(ctx, tx, saleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReturnRepository) SumPurchaseReturnQtyInTx(ctx context.Context, tx pgx.Tx, purchaseID string) (int64, error) {
	args := m.Called(ctx, tx, purchaseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReturnRepository) FindSalesReturnsBySaleID(ctx context.Context, saleID string) ([]domain.SalesReturn, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesReturn), args.Error(1)
}

func (m *MockReturnRepository) FindPurchaseReturnsByPurchaseID(ctx context.Context, purchaseID string) ([]domain.PurchaseReturn, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseReturn), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetFinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

// --- Mock AccountService (as consumed by the workflows) ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetOrCreateSystemAccountInTx(ctx context.Context, tx pgx.Tx, accountType domain.AccountType, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountType, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetOrCreateCustomerAccountInTx(ctx context.Context, tx pgx.Tx, customerID string, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, customerID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetOrCreateSupplierAccountInTx(ctx context.Context, tx pgx.Tx, supplierID string, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, supplierID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetCustomerAccount(ctx context.Context, customerID string) (*domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetSupplierAccount(ctx context.Context, supplierID string) (*domain.Account, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock LedgerService (as consumed by the workflows) ---

type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) PostInTx(ctx context.Context, tx pgx.Tx, params portssvc.PostingParams) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	args := m.Called(ctx, tx, params)
	var debit, credit *domain.LedgerEntry
	if args.Get(0) != nil {
		debit = args.Get(0).(*domain.LedgerEntry)
	}
	if args.Get(1) != nil {
		credit = args.Get(1).(*domain.LedgerEntry)
	}
	return debit, credit, args.Error(2)
}

func (m *MockLedgerService) PostAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, actorID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) GetEntriesByTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, txnType, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListAccountEntries(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer, plus the shared transaction manager.
type RepositoryProvider struct {
	TxManager     TransactionManager
	AccountRepo   AccountRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	CustomerRepo  CustomerRepositoryFacade
	SupplierRepo  SupplierRepositoryFacade
	PurchaseRepo  PurchaseRepositoryFacade
	SaleRepo      SaleRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	ReturnRepo    ReturnRepositoryFacade
	ReportingRepo ReportingRepository
}

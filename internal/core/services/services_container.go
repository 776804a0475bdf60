package services

import (
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its repository and service
// dependencies. The ledger and account services come first since the
// trade workflows all post through them.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, repos.CustomerRepo, repos.SupplierRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo, repos.TxManager)

	container.Product = NewProductService(repos.ProductRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)

	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.ProductRepo, container.Account, container.Ledger, repos.TxManager)
	container.Sale = NewSaleService(repos.SaleRepo, repos.ProductRepo, container.Account, container.Ledger, repos.TxManager)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.SaleRepo, container.Account, container.Ledger, repos.TxManager)
	container.Return = NewReturnService(repos.ReturnRepo, repos.SaleRepo, repos.PurchaseRepo, repos.ProductRepo, container.Account, container.Ledger, repos.TxManager)

	container.Reporting = NewReportingService(repos.AccountRepo, repos.LedgerRepo, repos.CustomerRepo, repos.SupplierRepo, repos.ReportingRepo)

	return container
}

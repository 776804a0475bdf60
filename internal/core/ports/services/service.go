package services

// ServiceContainer bundles every service facade handed to the handlers.
type ServiceContainer struct {
	Product   ProductSvcFacade
	Customer  CustomerSvcFacade
	Supplier  SupplierSvcFacade
	Account   AccountSvcFacade
	Ledger    LedgerSvcFacade
	Purchase  PurchaseSvcFacade
	Sale      SaleSvcFacade
	Payment   PaymentSvcFacade
	Return    ReturnSvcFacade
	Reporting ReportingSvcFacade
}

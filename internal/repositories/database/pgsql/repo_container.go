package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TxManager:     &BaseRepository{Pool: pool},
		AccountRepo:   newPgxAccountRepository(pool),
		LedgerRepo:    newPgxLedgerRepository(pool),
		ProductRepo:   newPgxProductRepository(pool),
		CustomerRepo:  newPgxCustomerRepository(pool),
		SupplierRepo:  newPgxSupplierRepository(pool),
		PurchaseRepo:  newPgxPurchaseRepository(pool),
		SaleRepo:      newPgxSaleRepository(pool),
		PaymentRepo:   newPgxPaymentRepository(pool),
		ReturnRepo:    newPgxReturnRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}

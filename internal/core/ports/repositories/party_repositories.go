package repositories

import (
	"context"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
)

// CustomerRepositoryFacade defines operations for customer reference data.
type CustomerRepositoryFacade interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByID retrieves a customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of active customers.
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// SupplierRepositoryFacade defines operations for supplier reference data.
type SupplierRepositoryFacade interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// FindSupplierByID retrieves a supplier by its unique identifier.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of active suppliers.
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

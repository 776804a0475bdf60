package services

import (
	"context"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/quickstock/shop_ledger_app/internal/dto"
)

// ProductSvcFacade manages product reference data.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, actorID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// CustomerSvcFacade manages customer reference data.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actorID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// SupplierSvcFacade manages supplier reference data.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, actorID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

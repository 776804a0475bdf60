package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/quickstock/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

// customerService manages customer reference data.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer persists a new customer. The customer's ledger account is
// not created here; it appears on first trade.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actorID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetCustomerByID retrieves a customer.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return customer, nil
}

// ListCustomers retrieves a page of active customers.
func (s *customerService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	if offset < 0 {
		offset = 0
	}
	customers, err := s.customerRepo.ListCustomers(ctx, normalizeLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// supplierService manages supplier reference data.
type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

// CreateSupplier persists a new supplier.
func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, actorID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

// GetSupplierByID retrieves a supplier.
func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	return supplier, nil
}

// ListSuppliers retrieves a page of active suppliers.
func (s *supplierService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	if offset < 0 {
		offset = 0
	}
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, normalizeLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

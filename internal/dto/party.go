package dto

import (
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IsActive   bool   `json:"isActive"`
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IsActive   bool   `json:"isActive"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		IsActive:   c.IsActive,
	}
}

// ToCustomerResponses converts a slice of domain.Customer.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Phone:      s.Phone,
		Address:    s.Address,
		IsActive:   s.IsActive,
	}
}

// ToSupplierResponses converts a slice of domain.Supplier.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}

package mapping

import (
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/quickstock/shop_ledger_app/internal/models"
)

// ToModelProduct converts a domain.Product for DB storage.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		StockQty:    d.StockQty,
		CostPrice:   d.CostPrice,
		SellPrice:   d.SellPrice,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a models.Product from the DB.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		StockQty:    m.StockQty,
		CostPrice:   m.CostPrice,
		SellPrice:   m.SellPrice,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCustomer converts a domain.Customer for DB storage.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Phone:       d.Phone,
		Address:     d.Address,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a models.Customer from the DB.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Phone:       m.Phone,
		Address:     m.Address,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSupplier converts a domain.Supplier for DB storage.
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:  d.SupplierID,
		Name:        d.Name,
		Phone:       d.Phone,
		Address:     d.Address,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a models.Supplier from the DB.
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Name:        m.Name,
		Phone:       m.Phone,
		Address:     m.Address,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchase converts a domain.Purchase for DB storage.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:    d.PurchaseID,
		SupplierID:    d.SupplierID,
		ProductID:     d.ProductID,
		Qty:           d.Qty,
		PurchasePrice: d.PurchasePrice,
		TotalAmount:   d.TotalAmount,
		PurchaseDate:  d.PurchaseDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a models.Purchase from the DB.
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:    m.PurchaseID,
		SupplierID:    m.SupplierID,
		ProductID:     m.ProductID,
		Qty:           m.Qty,
		PurchasePrice: m.PurchasePrice,
		TotalAmount:   m.TotalAmount,
		PurchaseDate:  m.PurchaseDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSale converts a domain.Sale for DB storage.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:       d.SaleID,
		CustomerID:   d.CustomerID,
		ProductID:    d.ProductID,
		Qty:          d.Qty,
		SellingPrice: d.SellingPrice,
		TotalAmount:  d.TotalAmount,
		PaidAmount:   d.PaidAmount,
		Profit:       d.Profit,
		IsFullyPaid:  d.IsFullyPaid,
		SaleDate:     d.SaleDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a models.Sale from the DB.
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:       m.SaleID,
		CustomerID:   m.CustomerID,
		ProductID:    m.ProductID,
		Qty:          m.Qty,
		SellingPrice: m.SellingPrice,
		TotalAmount:  m.TotalAmount,
		PaidAmount:   m.PaidAmount,
		Profit:       m.Profit,
		IsFullyPaid:  m.IsFullyPaid,
		SaleDate:     m.SaleDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayment converts a domain.Payment for DB storage.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		SaleID:      d.SaleID,
		CustomerID:  d.CustomerID,
		Amount:      d.Amount,
		Method:      string(d.Method),
		PaymentDate: d.PaymentDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a models.Payment from the DB.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		SaleID:      m.SaleID,
		CustomerID:  m.CustomerID,
		Amount:      m.Amount,
		Method:      domain.PaymentMethod(m.Method),
		PaymentDate: m.PaymentDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSalesReturn converts a domain.SalesReturn for DB storage.
func ToModelSalesReturn(d domain.SalesReturn) models.SalesReturn {
	return models.SalesReturn{
		ReturnID:         d.ReturnID,
		SaleID:           d.SaleID,
		CustomerID:       d.CustomerID,
		ProductID:        d.ProductID,
		ReturnQty:        d.ReturnQty,
		UnitPrice:        d.UnitPrice,
		RefundAmount:     d.RefundAmount,
		RefundMethod:     string(d.RefundMethod),
		ProfitAdjustment: d.ProfitAdjustment,
		Reason:           d.Reason,
		ReturnDate:       d.ReturnDate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalesReturn converts a models.SalesReturn from the DB.
func ToDomainSalesReturn(m models.SalesReturn) domain.SalesReturn {
	return domain.SalesReturn{
		ReturnID:         m.ReturnID,
		SaleID:           m.SaleID,
		CustomerID:       m.CustomerID,
		ProductID:        m.ProductID,
		ReturnQty:        m.ReturnQty,
		UnitPrice:        m.UnitPrice,
		RefundAmount:     m.RefundAmount,
		RefundMethod:     domain.RefundMethod(m.RefundMethod),
		ProfitAdjustment: m.ProfitAdjustment,
		Reason:           m.Reason,
		ReturnDate:       m.ReturnDate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseReturn converts a domain.PurchaseReturn for DB storage.
func ToModelPurchaseReturn(d domain.PurchaseReturn) models.PurchaseReturn {
	return models.PurchaseReturn{
		ReturnID:     d.ReturnID,
		PurchaseID:   d.PurchaseID,
		SupplierID:   d.SupplierID,
		ProductID:    d.ProductID,
		ReturnQty:    d.ReturnQty,
		UnitPrice:    d.UnitPrice,
		RefundAmount: d.RefundAmount,
		RefundMethod: string(d.RefundMethod),
		Reason:       d.Reason,
		ReturnDate:   d.ReturnDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseReturn converts a models.PurchaseReturn from the DB.
func ToDomainPurchaseReturn(m models.PurchaseReturn) domain.PurchaseReturn {
	return domain.PurchaseReturn{
		ReturnID:     m.ReturnID,
		PurchaseID:   m.PurchaseID,
		SupplierID:   m.SupplierID,
		ProductID:    m.ProductID,
		ReturnQty:    m.ReturnQty,
		UnitPrice:    m.UnitPrice,
		RefundAmount: m.RefundAmount,
		RefundMethod: domain.RefundMethod(m.RefundMethod),
		Reason:       m.Reason,
		ReturnDate:   m.ReturnDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

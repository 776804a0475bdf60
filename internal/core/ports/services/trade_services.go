package services

import (
	"context"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/quickstock/shop_ledger_app/internal/dto"
)

// PurchaseSvcFacade runs the purchase workflow and reads purchase records.
type PurchaseSvcFacade interface {
	// CreatePurchase records a purchase: stock in, purchase row, and the
	// expense/supplier double entry, all in one transaction.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, actorID string) (*domain.Purchase, error)

	// GetPurchaseByID retrieves a purchase.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves purchases newest first with token pagination.
	ListPurchases(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error)
}

// SaleSvcFacade runs the sale workflow and reads sale records.
type SaleSvcFacade interface {
	// CreateSale records a sale: stock out, sale row, the customer/income
	// double entry and, when paid on the spot, the cash/customer entry.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, actorID string) (*domain.Sale, error)

	// GetSaleByID retrieves a sale.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales newest first with token pagination.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
}

// PaymentSvcFacade runs the payment workflow.
type PaymentSvcFacade interface {
	// RecordPayment applies a payment to a sale and posts the
	// cash-or-bank/customer double entry.
	RecordPayment(ctx context.Context, saleID string, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error)

	// ListPaymentsBySale retrieves the payments recorded against a sale.
	ListPaymentsBySale(ctx context.Context, saleID string) ([]domain.Payment, error)
}

// ReturnSvcFacade runs the sales-return and purchase-return workflows.
type ReturnSvcFacade interface {
	// CreateSalesReturn reverses part of a sale: stock back in, sale totals
	// adjusted, and the sales-return postings.
	CreateSalesReturn(ctx context.Context, saleID string, req dto.CreateSalesReturnRequest, actorID string) (*domain.SalesReturn, error)

	// CreatePurchaseReturn reverses part of a purchase: stock back out,
	// purchase total reduced, and the purchase-return postings.
	CreatePurchaseReturn(ctx context.Context, purchaseID string, req dto.CreatePurchaseReturnRequest, actorID string) (*domain.PurchaseReturn, error)

	// ListSalesReturns retrieves the returns recorded against a sale.
	ListSalesReturns(ctx context.Context, saleID string) ([]domain.SalesReturn, error)

	// ListPurchaseReturns retrieves the returns recorded against a purchase.
	ListPurchaseReturns(ctx context.Context, purchaseID string) ([]domain.PurchaseReturn, error)
}

package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType identifies the role of an account in the ledger.
// System accounts exist once per type; CUSTOMER and SUPPLIER accounts
// exist once per referenced entity.
type AccountType string

const (
	AccountCash           AccountType = "CASH"
	AccountBank           AccountType = "BANK"
	AccountIncome         AccountType = "INCOME"
	AccountExpense        AccountType = "EXPENSE"
	AccountSalesReturn    AccountType = "SALES_RETURN"
	AccountPurchaseReturn AccountType = "PURCHASE_RETURN"
	AccountCustomer       AccountType = "CUSTOMER"
	AccountSupplier       AccountType = "SUPPLIER"
)

// SystemAccountTypes lists the singleton account types.
var SystemAccountTypes = []AccountType{
	AccountCash,
	AccountBank,
	AccountIncome,
	AccountExpense,
	AccountSalesReturn,
	AccountPurchaseReturn,
}

// ReferenceType identifies the owning entity kind of a non-system account.
type ReferenceType string

const (
	ReferenceCustomer ReferenceType = "CUSTOMER"
	ReferenceSupplier ReferenceType = "SUPPLIER"
)

// Account represents a ledger account with its cached running balance.
// Balance is derived: it must always equal the sum of (debit - credit)
// over the account's ledger entries. Only the ledger poster may move it.
type Account struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	IsSystem      bool            `json:"isSystem"`
	ReferenceType ReferenceType   `json:"referenceType,omitempty"` // Set for CUSTOMER/SUPPLIER accounts
	ReferenceID   string          `json:"referenceID,omitempty"`   // Owning customer/supplier id
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}

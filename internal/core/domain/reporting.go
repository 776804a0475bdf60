package domain

import (
	"github.com/shopspring/decimal"
)

// AccountStatement is a read-only projection of an account's ledger
// activity over a date range. ClosingBalance is the account's current
// balance, not the range-bound running total.
type AccountStatement struct {
	Account        Account         `json:"account"`
	Entries        []LedgerEntry   `json:"entries"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// PartyStatement decomposes a customer or supplier statement into
// trade, payment and return subtotals by transaction type.
type PartyStatement struct {
	AccountStatement
	TradeTotal    decimal.Decimal `json:"tradeTotal"`    // Sales or purchases
	PaymentsTotal decimal.Decimal `json:"paymentsTotal"` // Payments (incl. cash settled on sale)
	ReturnsTotal  decimal.Decimal `json:"returnsTotal"`
}

// AccountsSummary aggregates current balances across the chart of accounts.
type AccountsSummary struct {
	Accounts    []Account       `json:"accounts"`
	CashBalance decimal.Decimal `json:"cashBalance"`
	BankBalance decimal.Decimal `json:"bankBalance"`
	Receivables decimal.Decimal `json:"receivables"` // Sum of positive customer balances
	Payables    decimal.Decimal `json:"payables"`    // Sum of amounts owed to suppliers
}

// FinancialSummary is the headline trading view over sales and purchases.
type FinancialSummary struct {
	TotalRevenue           decimal.Decimal `json:"totalRevenue"`
	TotalExpenses          decimal.Decimal `json:"totalExpenses"`
	OutstandingReceivables decimal.Decimal `json:"outstandingReceivables"`
	NetProfit              decimal.Decimal `json:"netProfit"`
	GrossProfit            decimal.Decimal `json:"grossProfit"` // Sum of per-sale profit snapshots
}

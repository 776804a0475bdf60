package dto

import (
	"time"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementParams holds the optional date range for statement views.
type StatementParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// AccountStatementResponse defines the data returned for an account statement.
type AccountStatementResponse struct {
	Account        AccountResponse       `json:"account"`
	Entries        []LedgerEntryResponse `json:"entries"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
}

// PartyStatementResponse adds per-transaction-type subtotals for a
// customer or supplier statement.
type PartyStatementResponse struct {
	AccountStatementResponse
	TradeTotal    decimal.Decimal `json:"tradeTotal"`
	PaymentsTotal decimal.Decimal `json:"paymentsTotal"`
	ReturnsTotal  decimal.Decimal `json:"returnsTotal"`
}

// AccountsSummaryResponse defines the accounts summary view.
type AccountsSummaryResponse struct {
	Accounts    []AccountResponse `json:"accounts"`
	CashBalance decimal.Decimal   `json:"cashBalance"`
	BankBalance decimal.Decimal   `json:"bankBalance"`
	Receivables decimal.Decimal   `json:"receivables"`
	Payables    decimal.Decimal   `json:"payables"`
}

// FinancialSummaryResponse defines the headline trading totals.
type FinancialSummaryResponse struct {
	TotalRevenue           decimal.Decimal `json:"totalRevenue"`
	TotalExpenses          decimal.Decimal `json:"totalExpenses"`
	OutstandingReceivables decimal.Decimal `json:"outstandingReceivables"`
	NetProfit              decimal.Decimal `json:"netProfit"`
	GrossProfit            decimal.Decimal `json:"grossProfit"`
}

// ToAccountStatementResponse converts a domain.AccountStatement.
func ToAccountStatementResponse(s *domain.AccountStatement) AccountStatementResponse {
	return AccountStatementResponse{
		Account:        ToAccountResponse(&s.Account),
		Entries:        ToLedgerEntryResponses(s.Entries),
		TotalDebit:     s.TotalDebit,
		TotalCredit:    s.TotalCredit,
		ClosingBalance: s.ClosingBalance,
	}
}

// ToPartyStatementResponse converts a domain.PartyStatement.
func ToPartyStatementResponse(s *domain.PartyStatement) PartyStatementResponse {
	return PartyStatementResponse{
		AccountStatementResponse: ToAccountStatementResponse(&s.AccountStatement),
		TradeTotal:               s.TradeTotal,
		PaymentsTotal:            s.PaymentsTotal,
		ReturnsTotal:             s.ReturnsTotal,
	}
}

// ToAccountsSummaryResponse converts a domain.AccountsSummary.
func ToAccountsSummaryResponse(s *domain.AccountsSummary) AccountsSummaryResponse {
	return AccountsSummaryResponse{
		Accounts:    ToAccountResponses(s.Accounts),
		CashBalance: s.CashBalance,
		BankBalance: s.BankBalance,
		Receivables: s.Receivables,
		Payables:    s.Payables,
	}
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalRevenue:           s.TotalRevenue,
		TotalExpenses:          s.TotalExpenses,
		OutstandingReceivables: s.OutstandingReceivables,
		NetProfit:              s.NetProfit,
		GrossProfit:            s.GrossProfit,
	}
}

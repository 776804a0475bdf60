package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
)

func TestLedgerEntry_Signed(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.LedgerEntry
		want  decimal.Decimal
	}{
		{
			name: "debit entry increases the balance",
			entry: domain.LedgerEntry{
				DebitAmount:  decimal.NewFromInt(250),
				CreditAmount: decimal.Zero,
			},
			want: decimal.NewFromInt(250),
		},
		{
			name: "credit entry decreases the balance",
			entry: domain.LedgerEntry{
				DebitAmount:  decimal.Zero,
				CreditAmount: decimal.NewFromInt(90),
			},
			want: decimal.NewFromInt(-90),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.entry.Signed().Equal(tt.want))
		})
	}
}

func TestLedgerEntry_IsDebit(t *testing.T) {
	debit := domain.LedgerEntry{DebitAmount: decimal.NewFromInt(10)}
	credit := domain.LedgerEntry{CreditAmount: decimal.NewFromInt(10)}

	assert.True(t, debit.IsDebit())
	assert.False(t, credit.IsDebit())
}

func TestSale_RecalculateFullyPaid(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		paid       int64
		wantSettled bool
	}{
		{name: "unpaid", total: 500, paid: 0, wantSettled: false},
		{name: "partially paid", total: 500, paid: 200, wantSettled: false},
		{name: "exactly paid", total: 500, paid: 500, wantSettled: true},
		{name: "overpaid", total: 500, paid: 600, wantSettled: true},
		{name: "zero total after full return", total: 0, paid: 0, wantSettled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := domain.Sale{
				TotalAmount: decimal.NewFromInt(tt.total),
				PaidAmount:  decimal.NewFromInt(tt.paid),
			}
			sale.RecalculateFullyPaid()
			assert.Equal(t, tt.wantSettled, sale.IsFullyPaid)
		})
	}
}

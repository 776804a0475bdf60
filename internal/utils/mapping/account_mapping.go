package mapping

import (
	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	"github.com/quickstock/shop_ledger_app/internal/models"
)

// ToDomainAccount converts a models.Account from the DB.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		IsSystem:      m.IsSystem,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Balance:       m.Balance,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerEntry converts a domain.LedgerEntry for DB storage.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		AccountID:       d.AccountID,
		TransactionType: string(d.TransactionType),
		TransactionID:   d.TransactionID,
		DebitAmount:     d.DebitAmount,
		CreditAmount:    d.CreditAmount,
		BalanceAfter:    d.BalanceAfter,
		Narration:       d.Narration,
		EntryDate:       d.EntryDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a models.LedgerEntry from the DB.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		AccountID:       m.AccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		TransactionID:   m.TransactionID,
		DebitAmount:     m.DebitAmount,
		CreditAmount:    m.CreditAmount,
		BalanceAfter:    m.BalanceAfter,
		Narration:       m.Narration,
		EntryDate:       m.EntryDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

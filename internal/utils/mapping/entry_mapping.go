package mapping

import (
	"database/sql"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
// The join projection columns are read-only and left empty.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		OwnerID:         d.OwnerID,
		Kind:            string(d.Kind),
		Description:     d.Description,
		Fixed:           d.Fixed,
		DueDate:         d.DueDate,
		Settled:         d.Settled,
		SettledAt:       d.SettledAt,
		Amount:          d.Amount,
		AmountMasked:    d.AmountMasked,
		CategoryID:      d.CategoryID,
		PaymentMethodID: toNullString(d.PaymentMethodID),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      m.EntryID,
		OwnerID:      m.OwnerID,
		Kind:         domain.EntryKind(m.Kind),
		Description:  m.Description,
		Fixed:        m.Fixed,
		DueDate:      m.DueDate,
		Settled:      m.Settled,
		SettledAt:    m.SettledAt,
		Amount:       m.Amount,
		AmountMasked: m.AmountMasked,

		CategoryID:          m.CategoryID,
		CategoryDescription: m.CategoryDescription.String,
		CategoryCode:        m.CategoryCode.String,
		CategoryGroup:       domain.CategoryGroup(m.CategoryGroup.String),

		PaymentMethodID:          m.PaymentMethodID.String,
		PaymentMethodDescription: m.PaymentMethodDescription.String,

		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

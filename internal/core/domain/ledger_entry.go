package domain

import (
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EntryKind discriminates the two ledger entry variants explicitly, so
// sort/filter helpers never have to sniff which fields happen to be set.
type EntryKind string

const (
	KindBill       EntryKind = "BILL"
	KindReceivable EntryKind = "RECEIVABLE"
)

// LedgerEntry is a bill (expense) or receivable (income) record.
//
// Settlement date and payment method must read as absent whenever Settled is
// false, regardless of what is stored; use SettlementView for that
// projection. Payment status is never stored: it is recomputed on every read
// against a reference date.
type LedgerEntry struct {
	EntryID      string    `json:"entryID"`
	OwnerID      string    `json:"ownerID"` // PersonUser reference
	Kind         EntryKind `json:"kind"`
	Description  string    `json:"description"`
	Fixed        bool      `json:"fixed"` // fixed (recurring) vs variable
	DueDate      time.Time `json:"dueDate"`
	Settled      bool      `json:"settled"`
	SettledAt    *time.Time `json:"settledAt,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	AmountMasked string          `json:"amountMasked"`

	CategoryID          string        `json:"categoryID"`
	CategoryDescription string        `json:"categoryDescription,omitempty"`
	CategoryCode        string        `json:"categoryCode,omitempty"`
	CategoryGroup       CategoryGroup `json:"categoryGroup,omitempty"`

	PaymentMethodID          string `json:"paymentMethodID,omitempty"`
	PaymentMethodDescription string `json:"paymentMethodDescription,omitempty"`

	AuditFields
}

// SettlementView is the read projection of the settlement fields.
type SettlementView struct {
	SettledAt                *time.Time
	PaymentMethodID          string
	PaymentMethodDescription string
}

// Settlement returns the settlement fields, absent unless the entry is
// settled.
func (e *LedgerEntry) Settlement() SettlementView {
	if !e.Settled {
		return SettlementView{}
	}
	return SettlementView{
		SettledAt:                e.SettledAt,
		PaymentMethodID:          e.PaymentMethodID,
		PaymentMethodDescription: e.PaymentMethodDescription,
	}
}

// NewEntryParams carries the caller-supplied fields for building an entry.
type NewEntryParams struct {
	OwnerID      string
	Kind         EntryKind
	Description  string
	Fixed        bool
	DueDate      time.Time
	AmountMasked string
	CategoryID   string
}

// LedgerEntryFactory builds validated ledger entries. Construction of the
// factory itself fails when no amount-unmasking collaborator is configured.
type LedgerEntryFactory struct {
	unmasker AmountUnmasker
}

// NewLedgerEntryFactory returns a factory bound to the given unmasker.
func NewLedgerEntryFactory(unmasker AmountUnmasker) (*LedgerEntryFactory, error) {
	if unmasker == nil {
		return nil, apperrors.NewValidationError("amount unmasker is required")
	}
	return &LedgerEntryFactory{unmasker: unmasker}, nil
}

// New validates the params and builds an unsettled entry. Due date and amount
// are mandatory at creation.
func (f *LedgerEntryFactory) New(p NewEntryParams, now time.Time) (*LedgerEntry, error) {
	if p.OwnerID == "" {
		return nil, apperrors.NewMissingIdentityError()
	}
	if p.DueDate.IsZero() {
		return nil, apperrors.NewValidationError("due date is required")
	}
	if p.AmountMasked == "" {
		return nil, apperrors.NewValidationError("amount is required")
	}
	amount, err := f.unmasker.Unmask(p.AmountMasked)
	if err != nil {
		return nil, apperrors.NewValidationError("amount is invalid")
	}

	return &LedgerEntry{
		OwnerID:      p.OwnerID,
		Kind:         p.Kind,
		Description:  p.Description,
		Fixed:        p.Fixed,
		DueDate:      p.DueDate,
		Settled:      false,
		Amount:       amount,
		AmountMasked: p.AmountMasked,
		CategoryID:   p.CategoryID,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     p.OwnerID,
			LastUpdatedAt: now,
			LastUpdatedBy: p.OwnerID,
		},
	}, nil
}

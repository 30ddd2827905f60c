package domain

import (
	"testing"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerEntryFactory_RequiresUnmasker(t *testing.T) {
	factory, err := NewLedgerEntryFactory(nil)

	assert.Nil(t, factory)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLedgerEntryFactory_New(t *testing.T) {
	factory, err := NewLedgerEntryFactory(NewAmountUnmasker(DefaultCurrencyMask))
	require.NoError(t, err)

	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	params := NewEntryParams{
		OwnerID:      "u1",
		Kind:         KindBill,
		Description:  "Electricity",
		Fixed:        true,
		DueDate:      time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		AmountMasked: "R$ 1.234,56",
		CategoryID:   "cat-1",
	}

	entry, err := factory.New(params, now)

	require.NoError(t, err)
	assert.Equal(t, "u1", entry.OwnerID)
	assert.Equal(t, KindBill, entry.Kind)
	assert.False(t, entry.Settled)
	assert.Nil(t, entry.SettledAt)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 1.234,56", entry.AmountMasked)
	assert.Equal(t, now, entry.CreatedAt)
	assert.Equal(t, "u1", entry.CreatedBy)
}

func TestLedgerEntryFactory_Validation(t *testing.T) {
	factory, err := NewLedgerEntryFactory(NewAmountUnmasker(DefaultCurrencyMask))
	require.NoError(t, err)
	now := time.Now()

	tests := []struct {
		name   string
		params NewEntryParams
		want   error
	}{
		{
			name:   "missing owner",
			params: NewEntryParams{DueDate: now, AmountMasked: "R$ 10,00"},
			want:   apperrors.ErrMissingIdentity,
		},
		{
			name:   "missing due date",
			params: NewEntryParams{OwnerID: "u1", AmountMasked: "R$ 10,00"},
			want:   apperrors.ErrValidation,
		},
		{
			name:   "missing amount",
			params: NewEntryParams{OwnerID: "u1", DueDate: now},
			want:   apperrors.ErrValidation,
		},
		{
			name:   "unparseable amount",
			params: NewEntryParams{OwnerID: "u1", DueDate: now, AmountMasked: "R$ abc"},
			want:   apperrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := factory.New(tc.params, now)
			assert.Nil(t, entry)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSettlement_AbsentWhileUnsettled(t *testing.T) {
	settledAt := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	entry := LedgerEntry{
		Settled:                  false,
		SettledAt:                &settledAt, // stored but must not be visible
		PaymentMethodID:          "pm-1",
		PaymentMethodDescription: "Debit card",
	}

	view := entry.Settlement()
	assert.Nil(t, view.SettledAt)
	assert.Empty(t, view.PaymentMethodID)
	assert.Empty(t, view.PaymentMethodDescription)

	entry.Settled = true
	view = entry.Settlement()
	require.NotNil(t, view.SettledAt)
	assert.Equal(t, settledAt, *view.SettledAt)
	assert.Equal(t, "pm-1", view.PaymentMethodID)
	assert.Equal(t, "Debit card", view.PaymentMethodDescription)
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmask(t *testing.T) {
	unmasker := NewAmountUnmasker(DefaultCurrencyMask)

	tests := []struct {
		masked string
		want   string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"R$ 0,99", "0.99"},
		{"R$ 1.000.000,00", "1000000.00"},
		{"10,50", "10.50"},
		{"R$ -25,00", "-25.00"},
	}

	for _, tc := range tests {
		t.Run(tc.masked, func(t *testing.T) {
			got, err := unmasker.Unmask(tc.masked)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestUnmask_Invalid(t *testing.T) {
	unmasker := NewAmountUnmasker(DefaultCurrencyMask)

	for _, masked := range []string{"", "R$", "R$ abc"} {
		_, err := unmasker.Unmask(masked)
		assert.Error(t, err, "masked=%q", masked)
	}
}

func TestMask_RoundTrip(t *testing.T) {
	unmasker := NewAmountUnmasker(DefaultCurrencyMask)

	tests := []struct {
		amount string
		want   string
	}{
		{"1234.56", "R$ 1.234,56"},
		{"0.9", "R$ 0,90"},
		{"1000000", "R$ 1.000.000,00"},
		{"-25", "R$ -25,00"},
	}

	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			masked := DefaultCurrencyMask.Mask(decimal.RequireFromString(tc.amount))
			assert.Equal(t, tc.want, masked)

			back, err := unmasker.Unmask(masked)
			require.NoError(t, err)
			assert.True(t, back.Equal(decimal.RequireFromString(tc.amount)))
		})
	}
}

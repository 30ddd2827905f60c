package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountUnmasker converts a masked display amount (e.g. "R$ 1.234,56") into
// its numeric form. Entries store both forms; the numeric one drives every
// aggregation.
type AmountUnmasker interface {
	Unmask(masked string) (decimal.Decimal, error)
}

// CurrencyMask describes the display format of masked amounts.
type CurrencyMask struct {
	Symbol       string
	ThousandsSep string
	DecimalSep   string
}

// DefaultCurrencyMask matches the display format the bookkeeping frontend
// produces.
var DefaultCurrencyMask = CurrencyMask{Symbol: "R$", ThousandsSep: ".", DecimalSep: ","}

type currencyUnmasker struct {
	mask CurrencyMask
}

// NewAmountUnmasker builds an AmountUnmasker for the given mask format.
func NewAmountUnmasker(mask CurrencyMask) AmountUnmasker {
	return &currencyUnmasker{mask: mask}
}

func (u *currencyUnmasker) Unmask(masked string) (decimal.Decimal, error) {
	s := strings.TrimSpace(masked)
	s = strings.TrimSpace(strings.TrimPrefix(s, u.mask.Symbol))
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	s = strings.ReplaceAll(s, u.mask.ThousandsSep, "")
	s = strings.Replace(s, u.mask.DecimalSep, ".", 1)
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid masked amount %q: %w", masked, err)
	}
	if negative {
		value = value.Neg()
	}
	return value, nil
}

// Mask renders the numeric amount back into its display form.
func (m CurrencyMask) Mask(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteString(m.ThousandsSep)
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + m.DecimalSep + fracPart
	if negative {
		out = "-" + out
	}
	if m.Symbol != "" {
		out = m.Symbol + " " + out
	}
	return out
}

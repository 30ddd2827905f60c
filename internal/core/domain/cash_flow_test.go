package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amounts(values ...string) []LedgerEntry {
	entries := make([]LedgerEntry, len(values))
	for i, v := range values {
		entries[i] = LedgerEntry{Amount: decimal.RequireFromString(v)}
	}
	return entries
}

func TestBuildCashFlow_Scenario(t *testing.T) {
	// Bills: 100 paid, 200 unpaid, 200 paid. Receivables: 800 unpaid,
	// 100 unpaid, 100 paid.
	bills := amounts("100", "200", "200")
	settledBills := amounts("100", "200")
	receivables := amounts("800", "100", "100")
	settledReceivables := amounts("100")

	summary := BuildCashFlow(bills, settledBills, receivables, settledReceivables)

	assert.True(t, summary.GeneralExpenses.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.PaidExpenses.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.GeneralIncomes.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.PaidIncomes.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.GeneralProfit.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.PaidProfit.Equal(decimal.NewFromInt(-200)))
}

func TestBuildCashFlow_EmptyPeriod(t *testing.T) {
	summary := BuildCashFlow(nil, nil, nil, nil)

	assert.True(t, summary.GeneralExpenses.IsZero())
	assert.True(t, summary.PaidExpenses.IsZero())
	assert.True(t, summary.GeneralIncomes.IsZero())
	assert.True(t, summary.PaidIncomes.IsZero())
	assert.True(t, summary.GeneralProfit.IsZero())
	assert.True(t, summary.PaidProfit.IsZero())
}

func TestBuildCashFlow_ProfitIdentities(t *testing.T) {
	bills := amounts("123.45", "-10.50", "0.05")
	settledBills := amounts("123.45")
	receivables := amounts("999.99", "-0.99")
	settledReceivables := amounts("-0.99")

	summary := BuildCashFlow(bills, settledBills, receivables, settledReceivables)

	assert.True(t, summary.GeneralProfit.Equal(summary.GeneralIncomes.Sub(summary.GeneralExpenses)))
	assert.True(t, summary.PaidProfit.Equal(summary.PaidIncomes.Sub(summary.PaidExpenses)))
}

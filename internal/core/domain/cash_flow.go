package domain

import "github.com/shopspring/decimal"

// CashFlowSummary is the monthly fixed-vs-settled picture of a period.
type CashFlowSummary struct {
	GeneralExpenses decimal.Decimal `json:"generalExpenses"`
	PaidExpenses    decimal.Decimal `json:"paidExpenses"`
	GeneralIncomes  decimal.Decimal `json:"generalIncomes"`
	PaidIncomes     decimal.Decimal `json:"paidIncomes"`
	GeneralProfit   decimal.Decimal `json:"generalProfit"`
	PaidProfit      decimal.Decimal `json:"paidProfit"`
}

// BuildCashFlow sums the four caller-pre-split subsets of a period and
// derives the two profit figures. It trusts the pre-filtering and performs
// none itself.
func BuildCashFlow(bills, settledBills, receivables, settledReceivables []LedgerEntry) CashFlowSummary {
	summary := CashFlowSummary{
		GeneralExpenses: sumAmounts(bills),
		PaidExpenses:    sumAmounts(settledBills),
		GeneralIncomes:  sumAmounts(receivables),
		PaidIncomes:     sumAmounts(settledReceivables),
	}
	summary.GeneralProfit = summary.GeneralIncomes.Sub(summary.GeneralExpenses)
	summary.PaidProfit = summary.PaidIncomes.Sub(summary.PaidExpenses)
	return summary
}

func sumAmounts(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	return total
}

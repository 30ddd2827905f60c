package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryAggregate accumulates a reporting period's entries for one
// category. It is built fresh per request and discarded after the response.
type CategoryAggregate struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Group       CategoryGroup   `json:"group,omitempty"`
	Total       decimal.Decimal `json:"total"`
	Percentage  decimal.Decimal `json:"percentage"`
}

var oneHundred = decimal.NewFromInt(100)

// SummarizeByCategory groups a period's entries by category code, accumulates
// totals and computes each category's percentage share of the period's grand
// total, ranked descending (stable on ties). A zero grand total yields an
// empty result rather than non-finite percentages.
func SummarizeByCategory(entries []LedgerEntry, grandTotal decimal.Decimal) []CategoryAggregate {
	if grandTotal.IsZero() {
		return []CategoryAggregate{}
	}

	index := make(map[string]int, len(entries))
	aggregates := make([]CategoryAggregate, 0, len(entries))
	for _, entry := range entries {
		i, ok := index[entry.CategoryCode]
		if !ok {
			// First occurrence seeds the descriptive fields.
			aggregates = append(aggregates, CategoryAggregate{
				Code:        entry.CategoryCode,
				Description: entry.CategoryDescription,
				Group:       entry.CategoryGroup,
				Total:       decimal.Zero,
			})
			i = len(aggregates) - 1
			index[entry.CategoryCode] = i
		}
		aggregates[i].Total = aggregates[i].Total.Add(entry.Amount)
		aggregates[i].Percentage = aggregates[i].Total.Div(grandTotal).Mul(oneHundred).Round(2)
	}

	sort.SliceStable(aggregates, func(a, b int) bool {
		return aggregates[a].Percentage.GreaterThan(aggregates[b].Percentage)
	})
	return aggregates
}

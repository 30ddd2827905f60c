package dto

import "github.com/hlmsouza/home_ledger_app/internal/core/domain"

// CategoryAggregateResponse is one row of the category ranking.
type CategoryAggregateResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Group       string `json:"group,omitempty"`
	Total       string `json:"total"`
	Percentage  string `json:"percentage"`
}

// ToCategorySummaryResponse converts the ranked aggregates.
func ToCategorySummaryResponse(aggregates []domain.CategoryAggregate) []CategoryAggregateResponse {
	out := make([]CategoryAggregateResponse, len(aggregates))
	for i, agg := range aggregates {
		out[i] = CategoryAggregateResponse{
			Code:        agg.Code,
			Description: agg.Description,
			Group:       string(agg.Group),
			Total:       agg.Total.StringFixed(2),
			Percentage:  agg.Percentage.StringFixed(2),
		}
	}
	return out
}

// CashFlowResponse is the monthly cash-flow summary projection.
type CashFlowResponse struct {
	GeneralExpenses string `json:"generalExpenses"`
	PaidExpenses    string `json:"paidExpenses"`
	GeneralIncomes  string `json:"generalIncomes"`
	PaidIncomes     string `json:"paidIncomes"`
	GeneralProfit   string `json:"generalProfit"`
	PaidProfit      string `json:"paidProfit"`
}

// ToCashFlowResponse converts a domain CashFlowSummary.
func ToCashFlowResponse(s *domain.CashFlowSummary) CashFlowResponse {
	return CashFlowResponse{
		GeneralExpenses: s.GeneralExpenses.StringFixed(2),
		PaidExpenses:    s.PaidExpenses.StringFixed(2),
		GeneralIncomes:  s.GeneralIncomes.StringFixed(2),
		PaidIncomes:     s.PaidIncomes.StringFixed(2),
		GeneralProfit:   s.GeneralProfit.StringFixed(2),
		PaidProfit:      s.PaidProfit.StringFixed(2),
	}
}

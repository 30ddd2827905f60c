package services

import (
	"context"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
)

// SummarySvcFacade produces the period reports derived from the cached entry
// services.
type SummarySvcFacade interface {
	// CategorySummary ranks the period's bills by category share.
	CategorySummary(ctx context.Context, ownerID string, start, end time.Time) ([]domain.CategoryAggregate, error)

	// CashFlow produces the monthly general/settled totals and profits.
	CashFlow(ctx context.Context, ownerID string, start, end time.Time) (*domain.CashFlowSummary, error)
}

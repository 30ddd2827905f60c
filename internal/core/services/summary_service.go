package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// summaryPageSize is the page size used when draining a month window from the
// entry services. The reports need every entry of the window, so the service
// pages until the last page regardless.
const summaryPageSize = 200

// summaryService implements SummarySvcFacade on top of the cached entry
// services, so the reports benefit from (and never bypass) the caching layer.
type summaryService struct {
	BaseService
	bills       portssvc.BillReaderSvc
	receivables portssvc.ReceivableReaderSvc
}

// NewSummaryService creates a new summary service.
func NewSummaryService(bills portssvc.BillReaderSvc, receivables portssvc.ReceivableReaderSvc) portssvc.SummarySvcFacade {
	return &summaryService{
		bills:       bills,
		receivables: receivables,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

func (s *summaryService) CategorySummary(ctx context.Context, ownerID string, start, end time.Time) ([]domain.CategoryAggregate, error) {
	entries, err := s.collectEntries(ctx, ownerID, start, end, s.bills.ListBillsByPayableMonth)
	if err != nil {
		s.LogError(ctx, err, "Failed to collect bills for category summary",
			slog.String("owner_id", ownerID))
		return nil, err
	}

	grandTotal := decimal.Zero
	for _, entry := range entries {
		grandTotal = grandTotal.Add(entry.Amount)
	}
	return domain.SummarizeByCategory(entries, grandTotal), nil
}

func (s *summaryService) CashFlow(ctx context.Context, ownerID string, start, end time.Time) (*domain.CashFlowSummary, error) {
	bills, err := s.collectEntries(ctx, ownerID, start, end, s.bills.ListBillsByPayableMonth)
	if err != nil {
		s.LogError(ctx, err, "Failed to collect bills for cash flow",
			slog.String("owner_id", ownerID))
		return nil, err
	}
	receivables, err := s.collectEntries(ctx, ownerID, start, end, s.receivables.ListReceivablesByReceivableMonth)
	if err != nil {
		s.LogError(ctx, err, "Failed to collect receivables for cash flow",
			slog.String("owner_id", ownerID))
		return nil, err
	}

	summary := domain.BuildCashFlow(bills, settledSubset(bills), receivables, settledSubset(receivables))
	return &summary, nil
}

// collectEntries drains every page of one month-window listing.
func (s *summaryService) collectEntries(ctx context.Context, ownerID string, start, end time.Time, list func(context.Context, string, time.Time, time.Time, int, int) (*domain.Page[domain.LedgerEntry], error)) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	for page := 0; ; page++ {
		result, err := list(ctx, ownerID, start, end, page, summaryPageSize)
		if err != nil {
			return nil, err
		}
		if result == nil || len(result.Content) == 0 {
			return entries, nil
		}
		entries = append(entries, result.Content...)
		if page >= result.TotalPages-1 {
			return entries, nil
		}
	}
}

func settledSubset(entries []domain.LedgerEntry) []domain.LedgerEntry {
	settled := make([]domain.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Settled {
			settled = append(settled, entry)
		}
	}
	return settled
}

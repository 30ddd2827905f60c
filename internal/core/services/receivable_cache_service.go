package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/apperrors"
	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/core/ports"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
)

// receivableCacheService implements the ReceivableSvcFacade interface with
// the same read-through/write-through discipline as the bill service, on the
// income side of the ledger.
type receivableCacheService struct {
	cacheStore
	receivableRepo portsrepo.ReceivableRepositoryFacade
	hasher         ports.KeyHasher
	factory        *domain.LedgerEntryFactory
	unmasker       domain.AmountUnmasker
	categoryRepo   portsrepo.CategoryReader
}

// ReceivableServiceOption is a functional option for configuring the
// receivable service.
type ReceivableServiceOption func(*receivableCacheService)

// WithReceivableCategoryReader adds the category lookup used to denormalize
// category fields onto entries.
func WithReceivableCategoryReader(repo portsrepo.CategoryReader) ReceivableServiceOption {
	return func(s *receivableCacheService) {
		s.categoryRepo = repo
	}
}

// NewReceivableCacheService creates a new receivable service.
func NewReceivableCacheService(repo portsrepo.ReceivableRepositoryFacade, cache ports.CacheGateway, hasher ports.KeyHasher, unmasker domain.AmountUnmasker, options ...ReceivableServiceOption) (portssvc.ReceivableSvcFacade, error) {
	factory, err := domain.NewLedgerEntryFactory(unmasker)
	if err != nil {
		return nil, err
	}

	svc := &receivableCacheService{
		cacheStore:     cacheStore{cache: cache},
		receivableRepo: repo,
		hasher:         hasher,
		factory:        factory,
		unmasker:       unmasker,
	}
	for _, option := range options {
		option(svc)
	}
	return svc, nil
}

var _ portssvc.ReceivableSvcFacade = (*receivableCacheService)(nil)

func (s *receivableCacheService) GetReceivableByID(ctx context.Context, ownerID, receivableID string) (*domain.LedgerEntry, error) {
	key := cacheKey(ownerID, entityReceivable, opListByID, receivableID)
	if cached, ok := recoverValue[domain.LedgerEntry](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	entry, err := s.receivableRepo.FindReceivableByID(ctx, ownerID, receivableID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find receivable by ID", slog.String("receivable_id", receivableID))
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	s.save(ctx, key, entry, ledgerTTL)
	return entry, nil
}

func (s *receivableCacheService) ListReceivables(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error) {
	key := cacheKey(ownerID, entityReceivable, opListAll, s.hasher.Execute(params))
	if cached, ok := recoverPage[domain.LedgerEntry](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	page, err := s.receivableRepo.ListReceivables(ctx, ownerID, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receivables", slog.String("owner_id", ownerID))
		return nil, err
	}
	if page != nil && len(page.Content) > 0 {
		s.save(ctx, key, page, ledgerTTL)
	}
	return page, nil
}

func (s *receivableCacheService) ListReceivablesByReceivableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error) {
	key := cacheKey(ownerID, entityReceivable, opListByPayableMonth, monthDiscriminator(start, end, page, size))
	if cached, ok := recoverPage[domain.LedgerEntry](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	result, err := s.receivableRepo.ListReceivablesByReceivableMonth(ctx, ownerID, start, end, page, size)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receivables by month",
			slog.String("owner_id", ownerID),
			slog.Time("start", start), slog.Time("end", end))
		return nil, err
	}
	if result != nil && len(result.Content) > 0 {
		s.save(ctx, key, result, ledgerTTL)
	}
	return result, nil
}

func (s *receivableCacheService) CreateReceivable(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error) {
	entry, err := s.factory.New(domain.NewEntryParams{
		OwnerID:      ownerID,
		Kind:         domain.KindReceivable,
		Description:  req.Description,
		Fixed:        req.Fixed,
		DueDate:      req.DueDate,
		AmountMasked: req.AmountMasked,
		CategoryID:   req.CategoryID,
	}, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.attachCategory(ctx, entry); err != nil {
		return nil, err
	}

	stored, err := s.receivableRepo.SaveReceivable(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save receivable", slog.String("owner_id", ownerID))
		return nil, err
	}
	if stored == nil || stored.EntryID == "" {
		return stored, nil
	}

	s.invalidatePrefix(ctx, ownerPrefix(ownerID, entityReceivable))
	s.LogInfo(ctx, "Receivable created", slog.String("receivable_id", stored.EntryID))
	return stored, nil
}

func (s *receivableCacheService) UpdateReceivable(ctx context.Context, ownerID, receivableID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error) {
	entry, err := s.GetReceivableByID(ctx, ownerID, receivableID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	if err := s.applyEntryUpdate(ctx, entry, req, ownerID); err != nil {
		return nil, err
	}

	fresh, err := s.receivableRepo.UpdateReceivable(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to update receivable", slog.String("receivable_id", receivableID))
		return nil, err
	}
	if fresh == nil {
		return nil, nil
	}

	s.invalidatePrefix(ctx, ownerPrefix(ownerID, entityReceivable))
	s.save(ctx, cacheKey(ownerID, entityReceivable, opListByID, receivableID), fresh, ledgerTTL)
	s.LogInfo(ctx, "Receivable updated", slog.String("receivable_id", receivableID))
	return fresh, nil
}

func (s *receivableCacheService) DeleteReceivable(ctx context.Context, ownerID, receivableID string) error {
	deleted, err := s.receivableRepo.DeleteReceivable(ctx, ownerID, receivableID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete receivable", slog.String("receivable_id", receivableID))
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	s.invalidatePrefix(ctx, ownerPrefix(ownerID, entityReceivable))
	s.LogInfo(ctx, "Receivable deleted", slog.String("receivable_id", receivableID))
	return nil
}

func (s *receivableCacheService) attachCategory(ctx context.Context, entry *domain.LedgerEntry) error {
	if s.categoryRepo == nil || entry.CategoryID == "" {
		return nil
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, entry.CategoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve category", slog.String("category_id", entry.CategoryID))
		return err
	}
	if category == nil {
		return apperrors.NewValidationError("unknown category")
	}
	entry.CategoryDescription = category.Description
	entry.CategoryCode = category.Code
	entry.CategoryGroup = category.Group
	return nil
}

func (s *receivableCacheService) applyEntryUpdate(ctx context.Context, entry *domain.LedgerEntry, req dto.UpdateEntryRequest, updaterID string) error {
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Fixed != nil {
		entry.Fixed = *req.Fixed
	}
	if req.DueDate != nil {
		if req.DueDate.IsZero() {
			return apperrors.NewValidationError("due date is required")
		}
		entry.DueDate = *req.DueDate
	}
	if req.AmountMasked != nil {
		amount, err := s.unmasker.Unmask(*req.AmountMasked)
		if err != nil {
			return apperrors.NewValidationError("amount is invalid")
		}
		entry.Amount = amount
		entry.AmountMasked = *req.AmountMasked
	}
	if req.CategoryID != nil {
		entry.CategoryID = *req.CategoryID
		entry.CategoryDescription = ""
		entry.CategoryCode = ""
		entry.CategoryGroup = ""
		if err := s.attachCategory(ctx, entry); err != nil {
			return err
		}
	}
	if req.Settled != nil {
		entry.Settled = *req.Settled
		if entry.Settled {
			settledAt := time.Now()
			if req.SettledAt != nil {
				settledAt = *req.SettledAt
			}
			entry.SettledAt = &settledAt
			if req.PaymentMethodID != nil {
				entry.PaymentMethodID = *req.PaymentMethodID
			}
		} else {
			entry.SettledAt = nil
			entry.PaymentMethodID = ""
			entry.PaymentMethodDescription = ""
		}
	} else if req.PaymentMethodID != nil && entry.Settled {
		entry.PaymentMethodID = *req.PaymentMethodID
	}

	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = updaterID
	return nil
}

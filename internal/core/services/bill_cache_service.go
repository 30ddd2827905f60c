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

// billCacheService implements the BillSvcFacade interface with the
// read-through/write-through discipline: reads consult the cache first and
// repopulate it from the repository on a miss; mutations hit the repository
// first and invalidate the owner's cached views only after confirmed success.
type billCacheService struct {
	cacheStore
	billRepo     portsrepo.BillRepositoryFacade
	hasher       ports.KeyHasher
	factory      *domain.LedgerEntryFactory
	unmasker     domain.AmountUnmasker
	categoryRepo portsrepo.CategoryReader
}

// BillServiceOption is a functional option for configuring the bill service.
type BillServiceOption func(*billCacheService)

// WithBillCategoryReader adds the category lookup used to denormalize
// category fields onto entries.
func WithBillCategoryReader(repo portsrepo.CategoryReader) BillServiceOption {
	return func(s *billCacheService) {
		s.categoryRepo = repo
	}
}

// NewBillCacheService creates a new bill service. The amount unmasker is a
// mandatory collaborator: entry construction is impossible without it.
func NewBillCacheService(repo portsrepo.BillRepositoryFacade, cache ports.CacheGateway, hasher ports.KeyHasher, unmasker domain.AmountUnmasker, options ...BillServiceOption) (portssvc.BillSvcFacade, error) {
	factory, err := domain.NewLedgerEntryFactory(unmasker)
	if err != nil {
		return nil, err
	}

	svc := &billCacheService{
		cacheStore: cacheStore{cache: cache},
		billRepo:   repo,
		hasher:     hasher,
		factory:    factory,
		unmasker:   unmasker,
	}
	for _, option := range options {
		option(svc)
	}
	return svc, nil
}

var _ portssvc.BillSvcFacade = (*billCacheService)(nil)

func (s *billCacheService) GetBillByID(ctx context.Context, ownerID, billID string) (*domain.LedgerEntry, error) {
	key := cacheKey(ownerID, entityBill, opListByID, billID)
	if cached, ok := recoverValue[domain.LedgerEntry](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	entry, err := s.billRepo.FindBillByID(ctx, ownerID, billID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find bill by ID", slog.String("bill_id", billID))
		return nil, err
	}
	if entry == nil {
		// Absence is not cached: a later write would be invisible for a
		// whole TTL.
		return nil, nil
	}

	s.save(ctx, key, entry, ledgerTTL)
	return entry, nil
}

func (s *billCacheService) ListBills(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error) {
	key := cacheKey(ownerID, entityBill, opListAll, s.hasher.Execute(params))
	if cached, ok := recoverPage[domain.LedgerEntry](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	page, err := s.billRepo.ListBills(ctx, ownerID, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills", slog.String("owner_id", ownerID))
		return nil, err
	}
	if page != nil && len(page.Content) > 0 {
		s.save(ctx, key, page, ledgerTTL)
	}
	return page, nil
}

func (s *billCacheService) ListBillsByPayableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error) {
	key := cacheKey(ownerID, entityBill, opListByPayableMonth, monthDiscriminator(start, end, page, size))
	if cached, ok := recoverPage[domain.LedgerEntry](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	result, err := s.billRepo.ListBillsByPayableMonth(ctx, ownerID, start, end, page, size)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills by payable month",
			slog.String("owner_id", ownerID),
			slog.Time("start", start), slog.Time("end", end))
		return nil, err
	}
	if result != nil && len(result.Content) > 0 {
		s.save(ctx, key, result, ledgerTTL)
	}
	return result, nil
}

func (s *billCacheService) CreateBill(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error) {
	entry, err := s.factory.New(domain.NewEntryParams{
		OwnerID:      ownerID,
		Kind:         domain.KindBill,
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

	stored, err := s.billRepo.SaveBill(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save bill", slog.String("owner_id", ownerID))
		return nil, err
	}
	if stored == nil || stored.EntryID == "" {
		// Unconfirmed write: no cache side effects.
		return stored, nil
	}

	s.invalidatePrefix(ctx, ownerPrefix(ownerID, entityBill))
	s.LogInfo(ctx, "Bill created", slog.String("bill_id", stored.EntryID))
	return stored, nil
}

func (s *billCacheService) UpdateBill(ctx context.Context, ownerID, billID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error) {
	entry, err := s.GetBillByID(ctx, ownerID, billID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	if err := s.applyEntryUpdate(ctx, entry, req, ownerID); err != nil {
		return nil, err
	}

	fresh, err := s.billRepo.UpdateBill(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to update bill", slog.String("bill_id", billID))
		return nil, err
	}
	if fresh == nil {
		return nil, nil
	}

	// Invalidate every cached view, then keep the hot by-id read warm with
	// the fresh record.
	s.invalidatePrefix(ctx, ownerPrefix(ownerID, entityBill))
	s.save(ctx, cacheKey(ownerID, entityBill, opListByID, billID), fresh, ledgerTTL)
	s.LogInfo(ctx, "Bill updated", slog.String("bill_id", billID))
	return fresh, nil
}

func (s *billCacheService) DeleteBill(ctx context.Context, ownerID, billID string) error {
	deleted, err := s.billRepo.DeleteBill(ctx, ownerID, billID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete bill", slog.String("bill_id", billID))
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	s.invalidatePrefix(ctx, ownerPrefix(ownerID, entityBill))
	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID))
	return nil
}

// attachCategory denormalizes the category fields onto the entry when a
// category reader is configured.
func (s *billCacheService) attachCategory(ctx context.Context, entry *domain.LedgerEntry) error {
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

// applyEntryUpdate folds the request's set fields into the entry, keeping the
// settlement invariant: settlement fields exist only on settled entries.
func (s *billCacheService) applyEntryUpdate(ctx context.Context, entry *domain.LedgerEntry, req dto.UpdateEntryRequest, updaterID string) error {
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

	now := time.Now()
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = updaterID
	return nil
}

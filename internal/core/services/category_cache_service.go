package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/core/ports"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// categoryCacheService implements CategorySvcFacade. Categories are
// near-immutable lookup data, so they live under the shared reference scope
// with the long reference TTL.
type categoryCacheService struct {
	cacheStore
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryCacheService creates a new category service.
func NewCategoryCacheService(repo portsrepo.CategoryRepositoryFacade, cache ports.CacheGateway) portssvc.CategorySvcFacade {
	return &categoryCacheService{
		cacheStore:   cacheStore{cache: cache},
		categoryRepo: repo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryCacheService)(nil)

func (s *categoryCacheService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	key := cacheKey(referenceScope, entityCategory, opListByID, categoryID)
	if cached, ok := recoverValue[domain.Category](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find category by ID", slog.String("category_id", categoryID))
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	s.save(ctx, key, category, referenceTTL)
	return category, nil
}

func (s *categoryCacheService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	key := cacheKey(referenceScope, entityCategory, opListAll, "all")
	if cached, ok := recoverSlice[domain.Category](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	if len(categories) > 0 {
		s.save(ctx, key, categories, referenceTTL)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryCacheService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Description: req.Description,
		Code:        req.Code,
		Group:       domain.CategoryGroup(req.Group),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	stored, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("code", req.Code))
		return nil, err
	}
	if stored == nil || stored.CategoryID == "" {
		return stored, nil
	}

	s.invalidatePrefix(ctx, ownerPrefix(referenceScope, entityCategory))
	s.LogInfo(ctx, "Category created", slog.String("category_id", stored.CategoryID))
	return stored, nil
}

func (s *categoryCacheService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Group != nil {
		category.Group = domain.CategoryGroup(*req.Group)
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = updaterUserID

	fresh, err := s.categoryRepo.UpdateCategory(ctx, *category)
	if err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	if fresh == nil {
		return nil, nil
	}

	s.invalidatePrefix(ctx, ownerPrefix(referenceScope, entityCategory))
	s.save(ctx, cacheKey(referenceScope, entityCategory, opListByID, categoryID), fresh, referenceTTL)
	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return fresh, nil
}

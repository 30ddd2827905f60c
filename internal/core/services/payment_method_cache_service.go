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

// paymentMethodCacheService implements PaymentMethodSvcFacade.
type paymentMethodCacheService struct {
	cacheStore
	methodRepo portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentMethodCacheService creates a new payment method service.
func NewPaymentMethodCacheService(repo portsrepo.PaymentMethodRepositoryFacade, cache ports.CacheGateway) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodCacheService{
		cacheStore: cacheStore{cache: cache},
		methodRepo: repo,
	}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodCacheService)(nil)

func (s *paymentMethodCacheService) GetPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	key := cacheKey(referenceScope, entityPaymentMethod, opListByID, paymentMethodID)
	if cached, ok := recoverValue[domain.PaymentMethod](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	method, err := s.methodRepo.FindPaymentMethodByID(ctx, paymentMethodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find payment method by ID",
			slog.String("payment_method_id", paymentMethodID))
		return nil, err
	}
	if method == nil {
		return nil, nil
	}

	s.save(ctx, key, method, referenceTTL)
	return method, nil
}

func (s *paymentMethodCacheService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	key := cacheKey(referenceScope, entityPaymentMethod, opListAll, "all")
	if cached, ok := recoverSlice[domain.PaymentMethod](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	methods, err := s.methodRepo.ListPaymentMethods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods")
		return nil, err
	}
	if len(methods) > 0 {
		s.save(ctx, key, methods, referenceTTL)
	}
	if methods == nil {
		return []domain.PaymentMethod{}, nil
	}
	return methods, nil
}

func (s *paymentMethodCacheService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error) {
	now := time.Now()
	method := domain.PaymentMethod{
		PaymentMethodID: uuid.NewString(),
		Description:     req.Description,
		Code:            req.Code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	stored, err := s.methodRepo.SavePaymentMethod(ctx, method)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment method", slog.String("code", req.Code))
		return nil, err
	}
	if stored == nil || stored.PaymentMethodID == "" {
		return stored, nil
	}

	s.invalidatePrefix(ctx, ownerPrefix(referenceScope, entityPaymentMethod))
	s.LogInfo(ctx, "Payment method created", slog.String("payment_method_id", stored.PaymentMethodID))
	return stored, nil
}

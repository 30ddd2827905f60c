package services

import (
	"context"
	"log/slog"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/core/ports"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
)

// paymentStatusCacheService implements PaymentStatusSvcFacade. The status
// records are seeded by migration; this service only ever reads.
type paymentStatusCacheService struct {
	cacheStore
	statusRepo portsrepo.PaymentStatusRepositoryFacade
}

// NewPaymentStatusCacheService creates a new payment status service.
func NewPaymentStatusCacheService(repo portsrepo.PaymentStatusRepositoryFacade, cache ports.CacheGateway) portssvc.PaymentStatusSvcFacade {
	return &paymentStatusCacheService{
		cacheStore: cacheStore{cache: cache},
		statusRepo: repo,
	}
}

var _ portssvc.PaymentStatusSvcFacade = (*paymentStatusCacheService)(nil)

func (s *paymentStatusCacheService) GetPaymentStatusByID(ctx context.Context, paymentStatusID string) (*domain.PaymentStatus, error) {
	key := cacheKey(referenceScope, entityPaymentStatus, opListByID, paymentStatusID)
	if cached, ok := recoverValue[domain.PaymentStatus](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	status, err := s.statusRepo.FindPaymentStatusByID(ctx, paymentStatusID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find payment status by ID",
			slog.String("payment_status_id", paymentStatusID))
		return nil, err
	}
	if status == nil {
		return nil, nil
	}

	s.save(ctx, key, status, referenceTTL)
	return status, nil
}

func (s *paymentStatusCacheService) ListPaymentStatuses(ctx context.Context) ([]domain.PaymentStatus, error) {
	key := cacheKey(referenceScope, entityPaymentStatus, opListAll, "all")
	if cached, ok := recoverSlice[domain.PaymentStatus](ctx, &s.cacheStore, key); ok {
		return cached, nil
	}

	statuses, err := s.statusRepo.ListPaymentStatuses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment statuses")
		return nil, err
	}
	if len(statuses) > 0 {
		s.save(ctx, key, statuses, referenceTTL)
	}
	if statuses == nil {
		return []domain.PaymentStatus{}, nil
	}
	return statuses, nil
}

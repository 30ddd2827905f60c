package services

import (
	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/core/ports"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cache ports.CacheGateway, hasher ports.KeyHasher) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}
	unmasker := domain.NewAmountUnmasker(domain.DefaultCurrencyMask)

	bill, err := NewBillCacheService(
		repos.BillRepo, cache, hasher, unmasker,
		WithBillCategoryReader(repos.CategoryRepo),
	)
	if err != nil {
		return nil, err
	}
	container.Bill = bill

	receivable, err := NewReceivableCacheService(
		repos.ReceivableRepo, cache, hasher, unmasker,
		WithReceivableCategoryReader(repos.CategoryRepo),
	)
	if err != nil {
		return nil, err
	}
	container.Receivable = receivable

	container.Category = NewCategoryCacheService(repos.CategoryRepo, cache)
	container.PaymentMethod = NewPaymentMethodCacheService(repos.PaymentMethodRepo, cache)
	container.PaymentStatus = NewPaymentStatusCacheService(repos.PaymentStatusRepo, cache)
	container.PersonUser = NewPersonUserCacheService(repos.PersonUserRepo, cache)

	// The reports read through the cached entry services rather than the
	// repositories directly.
	container.Summary = NewSummaryService(container.Bill, container.Receivable)

	return container, nil
}

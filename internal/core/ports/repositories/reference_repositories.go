package repositories

import (
	"context"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
)

// CategoryReader defines read operations for category reference data.
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines the (rare) write operations for categories.
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// CategoryRepositoryFacade combines the category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// PaymentMethodReader defines read operations for payment method data.
type PaymentMethodReader interface {
	FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines the write operations for payment methods.
type PaymentMethodWriter interface {
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error)
}

// PaymentMethodRepositoryFacade combines the payment method interfaces.
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}

// PaymentStatusReader defines read operations for payment status data.
type PaymentStatusReader interface {
	FindPaymentStatusByID(ctx context.Context, paymentStatusID string) (*domain.PaymentStatus, error)
	ListPaymentStatuses(ctx context.Context) ([]domain.PaymentStatus, error)
}

// PaymentStatusRepositoryFacade exposes payment status lookups; the records
// themselves are seeded by migration and not mutated at runtime.
type PaymentStatusRepositoryFacade interface {
	PaymentStatusReader
}

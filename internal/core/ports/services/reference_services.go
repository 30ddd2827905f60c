package services

import (
	"context"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
)

// CategorySvcFacade exposes cached category lookups and the rare mutations.
type CategorySvcFacade interface {
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error)
}

// PaymentMethodSvcFacade exposes cached payment method lookups.
type PaymentMethodSvcFacade interface {
	GetPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error)
}

// PaymentStatusSvcFacade exposes cached payment status lookups.
type PaymentStatusSvcFacade interface {
	GetPaymentStatusByID(ctx context.Context, paymentStatusID string) (*domain.PaymentStatus, error)
	ListPaymentStatuses(ctx context.Context) ([]domain.PaymentStatus, error)
}

package mapping

import (
	"database/sql"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Description: d.Description,
		Code:        d.Code,
		Group:       sql.NullString{String: string(d.Group), Valid: d.Group != ""},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Code:        m.Code,
		Group:       domain.CategoryGroup(m.Group.String),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

// ToModelPaymentMethod converts a domain PaymentMethod to a model.
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		PaymentMethodID: d.PaymentMethodID,
		Description:     d.Description,
		Code:            d.Code,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain one.
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID: m.PaymentMethodID,
		Description:     m.Description,
		Code:            m.Code,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentMethodSlice converts a slice of model PaymentMethods.
func ToDomainPaymentMethodSlice(ms []models.PaymentMethod) []domain.PaymentMethod {
	ds := make([]domain.PaymentMethod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentMethod(m)
	}
	return ds
}

// ToDomainPaymentStatus converts a model PaymentStatus to a domain one.
func ToDomainPaymentStatus(m models.PaymentStatus) domain.PaymentStatus {
	return domain.PaymentStatus{
		PaymentStatusID: m.PaymentStatusID,
		Description:     m.Description,
		Code:            m.Code,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentStatusSlice converts a slice of model PaymentStatuses.
func ToDomainPaymentStatusSlice(ms []models.PaymentStatus) []domain.PaymentStatus {
	ds := make([]domain.PaymentStatus, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentStatus(m)
	}
	return ds
}

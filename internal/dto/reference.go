package dto

import "github.com/hlmsouza/home_ledger_app/internal/core/domain"

// CreateCategoryRequest carries the fields for creating a category.
type CreateCategoryRequest struct {
	Description string `json:"description" binding:"required"`
	Code        string `json:"code" binding:"required,uppercase"`
	Group       string `json:"group" binding:"omitempty,categorygroup"`
}

// UpdateCategoryRequest carries the updatable category fields.
type UpdateCategoryRequest struct {
	Description *string `json:"description"`
	Group       *string `json:"group" binding:"omitempty,categorygroup"`
}

// CreatePaymentMethodRequest carries the fields for creating a payment method.
type CreatePaymentMethodRequest struct {
	Description string `json:"description" binding:"required"`
	Code        string `json:"code" binding:"required,uppercase"`
}

// CategoryResponse is the read projection of a category.
type CategoryResponse struct {
	CategoryID  string `json:"categoryID"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Group       string `json:"group,omitempty"`
}

// ToCategoryResponse converts a domain Category.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Description: c.Description,
		Code:        c.Code,
		Group:       string(c.Group),
	}
}

// ToCategoryResponses converts a slice of domain Categories.
func ToCategoryResponses(cs []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(cs))
	for i := range cs {
		out[i] = ToCategoryResponse(&cs[i])
	}
	return out
}

// PaymentMethodResponse is the read projection of a payment method.
type PaymentMethodResponse struct {
	PaymentMethodID string `json:"paymentMethodID"`
	Description     string `json:"description"`
	Code            string `json:"code"`
}

// ToPaymentMethodResponse converts a domain PaymentMethod.
func ToPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: m.PaymentMethodID,
		Description:     m.Description,
		Code:            m.Code,
	}
}

// PaymentStatusResponse is the read projection of a payment status record.
type PaymentStatusResponse struct {
	PaymentStatusID string `json:"paymentStatusID"`
	Description     string `json:"description"`
	Code            string `json:"code"`
}

// ToPaymentStatusResponse converts a domain PaymentStatus.
func ToPaymentStatusResponse(s *domain.PaymentStatus) PaymentStatusResponse {
	return PaymentStatusResponse{
		PaymentStatusID: s.PaymentStatusID,
		Description:     s.Description,
		Code:            s.Code,
	}
}

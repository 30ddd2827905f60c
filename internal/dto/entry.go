package dto

import (
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
)

// CreateEntryRequest carries the fields for creating a bill or receivable.
// The amount arrives in its masked display form; the service unmasks it.
type CreateEntryRequest struct {
	Description  string    `json:"description" binding:"required"`
	Fixed        bool      `json:"fixed"`
	DueDate      time.Time `json:"dueDate" binding:"required"`
	AmountMasked string    `json:"amount" binding:"required"`
	CategoryID   string    `json:"categoryID" binding:"required"`
}

// UpdateEntryRequest carries the updatable fields. Pointers differentiate
// omitted fields from zero values.
type UpdateEntryRequest struct {
	Description     *string    `json:"description"`
	Fixed           *bool      `json:"fixed"`
	DueDate         *time.Time `json:"dueDate"`
	AmountMasked    *string    `json:"amount"`
	CategoryID      *string    `json:"categoryID"`
	Settled         *bool      `json:"settled"`
	SettledAt       *time.Time `json:"settledAt"`
	PaymentMethodID *string    `json:"paymentMethodID"`
}

// ListEntriesQuery defines the filter parameters for listing entries. Page
// and size arrive as raw query strings and go through the pagination package.
type ListEntriesQuery struct {
	OnlySettled *bool  `form:"onlySettled"`
	CategoryID  string `form:"categoryID"`
	Ordering    string `form:"ordering"`
}

// MonthQuery defines the period window for month-scoped listings.
type MonthQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02"`
}

// EntryResponse is the read projection of a ledger entry. Status and the
// settlement fields are derived at mapping time, never stored.
type EntryResponse struct {
	EntryID      string     `json:"entryID"`
	Description  string     `json:"description"`
	Fixed        bool       `json:"fixed"`
	DueDate      time.Time  `json:"dueDate"`
	Settled      bool       `json:"settled"`
	SettledAt    *time.Time `json:"settledAt,omitempty"`
	Amount       string     `json:"amount"`       // masked display form
	AmountValue  string     `json:"amountValue"`  // unmasked numeric form
	Status       string     `json:"status"`       // derived against "now"
	CategoryID   string     `json:"categoryID"`
	Category     string     `json:"category,omitempty"`
	CategoryCode string     `json:"categoryCode,omitempty"`

	PaymentMethodID string `json:"paymentMethodID,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToEntryResponse projects a ledger entry for the given reference date,
// dispatching the status vocabulary on the entry kind.
func ToEntryResponse(entry *domain.LedgerEntry, referenceDate time.Time) EntryResponse {
	var status string
	if entry.Kind == domain.KindReceivable {
		status = string(domain.ResolveReceivableStatus(entry.Settled))
	} else {
		status = string(domain.ResolveBillStatus(entry.Settled, entry.DueDate, referenceDate))
	}

	settlement := entry.Settlement()
	return EntryResponse{
		EntryID:         entry.EntryID,
		Description:     entry.Description,
		Fixed:           entry.Fixed,
		DueDate:         entry.DueDate,
		Settled:         entry.Settled,
		SettledAt:       settlement.SettledAt,
		Amount:          entry.AmountMasked,
		AmountValue:     entry.Amount.StringFixed(2),
		Status:          status,
		CategoryID:      entry.CategoryID,
		Category:        entry.CategoryDescription,
		CategoryCode:    entry.CategoryCode,
		PaymentMethodID: settlement.PaymentMethodID,
		PaymentMethod:   settlement.PaymentMethodDescription,
		CreatedAt:       entry.CreatedAt,
		LastUpdatedAt:   entry.LastUpdatedAt,
	}
}

// PagedEntriesResponse wraps a page of projected entries.
type PagedEntriesResponse struct {
	Content       []EntryResponse `json:"content"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	Ordering      string          `json:"ordering,omitempty"`
}

// ToPagedEntriesResponse projects a repository page for the reference date.
func ToPagedEntriesResponse(page *domain.Page[domain.LedgerEntry], referenceDate time.Time) PagedEntriesResponse {
	content := make([]EntryResponse, len(page.Content))
	for i := range page.Content {
		content[i] = ToEntryResponse(&page.Content[i], referenceDate)
	}
	return PagedEntriesResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Ordering:      page.Ordering,
	}
}

package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // PersonUser reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // PersonUser reference
}

// Page is the shape every collection query returns from the repositories.
type Page[T any] struct {
	Content       []T    `json:"content"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	Ordering      string `json:"ordering"`
}

// NewPage computes the derived page count for a result window.
func NewPage[T any](content []T, page, size int, totalElements int64, ordering string) *Page[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		Ordering:      ordering,
	}
}

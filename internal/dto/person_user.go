package dto

import "github.com/hlmsouza/home_ledger_app/internal/core/domain"

// CreatePersonUserRequest carries the fields for registering a person.
type CreatePersonUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	AuthUserID string `json:"authUserID" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// UpdatePersonUserRequest carries the updatable person fields.
type UpdatePersonUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Name  *string `json:"name"`
}

// PersonUserResponse is the read projection of a person.
type PersonUserResponse struct {
	PersonUserID string `json:"personUserID"`
	Email        string `json:"email"`
	AuthUserID   string `json:"authUserID"`
	Name         string `json:"name"`
}

// ToPersonUserResponse converts a domain PersonUser.
func ToPersonUserResponse(p *domain.PersonUser) PersonUserResponse {
	return PersonUserResponse{
		PersonUserID: p.PersonUserID,
		Email:        p.Email,
		AuthUserID:   p.AuthUserID,
		Name:         p.Name,
	}
}

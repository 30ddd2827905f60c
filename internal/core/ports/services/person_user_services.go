package services

import (
	"context"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
)

// PersonUserSvcFacade exposes cached person identity lookups. The cache side
// actively reconciles duplicate entries for the same person.
type PersonUserSvcFacade interface {
	GetPersonUserByID(ctx context.Context, personUserID string) (*domain.PersonUser, error)
	GetPersonUserByEmail(ctx context.Context, email string) (*domain.PersonUser, error)
	GetPersonUserByAuthUserID(ctx context.Context, authUserID string) (*domain.PersonUser, error)
	CreatePersonUser(ctx context.Context, req dto.CreatePersonUserRequest) (*domain.PersonUser, error)
	UpdatePersonUser(ctx context.Context, personUserID string, req dto.UpdatePersonUserRequest) (*domain.PersonUser, error)
}

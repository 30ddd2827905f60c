package repositories

import (
	"context"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
)

// PersonUserReader defines read operations for person identity records. A
// person is addressable by id, email, or the external auth id.
type PersonUserReader interface {
	FindPersonUserByID(ctx context.Context, personUserID string) (*domain.PersonUser, error)
	FindPersonUserByEmail(ctx context.Context, email string) (*domain.PersonUser, error)
	FindPersonUserByAuthUserID(ctx context.Context, authUserID string) (*domain.PersonUser, error)
}

// PersonUserWriter defines write operations for person identity records.
type PersonUserWriter interface {
	SavePersonUser(ctx context.Context, person domain.PersonUser) (*domain.PersonUser, error)
	UpdatePersonUser(ctx context.Context, person domain.PersonUser) (*domain.PersonUser, error)
}

// PersonUserRepositoryFacade combines the person user interfaces.
type PersonUserRepositoryFacade interface {
	PersonUserReader
	PersonUserWriter
}

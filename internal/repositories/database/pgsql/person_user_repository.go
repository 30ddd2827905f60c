package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	"github.com/hlmsouza/home_ledger_app/internal/models"
	"github.com/hlmsouza/home_ledger_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPersonUserRepository persists person identity records.
type PgxPersonUserRepository struct {
	db *pgxpool.Pool
}

func newPgxPersonUserRepository(db *pgxpool.Pool) portsrepo.PersonUserRepositoryFacade {
	return &PgxPersonUserRepository{db: db}
}

var _ portsrepo.PersonUserRepositoryFacade = (*PgxPersonUserRepository)(nil)

const personUserColumns = `person_user_id, email, auth_user_id, name,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPersonUser(row pgx.Row) (*models.PersonUser, error) {
	var m models.PersonUser
	err := row.Scan(
		&m.PersonUserID, &m.Email, &m.AuthUserID, &m.Name,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPersonUserRepository) findOne(ctx context.Context, query string, arg any) (*domain.PersonUser, error) {
	m, err := scanPersonUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find person user: %w", err)
	}
	person := mapping.ToDomainPersonUser(*m)
	return &person, nil
}

func (r *PgxPersonUserRepository) FindPersonUserByID(ctx context.Context, personUserID string) (*domain.PersonUser, error) {
	query := `SELECT ` + personUserColumns + ` FROM person_users WHERE person_user_id = $1;`
	return r.findOne(ctx, query, personUserID)
}

func (r *PgxPersonUserRepository) FindPersonUserByEmail(ctx context.Context, email string) (*domain.PersonUser, error) {
	query := `SELECT ` + personUserColumns + ` FROM person_users WHERE email = $1;`
	return r.findOne(ctx, query, email)
}

func (r *PgxPersonUserRepository) FindPersonUserByAuthUserID(ctx context.Context, authUserID string) (*domain.PersonUser, error) {
	query := `SELECT ` + personUserColumns + ` FROM person_users WHERE auth_user_id = $1;`
	return r.findOne(ctx, query, authUserID)
}

func (r *PgxPersonUserRepository) SavePersonUser(ctx context.Context, person domain.PersonUser) (*domain.PersonUser, error) {
	if person.PersonUserID == "" {
		person.PersonUserID = uuid.NewString()
	}
	m := mapping.ToModelPersonUser(person)

	query := `
	INSERT INTO person_users (person_user_id, email, auth_user_id, name,
		created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	_, err := r.db.Exec(ctx, query,
		m.PersonUserID, m.Email, m.AuthUserID, m.Name,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save person user: %w", err)
	}
	return r.FindPersonUserByID(ctx, person.PersonUserID)
}

func (r *PgxPersonUserRepository) UpdatePersonUser(ctx context.Context, person domain.PersonUser) (*domain.PersonUser, error) {
	m := mapping.ToModelPersonUser(person)

	query := `
	UPDATE person_users SET email = $2, name = $3,
		last_updated_at = $4, last_updated_by = $5
	WHERE person_user_id = $1;`

	tag, err := r.db.Exec(ctx, query,
		m.PersonUserID, m.Email, m.Name, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update person user %s: %w", person.PersonUserID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindPersonUserByID(ctx, person.PersonUserID)
}

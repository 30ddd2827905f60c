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

// PgxCategoryRepository persists category reference data.
type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, description, code, category_group,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID, &m.Description, &m.Code, &m.Group,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	m, err := scanCategory(r.db.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	category := mapping.ToDomainCategory(*m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY description ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var ms []models.Category
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category rows: %w", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if category.CategoryID == "" {
		category.CategoryID = uuid.NewString()
	}
	m := mapping.ToModelCategory(category)

	query := `
	INSERT INTO categories (category_id, description, code, category_group,
		created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	_, err := r.db.Exec(ctx, query,
		m.CategoryID, m.Description, m.Code, m.Group,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return r.FindCategoryByID(ctx, category.CategoryID)
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	m := mapping.ToModelCategory(category)

	query := `
	UPDATE categories SET description = $2, category_group = $3,
		last_updated_at = $4, last_updated_by = $5
	WHERE category_id = $1;`

	tag, err := r.db.Exec(ctx, query,
		m.CategoryID, m.Description, m.Group, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindCategoryByID(ctx, category.CategoryID)
}

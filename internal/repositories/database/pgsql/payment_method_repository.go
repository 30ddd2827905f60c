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

// PgxPaymentMethodRepository persists payment method reference data.
type PgxPaymentMethodRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentMethodRepository(db *pgxpool.Pool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{db: db}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

const paymentMethodColumns = `payment_method_id, description, code,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPaymentMethod(row pgx.Row) (*models.PaymentMethod, error) {
	var m models.PaymentMethod
	err := row.Scan(
		&m.PaymentMethodID, &m.Description, &m.Code,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE payment_method_id = $1;`

	m, err := scanPaymentMethod(r.db.QueryRow(ctx, query, paymentMethodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment method by ID %s: %w", paymentMethodID, err)
	}
	method := mapping.ToDomainPaymentMethod(*m)
	return &method, nil
}

func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods ORDER BY description ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	defer rows.Close()

	var ms []models.PaymentMethod
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment method row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment method rows: %w", err)
	}
	return mapping.ToDomainPaymentMethodSlice(ms), nil
}

func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	if method.PaymentMethodID == "" {
		method.PaymentMethodID = uuid.NewString()
	}
	m := mapping.ToModelPaymentMethod(method)

	query := `
	INSERT INTO payment_methods (payment_method_id, description, code,
		created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err := r.db.Exec(ctx, query,
		m.PaymentMethodID, m.Description, m.Code,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}
	return r.FindPaymentMethodByID(ctx, method.PaymentMethodID)
}

func (r *PgxPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	m := mapping.ToModelPaymentMethod(method)

	query := `
	UPDATE payment_methods SET description = $2,
		last_updated_at = $3, last_updated_by = $4
	WHERE payment_method_id = $1;`

	tag, err := r.db.Exec(ctx, query,
		m.PaymentMethodID, m.Description, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment method %s: %w", method.PaymentMethodID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindPaymentMethodByID(ctx, method.PaymentMethodID)
}

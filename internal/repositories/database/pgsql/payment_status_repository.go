package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	"github.com/hlmsouza/home_ledger_app/internal/models"
	"github.com/hlmsouza/home_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPaymentStatusRepository reads the migration-seeded payment status rows.
type PgxPaymentStatusRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentStatusRepository(db *pgxpool.Pool) portsrepo.PaymentStatusRepositoryFacade {
	return &PgxPaymentStatusRepository{db: db}
}

var _ portsrepo.PaymentStatusRepositoryFacade = (*PgxPaymentStatusRepository)(nil)

const paymentStatusColumns = `payment_status_id, description, code,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPaymentStatus(row pgx.Row) (*models.PaymentStatus, error) {
	var m models.PaymentStatus
	err := row.Scan(
		&m.PaymentStatusID, &m.Description, &m.Code,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPaymentStatusRepository) FindPaymentStatusByID(ctx context.Context, paymentStatusID string) (*domain.PaymentStatus, error) {
	query := `SELECT ` + paymentStatusColumns + ` FROM payment_statuses WHERE payment_status_id = $1;`

	m, err := scanPaymentStatus(r.db.QueryRow(ctx, query, paymentStatusID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment status by ID %s: %w", paymentStatusID, err)
	}
	status := mapping.ToDomainPaymentStatus(*m)
	return &status, nil
}

func (r *PgxPaymentStatusRepository) ListPaymentStatuses(ctx context.Context) ([]domain.PaymentStatus, error) {
	query := `SELECT ` + paymentStatusColumns + ` FROM payment_statuses ORDER BY code ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment statuses: %w", err)
	}
	defer rows.Close()

	var ms []models.PaymentStatus
	for rows.Next() {
		m, err := scanPaymentStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment status row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment status rows: %w", err)
	}
	return mapping.ToDomainPaymentStatusSlice(ms), nil
}

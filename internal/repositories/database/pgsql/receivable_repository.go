package pgsql

import (
	"context"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReceivableRepository persists receivable entries.
type PgxReceivableRepository struct {
	entryRepository
}

func newPgxReceivableRepository(db *pgxpool.Pool) portsrepo.ReceivableRepositoryFacade {
	return &PgxReceivableRepository{entryRepository{BaseRepository: BaseRepository{Pool: db}, kind: domain.KindReceivable}}
}

var _ portsrepo.ReceivableRepositoryFacade = (*PgxReceivableRepository)(nil)

func (r *PgxReceivableRepository) FindReceivableByID(ctx context.Context, ownerID, receivableID string) (*domain.LedgerEntry, error) {
	return r.findByID(ctx, ownerID, receivableID)
}

func (r *PgxReceivableRepository) ListReceivables(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error) {
	return r.list(ctx, ownerID, params)
}

func (r *PgxReceivableRepository) ListReceivablesByReceivableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error) {
	return r.listByMonth(ctx, ownerID, start, end, page, size)
}

func (r *PgxReceivableRepository) SaveReceivable(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	return r.save(ctx, entry)
}

func (r *PgxReceivableRepository) UpdateReceivable(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	return r.update(ctx, entry)
}

func (r *PgxReceivableRepository) DeleteReceivable(ctx context.Context, ownerID, receivableID string) (bool, error) {
	return r.delete(ctx, ownerID, receivableID)
}

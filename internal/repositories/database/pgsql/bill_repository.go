package pgsql

import (
	"context"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBillRepository persists bill entries.
type PgxBillRepository struct {
	entryRepository
}

func newPgxBillRepository(db *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{entryRepository{BaseRepository: BaseRepository{Pool: db}, kind: domain.KindBill}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

func (r *PgxBillRepository) FindBillByID(ctx context.Context, ownerID, billID string) (*domain.LedgerEntry, error) {
	return r.findByID(ctx, ownerID, billID)
}

func (r *PgxBillRepository) ListBills(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error) {
	return r.list(ctx, ownerID, params)
}

func (r *PgxBillRepository) ListBillsByPayableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error) {
	return r.listByMonth(ctx, ownerID, start, end, page, size)
}

func (r *PgxBillRepository) SaveBill(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	return r.save(ctx, entry)
}

func (r *PgxBillRepository) UpdateBill(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	return r.update(ctx, entry)
}

func (r *PgxBillRepository) DeleteBill(ctx context.Context, ownerID, billID string) (bool, error) {
	return r.delete(ctx, ownerID, billID)
}

package repositories

import (
	"context"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
)

// ListEntriesParams defines query parameters for listing ledger entries.
// The whole struct is hashed into the list-cache key, so every field that
// changes the result set must live here.
type ListEntriesParams struct {
	Page        int
	Size        int
	OnlySettled *bool
	CategoryID  string
	Ordering    string
}

// BillReader defines read operations for bill data. Absence is returned as
// nil, not as an error.
type BillReader interface {
	// FindBillByID retrieves a specific bill owned by ownerID.
	FindBillByID(ctx context.Context, ownerID, billID string) (*domain.LedgerEntry, error)

	// ListBills retrieves a filtered page of the owner's bills.
	ListBills(ctx context.Context, ownerID string, params ListEntriesParams) (*domain.Page[domain.LedgerEntry], error)

	// ListBillsByPayableMonth retrieves the bills due inside [start, end].
	ListBillsByPayableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error)
}

// BillWriter defines write operations for bill data.
type BillWriter interface {
	// SaveBill persists a new bill and returns the stored record; a stored
	// record with a non-empty id is the confirmation of success.
	SaveBill(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// UpdateBill updates an existing bill and returns the fresh record, or
	// nil when no such bill exists.
	UpdateBill(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// DeleteBill removes a bill, reporting whether a record was deleted.
	DeleteBill(ctx context.Context, ownerID, billID string) (bool, error)
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}

// ReceivableReader defines read operations for receivable data.
type ReceivableReader interface {
	FindReceivableByID(ctx context.Context, ownerID, receivableID string) (*domain.LedgerEntry, error)
	ListReceivables(ctx context.Context, ownerID string, params ListEntriesParams) (*domain.Page[domain.LedgerEntry], error)
	ListReceivablesByReceivableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error)
}

// ReceivableWriter defines write operations for receivable data.
type ReceivableWriter interface {
	SaveReceivable(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	UpdateReceivable(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	DeleteReceivable(ctx context.Context, ownerID, receivableID string) (bool, error)
}

// ReceivableRepositoryFacade combines all receivable repository interfaces.
type ReceivableRepositoryFacade interface {
	ReceivableReader
	ReceivableWriter
}

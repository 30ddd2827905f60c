package services

import (
	"context"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
)

// BillReaderSvc defines the cached read operations for bills.
type BillReaderSvc interface {
	// GetBillByID returns the bill or nil when absent.
	GetBillByID(ctx context.Context, ownerID, billID string) (*domain.LedgerEntry, error)

	// ListBills returns a filtered page of the owner's bills.
	ListBills(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error)

	// ListBillsByPayableMonth returns the bills due inside [start, end].
	ListBillsByPayableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error)
}

// BillWriterSvc defines the mutating operations for bills.
type BillWriterSvc interface {
	CreateBill(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error)
	UpdateBill(ctx context.Context, ownerID, billID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error)
	DeleteBill(ctx context.Context, ownerID, billID string) error
}

// BillSvcFacade combines the bill service interfaces.
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}

// ReceivableReaderSvc defines the cached read operations for receivables.
type ReceivableReaderSvc interface {
	GetReceivableByID(ctx context.Context, ownerID, receivableID string) (*domain.LedgerEntry, error)
	ListReceivables(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error)
	ListReceivablesByReceivableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error)
}

// ReceivableWriterSvc defines the mutating operations for receivables.
type ReceivableWriterSvc interface {
	CreateReceivable(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error)
	UpdateReceivable(ctx context.Context, ownerID, receivableID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error)
	DeleteReceivable(ctx context.Context, ownerID, receivableID string) error
}

// ReceivableSvcFacade combines the receivable service interfaces.
type ReceivableSvcFacade interface {
	ReceivableReaderSvc
	ReceivableWriterSvc
}

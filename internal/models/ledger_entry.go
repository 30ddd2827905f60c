package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the row shape of the ledger_entries table. Bills and
// receivables share the table, discriminated by the kind column. The
// category and payment method descriptive columns are populated from joins
// on read and never written here.
type LedgerEntry struct {
	EntryID      string          `db:"entry_id"`
	OwnerID      string          `db:"owner_id"`
	Kind         string          `db:"kind"`
	Description  string          `db:"description"`
	Fixed        bool            `db:"fixed"`
	DueDate      time.Time       `db:"due_date"`
	Settled      bool            `db:"settled"`
	SettledAt    *time.Time      `db:"settled_at"`
	Amount       decimal.Decimal `db:"amount"`
	AmountMasked string          `db:"amount_masked"`
	CategoryID   string          `db:"category_id"`
	AuditFields

	PaymentMethodID sql.NullString `db:"payment_method_id"`

	// Join projections.
	CategoryDescription      sql.NullString `db:"category_description"`
	CategoryCode             sql.NullString `db:"category_code"`
	CategoryGroup            sql.NullString `db:"category_group"`
	PaymentMethodDescription sql.NullString `db:"payment_method_description"`
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	"github.com/hlmsouza/home_ledger_app/internal/models"
	"github.com/hlmsouza/home_ledger_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// entrySelectColumns is the shared projection for every entry read, joining
// the descriptive category and payment method columns.
const entrySelectColumns = `
	e.entry_id, e.owner_id, e.kind, e.description, e.fixed, e.due_date,
	e.settled, e.settled_at, e.amount, e.amount_masked, e.category_id,
	e.payment_method_id,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by,
	c.description AS category_description, c.code AS category_code,
	c.category_group, pm.description AS payment_method_description`

const entryFromClause = `
	FROM ledger_entries e
	LEFT JOIN categories c ON c.category_id = e.category_id
	LEFT JOIN payment_methods pm ON pm.payment_method_id = e.payment_method_id`

// entryRepository holds the SQL shared by bills and receivables. The two
// facades differ only in the kind they pin every query to.
type entryRepository struct {
	BaseRepository
	kind domain.EntryKind
}

func scanEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID, &m.OwnerID, &m.Kind, &m.Description, &m.Fixed, &m.DueDate,
		&m.Settled, &m.SettledAt, &m.Amount, &m.AmountMasked, &m.CategoryID,
		&m.PaymentMethodID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.CategoryDescription, &m.CategoryCode, &m.CategoryGroup,
		&m.PaymentMethodDescription,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *entryRepository) findByID(ctx context.Context, ownerID, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT` + entrySelectColumns + entryFromClause + `
	WHERE e.kind = $1 AND e.owner_id = $2 AND e.entry_id = $3;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, string(r.kind), ownerID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	entry := mapping.ToDomainLedgerEntry(*m)
	return &entry, nil
}

// orderClause whitelists the orderings a client may request.
func orderClause(ordering string) string {
	switch ordering {
	case "dueDate,desc":
		return "ORDER BY e.due_date DESC, e.created_at DESC"
	case "amount,asc":
		return "ORDER BY e.amount ASC, e.created_at DESC"
	case "amount,desc":
		return "ORDER BY e.amount DESC, e.created_at DESC"
	default:
		return "ORDER BY e.due_date ASC, e.created_at DESC"
	}
}

func (r *entryRepository) list(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error) {
	where := []string{"e.kind = $1", "e.owner_id = $2"}
	args := []any{string(r.kind), ownerID}

	if params.OnlySettled != nil {
		args = append(args, *params.OnlySettled)
		where = append(where, fmt.Sprintf("e.settled = $%d", len(args)))
	}
	if params.CategoryID != "" {
		args = append(args, params.CategoryID)
		where = append(where, fmt.Sprintf("e.category_id = $%d", len(args)))
	}
	whereClause := "WHERE " + strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*)` + entryFromClause + "\n\t" + whereClause + ";"
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}

	size := params.Size
	if size <= 0 {
		size = 20
	}
	page := params.Page
	if page < 0 {
		page = 0
	}
	args = append(args, size, page*size)
	query := `SELECT` + entrySelectColumns + entryFromClause + "\n\t" + whereClause + "\n\t" +
		orderClause(params.Ordering) +
		fmt.Sprintf("\n\tLIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	entries, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return domain.NewPage(entries, page, size, total, params.Ordering), nil
}

func (r *entryRepository) listByMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}

	var total int64
	countQuery := `SELECT COUNT(*)` + entryFromClause + `
	WHERE e.kind = $1 AND e.owner_id = $2 AND e.due_date >= $3 AND e.due_date <= $4;`
	if err := r.Pool.QueryRow(ctx, countQuery, string(r.kind), ownerID, start, end).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count entries by month: %w", err)
	}

	query := `SELECT` + entrySelectColumns + entryFromClause + `
	WHERE e.kind = $1 AND e.owner_id = $2 AND e.due_date >= $3 AND e.due_date <= $4
	ORDER BY e.due_date ASC, e.created_at DESC
	LIMIT $5 OFFSET $6;`

	entries, err := r.queryEntries(ctx, query, string(r.kind), ownerID, start, end, size, page*size)
	if err != nil {
		return nil, err
	}
	return domain.NewPage(entries, page, size, total, ""), nil
}

func (r *entryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var ms []models.LedgerEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entry rows: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

func (r *entryRepository) save(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	entry.Kind = r.kind
	m := mapping.ToModelLedgerEntry(entry)

	query := `
	INSERT INTO ledger_entries (
		entry_id, owner_id, kind, description, fixed, due_date, settled,
		settled_at, amount, amount_masked, category_id, payment_method_id,
		created_at, created_by, last_updated_at, last_updated_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.OwnerID, m.Kind, m.Description, m.Fixed, m.DueDate,
		m.Settled, m.SettledAt, m.Amount, m.AmountMasked, m.CategoryID,
		m.PaymentMethodID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	return r.findByID(ctx, entry.OwnerID, entry.EntryID)
}

// update writes and re-reads the row inside one transaction so the returned
// entry reflects exactly this write.
func (r *entryRepository) update(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
	UPDATE ledger_entries SET
		description = $4, fixed = $5, due_date = $6, settled = $7,
		settled_at = $8, amount = $9, amount_masked = $10, category_id = $11,
		payment_method_id = $12, last_updated_at = $13, last_updated_by = $14
	WHERE kind = $1 AND owner_id = $2 AND entry_id = $3;`

	tag, err := tx.Exec(ctx, query,
		string(r.kind), m.OwnerID, m.EntryID,
		m.Description, m.Fixed, m.DueDate, m.Settled, m.SettledAt,
		m.Amount, m.AmountMasked, m.CategoryID, m.PaymentMethodID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	readQuery := `SELECT` + entrySelectColumns + entryFromClause + `
	WHERE e.kind = $1 AND e.owner_id = $2 AND e.entry_id = $3;`
	updated, err := scanEntry(tx.QueryRow(ctx, readQuery, string(r.kind), entry.OwnerID, entry.EntryID))
	if err != nil {
		return nil, fmt.Errorf("failed to re-read entry %s: %w", entry.EntryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	result := mapping.ToDomainLedgerEntry(*updated)
	return &result, nil
}

func (r *entryRepository) delete(ctx context.Context, ownerID, entryID string) (bool, error) {
	query := `DELETE FROM ledger_entries WHERE kind = $1 AND owner_id = $2 AND entry_id = $3;`
	tag, err := r.Pool.Exec(ctx, query, string(r.kind), ownerID, entryID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	return tag.RowsAffected() > 0, nil
}

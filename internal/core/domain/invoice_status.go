package domain

import "time"

// InvoiceStatus classifies a bill by comparing its due date to a reference
// date. It is derived only, never persisted: the same record's reported
// status changes over calendar time with no write occurring.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "PENDING"
	StatusDueSoon InvoiceStatus = "DUE_SOON"
	StatusDueDay  InvoiceStatus = "DUE_DAY"
	StatusOverdue InvoiceStatus = "OVERDUE"
	StatusPaid    InvoiceStatus = "PAID"
)

// ReceivableStatus is the receivable-side vocabulary.
type ReceivableStatus string

const (
	StatusToReceive ReceivableStatus = "TO_RECEIVE"
	StatusReceived  ReceivableStatus = "RECEIVED"
)

// dueSoonWindowDays is the number of days ahead within which an unsettled
// bill is reported as due soon.
const dueSoonWindowDays = 5

// ResolveBillStatus is the payment-status state machine. Day-boundary
// comparisons use integer calendar-day differences, so a due date "today"
// resolves to DUE_DAY rather than OVERDUE or PENDING.
func ResolveBillStatus(settled bool, dueDate, referenceDate time.Time) InvoiceStatus {
	if settled {
		return StatusPaid
	}
	diffDays := calendarDaysBetween(referenceDate, dueDate)
	switch {
	case diffDays < 0:
		return StatusOverdue
	case diffDays == 0:
		return StatusDueDay
	case diffDays <= dueSoonWindowDays:
		return StatusDueSoon
	default:
		return StatusPending
	}
}

// ResolveReceivableStatus maps the settled flag onto the receivable
// vocabulary.
func ResolveReceivableStatus(settled bool) ReceivableStatus {
	if settled {
		return StatusReceived
	}
	return StatusToReceive
}

// calendarDaysBetween returns the whole-day distance from the reference day
// to the due day, negative when the reference is already past the due date.
func calendarDaysBetween(reference, due time.Time) int {
	refDay := truncateToDay(reference)
	dueDay := truncateToDay(due)
	return int(dueDay.Sub(refDay).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

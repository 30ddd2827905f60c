package models

import "database/sql"

// Category is the row shape of the categories table.
type Category struct {
	CategoryID  string         `db:"category_id"`
	Description string         `db:"description"`
	Code        string         `db:"code"`
	Group       sql.NullString `db:"category_group"`
	AuditFields
}

// PaymentMethod is the row shape of the payment_methods table.
type PaymentMethod struct {
	PaymentMethodID string `db:"payment_method_id"`
	Description     string `db:"description"`
	Code            string `db:"code"`
	AuditFields
}

// PaymentStatus is the row shape of the payment_statuses table. Rows are
// seeded by migration.
type PaymentStatus struct {
	PaymentStatusID string `db:"payment_status_id"`
	Description     string `db:"description"`
	Code            string `db:"code"`
	AuditFields
}

package models

// PersonUser is the row shape of the person_users table.
type PersonUser struct {
	PersonUserID string `db:"person_user_id"`
	Email        string `db:"email"`
	AuthUserID   string `db:"auth_user_id"`
	Name         string `db:"name"`
	AuditFields
}

package domain

// PersonUser is the identity record behind every owner-scoped ledger entry.
// One person is addressable redundantly by id, email and the external auth
// provider id; the cache layer must keep at most one entry per person.
type PersonUser struct {
	PersonUserID string `json:"personUserID"`
	Email        string `json:"email"`
	AuthUserID   string `json:"authUserID"` // external auth provider subject
	Name         string `json:"name"`
	AuditFields
}

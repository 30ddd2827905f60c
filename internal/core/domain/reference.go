package domain

// CategoryGroup buckets categories for reporting purposes.
type CategoryGroup string

const (
	GroupEssential CategoryGroup = "ESSENTIAL"
	GroupLifestyle CategoryGroup = "LIFESTYLE"
	GroupIncome    CategoryGroup = "INCOME"
	GroupOther     CategoryGroup = "OTHER"
)

// Category is a near-immutable lookup record for classifying ledger entries.
type Category struct {
	CategoryID  string        `json:"categoryID"`
	Description string        `json:"description"`
	Code        string        `json:"code"` // stable enum code, e.g. "SUPERMARKET"
	Group       CategoryGroup `json:"group,omitempty"`
	AuditFields
}

// PaymentMethod is a near-immutable lookup record describing how an entry was
// settled. It is only meaningful on settled entries.
type PaymentMethod struct {
	PaymentMethodID string `json:"paymentMethodID"`
	Description     string `json:"description"`
	Code            string `json:"code"` // stable enum code, e.g. "PIX"
	AuditFields
}

// PaymentStatus is the lookup record behind the derived invoice statuses.
type PaymentStatus struct {
	PaymentStatusID string `json:"paymentStatusID"`
	Description     string `json:"description"`
	Code            string `json:"code"`
	AuditFields
}

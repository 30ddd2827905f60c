package services

import (
	"fmt"
	"time"
)

// Cache entity segments. All keys for one owner/entity share the prefix
// "{ownerId}:{entity}-", so one wildcard pattern invalidates every cached
// view after a mutation.
const (
	entityBill          = "bill"
	entityReceivable    = "receivable"
	entityCategory      = "category"
	entityPaymentMethod = "payment-method"
	entityPaymentStatus = "payment-status"
)

// Reference data is not owner-scoped; its keys live under a fixed scope
// segment so the grammar (and prefix invalidation) stays uniform.
const referenceScope = "reference"

// Cache operation segments.
const (
	opListAll            = "list-all"
	opListByID           = "list-by-id"
	opListByPayableMonth = "list-by-payable-month"
)

// Entity-specific TTL tiers. Ledger entries mutate often, reference data
// rarely, identity records almost never.
const (
	ledgerTTL    = 4 * time.Minute
	referenceTTL = 10 * time.Minute
	identityTTL  = 20 * time.Minute
)

// cacheKey builds "{ownerId}:{entity}-{operation}-{discriminator}".
func cacheKey(ownerID, entity, operation, discriminator string) string {
	return fmt.Sprintf("%s:%s-%s-%s", ownerID, entity, operation, discriminator)
}

// ownerPrefix is the wildcard-deletion prefix covering every cached view of
// one owner's entity.
func ownerPrefix(ownerID, entity string) string {
	return fmt.Sprintf("%s:%s-", ownerID, entity)
}

// monthDiscriminator names a month-window page: "<start>-<end>-<page>-<size>".
func monthDiscriminator(start, end time.Time, page, size int) string {
	return fmt.Sprintf("%s-%s-%d-%d",
		start.UTC().Format("20060102"), end.UTC().Format("20060102"), page, size)
}

// personUserKeyPrefix scopes the identity keys, which use a path grammar of
// their own because one person is addressable on three axes.
const personUserKeyPrefix = "person-user"

// personUserKey builds "person-user/{email}/{id}/{userId}"; empty axes become
// "*" so the same builder produces both canonical keys and scan patterns.
func personUserKey(email, personUserID, authUserID string) string {
	if email == "" {
		email = "*"
	}
	if personUserID == "" {
		personUserID = "*"
	}
	if authUserID == "" {
		authUserID = "*"
	}
	return fmt.Sprintf("%s/%s/%s/%s", personUserKeyPrefix, email, personUserID, authUserID)
}

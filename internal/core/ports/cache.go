package ports

import (
	"context"
	"time"
)

// CacheGateway is the key/value store every service read/write path goes
// through. The cache is never the system of record: implementations surface
// errors, callers treat them as a miss/no-op.
type CacheGateway interface {
	// Recover returns the value stored under key, reporting absence via the
	// boolean rather than an error.
	Recover(ctx context.Context, key string) (string, bool, error)

	// Save stores value under key with a per-key TTL.
	Save(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys []string) error

	// DeleteWithPattern removes every key sharing the given prefix.
	DeleteWithPattern(ctx context.Context, prefix string) error

	// Scan enumerates keys matching a wildcard pattern in bounded batches.
	// Callers loop until the returned cursor is zero.
	Scan(ctx context.Context, cursor uint64, pattern string) (uint64, []string, error)
}

// KeyHasher produces a deterministic, order-independent hash of a
// query-parameter object, used to name list-query cache entries.
type KeyHasher interface {
	Execute(params any) string
}

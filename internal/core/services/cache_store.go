package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/core/ports"
)

// cacheStore wraps the cache gateway with the failure semantics every entity
// service shares: the cache is never the system of record, so every gateway
// error is logged and treated as a miss or no-op, falling through to the
// repository.
type cacheStore struct {
	BaseService
	cache ports.CacheGateway
}

// recoverValue loads and decodes a single cached record. False means miss.
func recoverValue[T any](ctx context.Context, cs *cacheStore, key string) (*T, bool) {
	raw, found, err := cs.cache.Recover(ctx, key)
	if err != nil {
		cs.LogWarn(ctx, "Cache recover failed, falling through to repository",
			slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	if !found {
		return nil, false
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		cs.LogWarn(ctx, "Cached value is undecodable, treating as miss",
			slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	return &value, true
}

// recoverPage loads a cached collection. An empty cached collection is
// treated as a miss so it never sticks.
func recoverPage[T any](ctx context.Context, cs *cacheStore, key string) (*domain.Page[T], bool) {
	page, ok := recoverValue[domain.Page[T]](ctx, cs, key)
	if !ok {
		return nil, false
	}
	if len(page.Content) == 0 {
		return nil, false
	}
	return page, true
}

// recoverSlice loads a cached unpaged collection, with the same
// empty-means-miss rule.
func recoverSlice[T any](ctx context.Context, cs *cacheStore, key string) ([]T, bool) {
	values, ok := recoverValue[[]T](ctx, cs, key)
	if !ok || len(*values) == 0 {
		return nil, false
	}
	return *values, true
}

// save writes a value back under key. Errors are logged and swallowed; the
// repository result is returned to the caller regardless.
func (cs *cacheStore) save(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		cs.LogWarn(ctx, "Failed to encode value for cache",
			slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := cs.cache.Save(ctx, key, string(raw), ttl); err != nil {
		cs.LogWarn(ctx, "Cache save failed",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}

// invalidatePrefix pattern-deletes every key under prefix. Only called after
// the repository write has been confirmed.
func (cs *cacheStore) invalidatePrefix(ctx context.Context, prefix string) {
	if err := cs.cache.DeleteWithPattern(ctx, prefix); err != nil {
		cs.LogWarn(ctx, "Cache pattern invalidation failed",
			slog.String("prefix", prefix), slog.String("error", err.Error()))
	}
}

// deleteKeys removes specific keys, logging failures.
func (cs *cacheStore) deleteKeys(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	if err := cs.cache.Delete(ctx, keys); err != nil {
		cs.LogWarn(ctx, "Cache delete failed",
			slog.Int("key_count", len(keys)), slog.String("error", err.Error()))
	}
}

// scanKeys enumerates every key matching pattern, looping the cursor until
// the gateway reports zero.
func (cs *cacheStore) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		next, batch, err := cs.cache.Scan(ctx, cursor, pattern)
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

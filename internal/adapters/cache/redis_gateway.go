// Package cache holds the Redis implementation of the cache gateway port.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

// scanBatchSize bounds how many keys one SCAN step may return.
const scanBatchSize = 100

// RedisGateway implements the CacheGateway port on a Redis client.
type RedisGateway struct {
	client *redis.Client
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisGateway creates a gateway and verifies the connection before
// handing it out.
func NewRedisGateway(cfg RedisConfig) (*RedisGateway, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisGateway{client: client}, nil
}

// NewRedisGatewayWithClient wraps an existing client, useful for tests.
func NewRedisGatewayWithClient(client *redis.Client) *RedisGateway {
	return &RedisGateway{client: client}
}

var _ ports.CacheGateway = (*RedisGateway)(nil)

func (g *RedisGateway) Recover(ctx context.Context, key string) (string, bool, error) {
	value, err := g.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to recover key %s: %w", key, err)
	}
	return value, true, nil
}

func (g *RedisGateway) Save(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := g.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}
	return nil
}

func (g *RedisGateway) Delete(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := g.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}

// DeleteWithPattern scans for every key under prefix and deletes them in
// batches. SCAN is used instead of KEYS so a large keyspace never blocks the
// server.
func (g *RedisGateway) DeleteWithPattern(ctx context.Context, prefix string) error {
	pattern := prefix + "*"
	var cursor uint64
	for {
		keys, next, err := g.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan pattern %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := g.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete keys for pattern %s: %w", pattern, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (g *RedisGateway) Scan(ctx context.Context, cursor uint64, pattern string) (uint64, []string, error) {
	keys, next, err := g.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to scan pattern %s: %w", pattern, err)
	}
	return next, keys, nil
}

// Close releases the underlying client.
func (g *RedisGateway) Close() error {
	return g.client.Close()
}

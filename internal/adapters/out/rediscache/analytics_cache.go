// Package rediscache implements the analytics cache port on Redis.
// Snapshots are stored as opaque strings under a fixed key with expiry, so
// a write is always atomic and readers never see a partial snapshot.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalyticsCache stores analytics snapshots in Redis with a TTL.
type AnalyticsCache struct {
	client *redis.Client
}

// NewAnalyticsCache creates a cache backed by the Redis server at addr.
func NewAnalyticsCache(addr string) *AnalyticsCache {
	return &AnalyticsCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the value stored under key, or an empty string on a miss.
func (c *AnalyticsCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set stores value under key; Redis drops it after ttl.
func (c *AnalyticsCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Close releases the underlying Redis connection pool.
func (c *AnalyticsCache) Close() error {
	return c.client.Close()
}

package ports

import (
	"context"
	"time"
)

// AnalyticsCache stores serialized analytics snapshots with an expiry.
// Values are complete JSON documents written atomically, so concurrent
// readers never observe a partially written snapshot.
type AnalyticsCache interface {
	// Get returns the cached value for key, or an empty string on a miss.
	// Errors indicate an unreachable cache, not an absent key.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with the given time to live.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

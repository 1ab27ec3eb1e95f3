package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations may be backed
// by Redis, Memcached or an in-memory map (tests use the latter).
type Cache interface {
	// Get looks up key and unmarshals the stored value into dest.
	// Returns (found, error); on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}

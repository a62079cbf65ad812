// Package cache provides the process-wide key/value cache used to memoize
// read-heavy queries. Values are serialized to JSON bytes so any backing
// store (in-memory or Redis) round-trips them faithfully.
package cache

import (
	"context"
	"time"
)

// Cache is the caching port injected into services. It is constructed once in
// main and closed on shutdown.
type Cache interface {
	// Set stores value under key. A non-positive ttl selects the backing's
	// default expiration window.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Get unmarshals the cached value into dest and reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// IsSet reports whether key is present and unexpired.
	IsSet(ctx context.Context, key string) bool

	// Remove deletes a single key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// RemoveByPrefix deletes every key whose name starts with prefix. This is
	// the invalidation mechanism used when the exact set of affected keys is
	// not known at the call site.
	RemoveByPrefix(ctx context.Context, prefix string) error

	// Close releases the backing store's resources.
	Close() error
}

// Package cache provides response caching for computed layouts.
//
// The layout engine is deterministic: identical word lists and board options
// always produce the same grid. That makes layout responses ideal cache
// entries — the key is a content hash of the request, and a hit can be
// served without re-running the engine.
//
// Three backends are provided:
//   - NullCache: disables caching (testing, --no-cache)
//   - FileCache: per-user on-disk cache for CLI runs
//   - RedisCache: shared cache for server deployments
package cache

import (
	"context"
	"time"
)

// Cache stores serialized layout responses keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A zero ttl means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long cached layouts are kept by default.
const DefaultTTL = 24 * time.Hour

// Package cache provides pluggable byte caches for rendered cards.
//
// The HTTP service caches finished SVG documents keyed by a hash of the
// request parameters, so repeated requests for the same card skip the
// GitHub round-trip entirely. Four backends are available:
//
//   - [FileCache]: per-entry JSON files under a directory (CLI and single-node)
//   - [MemoryCache]: in-process map (tests, ephemeral deployments)
//   - [RedisCache]: shared cache for multi-instance deployments
//   - [NullCache]: disables caching
//
// Entries carry a TTL; expired entries read as misses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrClosed is returned by operations on a cache that has been closed.
var ErrClosed = errors.New("cache closed")

// Cache stores opaque byte payloads under string keys with a TTL.
// Implementations must treat expired entries as misses, not errors.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found
	// and fresh; on a miss the returned bytes are nil and the error is nil.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Key derives a stable cache key from a namespace and a set of request
// parameters. Parameters are sorted by name before hashing so that query
// ordering does not fragment the cache.
func Key(namespace string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
		b.WriteByte('&')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return namespace + ":" + hex.EncodeToString(sum[:])
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

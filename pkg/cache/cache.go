// Package cache persists results of expensive mutation-class computations
// between CLI runs. Entries are keyed by the canonical hash of the start
// seed together with the traversal parameters, so a cached class is only
// reused for an equivalent seed explored the same way.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is a byte-oriented store with optional per-entry expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ClassKey is the cache key for a mutation-class computation.
func ClassKey(seedHash, algorithm string, depth int) string {
	return hashKey("class", seedHash, algorithm, depth)
}

// GraphKey is the cache key for an exchange-graph computation.
func GraphKey(seedHash string) string {
	return hashKey("graph", seedHash)
}

// hashKey derives a namespaced key from its parts. Each part is written
// with a trailing separator so adjacent parts cannot alias.
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%v\x1f", p)
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Package cache stores rendered artifacts (DOT text, SVG bytes) keyed by
// content hash.
//
// Rendering is deterministic, so the DOT text of a graph is a stable
// fingerprint: the same graph renders to the same artifact. Backends:
//
//   - [FileCache]: directory-backed, for the CLI
//   - [RedisCache]: Redis-backed, for the HTTP service
//   - [NullCache]: disabled caching, for tests and --no-cache runs
//
// Only artifacts are cached. Graphs themselves are never stored - graphkit
// has no graph persistence.
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found;
	// expired or corrupt entries are treated as misses, not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is the default lifetime for cached artifacts.
const DefaultTTL = 24 * time.Hour

// ArtifactKey builds the cache key for a rendered artifact: the format
// plus the SHA-256 of the DOT text the artifact was rendered from.
func ArtifactKey(dot, format string) string {
	return "artifact:" + format + ":" + Hash([]byte(dot))
}

// keyType extracts the key namespace (the part before the first colon)
// for observability hooks.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}

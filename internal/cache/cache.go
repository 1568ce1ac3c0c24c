// Package cache provides caching infrastructure for matha-connect with
// in-memory and Redis backends.
package cache

import (
	"context"
	"time"
)

// Cacher defines the interface for cache implementations.
// All implementations must be thread-safe.
// Values are []byte to support both in-memory and Redis backends.
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns nil and ErrCacheMiss if not found or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the specified TTL.
	// If TTL is 0, uses the default TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Has checks if a key exists in the cache (and is not expired).
	Has(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the cache.
	Close() error
}

// CacheStats holds cache hit/miss counters.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Sets    int64
	Items   int
	HitRate float64
	Size    int64
}

// StatsProvider is an optional interface for caches that provide statistics.
type StatsProvider interface {
	Stats() CacheStats
	ResetStats()
}

// Error represents an error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates the key was not found in cache or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)

// Options configures a cache backend.
type Options struct {
	RedisURL        string        // When set, the Redis backend is used
	Prefix          string        // Redis key prefix
	DefaultTTL      time.Duration // Default entry TTL
	MaxSize         int           // Max in-memory entries (0 = unlimited)
	CleanupInterval time.Duration // In-memory expired entry sweep interval
}

// New creates a cache backend from the options. When Redis is configured but
// unreachable it falls back to the in-memory backend; the second return value
// reports whether the fallback was taken.
func New(opts Options) (Cacher, bool, error) {
	if opts.RedisURL != "" {
		rc, err := NewRedisCacheFromURL(opts.RedisURL, opts.Prefix, opts.DefaultTTL)
		if err == nil {
			return rc, false, nil
		}
	}

	mc := NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      opts.DefaultTTL,
		MaxSize:         opts.MaxSize,
		CleanupInterval: opts.CleanupInterval,
	})
	return mc, opts.RedisURL != "", nil
}

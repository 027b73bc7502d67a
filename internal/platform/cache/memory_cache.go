// Package cache provides an in-process key/value store with per-entry TTL.
//
// Every aggregation flow wraps its merged result in one of these caches. The
// store is deliberately not a process-wide singleton: each owner constructs
// its own instance so tests get isolated caches instead of sharing a global
// that needs flushing between cases.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry holds a cached value and the instant it stops being valid.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL key/value store safe for concurrent use.
//
// Concurrent misses on the same key share a single in-flight fetch via
// singleflight, so a burst of identical requests results in exactly one
// upstream call.
type Cache[V any] struct {
	mu         sync.RWMutex
	entries    map[string]entry[V]
	group      singleflight.Group
	defaultTTL time.Duration

	// now is swapped out by tests to make expiry deterministic.
	now func() time.Time
}

// DefaultTTL is used when a Cache is constructed with a non-positive TTL.
const DefaultTTL = 90 * time.Second

// New creates a Cache whose entries default to the given TTL.
func New[V any](defaultTTL time.Duration) *Cache[V] {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Cache[V]{
		entries:    make(map[string]entry[V]),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the value stored under key, or false if the key was never set
// or its entry has expired. Expired entries are removed lazily on read, so
// the result is correct even before any sweep would have run.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have replaced
		// the entry since the read.
		if cur, ok := c.entries[key]; ok && !c.now().Before(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, overwriting any existing entry and its expiry.
// A non-positive ttl falls back to the cache's default TTL.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Flush removes all entries. Intended for test isolation, not as a runtime
// operation.
func (c *Cache[V]) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()
}

// GetOrFetch returns the cached value for key if present; otherwise it calls
// fetch exactly once, stores the result under key with the given ttl and
// returns it. A fetch error propagates to the caller and nothing is cached,
// so transient upstream failures are never negatively cached.
//
// A cancelled fetch never populates the store: the context is checked again
// after fetch returns, before Set.
func (c *Cache[V]) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Double-check inside the flight: a concurrent caller may have
		// populated the key between our miss and acquiring the flight.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		fresh, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.Set(key, fresh, ttl)
		return fresh, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

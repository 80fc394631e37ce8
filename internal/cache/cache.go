package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a fetched value stays valid unless configured otherwise.
const DefaultTTL = 60 * time.Minute

// entry is immutable once written; expiry is checked on every read.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a concurrency-safe key/value cache with lazy TTL expiry and
// in-flight request coalescing. Concurrent GetOrFetch calls for the same
// missing key share a single producer invocation; every caller that joined
// observes the identical outcome. Failed fetches are never cached, so the
// next call for that key retries.
//
// There is no background sweeper and no capacity bound: expired entries are
// evicted on the read that finds them stale, and memory grows with distinct
// key cardinality only.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	group   singleflight.Group

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a Cache with the given TTL. A non-positive TTL falls back to
// DefaultTTL.
func New[V any](ttl time.Duration) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrFetch returns the cached value for key, or invokes producer to obtain
// one. The second return reports whether the value came from a previously
// completed, unexpired entry; callers that joined an in-flight fetch are
// reported as misses.
func (c *Cache[V]) GetOrFetch(key string, producer func() (V, error)) (V, bool, error) {
	if v, ok := c.lookup(key); ok {
		return v, true, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A fetch that settled between our miss and joining the group may
		// already have populated the entry.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		val, err := producer()
		if err != nil {
			return nil, err
		}
		c.store(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return v.(V), false, nil
}

// lookup returns the live value for key, evicting it first if it has expired.
func (c *Cache[V]) lookup(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) store(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Len reports the number of entries currently held, including any that have
// expired but not yet been evicted by a read.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Invalidate removes key immediately, regardless of expiry.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Package cache provides a small TTL cache built around a fetch function.
// Values are considered valid for a fixed window after fetch and can be
// explicitly invalidated at known mutation points.
package cache

import (
	"context"
	"sync"
	"time"
)

// Fetch loads the value for a key when the cache has no fresh entry.
type Fetch[K comparable, V any] func(ctx context.Context, key K) (V, error)

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Cache is a mutex-guarded map with per-entry expiry.
type Cache[K comparable, V any] struct {
	ttl   time.Duration
	fetch Fetch[K, V]
	now   func() time.Time

	mu      sync.Mutex
	entries map[K]entry[V]
}

// New creates a Cache that serves entries for ttl after fetch.
func New[K comparable, V any](ttl time.Duration, fetch Fetch[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		ttl:     ttl,
		fetch:   fetch,
		now:     time.Now,
		entries: make(map[K]entry[V]),
	}
}

// Get returns the cached value for key if it is still fresh, otherwise it
// calls the fetch function and stores the result. A fetch error is returned
// to the caller and nothing is cached.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err := c.fetch(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{value: v, fetchedAt: c.now()}
	c.mu.Unlock()
	return v, nil
}

// Invalidate drops the entry for key so the next Get refetches.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// SetClock overrides the time source. Intended for tests.
func (c *Cache[K, V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry stores one fetched value with its fetch time.
type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

// Cache holds fetched upstream tables keyed by fetch operation.
// A read is a hit while now - fetchedAt < ttl. Invalidate clears every entry.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
	// keys records every key ever loaded so Invalidate can forget in-flight loads
	keys map[string]struct{}
	// generation is bumped by Invalidate; loads started before it are not stored
	generation uint64
	sf         singleflight.Group
	now        func() time.Time
}

// NewCache creates a cache with the given TTL. A TTL of zero disables caching.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		keys:    make(map[string]struct{}),
		now:     time.Now,
	}
}

// Invalidate removes every entry and returns how many were removed.
// Loads still running are detached: their results are not stored and later
// reads start a new load instead of joining them.
func (c *Cache) Invalidate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]cacheEntry)
	c.generation++
	for key := range c.keys {
		c.sf.Forget(key)
	}
	return n
}

// FetchedAt returns when key was last stored.
func (c *Cache) FetchedAt(key string) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry.fetchedAt, ok
}

func (c *Cache) lookup(key string) (any, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.value, true
}

// begin registers key and returns the current generation.
func (c *Cache) begin(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys[key] = struct{}{}
	return c.generation
}

func (c *Cache) store(key string, value any, generation uint64) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
}

// Cached returns the fresh value stored under key, or calls load and stores its result.
// Concurrent misses for the same key share one load. Failed loads are not stored.
//
// The shared load runs on a context detached from ctx's cancellation, so one
// caller giving up does not fail the others. A cancelled ctx only stops this
// caller's wait.
func Cached[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.lookup(key); ok {
		return v.(T), nil
	}

	loadCtx := context.WithoutCancel(ctx)
	generation := c.begin(key)
	ch := c.sf.DoChan(key, func() (any, error) {
		// Double-check after acquiring singleflight lock
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, v, generation)
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

package cfapi

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// CacheEntry is an immutable snapshot of an unwrapped result payload keyed by
// endpoint path. Freshness is not a property of the entry itself: it is
// evaluated at lookup time against the TTL the caller supplies, so the same
// entry can be fresh for one dispatch and stale for another.
type CacheEntry struct {
	Result   json.RawMessage `json:"result"    yaml:"result"`
	StoredAt time.Time       `json:"stored_at" yaml:"stored_at"`
}

// Expired reports whether the entry is stale at the given instant for the
// given TTL.
func (e *CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return e.StoredAt.Before(now.Add(-ttl))
}

// Cache is the response cache consulted before any network work is done.
// Backends only store and retrieve entries; expiry against a per-call TTL is
// the dispatcher's job. Stale entries are overwritten by the next successful
// fetch of the same path, never proactively purged.
type Cache interface {
	// Get retrieves the entry for key, or ErrCacheMiss if absent.
	Get(ctx context.Context, key string) (*CacheEntry, error)

	// Set stores an entry under key, replacing any previous entry.
	Set(ctx context.Context, key string, entry *CacheEntry) error

	// Delete removes the entry for key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Has reports whether an entry exists for key, regardless of freshness.
	Has(ctx context.Context, key string) bool
}

// MemoryCache is an in-memory Cache shared across all calls for the process
// lifetime. Writes are last-write-wins; entries for distinct paths are never
// evicted, which is accepted for the bounded path space of one API.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
	}
}

// Get implements Cache.Get.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}

	return entry, nil
}

// Set implements Cache.Set.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry

	return nil
}

// Delete implements Cache.Delete.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear implements Cache.Clear.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has implements Cache.Has.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[key]

	return ok
}

// Len returns the number of stored entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

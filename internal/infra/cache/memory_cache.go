// Package cache provides profile snapshot cache implementations.
package cache

import (
	"context"
	"sync"

	"talenthub/internal/domain/repository"
)

// MemoryCache is an in-process snapshot store. Entries never expire here;
// freshness is evaluated by the reader against the snapshot timestamp, so a
// stale entry can still render while a refetch runs.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*repository.ProfileSnapshot
}

// NewMemoryCache creates an empty in-process snapshot cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*repository.ProfileSnapshot)}
}

// Read returns the stored snapshot or ErrCacheMiss. Structurally invalid
// entries count as misses and are dropped.
func (c *MemoryCache) Read(_ context.Context, profileID string) (*repository.ProfileSnapshot, error) {
	c.mu.RLock()
	snap, ok := c.entries[profileID]
	c.mu.RUnlock()

	if !ok {
		return nil, repository.ErrCacheMiss
	}
	if !snap.Valid() {
		c.mu.Lock()
		delete(c.entries, profileID)
		c.mu.Unlock()

		return nil, repository.ErrCacheMiss
	}

	return snap.Clone(), nil
}

// Write replaces the snapshot for the profile.
func (c *MemoryCache) Write(_ context.Context, profileID string, snap *repository.ProfileSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[profileID] = snap.Clone()

	return nil
}

// Invalidate removes the snapshot for the profile.
func (c *MemoryCache) Invalidate(_ context.Context, profileID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, profileID)

	return nil
}

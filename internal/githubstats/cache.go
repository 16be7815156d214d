package githubstats

import (
	"sync"
	"time"
)

// Cache holds the most recent fetch batch. There is at most one result
// set at a time: the whole batch is cached or refetched as a unit, never
// per repository. An entry is valid while now - fetchedAt < window.
type Cache struct {
	mu        sync.Mutex
	window    time.Duration
	batch     []RepoSummary
	fetchedAt time.Time
}

// NewCache creates an empty cache with the given validity window.
func NewCache(window time.Duration) *Cache {
	return &Cache{window: window}
}

// Get returns a copy of the cached batch if one exists and is still
// within the window, or nil and false otherwise.
func (c *Cache) Get(now time.Time) ([]RepoSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetchedAt.IsZero() || now.Sub(c.fetchedAt) >= c.window {
		return nil, false
	}
	// Copy so callers can't mutate the cached batch.
	batch := make([]RepoSummary, len(c.batch))
	copy(batch, c.batch)
	return batch, true
}

// Set replaces the cached batch wholesale. An empty batch still counts
// as a completed fetch and resets the window.
func (c *Cache) Set(batch []RepoSummary, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batch = make([]RepoSummary, len(batch))
	copy(c.batch, batch)
	c.fetchedAt = now
}

// FetchedAt reports when the current batch was stored, and false if
// nothing has been fetched yet.
func (c *Cache) FetchedAt() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt, !c.fetchedAt.IsZero()
}

package store

import (
	"context"
	"sync"
	"time"

	"energy-ecosystem/internal/simulation"

	"github.com/google/uuid"
)

// Entry is a cached simulation result.
type Entry struct {
	ID        string
	Result    *simulation.Result
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ResultCache keeps finished runs in memory for a limited time so the API can
// serve their hourly ledger after the initial request. Nothing is persisted.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
	now   func() time.Time
}

func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResultCache{
		store: make(map[string]*Entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores res under a fresh random ID and returns the ID.
func (c *ResultCache) Put(res *simulation.Result) string {
	id := uuid.NewString()
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[id] = &Entry{
		ID:        id,
		Result:    res,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	return id
}

// Get retrieves a cached entry if present and not expired.
func (c *ResultCache) Get(id string) (*Entry, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry, true
}

// Len counts stored entries, expired or not.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Prune removes expired entries and returns how many were dropped.
func (c *ResultCache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	dropped := 0
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
			dropped++
		}
	}
	return dropped
}

// Run prunes every interval until ctx is done.
func (c *ResultCache) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Prune()
		}
	}
}

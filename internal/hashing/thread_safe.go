package hashing

import (
	"sync"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// ThreadSafePositionCache wraps PositionCache with mutex protection for
// concurrent access.
type ThreadSafePositionCache struct {
	cache *PositionCache
	mu    sync.RWMutex
}

// NewThreadSafePositionCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePositionCache(maxCapacity int) *ThreadSafePositionCache {
	return &ThreadSafePositionCache{
		cache: NewPositionCache(maxCapacity),
	}
}

// Lookup returns the result stored for the position searched at depth.
func (c *ThreadSafePositionCache) Lookup(b *chess.Board, toMove chess.Colour, depth int) (Result, bool) {
	c.mu.Lock() // Lookup counts hits
	defer c.mu.Unlock()
	return c.cache.Lookup(b, toMove, depth)
}

// Store records a result.
func (c *ThreadSafePositionCache) Store(b *chess.Board, toMove chess.Colour, depth int, r Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Store(b, toMove, depth, r)
}

// Len returns the number of cached positions.
func (c *ThreadSafePositionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafePositionCache) Hits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Hits()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafePositionCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.IsFull()
}

package see

import (
	"sync"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// Cache memoizes Calculate results keyed by a caller-supplied position+move
// key, bounded to a fixed entry count. A plain map with random eviction is
// used in place of an LRU structure: no bounded-cache library appears
// anywhere in the example corpus, so this one stdlib-only exception is
// tracked in DESIGN.md rather than reached for silently.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	entries map[uint64]int
}

// NewCache builds a Cache holding at most maxSize entries.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &Cache{maxSize: maxSize, entries: make(map[uint64]int, maxSize)}
}

// Key combines a position hash with a move's from/to squares into a single
// cache key.
func Key(h board.Hash, from, to board.Square) uint64 {
	return uint64(h)<<16 ^ uint64(from)<<8 ^ uint64(to)
}

// Get returns the cached SEE value for key, if present.
func (c *Cache) Get(key uint64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Insert stores value under key, evicting an arbitrary entry first if the
// cache is already at capacity.
func (c *Cache) Insert(key uint64, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = value
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]int, c.maxSize)
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// IsFull reports whether the cache is at capacity.
func (c *Cache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries) >= c.maxSize
}

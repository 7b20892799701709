// Package measure memoizes intrinsic node sizes.
//
// Entries are keyed by (node handle, available width, available height,
// axis) and are valid only for the exact key: any differing field is a miss.
// There is no automatic invalidation. Callers decide per node whether to
// consult a cache (usually from the dirty set), evict handles explicitly with
// Forget, or use a fresh cache per frame. There is no ambient global cache;
// a Cache is shared only by passing it.
package measure

import (
	"sync"

	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/node"
)

// Key identifies one memoized measurement.
type Key struct {
	Handle node.Handle
	MaxW   int
	MaxH   int
	Axis   geom.Axis
}

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Cache memoizes intrinsic sizes. It is safe for concurrent use. The zero
// value is an empty cache ready to use.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]geom.Size
	byNode  map[node.Handle][]Key
	hits    uint64
	misses  uint64
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[Key]geom.Size),
		byNode:  make(map[node.Handle][]Key),
	}
}

// Get returns the memoized size for k.
func (c *Cache) Get(k Key) (geom.Size, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[k]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return s, ok
}

// Put stores the size for k, replacing any previous entry.
func (c *Cache) Put(k Key, s geom.Size) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[Key]geom.Size)
		c.byNode = make(map[node.Handle][]Key)
	}
	if _, exists := c.entries[k]; !exists {
		c.byNode[k.Handle] = append(c.byNode[k.Handle], k)
	}
	c.entries[k] = s
}

// Forget evicts every entry for the given handles.
func (c *Cache) Forget(handles ...node.Handle) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for _, h := range handles {
		for _, k := range c.byNode[h] {
			delete(c.entries, k)
			removed++
		}
		delete(c.byNode, h)
	}
	return removed
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset empties the cache and its counters.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	clear(c.byNode)
	c.hits, c.misses = 0, 0
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Hits: c.hits, Misses: c.misses, Entries: len(c.entries)}
}

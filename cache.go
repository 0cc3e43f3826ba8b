package gridtile

import (
	"fmt"

	"github.com/gogpu/gridtile/internal/cache"
)

// CacheStats is a snapshot of TileCache counters.
type CacheStats struct {
	// Len is the number of live tiles in the cache.
	Len int

	// MaxTiles is the capacity the cache evicts down to.
	MaxTiles int

	// PendingDisposal is the number of evicted tiles awaiting Cleanup.
	PendingDisposal int

	// Hits and Misses count Get outcomes.
	Hits   uint64
	Misses uint64

	// Evictions counts tiles moved to pending disposal by capacity
	// pressure or key replacement.
	Evictions uint64

	// Disposals counts tiles whose resources have been released.
	Disposals uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookups.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// TileCache is an access-order LRU cache of rendered tiles keyed by
// (tile coordinate, zoom bucket), with deferred resource release.
//
// Eviction is split in two phases. Removing an entry from the map is
// synchronous and cheap; releasing its GPU-backed picture is deferred to
// an explicit Cleanup call, because eviction can happen while the
// consumer still holds the evicted tile's picture from the in-flight
// paint. Releasing it mid-use would be a use-after-free; deferring to
// after the paint avoids that without reference counting.
//
// TileCache is the sole mutator of its map and pending list and is not
// safe for concurrent use; confine all calls to one rendering thread or
// serialize them externally.
type TileCache struct {
	maxTiles int
	entries  map[TileKey]*cacheEntry
	lru      *cache.List[TileKey]
	pending  []*Tile

	hits      uint64
	misses    uint64
	evictions uint64
	disposals uint64
}

type cacheEntry struct {
	tile *Tile
	node *cache.Node[TileKey]
}

// NewTileCache creates a cache that holds at most maxTiles live tiles.
// Returns ErrInvalidConfig if maxTiles is not positive.
func NewTileCache(maxTiles int) (*TileCache, error) {
	if maxTiles <= 0 {
		return nil, fmt.Errorf("%w: maxTiles=%d", ErrInvalidConfig, maxTiles)
	}
	return &TileCache{
		maxTiles: maxTiles,
		entries:  make(map[TileKey]*cacheEntry, maxTiles),
		lru:      cache.NewList[TileKey](),
	}, nil
}

// Len returns the number of live tiles in the cache.
func (c *TileCache) Len() int {
	return len(c.entries)
}

// MaxTiles returns the cache capacity.
func (c *TileCache) MaxTiles() int {
	return c.maxTiles
}

// PendingDisposal returns the number of evicted tiles whose resources
// have not yet been released by Cleanup.
func (c *TileCache) PendingDisposal() int {
	return len(c.pending)
}

// Contains reports whether a live tile exists at key, without touching
// LRU order.
func (c *TileCache) Contains(key TileKey) bool {
	_, ok := c.entries[key]
	return ok
}

// Get returns the tile at key, marking it most recently used.
func (c *TileCache) Get(key TileKey) (*Tile, bool) {
	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.lru.MoveToFront(entry.node)
	c.hits++
	return entry.tile, true
}

// Put inserts a tile at key, marking it most recently used.
//
// A previous tile at the same key moves to the pending-disposal list,
// not disposed yet: the in-flight paint may still reference its picture.
// While the cache is at capacity, least-recently-used tiles move to
// pending disposal the same way.
func (c *TileCache) Put(key TileKey, tile *Tile) {
	if existing, ok := c.entries[key]; ok {
		c.lru.Remove(existing.node)
		delete(c.entries, key)
		c.retire(existing.tile)
	}

	for len(c.entries) >= c.maxTiles {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		if entry, ok := c.entries[oldest]; ok {
			delete(c.entries, oldest)
			c.retire(entry.tile)
		}
	}

	node := c.lru.PushFront(key)
	c.entries[key] = &cacheEntry{tile: tile, node: node}
}

// retire moves a removed tile to the pending-disposal list.
func (c *TileCache) retire(t *Tile) {
	c.pending = append(c.pending, t)
	c.evictions++
	Logger().Debug("gridtile: tile retired",
		"coord", t.Coordinate(), "bucket", t.Bucket(), "pending", len(c.pending))
}

// InvalidateRange marks every cached tile whose cell range intersects r
// as invalid. Invalid tiles stay in the map; TileManager notices the
// invalidity and re-renders on the next request.
func (c *TileCache) InvalidateRange(r CellRange) {
	for _, entry := range c.entries {
		if entry.tile.CellRange().Intersects(r) {
			entry.tile.Invalidate()
		}
	}
}

// InvalidateZoomBucket marks every cached tile rendered at the given
// bucket as invalid. Used when the rendering policy for a bucket changes.
func (c *TileCache) InvalidateZoomBucket(b ZoomBucket) {
	for key, entry := range c.entries {
		if key.Bucket == b {
			entry.tile.Invalidate()
		}
	}
}

// InvalidateAll marks every cached tile invalid. Used on data reset.
func (c *TileCache) InvalidateAll() {
	for _, entry := range c.entries {
		entry.tile.Invalidate()
	}
}

// Cleanup disposes every tile on the pending-disposal list. Call once
// per paint cycle, after the paint has consumed all tiles it fetched,
// never during tile fetch.
func (c *TileCache) Cleanup() {
	for _, t := range c.pending {
		t.Dispose()
		c.disposals++
	}
	c.pending = c.pending[:0]
}

// Clear immediately disposes every live and pending tile and empties the
// cache. For teardown, not normal operation.
func (c *TileCache) Clear() {
	for _, entry := range c.entries {
		entry.tile.Dispose()
		c.disposals++
	}
	c.entries = make(map[TileKey]*cacheEntry, c.maxTiles)
	c.lru.Clear()
	c.Cleanup()
}

// Stats returns a snapshot of the cache counters.
func (c *TileCache) Stats() CacheStats {
	return CacheStats{
		Len:             len(c.entries),
		MaxTiles:        c.maxTiles,
		PendingDisposal: len(c.pending),
		Hits:            c.hits,
		Misses:          c.misses,
		Evictions:       c.evictions,
		Disposals:       c.disposals,
	}
}

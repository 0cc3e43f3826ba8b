package gridtile

import "fmt"

// Renderer is the external capability that turns a tile description into
// an opaque drawable. The core stores the result and disposes it through
// Picture.Dispose when the tile is destroyed; it never inspects it.
//
// RenderTile is called synchronously during TilesForViewport and must
// complete within the frame budget.
type Renderer interface {
	RenderTile(coord TileCoordinate, pixelBounds Rect, cellRange CellRange, bucket ZoomBucket) (Picture, error)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(coord TileCoordinate, pixelBounds Rect, cellRange CellRange, bucket ZoomBucket) (Picture, error)

// RenderTile calls f.
func (f RenderFunc) RenderTile(coord TileCoordinate, pixelBounds Rect, cellRange CellRange, bucket ZoomBucket) (Picture, error) {
	return f(coord, pixelBounds, cellRange, bucket)
}

// TileManager ties tile enumeration, caching and rendering together.
//
// The consumer drives it once per paint cycle:
//
//	tiles, err := m.TilesForViewport(viewport, zoom.Bucket())
//	// ... composite tiles in order ...
//	m.Cleanup()
//
// Cleanup must run exactly once after the returned tiles have been
// consumed; it releases the resources of tiles evicted during the frame.
//
// TileManager is single-threaded by contract, like the TileCache it
// owns. The GridLayout is shared with the consumer; the Renderer is
// borrowed, not owned.
type TileManager struct {
	layout *GridLayout
	render Renderer
	cache  *TileCache
	cfg    Config
	closed bool
}

// NewTileManager creates a manager over the given layout and renderer.
// Construction-invariant violations in the options surface as
// ErrInvalidConfig.
func NewTileManager(layout *GridLayout, renderer Renderer, opts ...Option) (*TileManager, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	if renderer == nil {
		return nil, ErrNilRenderer
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tc, err := NewTileCache(cfg.MaxCachedTiles)
	if err != nil {
		return nil, err
	}

	return &TileManager{
		layout: layout,
		render: renderer,
		cache:  tc,
		cfg:    cfg,
	}, nil
}

// Config returns the manager's configuration.
func (m *TileManager) Config() Config {
	return m.cfg
}

// TilesForViewport returns the tiles covering the content-space viewport
// at the given zoom bucket, in the same row-major order as TilesCovering
// enumerates them. Call once per paint, and composite in the returned
// order.
//
// Cache hits are served directly; missing or invalidated tiles are
// rendered synchronously through the Renderer and cached, evicting old
// entries to pending disposal as needed.
func (m *TileManager) TilesForViewport(viewport Rect, bucket ZoomBucket) ([]*Tile, error) {
	if m.closed {
		return nil, ErrManagerClosed
	}

	coords := TilesCovering(viewport, m.cfg.TileSize, m.cfg.TileSize)
	tiles := make([]*Tile, 0, len(coords))
	rendered := 0

	for _, coord := range coords {
		key := TileKey{Coord: coord, Bucket: bucket}
		tile, ok := m.cache.Get(key)
		if !ok || !tile.IsValid() {
			var err error
			tile, err = m.renderTile(key)
			if err != nil {
				return nil, err
			}
			m.cache.Put(key, tile)
			rendered++
		}
		tiles = append(tiles, tile)
	}

	Logger().Debug("gridtile: viewport served",
		"tiles", len(tiles), "rendered", rendered, "bucket", bucket)
	return tiles, nil
}

// renderTile produces a fresh tile for key via the external Renderer.
func (m *TileManager) renderTile(key TileKey) (*Tile, error) {
	bounds := key.Coord.PixelBounds(m.cfg.TileSize, m.cfg.TileSize)
	cellRange := m.cellRangeFor(bounds)

	pic, err := m.render.RenderTile(key.Coord, bounds, cellRange, key.Bucket)
	if err != nil {
		return nil, fmt.Errorf("gridtile: render tile %v at %v: %w", key.Coord, key.Bucket, err)
	}
	return NewTile(key, pic, cellRange), nil
}

// cellRangeFor translates a tile's pixel bounds into the grid range it
// covers. Bounds beyond the grid content clamp to the edge cells.
func (m *TileManager) cellRangeFor(bounds Rect) CellRange {
	r0, r1 := m.layout.rows.Range(bounds.Y, bounds.Bottom())
	c0, c1 := m.layout.cols.Range(bounds.X, bounds.Right())
	return CellRange{StartRow: r0, StartCol: c0, EndRow: r1, EndCol: c1}
}

// InvalidateRange marks cached tiles intersecting the cell range as
// stale; they re-render on the next viewport request.
func (m *TileManager) InvalidateRange(r CellRange) {
	m.cache.InvalidateRange(r)
}

// InvalidateZoomBucket marks cached tiles at the given bucket as stale.
func (m *TileManager) InvalidateZoomBucket(b ZoomBucket) {
	m.cache.InvalidateZoomBucket(b)
}

// InvalidateAll marks every cached tile as stale.
func (m *TileManager) InvalidateAll() {
	m.cache.InvalidateAll()
}

// ClearCache immediately disposes every cached tile.
func (m *TileManager) ClearCache() {
	m.cache.Clear()
}

// Cleanup releases resources of tiles evicted since the last call. The
// consumer must call it exactly once after each paint, once the tiles
// from the last TilesForViewport have been drawn.
func (m *TileManager) Cleanup() {
	if backlog := m.cache.PendingDisposal(); backlog > 2*m.cfg.MaxCachedTiles {
		Logger().Warn("gridtile: pending-disposal backlog unusually large; is Cleanup called every frame?",
			"pending", backlog)
	}
	m.cache.Cleanup()
}

// Stats returns a snapshot of the underlying cache counters.
func (m *TileManager) Stats() CacheStats {
	return m.cache.Stats()
}

// Close disposes all cached tiles and marks the manager unusable.
// Safe to call more than once.
func (m *TileManager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.cache.Clear()
	return nil
}

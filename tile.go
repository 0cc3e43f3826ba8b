package gridtile

import "math"

// boundaryEpsilon is subtracted from far edges before index lookups so a
// boundary landing exactly on a tile or span edge does not spuriously
// include the next tile or span. The value only needs to be safely
// smaller than any realistic cell or tile size (>= 1px) while staying
// above float64 noise at plausible canvas extents.
const boundaryEpsilon = 1e-6

// TileCoordinate addresses one fixed-size pixel block in the tile
// partition of the content plane. The partition is independent of the
// grid's variable row/column sizes.
type TileCoordinate struct {
	Row, Col int
}

// TileAt returns the coordinate of the tile containing the content-space
// point (x, y), clamped to non-negative indices.
func TileAt(x, y float64, tileW, tileH int) TileCoordinate {
	col := int(math.Floor(x / float64(tileW)))
	row := int(math.Floor(y / float64(tileH)))
	return TileCoordinate{Row: max(row, 0), Col: max(col, 0)}
}

// PixelBounds returns the content-space rectangle this tile occupies.
// Inverse of TileAt.
func (tc TileCoordinate) PixelBounds(tileW, tileH int) Rect {
	return Rect{
		X: float64(tc.Col * tileW),
		Y: float64(tc.Row * tileH),
		W: float64(tileW),
		H: float64(tileH),
	}
}

// TilesCovering enumerates the tiles covering the rectangle, row-major
// (all columns of the first row, then the next row). The far corner is
// pulled in by a small epsilon so a rectangle ending exactly on a tile
// edge does not include the tile beyond it.
func TilesCovering(r Rect, tileW, tileH int) []TileCoordinate {
	if r.IsEmpty() {
		return nil
	}
	first := TileAt(r.X, r.Y, tileW, tileH)
	last := TileAt(r.Right()-boundaryEpsilon, r.Bottom()-boundaryEpsilon, tileW, tileH)

	coords := make([]TileCoordinate, 0, (last.Row-first.Row+1)*(last.Col-first.Col+1))
	for row := first.Row; row <= last.Row; row++ {
		for col := first.Col; col <= last.Col; col++ {
			coords = append(coords, TileCoordinate{Row: row, Col: col})
		}
	}
	return coords
}

// TileKey identifies a cache entry: the same tile coordinate rendered at
// two different zoom buckets is two distinct entries.
type TileKey struct {
	Coord  TileCoordinate
	Bucket ZoomBucket
}

// Picture is the opaque drawable a Renderer produces for one tile. The
// core never inspects its contents; it only tracks its lifecycle and
// calls Dispose exactly once when the owning Tile is destroyed.
//
// Dispose releases the underlying resource (typically GPU-backed). It is
// called by TileCache during Cleanup or Clear, never mid-paint.
type Picture interface {
	Dispose()
}

// Tile is one rendered block of the canvas. A Tile exclusively owns its
// Picture once constructed; TileCache in turn exclusively owns every
// Tile in its map or pending-disposal list.
type Tile struct {
	key       TileKey
	picture   Picture
	cellRange CellRange
	valid     bool
	disposed  bool
}

// NewTile creates a valid tile owning the given picture. The cell range
// is the grid range the tile's pixel bounds cover, computed once at
// render time.
func NewTile(key TileKey, picture Picture, cellRange CellRange) *Tile {
	return &Tile{
		key:       key,
		picture:   picture,
		cellRange: cellRange,
		valid:     true,
	}
}

// Key returns the cache key (coordinate and zoom bucket).
func (t *Tile) Key() TileKey {
	return t.key
}

// Coordinate returns the tile's position in the tile partition.
func (t *Tile) Coordinate() TileCoordinate {
	return t.key.Coord
}

// Bucket returns the zoom bucket the tile was rendered at.
func (t *Tile) Bucket() ZoomBucket {
	return t.key.Bucket
}

// Picture returns the opaque drawable. Nil after Dispose.
func (t *Tile) Picture() Picture {
	return t.picture
}

// CellRange returns the grid range this tile's pixel bounds cover.
func (t *Tile) CellRange() CellRange {
	return t.cellRange
}

// IsValid reports whether the tile's content is current. Invalidation is
// one-way: an invalid tile must be replaced, never revived.
func (t *Tile) IsValid() bool {
	return t.valid
}

// Invalidate marks the tile stale. The tile stays usable for the current
// paint; TileManager re-renders it on the next request.
func (t *Tile) Invalidate() {
	t.valid = false
}

// IsDisposed reports whether Dispose has run.
func (t *Tile) IsDisposed() bool {
	return t.disposed
}

// Dispose releases the tile's picture. Idempotent.
func (t *Tile) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.valid = false
	if t.picture != nil {
		t.picture.Dispose()
		t.picture = nil
	}
}

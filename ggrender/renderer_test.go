package ggrender

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gridtile"
)

// countingSource records which cells were asked for labels.
type countingSource struct {
	calls int
}

func (s *countingSource) Label(row, col int) string {
	s.calls++
	return "x"
}

func testLayout(t *testing.T) *gridtile.GridLayout {
	t.Helper()
	rows, err := gridtile.NewSpanIndex(100, 25)
	if err != nil {
		t.Fatal(err)
	}
	cols, err := gridtile.NewSpanIndex(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	layout, err := gridtile.NewGridLayout(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	return layout
}

func renderOne(t *testing.T, r *Renderer, bucket gridtile.ZoomBucket) *PixmapTile {
	t.Helper()
	coord := gridtile.TileCoordinate{Row: 0, Col: 0}
	bounds := coord.PixelBounds(256, 256)
	cellRange := gridtile.CellRange{StartRow: 0, StartCol: 0, EndRow: 10, EndCol: 2}

	pic, err := r.RenderTile(coord, bounds, cellRange, bucket)
	if err != nil {
		t.Fatalf("RenderTile: %v", err)
	}
	tile, ok := pic.(*PixmapTile)
	if !ok {
		t.Fatalf("RenderTile returned %T, want *PixmapTile", pic)
	}
	return tile
}

func TestNewNilLayout(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilLayout) {
		t.Errorf("New(nil) error = %v, want ErrNilLayout", err)
	}
}

func TestRenderTileProducesPixmap(t *testing.T) {
	r, err := New(testLayout(t))
	if err != nil {
		t.Fatal(err)
	}

	tile := renderOne(t, r, gridtile.ZoomBucket4)
	img := tile.Image()
	if img == nil {
		t.Fatal("rendered tile has nil image")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 256 || h != 256 {
		t.Errorf("tile image is %dx%d, want 256x256", w, h)
	}

	// Cell interiors keep the background color.
	cr, cg, cb, _ := img.At(60, 12).RGBA()
	if cr < 0xf000 || cg < 0xf000 || cb < 0xf000 {
		t.Errorf("cell interior = %v, want near-white background", color.RGBA64{
			R: uint16(cr), G: uint16(cg), B: uint16(cb)})
	}
}

// TestLevelOfDetailSkipsText: at the lowest bucket the cell source is
// never consulted; at readable buckets every cell in range is.
func TestLevelOfDetailSkipsText(t *testing.T) {
	src := &countingSource{}
	r, err := New(testLayout(t), WithCellSource(src))
	if err != nil {
		t.Fatal(err)
	}

	renderOne(t, r, gridtile.ZoomBucket0)
	if src.calls != 0 {
		t.Errorf("source consulted %d times at B0, want 0", src.calls)
	}

	renderOne(t, r, gridtile.ZoomBucket4)
	if want := 11 * 3; src.calls != want {
		t.Errorf("source consulted %d times at B4, want %d (11 rows x 3 cols)", src.calls, want)
	}
}

func TestRenderWithoutSource(t *testing.T) {
	r, err := New(testLayout(t))
	if err != nil {
		t.Fatal(err)
	}
	// No source set: text buckets must still render.
	tile := renderOne(t, r, gridtile.ZoomBucket6)
	if tile.Image() == nil {
		t.Fatal("rendered tile has nil image")
	}
}

func TestPixmapTileDispose(t *testing.T) {
	r, err := New(testLayout(t))
	if err != nil {
		t.Fatal(err)
	}
	tile := renderOne(t, r, gridtile.ZoomBucket3)

	if tile.IsDisposed() {
		t.Fatal("fresh tile reports disposed")
	}
	tile.Dispose()
	tile.Dispose() // idempotent
	if !tile.IsDisposed() {
		t.Error("tile should be disposed")
	}
	if tile.Image() != nil {
		t.Error("Image() should be nil after Dispose")
	}
}

// TestManagerIntegration drives one full paint cycle through a real
// TileManager with this renderer.
func TestManagerIntegration(t *testing.T) {
	layout := testLayout(t)
	r, err := New(layout, WithCellSource(&countingSource{}))
	if err != nil {
		t.Fatal(err)
	}
	m, err := gridtile.NewTileManager(layout, r)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	// A small viewport near the origin needs exactly tile (0,0).
	tiles, err := m.TilesForViewport(gridtile.RectXYWH(10, 10, 100, 25), gridtile.ZoomBucket4)
	if err != nil {
		t.Fatal(err)
	}
	if len(tiles) != 1 {
		t.Fatalf("got %d tiles, want 1", len(tiles))
	}
	if coord := tiles[0].Coordinate(); coord != (gridtile.TileCoordinate{Row: 0, Col: 0}) {
		t.Errorf("tile coordinate = %+v, want (0,0)", coord)
	}
	pix, ok := tiles[0].Picture().(*PixmapTile)
	if !ok || pix.Image() == nil {
		t.Fatalf("tile picture = %T, want live *PixmapTile", tiles[0].Picture())
	}

	m.Cleanup()
	if pix.IsDisposed() {
		t.Error("cached tile disposed by Cleanup")
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Background.A != 1 || s.Gridline.A != 1 {
		t.Error("default colors should be opaque")
	}
	if s.TextInset <= 0 {
		t.Error("default text inset should be positive")
	}
}

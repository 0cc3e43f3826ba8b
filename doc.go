// Package gridtile renders very large two-dimensional grids inside a
// scrollable, zoomable viewport without materializing the whole grid at
// once.
//
// # Overview
//
// gridtile is the geometry and caching core a spreadsheet-like widget
// sits on. It knows nothing about cell values or styling, only
// index-to-pixel mappings and opaque renderable tiles:
//
//   - SpanIndex: per-axis sizes with prefix sums; index↔position in
//     O(log n) even with custom row/column sizes.
//   - GridLayout: two SpanIndexes composed into 2D cell bounds and hit
//     testing.
//   - ZoomTransform: clamped scale with a discrete level-of-detail
//     bucket classification.
//   - VisibleRangeCalculator: viewport rectangle → minimal covering cell
//     range, optionally padded.
//   - TileCoordinate: fixed-size pixel partition of the content plane.
//   - TileCache: access-order LRU with two-phase evict-then-dispose for
//     GPU-backed tile resources.
//   - TileManager: serves cache hits, renders misses through an external
//     Renderer, and owns invalidation.
//
// # Quick Start
//
//	rows, _ := gridtile.NewSpanIndex(10000, 25)
//	cols, _ := gridtile.NewSpanIndex(200, 100)
//	layout, _ := gridtile.NewGridLayout(rows, cols)
//
//	m, _ := gridtile.NewTileManager(layout, renderer)
//	tiles, _ := m.TilesForViewport(viewport, zoom.Bucket())
//	// composite tiles in order, then:
//	m.Cleanup()
//
// The ggrender sub-package provides a reference software Renderer built
// on github.com/gogpu/gg.
//
// # Concurrency
//
// The core is single-threaded and synchronous by design: one logical
// paint cycle per frame, driven by the consumer. Confine TileManager and
// TileCache calls to the rendering thread. SpanIndex and GridLayout
// tolerate concurrent readers as long as no resize is in flight.
package gridtile

package gridtile

// VisibleRangeCalculator answers which cells a content-space viewport
// rectangle covers, and the inverse.
type VisibleRangeCalculator struct {
	layout *GridLayout
}

// NewVisibleRangeCalculator creates a calculator over the given layout.
// Returns ErrNilLayout if layout is nil.
func NewVisibleRangeCalculator(layout *GridLayout) (*VisibleRangeCalculator, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	return &VisibleRangeCalculator{layout: layout}, nil
}

// VisibleRange returns the minimal inclusive cell range covering the
// viewport. Viewport edges outside the grid clamp to the first/last
// row or column.
func (c *VisibleRangeCalculator) VisibleRange(viewport Rect) CellRange {
	r0, r1 := c.layout.rows.Range(viewport.Y, viewport.Bottom())
	c0, c1 := c.layout.cols.Range(viewport.X, viewport.Right())
	return CellRange{StartRow: r0, StartCol: c0, EndRow: r1, EndCol: c1}
}

// VisibleRangeWithPadding expands the visible range by rowPad rows and
// colPad columns on each side, clamped to the grid. Consumers use this
// to pre-render tiles just outside the viewport for smoother scrolling
// (see Config.PrefetchRing).
func (c *VisibleRangeCalculator) VisibleRangeWithPadding(viewport Rect, rowPad, colPad int) CellRange {
	r := c.VisibleRange(viewport)
	r.StartRow = max(r.StartRow-rowPad, 0)
	r.StartCol = max(r.StartCol-colPad, 0)
	r.EndRow = min(r.EndRow+rowPad, c.layout.rows.Count()-1)
	r.EndCol = min(r.EndCol+colPad, c.layout.cols.Count()-1)
	return r
}

// IsCellVisible reports whether the cell is inside the viewport's
// visible range.
func (c *VisibleRangeCalculator) IsCellVisible(viewport Rect, row, col int) bool {
	return c.VisibleRange(viewport).Contains(row, col)
}

// IsRangeVisible reports whether any cell of r is inside the viewport's
// visible range.
func (c *VisibleRangeCalculator) IsRangeVisible(viewport Rect, r CellRange) bool {
	return c.VisibleRange(viewport).Intersects(r)
}

// MinimalViewportFor returns the smallest rectangle fully containing the
// cell range. Inverse of VisibleRange.
func (c *VisibleRangeCalculator) MinimalViewportFor(r CellRange) (Rect, error) {
	return c.layout.RangeBounds(r)
}

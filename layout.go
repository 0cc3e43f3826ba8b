package gridtile

import "fmt"

// CellRange is an inclusive 2D range of grid cells.
type CellRange struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// SingleCell returns a range covering exactly one cell.
func SingleCell(row, col int) CellRange {
	return CellRange{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
}

// Contains returns true if the cell lies inside the range.
func (r CellRange) Contains(row, col int) bool {
	return row >= r.StartRow && row <= r.EndRow && col >= r.StartCol && col <= r.EndCol
}

// Intersects returns true if the two ranges share at least one cell.
func (r CellRange) Intersects(o CellRange) bool {
	return r.StartRow <= o.EndRow && o.StartRow <= r.EndRow &&
		r.StartCol <= o.EndCol && o.StartCol <= r.EndCol
}

// RowCount returns the number of rows in the range.
func (r CellRange) RowCount() int {
	return r.EndRow - r.StartRow + 1
}

// ColCount returns the number of columns in the range.
func (r CellRange) ColCount() int {
	return r.EndCol - r.StartCol + 1
}

// GridLayout composes a row SpanIndex and a column SpanIndex into 2D
// cell-bounds and hit-testing operations. It is a pure computation
// wrapper over the two axes and holds no cell content.
type GridLayout struct {
	rows *SpanIndex
	cols *SpanIndex
}

// NewGridLayout creates a layout over the given axes.
// Returns ErrNilLayout if either axis is nil.
func NewGridLayout(rows, cols *SpanIndex) (*GridLayout, error) {
	if rows == nil || cols == nil {
		return nil, fmt.Errorf("%w: rows and columns are required", ErrNilLayout)
	}
	return &GridLayout{rows: rows, cols: cols}, nil
}

// Rows returns the row axis.
func (g *GridLayout) Rows() *SpanIndex {
	return g.rows
}

// Columns returns the column axis.
func (g *GridLayout) Columns() *SpanIndex {
	return g.cols
}

// ContentSize returns the total pixel extent of the grid (width, height).
func (g *GridLayout) ContentSize() (w, h float64) {
	return g.cols.TotalSize(), g.rows.TotalSize()
}

// CellBounds returns the pixel rectangle of one cell.
// Returns ErrIndexOutOfRange if either index is invalid.
func (g *GridLayout) CellBounds(row, col int) (Rect, error) {
	y, err := g.rows.PositionAt(row)
	if err != nil {
		return Rect{}, err
	}
	h, err := g.rows.SizeAt(row)
	if err != nil {
		return Rect{}, err
	}
	x, err := g.cols.PositionAt(col)
	if err != nil {
		return Rect{}, err
	}
	w, err := g.cols.SizeAt(col)
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// CellAt returns the cell containing the content-space point (x, y).
// ok is false if the point falls outside the grid on either axis.
func (g *GridLayout) CellAt(x, y float64) (row, col int, ok bool) {
	row = g.rows.IndexAtPosition(y)
	col = g.cols.IndexAtPosition(x)
	if row == IndexNotFound || col == IndexNotFound {
		return IndexNotFound, IndexNotFound, false
	}
	return row, col, true
}

// RangeBounds returns the pixel rectangle covering an inclusive cell
// range. The exclusive far edge comes from PositionAt(end+1), which at
// the last index equals the axis total size.
//
// The range must already be clamped to valid indices; out-of-range
// inputs return ErrIndexOutOfRange.
func (g *GridLayout) RangeBounds(r CellRange) (Rect, error) {
	y0, err := g.rows.PositionAt(r.StartRow)
	if err != nil {
		return Rect{}, err
	}
	x0, err := g.cols.PositionAt(r.StartCol)
	if err != nil {
		return Rect{}, err
	}
	y1, err := g.rows.PositionAt(r.EndRow + 1)
	if err != nil {
		return Rect{}, err
	}
	x1, err := g.cols.PositionAt(r.EndCol + 1)
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, nil
}

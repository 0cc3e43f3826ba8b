package gridtile

// Point represents a 2D point in content pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect represents an axis-aligned rectangle in content pixel space.
// X, Y is the top-left corner; W, H extend right and down.
type Rect struct {
	X, Y, W, H float64
}

// RectXYWH is a convenience function to create a Rect.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge (X + W).
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge (Y + H).
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point lies inside the rectangle.
// Edges follow the half-open convention: the left/top edges are inside,
// the right/bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects returns true if the two rectangles overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), o.Right()) - x,
		H: max(r.Bottom(), o.Bottom()) - y,
	}
}

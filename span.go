package gridtile

import (
	"fmt"
	"sort"
)

// IndexNotFound is the sentinel returned by position lookups when no span
// contains the queried position (negative, or at/past the total size).
// "No cell under this pixel" is an expected case, not an error.
const IndexNotFound = -1

// SpanIndex maps between span indices and pixel positions along one axis.
//
// It stores a per-index size array together with its prefix sums, so that
// position lookups run in O(log n) via binary search while resizes rebuild
// the prefix sums in O(n). Resizes are rare (a user drag) relative to
// lookups (every hit test, every tile-to-cell conversion, every frame), so
// this is the right side of the tradeoff and avoids a balanced tree.
//
// The span count is fixed at construction; inserting or deleting spans is
// the owner's job, typically by building a fresh SpanIndex.
//
// SpanIndex is safe for concurrent readers as long as no SetSize call is
// in flight; mutation requires external synchronization.
type SpanIndex struct {
	count       int
	defaultSize float64
	sizes       []float64

	// cumulative[i] is the sum of sizes[0..i); cumulative[count] is the
	// total size. Monotonically non-decreasing by construction since
	// sizes are always positive.
	cumulative []float64
}

// NewSpanIndex creates a SpanIndex with count spans, each defaultSize units.
// Returns an error if count or defaultSize is not positive.
func NewSpanIndex(count int, defaultSize float64) (*SpanIndex, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count=%d", ErrInvalidCount, count)
	}
	if defaultSize <= 0 {
		return nil, fmt.Errorf("%w: defaultSize=%v", ErrInvalidSize, defaultSize)
	}

	s := &SpanIndex{
		count:       count,
		defaultSize: defaultSize,
		sizes:       make([]float64, count),
		cumulative:  make([]float64, count+1),
	}
	for i := range s.sizes {
		s.sizes[i] = defaultSize
	}
	s.rebuild()
	return s, nil
}

// Count returns the number of spans.
func (s *SpanIndex) Count() int {
	return s.count
}

// DefaultSize returns the size spans take unless overridden by SetSize.
func (s *SpanIndex) DefaultSize() float64 {
	return s.defaultSize
}

// TotalSize returns the sum of all span sizes.
func (s *SpanIndex) TotalSize() float64 {
	return s.cumulative[s.count]
}

// SizeAt returns the size of span i.
// Returns ErrIndexOutOfRange if i is outside [0, Count()).
func (s *SpanIndex) SizeAt(i int) (float64, error) {
	if i < 0 || i >= s.count {
		return 0, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, s.count)
	}
	return s.sizes[i], nil
}

// PositionAt returns the starting position of span i. The index Count()
// is a valid end sentinel and yields TotalSize().
// Returns ErrIndexOutOfRange if i is outside [0, Count()].
func (s *SpanIndex) PositionAt(i int) (float64, error) {
	if i < 0 || i > s.count {
		return 0, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, s.count)
	}
	return s.cumulative[i], nil
}

// IndexAtPosition returns the index of the span containing position p,
// or IndexNotFound if p is negative or at/past TotalSize().
//
// This is the hot path: it runs on every pointer hit test and every
// tile-to-cell-range conversion, hence the binary search over the
// cumulative offsets.
func (s *SpanIndex) IndexAtPosition(p float64) int {
	if p < 0 || p >= s.TotalSize() {
		return IndexNotFound
	}
	// Smallest i whose span ends after p; spans are positive-sized so
	// cumulative is strictly increasing and the result is the unique
	// index with cumulative[i] <= p < cumulative[i+1].
	return sort.Search(s.count, func(i int) bool {
		return s.cumulative[i+1] > p
	})
}

// SetSize overwrites the size of span i and rebuilds the prefix sums.
// Returns ErrInvalidSize if size is not positive, or ErrIndexOutOfRange
// if i is outside [0, Count()).
func (s *SpanIndex) SetSize(i int, size float64) error {
	if i < 0 || i >= s.count {
		return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, s.count)
	}
	if size <= 0 {
		return fmt.Errorf("%w: size=%v", ErrInvalidSize, size)
	}
	s.sizes[i] = size
	s.rebuild()
	return nil
}

// Range returns the inclusive index range of spans overlapping the
// half-open position interval [startPos, endPos). Both ends are clamped
// to [0, Count()-1], so the result is always a valid range; callers that
// need strict validation should use IndexAtPosition directly.
func (s *SpanIndex) Range(startPos, endPos float64) (start, end int) {
	start = s.indexClamped(startPos)
	// The interval is half-open: a span starting exactly at endPos does
	// not overlap it.
	end = s.indexClamped(endPos - boundaryEpsilon)
	if end < start {
		end = start
	}
	return start, end
}

// indexClamped is IndexAtPosition with out-of-content positions clamped
// to the first or last span.
func (s *SpanIndex) indexClamped(p float64) int {
	if p < 0 {
		return 0
	}
	if p >= s.TotalSize() {
		return s.count - 1
	}
	return s.IndexAtPosition(p)
}

// rebuild recomputes the prefix sums after a size change. O(count).
func (s *SpanIndex) rebuild() {
	sum := 0.0
	for i, size := range s.sizes {
		s.cumulative[i] = sum
		sum += size
	}
	s.cumulative[s.count] = sum
}

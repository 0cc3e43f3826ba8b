package gridtile

import "errors"

// Common errors returned by gridtile operations.
var (
	// ErrIndexOutOfRange is returned when a row or column index is outside
	// the valid range of a SpanIndex or GridLayout.
	ErrIndexOutOfRange = errors.New("gridtile: index out of range")

	// ErrInvalidSize is returned when a span size is zero or negative.
	ErrInvalidSize = errors.New("gridtile: size must be positive")

	// ErrInvalidCount is returned when an axis count is zero or negative.
	ErrInvalidCount = errors.New("gridtile: count must be positive")

	// ErrInvalidScale is returned when zoom scale limits are not positive
	// or minimum exceeds maximum.
	ErrInvalidScale = errors.New("gridtile: invalid scale limits")

	// ErrInvalidConfig is returned when a construction option carries an
	// out-of-range value.
	ErrInvalidConfig = errors.New("gridtile: invalid configuration")

	// ErrNilLayout is returned when a nil GridLayout is passed where one
	// is required.
	ErrNilLayout = errors.New("gridtile: layout must not be nil")

	// ErrNilRenderer is returned when a nil Renderer is passed to
	// NewTileManager.
	ErrNilRenderer = errors.New("gridtile: renderer must not be nil")

	// ErrManagerClosed is returned when operations are attempted on a
	// closed TileManager.
	ErrManagerClosed = errors.New("gridtile: manager is closed")
)

package gridtile

import "fmt"

// Config holds TileManager construction settings.
type Config struct {
	// TileSize is the edge length of a (square) tile in content pixels.
	// Must be positive. Default 256.
	TileSize int

	// MaxCachedTiles is the TileCache capacity. Must be positive.
	// Default 100.
	MaxCachedTiles int

	// PrefetchRing is the number of tile rings outside the viewport a
	// consumer should pre-render, expressed as padding for
	// VisibleRangeCalculator.VisibleRangeWithPadding. The manager stores
	// it for the consumer; it does not pad viewports itself. Must be
	// non-negative. Default 1.
	PrefetchRing int
}

// DefaultConfig returns the default manager configuration.
func DefaultConfig() Config {
	return Config{
		TileSize:       256,
		MaxCachedTiles: 100,
		PrefetchRing:   1,
	}
}

// validate reports the first construction-invariant violation.
func (c Config) validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tileSize=%d", ErrInvalidConfig, c.TileSize)
	}
	if c.MaxCachedTiles <= 0 {
		return fmt.Errorf("%w: maxCachedTiles=%d", ErrInvalidConfig, c.MaxCachedTiles)
	}
	if c.PrefetchRing < 0 {
		return fmt.Errorf("%w: prefetchRing=%d", ErrInvalidConfig, c.PrefetchRing)
	}
	return nil
}

// Option configures a TileManager during creation.
//
// Example:
//
//	m, err := gridtile.NewTileManager(layout, renderer,
//	    gridtile.WithTileSize(512),
//	    gridtile.WithMaxCachedTiles(400))
type Option func(*Config)

// WithTileSize sets the tile edge length in content pixels.
func WithTileSize(px int) Option {
	return func(c *Config) {
		c.TileSize = px
	}
}

// WithMaxCachedTiles sets the tile cache capacity.
func WithMaxCachedTiles(n int) Option {
	return func(c *Config) {
		c.MaxCachedTiles = n
	}
}

// WithPrefetchRing sets how many tile rings outside the viewport the
// consumer should pre-render.
func WithPrefetchRing(n int) Option {
	return func(c *Config) {
		c.PrefetchRing = n
	}
}

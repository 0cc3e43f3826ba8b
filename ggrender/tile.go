package ggrender

import "image"

// PixmapTile is a software-rendered tile picture. It implements
// gridtile.Picture; the tile cache disposes it when the tile is evicted
// and cleaned up.
type PixmapTile struct {
	img      *image.RGBA
	disposed bool
}

// Image returns the rendered pixels. Nil after Dispose.
func (t *PixmapTile) Image() *image.RGBA {
	return t.img
}

// IsDisposed reports whether Dispose has run.
func (t *PixmapTile) IsDisposed() bool {
	return t.disposed
}

// Dispose releases the pixel buffer. Idempotent.
func (t *PixmapTile) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.img = nil
}

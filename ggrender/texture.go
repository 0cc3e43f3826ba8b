package ggrender

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Upload errors.
var (
	// ErrNilCreator is returned when NewUploader receives a nil creator.
	ErrNilCreator = errors.New("ggrender: texture creator must not be nil")

	// ErrTileDisposed is returned when uploading a pixmap tile whose
	// pixels were already released.
	ErrTileDisposed = errors.New("ggrender: pixmap tile already disposed")
)

// textureDestroyer matches the Destroy method of GPU texture types.
type textureDestroyer interface {
	Destroy()
}

// TextureTile wraps a GPU texture as a tile picture. Dispose destroys
// the texture, so TextureTiles ride the tile cache's deferred-disposal
// path: the texture is only destroyed during Cleanup, after the paint
// that may still sample it has finished.
type TextureTile struct {
	tex      gpucontext.Texture
	disposed bool
}

// Texture returns the GPU texture for drawing. Nil after Dispose.
func (t *TextureTile) Texture() gpucontext.Texture {
	return t.tex
}

// IsDisposed reports whether Dispose has run.
func (t *TextureTile) IsDisposed() bool {
	return t.disposed
}

// Dispose destroys the texture. Idempotent.
func (t *TextureTile) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	if t.tex != nil {
		if destroyer, ok := t.tex.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		t.tex = nil
	}
}

// Uploader turns finished pixmap tiles into GPU textures.
//
// Obtain the creator from the draw context, e.g.
// dc.AsTextureDrawer().TextureCreator() in a gogpu application.
type Uploader struct {
	creator gpucontext.TextureCreator
}

// NewUploader creates an uploader over the given texture creator.
func NewUploader(creator gpucontext.TextureCreator) (*Uploader, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	return &Uploader{creator: creator}, nil
}

// Upload copies a pixmap tile's pixels into a new GPU texture and
// returns it wrapped as a TextureTile. The pixmap tile itself is left
// untouched; the caller decides whether to keep or dispose it.
//
// NewTextureFromRGBA waits for the GPU internally, so a texture returned
// here is immediately usable by the next draw.
func (u *Uploader) Upload(tile *PixmapTile) (*TextureTile, error) {
	img := tile.Image()
	if img == nil {
		return nil, ErrTileDisposed
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	tex, err := u.creator.NewTextureFromRGBA(w, h, img.Pix)
	if err != nil {
		return nil, fmt.Errorf("ggrender: NewTextureFromRGBA failed: %w", err)
	}

	// gg pixmap data is premultiplied alpha; mark the texture so the
	// compositor picks the matching blend pipeline.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return nil, fmt.Errorf("ggrender: creator returned %T, not a gpucontext.Texture", tex)
	}
	return &TextureTile{tex: gpuTex}, nil
}

package ggrender

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gridtile"
)

// Rendering errors.
var (
	// ErrNilLayout is returned when New receives a nil layout.
	ErrNilLayout = errors.New("ggrender: layout must not be nil")

	// ErrUnsupportedImage is returned when the gg context yields an
	// image type labels cannot be drawn onto.
	ErrUnsupportedImage = errors.New("ggrender: unsupported image type from gg context")
)

// CellSource supplies the text shown in cells. Implementations are the
// grid-data collaborator's concern; the tile core never sees them.
type CellSource interface {
	// Label returns the text for a cell, or "" for an empty cell.
	Label(row, col int) string
}

// Style holds the renderer's colors and label inset.
type Style struct {
	Background gg.RGBA
	Gridline   gg.RGBA
	Text       color.Color

	// TextInset is the label offset from the cell's top-left corner, in
	// content pixels.
	TextInset float64
}

// DefaultStyle returns a white sheet with light gray gridlines.
func DefaultStyle() Style {
	return Style{
		Background: gg.RGBA{R: 1, G: 1, B: 1, A: 1},
		Gridline:   gg.RGBA{R: 0.85, G: 0.85, B: 0.85, A: 1},
		Text:       color.Black,
		TextInset:  3,
	}
}

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithCellSource sets the label provider. Without one, tiles render
// backgrounds and gridlines only.
func WithCellSource(src CellSource) Option {
	return func(r *Renderer) {
		r.source = src
	}
}

// WithStyle overrides the default colors.
func WithStyle(s Style) Option {
	return func(r *Renderer) {
		r.style = s
	}
}

// Renderer rasterizes tiles for a grid layout using gg.
// It implements gridtile.Renderer, producing *PixmapTile pictures.
type Renderer struct {
	layout *gridtile.GridLayout
	source CellSource
	style  Style
	face   font.Face
}

// New creates a renderer over the given layout.
func New(layout *gridtile.GridLayout, opts ...Option) (*Renderer, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	r := &Renderer{
		layout: layout,
		style:  DefaultStyle(),
		face:   basicfont.Face7x13,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RenderTile rasterizes one tile. Drawing happens in content coordinates
// translated so the tile's pixel bounds map onto the pixmap.
func (r *Renderer) RenderTile(coord gridtile.TileCoordinate, bounds gridtile.Rect, cellRange gridtile.CellRange, bucket gridtile.ZoomBucket) (gridtile.Picture, error) {
	w, h := int(bounds.W), int(bounds.H)
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(r.style.Background)
	dc.Translate(-bounds.X, -bounds.Y)

	if bucket.ShowGridlines() {
		if err := r.strokeGridlines(dc, bounds, cellRange, bucket); err != nil {
			return nil, err
		}
	}

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedImage, dc.Image())
	}

	if bucket.ShowText() && r.source != nil {
		if err := r.drawLabels(img, bounds, cellRange); err != nil {
			return nil, err
		}
	}

	gridtile.Logger().Debug("ggrender: tile rasterized",
		"coord", coord, "bucket", bucket, "cells", cellRange)
	return &PixmapTile{img: img}, nil
}

// strokeGridlines draws the row and column separators crossing the tile,
// including the trailing edge of the last visible row/column.
func (r *Renderer) strokeGridlines(dc *gg.Context, bounds gridtile.Rect, cellRange gridtile.CellRange, bucket gridtile.ZoomBucket) error {
	rows, cols := r.layout.Rows(), r.layout.Columns()

	dc.SetRGBA(r.style.Gridline.R, r.style.Gridline.G, r.style.Gridline.B, r.style.Gridline.A)
	dc.SetLineWidth(bucket.StrokeWidth())

	right := min(bounds.Right(), cols.TotalSize())
	bottom := min(bounds.Bottom(), rows.TotalSize())

	for row := cellRange.StartRow; row <= cellRange.EndRow+1; row++ {
		y, err := rows.PositionAt(row)
		if err != nil {
			return err
		}
		dc.DrawLine(bounds.X, y, right, y)
	}
	for col := cellRange.StartCol; col <= cellRange.EndCol+1; col++ {
		x, err := cols.PositionAt(col)
		if err != nil {
			return err
		}
		dc.DrawLine(x, bounds.Y, x, bottom)
	}
	dc.Stroke()
	return nil
}

// drawLabels renders cell labels with the bitmap face. The drawer clips
// to the tile, so labels spilling over the edge are cut, matching the
// neighbouring tile's rendering of the same cell range.
func (r *Renderer) drawLabels(img *image.RGBA, bounds gridtile.Rect, cellRange gridtile.CellRange) error {
	metrics := r.face.Metrics()
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.style.Text),
		Face: r.face,
	}

	for row := cellRange.StartRow; row <= cellRange.EndRow; row++ {
		for col := cellRange.StartCol; col <= cellRange.EndCol; col++ {
			label := r.source.Label(row, col)
			if label == "" {
				continue
			}
			cell, err := r.layout.CellBounds(row, col)
			if err != nil {
				return err
			}
			x := cell.X - bounds.X + r.style.TextInset
			y := cell.Y - bounds.Y + r.style.TextInset
			drawer.Dot = fixed.Point26_6{
				X: fixed.Int26_6(x * 64),
				Y: fixed.Int26_6(y*64) + metrics.Ascent,
			}
			drawer.DrawString(label)
		}
	}
	return nil
}

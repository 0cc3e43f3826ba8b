package gridtile

import "fmt"

// ZoomBucket is a discrete level-of-detail classification derived from
// the continuous zoom scale. Buckets are ordered: lower buckets mean the
// content is further away and rendered with less detail.
type ZoomBucket int

// Zoom buckets, from most zoomed out to most zoomed in.
const (
	ZoomBucket0 ZoomBucket = iota // scale < 0.25
	ZoomBucket1                   // scale < 0.40
	ZoomBucket2                   // scale < 0.50
	ZoomBucket3                   // scale < 1.00
	ZoomBucket4                   // scale < 2.00
	ZoomBucket5                   // scale < 3.00
	ZoomBucket6                   // scale >= 3.00

	// NumZoomBuckets is the number of distinct buckets.
	NumZoomBuckets = int(ZoomBucket6) + 1
)

// String returns a short label like "B3".
func (b ZoomBucket) String() string {
	return fmt.Sprintf("B%d", int(b))
}

// bucketThresholds are the exclusive upper scale bounds of buckets 0..5.
var bucketThresholds = [...]float64{0.25, 0.40, 0.50, 1.00, 2.00, 3.00}

// BucketForScale classifies a zoom scale into its level-of-detail bucket.
func BucketForScale(scale float64) ZoomBucket {
	for i, limit := range bucketThresholds {
		if scale < limit {
			return ZoomBucket(i)
		}
	}
	return ZoomBucket6
}

// ShowText reports whether cell text should be rendered in this bucket.
// At the lowest bucket cells are a few pixels tall and text is illegible.
func (b ZoomBucket) ShowText() bool {
	return b > ZoomBucket0
}

// ShowGridlines reports whether gridlines should be rendered in this
// bucket. Below ZoomBucket2 the lines would dominate the cells.
func (b ZoomBucket) ShowGridlines() bool {
	return b >= ZoomBucket2
}

// StrokeWidth returns the gridline stroke width for this bucket, in
// content pixels. Zero for buckets that skip gridlines.
func (b ZoomBucket) StrokeWidth() float64 {
	switch b {
	case ZoomBucket2:
		return 0.5
	case ZoomBucket3:
		return 0.75
	case ZoomBucket4:
		return 1.0
	case ZoomBucket5:
		return 1.25
	case ZoomBucket6:
		return 1.5
	default:
		return 0
	}
}

// ZoomTransform converts between screen and content coordinates through
// a single scale factor clamped to a fixed range.
//
// The bucket classification is recomputed from the scale on demand;
// scale changes are infrequent but the bucket must never go stale.
type ZoomTransform struct {
	scale    float64
	minScale float64
	maxScale float64
}

// NewZoomTransform creates a transform with the given initial scale and
// clamp range. Returns ErrInvalidScale unless 0 < minScale <= maxScale.
// The initial scale is clamped into range.
func NewZoomTransform(initial, minScale, maxScale float64) (*ZoomTransform, error) {
	if minScale <= 0 || maxScale < minScale {
		return nil, fmt.Errorf("%w: min=%v max=%v", ErrInvalidScale, minScale, maxScale)
	}
	z := &ZoomTransform{minScale: minScale, maxScale: maxScale}
	z.SetScale(initial)
	return z, nil
}

// Scale returns the current scale factor.
func (z *ZoomTransform) Scale() float64 {
	return z.scale
}

// MinScale returns the lower clamp bound.
func (z *ZoomTransform) MinScale() float64 {
	return z.minScale
}

// MaxScale returns the upper clamp bound.
func (z *ZoomTransform) MaxScale() float64 {
	return z.maxScale
}

// SetScale sets the scale factor, clamping it to [MinScale, MaxScale].
func (z *ZoomTransform) SetScale(v float64) {
	if v < z.minScale {
		v = z.minScale
	}
	if v > z.maxScale {
		v = z.maxScale
	}
	z.scale = v
}

// Bucket returns the level-of-detail bucket for the current scale.
func (z *ZoomTransform) Bucket() ZoomBucket {
	return BucketForScale(z.scale)
}

// ScreenToContent converts a screen-space length or offset to content
// space. Exact inverse of ContentToScreen up to floating-point rounding.
func (z *ZoomTransform) ScreenToContent(p float64) float64 {
	return p / z.scale
}

// ContentToScreen converts a content-space length or offset to screen
// space.
func (z *ZoomTransform) ContentToScreen(p float64) float64 {
	return p * z.scale
}

// ScreenPointToContent converts a screen-space point to content space.
func (z *ZoomTransform) ScreenPointToContent(p Point) Point {
	return Point{X: p.X / z.scale, Y: p.Y / z.scale}
}

// ContentPointToScreen converts a content-space point to screen space.
func (z *ZoomTransform) ContentPointToScreen(p Point) Point {
	return Point{X: p.X * z.scale, Y: p.Y * z.scale}
}

// ScreenRectToContent converts a screen-space rectangle to content
// space. Used by viewport consumers to derive the content viewport
// passed to TileManager.
func (z *ZoomTransform) ScreenRectToContent(r Rect) Rect {
	return Rect{
		X: r.X / z.scale,
		Y: r.Y / z.scale,
		W: r.W / z.scale,
		H: r.H / z.scale,
	}
}

// ContentRectToScreen converts a content-space rectangle to screen space.
func (z *ZoomTransform) ContentRectToScreen(r Rect) Rect {
	return Rect{
		X: r.X * z.scale,
		Y: r.Y * z.scale,
		W: r.W * z.scale,
		H: r.H * z.scale,
	}
}

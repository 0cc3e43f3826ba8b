package gridtile

import (
	"errors"
	"math"
	"testing"
)

func TestNewZoomTransformValidation(t *testing.T) {
	tests := []struct {
		name              string
		initial, min, max float64
		wantErr           bool
	}{
		{"valid", 1, 0.1, 8, false},
		{"degenerate range", 1, 1, 1, false},
		{"zero min", 1, 0, 8, true},
		{"negative min", 1, -1, 8, true},
		{"max below min", 1, 2, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewZoomTransform(tt.initial, tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewZoomTransform(%v, %v, %v) error = %v, wantErr %v",
					tt.initial, tt.min, tt.max, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidScale) {
				t.Errorf("error = %v, want ErrInvalidScale", err)
			}
		})
	}
}

func TestSetScaleClamps(t *testing.T) {
	z, err := NewZoomTransform(1, 0.25, 4)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		set  float64
		want float64
	}{
		{1, 1},
		{0.25, 0.25},
		{4, 4},
		{0.1, 0.25},
		{100, 4},
		{-3, 0.25},
	}
	for _, tt := range tests {
		z.SetScale(tt.set)
		if got := z.Scale(); got != tt.want {
			t.Errorf("SetScale(%v): Scale() = %v, want %v", tt.set, got, tt.want)
		}
	}
}

func TestScreenContentRoundTrip(t *testing.T) {
	z, _ := NewZoomTransform(1, 0.1, 8)

	const tolerance = 1e-12
	for _, scale := range []float64{0.1, 0.24, 0.5, 1, 1.7, 3, 8} {
		z.SetScale(scale)
		for _, x := range []float64{0, 1, 12.5, 1000, 1e6} {
			got := z.ContentToScreen(z.ScreenToContent(x))
			if math.Abs(got-x) > tolerance*math.Max(1, x) {
				t.Errorf("scale %v: round trip of %v = %v", scale, x, got)
			}
		}
	}
}

func TestBucketForScale(t *testing.T) {
	tests := []struct {
		scale float64
		want  ZoomBucket
	}{
		{0.01, ZoomBucket0},
		{0.24, ZoomBucket0},
		{0.25, ZoomBucket1},
		{0.39, ZoomBucket1},
		{0.40, ZoomBucket2},
		{0.49, ZoomBucket2},
		{0.50, ZoomBucket3},
		{0.99, ZoomBucket3},
		{1.00, ZoomBucket4},
		{1.99, ZoomBucket4},
		{2.00, ZoomBucket5},
		{2.99, ZoomBucket5},
		{3.00, ZoomBucket6},
		{10, ZoomBucket6},
	}
	for _, tt := range tests {
		if got := BucketForScale(tt.scale); got != tt.want {
			t.Errorf("BucketForScale(%v) = %v, want %v", tt.scale, got, tt.want)
		}
	}
}

func TestBucketRecomputedAfterSetScale(t *testing.T) {
	z, _ := NewZoomTransform(1, 0.1, 8)
	if got := z.Bucket(); got != ZoomBucket4 {
		t.Fatalf("Bucket() at scale 1 = %v, want B4", got)
	}
	z.SetScale(0.3)
	if got := z.Bucket(); got != ZoomBucket1 {
		t.Errorf("Bucket() at scale 0.3 = %v, want B1", got)
	}
}

func TestBucketPolicy(t *testing.T) {
	if ZoomBucket0.ShowText() {
		t.Error("B0 should skip text")
	}
	for b := ZoomBucket1; b <= ZoomBucket6; b++ {
		if !b.ShowText() {
			t.Errorf("%v should show text", b)
		}
	}

	for _, b := range []ZoomBucket{ZoomBucket0, ZoomBucket1} {
		if b.ShowGridlines() {
			t.Errorf("%v should skip gridlines", b)
		}
		if b.StrokeWidth() != 0 {
			t.Errorf("%v stroke width = %v, want 0", b, b.StrokeWidth())
		}
	}

	prev := 0.0
	for b := ZoomBucket2; b <= ZoomBucket6; b++ {
		if !b.ShowGridlines() {
			t.Errorf("%v should show gridlines", b)
		}
		w := b.StrokeWidth()
		if w <= prev {
			t.Errorf("%v stroke width %v not increasing (prev %v)", b, w, prev)
		}
		prev = w
	}
}

func TestZoomRectTransforms(t *testing.T) {
	z, _ := NewZoomTransform(2, 0.1, 8)

	screen := RectXYWH(100, 50, 800, 600)
	content := z.ScreenRectToContent(screen)
	want := RectXYWH(50, 25, 400, 300)
	if content != want {
		t.Errorf("ScreenRectToContent(%+v) = %+v, want %+v", screen, content, want)
	}
	if back := z.ContentRectToScreen(content); back != screen {
		t.Errorf("ContentRectToScreen round trip = %+v, want %+v", back, screen)
	}
}

func TestZoomBucketString(t *testing.T) {
	if got := ZoomBucket3.String(); got != "B3" {
		t.Errorf("ZoomBucket3.String() = %q, want \"B3\"", got)
	}
}

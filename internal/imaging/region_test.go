package imaging

import (
	"image"
	"math"
	"testing"
)

func TestScaleFor(t *testing.T) {
	tests := []struct {
		name      string
		intrinsic Size
		displayed Size
		want      ScaleRatio
		wantOK    bool
	}{
		{"downscaled display", Size{200, 100}, Size{100, 50}, ScaleRatio{2, 2}, true},
		{"upscaled display", Size{50, 50}, Size{100, 200}, ScaleRatio{0.5, 0.25}, true},
		{"identity", Size{30, 30}, Size{30, 30}, ScaleRatio{1, 1}, true},
		{"zero displayed width", Size{10, 10}, Size{0, 10}, ScaleRatio{}, false},
		{"zero displayed height", Size{10, 10}, Size{10, 0}, ScaleRatio{}, false},
		{"negative displayed", Size{10, 10}, Size{-5, 10}, ScaleRatio{}, false},
		{"negative intrinsic", Size{-1, 10}, Size{10, 10}, ScaleRatio{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScaleFor(tt.intrinsic, tt.displayed)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ratio: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapToPixelSpace_Scale(t *testing.T) {
	scale, ok := ScaleFor(Size{200, 100}, Size{100, 50})
	if !ok {
		t.Fatal("ScaleFor rejected a valid display size")
	}

	// offset (10,10) size (5,5) in display space
	got, ok := MapToPixelSpace(image.Rect(10, 10, 15, 15), scale, Size{200, 100})
	if !ok {
		t.Fatal("MapToPixelSpace reported no region")
	}
	want := image.Rect(20, 20, 30, 30)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMapToPixelSpace_Truncation(t *testing.T) {
	// 1.5 * 3 = 4.5 -> 4, 1.5 * 5 = 7.5 -> 7
	got, ok := MapToPixelSpace(image.Rect(3, 3, 8, 8), ScaleRatio{1.5, 1.5}, Size{100, 100})
	if !ok {
		t.Fatal("MapToPixelSpace reported no region")
	}
	if want := image.Rect(4, 4, 11, 11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMapToPixelSpace_SinglePrecision(t *testing.T) {
	// float32(1)/41 * 41 is 0.99999994, which truncates to 0.
	// The same math in float64 gives exactly 1.
	scale, ok := ScaleFor(Size{1, 1}, Size{41, 41})
	if !ok {
		t.Fatal("ScaleFor rejected a valid display size")
	}

	got, ok := MapToPixelSpace(image.Rect(41, 41, 42, 42), scale, Size{1, 1})
	if !ok {
		t.Fatal("MapToPixelSpace reported no region")
	}
	if want := image.Rect(0, 0, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMapToPixelSpace_NoOverlap(t *testing.T) {
	size := Size{50, 50}
	one := ScaleRatio{1, 1}

	tests := []struct {
		name   string
		target image.Rectangle
	}{
		{"far right and below", image.Rect(100, 100, 120, 120)},
		{"right of image", image.Rect(51, 0, 60, 10)},
		{"below image", image.Rect(0, 51, 10, 60)},
		{"left of image", image.Rect(-20, 0, -1, 10)},
		{"above image", image.Rect(0, -20, 10, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := MapToPixelSpace(tt.target, one, size); ok {
				t.Errorf("expected no region, got %v", got)
			}
		})
	}
}

func TestMapToPixelSpace_Degenerate(t *testing.T) {
	size := Size{50, 50}

	tests := []struct {
		name   string
		target image.Rectangle
	}{
		{"touches right edge", image.Rect(50, 10, 70, 20)},
		{"touches bottom edge", image.Rect(10, 50, 20, 70)},
		{"touches left edge", image.Rect(-10, 10, 0, 20)},
		{"zero width target", image.Rect(10, 10, 10, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapToPixelSpace(tt.target, ScaleRatio{1, 1}, size)
			if !ok {
				t.Fatal("a rectangle touching the image is still a region")
			}
			if !got.Empty() {
				t.Errorf("expected degenerate rect, got %v", got)
			}
		})
	}
}

func TestMapToPixelSpace_ClampIdempotent(t *testing.T) {
	size := Size{30, 30}
	one := ScaleRatio{1, 1}

	got, ok := MapToPixelSpace(image.Rect(-10, 5, 40, 15), one, size)
	if !ok {
		t.Fatal("partial overlap must not fail")
	}
	if want := image.Rect(0, 5, 30, 15); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	again, ok := MapToPixelSpace(got, one, size)
	if !ok || again != got {
		t.Errorf("re-mapping a clamped rect changed it: %v -> %v (ok=%v)", got, again, ok)
	}
}

func TestMapToPixelSpace_InvalidInputs(t *testing.T) {
	target := image.Rect(0, 0, 10, 10)

	tests := []struct {
		name  string
		scale ScaleRatio
		size  Size
	}{
		{"zero scale", ScaleRatio{0, 1}, Size{10, 10}},
		{"negative scale", ScaleRatio{1, -1}, Size{10, 10}},
		{"infinite scale", ScaleRatio{float32(math.Inf(1)), 1}, Size{10, 10}},
		{"NaN scale", ScaleRatio{1, float32(math.NaN())}, Size{10, 10}},
		{"negative image size", ScaleRatio{1, 1}, Size{-1, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := MapToPixelSpace(target, tt.scale, tt.size); ok {
				t.Errorf("expected no region, got %v", got)
			}
		})
	}
}

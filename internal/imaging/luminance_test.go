package imaging

import (
	"math"
	"testing"
)

const lumTolerance = 1e-4

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  float64
	}{
		{"black", Color{0, 0, 0}, 0},
		{"white", Color{255, 255, 255}, 1},
		{"red", Color{255, 0, 0}, 0.2126},
		{"green", Color{0, 255, 0}, 0.7152},
		{"blue", Color{0, 0, 255}, 0.0722},
		// 10/255 = 0.0392 is below the 0.03928 threshold: linear segment
		{"below threshold", Color{10, 10, 10}, 10.0 / 255.0 / 12.92},
		{"mid gray", Color{128, 128, 128}, 0.2158605},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(RelativeLuminance(tt.color))
			if math.Abs(got-tt.want) > lumTolerance {
				t.Errorf("got %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestRelativeLuminance_Monotonic(t *testing.T) {
	prev := RelativeLuminance(Color{})
	for v := 1; v <= 255; v++ {
		cur := RelativeLuminance(Color{uint8(v), uint8(v), uint8(v)})
		if cur < prev {
			t.Fatalf("luminance decreased at %d: %f < %f", v, cur, prev)
		}
		if cur < 0 || cur > 1.0001 {
			t.Fatalf("luminance out of range at %d: %f", v, cur)
		}
		prev = cur
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(0, 1); math.Abs(got-21) > lumTolerance {
		t.Errorf("black/white: got %f, want 21", got)
	}
	if got := ContrastRatio(1, 0); math.Abs(got-21) > lumTolerance {
		t.Errorf("argument order should not matter: got %f", got)
	}
	if got := ContrastRatio(0.3, 0.3); got != 1 {
		t.Errorf("identical: got %f, want 1", got)
	}
}

func TestTextToneFor(t *testing.T) {
	tests := []struct {
		name string
		lum  float32
		want TextTone
	}{
		{"black background", 0, ToneLight},
		{"white background", 1, ToneDark},
		{"dark gray", RelativeLuminance(Color{60, 60, 60}), ToneLight},
		{"light gray", RelativeLuminance(Color{200, 200, 200}), ToneDark},
		{"pure yellow", RelativeLuminance(Color{255, 255, 0}), ToneDark},
		{"pure blue", RelativeLuminance(Color{0, 0, 255}), ToneLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextToneFor(tt.lum); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

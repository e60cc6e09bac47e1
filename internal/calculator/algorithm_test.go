package calculator

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/text-contrast-mcp/internal/imaging"
)

func TestAlgorithms_RejectMissingRegion(t *testing.T) {
	algs := map[string]ColorAlgorithm{
		"mean":     MeanAlgorithm{},
		"median":   MedianAlgorithm{},
		"dominant": DominantAlgorithm{},
	}

	for name, alg := range algs {
		t.Run(name, func(t *testing.T) {
			if _, err := alg.Calculate(nil); !errors.Is(err, ErrNoOverlap) {
				t.Errorf("nil buffer: got %v, want ErrNoOverlap", err)
			}
			if _, err := alg.Calculate(imaging.NewPixelBuffer(0, 3)); !errors.Is(err, ErrNoOverlap) {
				t.Errorf("empty buffer: got %v, want ErrNoOverlap", err)
			}
		})
	}
}

func TestAlgorithms_Values(t *testing.T) {
	// Nine dark pixels and one white one.
	buf := solid(10, 1, color.NRGBA{32, 32, 32, 255})
	buf.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})

	tests := []struct {
		name string
		alg  ColorAlgorithm
		want imaging.Color
	}{
		// (255 + 9*32) / 10 = 54.3
		{"mean", MeanAlgorithm{}, imaging.Color{R: 54, G: 54, B: 54}},
		{"median", MedianAlgorithm{}, imaging.Color{R: 32, G: 32, B: 32}},
		{"dominant", DominantAlgorithm{}, imaging.Color{R: 32, G: 32, B: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.alg.Calculate(buf)
			if err != nil {
				t.Fatalf("Calculate failed: %v", err)
			}
			if want := imaging.RelativeLuminance(tt.want); got != want {
				t.Errorf("got %f, want %f", got, want)
			}
		})
	}
}

func TestAlgorithmByName(t *testing.T) {
	tests := []struct {
		name    string
		want    ColorAlgorithm
		wantErr bool
	}{
		{"", MeanAlgorithm{}, false},
		{"mean", MeanAlgorithm{}, false},
		{"MEDIAN", MedianAlgorithm{}, false},
		{"dominant", DominantAlgorithm{}, false},
		{"histogram", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AlgorithmByName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %T, want %T", got, tt.want)
			}
		})
	}
}

func TestAlgorithmNames(t *testing.T) {
	got := AlgorithmNames()
	want := []string{"dominant", "mean", "median"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestAlgorithmFunc(t *testing.T) {
	boom := errors.New("boom")
	alg := AlgorithmFunc(func(*image.NRGBA) (float32, error) { return 0, boom })
	if _, err := alg.Calculate(nil); !errors.Is(err, boom) {
		t.Errorf("got %v, want boom", err)
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (&NoOverlapError{}).Error(); got != "the front view and the back view do not have any overlap" {
		t.Errorf("NoOverlapError: got %q", got)
	}
	err := &InvalidGeometryError{Element: "title", Size: imaging.Size{W: -1, H: 2}}
	if !errors.Is(err, ErrNoOverlap) {
		t.Error("InvalidGeometryError should match ErrNoOverlap")
	}
	if got := err.Error(); got != `invalid geometry for "title": -1x2` {
		t.Errorf("InvalidGeometryError: got %q", got)
	}
}

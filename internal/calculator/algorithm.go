package calculator

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/ironsheep/text-contrast-mcp/internal/imaging"
)

// ColorAlgorithm reduces the pixels beneath the front element to a single
// relative luminance in [0, 1].
//
// buf is the cropped region owned by the call; it may be nil when there is
// no region at all. Implementations must fail with an error rather than
// invent a value for a nil or empty buffer.
type ColorAlgorithm interface {
	Calculate(buf *image.NRGBA) (float32, error)
}

// AlgorithmFunc adapts a plain function to ColorAlgorithm.
type AlgorithmFunc func(buf *image.NRGBA) (float32, error)

// Calculate calls f(buf).
func (f AlgorithmFunc) Calculate(buf *image.NRGBA) (float32, error) {
	return f(buf)
}

// MeanAlgorithm is the default: the luminance of the arithmetic mean color.
type MeanAlgorithm struct{}

// Calculate implements ColorAlgorithm.
func (MeanAlgorithm) Calculate(buf *image.NRGBA) (float32, error) {
	return reduce(buf, imaging.Average)
}

// MedianAlgorithm uses the per-channel median color, which keeps small bright
// or dark details (icons, highlights) from skewing the result.
type MedianAlgorithm struct{}

// Calculate implements ColorAlgorithm.
func (MedianAlgorithm) Calculate(buf *image.NRGBA) (float32, error) {
	return reduce(buf, imaging.Median)
}

// DominantAlgorithm uses the most frequent quantized color.
type DominantAlgorithm struct{}

// Calculate implements ColorAlgorithm.
func (DominantAlgorithm) Calculate(buf *image.NRGBA) (float32, error) {
	return reduce(buf, func(b *image.NRGBA) (imaging.Color, error) {
		res, err := imaging.DominantColors(b, 1)
		if err != nil {
			return imaging.Color{}, err
		}
		return res.Colors[0].RGB, nil
	})
}

func reduce(buf *image.NRGBA, pick func(*image.NRGBA) (imaging.Color, error)) (float32, error) {
	if buf == nil {
		return 0, noOverlap("no region to sample")
	}
	if buf.Bounds().Empty() {
		return 0, noOverlap("region has zero area")
	}
	c, err := pick(buf)
	if err != nil {
		return 0, err
	}
	return imaging.RelativeLuminance(c), nil
}

var algorithms = map[string]ColorAlgorithm{
	"mean":     MeanAlgorithm{},
	"median":   MedianAlgorithm{},
	"dominant": DominantAlgorithm{},
}

// AlgorithmByName resolves "mean", "median" or "dominant". An empty name
// selects the default mean algorithm.
func AlgorithmByName(name string) (ColorAlgorithm, error) {
	if name == "" {
		return MeanAlgorithm{}, nil
	}
	if a, ok := algorithms[strings.ToLower(name)]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (want one of %s)", name, strings.Join(AlgorithmNames(), ", "))
}

// AlgorithmNames lists the names AlgorithmByName accepts, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for n := range algorithms {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

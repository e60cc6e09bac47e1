package imaging

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyBuffer is returned when a color is requested for a buffer with no pixels.
var ErrEmptyBuffer = errors.New("pixel buffer has no pixels")

// Color is an opaque sRGB color with 8-bit components.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ColorFromHex parses "#RRGGBB" or the short "#RGB" form, case-insensitive.
//
// # Errors
//
// Returns an error for anything other than '#' followed by exactly 3 or 6
// hex digits. colorful.Hex alone would accept "#12345" and ignore trailing
// digits.
func ColorFromHex(s string) (Color, error) {
	if !isHexColor(s) {
		return Color{}, fmt.Errorf("color must be #RGB or #RRGGBB, got %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

func isHexColor(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Hex formats the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Average returns the arithmetic mean color of every pixel in buf.
//
// Parameters:
//   - buf: The pixels to average, usually the output of Extract. Alpha is
//     ignored.
//
// Returns:
//   - Color: Each channel is summed independently in a uint64 and divided by
//     the pixel count with integer division, so fractions are truncated
//     rather than rounded. Every pixel is visited; there is no sampling.
//   - error: ErrEmptyBuffer when buf is nil or has zero area.
func Average(buf *image.NRGBA) (Color, error) {
	size := bufferSize(buf)
	if size.Empty() {
		return Color{}, ErrEmptyBuffer
	}

	var rSum, gSum, bSum uint64
	b := buf.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := buf.Pix[buf.PixOffset(b.Min.X, y):buf.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			rSum += uint64(row[i])
			gSum += uint64(row[i+1])
			bSum += uint64(row[i+2])
		}
	}

	n := uint64(size.W) * uint64(size.H)
	return Color{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
	}, nil
}

// Median returns the per-channel median color of buf.
//
// Channels are treated independently, so the result need not be a color
// that occurs in the buffer. For an even pixel count the lower median is used.
func Median(buf *image.NRGBA) (Color, error) {
	size := bufferSize(buf)
	if size.Empty() {
		return Color{}, ErrEmptyBuffer
	}

	hist := histogram.NewRGBAHistogram(buf)
	n := size.W * size.H
	return Color{
		R: medianBin(hist.R.Bins, n),
		G: medianBin(hist.G.Bins, n),
		B: medianBin(hist.B.Bins, n),
	}, nil
}

// medianBin walks a 256-bin histogram until half of n samples are covered.
func medianBin(bins []int, n int) uint8 {
	half := (n + 1) / 2
	seen := 0
	for v, count := range bins {
		seen += count
		if seen >= half {
			return uint8(v)
		}
	}
	return 255
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // Hex color "#rrggbb" (quantized)
	Percentage float64 `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        Color   `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"` // Colors sorted by frequency (descending)
}

// quantStep groups channel values into buckets of 16 levels.
const quantStep = 16

// DominantColors extracts the N most common colors from a pixel buffer.
//
// Parameters:
//   - buf: The buffer to analyze, usually the output of Extract.
//   - count: Maximum number of colors to return. If the buffer has fewer
//     distinct colors (after quantization), fewer results are returned.
//
// # Color Quantization
//
// To group similar colors each component is rounded down to a multiple of 16:
//
//	quantized = (original / 16) * 16
//
// For example, colors #f0f0f0 and #fafafa are both counted as #f0f0f0.
// Ties are broken by hex string so the ordering is stable.
func DominantColors(buf *image.NRGBA, count int) (*DominantColorsResult, error) {
	size := bufferSize(buf)
	if size.Empty() {
		return nil, ErrEmptyBuffer
	}

	counts := make(map[Color]int)
	b := buf.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := buf.Pix[buf.PixOffset(b.Min.X, y):buf.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			c := Color{
				R: row[i] / quantStep * quantStep,
				G: row[i+1] / quantStep * quantStep,
				B: row[i+2] / quantStep * quantStep,
			}
			counts[c]++
		}
	}

	total := float64(size.W * size.H)
	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / total * 100,
			RGB:        c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count > 0 && len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

package imaging

import (
	"image"
	"math"
)

// Size is the width and height of a measured element or image.
type Size struct {
	W int `json:"width"`
	H int `json:"height"`
}

// Valid reports whether both dimensions are non-negative.
func (s Size) Valid() bool {
	return s.W >= 0 && s.H >= 0
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// ScaleRatio converts displayed (laid-out) units into intrinsic pixel units.
//
// X and Y are intrinsic/displayed for their axis; 2.0 means one displayed
// unit covers two image pixels. Factors are single precision, matching the
// float math layout toolkits use, so truncation lands on the same pixel.
type ScaleRatio struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Valid reports whether both factors are finite and positive.
func (s ScaleRatio) Valid() bool {
	return validFactor(s.X) && validFactor(s.Y)
}

func validFactor(f float32) bool {
	v := float64(f)
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ScaleFor derives the ratio between an image's intrinsic size and the size
// it is displayed at.
//
// Parameters:
//   - intrinsic: The image's own pixel size.
//   - displayed: The size the image is laid out at on screen.
//
// Returns:
//   - ScaleRatio: intrinsic/displayed per axis, in single precision.
//   - bool: false when either displayed dimension is zero or negative (the
//     ratio is undefined there) or the intrinsic size is negative.
func ScaleFor(intrinsic, displayed Size) (ScaleRatio, bool) {
	if displayed.W <= 0 || displayed.H <= 0 || !intrinsic.Valid() {
		return ScaleRatio{}, false
	}
	return ScaleRatio{
		X: float32(intrinsic.W) / float32(displayed.W),
		Y: float32(intrinsic.H) / float32(displayed.H),
	}, true
}

// MapToPixelSpace converts a rectangle in display space into the pixel space
// of an image of the given size.
//
// Parameters:
//   - target: The rectangle in display coordinates, relative to the image
//     view's top-left corner. Max is exclusive.
//   - scale: The display-to-pixel ratio, usually from ScaleFor.
//   - imageSize: The pixel size of the image being sampled.
//
// Returns:
//   - image.Rectangle: The rectangle clipped to [0,W]x[0,H]. It may be empty.
//   - bool: false when there is no region at all.
//
// # Scaling
//
// The origin and the size are each multiplied by the axis factor in single
// precision and truncated toward zero:
//
//	left  = int(x * scale.X)
//	right = left + int(w * scale.X)
//
// # Outcomes
//
// Two outcomes must be told apart by callers:
//   - false: the scaled rectangle lies entirely outside the image (or the
//     inputs are malformed).
//   - true with an empty rectangle: the rectangle only touches an image edge.
//     The result is degenerate but still a region.
//
// Mapping an already clamped rectangle again with a 1:1 scale returns it
// unchanged.
func MapToPixelSpace(target image.Rectangle, scale ScaleRatio, imageSize Size) (image.Rectangle, bool) {
	if !scale.Valid() || !imageSize.Valid() {
		return image.Rectangle{}, false
	}
	w, h := target.Dx(), target.Dy()
	if w < 0 || h < 0 {
		return image.Rectangle{}, false
	}

	left := int(float32(target.Min.X) * scale.X)
	top := int(float32(target.Min.Y) * scale.Y)
	right := left + int(float32(w)*scale.X)
	bottom := top + int(float32(h)*scale.Y)

	if right < 0 || left > imageSize.W || bottom < 0 || top > imageSize.H {
		return image.Rectangle{}, false
	}

	return image.Rectangle{
		Min: image.Point{X: clamp(left, 0, imageSize.W), Y: clamp(top, 0, imageSize.H)},
		Max: image.Point{X: clamp(right, 0, imageSize.W), Y: clamp(bottom, 0, imageSize.H)},
	}, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

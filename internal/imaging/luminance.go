package imaging

import "math"

// WCAG 2.0 relative luminance constants.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
const (
	linearThreshold = 0.03928
	linearDivisor   = 12.92
	gammaOffset     = 0.055
	gammaExponent   = 2.4

	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722
)

// RelativeLuminance returns the WCAG 2.0 relative luminance of c.
//
// Parameters:
//   - c: An sRGB color.
//
// Returns:
//   - float32: Luminance from 0 (black) to 1 (white).
//
// # Formula
//
// Each channel is normalized to [0,1] and linearized:
//
//	v <  0.03928: v / 12.92
//	v >= 0.03928: ((v + 0.055) / 1.055) ^ 2.4
//
// The result is 0.2126*R + 0.7152*G + 0.0722*B, computed in float64.
func RelativeLuminance(c Color) float32 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return float32(redWeight*r + greenWeight*g + blueWeight*b)
}

// linearize undoes the sRGB transfer curve for one normalized channel.
func linearize(v float64) float64 {
	if v < linearThreshold {
		return v / linearDivisor
	}
	return math.Pow((v+gammaOffset)/(1+gammaOffset), gammaExponent)
}

// ContrastRatio returns the WCAG contrast ratio between two luminances,
// from 1 (identical) to 21 (black on white).
func ContrastRatio(a, b float32) float64 {
	l1, l2 := float64(a), float64(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// TextTone says whether text over a background should be drawn light or dark.
type TextTone string

const (
	ToneLight TextTone = "light"
	ToneDark  TextTone = "dark"
)

// TextToneFor picks the text tone with the higher contrast against a
// background of luminance l. Dark text wins ties.
func TextToneFor(l float32) TextTone {
	if ContrastRatio(l, 0) >= ContrastRatio(l, 1) {
		return ToneDark
	}
	return ToneLight
}

// Package imaging holds the pixel-level half of the text contrast pipeline:
// mapping a display-space rectangle into an image's pixel space, copying that
// region out, reducing it to a single color and converting the color to a
// WCAG relative luminance.
//
// # Coordinate Spaces
//
// Two coordinate systems meet here and must not be mixed:
//   - display space: where UI elements are laid out on screen
//   - pixel space: the raw pixel grid of the background image
//
// They differ by a ScaleRatio (intrinsic size / displayed size). Only
// MapToPixelSpace converts between them.
//
// Rectangles are image.Rectangle values: Min is inclusive, Max is exclusive.
// A rectangle with zero width or height is degenerate. It is still a region,
// unlike the "no region" result MapToPixelSpace reports when there is no
// overlap at all.
//
// # Pixel Buffers
//
// Pixel buffers are *image.NRGBA anchored at (0,0). Extract always returns a
// copy, so a cropped buffer can be mutated or dropped without affecting the
// image it came from.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Everything else is a pure function
// of its arguments.
package imaging

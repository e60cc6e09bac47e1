package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Extract copies the pixels of r out of buf into a new buffer anchored at (0,0).
//
// Parameters:
//   - buf: The source pixels. Its bounds need not start at (0,0).
//   - r: The region to copy, usually from MapToPixelSpace. It is intersected
//     with buf's bounds again, so a stray rectangle yields a smaller buffer
//     rather than a panic.
//
// Returns:
//   - *image.NRGBA: A buffer of r.Dx() x r.Dy() pixels in row-major order.
//     It owns its pixels; mutating it never touches buf. An empty
//     intersection gives a 0x0 buffer, and a nil buf gives nil.
func Extract(buf *image.NRGBA, r image.Rectangle) *image.NRGBA {
	if buf == nil {
		return nil
	}
	r = r.Intersect(buf.Bounds())
	if r.Empty() {
		return NewPixelBuffer(0, 0)
	}
	return imaging.Crop(buf, r)
}

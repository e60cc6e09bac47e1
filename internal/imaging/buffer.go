package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// NewPixelBuffer allocates a blank width x height pixel buffer anchored at (0,0).
//
// Pixel buffers are plain *image.NRGBA values. Channels are stored
// non-premultiplied so the red, green and blue bytes can be read directly;
// alpha is carried along but ignored by every calculation in this package.
func NewPixelBuffer(width, height int) *image.NRGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// ToPixelBuffer converts any decoded image into an independent pixel buffer
// anchored at (0,0). The result never shares storage with src.
func ToPixelBuffer(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	return imaging.Clone(src)
}

// bufferSize returns the dimensions of buf, or the zero Size for nil.
func bufferSize(buf *image.NRGBA) Size {
	if buf == nil {
		return Size{}
	}
	b := buf.Bounds()
	return Size{W: b.Dx(), H: b.Dy()}
}

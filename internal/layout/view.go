package layout

import (
	"image"
	"sync"

	"github.com/ironsheep/text-contrast-mcp/internal/imaging"
)

// ImageView is a background view showing a pixel buffer at a displayed size.
type ImageView struct {
	mu        sync.RWMutex
	buf       *image.NRGBA
	displayed imaging.Size
}

// NewImageView shows buf at the given displayed size. buf may be nil for an
// empty view.
func NewImageView(buf *image.NRGBA, displayed imaging.Size) *ImageView {
	return &ImageView{buf: buf, displayed: displayed}
}

// SetImage replaces the displayed image; nil clears it.
func (v *ImageView) SetImage(buf *image.NRGBA) {
	v.mu.Lock()
	v.buf = buf
	v.mu.Unlock()
}

// SetDisplayedSize changes the size the image is laid out at.
func (v *ImageView) SetDisplayedSize(s imaging.Size) {
	v.mu.Lock()
	v.displayed = s
	v.mu.Unlock()
}

// PixelBuffer returns the current image, or false when the view is empty.
func (v *ImageView) PixelBuffer() (*image.NRGBA, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.buf, v.buf != nil
}

// IntrinsicSize is the pixel size of the current image.
func (v *ImageView) IntrinsicSize() imaging.Size {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.buf == nil {
		return imaging.Size{}
	}
	b := v.buf.Bounds()
	return imaging.Size{W: b.Dx(), H: b.Dy()}
}

// DisplayedBoundsSize is the size the image is laid out at.
func (v *ImageView) DisplayedBoundsSize() imaging.Size {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.displayed
}

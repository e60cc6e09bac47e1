package calculator

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/ironsheep/text-contrast-mcp/internal/imaging"
)

// LayoutGeometryProvider answers where laid-out elements are on screen.
type LayoutGeometryProvider interface {
	// ScreenRect returns the element's rectangle in screen coordinates.
	ScreenRect(id string) (image.Rectangle, error)
	// MeasuredSize returns the element's measured width and height.
	MeasuredSize(id string) (imaging.Size, error)
}

// ImageSource is the background view: an image displayed at some size.
type ImageSource interface {
	// PixelBuffer returns the image's pixels, or false when the view
	// currently shows no image.
	PixelBuffer() (*image.NRGBA, bool)
	// IntrinsicSize is the image's own pixel size.
	IntrinsicSize() imaging.Size
	// DisplayedBoundsSize is the size the image is laid out at.
	DisplayedBoundsSize() imaging.Size
}

// LayoutStabilityNotifier calls every subscriber each time layout settles.
type LayoutStabilityNotifier interface {
	Subscribe(fn func())
}

// ResultListener receives the outcome of each Recompute. Exactly one of the
// two methods is called per run.
type ResultListener interface {
	Done(luminance float32)
	Fail(err error)
}

// ListenerFuncs adapts a pair of functions to ResultListener. Nil fields are
// skipped.
type ListenerFuncs struct {
	OnDone func(luminance float32)
	OnFail func(err error)
}

// Done implements ResultListener.
func (l ListenerFuncs) Done(luminance float32) {
	if l.OnDone != nil {
		l.OnDone(luminance)
	}
}

// Fail implements ResultListener.
func (l ListenerFuncs) Fail(err error) {
	if l.OnFail != nil {
		l.OnFail(err)
	}
}

// Config binds a Calculator to its collaborators.
type Config struct {
	Geometry LayoutGeometryProvider
	Source   ImageSource
	Notifier LayoutStabilityNotifier

	// FrontID is the element text is drawn in; BackID is the image view
	// beneath it. Both are ids understood by Geometry.
	FrontID string
	BackID  string

	// Logger defaults to a null logger.
	Logger hclog.Logger
}

// Calculator works out the luminance of the background pixels beneath a
// front element and reports it to a ResultListener.
//
// A Calculator keeps no state between runs. It is meant to be driven from a
// single goroutine (usually the one delivering layout notifications).
type Calculator struct {
	geometry LayoutGeometryProvider
	source   ImageSource
	notifier LayoutStabilityNotifier
	frontID  string
	backID   string
	logger   hclog.Logger

	listener  ResultListener
	algorithm ColorAlgorithm

	attach sync.Once
}

// New returns a Calculator using MeanAlgorithm and no listener.
func New(cfg Config) (*Calculator, error) {
	if cfg.Geometry == nil {
		return nil, errors.New("calculator: geometry provider is required")
	}
	if cfg.Source == nil {
		return nil, errors.New("calculator: image source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Calculator{
		geometry:  cfg.Geometry,
		source:    cfg.Source,
		notifier:  cfg.Notifier,
		frontID:   cfg.FrontID,
		backID:    cfg.BackID,
		logger:    logger.Named("calculator"),
		algorithm: MeanAlgorithm{},
	}, nil
}

// Configure sets the result listener and, when algorithm is non-nil,
// replaces the color algorithm. It may be called again at any time.
func (c *Calculator) Configure(listener ResultListener, algorithm ColorAlgorithm) {
	c.listener = listener
	if algorithm != nil {
		c.algorithm = algorithm
	}
}

// AttachTrigger subscribes Recompute to the layout notifier. Only the first
// call subscribes; later calls do nothing.
func (c *Calculator) AttachTrigger() error {
	if c.notifier == nil {
		return errors.New("calculator: no layout notifier configured")
	}
	c.attach.Do(func() {
		c.notifier.Subscribe(c.Recompute)
		c.logger.Debug("subscribed to layout notifications", "front", c.frontID, "back", c.backID)
	})
	return nil
}

// Recompute runs the pipeline and delivers the result to the listener.
// Without a listener it does nothing.
func (c *Calculator) Recompute() {
	if c.listener == nil {
		c.logger.Debug("recompute skipped, no listener")
		return
	}
	lum, err := c.Calculate()
	if err != nil {
		c.logger.Debug("luminance calculation failed", "error", err)
		c.listener.Fail(err)
		return
	}
	c.listener.Done(lum)
}

// Calculate runs the pipeline once and returns the luminance directly.
//
// The front element's position relative to the back view is scaled into the
// image's pixel space, cropped, and handed to the configured algorithm.
//
// Returns:
//   - float32: The algorithm's luminance for the pixels under the front view.
//   - error: Non-nil when nothing could be measured.
//
// # Errors
//
// Every "nothing to measure" outcome matches ErrNoOverlap via errors.Is:
//   - *InvalidGeometryError when the front view has a negative measured size.
//   - *NoOverlapError when the back view has no image or no displayed area,
//     or the front view misses the image or only touches its edge.
//
// Lookup failures from the LayoutGeometryProvider are wrapped and returned
// as-is. Errors from the algorithm are passed through.
func (c *Calculator) Calculate() (float32, error) {
	target, err := c.targetRect()
	if err != nil {
		return 0, err
	}

	buf, ok := c.source.PixelBuffer()
	if !ok || buf == nil {
		return 0, noOverlap("back view has no image")
	}

	intrinsic := c.source.IntrinsicSize()
	scale, ok := imaging.ScaleFor(intrinsic, c.source.DisplayedBoundsSize())
	if !ok {
		return 0, noOverlap("back view has no displayed area")
	}

	region, ok := imaging.MapToPixelSpace(target, scale, sizeOf(buf))
	if !ok {
		return 0, noOverlap("front view lies outside the image")
	}
	if region.Empty() {
		return 0, noOverlap("overlap has zero area")
	}

	c.logger.Trace("sampling region", "target", target, "scale", scale, "region", region)
	return c.algorithm.Calculate(imaging.Extract(buf, region))
}

// targetRect is the front element's rectangle in the back view's display
// coordinates.
func (c *Calculator) targetRect() (image.Rectangle, error) {
	front, err := c.geometry.ScreenRect(c.frontID)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("front view position: %w", err)
	}
	back, err := c.geometry.ScreenRect(c.backID)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("back view position: %w", err)
	}
	size, err := c.geometry.MeasuredSize(c.frontID)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("front view size: %w", err)
	}
	if !size.Valid() {
		return image.Rectangle{}, &InvalidGeometryError{Element: c.frontID, Size: size}
	}

	origin := front.Min.Sub(back.Min)
	return image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Point{X: size.W, Y: size.H}),
	}, nil
}

func sizeOf(buf *image.NRGBA) imaging.Size {
	b := buf.Bounds()
	return imaging.Size{W: b.Dx(), H: b.Dy()}
}

package calculator

import (
	"errors"
	"fmt"

	"github.com/ironsheep/text-contrast-mcp/internal/imaging"
)

// ErrNoOverlap is the error every "nothing to measure" failure matches with
// errors.Is.
var ErrNoOverlap = errors.New("the front view and the back view do not have any overlap")

// NoOverlapError reports that no pixels lie beneath the front element: the
// mapped rectangle misses the image, only touches its edge, or the back view
// has no image at all.
type NoOverlapError struct {
	// Reason is a short detail for logs, e.g. "back view has no image".
	Reason string
}

func (e *NoOverlapError) Error() string {
	if e.Reason == "" {
		return ErrNoOverlap.Error()
	}
	return fmt.Sprintf("%s: %s", ErrNoOverlap, e.Reason)
}

// Is makes errors.Is(err, ErrNoOverlap) true.
func (e *NoOverlapError) Is(target error) bool {
	return target == ErrNoOverlap
}

// InvalidGeometryError reports a malformed size from the layout provider.
// It is handled exactly like a missing overlap and unwraps to ErrNoOverlap.
type InvalidGeometryError struct {
	Element string
	Size    imaging.Size
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry for %q: %dx%d", e.Element, e.Size.W, e.Size.H)
}

func (e *InvalidGeometryError) Unwrap() error {
	return ErrNoOverlap
}

func noOverlap(reason string) error {
	return &NoOverlapError{Reason: reason}
}

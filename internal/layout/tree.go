package layout

import (
	"fmt"
	"image"
	"sync"

	"github.com/ironsheep/text-contrast-mcp/internal/imaging"
)

// Element is one laid-out element.
type Element struct {
	// Rect is the element's position on screen.
	Rect image.Rectangle `json:"rect"`
	// Measured is the measured size. It usually equals Rect's size but is
	// reported separately by layout systems and may differ (e.g. padding).
	Measured imaging.Size `json:"measured"`
}

// Tree is an in-memory element registry keyed by id.
type Tree struct {
	mu       sync.RWMutex
	elements map[string]Element
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{elements: make(map[string]Element)}
}

// Place records id at screen rectangle r, with its measured size taken
// from r.
func (t *Tree) Place(id string, r image.Rectangle) {
	t.PlaceMeasured(id, r, imaging.Size{W: r.Dx(), H: r.Dy()})
}

// PlaceMeasured records id with an explicit measured size.
func (t *Tree) PlaceMeasured(id string, r image.Rectangle, measured imaging.Size) {
	t.mu.Lock()
	t.elements[id] = Element{Rect: r, Measured: measured}
	t.mu.Unlock()
}

// Remove forgets id.
func (t *Tree) Remove(id string) {
	t.mu.Lock()
	delete(t.elements, id)
	t.mu.Unlock()
}

func (t *Tree) lookup(id string) (Element, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.elements[id]
	if !ok {
		return Element{}, fmt.Errorf("element %q is not laid out", id)
	}
	return e, nil
}

// ScreenRect returns the screen rectangle of id.
func (t *Tree) ScreenRect(id string) (image.Rectangle, error) {
	e, err := t.lookup(id)
	return e.Rect, err
}

// MeasuredSize returns the measured size of id.
func (t *Tree) MeasuredSize(id string) (imaging.Size, error) {
	e, err := t.lookup(id)
	return e.Measured, err
}

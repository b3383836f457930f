// Package input defines the raw pointer, touch and wheel events consumed by camera controllers
// and the Surface contract that platform backends implement.
package input

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// DeltaMode tells how a wheel delta is measured.
type DeltaMode int

const (
	// DeltaModePixel deltas are in pixels (trackpads, most browsers).
	DeltaModePixel DeltaMode = iota
	// DeltaModeLine deltas are in text lines (classic mouse wheels, GLFW scroll offsets).
	DeltaModeLine
	// DeltaModeLegacy deltas are in 1/120 notch units with the legacy sign convention (positive = away from the user).
	DeltaModeLegacy
)

// Rect is the bounding rectangle of a surface in client coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// PointerEvent is a mouse-like event at a single client position.
type PointerEvent struct {
	Button  Button
	ClientX float64
	ClientY float64
}

// TouchPoint is one active contact of a touch event.
type TouchPoint struct {
	ID      int
	ClientX float64
	ClientY float64
}

// TouchEvent carries the contacts that remain active after the event.
// For a touch end this is the set of contacts still down, possibly empty.
type TouchEvent struct {
	Touches []TouchPoint
}

// WheelEvent is a scroll event. DeltaY follows the pixel/line convention (positive = toward the user)
// unless DeltaMode is DeltaModeLegacy.
type WheelEvent struct {
	DeltaY    float64
	DeltaMode DeltaMode
	ClientX   float64
	ClientY   float64
}

// Centroid returns the average client position of the contacts, or (0, 0) when there are none.
//
// Returns:
//   - x, y: the averaged client coordinates
func (e TouchEvent) Centroid() (x, y float64) {
	if len(e.Touches) == 0 {
		return 0, 0
	}
	for _, p := range e.Touches {
		x += p.ClientX
		y += p.ClientY
	}
	n := float64(len(e.Touches))
	return x / n, y / n
}

// Surface is the input source a controller attaches to.
// Every On* method registers a listener and returns a function that removes it.
type Surface interface {
	// Rect returns the surface's current bounding rectangle.
	//
	// Returns:
	//   - Rect: offset and size in client coordinates
	Rect() Rect

	// OnPointerDown registers a pointer-press listener.
	OnPointerDown(fn func(PointerEvent)) (remove func())

	// OnPointerMove registers a pointer-move listener.
	OnPointerMove(fn func(PointerEvent)) (remove func())

	// OnPointerUp registers a pointer-release listener.
	OnPointerUp(fn func(PointerEvent)) (remove func())

	// OnTouchStart registers a listener for new contacts.
	OnTouchStart(fn func(TouchEvent)) (remove func())

	// OnTouchMove registers a listener for contact movement.
	OnTouchMove(fn func(TouchEvent)) (remove func())

	// OnTouchEnd registers a listener for lifted contacts.
	OnTouchEnd(fn func(TouchEvent)) (remove func())

	// OnWheel registers a scroll listener.
	OnWheel(fn func(WheelEvent)) (remove func())
}

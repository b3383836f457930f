package touch_surface

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is the raw input state sampled once per ebiten tick.
type Frame struct {
	// Width and Height are the layout size in pixels.
	Width  int
	Height int

	// Touches are the contacts currently down.
	Touches []input.TouchPoint

	CursorX float64
	CursorY float64

	// Buttons holds the pressed state of the left, middle and right mouse buttons.
	Buttons [3]bool

	// WheelY is the vertical wheel offset this tick, positive away from the user.
	WheelY float64
}

// Surface is an input.Surface fed by ebiten. Ebiten exposes input as polled state, so the surface
// keeps the previous Frame and turns the differences into pointer, touch and wheel events.
type Surface struct {
	*input.Hub

	width  int
	height int

	prev       Frame
	hasCursor  bool
	touchIDs   []ebiten.TouchID
	wheelScale float64
}

var _ input.Surface = &Surface{}

// NewSurface creates a Surface. The rect starts at the WithSize size and follows Layout afterwards.
//
// Parameters:
//   - options: functional options to configure the surface
//
// Returns:
//   - *Surface: the newly created surface
func NewSurface(options ...SurfaceOption) *Surface {
	s := &Surface{
		Hub:        input.NewHub(input.Rect{}),
		wheelScale: 1,
	}
	for _, opt := range options {
		opt(s)
	}
	s.SetRect(input.Rect{Width: float64(s.width), Height: float64(s.height)})
	s.prev.Width, s.prev.Height = s.width, s.height
	return s
}

// Layout records the outside size as the surface rect and returns it unchanged.
// Call it from the ebiten.Game's Layout method.
//
// Parameters:
//   - outsideWidth, outsideHeight: the size ebiten offers
//
// Returns:
//   - int, int: the logical screen size
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width, s.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Poll samples ebiten's input state and emits the events that changed since the previous call.
// Call it once at the start of the ebiten.Game's Update method.
func (s *Surface) Poll() {
	f := Frame{Width: s.width, Height: s.height}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		f.Touches = append(f.Touches, input.TouchPoint{ID: int(id), ClientX: float64(x), ClientY: float64(y)})
	}

	cx, cy := ebiten.CursorPosition()
	f.CursorX, f.CursorY = float64(cx), float64(cy)
	f.Buttons[input.ButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	f.Buttons[input.ButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	f.Buttons[input.ButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	_, f.WheelY = ebiten.Wheel()

	s.Apply(f)
}

// Apply emits the events that turn the previous frame into f, then stores f.
// Touch events come first (lifts, then new contacts, then moves), followed by
// button presses, cursor motion, button releases and the wheel.
//
// Parameters:
//   - f: the newly sampled frame
func (s *Surface) Apply(f Frame) {
	rect := input.Rect{Width: float64(f.Width), Height: float64(f.Height)}
	if rect != s.Rect() {
		s.SetRect(rect)
	}

	s.applyTouches(f.Touches)
	s.applyPointer(f)

	if f.WheelY != 0 {
		s.EmitWheel(input.WheelEvent{
			DeltaY:    -f.WheelY * s.wheelScale,
			DeltaMode: input.DeltaModeLine,
			ClientX:   f.CursorX,
			ClientY:   f.CursorY,
		})
	}

	f.Touches = append([]input.TouchPoint(nil), f.Touches...)
	s.prev = f
	s.hasCursor = true
}

func (s *Surface) applyTouches(current []input.TouchPoint) {
	prevByID := make(map[int]input.TouchPoint, len(s.prev.Touches))
	for _, p := range s.prev.Touches {
		prevByID[p.ID] = p
	}
	currentIDs := make(map[int]bool, len(current))
	for _, p := range current {
		currentIDs[p.ID] = true
	}

	var remaining []input.TouchPoint
	lifted := false
	for _, p := range s.prev.Touches {
		if currentIDs[p.ID] {
			remaining = append(remaining, p)
		} else {
			lifted = true
		}
	}
	if lifted {
		s.EmitTouchEnd(input.TouchEvent{Touches: remaining})
	}

	added := false
	moved := false
	for _, p := range current {
		old, ok := prevByID[p.ID]
		if !ok {
			added = true
		} else if old != p {
			moved = true
		}
	}
	switch {
	case added:
		s.EmitTouchStart(input.TouchEvent{Touches: current})
	case moved:
		s.EmitTouchMove(input.TouchEvent{Touches: current})
	}
}

func (s *Surface) applyPointer(f Frame) {
	for b := input.ButtonLeft; b <= input.ButtonRight; b++ {
		if f.Buttons[b] && !s.prev.Buttons[b] {
			s.EmitPointerDown(input.PointerEvent{Button: b, ClientX: f.CursorX, ClientY: f.CursorY})
		}
	}

	if s.hasCursor && (f.CursorX != s.prev.CursorX || f.CursorY != s.prev.CursorY) {
		s.EmitPointerMove(input.PointerEvent{ClientX: f.CursorX, ClientY: f.CursorY})
	}

	for b := input.ButtonLeft; b <= input.ButtonRight; b++ {
		if !f.Buttons[b] && s.prev.Buttons[b] {
			s.EmitPointerUp(input.PointerEvent{Button: b, ClientX: f.CursorX, ClientY: f.CursorY})
		}
	}
}

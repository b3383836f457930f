package input

import "github.com/Carmen-Shannon/oxy-orbit/engine/event"

// Hub is a Surface listener registry that platform backends embed.
// Backends translate platform callbacks into Emit* calls; Hub fans them out to registered listeners.
// A Hub with a fixed rectangle is also a complete in-memory Surface for headless hosts and tests.
type Hub struct {
	rect Rect

	pointerDown event.Listeners[PointerEvent]
	pointerMove event.Listeners[PointerEvent]
	pointerUp   event.Listeners[PointerEvent]
	touchStart  event.Listeners[TouchEvent]
	touchMove   event.Listeners[TouchEvent]
	touchEnd    event.Listeners[TouchEvent]
	wheel       event.Listeners[WheelEvent]
}

var _ Surface = &Hub{}

// NewHub creates a Hub reporting the given rectangle.
//
// Parameters:
//   - rect: the initial surface rectangle
//
// Returns:
//   - *Hub: the hub
func NewHub(rect Rect) *Hub {
	return &Hub{rect: rect}
}

func (h *Hub) Rect() Rect {
	return h.rect
}

// SetRect updates the rectangle reported by Rect, e.g. after a resize.
func (h *Hub) SetRect(rect Rect) {
	h.rect = rect
}

// ListenerCount returns the total number of registered listeners across all event kinds.
func (h *Hub) ListenerCount() int {
	return h.pointerDown.Len() + h.pointerMove.Len() + h.pointerUp.Len() +
		h.touchStart.Len() + h.touchMove.Len() + h.touchEnd.Len() + h.wheel.Len()
}

func (h *Hub) OnPointerDown(fn func(PointerEvent)) func() { return subscribe(&h.pointerDown, fn) }
func (h *Hub) OnPointerMove(fn func(PointerEvent)) func() { return subscribe(&h.pointerMove, fn) }
func (h *Hub) OnPointerUp(fn func(PointerEvent)) func()   { return subscribe(&h.pointerUp, fn) }
func (h *Hub) OnTouchStart(fn func(TouchEvent)) func()    { return subscribe(&h.touchStart, fn) }
func (h *Hub) OnTouchMove(fn func(TouchEvent)) func()     { return subscribe(&h.touchMove, fn) }
func (h *Hub) OnTouchEnd(fn func(TouchEvent)) func()      { return subscribe(&h.touchEnd, fn) }
func (h *Hub) OnWheel(fn func(WheelEvent)) func()         { return subscribe(&h.wheel, fn) }

func (h *Hub) EmitPointerDown(e PointerEvent) { h.pointerDown.Dispatch(e) }
func (h *Hub) EmitPointerMove(e PointerEvent) { h.pointerMove.Dispatch(e) }
func (h *Hub) EmitPointerUp(e PointerEvent)   { h.pointerUp.Dispatch(e) }
func (h *Hub) EmitTouchStart(e TouchEvent)    { h.touchStart.Dispatch(e) }
func (h *Hub) EmitTouchMove(e TouchEvent)     { h.touchMove.Dispatch(e) }
func (h *Hub) EmitTouchEnd(e TouchEvent)      { h.touchEnd.Dispatch(e) }
func (h *Hub) EmitWheel(e WheelEvent)         { h.wheel.Dispatch(e) }

// subscribe adds fn to l and returns an idempotent remover.
func subscribe[T any](l *event.Listeners[T], fn func(T)) func() {
	handle := l.Add(fn)
	return func() {
		l.Remove(handle)
	}
}

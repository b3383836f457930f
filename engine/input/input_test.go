package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchEventCentroid(t *testing.T) {
	x, y := TouchEvent{}.Centroid()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = TouchEvent{Touches: []TouchPoint{{ClientX: 0, ClientY: 0}, {ClientX: 10, ClientY: 20}}}.Centroid()
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 10.0, y)
}

func TestHub_EmitAndRemove(t *testing.T) {
	h := NewHub(Rect{Width: 800, Height: 600})
	assert.Equal(t, 800.0, h.Rect().Width)

	var downs, wheels int
	removeDown := h.OnPointerDown(func(PointerEvent) { downs++ })
	removeWheel := h.OnWheel(func(WheelEvent) { wheels++ })
	h.OnTouchStart(func(TouchEvent) {})
	assert.Equal(t, 3, h.ListenerCount())

	h.EmitPointerDown(PointerEvent{Button: ButtonLeft})
	h.EmitWheel(WheelEvent{DeltaY: 1})
	assert.Equal(t, 1, downs)
	assert.Equal(t, 1, wheels)

	removeDown()
	removeDown()
	removeWheel()
	assert.Equal(t, 1, h.ListenerCount())

	h.EmitPointerDown(PointerEvent{})
	h.EmitWheel(WheelEvent{})
	assert.Equal(t, 1, downs)
	assert.Equal(t, 1, wheels)

	h.SetRect(Rect{Width: 10, Height: 5})
	assert.Equal(t, 5.0, h.Rect().Height)
}

func TestWheelNormalizer(t *testing.T) {
	n := WheelNormalizer{}
	assert.InDelta(t, 1.0, n.Normalize(WheelEvent{DeltaY: 120, DeltaMode: DeltaModeLegacy}), 1e-12)
	assert.InDelta(t, 1.0, n.Normalize(WheelEvent{DeltaY: -3, DeltaMode: DeltaModeLine}), 1e-12)
	assert.InDelta(t, 1.0, n.Normalize(WheelEvent{DeltaY: -30, DeltaMode: DeltaModePixel}), 1e-12)

	mac := WheelNormalizer{DeltaYFactor: -1}
	assert.InDelta(t, 2.0, mac.Normalize(WheelEvent{DeltaY: -2, DeltaMode: DeltaModeLine}), 1e-12)
}

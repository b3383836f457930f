package touch_surface

import (
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/stretchr/testify/assert"
)

// record subscribes to every event kind and returns a log of compact descriptions.
func record(s *Surface) *[]string {
	var events []string
	add := func(format string, args ...any) {
		events = append(events, fmt.Sprintf(format, args...))
	}
	s.OnTouchStart(func(e input.TouchEvent) { add("touchstart:%d", len(e.Touches)) })
	s.OnTouchMove(func(e input.TouchEvent) { add("touchmove:%d", len(e.Touches)) })
	s.OnTouchEnd(func(e input.TouchEvent) { add("touchend:%d", len(e.Touches)) })
	s.OnPointerDown(func(e input.PointerEvent) { add("down:%d", e.Button) })
	s.OnPointerMove(func(e input.PointerEvent) { add("move:%.0f,%.0f", e.ClientX, e.ClientY) })
	s.OnPointerUp(func(e input.PointerEvent) { add("up:%d", e.Button) })
	s.OnWheel(func(e input.WheelEvent) { add("wheel:%.2f", e.DeltaY) })
	return &events
}

func frame(touches ...input.TouchPoint) Frame {
	return Frame{Width: 800, Height: 600, Touches: touches}
}

func TestSurface_Touches(t *testing.T) {
	s := NewSurface(WithSize(800, 600))
	events := record(s)

	steps := []struct {
		name     string
		frame    Frame
		expected []string
	}{
		{"first contact", frame(input.TouchPoint{ID: 1, ClientX: 10, ClientY: 10}), []string{"touchstart:1"}},
		{"held still", frame(input.TouchPoint{ID: 1, ClientX: 10, ClientY: 10}), nil},
		{"moved", frame(input.TouchPoint{ID: 1, ClientX: 20, ClientY: 10}), []string{"touchmove:1"}},
		{"second contact", frame(input.TouchPoint{ID: 1, ClientX: 25, ClientY: 10}, input.TouchPoint{ID: 2, ClientX: 50, ClientY: 50}), []string{"touchstart:2"}},
		{"first lifted", frame(input.TouchPoint{ID: 2, ClientX: 50, ClientY: 50}), []string{"touchend:1"}},
		{"lift and press together", frame(input.TouchPoint{ID: 3, ClientX: 0, ClientY: 0}), []string{"touchend:0", "touchstart:1"}},
		{"all lifted", frame(), []string{"touchend:0"}},
	}
	for _, step := range steps {
		*events = nil
		s.Apply(step.frame)
		assert.Equal(t, step.expected, *events, step.name)
	}
}

func TestSurface_Pointer(t *testing.T) {
	s := NewSurface(WithSize(800, 600))
	events := record(s)

	s.Apply(Frame{Width: 800, Height: 600, CursorX: 5, CursorY: 5})
	assert.Empty(t, *events, "the first sample only establishes the cursor")

	pressed := Frame{Width: 800, Height: 600, CursorX: 8, CursorY: 5}
	pressed.Buttons[input.ButtonLeft] = true
	s.Apply(pressed)
	assert.Equal(t, []string{"down:0", "move:8,5"}, *events)

	*events = nil
	s.Apply(pressed)
	assert.Empty(t, *events)

	s.Apply(Frame{Width: 800, Height: 600, CursorX: 8, CursorY: 5})
	assert.Equal(t, []string{"up:0"}, *events)

	*events = nil
	right := Frame{Width: 800, Height: 600, CursorX: 8, CursorY: 5}
	right.Buttons[input.ButtonRight] = true
	right.Buttons[input.ButtonMiddle] = true
	s.Apply(right)
	assert.Equal(t, []string{"down:1", "down:2"}, *events)
}

func TestSurface_Wheel(t *testing.T) {
	s := NewSurface(WithSize(800, 600), WithWheelScale(0.5))
	events := record(s)

	s.Apply(Frame{Width: 800, Height: 600, WheelY: 2})
	assert.Equal(t, []string{"wheel:-1.00"}, *events)

	*events = nil
	s.Apply(Frame{Width: 800, Height: 600})
	assert.Empty(t, *events)
}

func TestSurface_RectFollowsLayout(t *testing.T) {
	s := NewSurface(WithSize(320, 200))
	assert.Equal(t, input.Rect{Width: 320, Height: 200}, s.Rect())

	w, h := s.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	s.Apply(Frame{Width: 640, Height: 480})
	assert.Equal(t, input.Rect{Width: 640, Height: 480}, s.Rect())
}

func TestSurface_DrivesPinch(t *testing.T) {
	s := NewSurface(WithSize(800, 600))
	cam := camera.NewCamera(camera.WithPosition(0, 0, 5))
	cc := camera.NewCameraController(cam, camera.WithSurface(s), camera.WithLogger(log.New(io.Discard, "", 0)))

	s.Apply(frame(input.TouchPoint{ID: 1, ClientX: 300, ClientY: 300}, input.TouchPoint{ID: 2, ClientX: 400, ClientY: 300}))
	assert.Equal(t, camera.GestureTouchDollyTruck, cc.Mode())

	s.Apply(frame(input.TouchPoint{ID: 1, ClientX: 310, ClientY: 300}, input.TouchPoint{ID: 2, ClientX: 390, ClientY: 300}))
	goal, _ := cc.Goal()
	assert.Less(t, goal.Radius, 5.0)

	s.Apply(frame())
	assert.Equal(t, camera.GestureIdle, cc.Mode())
}

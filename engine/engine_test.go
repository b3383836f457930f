package engine

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/event"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs the update callback in a loop until closed, standing in for a platform window.
type fakeWindow struct {
	*input.Hub
	width, height int
	running       bool
	closed        int
	iterations    int
	onUpdate      func()
	onResize      func(width, height int)
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{
		Hub:     input.NewHub(input.Rect{Width: float64(width), Height: float64(height)}),
		width:   width,
		height:  height,
		running: true,
	}
}

func (f *fakeWindow) SetUpdateCallback(callback func())                  { f.onUpdate = callback }
func (f *fakeWindow) SetResizeCallback(callback func(width, height int)) { f.onResize = callback }
func (f *fakeWindow) SetKeyDownCallback(func(keyCode uint32))            {}
func (f *fakeWindow) SetKeyUpCallback(func(keyCode uint32))              {}
func (f *fakeWindow) IsRunning() bool                                    { return f.running }
func (f *fakeWindow) Width() int                                         { return f.width }
func (f *fakeWindow) Height() int                                        { return f.height }

func (f *fakeWindow) Close() error {
	f.running = false
	f.closed++
	return nil
}

func (f *fakeWindow) ProcessMessages() {
	for f.running && f.iterations < 100000 {
		f.iterations++
		if f.onUpdate != nil {
			f.onUpdate()
		}
	}
}

func (f *fakeWindow) resize(width, height int) {
	f.width, f.height = width, height
	if f.onResize != nil {
		f.onResize(width, height)
	}
}

// steppingClock advances by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func newTestController() camera.CameraController {
	cam := camera.NewCamera(camera.WithPosition(0, 0, 5))
	return camera.NewCameraController(cam, camera.WithLogger(log.New(io.Discard, "", 0)))
}

func TestEngine_RunTicksControllers(t *testing.T) {
	w := newFakeWindow(800, 600)
	cc := newTestController()
	cc.DollyTo(10, true)

	e := NewEngine(WithWindow(w), WithController(0, cc), WithClock(steppingClock(5*time.Millisecond)))
	var deltas []float64
	e.SetTickCallback(func(dt float64) {
		deltas = append(deltas, dt)
		if len(deltas) == 500 {
			e.Quit()
		}
	})

	e.Run()

	require.Len(t, deltas, 500)
	for _, dt := range deltas {
		assert.InDelta(t, 0.020, dt, 1e-9, "5ms steps reach the 60Hz interval every fourth iteration")
	}
	assert.Equal(t, 1, w.closed)
	assert.False(t, w.running)

	current, _ := cc.Current()
	assert.Equal(t, 10.0, current.Radius)
	assert.False(t, cc.Update(1.0/60))
}

func TestEngine_SetTickRate(t *testing.T) {
	w := newFakeWindow(800, 600)
	e := NewEngine(WithWindow(w), WithClock(steppingClock(5*time.Millisecond)))
	e.SetTickRate(25)
	e.SetTickRate(20)

	var deltas []float64
	e.SetTickCallback(func(dt float64) {
		deltas = append(deltas, dt)
		if len(deltas) == 3 {
			e.Quit()
		}
	})
	e.Run()

	require.Len(t, deltas, 3)
	for _, dt := range deltas {
		assert.InDelta(t, 0.050, dt, 1e-9, "the last requested rate wins")
	}
}

func TestEngine_QuitIsIdempotent(t *testing.T) {
	w := newFakeWindow(800, 600)
	e := NewEngine(WithWindow(w), WithClock(steppingClock(time.Millisecond)))

	e.Quit()
	e.Quit()
	e.Run()

	assert.Equal(t, 1, w.closed)
	assert.Equal(t, 1, w.iterations)
}

func TestEngine_ResizeUpdatesAspect(t *testing.T) {
	w := newFakeWindow(800, 600)
	cc := newTestController()
	NewEngine(WithWindow(w), WithController(0, cc))

	w.resize(1600, 800)
	assert.Equal(t, 2.0, cc.Camera().Aspect())

	w.resize(1600, 0)
	assert.Equal(t, 2.0, cc.Camera().Aspect(), "a minimized window leaves the aspect alone")
}

func TestEngine_ControllersUpdateInKeyOrder(t *testing.T) {
	e := NewEngine().(*engine)

	var order []int
	for _, key := range []int{3, 1, 2} {
		cc := newTestController()
		cc.AddEventListener(camera.EventUpdate, func(event.Event) { order = append(order, key) })
		cc.DollyTo(8, true)
		e.AddController(key, cc)
	}

	assert.True(t, e.tick(1.0/60))
	assert.Equal(t, []int{1, 2, 3}, order)

	e.RemoveController(2)
	assert.Nil(t, e.Controller(2))
	assert.NotNil(t, e.Controller(1))
}

func TestEngine_TickReportsSettled(t *testing.T) {
	e := NewEngine(WithController(0, newTestController())).(*engine)

	assert.False(t, e.tick(1.0/60))
}

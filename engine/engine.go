package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// engine implements the Engine interface.
// Ticks run on the window's message loop so controller updates share a thread with input delivery.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	clock  func() time.Time

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float64)
	lastTick       time.Time

	controllers map[int]camera.CameraController
}

// Engine is the main entry point for the engine.
// It owns the window message loop and ticks every registered camera controller at a fixed rate.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables tick statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables tick statistics output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second. Safe to call from any goroutine.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called after the controllers are updated each tick.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float64))

	// AddController registers a controller at the given key. Controllers update in ascending key order.
	//
	// Parameters:
	//   - key: ordering key
	//   - cc: the controller to tick
	AddController(key int, cc camera.CameraController)

	// RemoveController unregisters the controller at the given key.
	//
	// Parameters:
	//   - key: the key of the controller to remove
	RemoveController(key int)

	// Controller retrieves the controller registered at the given key, or nil.
	//
	// Parameters:
	//   - key: the key to look up
	//
	// Returns:
	//   - camera.CameraController: the controller, or nil if not found
	Controller(key int) camera.CameraController

	// Run starts the window message loop (blocks until the window closes or Quit is called).
	Run()

	// Quit asks the message loop to close the window and return from Run.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		clock:            time.Now,
		controllers:      make(map[int]camera.CameraController),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if height <= 0 {
				return
			}
			for _, cc := range e.controllers {
				cc.Camera().SetAspect(float64(width) / float64(height))
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.lastTick = e.clock()
	e.window.SetUpdateCallback(e.step)
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// step is the message loop hook. It closes the window after Quit, applies pending tick rate
// changes and runs a tick once the tick interval has elapsed.
func (e *engine) step() {
	select {
	case <-e.quitChannel:
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
		return
	case newRate := <-e.tickRateChannel:
		e.engineTickRate = newRate
	default:
	}

	now := e.clock()
	elapsed := now.Sub(e.lastTick)
	if elapsed < e.engineTickRate {
		return
	}
	e.lastTick = now
	e.tick(elapsed.Seconds())
}

// tick updates every controller in key order and reports whether any camera moved.
func (e *engine) tick(dt float64) bool {
	keys := make([]int, 0, len(e.controllers))
	for k := range e.controllers {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	moved := false
	for _, k := range keys {
		if e.controllers[k].Update(dt) {
			moved = true
		}
	}

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(moved)
	}
	return moved
}

// EnableProfiler enables tick statistics output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables tick statistics output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// The new rate is picked up by the message loop on its next iteration.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	// Non-blocking send - if channel is full, replace the pending value
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.tickCallback = callback
}

func (e *engine) AddController(key int, cc camera.CameraController) {
	e.controllers[key] = cc
}

func (e *engine) RemoveController(key int) {
	delete(e.controllers, key)
}

func (e *engine) Controller(key int) camera.CameraController {
	return e.controllers[key]
}

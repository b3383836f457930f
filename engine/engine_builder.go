package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables tick statistics output.
//
// Parameters:
//   - enabled: if true, enables profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow sets the window whose message loop drives the engine.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithController registers a controller at the given key during engine construction.
//
// Parameters:
//   - key: ordering key (lower updates first)
//   - cc: the controller to tick
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(key int, cc camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controllers[key] = cc
	}
}

// WithClock replaces the time source used to pace ticks.
//
// Parameters:
//   - clock: function returning the current time
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(clock func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		e.clock = clock
	}
}

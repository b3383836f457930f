package camera

import "math"

// Config holds the tunable limits and speeds of a CameraController.
// Infinite bounds are valid and leave the related value unrestricted on that side.
type Config struct {
	// MinDistance and MaxDistance bound the goal radius (perspective only).
	MinDistance float64
	MaxDistance float64

	// MinZoom and MaxZoom bound the camera zoom (orthographic only).
	MinZoom float64
	MaxZoom float64

	// MinPolarAngle and MaxPolarAngle bound the goal polar angle in radians. 0 looks down from +Y.
	MinPolarAngle float64
	MaxPolarAngle float64

	// MinAzimuthAngle and MaxAzimuthAngle bound the goal azimuth in radians.
	MinAzimuthAngle float64
	MaxAzimuthAngle float64

	// DampingFactor is the easing factor while no gesture is active.
	DampingFactor float64
	// DraggingDampingFactor is the easing factor during a gesture.
	DraggingDampingFactor float64

	DollySpeed float64
	TruckSpeed float64

	// DollyToCursor keeps the world point under the cursor fixed while dollying.
	DollyToCursor bool
	// VerticalDragToForward maps vertical truck drags to Forward instead of vertical truck.
	VerticalDragToForward bool
}

// DefaultConfig returns the configuration a new controller starts with.
//
// Returns:
//   - Config: unrestricted distance, zoom and azimuth; polar angle in [0, π]
func DefaultConfig() Config {
	return Config{
		MinDistance:           0,
		MaxDistance:           math.Inf(1),
		MinZoom:               0,
		MaxZoom:               math.Inf(1),
		MinPolarAngle:         0,
		MaxPolarAngle:         math.Pi,
		MinAzimuthAngle:       math.Inf(-1),
		MaxAzimuthAngle:       math.Inf(1),
		DampingFactor:         0.05,
		DraggingDampingFactor: 0.25,
		DollySpeed:            1.0,
		TruckSpeed:            2.0,
	}
}

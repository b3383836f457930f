package camera

import (
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithTarget sets the initial look-at/pivot point. The initial spherical offset is taken from the
// camera position relative to this point.
//
// Parameters:
//   - x: X coordinate of the target
//   - y: Y coordinate of the target
//   - z: Z coordinate of the target
//
// Returns:
//   - CameraControllerOption: functional option to set the target position
func WithTarget(x, y, z float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.goalTarget = mgl64.Vec3{x, y, z}
	}
}

// WithConfig replaces the whole configuration.
//
// Parameters:
//   - config: the configuration to use
//
// Returns:
//   - CameraControllerOption: functional option to set the configuration
func WithConfig(config Config) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config = config
	}
}

// WithDistanceBounds sets the minimum and maximum goal distance.
//
// Parameters:
//   - min: minimum distance from the target
//   - max: maximum distance from the target
//
// Returns:
//   - CameraControllerOption: functional option to set the distance bounds
func WithDistanceBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.MinDistance = min
		cc.config.MaxDistance = max
	}
}

// WithZoomBounds sets the minimum and maximum orthographic zoom.
//
// Parameters:
//   - min: minimum zoom
//   - max: maximum zoom
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom bounds
func WithZoomBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.MinZoom = min
		cc.config.MaxZoom = max
	}
}

// WithPolarBounds sets the polar angle range in radians.
//
// Parameters:
//   - min: minimum polar angle (0 = looking down from +Y)
//   - max: maximum polar angle (π = looking up from -Y)
//
// Returns:
//   - CameraControllerOption: functional option to set the polar bounds
func WithPolarBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.MinPolarAngle = min
		cc.config.MaxPolarAngle = max
	}
}

// WithAzimuthBounds sets the azimuth range in radians.
//
// Parameters:
//   - min: minimum azimuth
//   - max: maximum azimuth
//
// Returns:
//   - CameraControllerOption: functional option to set the azimuth bounds
func WithAzimuthBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.MinAzimuthAngle = min
		cc.config.MaxAzimuthAngle = max
	}
}

// WithDampingFactor sets the easing factor used while idle.
//
// Parameters:
//   - factor: easing factor, larger settles faster
//
// Returns:
//   - CameraControllerOption: functional option to set the damping factor
func WithDampingFactor(factor float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.DampingFactor = factor
	}
}

// WithDraggingDampingFactor sets the easing factor used during a gesture.
//
// Parameters:
//   - factor: easing factor, larger settles faster
//
// Returns:
//   - CameraControllerOption: functional option to set the dragging damping factor
func WithDraggingDampingFactor(factor float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.DraggingDampingFactor = factor
	}
}

// WithDollySpeed sets the dolly speed multiplier for wheel and pinch input.
//
// Parameters:
//   - speed: dolly speed multiplier
//
// Returns:
//   - CameraControllerOption: functional option to set the dolly speed
func WithDollySpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.DollySpeed = speed
	}
}

// WithTruckSpeed sets the truck speed multiplier for drag input.
//
// Parameters:
//   - speed: truck speed multiplier
//
// Returns:
//   - CameraControllerOption: functional option to set the truck speed
func WithTruckSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.TruckSpeed = speed
	}
}

// WithDollyToCursor keeps the point under the cursor fixed while dollying.
//
// Returns:
//   - CameraControllerOption: functional option to enable cursor-anchored dolly
func WithDollyToCursor(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.DollyToCursor = enabled
	}
}

// WithVerticalDragToForward maps vertical truck drags to forward motion.
//
// Returns:
//   - CameraControllerOption: functional option to enable forward truck
func WithVerticalDragToForward(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.config.VerticalDragToForward = enabled
	}
}

// WithEnabled sets whether gesture handlers react to input.
func WithEnabled(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.enabled = enabled
	}
}

// WithRaycaster replaces the ray builder used by cursor-anchored dolly.
//
// Parameters:
//   - raycaster: the raycaster to use
//
// Returns:
//   - CameraControllerOption: functional option to set the raycaster
func WithRaycaster(raycaster Raycaster) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.raycaster = raycaster
	}
}

// WithLogger replaces the logger used for warnings.
//
// Parameters:
//   - logger: the logger to write to
//
// Returns:
//   - CameraControllerOption: functional option to set the logger
func WithLogger(logger *log.Logger) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.logger = logger
	}
}

// WithSurface attaches the controller to an input surface at construction.
//
// Parameters:
//   - surface: the input source
//
// Returns:
//   - CameraControllerOption: functional option to set the input surface
func WithSurface(surface input.Surface) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.surface = surface
	}
}

// WithWheelNormalizer sets the wheel delta divisors.
//
// Parameters:
//   - normalizer: the host's wheel divisors
//
// Returns:
//   - CameraControllerOption: functional option to set the wheel normalizer
func WithWheelNormalizer(normalizer input.WheelNormalizer) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.wheel = normalizer
	}
}

package camera

import "github.com/go-gl/mathgl/mgl64"

type CameraBuilderOption func(*cameraImpl)

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl64.Vec3{x, y, z}
	}
}

// WithPosition sets the camera's initial world position. The camera initially looks at the origin.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl64.Vec3{x, y, z}
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the clip planes
func WithClipPlanes(near, far float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithOrthographic switches the camera to an orthographic projection with the given frustum extents.
//
// Parameters:
//   - left, right, top, bottom: frustum planes in view units
//
// Returns:
//   - CameraBuilderOption: functional option to select orthographic projection
func WithOrthographic(left, right, top, bottom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.kind = ProjectionOrthographic
		c.left = left
		c.right = right
		c.top = top
		c.bottom = bottom
	}
}

// WithZoom sets the initial orthographic zoom factor.
//
// Parameters:
//   - zoom: the zoom factor (1 = unzoomed)
//
// Returns:
//   - CameraBuilderOption: functional option to set zoom
func WithZoom(zoom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}

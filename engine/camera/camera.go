package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// ProjectionKind tags how a camera projects the scene.
type ProjectionKind int

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

func (k ProjectionKind) String() string {
	switch k {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

type cameraImpl struct {
	mu *sync.Mutex

	up       mgl64.Vec3
	position mgl64.Vec3

	kind   ProjectionKind
	fov    float64
	aspect float64
	near   float64
	far    float64

	left   float64
	right  float64
	top    float64
	bottom float64
	zoom   float64

	matrix           mgl64.Mat4
	viewMatrix       mgl64.Mat4
	projectionMatrix mgl64.Mat4
}

// Camera defines the scene camera a CameraController drives.
// The camera holds a world transform and projection parameters; it does not decide where it looks,
// the controller positions and orients it every tick.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space camera position
	Position() mgl64.Vec3

	// SetPosition moves the camera without changing its orientation.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl64.Vec3)

	// Up returns the camera's world up vector used when orienting toward a target.
	//
	// Returns:
	//   - mgl64.Vec3: the up vector
	Up() mgl64.Vec3

	// LookAt orients the camera so its -Z axis points at target.
	// Has no effect when target coincides with the camera position.
	//
	// Parameters:
	//   - target: world-space point to look at
	LookAt(target mgl64.Vec3)

	// Matrix returns the camera's world transform. Column 0 is the local right axis,
	// column 1 the local up axis, column 3 the position.
	//
	// Returns:
	//   - mgl64.Mat4: the world matrix
	Matrix() mgl64.Mat4

	// ViewMatrix returns the inverse of the world transform.
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4

	// Projection returns the projection kind.
	//
	// Returns:
	//   - ProjectionKind: perspective or orthographic
	Projection() ProjectionKind

	// Fov returns the vertical field of view in radians (perspective).
	Fov() float64

	// Aspect returns the aspect ratio (width / height).
	Aspect() float64

	// SetAspect sets the aspect ratio and recomputes the projection.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float64)

	// OrthoBounds returns the orthographic frustum extents before zoom is applied.
	//
	// Returns:
	//   - left, right, top, bottom: frustum planes in view units
	OrthoBounds() (left, right, top, bottom float64)

	// Zoom returns the orthographic zoom factor.
	Zoom() float64

	// SetZoom sets the zoom factor. Call UpdateProjectionMatrix afterwards.
	//
	// Parameters:
	//   - zoom: the new zoom factor
	SetZoom(zoom float64)

	// UpdateProjectionMatrix recomputes the projection from the current parameters.
	UpdateProjectionMatrix()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new perspective Camera at (0, 0, 1) looking at the origin.
// Use WithOrthographic to create an orthographic camera instead.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		up:       mgl64.Vec3{0, 1, 0},
		position: mgl64.Vec3{0, 0, 1},
		kind:     ProjectionPerspective,
		fov:      45.0 * (math.Pi / 180.0), // radians
		aspect:   1.0,
		near:     0.1,
		far:      2000.0,
		left:     -1,
		right:    1,
		top:      1,
		bottom:   -1,
		zoom:     1,
		matrix:   mgl64.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.lookAt(mgl64.Vec3{})
	c.updateProjection()
	return c
}

func (c *cameraImpl) Position() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
	c.matrix.SetCol(3, p.Vec4(1))
	c.viewMatrix = c.matrix.Inv()
}

func (c *cameraImpl) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) LookAt(target mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookAt(target)
}

func (c *cameraImpl) Matrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matrix
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) Projection() ProjectionKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kind
}

func (c *cameraImpl) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) OrthoBounds() (left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *cameraImpl) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *cameraImpl) UpdateProjectionMatrix() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateProjection()
}

// lookAt rebuilds the world and view matrices so the camera faces target.
// Caller must hold the mutex.
func (c *cameraImpl) lookAt(target mgl64.Vec3) {
	if target.ApproxEqual(c.position) {
		return
	}
	c.viewMatrix = mgl64.LookAtV(c.position, target, c.up)
	c.matrix = c.viewMatrix.Inv()
}

// updateProjection recalculates the projection matrix for the current projection kind.
// Orthographic extents are divided by zoom around their center.
// Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	switch c.kind {
	case ProjectionOrthographic:
		dx := (c.right - c.left) / (2 * c.zoom)
		dy := (c.top - c.bottom) / (2 * c.zoom)
		cx := (c.right + c.left) / 2
		cy := (c.top + c.bottom) / 2
		c.projectionMatrix = mgl64.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.near, c.far)
	default:
		c.projectionMatrix = mgl64.Perspective(c.fov, c.aspect, c.near, c.far)
	}
}

package camera

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/event"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl64"
)

// Notification types dispatched by a CameraController.
const (
	// EventControlStart fires when a drag gesture begins or changes mode.
	EventControlStart event.Type = "controlstart"
	// EventControl fires for every processed drag move.
	EventControl event.Type = "control"
	// EventControlEnd fires when the controller returns to GestureIdle.
	EventControlEnd event.Type = "controlend"
	// EventUpdate fires after a tick that changed the camera pose.
	EventUpdate event.Type = "update"
)

// ErrNotPerspective is returned by operations that only make sense for a perspective camera.
var ErrNotPerspective = errors.New("operation requires a perspective camera")

// CameraController defines the union interface for the orbit camera controller.
// The controller owns a goal pose (where the camera should end up) and a current pose (where it is),
// both stored as a target point plus a spherical offset. Motion operations edit the goal;
// Update eases the current pose toward it and writes the result into the Camera.
// Embeds orbitCameraController and planarCameraController so rotation, dolly and translation
// are all available from a single controller instance.
//
// A controller is not safe for concurrent use. Drive input, motion calls and Update from one goroutine.
type CameraController interface {
	orbitCameraController
	planarCameraController
	event.Dispatcher

	// Camera returns the camera this controller drives.
	//
	// Returns:
	//   - Camera: the controlled camera
	Camera() Camera

	// Enabled reports whether input handlers react to gestures.
	Enabled() bool

	// SetEnabled enables or disables gesture handling. Programmatic motion and Update keep working.
	//
	// Parameters:
	//   - enabled: true to react to input
	SetEnabled(enabled bool)

	// Mode returns the active gesture mode.
	//
	// Returns:
	//   - GestureMode: GestureIdle when no drag is in progress
	Mode() GestureMode

	// Config returns a copy of the tuning and limit configuration.
	//
	// Returns:
	//   - Config: the current configuration
	Config() Config

	// SetConfig replaces the tuning and limit configuration. Limits apply to subsequent motion.
	//
	// Parameters:
	//   - config: the new configuration
	SetConfig(config Config)

	// Target returns the goal look-at point.
	//
	// Returns:
	//   - mgl64.Vec3: world-space goal target
	Target() mgl64.Vec3

	// Position returns the goal camera position (goal target plus goal spherical offset).
	//
	// Returns:
	//   - mgl64.Vec3: world-space goal position
	Position() mgl64.Vec3

	// Goal returns the goal spherical offset and target.
	Goal() (common.Spherical, mgl64.Vec3)

	// Current returns the current spherical offset and target, as last applied to the camera.
	Current() (common.Spherical, mgl64.Vec3)

	// SetLookAt sets the goal from a camera position and a target point.
	//
	// Parameters:
	//   - eye: world-space camera position
	//   - target: world-space look-at point
	//   - transition: false snaps the current pose to the goal
	SetLookAt(eye, target mgl64.Vec3, transition bool)

	// LerpLookAt sets the goal to an interpolation between two look-at poses.
	// Spherical components interpolate independently, azimuth along the shorter arc.
	//
	// Parameters:
	//   - eyeA, targetA: pose at t = 0
	//   - eyeB, targetB: pose at t = 1
	//   - t: interpolation factor
	//   - transition: false snaps the current pose to the goal
	LerpLookAt(eyeA, targetA, eyeB, targetB mgl64.Vec3, t float64, transition bool)

	// SetPosition moves the goal camera position, keeping the goal target.
	//
	// Parameters:
	//   - position: world-space camera position
	//   - transition: false snaps the current pose to the goal
	SetPosition(position mgl64.Vec3, transition bool)

	// SetTarget moves the goal target, keeping the goal camera position.
	//
	// Parameters:
	//   - target: world-space look-at point
	//   - transition: false snaps the current pose to the goal
	SetTarget(target mgl64.Vec3, transition bool)

	// FitTo frames an axis-aligned box: the goal distance fits the padded box into the view,
	// the goal target moves to the padded box center and the view turns to face -Z.
	// Logs a warning and does nothing on an orthographic camera.
	//
	// Parameters:
	//   - box: the box to frame
	//   - transition: false snaps the current pose to the goal
	//   - padding: extra space around the box
	FitTo(box common.Box3, transition bool, padding FitPadding)

	// DistanceToFit returns the distance at which a box of the given size fills the view.
	//
	// Parameters:
	//   - width, height, depth: box extent
	//
	// Returns:
	//   - float64: the fitting distance
	//   - error: ErrNotPerspective for an orthographic camera
	DistanceToFit(width, height, depth float64) (float64, error)

	// Reset moves the goal back to the saved rest pose and restores the saved zoom.
	//
	// Parameters:
	//   - transition: false snaps the current pose to the goal
	Reset(transition bool)

	// SaveState records the current target, camera position and zoom as the rest pose.
	SaveState()

	// Update advances the current pose toward the goal by one tick and writes it into the camera.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the last tick
	//
	// Returns:
	//   - bool: true if the camera pose changed during this tick
	Update(dt float64) bool

	// Serialize encodes the configuration, goal pose and rest pose as JSON.
	// Infinite limits are written as ±math.MaxFloat64.
	//
	// Returns:
	//   - []byte: the encoded snapshot
	//   - error: encoding failure
	Serialize() ([]byte, error)

	// Deserialize applies a snapshot produced by Serialize. The snapshot is validated as a whole
	// before anything is applied; a malformed snapshot leaves the controller unchanged.
	//
	// Parameters:
	//   - data: the encoded snapshot
	//   - transition: false snaps the current pose to the decoded goal
	//
	// Returns:
	//   - error: a *DeserializationError for malformed input
	Deserialize(data []byte, transition bool) error

	// Attach subscribes the gesture handlers to an input surface, detaching from any previous one.
	//
	// Parameters:
	//   - surface: the input source
	Attach(surface input.Surface)

	// Dispose detaches every input handler and returns the gesture state to idle.
	// A gesture in progress is ended with a controlend carrying a nil OriginalEvent.
	// Notification listeners are kept.
	Dispose()
}

// orbitCameraController defines the spherical motion methods.
// Rotation and dolly change the offset from the target, not the target itself.
type orbitCameraController interface {
	// Rotate adds to the goal azimuth and polar angle.
	//
	// Parameters:
	//   - azimuth: azimuth delta in radians
	//   - polar: polar delta in radians
	//   - transition: false snaps the current pose to the goal
	Rotate(azimuth, polar float64, transition bool)

	// RotateTo sets the goal azimuth and polar angle, clamped to the configured bounds.
	// The current azimuth is shifted by whole turns so the transition takes the shorter path.
	//
	// Parameters:
	//   - azimuth: goal azimuth in radians
	//   - polar: goal polar angle in radians
	//   - transition: false snaps the current pose to the goal
	RotateTo(azimuth, polar float64, transition bool)

	// Dolly moves the goal distance by delta. Positive moves away from the target.
	// Logs a warning and does nothing on an orthographic camera.
	//
	// Parameters:
	//   - delta: distance delta
	//   - transition: false snaps the current pose to the goal
	Dolly(delta float64, transition bool)

	// DollyTo sets the goal distance, clamped to the configured bounds.
	// Logs a warning and does nothing on an orthographic camera.
	//
	// Parameters:
	//   - distance: goal distance from the target
	//   - transition: false snaps the current pose to the goal
	DollyTo(distance float64, transition bool)
}

// planarCameraController defines the translation methods.
// Translation moves the target and the camera together, preserving the spherical offset.
type planarCameraController interface {
	// Truck translates the goal target along the camera's right axis by x and against its up axis by y.
	//
	// Parameters:
	//   - x: distance along the camera right axis
	//   - y: distance along the camera down axis
	//   - transition: false snaps the current pose to the goal
	Truck(x, y float64, transition bool)

	// Forward translates the goal target along the horizontal forward direction.
	//
	// Parameters:
	//   - distance: distance to move
	//   - transition: false snaps the current pose to the goal
	Forward(distance float64, transition bool)

	// MoveTo sets the goal target.
	//
	// Parameters:
	//   - x, y, z: world-space target
	//   - transition: false snaps the current pose to the goal
	MoveTo(x, y, z float64, transition bool)
}

// FitPadding is extra space added around a box before framing it.
type FitPadding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

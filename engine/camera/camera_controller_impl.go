package camera

import (
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/event"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// settleEpsilon is the per-component gap below which the current pose snaps to the goal.
	settleEpsilon = 0.001
	// referenceFrameTime is the tick length the damping factors are tuned for.
	referenceFrameTime = 1.0 / 60.0
)

// cameraControllerImpl is the single implementation of CameraController.
// Goal values are written by motion operations and gestures; current values are only
// written by Update and by operations called with transition=false.
type cameraControllerImpl struct {
	event.Dispatcher

	camera    Camera
	raycaster Raycaster
	logger    *log.Logger
	wheel     input.WheelNormalizer

	enabled bool
	config  Config
	mode    GestureMode

	// Orbit state applied to the camera
	current       common.Spherical
	currentTarget mgl64.Vec3

	// Goal the current state eases toward
	goal       common.Spherical
	goalTarget mgl64.Vec3

	// Rest pose
	target0   mgl64.Vec3
	position0 mgl64.Vec3
	zoom0     float64

	needsUpdate bool

	surface input.Surface
	detach  []func()
	drag    dragState
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller that drives cam. The initial goal is taken from the camera's
// current position relative to the target (the origin unless WithTarget is given), the rest pose is
// captured and the camera is immediately oriented toward the target.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		camera:    cam,
		raycaster: NewRaycaster(),
		logger:    log.Default(),
		enabled:   true,
		config:    DefaultConfig(),
		mode:      GestureIdle,
	}
	cc.Dispatcher = event.NewDispatcher(cc)

	for _, option := range options {
		option(cc)
	}

	cc.goal = common.SphericalFromVec3(cam.Position().Sub(cc.goalTarget)).MakeSafe()
	cc.current = cc.goal
	cc.currentTarget = cc.goalTarget

	cc.target0 = cc.goalTarget
	cc.position0 = cam.Position()
	cc.zoom0 = cam.Zoom()

	cc.needsUpdate = true
	cc.Update(0)

	if cc.surface != nil {
		cc.Attach(cc.surface)
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) Enabled() bool {
	return cc.enabled
}

func (cc *cameraControllerImpl) SetEnabled(enabled bool) {
	cc.enabled = enabled
}

func (cc *cameraControllerImpl) Mode() GestureMode {
	return cc.mode
}

func (cc *cameraControllerImpl) Config() Config {
	return cc.config
}

func (cc *cameraControllerImpl) SetConfig(config Config) {
	cc.config = config
	cc.needsUpdate = true
}

func (cc *cameraControllerImpl) Target() mgl64.Vec3 {
	return cc.goalTarget
}

func (cc *cameraControllerImpl) Position() mgl64.Vec3 {
	return cc.goalTarget.Add(cc.goal.Vec3())
}

func (cc *cameraControllerImpl) Goal() (common.Spherical, mgl64.Vec3) {
	return cc.goal, cc.goalTarget
}

func (cc *cameraControllerImpl) Current() (common.Spherical, mgl64.Vec3) {
	return cc.current, cc.currentTarget
}

func (cc *cameraControllerImpl) Rotate(azimuth, polar float64, transition bool) {
	cc.RotateTo(cc.goal.Theta+azimuth, cc.goal.Phi+polar, transition)
}

func (cc *cameraControllerImpl) RotateTo(azimuth, polar float64, transition bool) {
	cc.goal.Theta = common.Clamp(azimuth, cc.config.MinAzimuthAngle, cc.config.MaxAzimuthAngle)
	cc.goal.Phi = common.Clamp(polar, cc.config.MinPolarAngle, cc.config.MaxPolarAngle)
	cc.goal = cc.goal.MakeSafe()

	if transition {
		cc.current.Theta += cc.azimuthTurn()
	} else {
		cc.current.Theta = cc.goal.Theta
		cc.current.Phi = cc.goal.Phi
	}
	cc.needsUpdate = true
}

func (cc *cameraControllerImpl) Dolly(delta float64, transition bool) {
	if cc.camera.Projection() != ProjectionPerspective {
		cc.warnf("Dolly is not supported for %s cameras", cc.camera.Projection())
		return
	}
	cc.DollyTo(cc.goal.Radius+delta, transition)
}

func (cc *cameraControllerImpl) DollyTo(distance float64, transition bool) {
	if cc.camera.Projection() != ProjectionPerspective {
		cc.warnf("DollyTo is not supported for %s cameras", cc.camera.Projection())
		return
	}
	cc.goal.Radius = common.Clamp(distance, cc.config.MinDistance, cc.config.MaxDistance)
	if !transition {
		cc.current.Radius = cc.goal.Radius
	}
	cc.needsUpdate = true
}

func (cc *cameraControllerImpl) Truck(x, y float64, transition bool) {
	m := cc.camera.Matrix()
	right := m.Col(0).Vec3()
	up := m.Col(1).Vec3()
	cc.translateGoalTarget(right.Mul(x).Add(up.Mul(-y)), transition)
}

func (cc *cameraControllerImpl) Forward(distance float64, transition bool) {
	right := cc.camera.Matrix().Col(0).Vec3()
	cc.translateGoalTarget(cc.camera.Up().Cross(right).Mul(distance), transition)
}

func (cc *cameraControllerImpl) MoveTo(x, y, z float64, transition bool) {
	cc.goalTarget = mgl64.Vec3{x, y, z}
	if !transition {
		cc.currentTarget = cc.goalTarget
	}
	cc.needsUpdate = true
}

func (cc *cameraControllerImpl) SetLookAt(eye, target mgl64.Vec3, transition bool) {
	cc.goalTarget = target
	cc.goal = common.SphericalFromVec3(eye.Sub(target))
	cc.sanitizeSphericals()
	if !transition {
		cc.currentTarget = cc.goalTarget
		cc.current = cc.goal
	}
	cc.needsUpdate = true
}

func (cc *cameraControllerImpl) SetPosition(position mgl64.Vec3, transition bool) {
	cc.SetLookAt(position, cc.goalTarget, transition)
}

func (cc *cameraControllerImpl) SetTarget(target mgl64.Vec3, transition bool) {
	cc.SetLookAt(cc.Position(), target, transition)
}

func (cc *cameraControllerImpl) Reset(transition bool) {
	cc.SetLookAt(cc.position0, cc.target0, transition)
	if cc.camera.Projection() == ProjectionOrthographic && cc.camera.Zoom() != cc.zoom0 {
		cc.camera.SetZoom(cc.zoom0)
		cc.camera.UpdateProjectionMatrix()
	}
}

func (cc *cameraControllerImpl) SaveState() {
	cc.target0 = cc.currentTarget
	cc.position0 = cc.camera.Position()
	cc.zoom0 = cc.camera.Zoom()
}

func (cc *cameraControllerImpl) Update(dt float64) bool {
	factor := cc.config.DampingFactor
	if cc.mode != GestureIdle {
		factor = cc.config.DraggingDampingFactor
	}
	lerp := 1 - math.Exp(-factor*dt/referenceFrameTime)

	deltaRadius := cc.goal.Radius - cc.current.Radius
	deltaPhi := cc.goal.Phi - cc.current.Phi
	deltaTheta := cc.goal.Theta - cc.current.Theta
	deltaTarget := cc.goalTarget.Sub(cc.currentTarget)

	changed := cc.needsUpdate
	if common.AllBelow(settleEpsilon, deltaRadius, deltaPhi, deltaTheta, deltaTarget.X(), deltaTarget.Y(), deltaTarget.Z()) {
		if cc.current != cc.goal || cc.currentTarget != cc.goalTarget {
			changed = true
		}
		cc.current = cc.goal
		cc.currentTarget = cc.goalTarget
	} else {
		cc.current = common.Spherical{
			Radius: cc.current.Radius + deltaRadius*lerp,
			Phi:    cc.current.Phi + deltaPhi*lerp,
			Theta:  cc.current.Theta + deltaTheta*lerp,
		}
		cc.currentTarget = cc.currentTarget.Add(deltaTarget.Mul(lerp))
		changed = true
	}
	cc.current = cc.current.MakeSafe()

	cc.camera.SetPosition(cc.currentTarget.Add(cc.current.Vec3()))
	cc.camera.LookAt(cc.currentTarget)

	cc.needsUpdate = false
	if changed {
		cc.DispatchEvent(event.Event{Type: EventUpdate})
	}
	return changed
}

// translateGoalTarget moves the goal target by offset, leaving the spherical offset alone.
func (cc *cameraControllerImpl) translateGoalTarget(offset mgl64.Vec3, transition bool) {
	cc.goalTarget = cc.goalTarget.Add(offset)
	if !transition {
		cc.currentTarget = cc.goalTarget
	}
	cc.needsUpdate = true
}

// sanitizeSphericals wraps the goal azimuth into (-π, π] when the wrapped angle is within the
// azimuth bounds, clamps the goal radius into the distance bounds and shifts the current azimuth
// by whole turns so the next transition takes the shorter path.
func (cc *cameraControllerImpl) sanitizeSphericals() {
	if wrapped := common.WrapAngle(cc.goal.Theta); cc.azimuthInBounds(wrapped) {
		cc.goal.Theta = wrapped
	}
	cc.goal.Radius = common.Clamp(cc.goal.Radius, cc.config.MinDistance, cc.config.MaxDistance)
	cc.goal = cc.goal.MakeSafe()
	cc.current.Theta += cc.azimuthTurn()
}

// azimuthTurn returns the whole-turn shift that puts the current azimuth on the short path to the
// goal, or 0 when the shifted start would fall outside the azimuth bounds. The goal is always in
// bounds, so a start in bounds keeps the whole path in bounds.
func (cc *cameraControllerImpl) azimuthTurn() float64 {
	turn := common.NearestTurn(cc.goal.Theta - cc.current.Theta)
	if turn == 0 || !cc.azimuthInBounds(cc.current.Theta+turn) {
		return 0
	}
	return turn
}

func (cc *cameraControllerImpl) azimuthInBounds(theta float64) bool {
	return theta >= cc.config.MinAzimuthAngle && theta <= cc.config.MaxAzimuthAngle
}

func (cc *cameraControllerImpl) warnf(format string, args ...any) {
	cc.logger.Printf("[CameraController] "+format, args...)
}

package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl64"
)

func (cc *cameraControllerImpl) DistanceToFit(width, height, depth float64) (float64, error) {
	if cc.camera.Projection() != ProjectionPerspective {
		return 0, ErrNotPerspective
	}
	boundingAspect := width / height
	heightToFit := height
	if !(boundingAspect < cc.camera.Aspect()) {
		heightToFit = width / cc.camera.Aspect()
	}
	return heightToFit*0.5/math.Tan(cc.camera.Fov()*0.5) + depth*0.5, nil
}

func (cc *cameraControllerImpl) FitTo(box common.Box3, transition bool, padding FitPadding) {
	if cc.camera.Projection() != ProjectionPerspective {
		cc.warnf("FitTo is not supported for %s cameras", cc.camera.Projection())
		return
	}

	size := box.Size()
	width := size.X() + padding.Left + padding.Right
	height := size.Y() + padding.Top + padding.Bottom
	distance, err := cc.DistanceToFit(width, height, size.Z())
	if err != nil {
		cc.warnf("FitTo: %v", err)
		return
	}
	cc.DollyTo(distance, transition)

	center := box.Center()
	cc.MoveTo(
		center.X()-(padding.Left*0.5-padding.Right*0.5),
		center.Y()+(padding.Top*0.5-padding.Bottom*0.5),
		center.Z(),
		transition,
	)

	cc.sanitizeSphericals()
	cc.RotateTo(0, math.Pi/2, transition)
}

func (cc *cameraControllerImpl) LerpLookAt(eyeA, targetA, eyeB, targetB mgl64.Vec3, t float64, transition bool) {
	a := common.SphericalFromVec3(eyeA.Sub(targetA))
	b := common.SphericalFromVec3(eyeB.Sub(targetB))

	cc.goalTarget = common.LerpVec3(targetA, targetB, t)
	cc.goal = common.Spherical{
		Radius: a.Radius + (b.Radius-a.Radius)*t,
		Phi:    a.Phi + (b.Phi-a.Phi)*t,
		Theta:  a.Theta + common.ShortestAngleDelta(a.Theta, b.Theta)*t,
	}
	cc.sanitizeSphericals()
	if !transition {
		cc.currentTarget = cc.goalTarget
		cc.current = cc.goal
	}
	cc.needsUpdate = true
}

// anchorToCursor slides the goal target toward the world point under ndc after a dolly so that
// point stays under the cursor. prevRadius is the goal radius before the dolly.
func (cc *cameraControllerImpl) anchorToCursor(prevRadius float64, ndc mgl64.Vec2) {
	actualDistance := cc.goal.Radius - prevRadius
	if cc.goal.Radius == 0 || actualDistance == 0 {
		return
	}

	ray := cc.raycaster.RayFromCamera(ndc, cc.camera)
	cos := -math.Cos(common.AngleTo(ray.Direction, cc.goal.Vec3()))
	if cos <= 0 {
		return
	}
	point := ray.At(prevRadius / cos)

	cc.goalTarget = common.LerpVec3(cc.goalTarget, point, -actualDistance/cc.goal.Radius)
	cc.currentTarget = cc.goalTarget
	cc.needsUpdate = true
}

package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl64"
)

// Raycaster builds picking rays from normalized device coordinates.
type Raycaster interface {
	// RayFromCamera returns the ray through the given NDC point ([-1, 1] on both axes, +Y up).
	//
	// Parameters:
	//   - ndc: normalized device coordinate
	//   - cam: the camera to cast from
	//
	// Returns:
	//   - common.Ray: the world-space ray with a normalized direction
	RayFromCamera(ndc mgl64.Vec2, cam Camera) common.Ray
}

type unprojectRaycaster struct{}

var _ Raycaster = unprojectRaycaster{}

// NewRaycaster returns a Raycaster that unprojects through the camera's view and projection matrices.
func NewRaycaster() Raycaster {
	return unprojectRaycaster{}
}

func (unprojectRaycaster) RayFromCamera(ndc mgl64.Vec2, cam Camera) common.Ray {
	inverseViewProjection := cam.ProjectionMatrix().Mul4(cam.ViewMatrix()).Inv()

	if cam.Projection() == ProjectionOrthographic {
		origin := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X(), ndc.Y(), -1}, inverseViewProjection)
		direction := mgl64.TransformNormal(mgl64.Vec3{0, 0, -1}, cam.Matrix()).Normalize()
		return common.Ray{Origin: origin, Direction: direction}
	}

	origin := cam.Position()
	through := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X(), ndc.Y(), 0.5}, inverseViewProjection)
	return common.Ray{Origin: origin, Direction: through.Sub(origin).Normalize()}
}

// ProjectToSurface maps a world point to surface pixel coordinates (+Y down), the inverse of
// building a ray from a surface point.
//
// Parameters:
//   - cam: the camera to project through
//   - point: world-space point
//   - rect: the surface rect
//
// Returns:
//   - x, y: surface coordinates
//   - ok: false when the point lies behind the camera or outside the clip depth range
func ProjectToSurface(cam Camera, point mgl64.Vec3, rect input.Rect) (x, y float64, ok bool) {
	clip := cam.ProjectionMatrix().Mul4(cam.ViewMatrix()).Mul4x1(point.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = rect.Left + (ndc.X()+1)/2*rect.Width
	y = rect.Top + (1-ndc.Y())/2*rect.Height
	return x, y, ndc.Z() >= -1 && ndc.Z() <= 1
}

package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d", i)
	}
}

func TestNewCamera_LooksAtOrigin(t *testing.T) {
	cam := NewCamera(WithPosition(0, 0, 5))

	assert.Equal(t, ProjectionPerspective, cam.Projection())
	assertVec3InDelta(t, mgl64.Vec3{0, 0, 5}, cam.Position(), 1e-12)

	m := cam.Matrix()
	assertVec3InDelta(t, mgl64.Vec3{1, 0, 0}, m.Col(0).Vec3(), 1e-12)
	assertVec3InDelta(t, mgl64.Vec3{0, 1, 0}, m.Col(1).Vec3(), 1e-12)
	assertVec3InDelta(t, mgl64.Vec3{0, 0, 5}, m.Col(3).Vec3(), 1e-12)

	// view is the inverse of the world matrix
	identity := cam.ViewMatrix().Mul4(m)
	assert.True(t, identity.ApproxEqualThreshold(mgl64.Ident4(), 1e-9))
}

func TestCamera_SetPositionKeepsOrientation(t *testing.T) {
	cam := NewCamera(WithPosition(0, 0, 5))
	before := cam.Matrix()

	cam.SetPosition(mgl64.Vec3{3, 2, 1})
	after := cam.Matrix()

	assert.Equal(t, before.Col(0), after.Col(0))
	assert.Equal(t, before.Col(2), after.Col(2))
	assertVec3InDelta(t, mgl64.Vec3{3, 2, 1}, after.Col(3).Vec3(), 1e-12)
}

func TestCamera_LookAtSelfIsIgnored(t *testing.T) {
	cam := NewCamera(WithPosition(0, 0, 5))
	before := cam.Matrix()

	cam.LookAt(mgl64.Vec3{0, 0, 5})

	assert.Equal(t, before, cam.Matrix())
}

func TestCamera_OrthographicZoom(t *testing.T) {
	cam := NewCamera(WithOrthographic(-2, 2, 1, -1), WithZoom(2))
	assert.Equal(t, ProjectionOrthographic, cam.Projection())

	// zoom 2 halves the visible extent: 2/(right-left) = 2/2
	assert.InDelta(t, 1.0, cam.ProjectionMatrix().At(0, 0), 1e-12)

	cam.SetZoom(1)
	assert.InDelta(t, 1.0, cam.ProjectionMatrix().At(0, 0), 1e-12, "projection waits for UpdateProjectionMatrix")
	cam.UpdateProjectionMatrix()
	assert.InDelta(t, 0.5, cam.ProjectionMatrix().At(0, 0), 1e-12)

	left, right, top, bottom := cam.OrthoBounds()
	assert.Equal(t, []float64{-2, 2, 1, -1}, []float64{left, right, top, bottom})
}

func TestCamera_SetAspect(t *testing.T) {
	cam := NewCamera(WithFov(mgl64.DegToRad(90)), WithAspect(1))
	assert.InDelta(t, 1.0, cam.ProjectionMatrix().At(0, 0), 1e-12)

	cam.SetAspect(2)
	assert.Equal(t, 2.0, cam.Aspect())
	assert.InDelta(t, 0.5, cam.ProjectionMatrix().At(0, 0), 1e-12)
}

func TestRaycaster(t *testing.T) {
	raycaster := NewRaycaster()

	t.Run("perspective center", func(t *testing.T) {
		cam := NewCamera(WithPosition(0, 0, 5))
		ray := raycaster.RayFromCamera(mgl64.Vec2{0, 0}, cam)
		assertVec3InDelta(t, mgl64.Vec3{0, 0, 5}, ray.Origin, 1e-9)
		assertVec3InDelta(t, mgl64.Vec3{0, 0, -1}, ray.Direction, 1e-9)
	})

	t.Run("perspective edge", func(t *testing.T) {
		cam := NewCamera(WithPosition(0, 0, 5), WithFov(mgl64.DegToRad(90)), WithAspect(1))
		ray := raycaster.RayFromCamera(mgl64.Vec2{1, 0}, cam)
		// the right edge of a 90° frustum is 45° off axis
		assertVec3InDelta(t, mgl64.Vec3{1, 0, -1}.Normalize(), ray.Direction, 1e-9)
	})

	t.Run("orthographic", func(t *testing.T) {
		cam := NewCamera(WithPosition(0, 0, 5), WithOrthographic(-2, 2, 1, -1), WithClipPlanes(0.1, 100))
		ray := raycaster.RayFromCamera(mgl64.Vec2{1, 0}, cam)
		assertVec3InDelta(t, mgl64.Vec3{2, 0, 4.9}, ray.Origin, 1e-9)
		assertVec3InDelta(t, mgl64.Vec3{0, 0, -1}, ray.Direction, 1e-9)
	})
}

func TestProjectToSurface(t *testing.T) {
	rect := input.Rect{Left: 10, Top: 20, Width: 800, Height: 600}

	t.Run("target lands in the middle", func(t *testing.T) {
		cam := NewCamera(WithPosition(0, 0, 5))
		x, y, ok := ProjectToSurface(cam, mgl64.Vec3{}, rect)
		assert.True(t, ok)
		assert.InDelta(t, 410, x, 1e-9)
		assert.InDelta(t, 320, y, 1e-9)
	})

	t.Run("behind the camera", func(t *testing.T) {
		cam := NewCamera(WithPosition(0, 0, 5))
		_, _, ok := ProjectToSurface(cam, mgl64.Vec3{0, 0, 10}, rect)
		assert.False(t, ok)
	})

	t.Run("inverts the raycaster", func(t *testing.T) {
		for _, cam := range []Camera{
			NewCamera(WithPosition(1, 2, 5), WithAspect(800.0/600)),
			NewCamera(WithPosition(1, 2, 5), WithOrthographic(-4, 4, 3, -3), WithClipPlanes(0.1, 100)),
		} {
			ray := NewRaycaster().RayFromCamera(mgl64.Vec2{0.5, -0.25}, cam)
			x, y, ok := ProjectToSurface(cam, ray.At(3), rect)
			assert.True(t, ok, cam.Projection().String())
			assert.InDelta(t, 610, x, 1e-6, cam.Projection().String())
			assert.InDelta(t, 395, y, 1e-6, cam.Projection().String())
		}
	})
}

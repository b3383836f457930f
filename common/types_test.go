package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSphericalRoundTrip(t *testing.T) {
	v := mgl64.Vec3{3, 4, 5}
	s := SphericalFromVec3(v)
	assert.InDelta(t, v.Len(), s.Radius, 1e-12)
	assert.True(t, s.Vec3().ApproxEqualThreshold(v, 1e-9))
}

func TestSphericalAxes(t *testing.T) {
	s := SphericalFromVec3(mgl64.Vec3{0, 0, 10})
	assert.InDelta(t, 10, s.Radius, 1e-12)
	assert.InDelta(t, math.Pi/2, s.Phi, 1e-12)
	assert.InDelta(t, 0, s.Theta, 1e-12)

	s = SphericalFromVec3(mgl64.Vec3{1, 0, 0})
	assert.InDelta(t, math.Pi/2, s.Theta, 1e-12)

	assert.Equal(t, Spherical{}, SphericalFromVec3(mgl64.Vec3{}))
}

func TestMakeSafeKeepsAwayFromPoles(t *testing.T) {
	for _, phi := range []float64{-1, 0, PoleEpsilon / 2, 1, math.Pi, 4} {
		got := Spherical{Radius: 1, Phi: phi}.MakeSafe().Phi
		assert.Greater(t, got, 0.0)
		assert.Less(t, got, math.Pi)
	}
	assert.Equal(t, 1.0, Spherical{Phi: 1}.MakeSafe().Phi)
}

func TestBox3(t *testing.T) {
	b := NewBox3FromCenter(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 2, 1})
	assert.Equal(t, mgl64.Vec3{4, 2, 1}, b.Size())
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, b.Center())
}

func TestBox3_Corners(t *testing.T) {
	b := Box3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 2, 3}}
	corners := b.Corners()
	assert.Equal(t, b.Min, corners[0])
	assert.Equal(t, b.Max, corners[7])
	assert.Equal(t, mgl64.Vec3{1, 0, 3}, corners[5])

	for _, edge := range BoxEdges {
		d := corners[edge[0]].Sub(corners[edge[1]])
		changed := 0
		for _, c := range d {
			if c != 0 {
				changed++
			}
		}
		assert.Equal(t, 1, changed, "edge %v must run along a single axis", edge)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 0, 5}, Direction: mgl64.Vec3{0, 0, -1}}
	assert.Equal(t, mgl64.Vec3{0, 0, 2}, r.At(3))
}

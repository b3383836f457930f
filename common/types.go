// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Spherical is a point relative to a center expressed as radius, polar angle and azimuth.
// Phi is measured from the +Y axis, Theta rotates around +Y starting at +Z.
type Spherical struct {
	// Radius is the distance from the center. Never negative.
	Radius float64
	// Phi is the polar angle in radians, 0 at +Y and π at -Y.
	Phi float64
	// Theta is the azimuth in radians. Unbounded; callers wrap it when continuity matters.
	Theta float64
}

// SphericalFromVec3 converts a cartesian offset into spherical coordinates.
// The zero vector maps to the zero Spherical.
//
// Parameters:
//   - v: the offset from the center
//
// Returns:
//   - Spherical: the equivalent spherical coordinate
func SphericalFromVec3(v mgl64.Vec3) Spherical {
	s := Spherical{Radius: v.Len()}
	if s.Radius == 0 {
		return s
	}
	s.Theta = math.Atan2(v.X(), v.Z())
	s.Phi = math.Acos(Clamp(v.Y()/s.Radius, -1, 1))
	return s
}

// Vec3 converts the spherical coordinate back into a cartesian offset.
//
// Returns:
//   - mgl64.Vec3: the offset from the center
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// MakeSafe returns a copy with Phi kept strictly inside (0, π), PoleEpsilon away from either pole.
//
// Returns:
//   - Spherical: the restricted coordinate
func (s Spherical) MakeSafe() Spherical {
	s.Phi = Clamp(s.Phi, PoleEpsilon, math.Pi-PoleEpsilon)
	return s
}

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBox3FromCenter builds a box of the given size centered on center.
//
// Parameters:
//   - center: the box center
//   - size: extent along each axis
//
// Returns:
//   - Box3: the box
func NewBox3FromCenter(center, size mgl64.Vec3) Box3 {
	half := size.Mul(0.5)
	return Box3{Min: center.Sub(half), Max: center.Add(half)}
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Ray is a half-line starting at Origin. Direction is expected to be normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parametric distance t along the ray.
//
// Parameters:
//   - t: distance from the origin
//
// Returns:
//   - mgl64.Vec3: Origin + Direction*t
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// BoxEdges lists the corner index pairs joined by the twelve edges of a box, using the order of Box3.Corners.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Corners returns the eight corners of the box. Bit 0 of the index selects Max.X,
// bit 1 selects Max.Y and bit 2 selects Max.Z.
func (b Box3) Corners() [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3
	for i := range corners {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		corners[i] = c
	}
	return corners
}

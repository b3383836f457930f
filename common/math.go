package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PoleEpsilon is the minimum distance a polar angle keeps from either pole after MakeSafe.
const PoleEpsilon = 0.000001

// Clamp restricts value to the closed range [min, max].
// Infinite bounds are valid and leave the value unrestricted on that side.
//
// Parameters:
//   - value: the value to clamp
//   - min: lower bound
//   - max: upper bound
//
// Returns:
//   - float64: the clamped value
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// WrapAngle reduces an angle in radians into the half-open range (-π, π].
//
// Parameters:
//   - angle: the angle in radians
//
// Returns:
//   - float64: the equivalent angle in (-π, π]
func WrapAngle(angle float64) float64 {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return angle
	}
	return angle - 2*math.Pi*math.Ceil((angle-math.Pi)/(2*math.Pi))
}

// ShortestAngleDelta returns the signed angle that rotates from `from` to `to` along the shorter arc.
//
// Parameters:
//   - from: start angle in radians
//   - to: end angle in radians
//
// Returns:
//   - float64: signed delta in (-π, π]
func ShortestAngleDelta(from, to float64) float64 {
	return WrapAngle(to - from)
}

// NearestTurn returns the multiple of 2π nearest to delta.
// Adding it to an angle keeps the angle equivalent while moving it toward another angle delta away.
//
// Parameters:
//   - delta: angular distance in radians
//
// Returns:
//   - float64: k*2π for the integer k nearest to delta/2π
func NearestTurn(delta float64) float64 {
	return 2 * math.Pi * math.Round(delta/(2*math.Pi))
}

// AngleTo returns the angle in radians between two vectors, 0 when either has zero length.
func AngleTo(a, b mgl64.Vec3) float64 {
	denominator := a.Len() * b.Len()
	if denominator == 0 {
		return 0
	}
	return math.Acos(Clamp(a.Dot(b)/denominator, -1, 1))
}

// LerpVec3 linearly interpolates between a and b by t.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// InfinityToMax maps ±Inf to ±math.MaxFloat64 so the value survives strict numeric encodings such as JSON.
// Finite values pass through unchanged.
//
// Parameters:
//   - value: the value to encode
//
// Returns:
//   - float64: a finite value
func InfinityToMax(value float64) float64 {
	switch {
	case math.IsInf(value, 1):
		return math.MaxFloat64
	case math.IsInf(value, -1):
		return -math.MaxFloat64
	default:
		return value
	}
}

// MaxToInfinity is the inverse of InfinityToMax: any magnitude at or beyond math.MaxFloat64 becomes a signed infinity.
//
// Parameters:
//   - value: the decoded value
//
// Returns:
//   - float64: the value with the sentinel expanded
func MaxToInfinity(value float64) float64 {
	if math.Abs(value) < math.MaxFloat64 {
		return value
	}
	if value < 0 {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

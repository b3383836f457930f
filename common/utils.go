package common

import "math"

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
// Used to fall back to defaults for unset configuration fields.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// AllBelow reports whether every value has a magnitude strictly below epsilon.
//
// Parameters:
//   - epsilon: the exclusive magnitude bound
//   - values: the values to test
//
// Returns:
//   - bool: true if |v| < epsilon for all values
func AllBelow(epsilon float64, values ...float64) bool {
	for _, v := range values {
		if !(math.Abs(v) < epsilon) {
			return false
		}
	}
	return true
}

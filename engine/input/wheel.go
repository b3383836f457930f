package input

import "github.com/Carmen-Shannon/oxy-orbit/common"

const (
	// DefaultWheelDeltaFactor is the size of one legacy wheel notch.
	DefaultWheelDeltaFactor = 120
	// DefaultDeltaYFactor divides line/pixel deltas. Hosts emulating macOS scrolling use -1.
	DefaultDeltaYFactor = -3
)

// WheelNormalizer converts raw wheel deltas into dolly steps where positive means zoom in.
// The divisors are host configuration: platform quirks are resolved by whoever builds the surface,
// not by the controller.
type WheelNormalizer struct {
	// WheelDeltaFactor divides DeltaModeLegacy deltas. Zero means DefaultWheelDeltaFactor.
	WheelDeltaFactor float64
	// DeltaYFactor divides DeltaModeLine deltas and, times 10, DeltaModePixel deltas. Zero means DefaultDeltaYFactor.
	DeltaYFactor float64
}

// Normalize returns the dolly step for a wheel event.
//
// Parameters:
//   - e: the raw wheel event
//
// Returns:
//   - float64: the normalized step, positive for scrolling away from the user
func (n WheelNormalizer) Normalize(e WheelEvent) float64 {
	wheelDeltaFactor := common.Coalesce(n.WheelDeltaFactor, DefaultWheelDeltaFactor)
	deltaYFactor := common.Coalesce(n.DeltaYFactor, DefaultDeltaYFactor)

	switch e.DeltaMode {
	case DeltaModeLegacy:
		return e.DeltaY / wheelDeltaFactor
	case DeltaModeLine:
		return e.DeltaY / deltaYFactor
	default:
		return e.DeltaY / (10 * deltaYFactor)
	}
}

package touch_surface

// SurfaceOption is a functional option for configuring a Surface.
type SurfaceOption func(*Surface)

// WithWheelScale multiplies ebiten's wheel offsets before they are emitted as line deltas.
// Trackpads on some platforms report large offsets; a scale below 1 tames them.
//
// Parameters:
//   - scale: multiplier applied to every wheel offset
//
// Returns:
//   - SurfaceOption: option function to apply
func WithWheelScale(scale float64) SurfaceOption {
	return func(s *Surface) {
		s.wheelScale = scale
	}
}

// WithSize sets the initial surface size, before the first Layout call.
//
// Parameters:
//   - width, height: size in pixels
//
// Returns:
//   - SurfaceOption: option function to apply
func WithSize(width, height int) SurfaceOption {
	return func(s *Surface) {
		s.width, s.height = width, height
	}
}

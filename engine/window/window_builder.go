package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial client area size, which is also the initial surface rect.
//
// Parameters:
//   - width, height: size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width, w.height = width, height
	}
}

// WithSizeLimits bounds the client area while the user resizes the window.
//
// Parameters:
//   - minWidth, minHeight: smallest allowed size in pixels
//   - maxWidth, maxHeight: largest allowed size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth, w.minHeight = minWidth, minHeight
		w.maxWidth, w.maxHeight = maxWidth, maxHeight
	}
}

// WithWheelScale multiplies scroll offsets before they are emitted as line deltas.
// Precision trackpads report many small offsets per gesture; the default of 1 suits notched wheels.
//
// Parameters:
//   - scale: multiplier applied to every scroll offset
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWheelScale(scale float64) WindowBuilderOption {
	return func(w *engineWindow) {
		w.wheelScale = scale
	}
}

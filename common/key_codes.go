package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyF     = 70  // F key (ASCII) - fit the demo box
	KeyL     = 76  // L key (ASCII) - lerp between saved poses
	KeyP     = 80  // P key (ASCII) - print snapshot
	KeyR     = 82  // R key (ASCII) - reset to rest pose
	KeyS     = 83  // S key (ASCII) - save rest pose
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

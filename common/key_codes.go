package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW   = 87  // W key (ASCII), move forward
	KeyA   = 65  // A key (ASCII), move left
	KeyS   = 83  // S key (ASCII), move back
	KeyD   = 68  // D key (ASCII), move right
	KeyQ   = 81  // Q key (ASCII), move down
	KeyE   = 69  // E key (ASCII), move up
	KeyC   = 67  // C key (ASCII), cycle cameras
	KeyR   = 82  // R key (ASCII), reset camera
	KeyEsc = 256 // Escape key (GLFW)

	Key1 = 49 // 1 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Additional non-printable keys
const (
	KeyPageUp   = 266 // Page Up (GLFW), move up
	KeyPageDown = 267 // Page Down (GLFW), move down
)

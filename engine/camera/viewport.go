package camera

import (
	"fmt"
)

// Viewport is the integer render-target rectangle the projection is mapped onto.
// Screen coordinates passed to the camera use its bottom-left origin.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// NewViewport returns a viewport anchored at the origin with the given size.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height}
}

// Aspect returns width / height. A zero height yields 1 so callers never divide by zero;
// Validate rejects such viewports at configuration time.
func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Center returns the screen coordinate of the viewport's center pixel.
func (v Viewport) Center() (x, y float32) {
	return float32(v.X) + float32(v.Width)/2, float32(v.Y) + float32(v.Height)/2
}

// Validate checks that the viewport covers a positive area.
//
// Returns:
//   - error: wraps ErrInvalidViewport when width or height is not positive
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidViewport, v.Width, v.Height)
	}
	return nil
}

// validateProjection checks the perspective parameters.
func validateProjection(fovYDegrees, near, far float32) error {
	if !(fovYDegrees > 0 && fovYDegrees < 180) {
		return fmt.Errorf("%w: got %v", ErrInvalidFovY, fovYDegrees)
	}
	if !(near > 0 && near < far) {
		return fmt.Errorf("%w: got near=%v far=%v", ErrInvalidClipPlanes, near, far)
	}
	return nil
}

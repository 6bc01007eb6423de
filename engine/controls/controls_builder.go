package controls

// ControlsBuilderOption is a functional option for configuring Controls.
type ControlsBuilderOption func(*Controls)

// WithFramebufferSize sets the initial framebuffer size used to flip window coordinates.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - ControlsBuilderOption: option function to apply
func WithFramebufferSize(width, height int) ControlsBuilderOption {
	return func(c *Controls) {
		c.fbWidth = width
		c.fbHeight = height
	}
}

// WithMoveScale sets the factor applied to the held-key direction each tick, before the
// camera's own speed.
//
// Parameters:
//   - scale: direction multiplier per second
//
// Returns:
//   - ControlsBuilderOption: option function to apply
func WithMoveScale(scale float32) ControlsBuilderOption {
	return func(c *Controls) {
		c.moveScale = scale
	}
}

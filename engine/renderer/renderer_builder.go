package renderer

// RendererBuilderOption configures a renderer before NewRenderer creates the GPU objects.
type RendererBuilderOption func(*renderer)

// WithPresentMode picks between vsync and uncapped presentation. Uncapped is the default.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: the option
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the sample count of the color and depth attachments. Defaults to MSAA4x.
//
// Parameters:
//   - count: the MSAASampleCount to use (MSAAOff or MSAA4x)
//
// Returns:
//   - RendererBuilderOption: the option
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &count
	}
}

// WithForceSoftwareRenderer requests the fallback adapter, which needs a software Vulkan driver
// such as lavapipe. Useful on CI machines without a GPU.
//
// Parameters:
//   - force: true for the fallback adapter
//
// Returns:
//   - RendererBuilderOption: the option
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithSceneRadius sets the radius of the gizmo's great circles. Defaults to 1.
//
// Parameters:
//   - radius: world-space radius
//
// Returns:
//   - RendererBuilderOption: a function that applies the radius option to a renderer
func WithSceneRadius(radius float32) RendererBuilderOption {
	return func(r *renderer) {
		r.sceneRadius = radius
	}
}

// WithSegments sets how many line segments approximate each gizmo circle. Defaults to 96.
//
// Parameters:
//   - n: segment count, at least 3
//
// Returns:
//   - RendererBuilderOption: a function that applies the segments option to a renderer
func WithSegments(n int) RendererBuilderOption {
	return func(r *renderer) {
		r.segments = n
	}
}

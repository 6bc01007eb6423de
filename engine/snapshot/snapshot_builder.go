package snapshot

import "github.com/gogpu/gg"

// RendererBuilderOption is a functional option for configuring a Renderer.
type RendererBuilderOption func(*Renderer)

// WithSize sets the output image size in pixels.
//
// Parameters:
//   - width: image width
//   - height: image height
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithSize(width, height int) RendererBuilderOption {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// WithSceneRadius sets the radius of the drawn great circles. Axes extend to 1.5x this radius.
//
// Parameters:
//   - radius: world-space radius
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithSceneRadius(radius float32) RendererBuilderOption {
	return func(r *Renderer) {
		r.sceneRadius = radius
	}
}

// WithSegments sets how many straight segments approximate each circle.
//
// Parameters:
//   - n: segment count, at least 3
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithSegments(n int) RendererBuilderOption {
	return func(r *Renderer) {
		r.segments = n
	}
}

// WithLineWidth sets the stroke width in pixels.
//
// Parameters:
//   - width: line width
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithLineWidth(width float64) RendererBuilderOption {
	return func(r *Renderer) {
		r.lineWidth = width
	}
}

// WithBackground sets the clear color.
//
// Parameters:
//   - c: the background color
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithBackground(c gg.RGBA) RendererBuilderOption {
	return func(r *Renderer) {
		r.background = c
	}
}

// WithEncodeWorkers sets how many frames Record rasterizes and encodes at once.
//
// Parameters:
//   - n: worker count, raised to 1 when lower
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithEncodeWorkers(n int) RendererBuilderOption {
	return func(r *Renderer) {
		r.encodeWorkers = max(n, 1)
	}
}

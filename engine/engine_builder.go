package engine

import (
	"github.com/Carmen-Shannon/oxy-arcball/engine/controls"
	"github.com/Carmen-Shannon/oxy-arcball/engine/profiler"
	"github.com/Carmen-Shannon/oxy-arcball/engine/renderer"
	"github.com/Carmen-Shannon/oxy-arcball/engine/window"
)

// EngineBuilderOption is a functional option applied to an engine by NewEngine.
type EngineBuilderOption func(*engine)

// WithProfiling turns the periodic profiler report on or off.
//
// Parameters:
//   - enabled: true to log reports from the render loop
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfiler replaces the default profiler, e.g. to report the active camera.
// Reports still require WithProfiling(true) or EnableProfiler.
//
// Parameters:
//   - p: the profiler to tick from the render loop
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets how often the controls are ticked.
//
// Parameters:
//   - fps: ticks per second, 60 when <= 0
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickRate = perSecond(fps)
	}
}

// WithRenderFrameLimit caps the render loop.
//
// Parameters:
//   - fps: maximum frames per second, 0 for uncapped (default)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}

// WithWindow sets the window whose events drive the engine. Run requires one.
//
// Parameters:
//   - w: an open window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer that draws the active camera each frame.
//
// Parameters:
//   - r: a renderer bound to the engine's window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithControls sets the input controls. Their camera set supplies the camera drawn each frame.
//
// Parameters:
//   - c: the controls to drive from window input and the tick loop
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithControls(c *controls.Controls) EngineBuilderOption {
	return func(e *engine) {
		e.controls = c
	}
}

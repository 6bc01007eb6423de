package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/Carmen-Shannon/oxy-arcball/engine/controls"
	"github.com/Carmen-Shannon/oxy-arcball/engine/profiler"
	"github.com/Carmen-Shannon/oxy-arcball/engine/renderer"
	"github.com/Carmen-Shannon/oxy-arcball/engine/window"
)

// engine implements the Engine interface.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	controls *controls.Controls

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	tickRate         time.Duration
	tickRateChannel  chan time.Duration // rate changes while the tick loop runs
	renderFrameLimit time.Duration      // minimum frame duration; 0 = uncapped

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	running  atomic.Bool
	wg       sync.WaitGroup
	quit     chan struct{}
	quitOnce sync.Once
}

// Engine hosts the viewer. The window's event pump runs on the calling goroutine, a tick loop
// feeds held keys into the Controls and rebuilds the active camera's matrices, and a render
// loop draws through the active camera.
type Engine interface {
	// Window returns the window the engine pumps, or nil.
	//
	// Returns:
	//   - window.Window: the window
	Window() window.Window

	// Controls returns the input controls driving the camera set.
	//
	// Returns:
	//   - *controls.Controls: the controls, or nil if none were configured
	Controls() *controls.Controls

	// EnableProfiler turns on the periodic profiler report.
	EnableProfiler()

	// DisableProfiler turns off the periodic profiler report.
	DisableProfiler()

	// SetTickRate changes how often the tick loop runs. Takes effect immediately while running.
	//
	// Parameters:
	//   - fps: ticks per second, 60 when <= 0
	SetTickRate(fps float64)

	// SetTickCallback registers a function run each tick, after the active camera was updated.
	//
	// Parameters:
	//   - callback: receives the seconds since the previous tick
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers a function run each frame, after the active camera was drawn.
	//
	// Parameters:
	//   - callback: receives the seconds since the previous frame
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit caps the render loop. Set before Run.
	//
	// Parameters:
	//   - fps: maximum frames per second, 0 for uncapped
	SetRenderFrameLimit(fps float64)

	// Run starts the tick and render loops and pumps window events. Blocks until the window
	// closes and both loops have stopped.
	Run()

	// Quit stops the tick and render loops. Safe to call more than once.
	Quit()
}

// NewEngine builds an Engine from options. With a window configured, its resize events reach
// the renderer and the controls, and its pointer and key events reach the controls.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler:        profiler.NewProfiler(),
		tickRate:        perSecond(60),
		tickRateChannel: make(chan time.Duration, 1),
		quit:            make(chan struct{}),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.window != nil {
		e.bindWindow()
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Controls() *controls.Controls {
	return e.controls
}

// bindWindow registers the window callbacks that feed the controls and renderer.
func (e *engine) bindWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		// a minimized window reports a zero framebuffer; the surface cannot be configured to it
		if e.renderer != nil && width > 0 && height > 0 {
			e.renderer.Resize(width, height)
		}
		if e.controls != nil {
			e.controls.Resize(width, height)
		}
	})
	if e.controls == nil {
		return
	}
	e.controls.Resize(e.window.Width(), e.window.Height())
	e.window.SetMouseDownCallback(e.controls.MouseDown)
	e.window.SetMouseUpCallback(func(_, _ float32) {
		e.controls.MouseUp()
	})
	e.window.SetMouseMoveCallback(e.controls.MouseMove)
	e.window.SetKeyDownCallback(e.controls.KeyDown)
	e.window.SetKeyUpCallback(e.controls.KeyUp)
}

func (e *engine) Run() {
	e.start()
	e.window.ProcessMessages()
	// the window closed; stop the loops before the caller releases the renderer
	e.Quit()
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quit)
	})
}

// start launches the tick and render goroutines.
func (e *engine) start() {
	e.running.Store(true)
	e.wg.Add(2)
	go e.tickLoop()
	go e.renderLoop()
}

// tickLoop advances the controls at the tick rate until Quit.
func (e *engine) tickLoop() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-e.quit:
			return
		case rate := <-e.tickRateChannel:
			ticker.Reset(rate)
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			if e.controls != nil {
				e.controls.Tick(dt)
			}
			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		}
	}
}

// renderLoop draws the active camera until Quit. A panic inside a frame is logged and stops
// the engine instead of the process.
func (e *engine) renderLoop() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] Render loop stopped by panic: %v", r)
			e.Quit()
		}
	}()

	last := time.Now()
	for {
		select {
		case <-e.quit:
			return
		default:
		}

		frameStart := time.Now()
		dt := float32(frameStart.Sub(last).Seconds())
		last = frameStart

		if e.renderer != nil {
			if err := e.renderer.Draw(e.activeCamera()); err != nil {
				log.Printf("[Engine] Skipped frame: %v", err)
			}
		}
		if e.renderCallback != nil {
			e.renderCallback(dt)
		}
		if e.profiler != nil && e.profilingEnabled.Load() {
			e.profiler.Tick()
		}

		if remaining := e.renderFrameLimit - time.Since(frameStart); e.renderFrameLimit > 0 && remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// activeCamera returns the selected camera, or nil when there are no controls or nothing is selected.
func (e *engine) activeCamera() camera.Camera {
	if e.controls == nil {
		return nil
	}
	cam, ok := e.controls.Cameras().Active()
	if !ok {
		return nil
	}
	return cam
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engine) SetTickRate(fps float64) {
	rate := perSecond(fps)
	if !e.running.Load() {
		e.tickRate = rate
		return
	}
	// keep only the newest pending rate
	select {
	case <-e.tickRateChannel:
	default:
	}
	e.tickRateChannel <- rate
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = perSecond(fps)
}

// perSecond converts a rate to a period, treating non-positive rates as 60 per second.
func perSecond(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

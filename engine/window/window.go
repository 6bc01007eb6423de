package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is the viewer's OS window. It owns the event pump and reports pointer, key and
// framebuffer-size events through callbacks. Pointer positions are always framebuffer pixels
// with a top-left origin, so they can be compared directly with the surface size.
type Window interface {
	// SetUpdateCallback registers a function run once per pass of the event pump.
	//
	// Parameters:
	//   - callback: the function to run, or nil
	SetUpdateCallback(callback func())

	// SetResizeCallback registers the framebuffer-size listener. Width and height are 0 while minimized.
	//
	// Parameters:
	//   - callback: receives the framebuffer size in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback registers the key press listener. Auto-repeat is not reported.
	//
	// Parameters:
	//   - callback: receives the GLFW key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback registers the key release listener.
	//
	// Parameters:
	//   - callback: receives the GLFW key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseDownCallback registers the left button press listener.
	//
	// Parameters:
	//   - callback: receives the cursor position
	SetMouseDownCallback(callback func(x, y float32))

	// SetMouseUpCallback registers the left button release listener.
	//
	// Parameters:
	//   - callback: receives the cursor position
	SetMouseUpCallback(callback func(x, y float32))

	// SetMouseMoveCallback registers the cursor listener. It fires whether or not a button is held.
	//
	// Parameters:
	//   - callback: receives the cursor position
	SetMouseMoveCallback(callback func(x, y float32))

	// SurfaceDescriptor builds the platform surface descriptor WebGPU needs to draw into the window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil before the window exists
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	//
	// Returns:
	//   - bool: false once ESC was pressed or the window was closed
	IsRunning() bool

	// Close destroys the window and shuts GLFW down.
	//
	// Returns:
	//   - error: an error if the window was never created
	Close() error

	// ProcessMessages pumps events until the window closes. Must run on the main thread.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	//
	// Returns:
	//   - int: the width
	Width() int

	// Height returns the framebuffer height in pixels.
	//
	// Returns:
	//   - int: the height
	Height() int
}

// engineWindow implements Window on top of a platform window stored in internalWindow.
type engineWindow struct {
	title string

	// size limits in screen coordinates
	minWidth, minHeight int
	maxWidth, maxHeight int

	// framebuffer size in pixels, updated on every resize
	width, height int

	internalWindow any

	onUpdate    func()
	onResize    func(width, height int)
	onKeyDown   func(keyCode uint32)
	onKeyUp     func(keyCode uint32)
	onMouseDown func(x, y float32)
	onMouseUp   func(x, y float32)
	onMouseMove func(x, y float32)
}

var _ Window = &engineWindow{}

// NewWindow opens a window configured by options. Defaults: 1280x720, resizable between
// 600x200 and 1600x1200. Failing to open a window panics, as the viewer cannot run without one.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "oxy arcball",
		minWidth:  600,
		minHeight: 200,
		maxWidth:  1600,
		maxHeight: 1200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseDownCallback(callback func(x, y float32)) {
	w.onMouseDown = callback
}

func (w *engineWindow) SetMouseUpCallback(callback func(x, y float32)) {
	w.onMouseUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float32)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if !platformProcessMessages(w) {
			break
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// cursorToFramebuffer scales a cursor position from screen coordinates to framebuffer pixels.
// The two differ on high-DPI displays. A zero-sized window leaves the position unscaled.
//
// Parameters:
//   - x, y: cursor position in screen coordinates
//   - winWidth, winHeight: window size in screen coordinates
//   - fbWidth, fbHeight: framebuffer size in pixels
//
// Returns:
//   - float32: x in framebuffer pixels
//   - float32: y in framebuffer pixels
func cursorToFramebuffer(x, y float64, winWidth, winHeight, fbWidth, fbHeight int) (float32, float32) {
	if winWidth <= 0 || winHeight <= 0 {
		return float32(x), float32(y)
	}
	return float32(x * float64(fbWidth) / float64(winWidth)), float32(y * float64(fbHeight) / float64(winHeight))
}

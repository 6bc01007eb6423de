package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow is the GLFW handle behind an engineWindow.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool

	// leftDown tracks the left button so focus loss can end a drag
	leftDown bool
}

// newPlatformWindow opens a GLFW window without a client API (WebGPU draws into it) and
// registers the input callbacks. Must run on the main thread.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{parent: w, window: win, running: true}
	w.internalWindow = gw
	gw.bindCallbacks()

	// the requested size is in screen coordinates; everything downstream wants pixels
	w.width, w.height = win.GetFramebufferSize()
	return nil
}

// bindCallbacks forwards GLFW events to the parent's callbacks.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window
func (gw *glfwWindow) bindCallbacks() {
	w := gw.parent

	gw.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			gw.window.SetShouldClose(true)
			return
		}
		// auto-repeat is dropped; held keys are tracked between Press and Release
		switch {
		case action == glfw.Release && w.onKeyUp != nil:
			w.onKeyUp(uint32(key))
		case action == glfw.Press && w.onKeyDown != nil:
			w.onKeyDown(uint32(key))
		}
	})

	gw.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := gw.cursor(gw.window.GetCursorPos())
		if action == glfw.Press {
			gw.leftDown = true
			if w.onMouseDown != nil {
				w.onMouseDown(x, y)
			}
			return
		}
		gw.releaseLeft(x, y)
	})

	gw.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.onMouseMove != nil {
			w.onMouseMove(gw.cursor(xpos, ypos))
		}
	})

	// A release that happens while another window has focus is never delivered.
	gw.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			gw.releaseLeft(gw.cursor(gw.window.GetCursorPos()))
		}
	})

	// Framebuffer size, not window size: they differ on high-DPI displays and the surface is in pixels.
	gw.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})
}

func (gw *glfwWindow) releaseLeft(x, y float32) {
	if !gw.leftDown {
		return
	}
	gw.leftDown = false
	if gw.parent.onMouseUp != nil {
		gw.parent.onMouseUp(x, y)
	}
}

// cursor converts a GLFW cursor position from screen coordinates to framebuffer pixels.
func (gw *glfwWindow) cursor(xpos, ypos float64) (float32, float32) {
	winWidth, winHeight := gw.window.GetSize()
	return cursorToFramebuffer(xpos, ypos, winWidth, winHeight, gw.parent.width, gw.parent.height)
}

// platformGetSurfaceDescriptor asks the wgpuglfw bridge for the descriptor matching the
// current platform (Win32, X11, Wayland or Metal).
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

func platformIsRunningCheck(w *engineWindow) bool {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return false
	}
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the window and terminates GLFW.
func platformCloseWindow(w *engineWindow) error {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return errors.New("window is not initialized")
	}
	gw.running = false
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages handles pending events without blocking and reports whether the
// window is still open.
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}

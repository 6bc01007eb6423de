package controls

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Controls routes window input to the active camera of a camera.Set.
// Window coordinates arrive with a top-left origin and are flipped before they reach a camera.
// Thread-safe for concurrent access.
type Controls struct {
	mu *sync.Mutex

	cameras *camera.Set

	// framebuffer size in pixels, kept in sync with the window
	fbWidth  int
	fbHeight int

	held     map[uint32]bool
	dragging bool

	// moveScale multiplies the per-tick direction before Translate.
	moveScale float32
}

// NewControls creates controls driving the cameras in set.
//
// Parameters:
//   - set: the cameras to drive
//   - options: functional options to configure the controls
//
// Returns:
//   - *Controls: the newly created controls
func NewControls(set *camera.Set, options ...ControlsBuilderOption) *Controls {
	c := &Controls{
		mu:        &sync.Mutex{},
		cameras:   set,
		fbWidth:   640,
		fbHeight:  480,
		held:      make(map[uint32]bool),
		moveScale: 1,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Cameras returns the camera set the controls drive.
func (c *Controls) Cameras() *camera.Set {
	return c.cameras
}

// FramebufferSize returns the last known framebuffer size in pixels.
//
// Returns:
//   - int: width in pixels
//   - int: height in pixels
func (c *Controls) FramebufferSize() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fbWidth, c.fbHeight
}

// InvertY converts a top-left origin window row to the bottom-left origin the cameras expect.
//
// Parameters:
//   - y: window y coordinate, growing downward
//
// Returns:
//   - float32: y growing upward
func (c *Controls) InvertY(y float32) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invertY(y)
}

// MouseDown starts a drag on the active camera.
//
// Parameters:
//   - x, y: window coordinates, origin top-left
func (c *Controls) MouseDown(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = true
	if cam, ok := c.cameras.Active(); ok {
		cam.MouseClick(x, c.invertY(y))
	}
}

// MouseUp ends the current drag.
func (c *Controls) MouseUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = false
}

// MouseMove continues the drag on the active camera. Ignored while no button is held.
//
// Parameters:
//   - x, y: window coordinates, origin top-left
func (c *Controls) MouseMove(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dragging {
		return
	}
	if cam, ok := c.cameras.Active(); ok {
		cam.MouseMove(x, c.invertY(y))
	}
}

// Dragging reports whether a drag is in progress.
func (c *Controls) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

// KeyDown records a held movement key or runs a camera command.
// 1-9 select a camera, C cycles, R resets the active camera. Commands run on the first press
// only; auto-repeat reports of a key that is already held just keep it held.
//
// Parameters:
//   - keyCode: the virtual key code (see common.Key*)
func (c *Controls) KeyDown(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.held[keyCode] {
		return
	}
	c.held[keyCode] = true

	switch {
	case keyCode >= common.Key1 && keyCode <= common.Key9:
		h := camera.Handle(keyCode - common.Key1)
		if err := c.cameras.Select(h); err != nil {
			log.Printf("[Controls] %v", err)
			return
		}
		c.dragging = false
		log.Printf("[Controls] Camera %d selected", h)
	case keyCode == common.KeyC:
		h, err := c.cameras.Next()
		if err != nil {
			log.Printf("[Controls] %v", err)
			return
		}
		c.dragging = false
		log.Printf("[Controls] Camera %d selected", h)
	case keyCode == common.KeyR:
		if cam, ok := c.cameras.Active(); ok {
			cam.Reset()
		}
	}
}

// KeyUp releases a held key.
//
// Parameters:
//   - keyCode: the virtual key code
func (c *Controls) KeyUp(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.held, keyCode)
}

// Direction returns the movement direction built from the held keys:
// A/D along x, Q/E and PageDown/PageUp along y, W/S along z (W is forward, -z).
//
// Returns:
//   - mgl32.Vec3: the unscaled direction, zero when nothing is held
func (c *Controls) Direction() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction()
}

// Tick advances one frame: translates the active camera by the held direction scaled by dt,
// re-syncs its viewport to the framebuffer and rebuilds its matrices.
//
// Parameters:
//   - dt: seconds since the previous tick
func (c *Controls) Tick(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cam, ok := c.cameras.Active()
	if !ok {
		return
	}
	if dir := c.direction(); dir != (mgl32.Vec3{}) {
		cam.Translate(dir.Mul(dt * c.moveScale))
	}
	// a minimized window reports a zero framebuffer; keep the last valid viewport
	if vp := camera.NewViewport(c.fbWidth, c.fbHeight); vp.Validate() == nil {
		_ = cam.SetViewport(vp)
	}
	cam.Update()
}

// Resize records the new framebuffer size, applies it to every camera and rebuilds their
// matrices so pointer rays use the new aspect ratio before the next Tick.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
func (c *Controls) Resize(width, height int) {
	c.mu.Lock()
	c.fbWidth = width
	c.fbHeight = height
	c.mu.Unlock()

	vp := camera.NewViewport(width, height)
	if vp.Validate() != nil {
		return
	}
	c.cameras.Each(func(_ camera.Handle, cam camera.Camera) {
		if cam.SetViewport(vp) == nil {
			cam.Update()
		}
	})
}

// invertY flips y. Caller must hold the mutex.
func (c *Controls) invertY(y float32) float32 {
	return float32(c.fbHeight) - y - 1
}

// direction builds the held-key vector. Caller must hold the mutex.
func (c *Controls) direction() mgl32.Vec3 {
	axis := func(neg, pos uint32) float32 {
		var v float32
		if c.held[neg] {
			v--
		}
		if c.held[pos] {
			v++
		}
		return v
	}
	y := axis(common.KeyQ, common.KeyE) + axis(common.KeyPageDown, common.KeyPageUp)
	return mgl32.Vec3{
		axis(common.KeyA, common.KeyD),
		mgl32.Clamp(y, -1, 1),
		axis(common.KeyW, common.KeyS),
	}
}

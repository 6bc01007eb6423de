package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/Carmen-Shannon/oxy-arcball/engine/window"
)

// renderer owns a backend plus the gizmo settings it was built with. mu serializes Draw with
// Resize so the attachments are never swapped mid-frame.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// applied once in NewRenderer
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	sceneRadius          float32
	segments             int
}

// Renderer draws the orientation gizmo through the active camera every frame. The camera
// matrices reach the GPU as a GPUCameraUniform, so the arcball rotation computed on the CPU is
// the only thing that moves the picture.
type Renderer interface {
	// Resize reconfigures the surface and its attachments for a new framebuffer size.
	// Both dimensions must be positive.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Draw uploads the camera uniform, draws the gizmo and presents the frame.
	// A nil camera skips the upload and draws with the last uploaded matrices.
	//
	// Parameters:
	//   - cam: the camera to draw through, usually the active camera of a set
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	Draw(cam camera.Camera) error

	// Release frees every GPU object owned by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer bound to the window's surface and builds the gizmo pipeline.
// GPU initialization failures panic, as there is nothing to draw without a device.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - window: the window providing the surface descriptor and initial size
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
//   - error: an error if the gizmo pipeline could not be created
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		sceneRadius: 1,
		segments:    96,
	}

	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(window.Width(), window.Height())

	vertices := MarshalGizmoVertices(GizmoLineList(common.Gizmo(r.sceneRadius, r.segments)))
	uniform := camera.GPUCameraUniform{}
	if err := r.backend.InitGizmo(GizmoShaderSource(), vertices, uint64(uniform.Size())); err != nil {
		r.backend.Release()
		return nil, err
	}
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Draw(cam camera.Camera) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cam != nil {
		uniform := cam.Uniform()
		r.backend.WriteCamera(uniform.Marshal())
	}
	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.backend.DrawGizmo()
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}

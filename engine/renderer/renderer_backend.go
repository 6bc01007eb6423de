package renderer

// RendererBackendType selects the GPU API behind a Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU draws through WebGPU (wgpu-native).
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode chooses between tear-free and lowest-latency presentation.
type PresentMode int

const (
	// PresentModeVSync presents on vertical blank (FIFO).
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents as soon as a frame is ready and may tear.
	PresentModeUncapped
)

// MSAASampleCount is the number of samples per pixel of the main render pass.
// WebGPU only guarantees 1 and 4.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	MSAA4x  MSAASampleCount = 4
)

// RendererBackend is implemented once per RendererBackendType.
type RendererBackend interface {
	wgpuRendererBackend
}

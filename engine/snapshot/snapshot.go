package snapshot

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
)

// Format selects the image encoding of a snapshot.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ErrUnknownFormat is returned for encodings other than png and webp.
var ErrUnknownFormat = errors.New("snapshot: unknown image format")

// ParseFormat maps a file extension or config value to a Format.
//
// Parameters:
//   - s: "png" or "webp", case-insensitive, with or without a leading dot
//
// Returns:
//   - Format: the parsed format
//   - error: ErrUnknownFormat for anything else
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))); f {
	case FormatPNG, FormatWebP:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Renderer draws a wireframe gizmo (three great circles of the arcball sphere plus the
// world axes) through a camera's view-projection matrix on the CPU.
type Renderer struct {
	width, height int
	sceneRadius   float32
	segments      int
	lineWidth     float64
	background    gg.RGBA

	// encodePool rasterizes and encodes recorded frames in parallel
	encodePool    worker.DynamicWorkerPool
	encodeWorkers int
}

// NewRenderer creates a Renderer. Defaults: 640x480, unit scene radius, 96 segments per circle,
// 2px lines on a dark background, one encode worker per CPU but one.
//
// Parameters:
//   - options: functional options to configure the renderer
//
// Returns:
//   - *Renderer: the newly created renderer
func NewRenderer(options ...RendererBuilderOption) *Renderer {
	r := &Renderer{
		width:       640,
		height:      480,
		sceneRadius: 1,
		segments:    96,
		lineWidth:   2,
		background:  gg.RGB(0.08, 0.08, 0.1),

		encodeWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(r)
	}
	// idle workers exit after a second, so a renderer between recordings holds no goroutines
	r.encodePool = worker.NewDynamicWorkerPool(r.encodeWorkers, 256, 1*time.Second)
	return r
}

// SetLogger forwards logger to gg, which is silent by default. Pass nil to silence it again.
//
// Parameters:
//   - logger: the structured logger gg should use
func SetLogger(logger *slog.Logger) {
	gg.SetLogger(logger)
}

// Size returns the output image size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Render draws the gizmo as seen by cam, using the matrices from its last Update.
// Segments with an endpoint outside the view frustum are skipped.
//
// Parameters:
//   - cam: the camera to draw through
//
// Returns:
//   - image.Image: the rendered frame
//   - error: a rasterization error from gg
func (r *Renderer) Render(cam camera.Camera) (image.Image, error) {
	dc, err := r.draw(cam.ViewProjectionMatrix())
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// Encode renders cam and writes the frame to w in the given format.
//
// Parameters:
//   - w: the destination
//   - cam: the camera to draw through
//   - format: FormatPNG or FormatWebP
//
// Returns:
//   - error: ErrUnknownFormat, a rasterization error or an encoder error
func (r *Renderer) Encode(w io.Writer, cam camera.Camera, format Format) error {
	return r.encode(w, cam.ViewProjectionMatrix(), format)
}

// encode is Encode for a captured view-projection matrix. It touches no camera, so recorded
// frames can be encoded concurrently.
func (r *Renderer) encode(w io.Writer, viewProj mgl32.Mat4, format Format) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}
	dc, err := r.draw(viewProj)
	if err != nil {
		return err
	}
	defer dc.Close()

	switch format {
	case FormatPNG:
		if err := dc.EncodePNG(w); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	case FormatWebP:
		if err := nativewebp.Encode(w, dc.Image(), nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	}
	return nil
}

func (r *Renderer) draw(viewProj mgl32.Mat4) (*gg.Context, error) {
	dc := gg.NewContext(r.width, r.height)
	dc.ClearWithColor(r.background)
	dc.SetLineWidth(r.lineWidth)

	frustum := common.ExtractFrustum(viewProj)

	for _, l := range common.Gizmo(r.sceneRadius, r.segments) {
		dc.SetRGB(float64(l.Color[0]), float64(l.Color[1]), float64(l.Color[2]))
		if r.trace(dc, l.Points, viewProj, &frustum) {
			if err := dc.Stroke(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("snapshot: stroke: %w", err)
			}
		}
		dc.ClearPath()
	}
	// no-op without a registered GPU accelerator
	if err := dc.FlushGPU(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot: flush: %w", err)
	}
	return dc, nil
}

// trace adds the visible segments of points to the current path and reports whether any were added.
func (r *Renderer) trace(dc *gg.Context, points []mgl32.Vec3, viewProj mgl32.Mat4, frustum *common.Frustum) bool {
	drawn := false
	penDown := false
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if !frustum.ContainsPoint(a) || !frustum.ContainsPoint(b) {
			penDown = false
			continue
		}
		if !penDown {
			x, y := r.toScreen(viewProj, a)
			dc.MoveTo(x, y)
			penDown = true
		}
		x, y := r.toScreen(viewProj, b)
		dc.LineTo(x, y)
		drawn = true
	}
	return drawn
}

// toScreen maps a world point to image pixels (top-left origin).
func (r *Renderer) toScreen(viewProj mgl32.Mat4, p mgl32.Vec3) (float64, float64) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	ndcX := float64(clip.X() / clip.W())
	ndcY := float64(clip.Y() / clip.W())
	return (ndcX + 1) * 0.5 * float64(r.width), (1 - ndcY) * 0.5 * float64(r.height)
}

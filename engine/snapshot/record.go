package snapshot

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidDrag is returned for a drag script without frames.
var ErrInvalidDrag = errors.New("snapshot: drag needs at least one frame")

// Drag is a scripted pointer gesture: a press at Start followed by Frames evenly spaced moves
// ending at Start+Delta. Coordinates use the camera's bottom-left origin.
type Drag struct {
	StartX, StartY float32
	DeltaX, DeltaY float32
	Frames         int
}

// Point returns the pointer position of frame i.
func (d Drag) Point(i int) (float32, float32) {
	if d.Frames <= 1 {
		return d.StartX + d.DeltaX, d.StartY + d.DeltaY
	}
	t := float32(i) / float32(d.Frames-1)
	return d.StartX + d.DeltaX*t, d.StartY + d.DeltaY*t
}

// Record replays drag on cam and writes one frame per move into dir as frame_NNN.<format>.
// The camera's viewport is set to the renderer's size first. The replay itself is sequential;
// each frame's matrices are captured and the frames are then rasterized and encoded on the
// renderer's worker pool.
//
// Parameters:
//   - cam: the camera to drive
//   - drag: the scripted gesture
//   - dir: output directory, created if missing
//   - format: FormatPNG or FormatWebP
//
// Returns:
//   - []string: the written file paths in frame order, up to the first failed frame
//   - error: ErrInvalidDrag, ErrUnknownFormat, or the file or encoder error of the earliest failed frame
func (r *Renderer) Record(cam camera.Camera, drag Drag, dir string, format Format) ([]string, error) {
	if drag.Frames <= 0 {
		return nil, ErrInvalidDrag
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if err := cam.SetViewport(camera.NewViewport(r.width, r.height)); err != nil {
		return nil, err
	}
	cam.Update()

	// arcball state carries from one move to the next, so the replay stays on this goroutine
	cam.MouseClick(drag.StartX, drag.StartY)
	frames := make([]mgl32.Mat4, drag.Frames)
	for i := range frames {
		cam.MouseMove(drag.Point(i))
		cam.Update()
		frames[i] = cam.ViewProjectionMatrix()
	}

	paths := make([]string, len(frames))
	errs := make([]error, len(frames))
	var wg sync.WaitGroup
	for i, viewProj := range frames {
		wg.Add(1)
		id := i
		paths[id] = filepath.Join(dir, fmt.Sprintf("frame_%03d.%s", id, format))
		r.encodePool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				// collected by frame index; the pool never sees frame errors
				errs[id] = r.writeFile(paths[id], viewProj, format)
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return paths[:i], err
		}
	}
	log.Printf("[Snapshot] Wrote %d frames to %s", len(paths), dir)
	return paths, nil
}

func (r *Renderer) writeFile(path string, viewProj mgl32.Mat4, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	return r.encode(f, viewProj, format)
}

package profiler

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
)

// Profiler tracks frame rate, memory statistics and the active camera.
// Outputs stats to its logger at a configurable interval.
// Not safe for concurrent use; call Tick from the render loop only.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	cameras *camera.Set
	logger  *log.Logger
}

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithCameras adds the active camera of set to every report.
//
// Parameters:
//   - set: the camera set to inspect
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithCameras(set *camera.Set) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.cameras = set
	}
}

// WithLogger replaces the destination of the reports.
//
// Parameters:
//   - logger: the logger to write to
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second and reports go
// to a standard logger on stderr.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		logger:         log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed: FPS, heap usage,
// allocation rate, GC count/pause times, total memory and the active camera.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = 1e-9
	}
	fps := float64(p.frameCount) / seconds

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / seconds

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.logger.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB%s",
		fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB, p.cameraSummary())

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// cameraSummary describes the active camera, or returns "" when no set is attached.
func (p *Profiler) cameraSummary() string {
	if p.cameras == nil {
		return ""
	}
	h, ok := p.cameras.ActiveHandle()
	cam, _ := p.cameras.Active()
	if !ok || cam == nil {
		return " | Camera: none"
	}

	var b strings.Builder
	eye := cam.Eye()
	fmt.Fprintf(&b, " | Camera %d: %s eye (%.2f, %.2f, %.2f)", h, cam.Kind(), eye[0], eye[1], eye[2])
	// render goroutine: input may be mutating the arcball, so only the locked accessor is used
	if planar, state, ok := cam.ArcballStatus(); ok {
		mode := "sphere"
		if planar {
			mode = "planar"
		}
		fmt.Fprintf(&b, " %s %s", mode, state)
	}
	return b.String()
}

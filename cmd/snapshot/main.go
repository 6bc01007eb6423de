// Command snapshot renders a scripted arcball drag to a numbered image sequence without a window.
package main

import (
	"log"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/Carmen-Shannon/oxy-arcball/engine/config"
	"github.com/Carmen-Shannon/oxy-arcball/engine/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Snapshot] %v", err)
	}
	format, err := snapshot.ParseFormat(cfg.SnapshotFormat)
	if err != nil {
		log.Fatalf("[Snapshot] %v", err)
	}

	cameras, err := cfg.Cameras()
	if err != nil {
		log.Fatalf("[Snapshot] %v", err)
	}
	cam, ok := cameras.Active()
	if !ok || cam.Kind() != camera.KindArcball {
		log.Fatalf("[Snapshot] no arcball camera configured")
	}

	snapshot.SetLogger(slog.Default())
	opts := []snapshot.RendererBuilderOption{
		snapshot.WithSize(cfg.Width, cfg.Height),
		snapshot.WithSceneRadius(cfg.SceneRadius),
	}
	if cfg.SnapshotWorkers > 0 {
		opts = append(opts, snapshot.WithEncodeWorkers(cfg.SnapshotWorkers))
	}
	r := snapshot.NewRenderer(opts...)

	// start the drag at the viewport center, bottom-left origin
	drag := snapshot.Drag{
		StartX: float32(cfg.Width) / 2,
		StartY: float32(cfg.Height) / 2,
		DeltaX: cfg.SnapshotDrag[0],
		DeltaY: cfg.SnapshotDrag[1],
		Frames: cfg.SnapshotFrames,
	}
	paths, err := r.Record(cam, drag, cfg.SnapshotDir, format)
	if err != nil {
		log.Fatalf("[Snapshot] %v", err)
	}
	for _, p := range paths {
		log.Printf("[Snapshot] %s", p)
	}
}

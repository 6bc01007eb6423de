package main

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-arcball/engine"
	"github.com/Carmen-Shannon/oxy-arcball/engine/config"
	"github.com/Carmen-Shannon/oxy-arcball/engine/controls"
	"github.com/Carmen-Shannon/oxy-arcball/engine/profiler"
	"github.com/Carmen-Shannon/oxy-arcball/engine/renderer"
	"github.com/Carmen-Shannon/oxy-arcball/engine/window"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Viewer] %v", err)
	}

	// ── Cameras ─────────────────────────────────────────────────────────
	cameras, err := cfg.Cameras()
	if err != nil {
		log.Fatalf("[Viewer] %v", err)
	}

	// ── Window + Renderer ───────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Title),
		window.WithWidth(cfg.Width),
		window.WithHeight(cfg.Height),
	)
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
		renderer.WithSceneRadius(cfg.SceneRadius),
	)
	if err != nil {
		log.Fatalf("[Viewer] %v", err)
	}
	defer r.Release()

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithProfiling(cfg.ProfileInterval > 0),
		engine.WithProfiler(profiler.NewProfiler(
			profiler.WithInterval(cfg.ProfileInterval),
			profiler.WithCameras(cameras),
		)),
		engine.WithTickRate(60),
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithControls(controls.NewControls(cameras,
			controls.WithFramebufferSize(win.Width(), win.Height()),
			controls.WithMoveScale(cfg.MoveScale),
		)),
	)

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  Oxy Arcball                                         ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Left-drag=Rotate  WASD=Move  Q/E PgUp/PgDn=Up/Down  ║")
	fmt.Println("║  1-9=Select camera  C=Next camera  R=Reset  Esc=Quit ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	log.Printf("[Viewer] Starting with %d cameras", cameras.Len())
	eng.Run()
	_ = win.Close()
}

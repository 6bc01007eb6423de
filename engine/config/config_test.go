package config

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Title != "oxy arcball" || cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("window = %q %dx%d", cfg.Title, cfg.Width, cfg.Height)
	}
	if cfg.ArcballRadius != 0.5 || cfg.FovY != 45 || cfg.SceneRadius != 1 {
		t.Errorf("camera = radius %v fov %v scene %v", cfg.ArcballRadius, cfg.FovY, cfg.SceneRadius)
	}
	if cfg.ProfileInterval != 2*time.Second {
		t.Errorf("ProfileInterval = %v, want 2s", cfg.ProfileInterval)
	}
	if len(cfg.SnapshotDrag) != 2 || cfg.SnapshotDrag[0] != 200 || cfg.SnapshotDrag[1] != 60 {
		t.Errorf("SnapshotDrag = %v, want [200 60]", cfg.SnapshotDrag)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OXY_WIDTH", "800")
	t.Setenv("OXY_HEIGHT", "600")
	t.Setenv("OXY_ARCBALL_RADIUS", "-1")
	t.Setenv("OXY_SNAPSHOT_FORMAT", " PNG ")
	t.Setenv("OXY_SNAPSHOT_DRAG", "-40,12.5")
	t.Setenv("OXY_TITLE", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.ArcballRadius != -1 {
		t.Errorf("ArcballRadius = %v, want -1", cfg.ArcballRadius)
	}
	if cfg.SnapshotFormat != "png" {
		t.Errorf("SnapshotFormat = %q, want png", cfg.SnapshotFormat)
	}
	if cfg.SnapshotDrag[0] != -40 || cfg.SnapshotDrag[1] != 12.5 {
		t.Errorf("SnapshotDrag = %v, want [-40 12.5]", cfg.SnapshotDrag)
	}
	if cfg.Title != "oxy arcball" {
		t.Errorf("Title = %q, want fallback", cfg.Title)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		isCfg bool
	}{
		{"zero width", "OXY_WIDTH", "0", true},
		{"negative scene", "OXY_SCENE_RADIUS", "-2", true},
		{"near past far", "OXY_NEAR", "10", true},
		{"unknown format", "OXY_SNAPSHOT_FORMAT", "gif", true},
		{"no frames", "OXY_SNAPSHOT_FRAMES", "0", true},
		{"short drag", "OXY_SNAPSHOT_DRAG", "10", true},
		{"negative workers", "OXY_SNAPSHOT_WORKERS", "-1", true},
		{"not a number", "OXY_HEIGHT", "tall", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.isCfg {
				t.Errorf("errors.Is(%v, ErrInvalidConfig) = %v, want %v", err, got, tt.isCfg)
			}
		})
	}
}

func TestCameras(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.SceneRadius = 4

	set, err := cfg.Cameras()
	if err != nil {
		t.Fatalf("Cameras() error = %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	active, ok := set.Active()
	if !ok || active.Kind() != camera.KindArcball {
		t.Fatalf("Active() = %v, %v, want arcball", active, ok)
	}
	if active.Eye() != (mgl32.Vec3{0, 0, 8}) || active.Far() != 20 {
		t.Errorf("arcball eye %v far %v, want (0,0,8) and 20", active.Eye(), active.Far())
	}
	if active.Arcball().Radius() != cfg.ArcballRadius {
		t.Errorf("arcball radius = %v, want %v", active.Arcball().Radius(), cfg.ArcballRadius)
	}
	fp, err := set.Get(1)
	if err != nil || fp.Kind() != camera.KindFirstPerson {
		t.Fatalf("Get(1) = %v, %v, want first-person", fp, err)
	}
	if fp.Viewport() != camera.NewViewport(cfg.Width, cfg.Height) {
		t.Errorf("Viewport() = %v", fp.Viewport())
	}

	cfg.FovY = 0
	if _, err := cfg.Cameras(); !errors.Is(err, camera.ErrInvalidFovY) {
		t.Errorf("Cameras() error = %v, want %v", err, camera.ErrInvalidFovY)
	}
}

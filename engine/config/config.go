package config

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. OXY_WIDTH.
const Prefix = "OXY"

const (
	defaultTitle       = "oxy arcball"
	defaultSnapshotDir = "./frames"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds process configuration for the viewer and the snapshot tool.
type Config struct {
	Title  string `envconfig:"TITLE" default:"oxy arcball"`
	Width  int    `envconfig:"WIDTH" default:"1280"`
	Height int    `envconfig:"HEIGHT" default:"720"`

	// SceneRadius sizes the default cameras: eye at 2r, far plane at 5r.
	SceneRadius   float32 `envconfig:"SCENE_RADIUS" default:"1"`
	ArcballRadius float32 `envconfig:"ARCBALL_RADIUS" default:"0.5"`
	FovY          float32 `envconfig:"FOVY" default:"45"`
	Near          float32 `envconfig:"NEAR" default:"1"`
	CameraSpeed   float32 `envconfig:"CAMERA_SPEED" default:"0.1"`
	MoveScale     float32 `envconfig:"MOVE_SCALE" default:"1"`

	ProfileInterval time.Duration `envconfig:"PROFILE_INTERVAL" default:"2s"`

	SnapshotDir    string `envconfig:"SNAPSHOT_DIR" default:"./frames"`
	SnapshotFormat string `envconfig:"SNAPSHOT_FORMAT" default:"webp"`
	SnapshotFrames int    `envconfig:"SNAPSHOT_FRAMES" default:"24"`
	// SnapshotDrag is the pixel offset the scripted drag covers, as "dx,dy".
	SnapshotDrag []float32 `envconfig:"SNAPSHOT_DRAG" default:"200,60"`
	// SnapshotWorkers is how many frames are encoded at once; 0 keeps the renderer default.
	SnapshotWorkers int `envconfig:"SNAPSHOT_WORKERS" default:"0"`
}

// Load reads the configuration from OXY_* environment variables and validates it.
//
// Returns:
//   - *Config: the loaded configuration
//   - error: an envconfig parse error or a Validate failure
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Title = cmp.Or(strings.TrimSpace(cfg.Title), defaultTitle)
	cfg.SnapshotDir = cmp.Or(strings.TrimSpace(cfg.SnapshotDir), defaultSnapshotDir)
	cfg.SnapshotFormat = strings.ToLower(strings.TrimSpace(cfg.SnapshotFormat))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges the cameras and encoders depend on.
//
// Returns:
//   - error: wraps ErrInvalidConfig naming the first bad field
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SceneRadius <= 0:
		return fmt.Errorf("%w: scene radius %v", ErrInvalidConfig, c.SceneRadius)
	case c.Near <= 0 || c.Near >= c.SceneRadius*5:
		return fmt.Errorf("%w: near plane %v must be in (0, %v)", ErrInvalidConfig, c.Near, c.SceneRadius*5)
	case c.SnapshotFormat != "png" && c.SnapshotFormat != "webp":
		return fmt.Errorf("%w: snapshot format %q", ErrInvalidConfig, c.SnapshotFormat)
	case c.SnapshotFrames <= 0:
		return fmt.Errorf("%w: snapshot frames %d", ErrInvalidConfig, c.SnapshotFrames)
	case len(c.SnapshotDrag) != 2:
		return fmt.Errorf("%w: snapshot drag needs 2 values, got %d", ErrInvalidConfig, len(c.SnapshotDrag))
	case c.SnapshotWorkers < 0:
		return fmt.Errorf("%w: snapshot workers %d", ErrInvalidConfig, c.SnapshotWorkers)
	}
	return nil
}

// Cameras builds the default camera list: an arcball camera followed by a first-person
// camera, both looking at the scene from (0, 0, 2*SceneRadius).
//
// Returns:
//   - *camera.Set: the cameras, arcball active
//   - error: a camera configuration error
func (c *Config) Cameras() (*camera.Set, error) {
	opts := []camera.CameraBuilderOption{
		camera.WithViewport(camera.NewViewport(c.Width, c.Height)),
		camera.WithEye(mgl32.Vec3{0, 0, 2 * c.SceneRadius}),
		camera.WithFovY(c.FovY),
		camera.WithNear(c.Near),
		camera.WithFar(5 * c.SceneRadius),
		camera.WithSpeed(c.CameraSpeed),
	}

	arcball, err := camera.NewCamera(camera.KindArcball, append(opts, camera.WithArcballRadius(c.ArcballRadius))...)
	if err != nil {
		return nil, fmt.Errorf("arcball camera: %w", err)
	}
	firstPerson, err := camera.NewCamera(camera.KindFirstPerson, append(opts, camera.WithDirection(mgl32.Vec3{0, 0, -1}))...)
	if err != nil {
		return nil, fmt.Errorf("first-person camera: %w", err)
	}
	return camera.NewSet(arcball, firstPerson), nil
}

package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestUnprojectRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		eye    mgl32.Vec3
		target mgl32.Vec3
		vp     Viewport
		points []mgl32.Vec3
	}{
		{
			name:   "axis aligned",
			eye:    mgl32.Vec3{0, 0, 10},
			vp:     NewViewport(640, 480),
			points: []mgl32.Vec3{{0, 0, 0}, {1, 1, 0}, {-2, 0.5, 3}, {0.25, -1.5, -4}},
		},
		{
			name:   "oblique",
			eye:    mgl32.Vec3{3, 2, 5},
			vp:     NewViewport(800, 600),
			points: []mgl32.Vec3{{0, 0, 0}, {0.5, -0.5, 0.5}, {-1, 1, -1}},
		},
		{
			name:   "offset viewport",
			eye:    mgl32.Vec3{0, 4, 4},
			vp:     Viewport{X: 100, Y: 50, Width: 320, Height: 240},
			points: []mgl32.Vec3{{0, 0, 0}, {1, 0, -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := mgl32.LookAtV(tt.eye, tt.target, common.WorldUp)
			proj := mgl32.Perspective(mgl32.DegToRad(45), tt.vp.Aspect(), 1, 100)

			for _, p := range tt.points {
				win := mgl32.Project(p, view, proj, tt.vp.X, tt.vp.Y, tt.vp.Width, tt.vp.Height)
				ray, err := Unproject(win.X(), win.Y(), tt.eye, view, proj, tt.vp)
				if err != nil {
					t.Fatalf("Unproject() error = %v", err)
				}
				if l := ray.Direction.Len(); math.Abs(float64(l)-1) > 1e-5 {
					t.Errorf("|direction| = %v, want 1", l)
				}
				// distance from p to the ray's line
				dist := p.Sub(ray.Origin).Cross(ray.Direction).Len()
				if dist > 1e-3 {
					t.Errorf("point %v is %v away from the ray", p, dist)
				}
				if ray.Origin != tt.eye {
					t.Errorf("Origin = %v, want eye %v", ray.Origin, tt.eye)
				}
				// the unprojected point sits on the near plane
				if z := view.Mul4x1(ray.Point.Vec4(1)).Z(); math.Abs(float64(z)+1) > 1e-3 {
					t.Errorf("near-plane view z = %v, want -1", z)
				}
			}
		})
	}
}

func TestUnprojectCenterLooksForward(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 10}
	vp := NewViewport(640, 480)
	view := mgl32.LookAtV(eye, mgl32.Vec3{}, common.WorldUp)
	proj := mgl32.Perspective(mgl32.DegToRad(45), vp.Aspect(), 1, 100)

	x, y := vp.Center()
	ray, err := Unproject(x, y, eye, view, proj, vp)
	if err != nil {
		t.Fatalf("Unproject() error = %v", err)
	}
	if forward := (mgl32.Vec3{0, 0, -1}); !within(ray.Direction[:], forward[:], 1e-5) {
		t.Errorf("Direction = %v, want -Z", ray.Direction)
	}
	if got := ray.At(10); !within(got[:], []float32{0, 0, 0}, 1e-4) {
		t.Errorf("At(10) = %v, want origin", got)
	}
}

func TestUnprojectSingular(t *testing.T) {
	var zero mgl32.Mat4
	_, err := Unproject(10, 10, mgl32.Vec3{0, 0, 1}, mgl32.Ident4(), zero, NewViewport(640, 480))
	if !errors.Is(err, ErrSingularTransform) {
		t.Errorf("Unproject() error = %v, want %v", err, ErrSingularTransform)
	}
}

func TestViewportValidate(t *testing.T) {
	tests := []struct {
		name    string
		vp      Viewport
		wantErr bool
	}{
		{"regular", NewViewport(640, 480), false},
		{"offset", Viewport{X: 10, Y: 20, Width: 1, Height: 1}, false},
		{"zero width", NewViewport(0, 480), true},
		{"zero height", NewViewport(640, 0), true},
		{"negative", NewViewport(-1, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vp.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidViewport)
			}
		})
	}
}

func TestViewportAspectAndCenter(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Width: 800, Height: 400}
	if got := vp.Aspect(); got != 2 {
		t.Errorf("Aspect() = %v, want 2", got)
	}
	if x, y := vp.Center(); x != 410 || y != 220 {
		t.Errorf("Center() = (%v, %v), want (410, 220)", x, y)
	}
	if got := NewViewport(100, 0).Aspect(); got != 1 {
		t.Errorf("Aspect() with zero height = %v, want 1", got)
	}
}

func TestValidateProjection(t *testing.T) {
	tests := []struct {
		name           string
		fov, near, far float32
		want           error
	}{
		{"valid", 45, 0.1, 100, nil},
		{"zero fov", 0, 1, 5, ErrInvalidFovY},
		{"straight fov", 180, 1, 5, ErrInvalidFovY},
		{"nan fov", float32(math.NaN()), 1, 5, ErrInvalidFovY},
		{"zero near", 45, 0, 5, ErrInvalidClipPlanes},
		{"far before near", 45, 5, 1, ErrInvalidClipPlanes},
		{"equal planes", 45, 2, 2, ErrInvalidClipPlanes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProjection(tt.fov, tt.near, tt.far)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("validateProjection() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("validateProjection() error = %v, want %v", err, tt.want)
			}
		})
	}
}

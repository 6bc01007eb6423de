package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

func newArcballCamera(t *testing.T, radius float32) *cameraImpl {
	t.Helper()
	cam, err := NewCamera(KindArcball,
		WithViewport(NewViewport(640, 480)),
		WithEye(mgl32.Vec3{0, 0, 10}),
		WithFar(100),
		WithArcballRadius(radius),
	)
	if err != nil {
		t.Fatalf("NewCamera() error = %v", err)
	}
	return cam.(*cameraImpl)
}

// windowCoords projects a world point to screen coordinates with the camera's base view.
func windowCoords(c *cameraImpl, p mgl32.Vec3) (float32, float32) {
	vp := c.viewport
	win := mgl32.Project(p, c.baseView, c.projectionMatrix, vp.X, vp.Y, vp.Width, vp.Height)
	return win.X(), win.Y()
}

// within reports whether every element of a and b differs by at most tol. mgl32's
// ApproxEqualThreshold is relative and rejects float32 residue next to an exact zero.
func within(a, b []float32, tol float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}

func quatWithin(a, b mgl32.Quat, tol float32) bool {
	return within([]float32{a.W, a.V[0], a.V[1], a.V[2]}, []float32{b.W, b.V[0], b.V[1], b.V[2]}, tol)
}

func quatAngleAxis(q mgl32.Quat) (float64, mgl32.Vec3) {
	w := math.Max(-1, math.Min(1, float64(q.W)))
	return 2 * math.Acos(w), common.SafeNormalize(q.V, mgl32.Vec3{})
}

func TestArcballHorizontalDragRotatesAboutUp(t *testing.T) {
	c := newArcballCamera(t, 0.5)

	c.MouseClick(320, 240)
	c.MouseMove(420, 240)

	angle, axis := quatAngleAxis(c.Arcball().Quaternion())
	if angle <= 0 || angle >= math.Pi/2 {
		t.Fatalf("rotation angle = %v rad, want in (0, pi/2)", angle)
	}
	// the ray misses a 0.5 sphere seen from 10 units, so the sample lands on the silhouette (~87°)
	if deg := angle * 180 / math.Pi; math.Abs(deg-87.1) > 1 {
		t.Errorf("rotation angle = %.2f°, want ~87.1°", deg)
	}
	if up := (mgl32.Vec3{0, 1, 0}); !within(axis[:], up[:], 1e-3) {
		t.Errorf("rotation axis = %v, want +Y", axis)
	}
}

func TestArcballSphereHitIsSmallerRotation(t *testing.T) {
	c := newArcballCamera(t, 2)

	c.MouseClick(320, 240)
	c.MouseMove(420, 240)

	angle, axis := quatAngleAxis(c.Arcball().Quaternion())
	// a direct hit at 100px lands ~48° from the center sample
	if angle <= 0 || angle >= math.Pi/3 {
		t.Errorf("rotation angle = %v rad, want in (0, pi/3)", angle)
	}
	if axis.Y() <= 0.999 {
		t.Errorf("rotation axis = %v, want +Y", axis)
	}
}

func TestSphereCoordsUnitLength(t *testing.T) {
	c := newArcballCamera(t, 2)
	for x := float32(0); x <= 640; x += 20 {
		for y := float32(0); y <= 480; y += 20 {
			ray, ok := c.pickRay(x, y)
			if !ok {
				t.Fatalf("pickRay(%v, %v) failed", x, y)
			}
			p := c.arcball.sphereCoords(ray)
			if l := p.Len(); math.Abs(float64(l)-1) > 1e-4 {
				t.Fatalf("sphereCoords(%v, %v) = %v, |v| = %v, want 1", x, y, p, l)
			}
		}
	}
}

func TestSphereAndEdgeCoordsConverge(t *testing.T) {
	c := newArcballCamera(t, 0.5)
	a := c.arcball

	hits := func(x float32) bool {
		ray, _ := c.pickRay(x, 240)
		qb := ray.Origin.Dot(ray.Direction)
		return qb*qb-ray.Direction.Dot(ray.Direction)*(a.zoom2-a.sphere2) > 0
	}

	// bisect for the silhouette along the horizontal center line
	lo, hi := float32(320), float32(640)
	if !hits(lo) || hits(hi) {
		t.Fatalf("expected center to hit and edge to miss the sphere")
	}
	for range 40 {
		mid := (lo + hi) / 2
		if hits(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	ray, _ := c.pickRay(lo, 240)
	onSphere := a.sphereCoords(ray)
	onEdge := a.edgeCoords(ray.Origin, ray.Direction)
	if d := onSphere.Sub(onEdge).Len(); d > 2e-2 {
		t.Errorf("sphere %v and edge %v differ by %v at the silhouette", onSphere, onEdge, d)
	}

	outside, _ := c.pickRay(hi+50, 240)
	if l := a.sphereCoords(outside).Len(); math.Abs(float64(l)-1) > 1e-4 {
		t.Errorf("edge fallback |v| = %v, want 1", l)
	}
}

func TestArcballSamePointKeepsRotation(t *testing.T) {
	t.Run("sphere", func(t *testing.T) {
		c := newArcballCamera(t, 2)
		c.MouseClick(320, 240)
		c.MouseMove(400, 260)
		before := c.Arcball().Quaternion()

		c.MouseClick(350, 250)
		c.MouseMove(350, 250)
		if got := c.Arcball().Quaternion(); got != before {
			t.Errorf("quat = %v, want unchanged %v", got, before)
		}
	})

	t.Run("planar", func(t *testing.T) {
		c := newArcballCamera(t, -0.5)
		c.MouseClick(300, 200)
		c.MouseMove(400, 200)
		before := c.Arcball().Quaternion()

		c.MouseMove(400, 200)
		if got := c.Arcball().Quaternion(); got != before {
			t.Errorf("quat = %v, want unchanged %v", got, before)
		}
	})
}

func TestArcballSphereAccumulatesAgainstGestureStart(t *testing.T) {
	stepped := newArcballCamera(t, 2)
	stepped.MouseClick(320, 240)
	stepped.MouseMove(360, 250)
	stepped.MouseMove(400, 260)

	direct := newArcballCamera(t, 2)
	direct.MouseClick(320, 240)
	direct.MouseMove(400, 260)

	if !quatWithin(stepped.Arcball().Quaternion(), direct.Arcball().Quaternion(), 1e-5) {
		t.Errorf("stepped %v != direct %v", stepped.Arcball().Quaternion(), direct.Arcball().Quaternion())
	}
}

func TestArcballPlanarComposition(t *testing.T) {
	c := newArcballCamera(t, -0.5)
	a := c.Arcball()
	if !a.Planar() {
		t.Fatal("radius -0.5 should select planar mode")
	}

	// plane at z=5; plane coordinates are (y, -x) because out = cross(+Z, +Y) = -X
	half := float32(math.Pi / 2)
	points := []mgl32.Vec3{
		{0, 0, 5},
		{0, half, 5},     // d = (pi/2, 0)
		{-half, half, 5}, // d = (0, pi/2)
		{-half, 0, 5},    // d = (-pi/2, 0)
	}

	x, y := windowCoords(c, points[0])
	c.MouseClick(x, y)
	for _, p := range points[1:] {
		x, y = windowCoords(c, p)
		c.MouseMove(x, y)
	}

	qA := mgl32.QuatRotate(half, mgl32.Vec3{-1, 0, 0})
	qB := mgl32.QuatRotate(half, mgl32.Vec3{0, -1, 0})
	qC := mgl32.QuatRotate(half, mgl32.Vec3{1, 0, 0})
	want := qA.Mul(qB).Mul(qC).Mat4()

	got := a.Rotation()
	if !within(got[:], want[:], 2e-3) {
		t.Errorf("rotation = %v, want %v", got, want)
	}
	// conjugating -Y by a -90° X turn gives a +90° turn about +Z
	aboutZ := mgl32.QuatRotate(half, mgl32.Vec3{0, 0, 1}).Mat4()
	if !within(got[:], aboutZ[:], 2e-3) {
		t.Errorf("rotation = %v, want 90° about +Z", got)
	}
	reversed := qC.Mul(qB).Mul(qA).Mat4()
	if within(got[:], reversed[:], 1e-2) {
		t.Errorf("rotation should depend on drag order")
	}
}

func TestArcballPlanarAccumulatesPerSample(t *testing.T) {
	half := float32(math.Pi / 4)

	stepped := newArcballCamera(t, -0.5)
	x, y := windowCoords(stepped, mgl32.Vec3{0, 0, 5})
	stepped.MouseClick(x, y)
	x, y = windowCoords(stepped, mgl32.Vec3{0, half, 5})
	stepped.MouseMove(x, y)
	x, y = windowCoords(stepped, mgl32.Vec3{-half, half, 5})
	stepped.MouseMove(x, y)

	direct := newArcballCamera(t, -0.5)
	x, y = windowCoords(direct, mgl32.Vec3{0, 0, 5})
	direct.MouseClick(x, y)
	x, y = windowCoords(direct, mgl32.Vec3{-half, half, 5})
	direct.MouseMove(x, y)

	steppedRot, directRot := stepped.Arcball().Rotation(), direct.Arcball().Rotation()
	if within(steppedRot[:], directRot[:], 1e-3) {
		t.Errorf("planar drags should accumulate per sample, got identical rotations")
	}
	if got, want := stepped.Arcball().Start(), stepped.Arcball().Current(); got != want {
		t.Errorf("planar start = %v, want advanced to current %v", got, want)
	}
}

func TestArcballSetupPlanarMode(t *testing.T) {
	c := newArcballCamera(t, 0.5)
	if err := c.SetupArcball(-1); err != nil {
		t.Fatalf("SetupArcball() error = %v", err)
	}
	a := c.Arcball()
	if !a.Planar() {
		t.Fatal("Planar() = false after SetupArcball(-1)")
	}

	c.MouseClick(320, 240)
	if a.State() != ArcballPlaneDragging {
		t.Errorf("State() = %v, want %v", a.State(), ArcballPlaneDragging)
	}
	// planar samples live in plane coordinates with a zero third component,
	// sphere samples are unit vectors
	if a.Start().Z() != 0 {
		t.Errorf("Start() = %v, want planar coordinates", a.Start())
	}
	c.MouseMove(400, 300)
	if a.Current().Z() != 0 {
		t.Errorf("Current() = %v, want planar coordinates", a.Current())
	}
	if !common.IsFiniteMat4(a.Rotation()) {
		t.Errorf("Rotation() = %v, want finite", a.Rotation())
	}

	if err := c.SetupArcball(0.5); err != nil {
		t.Fatalf("SetupArcball() error = %v", err)
	}
	c.MouseClick(320, 240)
	if a.Planar() || a.State() != ArcballSphereDragging {
		t.Errorf("Planar() = %v, State() = %v, want sphere mode", a.Planar(), a.State())
	}
}

func TestArcballFarOutsideStaysFinite(t *testing.T) {
	tests := []struct {
		name   string
		radius float32
		x, y   float32
	}{
		{"far right", 0.5, 1_000_000, 240},
		{"far left", 0.5, -1_000_000, 240},
		{"far up", 0.5, 320, 1_000_000},
		{"far corner", 0.5, 1_000_000, -1_000_000},
		{"planar far right", -0.5, 1_000_000, 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newArcballCamera(t, tt.radius)
			c.MouseClick(320, 240)
			c.MouseMove(tt.x, tt.y)
			c.Update()

			q := c.Arcball().Quaternion()
			if !common.IsFinite(q.W) || !common.IsFiniteVec3(q.V) {
				t.Fatalf("quat = %v, want finite", q)
			}
			if !common.IsFiniteMat4(c.ViewMatrix()) {
				t.Errorf("view = %v, want finite", c.ViewMatrix())
			}
		})
	}
}

func TestArcballRotationStaysOrthonormal(t *testing.T) {
	c := newArcballCamera(t, 2)
	c.MouseClick(320, 240)
	for i := range 200 {
		fi := float64(i)
		c.MouseMove(320+float32(150*math.Cos(fi*0.1)), 240+float32(150*math.Sin(fi*0.13)))
	}
	for i := range 5 {
		c.MouseClick(float32(300+i*10), 240)
		c.MouseMove(float32(340+i*10), float32(250+i*5))
	}

	q := c.Arcball().Quaternion()
	if l := q.Len(); math.Abs(float64(l)-1) > 1e-5 {
		t.Errorf("|quat| = %v, want 1", l)
	}
	r := c.Arcball().Rotation().Mat3()
	rtr, ident := r.Transpose().Mul3(r), mgl32.Ident3()
	if !within(rtr[:], ident[:], 1e-5) {
		t.Errorf("rotation is not orthonormal: %v", r)
	}
}

func TestArcballIgnoresMoveWhileIdle(t *testing.T) {
	c := newArcballCamera(t, 0.5)
	c.MouseMove(400, 300)
	if got := c.Arcball().Quaternion(); got != mgl32.QuatIdent() {
		t.Errorf("quat = %v, want identity", got)
	}
	if c.Arcball().State() != ArcballIdle {
		t.Errorf("State() = %v, want idle", c.Arcball().State())
	}
}

func TestArcballReset(t *testing.T) {
	c := newArcballCamera(t, 0.5)
	c.MouseClick(320, 240)
	c.MouseMove(420, 300)
	c.Reset()
	c.Update()

	if got := c.Arcball().Quaternion(); got != mgl32.QuatIdent() {
		t.Errorf("quat = %v, want identity", got)
	}
	if c.Arcball().State() != ArcballIdle {
		t.Errorf("State() = %v, want idle", c.Arcball().State())
	}
	want := mgl32.LookAtV(c.Eye(), c.Target(), common.WorldUp)
	if view := c.ViewMatrix(); !within(view[:], want[:], 1e-5) {
		t.Errorf("view = %v, want plain look-at %v", c.ViewMatrix(), want)
	}
}

func TestArcballUpdateAppliesRotationLast(t *testing.T) {
	c := newArcballCamera(t, 0.5)
	c.MouseClick(320, 240)
	c.MouseMove(380, 280)
	c.Update()

	want := mgl32.LookAtV(c.Eye(), c.Target(), common.WorldUp).Mul4(c.Arcball().Rotation())
	if view := c.ViewMatrix(); !within(view[:], want[:], 1e-5) {
		t.Errorf("view = %v, want %v", c.ViewMatrix(), want)
	}
}

func TestArcballEdgeParallelRayStaysOnSilhouette(t *testing.T) {
	a := NewArcball()
	a.Setup(mgl32.Vec3{0, 0, 10}, 0.5)

	// a ray perpendicular to the eye axis never reaches the silhouette plane
	p := a.edgeCoords(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{1, 0, 0})
	if !common.IsFiniteVec3(p) || math.Abs(float64(p.Len())-1) > 1e-5 {
		t.Fatalf("edgeCoords() = %v, want finite unit vector", p)
	}
	if p.X() <= 0 {
		t.Errorf("edgeCoords() = %v, want on the +X side", p)
	}
}

func TestArcballStateString(t *testing.T) {
	tests := []struct {
		state ArcballState
		want  string
	}{
		{ArcballIdle, "idle"},
		{ArcballSphereDragging, "sphere-dragging"},
		{ArcballPlaneDragging, "plane-dragging"},
		{ArcballState(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("ArcballState(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

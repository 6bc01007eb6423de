package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ArcballState is the gesture state of an Arcball.
type ArcballState int

const (
	// ArcballIdle means no gesture has started since construction, Setup or Reset.
	ArcballIdle ArcballState = iota
	// ArcballSphereDragging means pointer samples are projected onto the virtual sphere.
	ArcballSphereDragging
	// ArcballPlaneDragging means pointer samples are projected onto the trackball plane.
	ArcballPlaneDragging
)

func (s ArcballState) String() string {
	switch s {
	case ArcballIdle:
		return "idle"
	case ArcballSphereDragging:
		return "sphere-dragging"
	case ArcballPlaneDragging:
		return "plane-dragging"
	default:
		return "unknown"
	}
}

// Arcball converts pointer rays into an accumulated orientation.
//
// In sphere mode (radius > 0) the pointer is projected onto a sphere of that radius centered at
// the world origin; rays that miss the sphere are projected onto its silhouette. Every sample of
// a gesture is measured against the orientation snapshot taken at MouseClick.
//
// In planar mode (radius <= 0) the pointer is projected onto a plane facing the eye and each
// sample rotates relative to the previous sample, so the snapshot advances after every move.
//
// Arcball is not safe for concurrent use; the owning camera serializes access.
type Arcball struct {
	radius    float32
	sphere2   float32
	zoom      float32
	zoom2     float32
	edge      float32 // distance from the origin to the plane of the visible silhouette
	planeDist float32
	planar    bool

	eyeDir mgl32.Vec3
	up     mgl32.Vec3
	out    mgl32.Vec3

	quat mgl32.Quat
	last mgl32.Quat
	next mgl32.Quat

	start mgl32.Vec3
	curr  mgl32.Vec3
	state ArcballState
}

// NewArcball creates an arcball with identity rotation and a unit sphere seen from +Z.
// Setup must be called once the eye position is known.
//
// Returns:
//   - *Arcball: the newly created arcball
func NewArcball() *Arcball {
	return &Arcball{
		radius:    1,
		sphere2:   1,
		zoom:      1,
		zoom2:     1,
		edge:      1,
		planeDist: 0.5,
		eyeDir:    mgl32.Vec3{0, 0, 1},
		up:        mgl32.Vec3{0, 1, 0},
		out:       mgl32.Vec3{1, 0, 0},
		quat:      mgl32.QuatIdent(),
		last:      mgl32.QuatIdent(),
		next:      mgl32.QuatIdent(),
		start:     mgl32.Vec3{0, 0, 1},
		curr:      mgl32.Vec3{0, 0, 1},
	}
}

// Setup caches the eye-dependent quantities and selects the projection mode.
// A radius <= 0 selects planar (trackball) mode until the next Setup. The accumulated
// rotation is kept; any gesture in progress ends.
//
// The cached distances are only refreshed here. Moving the eye without calling Setup again
// leaves them stale.
//
// Parameters:
//   - eye: world-space eye position
//   - radius: sphere radius, or a non-positive value for planar mode
func (a *Arcball) Setup(eye mgl32.Vec3, radius float32) {
	a.zoom2 = eye.Dot(eye)
	a.zoom = common.Sqrt32(a.zoom2)
	a.radius = radius
	a.sphere2 = radius * radius
	a.eyeDir = common.SafeNormalize(eye, mgl32.Vec3{0, 0, 1})
	a.edge = 0
	if a.zoom > common.Epsilon {
		a.edge = a.sphere2 / a.zoom
	}

	if radius <= 0 {
		a.planar = true
		a.up = common.WorldUp
		a.out = a.eyeDir.Cross(a.up)
		a.planeDist = -radius * a.zoom
	} else {
		a.planar = false
	}
	a.state = ArcballIdle
}

// Reset returns the arcball to the identity rotation and ends any gesture.
func (a *Arcball) Reset() {
	a.quat = mgl32.QuatIdent()
	a.last = mgl32.QuatIdent()
	a.next = mgl32.QuatIdent()
	a.state = ArcballIdle
}

// Click starts a gesture: it snapshots the current rotation and records the grabbed point.
//
// Parameters:
//   - ray: the world-space pick ray under the pointer
func (a *Arcball) Click(ray Ray) {
	a.last = a.quat
	if a.planar {
		a.start = a.planarCoords(ray)
		a.state = ArcballPlaneDragging
		return
	}
	a.start = a.sphereCoords(ray)
	a.state = ArcballSphereDragging
}

// Move drags the grabbed point to the point under ray. Ignored while idle.
//
// Parameters:
//   - ray: the world-space pick ray under the pointer
func (a *Arcball) Move(ray Ray) {
	switch a.state {
	case ArcballPlaneDragging:
		a.movePlanar(ray)
	case ArcballSphereDragging:
		a.moveSphere(ray)
	}
}

func (a *Arcball) moveSphere(ray Ray) {
	a.curr = a.sphereCoords(ray)
	if a.curr == a.start {
		a.quat = a.last
		return
	}

	// half-angle construction: cos(θ/2) and sin(θ/2) straight from cos(θ), no acos
	cosa := mgl32.Clamp(a.start.Dot(a.curr), -1, 1)
	sinHalf := common.Sqrt32((1 - cosa) * 0.5)
	cosHalf := common.Sqrt32((1 + cosa) * 0.5)

	axis := a.start.Cross(a.curr)
	if axis.Len() < common.Epsilon {
		if cosa > 0 {
			a.quat = a.last
			return
		}
		axis = perpendicular(a.start)
	}

	a.next = mgl32.Quat{W: cosHalf, V: axis.Normalize().Mul(sinHalf)}
	a.quat = a.last.Mul(a.next).Normalize()
}

func (a *Arcball) movePlanar(ray Ray) {
	a.curr = a.planarCoords(ray)
	if a.curr == a.start {
		return
	}

	d := a.curr.Sub(a.start)
	angle := float64(d.Len() * 0.5)

	// p is perpendicular to d in the plane
	p := a.out.Mul(d[0]).Sub(a.up.Mul(d[1]))
	if p.Len() < common.Epsilon {
		return
	}
	p = p.Normalize().Mul(float32(math.Sin(angle)))

	a.next = mgl32.Quat{W: float32(math.Cos(angle)), V: p}
	a.quat = a.last.Mul(a.next).Normalize()

	a.last = a.quat
	a.start = a.curr
}

// sphereCoords intersects ray with the arcball sphere and returns the hit point as a unit vector.
// Rays that miss the sphere fall back to edgeCoords.
func (a *Arcball) sphereCoords(ray Ray) mgl32.Vec3 {
	eye := ray.Origin
	m := ray.Direction

	// eye + t*m against |p|^2 = sphere^2
	qa := m.Dot(m)
	qb := eye.Dot(m)
	root := qb*qb - qa*(a.zoom2-a.sphere2)
	if root <= 0 || qa < common.Epsilon {
		return a.edgeCoords(eye, m)
	}
	t := (-qb - common.Sqrt32(root)) / qa
	return common.SafeNormalize(eye.Add(m.Mul(t)), a.eyeDir)
}

// edgeCoords projects a ray that misses the sphere onto the sphere's visible silhouette.
// The ray is intersected with the plane of the silhouette circle (distance edge along eyeDir),
// then pulled toward the eye axis until it meets the sphere. The pull direction falls back to
// the ray's component perpendicular to the eye axis when the ray is parallel to that plane, so
// the result is always a finite unit vector.
func (a *Arcball) edgeCoords(eye, m mgl32.Vec3) mgl32.Vec3 {
	center := a.eyeDir.Mul(a.edge)
	circle := common.Sqrt32(a.sphere2 - a.edge*a.edge)

	perp := m.Sub(a.eyeDir.Mul(a.eyeDir.Dot(m)))
	dir := perp

	denom := a.eyeDir.Dot(m)
	if denom < -common.Epsilon {
		t := (a.edge - a.zoom) / denom
		hit := eye.Add(m.Mul(t))
		if toward := hit.Sub(center); toward.Len() > common.Epsilon {
			dir = toward
		}
	}
	dir = common.SafeNormalize(dir, perpendicular(a.eyeDir))

	// nearest intersection of the segment hit -> center with the sphere lies on the silhouette circle
	return common.SafeNormalize(center.Add(dir.Mul(circle)), a.eyeDir)
}

// planarCoords intersects ray with the trackball plane and returns its (up, out) coordinates.
// A ray parallel to the plane returns the gesture start so the sample is a no-op.
func (a *Arcball) planarCoords(ray Ray) mgl32.Vec3 {
	m := ray.Direction
	denom := a.eyeDir.Dot(m)
	if float32(math.Abs(float64(denom))) < common.Epsilon {
		return a.start
	}
	t := (a.planeDist - a.zoom) / denom
	d := ray.Origin.Add(m.Mul(t))
	return mgl32.Vec3{d.Dot(a.up), d.Dot(a.out), 0}
}

// Rotation returns the accumulated rotation as a 4x4 matrix.
func (a *Arcball) Rotation() mgl32.Mat4 {
	return a.quat.Mat4()
}

// Quaternion returns the accumulated rotation as a unit quaternion.
func (a *Arcball) Quaternion() mgl32.Quat {
	return a.quat
}

// State returns the current gesture state.
func (a *Arcball) State() ArcballState {
	return a.state
}

// Planar reports whether the arcball is in trackball (plane) mode.
func (a *Arcball) Planar() bool {
	return a.planar
}

// Radius returns the radius passed to the last Setup.
func (a *Arcball) Radius() float32 {
	return a.radius
}

// Zoom returns the eye distance cached by the last Setup.
func (a *Arcball) Zoom() float32 {
	return a.zoom
}

// Edge returns the distance along the eye axis to the silhouette plane.
func (a *Arcball) Edge() float32 {
	return a.edge
}

// Start returns the most recent gesture anchor in the active parameterization.
func (a *Arcball) Start() mgl32.Vec3 {
	return a.start
}

// Current returns the most recent drag sample in the active parameterization.
func (a *Arcball) Current() mgl32.Vec3 {
	return a.curr
}

// perpendicular returns a unit vector orthogonal to v.
func perpendicular(v mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{1, 0, 0}
	if math.Abs(float64(v[0])) > 0.9 {
		axis = mgl32.Vec3{0, 1, 0}
	}
	return common.SafeNormalize(v.Cross(axis), mgl32.Vec3{0, 0, 1})
}

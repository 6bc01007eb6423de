package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Polyline is a connected strip of world-space points drawn in a single color.
type Polyline struct {
	Points []mgl32.Vec3
	Color  [3]float32
}

// GizmoAxisSteps is the number of straight pieces each gizmo axis is split into.
const GizmoAxisSteps = 16

// Gizmo returns the orientation gizmo used by every renderer: the great circles of a sphere of
// the given radius in the XY, YZ and XZ planes, followed by the positive X, Y and Z axes drawn
// to 1.5x the radius in red, green and blue.
//
// Parameters:
//   - radius: the sphere radius in world units
//   - segments: straight pieces per circle, raised to 3 when lower
//
// Returns:
//   - []Polyline: three circles then three axes
func Gizmo(radius float32, segments int) []Polyline {
	n := max(segments, 3)

	circle := func(u, v mgl32.Vec3) []mgl32.Vec3 {
		pts := make([]mgl32.Vec3, 0, n+1)
		for i := 0; i <= n; i++ {
			t := 2 * math.Pi * float64(i) / float64(n)
			pts = append(pts, u.Mul(radius*float32(math.Cos(t))).Add(v.Mul(radius*float32(math.Sin(t)))))
		}
		return pts
	}
	axis := func(dir mgl32.Vec3) []mgl32.Vec3 {
		pts := make([]mgl32.Vec3, 0, GizmoAxisSteps+1)
		for i := 0; i <= GizmoAxisSteps; i++ {
			pts = append(pts, dir.Mul(1.5*radius*float32(i)/GizmoAxisSteps))
		}
		return pts
	}

	x, y, z := mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}
	grey := [3]float32{0.55, 0.55, 0.6}
	return []Polyline{
		{circle(x, y), grey},
		{circle(y, z), grey},
		{circle(x, z), grey},
		{axis(x), [3]float32{0.9, 0.25, 0.2}},
		{axis(y), [3]float32{0.3, 0.85, 0.3}},
		{axis(z), [3]float32{0.25, 0.45, 0.95}},
	}
}

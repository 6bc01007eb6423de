package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a world-space pick ray: Origin + t*Direction.
type Ray struct {
	// Origin is the camera eye the ray starts from.
	Origin mgl32.Vec3
	// Point is the unprojected screen point on the near plane.
	Point mgl32.Vec3
	// Direction is normalize(Point - Origin).
	Direction mgl32.Vec3
}

// At returns the point Origin + t*Direction.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Unproject maps a screen coordinate onto the near plane and builds the ray from the eye through it.
// It is the exact inverse of mgl32.Project with the same view, projection and viewport, so
// Update and Unproject share one convention (OpenGL clip space, bottom-left window origin).
// The caller must already have flipped y (invertY = framebufferHeight - y - 1).
//
// Parameters:
//   - x, y: screen coordinates, origin bottom-left
//   - eye: world-space camera position
//   - view: the look-at view matrix (without any arcball rotation)
//   - proj: the perspective projection matrix
//   - vp: the viewport the projection maps onto
//
// Returns:
//   - Ray: the world-space ray with a normalized direction
//   - error: wraps ErrSingularTransform if proj*view cannot be inverted
func Unproject(x, y float32, eye mgl32.Vec3, view, proj mgl32.Mat4, vp Viewport) (Ray, error) {
	point, err := mgl32.UnProject(mgl32.Vec3{x, y, 0}, view, proj, vp.X, vp.Y, vp.Width, vp.Height)
	if err != nil {
		return Ray{}, fmt.Errorf("%w: %v", ErrSingularTransform, err)
	}
	// third row of the view rotation is the camera's backward axis
	forward := mgl32.Vec3{-view[2], -view[6], -view[10]}
	return Ray{
		Origin:    eye,
		Point:     point,
		Direction: common.SafeNormalize(point.Sub(eye), forward),
	}, nil
}

package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a functional option for configuring a camera in NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithViewport sets the render-target rectangle.
//
// Parameters:
//   - vp: the viewport
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's viewport
func WithViewport(vp Viewport) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.viewport = vp
	}
}

// WithEye sets the world-space camera position.
//
// Parameters:
//   - eye: the camera position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's eye
func WithEye(eye mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.eye = eye
	}
}

// WithTarget sets the look-at point. Ignored by first-person cameras, which derive it from
// the eye and direction.
//
// Parameters:
//   - target: the world-space target
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's target
func WithTarget(target mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = target
	}
}

// WithFovY sets the vertical field of view in degrees.
//
// Parameters:
//   - degrees: field of view, in (0, 180)
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFovY(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fovYDegrees = degrees
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithSpeed sets the factor Translate scales its input by.
//
// Parameters:
//   - speed: world units per unit of input
//
// Returns:
//   - CameraBuilderOption: a function that sets the translation speed
func WithSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.speed = speed
	}
}

// WithArcballRadius sets the radius passed to the arcball's initial Setup.
// A radius <= 0 starts the camera in planar (trackball) mode.
//
// Parameters:
//   - radius: arcball sphere radius
//
// Returns:
//   - CameraBuilderOption: a function that sets the arcball radius
func WithArcballRadius(radius float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.arcballRadius = radius
	}
}

// WithDirection sets the initial look direction of a first-person camera.
//
// Parameters:
//   - dir: the look direction, normalized on construction
//
// Returns:
//   - CameraBuilderOption: a function that sets the direction
func WithDirection(dir mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.firstPerson.dir = dir
	}
}

// WithLookSensitivity sets how many radians a first-person camera turns per pixel of pointer motion.
//
// Parameters:
//   - radiansPerPixel: look sensitivity
//
// Returns:
//   - CameraBuilderOption: a function that sets the sensitivity
func WithLookSensitivity(radiansPerPixel float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.firstPerson.sensitivity = radiansPerPixel
	}
}

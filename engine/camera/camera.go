package camera

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind selects a camera's navigation behavior.
type Kind int

const (
	// KindLookAt is a plain look-at camera; pointer input is ignored.
	KindLookAt Kind = iota
	// KindFirstPerson looks around from the eye, steering a direction vector with the pointer.
	KindFirstPerson
	// KindArcball orbits the scene with the arcball rotation engine.
	KindArcball
)

func (k Kind) String() string {
	switch k {
	case KindLookAt:
		return "look-at"
	case KindFirstPerson:
		return "first-person"
	case KindArcball:
		return "arcball"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type cameraImpl struct {
	mu *sync.Mutex

	kind Kind

	viewport Viewport
	eye      mgl32.Vec3
	target   mgl32.Vec3

	fovYDegrees float32
	near        float32
	far         float32
	speed       float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	// baseView is the look-at matrix before the arcball rotation; pointer rays are unprojected with it.
	baseView mgl32.Mat4

	// per-kind state, only the field matching kind is used
	firstPerson   firstPerson
	arcball       *Arcball
	arcballRadius float32
}

// Camera is a perspective camera with one of three navigation kinds.
// View and projection matrices are derived state, rebuilt by Update once per frame.
// Screen coordinates use a bottom-left origin; the input collaborator flips y.
type Camera interface {
	// Kind returns the navigation kind chosen at construction.
	//
	// Returns:
	//   - Kind: the camera kind
	Kind() Kind

	// Eye returns the world-space camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// SetEye moves the camera. Arcball cameras re-run their setup with the current radius.
	//
	// Parameters:
	//   - eye: the new world-space position
	//
	// Returns:
	//   - error: ErrDegenerateView if eye coincides with the target
	SetEye(eye mgl32.Vec3) error

	// Target returns the world-space point the camera looks at.
	// First-person cameras derive it from the eye and direction on Update.
	//
	// Returns:
	//   - mgl32.Vec3: the target
	Target() mgl32.Vec3

	// SetTarget changes the look-at point.
	//
	// Parameters:
	//   - target: the new world-space target
	//
	// Returns:
	//   - error: ErrDegenerateView if target coincides with the eye
	SetTarget(target mgl32.Vec3) error

	// Direction returns the normalized view direction (target - eye for look-at and arcball cameras).
	//
	// Returns:
	//   - mgl32.Vec3: the unit view direction
	Direction() mgl32.Vec3

	// Viewport returns the render-target rectangle.
	//
	// Returns:
	//   - Viewport: the current viewport
	Viewport() Viewport

	// SetViewport replaces the render-target rectangle. The previous viewport is kept on error.
	//
	// Parameters:
	//   - vp: the new viewport
	//
	// Returns:
	//   - error: ErrInvalidViewport for a zero-area viewport
	SetViewport(vp Viewport) error

	// FovY returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	FovY() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetProjection replaces the perspective parameters. The previous values are kept on error.
	//
	// Parameters:
	//   - fovYDegrees: vertical field of view in degrees, in (0, 180)
	//   - near: near plane distance, > 0
	//   - far: far plane distance, > near
	//
	// Returns:
	//   - error: ErrInvalidFovY or ErrInvalidClipPlanes
	SetProjection(fovYDegrees, near, far float32) error

	// Speed returns the translation speed factor.
	//
	// Returns:
	//   - float32: world units per unit of Translate input
	Speed() float32

	// ViewMatrix returns the view matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the projection matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view from the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix (column-major)
	ViewProjectionMatrix() mgl32.Mat4

	// Uniform packs the current matrices and eye for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block
	Uniform() GPUCameraUniform

	// Translate moves eye and target together by speed * delta.
	//
	// Parameters:
	//   - delta: world-space movement before scaling
	Translate(delta mgl32.Vec3)

	// MouseClick starts a pointer gesture at a screen coordinate (bottom-left origin).
	//
	// Parameters:
	//   - x, y: screen coordinates
	MouseClick(x, y float32)

	// MouseMove continues the pointer gesture at a screen coordinate (bottom-left origin).
	//
	// Parameters:
	//   - x, y: screen coordinates
	MouseMove(x, y float32)

	// Update rebuilds the projection and view matrices. Call once per frame.
	Update()

	// Reset restores the initial orientation: identity rotation for arcball cameras,
	// the initial direction for first-person cameras, nothing for look-at cameras.
	Reset()

	// SetupArcball recomputes the arcball's eye-dependent state for the given radius.
	// A radius <= 0 switches to planar (trackball) mode.
	//
	// Parameters:
	//   - radius: the arcball sphere radius
	//
	// Returns:
	//   - error: ErrNotArcball for other kinds
	SetupArcball(radius float32) error

	// Arcball returns the rotation engine of an arcball camera, or nil for other kinds.
	// The returned engine must only be read while no other goroutine drives the camera.
	//
	// Returns:
	//   - *Arcball: the engine or nil
	Arcball() *Arcball

	// ArcballStatus reads the arcball mode and drag state under the camera's lock, so it is safe
	// to call from a goroutine other than the one feeding input.
	//
	// Returns:
	//   - bool: true in planar (trackball) mode
	//   - ArcballState: the drag state
	//   - bool: false for cameras that are not arcball cameras
	ArcballStatus() (planar bool, state ArcballState, ok bool)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera of the given kind. Defaults: 640x480 viewport, eye (0,0,3) looking
// at the origin, 45° field of view, near 1, far 5, speed 0.1, arcball radius 0.5.
// The configuration is validated after all options are applied, and arcball cameras run Setup
// with the final eye. Matrices are built once before returning.
//
// Parameters:
//   - kind: the navigation kind
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
//   - error: a configuration error wrapping one of the Err* sentinels
func NewCamera(kind Kind, options ...CameraBuilderOption) (Camera, error) {
	c := &cameraImpl{
		mu:            &sync.Mutex{},
		kind:          kind,
		viewport:      NewViewport(640, 480),
		eye:           mgl32.Vec3{0, 0, 3},
		target:        mgl32.Vec3{0, 0, 0},
		fovYDegrees:   45,
		near:          1,
		far:           5,
		speed:         0.1,
		arcballRadius: 0.5,
		firstPerson:   newFirstPerson(mgl32.Vec3{0, 0, -1}, 0.01),
	}
	for _, option := range options {
		option(c)
	}

	switch kind {
	case KindLookAt, KindFirstPerson, KindArcball:
	default:
		return nil, fmt.Errorf("camera: unknown kind %v", kind)
	}
	if err := c.viewport.Validate(); err != nil {
		return nil, err
	}
	if err := validateProjection(c.fovYDegrees, c.near, c.far); err != nil {
		return nil, err
	}
	if kind == KindFirstPerson {
		c.firstPerson = newFirstPerson(c.firstPerson.dir, c.firstPerson.sensitivity)
		c.target = c.eye.Add(c.firstPerson.dir)
	}
	if c.eye.ApproxEqual(c.target) {
		return nil, ErrDegenerateView
	}

	if kind == KindArcball {
		c.arcball = NewArcball()
		c.arcball.Setup(c.eye, c.arcballRadius)
	}
	c.updateMatrices()
	return c, nil
}

func (c *cameraImpl) Kind() Kind {
	return c.kind
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) SetEye(eye mgl32.Vec3) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kind != KindFirstPerson && eye.ApproxEqual(c.target) {
		return ErrDegenerateView
	}
	c.eye = eye
	if c.kind == KindArcball {
		c.arcball.Setup(c.eye, c.arcballRadius)
	}
	return nil
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) SetTarget(target mgl32.Vec3) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if target.ApproxEqual(c.eye) {
		return ErrDegenerateView
	}
	if c.kind == KindFirstPerson {
		c.firstPerson.dir = target.Sub(c.eye).Normalize()
	}
	c.target = target
	return nil
}

func (c *cameraImpl) Direction() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kind == KindFirstPerson {
		return c.firstPerson.dir
	}
	return common.SafeNormalize(c.target.Sub(c.eye), mgl32.Vec3{0, 0, -1})
}

func (c *cameraImpl) Viewport() Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

func (c *cameraImpl) SetViewport(vp Viewport) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = vp
	return nil
}

func (c *cameraImpl) FovY() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fovYDegrees
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetProjection(fovYDegrees, near, far float32) error {
	if err := validateProjection(fovYDegrees, near, far); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fovYDegrees = fovYDegrees
	c.near = near
	c.far = far
	return nil
}

func (c *cameraImpl) Speed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		View:     common.Mat4ToArray(c.viewMatrix),
		Proj:     common.Mat4ToArray(c.projectionMatrix),
		ViewProj: common.Mat4ToArray(c.viewProjectionMatrix),
		Eye:      [3]float32(c.eye),
	}
}

func (c *cameraImpl) Translate(delta mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	step := delta.Mul(c.speed)
	c.eye = c.eye.Add(step)
	c.target = c.target.Add(step)
}

func (c *cameraImpl) MouseClick(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.kind {
	case KindFirstPerson:
		c.firstPerson.click(x, y)
	case KindArcball:
		if ray, ok := c.pickRay(x, y); ok {
			c.arcball.Click(ray)
		}
	}
}

func (c *cameraImpl) MouseMove(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.kind {
	case KindFirstPerson:
		c.firstPerson.look(x, y)
	case KindArcball:
		if ray, ok := c.pickRay(x, y); ok {
			c.arcball.Move(ray)
		}
	}
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

func (c *cameraImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.kind {
	case KindFirstPerson:
		c.firstPerson.reset()
	case KindArcball:
		c.arcball.Reset()
	}
}

func (c *cameraImpl) SetupArcball(radius float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kind != KindArcball {
		return fmt.Errorf("%w: camera is %v", ErrNotArcball, c.kind)
	}
	c.arcballRadius = radius
	c.arcball.Setup(c.eye, radius)
	return nil
}

func (c *cameraImpl) Arcball() *Arcball {
	return c.arcball
}

func (c *cameraImpl) ArcballStatus() (bool, ArcballState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.arcball == nil {
		return false, ArcballIdle, false
	}
	return c.arcball.Planar(), c.arcball.State(), true
}

// pickRay unprojects a screen coordinate with the matrices from the last update.
// Caller must hold the mutex.
func (c *cameraImpl) pickRay(x, y float32) (Ray, bool) {
	ray, err := Unproject(x, y, c.eye, c.baseView, c.projectionMatrix, c.viewport)
	if err != nil {
		return Ray{}, false
	}
	return ray, true
}

// updateMatrices recalculates the projection, view and view-projection matrices for the camera's kind.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.kind == KindFirstPerson {
		c.target = c.eye.Add(c.firstPerson.dir)
	}

	c.projectionMatrix = mgl32.Perspective(
		mgl32.DegToRad(c.fovYDegrees), c.viewport.Aspect(), c.near, c.far,
	)
	c.baseView = mgl32.LookAtV(c.eye, c.target, common.WorldUp)
	c.viewMatrix = c.baseView

	if c.kind == KindArcball {
		// the accumulated rotation is applied last, spinning the scene about the origin
		c.viewMatrix = c.baseView.Mul4(c.arcball.Rotation())
	}

	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

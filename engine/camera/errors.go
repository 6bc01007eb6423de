package camera

import "errors"

// Configuration errors returned by NewCamera, SetViewport, SetProjection and the camera Set.
var (
	ErrInvalidViewport   = errors.New("camera: viewport must have positive width and height")
	ErrInvalidFovY       = errors.New("camera: vertical field of view must be in (0, 180) degrees")
	ErrInvalidClipPlanes = errors.New("camera: clip planes must satisfy 0 < near < far")
	ErrDegenerateView    = errors.New("camera: eye and target must not coincide")
	ErrNotArcball        = errors.New("camera: operation requires an arcball camera")
	ErrInvalidHandle     = errors.New("camera: invalid camera handle")
	ErrNoActiveCamera    = errors.New("camera: no active camera")
	ErrSingularTransform = errors.New("camera: view-projection matrix is not invertible")
)

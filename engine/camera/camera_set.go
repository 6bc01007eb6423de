package camera

import (
	"fmt"
	"sync"
)

// Handle identifies a camera inside a Set. Handles are positions in insertion order.
type Handle int

// Set owns an ordered list of cameras, at most one of which is active.
// Thread-safe for concurrent access.
type Set struct {
	mu      *sync.Mutex
	cameras []Camera
	active  Handle
	// hasActive distinguishes "no camera selected" from handle 0
	hasActive bool
}

// NewSet creates a Set holding cams in order. The first camera becomes active when present.
//
// Parameters:
//   - cams: cameras to add
//
// Returns:
//   - *Set: the newly created set
func NewSet(cams ...Camera) *Set {
	s := &Set{mu: &sync.Mutex{}}
	for _, c := range cams {
		s.Add(c)
	}
	return s
}

// Add appends a camera and returns its handle. The first camera added becomes active.
//
// Parameters:
//   - cam: the camera to add
//
// Returns:
//   - Handle: the handle of the added camera
func (s *Set) Add(cam Camera) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameras = append(s.cameras, cam)
	h := Handle(len(s.cameras) - 1)
	if !s.hasActive && len(s.cameras) == 1 {
		s.active = h
		s.hasActive = true
	}
	return h
}

// Len returns the number of cameras in the set.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cameras)
}

// Get returns the camera for h.
//
// Parameters:
//   - h: the camera handle
//
// Returns:
//   - Camera: the camera
//   - error: ErrInvalidHandle when h is out of range
func (s *Set) Get(h Handle) (Camera, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.valid(h) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	return s.cameras[h], nil
}

// Select makes h the active camera.
//
// Parameters:
//   - h: the camera handle
//
// Returns:
//   - error: ErrInvalidHandle when h is out of range; the selection is unchanged
func (s *Set) Select(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.valid(h) {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	s.active = h
	s.hasActive = true
	return nil
}

// Deselect clears the active camera.
func (s *Set) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasActive = false
	s.active = 0
}

// Next activates the camera after the active one, wrapping around. With no active camera the
// first one is selected.
//
// Returns:
//   - Handle: the newly active handle
//   - error: ErrNoActiveCamera when the set is empty
func (s *Set) Next() (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cameras) == 0 {
		return 0, ErrNoActiveCamera
	}
	next := Handle(0)
	if s.hasActive {
		next = (s.active + 1) % Handle(len(s.cameras))
	}
	s.active = next
	s.hasActive = true
	return next, nil
}

// Active returns the active camera.
//
// Returns:
//   - Camera: the active camera, nil when none is active
//   - bool: false when no camera is active
func (s *Set) Active() (Camera, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasActive {
		return nil, false
	}
	return s.cameras[s.active], true
}

// ActiveHandle returns the handle of the active camera.
//
// Returns:
//   - Handle: the active handle
//   - bool: false when no camera is active
func (s *Set) ActiveHandle() (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.hasActive
}

// Each calls fn for every camera in order.
func (s *Set) Each(fn func(h Handle, cam Camera)) {
	s.mu.Lock()
	cams := make([]Camera, len(s.cameras))
	copy(cams, s.cameras)
	s.mu.Unlock()
	for i, c := range cams {
		fn(Handle(i), c)
	}
}

// valid reports whether h indexes a camera. Caller must hold the mutex.
func (s *Set) valid(h Handle) bool {
	return h >= 0 && int(h) < len(s.cameras)
}

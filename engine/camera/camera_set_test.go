package camera

import (
	"errors"
	"testing"
)

func newTestSet(t *testing.T, kinds ...Kind) *Set {
	t.Helper()
	s := NewSet()
	for _, k := range kinds {
		cam, err := NewCamera(k)
		if err != nil {
			t.Fatalf("NewCamera(%v) error = %v", k, err)
		}
		s.Add(cam)
	}
	return s
}

func TestSetEmpty(t *testing.T) {
	s := NewSet()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Active(); ok {
		t.Error("Active() on empty set should report false")
	}
	if _, err := s.Next(); !errors.Is(err, ErrNoActiveCamera) {
		t.Errorf("Next() error = %v, want %v", err, ErrNoActiveCamera)
	}
	if err := s.Select(0); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Select(0) error = %v, want %v", err, ErrInvalidHandle)
	}
}

func TestSetFirstAddedIsActive(t *testing.T) {
	s := newTestSet(t, KindArcball, KindFirstPerson)
	cam, ok := s.Active()
	if !ok || cam.Kind() != KindArcball {
		t.Fatalf("Active() = %v, %v, want the arcball camera", cam, ok)
	}
	if h, ok := s.ActiveHandle(); !ok || h != 0 {
		t.Errorf("ActiveHandle() = %d, %v, want 0, true", h, ok)
	}
}

func TestSetSelect(t *testing.T) {
	tests := []struct {
		name       string
		handle     Handle
		wantErr    bool
		wantActive Handle
	}{
		{"second", 1, false, 1},
		{"last", 2, false, 2},
		{"out of range", 3, true, 0},
		{"negative", -1, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSet(t, KindLookAt, KindFirstPerson, KindArcball)
			err := s.Select(tt.handle)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Select(%d) error = %v, wantErr %v", tt.handle, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidHandle) {
				t.Errorf("Select(%d) error = %v, want %v", tt.handle, err, ErrInvalidHandle)
			}
			if h, _ := s.ActiveHandle(); h != tt.wantActive {
				t.Errorf("ActiveHandle() = %d, want %d", h, tt.wantActive)
			}
		})
	}
}

func TestSetNextWraps(t *testing.T) {
	s := newTestSet(t, KindLookAt, KindFirstPerson, KindArcball)
	want := []Handle{1, 2, 0, 1}
	for i, w := range want {
		h, err := s.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if h != w {
			t.Errorf("Next() #%d = %d, want %d", i, h, w)
		}
	}
}

func TestSetDeselect(t *testing.T) {
	s := newTestSet(t, KindLookAt, KindArcball)
	if err := s.Select(1); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	s.Deselect()
	if _, ok := s.Active(); ok {
		t.Error("Active() after Deselect should report false")
	}
	h, err := s.Next()
	if err != nil || h != 0 {
		t.Errorf("Next() after Deselect = %d, %v, want 0, nil", h, err)
	}
}

func TestSetGetAndEach(t *testing.T) {
	s := newTestSet(t, KindLookAt, KindFirstPerson, KindArcball)
	cam, err := s.Get(2)
	if err != nil || cam.Kind() != KindArcball {
		t.Errorf("Get(2) = %v, %v, want arcball camera", cam, err)
	}
	if _, err := s.Get(5); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Get(5) error = %v, want %v", err, ErrInvalidHandle)
	}

	var kinds []Kind
	s.Each(func(h Handle, c Camera) {
		if int(h) != len(kinds) {
			t.Errorf("Each() handle = %d, want %d", h, len(kinds))
		}
		kinds = append(kinds, c.Kind())
	})
	if len(kinds) != 3 || kinds[0] != KindLookAt || kinds[2] != KindArcball {
		t.Errorf("Each() kinds = %v", kinds)
	}
}

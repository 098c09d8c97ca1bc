package shape

import (
	"errors"
	"testing"

	"github.com/philipparndt/goshape/pkg/geometry"
)

func TestReslicePlaneSphere(t *testing.T) {
	s, _ := newTestShape(t, Sphere,
		geometry.NewVector3(0, 0, 10),
		geometry.NewVector3(10, 0, 10))

	plane, err := s.ReslicePlane()
	if err != nil {
		t.Fatalf("ReslicePlane failed: %v", err)
	}

	// Cross product of the absolute positions, not center-relative vectors.
	expected := geometry.NewVector3(0, 100, 0)
	if plane.Normal != expected {
		t.Errorf("normal: expected %v, got %v", expected, plane.Normal)
	}
	if plane.Tangent != geometry.NewVector3(10, 0, 10) {
		t.Errorf("tangent: expected point 1, got %v", plane.Tangent)
	}
	if plane.Origin != geometry.NewVector3(0, 0, 10) {
		t.Errorf("origin: expected point 0, got %v", plane.Origin)
	}
}

func TestReslicePlaneSphereThroughOrigin(t *testing.T) {
	// Both points on a line through the world origin: position vectors are
	// parallel and span no plane.
	s, _ := newTestShape(t, Sphere,
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(2, 0, 0))

	if _, err := s.ReslicePlane(); !errors.Is(err, ErrNoReslicePlane) {
		t.Errorf("expected ErrNoReslicePlane, got %v", err)
	}
}

func TestReslicePlaneRing(t *testing.T) {
	s, _ := newTestShape(t, Ring,
		geometry.NewVector3(5, 5, 5),
		geometry.NewVector3(6, 5, 5),
		geometry.NewVector3(5, 6, 5))

	plane, err := s.ReslicePlane()
	if err != nil {
		t.Fatalf("ReslicePlane failed: %v", err)
	}

	// Three-point plane is centered at point 0, unaffected by translation.
	expected := geometry.NewVector3(0, 0, 1)
	if plane.Normal != expected {
		t.Errorf("normal: expected %v, got %v", expected, plane.Normal)
	}
}

func TestReslicePlaneDiskCollinear(t *testing.T) {
	s, _ := newTestShape(t, Disk,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(2, 0, 0))

	if _, err := s.ReslicePlane(); !errors.Is(err, ErrNoReslicePlane) {
		t.Errorf("expected ErrNoReslicePlane, got %v", err)
	}
}

func TestReslicePlaneTube(t *testing.T) {
	s, _ := newTestTube(t)

	if _, err := s.ReslicePlane(); !errors.Is(err, ErrNoReslicePlane) {
		t.Errorf("expected ErrNoReslicePlane, got %v", err)
	}
}

func TestReslicePlaneMissingPoints(t *testing.T) {
	s, _ := newTestShape(t, Sphere, geometry.NewVector3(1, 0, 0))

	if _, err := s.ReslicePlane(); !errors.Is(err, ErrNoReslicePlane) {
		t.Errorf("sphere: expected ErrNoReslicePlane, got %v", err)
	}

	s2, _ := newTestShape(t, Ring,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0))
	if _, err := s2.ReslicePlane(); !errors.Is(err, ErrNoReslicePlane) {
		t.Errorf("ring: expected ErrNoReslicePlane, got %v", err)
	}
}

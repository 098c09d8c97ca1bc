package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// newTestTube builds a tube with three point pairs: radii 5, 2 and 1.
func newTestTube(t *testing.T) (*Shape, *MemoryStore) {
	t.Helper()
	return newTestShape(t, Tube,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 10, 0),
		geometry.NewVector3(10, 3, 0),
		geometry.NewVector3(10, 7, 0),
		geometry.NewVector3(20, 4, 0),
		geometry.NewVector3(20, 6, 0))
}

func TestRadiusAtPoint(t *testing.T) {
	s, _ := newTestTube(t)

	tests := []struct {
		n        int
		expected float64
	}{
		{0, 5}, {1, 5}, // pair (0,1)
		{2, 2}, {3, 2}, // pair (2,3)
		{4, 1}, {5, 1}, // pair (4,5)
	}
	for _, tt := range tests {
		radius, err := s.RadiusAtPoint(tt.n)
		if err != nil {
			t.Fatalf("RadiusAtPoint(%d) failed: %v", tt.n, err)
		}
		if math.Abs(radius-tt.expected) > 1e-10 {
			t.Errorf("RadiusAtPoint(%d): expected %v, got %v", tt.n, tt.expected, radius)
		}
	}
}

func TestRadiusAtPointWrongShape(t *testing.T) {
	s, _ := newTestShape(t, Sphere,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0))

	if _, err := s.RadiusAtPoint(0); !errors.Is(err, ErrWrongShape) {
		t.Errorf("expected ErrWrongShape, got %v", err)
	}
}

func TestRadiusAtPointPreconditions(t *testing.T) {
	s, store := newTestTube(t)

	if _, err := s.RadiusAtPoint(-1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("negative index: expected ErrInvalidState, got %v", err)
	}
	if _, err := s.RadiusAtPoint(6); !errors.Is(err, ErrInvalidState) {
		t.Errorf("index beyond points: expected ErrInvalidState, got %v", err)
	}

	// An undefined point invalidates every segment query.
	store.SetStatusAt(3, PositionUndefined)
	if _, err := s.RadiusAtPoint(0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("undefined point: expected ErrInvalidState, got %v", err)
	}
	store.SetStatusAt(3, PositionDefined)

	// Odd total count.
	store.Append(geometry.NewVector3(30, 0, 0))
	if _, err := s.RadiusAtPoint(0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("odd count: expected ErrInvalidState, got %v", err)
	}
}

func TestRadiusAtPointTooFewPoints(t *testing.T) {
	s, _ := newTestShape(t, Tube,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 10, 0))

	if _, err := s.RadiusAtPoint(0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestSetRadiusAtPoint(t *testing.T) {
	s, store := newTestTube(t)

	if err := s.SetRadiusAtPoint(0, 8); err != nil {
		t.Fatalf("SetRadiusAtPoint failed: %v", err)
	}

	radius, err := s.RadiusAtPoint(0)
	if err != nil {
		t.Fatalf("RadiusAtPoint failed: %v", err)
	}
	if math.Abs(radius-8) > 1e-9 {
		t.Errorf("expected radius 8, got %v", radius)
	}

	// Both points moved symmetrically, midpoint preserved.
	mid := store.PositionAt(0).Midpoint(store.PositionAt(1))
	if mid.Distance(geometry.NewVector3(0, 5, 0)) > 1e-10 {
		t.Errorf("pair midpoint drifted: %v", mid)
	}
	if store.PositionAt(0).Distance(geometry.NewVector3(0, -3, 0)) > 1e-10 {
		t.Errorf("point 0: expected (0,-3,0), got %v", store.PositionAt(0))
	}
	if store.PositionAt(1).Distance(geometry.NewVector3(0, 13, 0)) > 1e-10 {
		t.Errorf("point 1: expected (0,13,0), got %v", store.PositionAt(1))
	}
}

func TestSetRadiusAtPointRoundTrip(t *testing.T) {
	s, _ := newTestTube(t)

	for _, n := range []int{0, 2, 4} {
		for _, r := range []float64{0.5, 3, 12} {
			if err := s.SetRadiusAtPoint(n, r); err != nil {
				t.Fatalf("SetRadiusAtPoint(%d, %v) failed: %v", n, r, err)
			}
			radius, err := s.RadiusAtPoint(n)
			if err != nil {
				t.Fatalf("RadiusAtPoint(%d) failed: %v", n, err)
			}
			if math.Abs(radius-r) > 1e-9 {
				t.Errorf("segment %d: set %v, read back %v", n, r, radius)
			}
		}
	}
}

func TestSetRadiusAtPointOddIndex(t *testing.T) {
	s, _ := newTestTube(t)

	// Editing through the odd member targets the same pair.
	if err := s.SetRadiusAtPoint(3, 4); err != nil {
		t.Fatalf("SetRadiusAtPoint failed: %v", err)
	}
	radius, err := s.RadiusAtPoint(2)
	if err != nil {
		t.Fatalf("RadiusAtPoint failed: %v", err)
	}
	if math.Abs(radius-4) > 1e-9 {
		t.Errorf("expected radius 4, got %v", radius)
	}
}

func TestSetRadiusAtPointNonPositive(t *testing.T) {
	s, _ := newTestTube(t)

	if err := s.SetRadiusAtPoint(0, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSetRadiusAtPointCoincidentPair(t *testing.T) {
	p := geometry.NewVector3(5, 5, 5)
	s, _ := newTestShape(t, Tube,
		p, p,
		geometry.NewVector3(10, 3, 0),
		geometry.NewVector3(10, 7, 0))

	if err := s.SetRadiusAtPoint(0, 3); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestTubePairingEvenRemoval(t *testing.T) {
	_, store := newTestTube(t)

	// Removing point 2 takes its partner (old index 3) with it.
	store.RemoveAt(2)

	if store.Count() != 4 {
		t.Fatalf("expected 4 points after paired removal, got %d", store.Count())
	}
	// The surviving points are the first and last original pairs.
	if store.PositionAt(2) != geometry.NewVector3(20, 4, 0) {
		t.Errorf("unexpected point 2 after removal: %v", store.PositionAt(2))
	}
}

func TestTubePairingOddRemoval(t *testing.T) {
	_, store := newTestTube(t)

	// Removing point 5 takes its partner (index 4) with it.
	store.RemoveAt(5)

	if store.Count() != 4 {
		t.Fatalf("expected 4 points after paired removal, got %d", store.Count())
	}
	if store.PositionAt(3) != geometry.NewVector3(10, 7, 0) {
		t.Errorf("unexpected point 3 after removal: %v", store.PositionAt(3))
	}
}

func TestTubePairingTrailingUnpairedPoint(t *testing.T) {
	_, store := newTestShape(t, Tube,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 10, 0),
		geometry.NewVector3(10, 3, 0),
		geometry.NewVector3(10, 7, 0),
		geometry.NewVector3(20, 5, 0))

	// The dangling fifth point has no partner; nothing else is removed.
	store.RemoveAt(4)

	if store.Count() != 4 {
		t.Errorf("expected 4 points, got %d", store.Count())
	}
}

func TestTubePairingEmptyStore(t *testing.T) {
	s, store := newTestShape(t, Tube)

	s.OnPointUndefined(0)

	if store.Count() != 0 {
		t.Errorf("expected empty store, got %d points", store.Count())
	}
}

func TestTubePairingIgnoresNonTube(t *testing.T) {
	_, store := newTestShape(t, Ring,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0))

	store.RemoveAt(1)

	if store.Count() != 2 {
		t.Errorf("expected 2 points, got %d", store.Count())
	}
}

func TestTubePairingIgnoresBatchedUndefinition(t *testing.T) {
	_, store := newTestTube(t)

	// Another point is still undefined: the handler must not react.
	store.SetStatusAt(0, PositionUndefined)
	store.RemoveAt(3)

	if store.Count() != 5 {
		t.Errorf("expected 5 points, got %d", store.Count())
	}
}

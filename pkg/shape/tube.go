package shape

import (
	"fmt"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// tubePair returns the index pair that defines the radius sample containing
// control point n. Points are grouped into consecutive pairs (2k, 2k+1).
func tubePair(n int) (int, int) {
	if n%2 == 0 {
		return n, n + 1
	}
	return n - 1, n
}

// RadiusAtPoint returns the tube radius at the pair containing control point
// n: half the distance between the two points of the pair. The tube must
// have at least 4 defined points, an even total, and no undefined points.
func (s *Shape) RadiusAtPoint(n int) (float64, error) {
	if s.kind != Tube {
		return 0, fmt.Errorf("%w: not a tube shape", ErrWrongShape)
	}
	defined := s.store.DefinedCount(false)
	if n < 0 || s.store.UndefinedCount() > 0 || defined < 4 || defined%2 != 0 || n >= defined {
		return 0, fmt.Errorf("%w: tube has undefined control points, an odd or too small"+
			" point count, or fewer points than requested", ErrInvalidState)
	}

	first, second := tubePair(n)
	return s.store.PositionAt(first).Distance(s.store.PositionAt(second)) / 2.0, nil
}

// SetRadiusAtPoint repositions both points of the pair containing control
// point n symmetrically along their common line, preserving the pair's
// midpoint, so that the pair's radius becomes radius.
func (s *Shape) SetRadiusAtPoint(n int, radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("%w: radius must be greater than zero", ErrInvalidArgument)
	}
	current, err := s.RadiusAtPoint(n)
	if err != nil {
		return err
	}
	if current == 0 {
		return fmt.Errorf("%w: pair control points coincide", ErrInvalidState)
	}

	first, second := tubePair(n)
	p1 := s.store.PositionAt(first)
	p2 := s.store.PositionAt(second)
	middle := p1.Midpoint(p2)
	difference := radius - current

	var p1New, p2New geometry.Vector3
	if p1New, err = geometry.PointAtOffset(middle, p1, difference); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if p2New, err = geometry.PointAtOffset(middle, p2, difference); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	s.store.SetPositionAt(first, p1New)
	s.store.SetPositionAt(second, p2New)
	return nil
}

// OnPointUndefined reacts to a host notification that the control point at
// index was removed (its position became undefined). For tubes it removes
// the partner of the removed point so that points stay paired; every pair
// defines one radius sample and a lone point defines nothing.
//
// Hosts must deliver the notification synchronously and only for single
// removals, not while other points are undefined (status toggles in an
// editor would otherwise trigger spurious pair removal). The compensating
// removal itself re-enters this handler; the in-flight flag consumes that
// second notification.
func (s *Shape) OnPointUndefined(index int) {
	if s.kind != Tube || s.store.UndefinedCount() > 0 {
		return
	}
	if s.removingPair || s.store.Count() == 0 {
		// Removal was triggered below, not by the host.
		s.removingPair = false
		return
	}

	if index%2 == 0 {
		// The partner has shifted into the removed point's slot. A trailing
		// unpaired point of an odd total has no partner to remove.
		if s.store.Count() > index {
			s.removingPair = true
			s.store.RemoveAt(index)
		} else {
			s.removingPair = false
		}
	} else {
		s.removingPair = true
		s.store.RemoveAt(index - 1)
	}
}

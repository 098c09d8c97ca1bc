package shape

import (
	"fmt"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// RadiusMode governs which endpoints move when a two-point shape's radius
// changes.
type RadiusMode int

const (
	// Centered keeps point 0 (the center) fixed; the radius is the full
	// distance between the two points.
	Centered RadiusMode = iota
	// Circumferential moves both points symmetrically around their midpoint;
	// the radius is half the distance between them.
	Circumferential
)

// String returns the lower-case mode name
func (m RadiusMode) String() string {
	if m == Circumferential {
		return "circumferential"
	}
	return "centered"
}

// Shape maps the control points of one markup to shape-specific derived
// geometry and applies radius edits back to the store. The kind is the
// dominant state: it only changes through SetKind, which is a full reset.
type Shape struct {
	store      PointStore
	kind       Kind
	constraint Constraint
	radiusMode RadiusMode

	measurements []Measurement

	// removingPair suppresses the pairing handler while its own compensating
	// removal is still being applied.
	removingPair bool
}

// New creates a Shape over the given control point store
func New(store PointStore, kind Kind) (*Shape, error) {
	s := &Shape{store: store}
	if err := s.SetKind(kind); err != nil {
		return nil, err
	}
	return s, nil
}

// SetKind switches the shape to a new kind. Existing control points lose
// their geometric meaning: the store is truncated to the new kind's maximum,
// or cleared entirely for unbounded kinds, and the measurement declarations
// are replaced with the new kind's table. Unknown kinds fail with
// ErrInvalidShapeKind and mutate nothing.
func (s *Shape) SetKind(kind Kind) error {
	constraint, err := ConstraintFor(kind)
	if err != nil {
		return err
	}
	s.kind = kind
	s.constraint = constraint
	s.measurements = MeasurementsFor(kind)

	if constraint.Unbounded() {
		s.store.RemoveAll()
		return nil
	}
	for s.store.Count() > constraint.Maximum {
		s.store.RemoveAt(constraint.Maximum)
	}
	return nil
}

// Kind returns the current shape kind
func (s *Shape) Kind() Kind {
	return s.kind
}

// Constraint returns the control point constraint of the current kind
func (s *Shape) Constraint() Constraint {
	return s.constraint
}

// SetRadiusMode sets the radius edit policy for two-point shapes
func (s *Shape) SetRadiusMode(mode RadiusMode) {
	s.radiusMode = mode
}

// RadiusMode returns the radius edit policy
func (s *Shape) RadiusMode() RadiusMode {
	return s.radiusMode
}

// Measurements returns the measurement declarations of the current kind
func (s *Shape) Measurements() []Measurement {
	return s.measurements
}

// Radius returns the current radius of a two-point shape, derived from the
// distance between points 0 and 1 and adjusted for the radius mode.
func (s *Shape) Radius() (float64, error) {
	if s.kind == Disk {
		return 0, fmt.Errorf("%w: disk uses InnerRadius and OuterRadius", ErrWrongShape)
	}
	if s.store.Count() < 2 {
		return 0, fmt.Errorf("%w: need 2 control points, have %d", ErrInvalidState, s.store.Count())
	}
	length := s.store.PositionAt(0).Distance(s.store.PositionAt(1))
	if s.radiusMode == Circumferential {
		return length / 2.0, nil
	}
	return length, nil
}

// SetRadius resizes a two-point shape to the given radius. In Centered mode
// point 1 moves along the ray from point 0; in Circumferential mode both
// points move symmetrically, keeping their midpoint fixed.
func (s *Shape) SetRadius(radius float64) error {
	if s.kind == Disk {
		return fmt.Errorf("%w: disk uses SetInnerRadius and SetOuterRadius", ErrWrongShape)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: radius must be greater than zero", ErrInvalidArgument)
	}
	current, err := s.Radius()
	if err != nil {
		return err
	}

	p0 := s.store.PositionAt(0)
	p1 := s.store.PositionAt(1)
	difference := radius - current

	p1Shifted, err := geometry.PointAtOffset(p0, p1, difference)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	var p0Shifted geometry.Vector3
	if s.radiusMode == Circumferential {
		// Same offset applied from the opposite end keeps the midpoint fixed.
		if p0Shifted, err = geometry.PointAtOffset(p1, p0, difference); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
	}

	s.store.SetPositionAt(1, p1Shifted)
	if s.radiusMode == Circumferential {
		s.store.SetPositionAt(0, p0Shifted)
	}
	return nil
}

// DiskSpacing orders a disk's two rim points by their distance to the center
// (point 0).
type DiskSpacing struct {
	ClosestPoint  geometry.Vector3
	FarthestPoint geometry.Vector3
	ClosestIndex  int
	FarthestIndex int
	InnerRadius   float64
	OuterRadius   float64
}

// DiskSpacing computes which of the disk's rim points is the inner one.
// Requires kind Disk and exactly 3 defined control points. On an exact
// distance tie point 1 is reported as closest.
func (s *Shape) DiskSpacing() (DiskSpacing, error) {
	if s.kind != Disk {
		return DiskSpacing{}, fmt.Errorf("%w: current shape is not a disk", ErrWrongShape)
	}
	if s.store.DefinedCount(true) != 3 {
		return DiskSpacing{}, fmt.Errorf("%w: need 3 defined control points, have %d",
			ErrInvalidState, s.store.DefinedCount(true))
	}

	center := s.store.PositionAt(0)
	p1 := s.store.PositionAt(1)
	p2 := s.store.PositionAt(2)
	d1 := center.Distance(p1)
	d2 := center.Distance(p2)

	if d1 <= d2 {
		return DiskSpacing{
			ClosestPoint: p1, FarthestPoint: p2,
			ClosestIndex: 1, FarthestIndex: 2,
			InnerRadius: d1, OuterRadius: d2,
		}, nil
	}
	return DiskSpacing{
		ClosestPoint: p2, FarthestPoint: p1,
		ClosestIndex: 2, FarthestIndex: 1,
		InnerRadius: d2, OuterRadius: d1,
	}, nil
}

// SetInnerRadius moves the disk's closest rim point along its ray from the
// center so its distance becomes radius. The ordering invariant
// innerRadius < outerRadius must hold after the edit.
func (s *Shape) SetInnerRadius(radius float64) error {
	if s.kind != Disk {
		return fmt.Errorf("%w: current shape is not a disk, use SetRadius", ErrWrongShape)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: radius must be greater than zero", ErrInvalidArgument)
	}
	spacing, err := s.DiskSpacing()
	if err != nil {
		return err
	}
	if radius >= spacing.OuterRadius {
		return fmt.Errorf("%w: inner radius %g must be less than outer radius %g",
			ErrInvalidArgument, radius, spacing.OuterRadius)
	}

	center := s.store.PositionAt(0)
	shifted, err := geometry.PointAtOffset(center, spacing.ClosestPoint, radius-spacing.InnerRadius)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	s.store.SetPositionAt(spacing.ClosestIndex, shifted)
	return nil
}

// SetOuterRadius moves the disk's farthest rim point along its ray from the
// center so its distance becomes radius.
func (s *Shape) SetOuterRadius(radius float64) error {
	if s.kind != Disk {
		return fmt.Errorf("%w: current shape is not a disk, use SetRadius", ErrWrongShape)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: radius must be greater than zero", ErrInvalidArgument)
	}
	spacing, err := s.DiskSpacing()
	if err != nil {
		return err
	}
	if radius <= spacing.InnerRadius {
		return fmt.Errorf("%w: outer radius %g must be greater than inner radius %g",
			ErrInvalidArgument, radius, spacing.InnerRadius)
	}

	center := s.store.PositionAt(0)
	shifted, err := geometry.PointAtOffset(center, spacing.FarthestPoint, radius-spacing.OuterRadius)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	s.store.SetPositionAt(spacing.FarthestIndex, shifted)
	return nil
}

// ReslicePlane is the oriented plane handed to a 2D view alignment
// collaborator: plane normal, an in-plane tangent reference point and the
// plane origin.
type ReslicePlane struct {
	Normal  geometry.Vector3
	Tangent geometry.Vector3
	Origin  geometry.Vector3
}

// ReslicePlane derives the slice alignment plane of the current shape.
// Sphere orients by its two points, Ring and Disk by their three-point
// plane; Tube defines no plane. Degenerate or unset geometry fails with
// ErrNoReslicePlane, which hosts treat as "leave the view alone".
func (s *Shape) ReslicePlane() (ReslicePlane, error) {
	switch s.kind {
	case Sphere:
		return s.resliceToLine()
	case Ring, Disk:
		return s.resliceToPlane()
	case Tube:
		return ReslicePlane{}, ErrNoReslicePlane
	}
	return ReslicePlane{}, fmt.Errorf("%w: %d", ErrInvalidShapeKind, int(s.kind))
}

func (s *Shape) resliceToLine() (ReslicePlane, error) {
	if s.store.Count() < 2 {
		return ReslicePlane{}, ErrNoReslicePlane
	}
	p0 := s.store.PositionAt(0)
	p1 := s.store.PositionAt(1)

	// The cross product deliberately uses the absolute positions, not
	// center-relative vectors: the two points only span a line, and the
	// position vectors pick one of the planes containing it. Degenerates
	// when the line passes through the world origin.
	normal := p0.Cross(p1)
	if normal.IsZero() {
		return ReslicePlane{}, ErrNoReslicePlane
	}
	return ReslicePlane{Normal: normal, Tangent: p1, Origin: p0}, nil
}

func (s *Shape) resliceToPlane() (ReslicePlane, error) {
	if s.store.Count() < 3 {
		return ReslicePlane{}, ErrNoReslicePlane
	}
	p0 := s.store.PositionAt(0)
	p1 := s.store.PositionAt(1)
	p2 := s.store.PositionAt(2)

	normal, err := geometry.PlaneNormal(p0, p1, p2)
	if err != nil {
		return ReslicePlane{}, ErrNoReslicePlane
	}
	return ReslicePlane{Normal: normal, Tangent: p1, Origin: p0}, nil
}

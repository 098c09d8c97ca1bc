package shape

import "fmt"

// Kind identifies the geometric primitive a shape markup represents.
type Kind int

const (
	Sphere Kind = iota
	Ring
	Disk
	Tube
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Ring:
		return "ring"
	case Disk:
		return "disk"
	case Tube:
		return "tube"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name (as printed by String) back to a Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "sphere":
		return Sphere, nil
	case "ring":
		return Ring, nil
	case "disk":
		return Disk, nil
	case "tube":
		return Tube, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidShapeKind, name)
}

// Constraint describes the control point budget of a shape kind.
// Required == -1 means "even count, minimum 4, unbounded" (tube);
// Maximum == -1 means unbounded.
type Constraint struct {
	Required int
	Maximum  int
}

// Unbounded reports whether the kind accepts any number of control points
func (c Constraint) Unbounded() bool {
	return c.Maximum < 0
}

var constraints = map[Kind]Constraint{
	Sphere: {Required: 2, Maximum: 2},
	// Third ring point orients the plane relative to the center.
	Ring: {Required: 3, Maximum: 3},
	// Disk point 0 is always the center.
	Disk: {Required: 3, Maximum: 3},
	// Tube control points come in pairs; each pair defines one centerline
	// radius sample. Points need not lie on the rendered surface.
	Tube: {Required: -1, Maximum: -1},
}

// ConstraintFor returns the control point constraint of a shape kind.
func ConstraintFor(kind Kind) (Constraint, error) {
	c, ok := constraints[kind]
	if !ok {
		return Constraint{}, fmt.Errorf("%w: %d", ErrInvalidShapeKind, int(kind))
	}
	return c, nil
}

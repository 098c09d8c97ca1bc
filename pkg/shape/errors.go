package shape

import "errors"

// Sentinel errors returned by shape operations. All failures are recoverable:
// no operation mutates any control point before every precondition has been
// checked, so a shape remains usable after an error.
var (
	// ErrInvalidShapeKind reports an unknown Kind value.
	ErrInvalidShapeKind = errors.New("invalid shape kind")

	// ErrWrongShape reports an operation invoked on a shape kind it does not
	// apply to, e.g. SetRadius on a disk.
	ErrWrongShape = errors.New("operation not applicable to shape kind")

	// ErrInvalidArgument reports a rejected parameter value, e.g. a
	// non-positive radius.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState reports control points that do not satisfy an
	// operation's preconditions (count, definedness, or degenerate geometry).
	ErrInvalidState = errors.New("invalid control point state")

	// ErrNoReslicePlane reports that the shape currently defines no reslice
	// plane; hosts treat this as a no-op rather than a failure.
	ErrNoReslicePlane = errors.New("shape has no reslice plane")
)

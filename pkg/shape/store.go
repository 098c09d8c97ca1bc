package shape

import "github.com/philipparndt/goshape/pkg/geometry"

// PositionStatus tracks whether a control point has been placed.
type PositionStatus int

const (
	// PositionUndefined marks a point whose placement was reverted or never
	// completed.
	PositionUndefined PositionStatus = iota
	// PositionPreview marks a point that follows the pointer during
	// interactive placement.
	PositionPreview
	// PositionDefined marks a placed point.
	PositionDefined
)

// PointStore is the ordered control point sequence a Shape operates on.
// Point identity is the index; stores renumber contiguously on removal.
// The store is owned by the host; a Shape only reads and repositions
// existing points, and removes points to enforce kind constraints.
//
// Hosts deliver point-undefined notifications to Shape.OnPointUndefined
// synchronously, after the point transitioned and only when no other point
// is undefined at that moment.
type PointStore interface {
	// Count returns the number of control points, defined or not.
	Count() int
	// DefinedCount returns the number of defined control points, including
	// preview-state points when includePreview is set.
	DefinedCount(includePreview bool) int
	// UndefinedCount returns the number of undefined control points.
	UndefinedCount() int
	// PositionAt returns the world position of the point at index.
	PositionAt(index int) geometry.Vector3
	// SetPositionAt repositions the point at index.
	SetPositionAt(index int, pos geometry.Vector3)
	// RemoveAt deletes the point at index and renumbers the tail.
	RemoveAt(index int)
	// RemoveAll deletes every point.
	RemoveAll()
}

package shape

import "github.com/philipparndt/goshape/pkg/geometry"

type storedPoint struct {
	pos    geometry.Vector3
	status PositionStatus
}

// MemoryStore is an in-memory PointStore for hosts without their own point
// management (tests, CLI tools). Single removals notify subscribers after the
// point is gone, mirroring the order an interactive host delivers the
// point-undefined event in; batch removal (RemoveAll) is silent.
type MemoryStore struct {
	points      []storedPoint
	onUndefined []func(index int)
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Subscribe registers a handler for single point removals. Handlers run
// synchronously from RemoveAt, after the index space has been renumbered.
func (m *MemoryStore) Subscribe(handler func(index int)) {
	m.onUndefined = append(m.onUndefined, handler)
}

// Append adds a defined control point at the end of the sequence
func (m *MemoryStore) Append(pos geometry.Vector3) {
	m.points = append(m.points, storedPoint{pos: pos, status: PositionDefined})
}

// SetStatusAt changes the placement status of the point at index. Status
// toggles do not notify subscribers; only removals do.
func (m *MemoryStore) SetStatusAt(index int, status PositionStatus) {
	m.points[index].status = status
}

// Count returns the number of control points
func (m *MemoryStore) Count() int {
	return len(m.points)
}

// DefinedCount returns the number of defined control points
func (m *MemoryStore) DefinedCount(includePreview bool) int {
	n := 0
	for _, p := range m.points {
		if p.status == PositionDefined || (includePreview && p.status == PositionPreview) {
			n++
		}
	}
	return n
}

// UndefinedCount returns the number of undefined control points
func (m *MemoryStore) UndefinedCount() int {
	n := 0
	for _, p := range m.points {
		if p.status == PositionUndefined {
			n++
		}
	}
	return n
}

// PositionAt returns the world position of the point at index
func (m *MemoryStore) PositionAt(index int) geometry.Vector3 {
	return m.points[index].pos
}

// SetPositionAt repositions the point at index
func (m *MemoryStore) SetPositionAt(index int, pos geometry.Vector3) {
	m.points[index].pos = pos
}

// RemoveAt deletes the point at index, renumbers the tail and notifies
// subscribers with the removed index.
func (m *MemoryStore) RemoveAt(index int) {
	if index < 0 || index >= len(m.points) {
		return
	}
	m.points = append(m.points[:index], m.points[index+1:]...)
	for _, handler := range m.onUndefined {
		handler(index)
	}
}

// RemoveAll deletes every point without notifying subscribers
func (m *MemoryStore) RemoveAll() {
	m.points = nil
}

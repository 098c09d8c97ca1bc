package geometry

import "fmt"

// PlaneNormal returns the normal of the plane through three points, computed
// as the cross product of the center-relative vectors (a-center) and
// (b-center). The normal is not normalized.
//
// Returns an error if the three points are collinear (zero cross product),
// which leaves the plane orientation undefined.
func PlaneNormal(center, a, b Vector3) (Vector3, error) {
	normal := a.Sub(center).Cross(b.Sub(center))
	if normal.IsZero() {
		return Vector3{}, fmt.Errorf("points are collinear")
	}
	return normal, nil
}

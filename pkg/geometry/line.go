package geometry

import "fmt"

// PointAtOffset returns the point on the ray from p1 through p2, shifted by
// offset beyond p2. The result lies at distance |p1,p2| + offset from p1,
// keeping p1 fixed and the direction p1→p2. A negative offset retracts the
// point towards p1.
//
// Returns an error if p1 and p2 coincide: a zero-length baseline has no
// direction, so the offset cannot be applied.
func PointAtOffset(p1, p2 Vector3, offset float64) (Vector3, error) {
	lineLength := p1.Distance(p2)
	if lineLength == 0 {
		return Vector3{}, fmt.Errorf("degenerate ray: points coincide at %v", p1)
	}

	// Work relative to p1 placed at the origin, then scale the baseline.
	factor := 1.0 + offset/lineLength
	return p1.Add(p2.Sub(p1).Mul(factor)), nil
}

package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/shape"
)

// MeasurementValue couples a measurement declaration with its evaluated
// value. Value is in the raw unit (mm, mm² or mm³); apply the declaration's
// DisplayCoefficient to convert to the display unit. Computed is false when
// the value cannot be derived from control points alone.
type MeasurementValue struct {
	shape.Measurement
	Value    float64
	Computed bool
}

// EvaluateMeasurements computes the values of every measurement a shape
// declares, in declaration order.
//
// Tube area and volume depend on the swept surface generated from the
// centerline spline and cannot be derived from the control points alone;
// they are reported with Computed set to false.
func EvaluateMeasurements(s *shape.Shape) ([]MeasurementValue, error) {
	values, err := rawValues(s)
	if err != nil {
		return nil, err
	}

	results := make([]MeasurementValue, 0, len(s.Measurements()))
	for _, m := range s.Measurements() {
		value, ok := values[m.Name]
		results = append(results, MeasurementValue{
			Measurement: m,
			Value:       value,
			Computed:    ok,
		})
	}
	return results, nil
}

func rawValues(s *shape.Shape) (map[string]float64, error) {
	switch s.Kind() {
	case shape.Sphere:
		radius, err := s.Radius()
		if err != nil {
			return nil, err
		}
		return map[string]float64{
			"radius": radius,
			"area":   4.0 * math.Pi * radius * radius,
			"volume": (4.0 / 3.0) * math.Pi * radius * radius * radius,
		}, nil

	case shape.Ring:
		radius, err := s.Radius()
		if err != nil {
			return nil, err
		}
		return map[string]float64{
			"radius": radius,
			"area":   math.Pi * radius * radius,
		}, nil

	case shape.Disk:
		spacing, err := s.DiskSpacing()
		if err != nil {
			return nil, err
		}
		inner := spacing.InnerRadius
		outer := spacing.OuterRadius
		return map[string]float64{
			"innerRadius": inner,
			"outerRadius": outer,
			"width":       outer - inner,
			"area":        math.Pi * (outer*outer - inner*inner),
			"innerArea":   math.Pi * inner * inner,
			"outerArea":   math.Pi * outer * outer,
		}, nil

	case shape.Tube:
		// Needs the generated tube surface; nothing to compute here.
		return nil, nil
	}
	return nil, fmt.Errorf("unknown shape kind %v", s.Kind())
}

// FormatMeasurement renders an evaluated measurement in its display unit
func FormatMeasurement(v MeasurementValue) string {
	if !v.Computed {
		return fmt.Sprintf("%s: n/a (requires generated surface)", v.Name)
	}
	return fmt.Sprintf("%s: %.4g %s", v.Name, v.Value*v.DisplayCoefficient, v.Units)
}

// FormatVector formats a 3D point
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

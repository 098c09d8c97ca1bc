package shape

// Measurement declares one scalar measurement a shape kind exposes. The
// declaration carries no value: numeric evaluation and display belong to the
// host's measurement subsystem (see pkg/analysis for a reference evaluator).
type Measurement struct {
	Name string
	// Units of the displayed value, e.g. "mm" or "cm2".
	Units string
	// DisplayCoefficient scales the raw value (computed in mm, mm² or mm³)
	// into Units, e.g. 0.01 for mm² → cm².
	DisplayCoefficient float64
	// Enabled is the default visibility of the measurement.
	Enabled bool
}

func lengthMeasurement(name string, enabled bool) Measurement {
	return Measurement{Name: name, Units: "mm", DisplayCoefficient: 1.0, Enabled: enabled}
}

func areaMeasurement(name string, enabled bool) Measurement {
	return Measurement{Name: name, Units: "cm2", DisplayCoefficient: 0.01, Enabled: enabled}
}

func volumeMeasurement(name string, enabled bool) Measurement {
	return Measurement{Name: name, Units: "cm3", DisplayCoefficient: 0.01, Enabled: enabled}
}

// MeasurementsFor returns the fixed measurement table of a shape kind.
// SetKind replaces the shape's declarations with this table wholesale.
func MeasurementsFor(kind Kind) []Measurement {
	switch kind {
	case Sphere:
		return []Measurement{
			lengthMeasurement("radius", true),
			areaMeasurement("area", false),
			volumeMeasurement("volume", false),
		}
	case Ring:
		return []Measurement{
			lengthMeasurement("radius", true),
			areaMeasurement("area", false),
		}
	case Disk:
		return []Measurement{
			lengthMeasurement("innerRadius", true),
			lengthMeasurement("outerRadius", true),
			lengthMeasurement("width", false),
			areaMeasurement("area", false),
			areaMeasurement("innerArea", false),
			areaMeasurement("outerArea", false),
		}
	case Tube:
		return []Measurement{
			areaMeasurement("area", false),
			volumeMeasurement("volume", true),
		}
	}
	return nil
}

// Package units provides shared constants and validation for acceleration units
package units

// Unit constants
const (
	MPS2 = "mps2"
	G    = "g"
	FPS2 = "fps2"
)

// StandardGravity is one g in m/s².
const StandardGravity = 9.80665

// ValidUnits contains all valid unit values
var ValidUnits = []string{MPS2, G, FPS2}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mps2, g, fps2"
}

// ConvertAcceleration converts an acceleration from meters per second squared
// to the target units. Sessions store magnitudes in m/s².
func ConvertAcceleration(accelMPS2 float64, targetUnits string) float64 {
	switch targetUnits {
	case MPS2:
		return accelMPS2
	case G:
		return accelMPS2 / StandardGravity
	case FPS2:
		return accelMPS2 * 3.2808398950131
	default:
		return accelMPS2
	}
}

// Label returns the display label for a unit.
func Label(unit string) string {
	switch unit {
	case G:
		return "g"
	case FPS2:
		return "ft/s²"
	default:
		return "m/s²"
	}
}

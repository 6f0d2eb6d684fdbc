package utmconv

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereUndefined Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "Northern"
	case HemisphereSouth:
		return "Southern"
	}
	return "Undefined"
}

// hemisphereForLatitude returns the hemisphere of a latitude in degrees. The
// equator is northern.
func hemisphereForLatitude(latitude float64) Hemisphere {
	if latitude < 0 {
		return HemisphereSouth
	}
	return HemisphereNorth
}

package utmconv

// LatitudeBand is a UTM/MGRS latitude band letter. The value is the ASCII
// letter; the zero value is LatitudeBandUndefined. A, B, Y and Z are the
// polar bands and are never produced by the UTM conversions.
type LatitudeBand byte

// LatitudeBand constants
const (
	LatitudeBandUndefined LatitudeBand = 0
	LatitudeBandA         LatitudeBand = 'A'
	LatitudeBandB         LatitudeBand = 'B'
	LatitudeBandC         LatitudeBand = 'C'
	LatitudeBandD         LatitudeBand = 'D'
	LatitudeBandE         LatitudeBand = 'E'
	LatitudeBandF         LatitudeBand = 'F'
	LatitudeBandG         LatitudeBand = 'G'
	LatitudeBandH         LatitudeBand = 'H'
	LatitudeBandJ         LatitudeBand = 'J'
	LatitudeBandK         LatitudeBand = 'K'
	LatitudeBandL         LatitudeBand = 'L'
	LatitudeBandM         LatitudeBand = 'M'
	LatitudeBandN         LatitudeBand = 'N'
	LatitudeBandP         LatitudeBand = 'P'
	LatitudeBandQ         LatitudeBand = 'Q'
	LatitudeBandR         LatitudeBand = 'R'
	LatitudeBandS         LatitudeBand = 'S'
	LatitudeBandT         LatitudeBand = 'T'
	LatitudeBandU         LatitudeBand = 'U'
	LatitudeBandV         LatitudeBand = 'V'
	LatitudeBandW         LatitudeBand = 'W'
	LatitudeBandX         LatitudeBand = 'X'
	LatitudeBandY         LatitudeBand = 'Y'
	LatitudeBandZ         LatitudeBand = 'Z'
)

const bandMinLat = -80.0 // degrees
const bandMaxLat = 84.0
const bandXMinLat = 72.0

// utmBands holds the 8 degree bands from 80S northwards. X is 12 degrees.
var utmBands = [20]LatitudeBand{
	LatitudeBandC, LatitudeBandD, LatitudeBandE, LatitudeBandF, LatitudeBandG,
	LatitudeBandH, LatitudeBandJ, LatitudeBandK, LatitudeBandL, LatitudeBandM,
	LatitudeBandN, LatitudeBandP, LatitudeBandQ, LatitudeBandR, LatitudeBandS,
	LatitudeBandT, LatitudeBandU, LatitudeBandV, LatitudeBandW, LatitudeBandX,
}

// Valid reports whether b is one of the band letters (A-Z without I and O).
func (b LatitudeBand) Valid() bool {
	return b >= 'A' && b <= 'Z' && b != 'I' && b != 'O'
}

func (b LatitudeBand) isUTM() bool {
	return b.Valid() && b >= LatitudeBandC && b <= LatitudeBandX
}

// Hemisphere returns the hemisphere a band lies in, or HemisphereUndefined
// for an invalid band.
func (b LatitudeBand) Hemisphere() Hemisphere {
	switch {
	case !b.Valid():
		return HemisphereUndefined
	case b >= LatitudeBandN:
		return HemisphereNorth
	}
	return HemisphereSouth
}

func (b LatitudeBand) String() string {
	if !b.Valid() {
		return "Undefined"
	}
	return string(rune(b))
}

// latitudeBandForLatitude returns the band containing a latitude in degrees,
// or LatitudeBandUndefined outside [-80, 84].
func latitudeBandForLatitude(latitude float64) LatitudeBand {
	if latitude >= bandXMinLat && latitude <= bandMaxLat {
		return LatitudeBandX
	} else if latitude >= bandMinLat && latitude < bandXMinLat {
		band := int(((latitude - bandMinLat) / 8) + 1.0e-12)
		if band > len(utmBands)-2 {
			band = len(utmBands) - 2
		}
		return utmBands[band]
	}
	return LatitudeBandUndefined
}

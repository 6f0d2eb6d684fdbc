package utmconv

import "math"

// Ellipsoid is a reference model of the earth defined by its equatorial
// (semi-major) and polar (semi-minor) radii in meters.
type Ellipsoid struct {
	EquatorialRadius float64
	PolarRadius      float64
}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{EquatorialRadius: 6378137.0, PolarRadius: 6356752.314140}

// NewEllipsoid constructs an ellipsoid from its radii. The equatorial radius
// must be greater than the polar radius, which must be greater than zero.
func NewEllipsoid(equatorialRadius, polarRadius float64) (Ellipsoid, error) {
	if math.IsNaN(equatorialRadius) || math.IsInf(equatorialRadius, 0) {
		return Ellipsoid{}, invalidInput("equatorial radius", equatorialRadius)
	}
	if math.IsNaN(polarRadius) || polarRadius <= 0 {
		return Ellipsoid{}, invalidInput("polar radius", polarRadius)
	}
	if equatorialRadius <= polarRadius {
		return Ellipsoid{}, invalidInput("equatorial radius", equatorialRadius)
	}
	return Ellipsoid{EquatorialRadius: equatorialRadius, PolarRadius: polarRadius}, nil
}

// NewEllipsoidFromFlattening constructs an ellipsoid from its semi-major axis
// and flattening, e.g. 6378137 and 1/298.257223563 for WGS84.
func NewEllipsoidFromFlattening(semiMajorAxis, flattening float64) (Ellipsoid, error) {
	if math.IsNaN(flattening) || flattening <= 0 || flattening >= 1 {
		return Ellipsoid{}, invalidInput("flattening", flattening)
	}
	return NewEllipsoid(semiMajorAxis, semiMajorAxis*(1-flattening))
}

// Flattening returns (a-b)/a.
func (e Ellipsoid) Flattening() float64 {
	return (e.EquatorialRadius - e.PolarRadius) / e.EquatorialRadius
}

// SecondEccentricitySquared returns (a²-b²)/b².
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	a2 := e.EquatorialRadius * e.EquatorialRadius
	b2 := e.PolarRadius * e.PolarRadius
	return (a2 - b2) / b2
}

// ThirdFlattening returns Helmert's n = (a-b)/(a+b).
func (e Ellipsoid) ThirdFlattening() float64 {
	return (e.EquatorialRadius - e.PolarRadius) / (e.EquatorialRadius + e.PolarRadius)
}

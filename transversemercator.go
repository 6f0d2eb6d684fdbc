package utmconv

import "math"

// tmCoord is a point in the unscaled Transverse Mercator plane, in meters
// from the central meridian and the equator, with no false origin.
type tmCoord struct {
	Easting  float64
	Northing float64
}

// transverseMercator provides conversions between geodetic coordinates and
// Transverse Mercator coordinates about a single central meridian. The series
// are accurate within a few degrees of the central meridian and degrade,
// without failing, further out.
type transverseMercator struct {
	ellipsoid       Ellipsoid
	centralMeridian float64 // radians
}

func newTransverseMercator(e Ellipsoid, centralMeridian float64) transverseMercator {
	return transverseMercator{ellipsoid: e, centralMeridian: centralMeridian}
}

func (t transverseMercator) convertFromGeodetic(geodeticCoordinates GeodeticCoord) tmCoord {
	phi := degreesToRadians(geodeticCoordinates.Latitude)
	lambda := degreesToRadians(geodeticCoordinates.Longitude)

	a := t.ellipsoid.EquatorialRadius
	b := t.ellipsoid.PolarRadius

	ep2 := t.ellipsoid.SecondEccentricitySquared()
	cosPhi := math.Cos(phi)
	nu2 := ep2 * cosPhi * cosPhi
	N := a * a / (b * math.Sqrt(1+nu2))

	tanPhi := math.Tan(phi)
	t2 := tanPhi * tanPhi
	t4 := t2 * t2
	t6 := t4 * t2

	l := lambda - t.centralMeridian

	// coefficients for l**n; l**1 and l**2 have coefficients of 1
	l3coef := 1 - t2 + nu2
	l4coef := 5 - t2 + 9*nu2 + 4*(nu2*nu2)
	l5coef := 5 - 18*t2 + t4 + 14*nu2 - 58*t2*nu2
	l6coef := 61 - 58*t2 + t4 + 270*nu2 - 330*t2*nu2
	l7coef := 61 - 479*t2 + 179*t4 - t6
	l8coef := 1385 - 3111*t2 + 543*t4 - t6

	easting := N*cosPhi*l +
		N/6*math.Pow(cosPhi, 3)*l3coef*math.Pow(l, 3) +
		N/120*math.Pow(cosPhi, 5)*l5coef*math.Pow(l, 5) +
		N/5040*math.Pow(cosPhi, 7)*l7coef*math.Pow(l, 7)

	northing := arcLengthOfMeridian(t.ellipsoid, phi) +
		tanPhi/2*N*math.Pow(cosPhi, 2)*math.Pow(l, 2) +
		tanPhi/24*N*math.Pow(cosPhi, 4)*l4coef*math.Pow(l, 4) +
		tanPhi/720*N*math.Pow(cosPhi, 6)*l6coef*math.Pow(l, 6) +
		tanPhi/40320*N*math.Pow(cosPhi, 8)*l8coef*math.Pow(l, 8)

	return tmCoord{Easting: easting, Northing: northing}
}

// convertToGeodetic inverts convertFromGeodetic by expanding about the
// footpoint latitude of the northing. Nf, nuf2 and tf play the roles of N,
// nu2 and tan(phi) in the forward direction.
func (t transverseMercator) convertToGeodetic(mapProjectionCoordinates tmCoord) GeodeticCoord {
	x := mapProjectionCoordinates.Easting
	y := mapProjectionCoordinates.Northing

	a := t.ellipsoid.EquatorialRadius
	b := t.ellipsoid.PolarRadius

	phif := footpointLatitude(t.ellipsoid, y)

	ep2 := t.ellipsoid.SecondEccentricitySquared()
	cf := math.Cos(phif)
	nuf2 := ep2 * cf * cf
	Nf := a * a / (b * math.Sqrt(1+nuf2))

	tf := math.Tan(phif)
	tf2 := tf * tf
	tf4 := tf2 * tf2

	// fractional coefficients for x**n
	Nfpow := Nf
	x1frac := 1 / (Nfpow * cf)
	Nfpow *= Nf
	x2frac := tf / (2 * Nfpow)
	Nfpow *= Nf
	x3frac := 1 / (6 * Nfpow * cf)
	Nfpow *= Nf
	x4frac := tf / (24 * Nfpow)
	Nfpow *= Nf
	x5frac := 1 / (120 * Nfpow * cf)
	Nfpow *= Nf
	x6frac := tf / (720 * Nfpow)
	Nfpow *= Nf
	x7frac := 1 / (5040 * Nfpow * cf)
	Nfpow *= Nf
	x8frac := tf / (40320 * Nfpow)

	// polynomial coefficients for x**n; x**1 has none
	x2poly := -1 - nuf2
	x3poly := -1 - 2*tf2 - nuf2
	x4poly := 5 + 3*tf2 + 6*nuf2 - 6*tf2*nuf2 - 3*(nuf2*nuf2) - 9*tf2*(nuf2*nuf2)
	x5poly := 5 + 28*tf2 + 24*tf4 + 6*nuf2 + 8*tf2*nuf2
	x6poly := -61 - 90*tf2 - 45*tf4 - 107*nuf2 + 162*tf2*nuf2
	x7poly := -61 - 662*tf2 - 1320*tf4 - 720*(tf4*tf2)
	x8poly := 1385 + 3633*tf2 + 4095*tf4 + 1575*(tf4*tf2)

	latitude := phif +
		x2frac*x2poly*(x*x) +
		x4frac*x4poly*math.Pow(x, 4) +
		x6frac*x6poly*math.Pow(x, 6) +
		x8frac*x8poly*math.Pow(x, 8)

	longitude := t.centralMeridian +
		x1frac*x +
		x3frac*x3poly*math.Pow(x, 3) +
		x5frac*x5poly*math.Pow(x, 5) +
		x7frac*x7poly*math.Pow(x, 7)

	return GeodeticCoord{
		Latitude:  radiansToDegrees(latitude),
		Longitude: radiansToDegrees(longitude),
	}
}

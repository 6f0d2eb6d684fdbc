package utmconv

import "math"

// arcLengthOfMeridian returns the ellipsoidal distance in meters from the
// equator to the given latitude (radians) along a meridian.
func arcLengthOfMeridian(e Ellipsoid, phi float64) float64 {
	n := e.ThirdFlattening()
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	alpha := ((e.EquatorialRadius + e.PolarRadius) / 2) * (1 + n2/4 + n4/64)
	beta := -3*n/2 + 9*n3/16 - 3*n5/32
	gamma := 15*n2/16 - 15*n4/32
	delta := -35*n3/48 + 105*n5/256
	epsilon := 315 * n4 / 512

	return alpha * (phi +
		beta*math.Sin(2*phi) +
		gamma*math.Sin(4*phi) +
		delta*math.Sin(6*phi) +
		epsilon*math.Sin(8*phi))
}

// footpointLatitude returns the latitude (radians) whose meridian arc length
// is northing. It inverts arcLengthOfMeridian to the same series order.
func footpointLatitude(e Ellipsoid, northing float64) float64 {
	n := e.ThirdFlattening()
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	alpha := ((e.EquatorialRadius + e.PolarRadius) / 2) * (1 + n2/4 + n4/64)
	y := northing / alpha

	beta := 3*n/2 - 27*n3/32 + 269*n5/512
	gamma := 21*n2/16 - 55*n4/32
	delta := 151*n3/96 - 417*n5/128
	epsilon := 1097 * n4 / 512

	return y +
		beta*math.Sin(2*y) +
		gamma*math.Sin(4*y) +
		delta*math.Sin(6*y) +
		epsilon*math.Sin(8*y)
}

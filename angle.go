package utmconv

import (
	"math"

	"github.com/golang/geo/s1"
)

func degreesToRadians(degrees float64) float64 {
	return degrees / 180 * math.Pi
}

func radiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// angleFromDegrees builds an s1.Angle with the same rounding as
// degreesToRadians, so s2 values agree bit for bit with the series input.
func angleFromDegrees(degrees float64) s1.Angle {
	return s1.Angle(degreesToRadians(degrees))
}

func angleToDegrees(a s1.Angle) float64 {
	return radiansToDegrees(a.Radians())
}

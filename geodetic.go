package utmconv

import (
	"math"

	"github.com/golang/geo/s2"
)

// GeodeticCoord is a latitude/longitude pair in degrees on the converter's
// ellipsoid.
type GeodeticCoord struct {
	Latitude  float64
	Longitude float64
}

// GeodeticCoordFromLatLng converts an s2.LatLng to degrees.
func GeodeticCoordFromLatLng(ll s2.LatLng) GeodeticCoord {
	return GeodeticCoord{
		Latitude:  angleToDegrees(ll.Lat),
		Longitude: angleToDegrees(ll.Lng),
	}
}

// LatLng returns the coordinate as an s2.LatLng.
func (g GeodeticCoord) LatLng() s2.LatLng {
	return s2.LatLng{Lat: angleFromDegrees(g.Latitude), Lng: angleFromDegrees(g.Longitude)}
}

// Validate checks that the latitude is within [-90, 90] and the longitude
// within [-180, 180].
func (g GeodeticCoord) Validate() error {
	if math.IsNaN(g.Latitude) || g.Latitude < -90 || g.Latitude > 90 {
		return invalidInput("latitude", g.Latitude)
	}
	if math.IsNaN(g.Longitude) || g.Longitude < -180 || g.Longitude > 180 {
		return invalidInput("longitude", g.Longitude)
	}
	return nil
}

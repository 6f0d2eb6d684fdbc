package utmconv

import (
	"math"

	"github.com/golang/geo/s2"
)

// UTMCoord is a UTM coordinate. Easting and Northing are in meters with the
// false easting, and for the southern hemisphere the false northing, applied.
type UTMCoord struct {
	Easting      float64
	Northing     float64
	Zone         int
	LatitudeBand LatitudeBand
	Hemisphere   Hemisphere
}

// UTM is a UTM coordinate converter. It is immutable and may be shared
// between goroutines.
type UTM struct {
	ellipsoid             Ellipsoid
	transverseMercatorMap [61]transverseMercator
}

const utmScaleFactor = 0.9996
const utmFalseEasting = 500000.0
const utmFalseNorthing = 10000000.0

const utmMinZone = 1
const utmMaxZone = 60
const utmMinEasting = 100000.0
const utmMaxEasting = 900000.0
const utmMinNorthing = 0.0
const utmMaxNorthing = 10000000.0

// NewUTM constructs a new UTM converter for the WGS84 ellipsoid
func NewUTM() *UTM {
	return NewUTMWithEllipsoid(WGS84)
}

// NewUTMWithEllipsoid constructs a UTM converter for the given ellipsoid. The
// ellipsoid is trusted; use NewEllipsoid to build a checked one.
func NewUTMWithEllipsoid(e Ellipsoid) *UTM {
	u := &UTM{ellipsoid: e}
	for zone := utmMinZone; zone <= utmMaxZone; zone++ {
		u.transverseMercatorMap[zone] = newTransverseMercator(e, centralMeridianRadians(zone))
	}
	return u
}

// Ellipsoid returns the converter's ellipsoid.
func (u *UTM) Ellipsoid() Ellipsoid {
	return u.ellipsoid
}

// ZoneForLongitude returns the 6 degree UTM zone containing a longitude in
// degrees. Zone 1 starts at -180 and zone 60 ends at +180. Longitudes outside
// [-180, 180] give zones outside 1-60.
func ZoneForLongitude(longitude float64) int {
	if longitude == 180 {
		return utmMaxZone
	}
	return int(math.Floor((longitude+180)/6)) + 1
}

// CentralMeridian returns the central meridian of a zone in degrees.
func CentralMeridian(zone int) float64 {
	return -183 + float64(zone)*6
}

func centralMeridianRadians(zone int) float64 {
	return degreesToRadians(CentralMeridian(zone))
}

// transverseMercatorForZone returns the projection for a zone, building one
// for zones outside 1-60.
func (u *UTM) transverseMercatorForZone(zone int) transverseMercator {
	if zone >= utmMinZone && zone <= utmMaxZone {
		return u.transverseMercatorMap[zone]
	}
	return newTransverseMercator(u.ellipsoid, centralMeridianRadians(zone))
}

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to UTM coordinates. The zone is derived from the longitude. No range
// checking is done; see ConvertFromLatLng.
func (u *UTM) ConvertFromGeodetic(geodeticCoordinates GeodeticCoord) UTMCoord {
	return u.ConvertFromGeodeticInZone(geodeticCoordinates, ZoneForLongitude(geodeticCoordinates.Longitude))
}

// ConvertFromGeodeticInZone converts geodetic coordinates to UTM coordinates
// in the given zone rather than the zone containing the longitude. This is
// useful to keep features that straddle a zone boundary in a single grid, or
// for the Norway and Svalbard zone exceptions.
func (u *UTM) ConvertFromGeodeticInZone(geodeticCoordinates GeodeticCoord, zone int) UTMCoord {
	tm := u.transverseMercatorForZone(zone).convertFromGeodetic(geodeticCoordinates)

	easting := tm.Easting*utmScaleFactor + utmFalseEasting
	northing := tm.Northing * utmScaleFactor
	if northing < 0 {
		northing += utmFalseNorthing
	}

	return UTMCoord{
		Easting:      easting,
		Northing:     northing,
		Zone:         zone,
		LatitudeBand: latitudeBandForLatitude(geodeticCoordinates.Latitude),
		Hemisphere:   hemisphereForLatitude(geodeticCoordinates.Latitude),
	}
}

// ConvertToGeodetic converts UTM coordinates to geodetic coordinates. Only the
// zone and hemisphere are used; when the hemisphere is undefined the latitude
// band decides it, and with neither set the coordinate is taken as northern.
// No range checking is done; see ConvertToLatLng.
func (u *UTM) ConvertToGeodetic(utmCoordinates UTMCoord) GeodeticCoord {
	x := (utmCoordinates.Easting - utmFalseEasting) / utmScaleFactor

	y := utmCoordinates.Northing
	if utmCoordinates.hemisphere() == HemisphereSouth {
		y -= utmFalseNorthing
	}
	y /= utmScaleFactor

	return u.transverseMercatorForZone(utmCoordinates.Zone).convertToGeodetic(tmCoord{Easting: x, Northing: y})
}

// ConvertFromLatLng validates an s2.LatLng and converts it to UTM
// coordinates.
func (u *UTM) ConvertFromLatLng(ll s2.LatLng) (UTMCoord, error) {
	geodeticCoordinates := GeodeticCoordFromLatLng(ll)
	if err := geodeticCoordinates.Validate(); err != nil {
		return UTMCoord{}, err
	}
	return u.ConvertFromGeodetic(geodeticCoordinates), nil
}

// ConvertToLatLng validates UTM coordinates and converts them to an
// s2.LatLng.
func (u *UTM) ConvertToLatLng(utmCoordinates UTMCoord) (s2.LatLng, error) {
	if err := utmCoordinates.Validate(); err != nil {
		return s2.LatLng{}, err
	}
	return u.ConvertToGeodetic(utmCoordinates).LatLng(), nil
}

func (c UTMCoord) hemisphere() Hemisphere {
	if c.Hemisphere != HemisphereUndefined {
		return c.Hemisphere
	}
	return c.LatitudeBand.Hemisphere()
}

// Validate checks the zone, the hemisphere (or, if it is undefined, the
// latitude band) and that easting and northing lie in the UTM grid. A C-X
// band that disagrees with the hemisphere is rejected; polar bands are not
// checked against it.
func (c UTMCoord) Validate() error {
	if c.Zone < utmMinZone || c.Zone > utmMaxZone {
		return invalidInput("zone", float64(c.Zone))
	}
	switch c.Hemisphere {
	case HemisphereNorth, HemisphereSouth:
		if c.LatitudeBand.isUTM() && c.LatitudeBand.Hemisphere() != c.Hemisphere {
			return invalidInput("latitude band", float64(c.LatitudeBand))
		}
	case HemisphereUndefined:
		if !c.LatitudeBand.Valid() {
			return invalidInput("hemisphere", float64(c.Hemisphere))
		}
	default:
		return invalidInput("hemisphere", float64(c.Hemisphere))
	}
	if math.IsNaN(c.Easting) || c.Easting < utmMinEasting || c.Easting > utmMaxEasting {
		return invalidInput("easting", c.Easting)
	}
	if math.IsNaN(c.Northing) || c.Northing < utmMinNorthing || c.Northing > utmMaxNorthing {
		return invalidInput("northing", c.Northing)
	}
	return nil
}

package utmconv

import (
	"math"
	"testing"
)

func TestArcLengthOfMeridian(t *testing.T) {
	if s := arcLengthOfMeridian(WGS84, 0); s != 0 {
		t.Errorf("got %f at the equator, expected 0", s)
	}
	// quarter meridian of WGS84
	if s := arcLengthOfMeridian(WGS84, math.Pi/2); math.Abs(s-10001965.7293) > 1e-3 {
		t.Errorf("got %f at the pole, expected 10001965.7293", s)
	}
	if n, s := arcLengthOfMeridian(WGS84, 0.7), arcLengthOfMeridian(WGS84, -0.7); n != -s {
		t.Errorf("expected symmetry about the equator, got %f and %f", n, s)
	}
}

func TestFootpointLatitude(t *testing.T) {
	for lat := -89.0; lat <= 89; lat += 0.5 {
		phi := degreesToRadians(lat)
		got := footpointLatitude(WGS84, arcLengthOfMeridian(WGS84, phi))
		if math.Abs(got-phi) > 1e-12 {
			t.Fatalf("lat %f: got %g, expected %g", lat, got, phi)
		}
	}
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	tm := newTransverseMercator(WGS84, degreesToRadians(9))
	for lat := -80.0; lat <= 84; lat += 1 {
		for lng := 6.0; lng <= 12; lng += 0.5 {
			geo := GeodeticCoord{Latitude: lat, Longitude: lng}
			xy := tm.convertFromGeodetic(geo)
			geo2 := tm.convertToGeodetic(xy)
			if math.Abs(geo.Latitude-geo2.Latitude) > 1e-8 || math.Abs(geo.Longitude-geo2.Longitude) > 1e-8 {
				t.Fatalf("expected %v, got %v", geo, geo2)
			}
		}
	}
}

func TestTransverseMercatorCentralMeridian(t *testing.T) {
	tm := newTransverseMercator(WGS84, degreesToRadians(9))
	xy := tm.convertFromGeodetic(GeodeticCoord{Latitude: 45, Longitude: 9})
	if xy.Easting != 0 {
		t.Errorf("got Easting %g, expected 0", xy.Easting)
	}
	if want := arcLengthOfMeridian(WGS84, degreesToRadians(45)); xy.Northing != want {
		t.Errorf("got Northing %f, expected %f", xy.Northing, want)
	}
}

func TestAngleConversion(t *testing.T) {
	if r := degreesToRadians(180); r != math.Pi {
		t.Errorf("got %g, expected Pi", r)
	}
	if d := radiansToDegrees(math.Pi / 2); d != 90 {
		t.Errorf("got %g, expected 90", d)
	}
	if d := angleToDegrees(angleFromDegrees(-33.9)); math.Abs(d+33.9) > 1e-12 {
		t.Errorf("got %g, expected -33.9", d)
	}
}

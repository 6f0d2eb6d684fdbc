package utmconv_test

import (
	"testing"

	"github.com/tzneal/utmconv"
)

func TestLatitudeBand(t *testing.T) {
	utm := utmconv.NewUTM()
	tests := []struct {
		lat  float64
		band utmconv.LatitudeBand
	}{
		{-85, utmconv.LatitudeBandUndefined},
		{-80.3, utmconv.LatitudeBandUndefined},
		{-80.0000001, utmconv.LatitudeBandUndefined},
		{-80, utmconv.LatitudeBandC},
		{-72.1, utmconv.LatitudeBandC},
		{-72, utmconv.LatitudeBandD},
		{-33.9, utmconv.LatitudeBandH},
		{-0.5, utmconv.LatitudeBandM},
		{0, utmconv.LatitudeBandN},
		{7.9, utmconv.LatitudeBandN},
		{8, utmconv.LatitudeBandP},
		{59.9, utmconv.LatitudeBandV},
		{64, utmconv.LatitudeBandW},
		{71.9, utmconv.LatitudeBandW},
		{72, utmconv.LatitudeBandX},
		{84, utmconv.LatitudeBandX},
		{84.0000001, utmconv.LatitudeBandUndefined},
		{84.3, utmconv.LatitudeBandUndefined},
		{85, utmconv.LatitudeBandUndefined},
	}
	for _, tc := range tests {
		uc := utm.ConvertFromGeodetic(utmconv.GeodeticCoord{Latitude: tc.lat, Longitude: 10})
		if uc.LatitudeBand != tc.band {
			t.Errorf("latitude %f: got band %s, expected %s", tc.lat, uc.LatitudeBand, tc.band)
		}
	}
}

func TestLatitudeBandLetters(t *testing.T) {
	for b := utmconv.LatitudeBand(0); b < 128; b++ {
		valid := b >= 'A' && b <= 'Z' && b != 'I' && b != 'O'
		if b.Valid() != valid {
			t.Errorf("%q: got Valid %v", rune(b), b.Valid())
		}
	}
	if utmconv.LatitudeBandM.Hemisphere() != utmconv.HemisphereSouth {
		t.Errorf("expected M to be southern")
	}
	if utmconv.LatitudeBandN.Hemisphere() != utmconv.HemisphereNorth {
		t.Errorf("expected N to be northern")
	}
	if utmconv.LatitudeBandUndefined.Hemisphere() != utmconv.HemisphereUndefined {
		t.Errorf("expected an undefined band to have an undefined hemisphere")
	}
	if s := utmconv.LatitudeBandUndefined.String(); s != "Undefined" {
		t.Errorf("got %q, expected Undefined", s)
	}
	if s := utmconv.LatitudeBandX.String(); s != "X" {
		t.Errorf("got %q, expected X", s)
	}
}

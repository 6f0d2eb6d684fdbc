package utmconv_test

import (
	"errors"
	"testing"

	"github.com/tzneal/utmconv"
)

func TestUTMCoordString(t *testing.T) {
	tests := []struct {
		c    utmconv.UTMCoord
		want string
	}{
		{utmconv.UTMCoord{Easting: 598430, Northing: 6643010, Zone: 32, LatitudeBand: utmconv.LatitudeBandV, Hemisphere: utmconv.HemisphereNorth},
			"32V N 598430.000 6643010.000"},
		{utmconv.UTMCoord{Easting: 259583.2216, Northing: 6245888.0455, Zone: 34, Hemisphere: utmconv.HemisphereSouth},
			"34 S 259583.222 6245888.046"},
		{utmconv.UTMCoord{Easting: 500000, Northing: 0, Zone: 1},
			"1 500000.000 0.000"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("got %q, expected %q", got, tc.want)
		}
	}
}

func TestParseUTMCoord(t *testing.T) {
	c, err := utmconv.ParseUTMCoord("32v n 598430 6643010.5")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := utmconv.UTMCoord{Easting: 598430, Northing: 6643010.5, Zone: 32, LatitudeBand: utmconv.LatitudeBandV, Hemisphere: utmconv.HemisphereNorth}
	if c != want {
		t.Fatalf("got %v, expected %v", c, want)
	}

	c, err = utmconv.ParseUTMCoord("34H 259583.222 6245888.046")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if c.Zone != 34 || c.LatitudeBand != utmconv.LatitudeBandH || c.Hemisphere != utmconv.HemisphereUndefined {
		t.Fatalf("got %v", c)
	}
	geo := utmconv.DefaultUTMConverter.ConvertToGeodetic(c)
	if geo.Latitude > -33 || geo.Latitude < -35 {
		t.Fatalf("expected the band to place the coordinate in the south, got %v", geo)
	}

	utm := utmconv.NewUTM()
	for _, geo := range []utmconv.GeodeticCoord{{Latitude: 59.9, Longitude: 10.7}, {Latitude: -45, Longitude: -70}} {
		uc := utm.ConvertFromGeodetic(geo)
		parsed, err := utmconv.ParseUTMCoord(uc.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", uc, err)
		}
		if parsed.String() != uc.String() {
			t.Fatalf("got %s, expected %s", parsed, uc)
		}
	}
}

func TestParseUTMCoordErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"32V",
		"32V N 1 2 3",
		"V 598430 6643010",
		"123V 598430 6643010",
		"32I 598430 6643010",
		"32VV 598430 6643010",
		"32V X 598430 6643010",
		"32V N east 6643010",
		"32V N 598430 north",
	} {
		if _, err := utmconv.ParseUTMCoord(s); !errors.Is(err, utmconv.ErrInvalidInput) {
			t.Errorf("%q: expected ErrInvalidInput, got %v", s, err)
		}
	}
}

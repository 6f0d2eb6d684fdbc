package utmconv

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// String formats the coordinate as zone and band, hemisphere, easting and
// northing, e.g. "32V N 598430.000 6643010.000". The band letter and the
// hemisphere are left out when undefined.
func (c UTMCoord) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(c.Zone))
	if c.LatitudeBand.Valid() {
		sb.WriteByte(byte(c.LatitudeBand))
	}
	switch c.Hemisphere {
	case HemisphereNorth:
		sb.WriteString(" N")
	case HemisphereSouth:
		sb.WriteString(" S")
	}
	fmt.Fprintf(&sb, " %.3f %.3f", c.Easting, c.Northing)
	return sb.String()
}

// ParseUTMCoord parses the form written by UTMCoord.String. The hemisphere
// field is optional, and the band letter may be lower case.
func ParseUTMCoord(s string) (UTMCoord, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 && len(fields) != 4 {
		return UTMCoord{}, fmt.Errorf("utm coordinate %q: expected 3 or 4 fields: %w", s, ErrInvalidInput)
	}

	var c UTMCoord
	zone, band, err := breakZoneString(fields[0])
	if err != nil {
		return UTMCoord{}, err
	}
	c.Zone = zone
	c.LatitudeBand = band

	if len(fields) == 4 {
		switch strings.ToUpper(fields[1]) {
		case "N":
			c.Hemisphere = HemisphereNorth
		case "S":
			c.Hemisphere = HemisphereSouth
		default:
			return UTMCoord{}, fmt.Errorf("utm hemisphere %q: %w", fields[1], ErrInvalidInput)
		}
		fields = append(fields[:1], fields[2:]...)
	}

	if c.Easting, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return UTMCoord{}, fmt.Errorf("utm easting %q: %w", fields[1], ErrInvalidInput)
	}
	if c.Northing, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return UTMCoord{}, fmt.Errorf("utm northing %q: %w", fields[2], ErrInvalidInput)
	}
	return c, nil
}

// breakZoneString splits "32V" into its zone number and band letter.
func breakZoneString(s string) (zone int, band LatitudeBand, err error) {
	i := 0
	for i < len(s) && isdigit(s[i]) {
		i++
	}
	if i == 0 || i > 2 {
		return 0, 0, fmt.Errorf("utm zone %q: %w", s, ErrInvalidInput)
	}
	zone, _ = strconv.Atoi(s[:i])

	switch rest := s[i:]; len(rest) {
	case 0:
	case 1:
		band = LatitudeBand(unicode.ToUpper(rune(rest[0])))
		if !isalpha(rest[0]) || !band.Valid() {
			return 0, 0, fmt.Errorf("utm latitude band %q: %w", rest, ErrInvalidInput)
		}
	default:
		return 0, 0, fmt.Errorf("utm zone %q: %w", s, ErrInvalidInput)
	}
	return zone, band, nil
}

func isdigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func isalpha(r byte) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z'
}

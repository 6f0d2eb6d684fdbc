package utmconv

// DefaultUTMConverter is a WGS84 ellipsoid based UTM converter.
var DefaultUTMConverter *UTM

func init() {
	DefaultUTMConverter = NewUTM()
}

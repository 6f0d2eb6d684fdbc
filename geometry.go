package utmconv

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// ZoneProjection projects points into a single fixed UTM zone and hemisphere,
// regardless of which zone they fall in. Planar points are (easting,
// northing) in meters. It implements s2.Projection.
type ZoneProjection struct {
	utm        *UTM
	zone       int
	hemisphere Hemisphere
}

// ZoneProjection returns a projection into the given zone and hemisphere.
func (u *UTM) ZoneProjection(zone int, hemisphere Hemisphere) *ZoneProjection {
	return &ZoneProjection{utm: u, zone: zone, hemisphere: hemisphere}
}

// Zone returns the projection's UTM zone.
func (p *ZoneProjection) Zone() int { return p.zone }

// Hemisphere returns the projection's hemisphere.
func (p *ZoneProjection) Hemisphere() Hemisphere { return p.hemisphere }

func (p *ZoneProjection) fromGeodetic(g GeodeticCoord) r2.Point {
	tm := p.utm.transverseMercatorForZone(p.zone).convertFromGeodetic(g)
	northing := tm.Northing * utmScaleFactor
	if p.hemisphere == HemisphereSouth {
		northing += utmFalseNorthing
	}
	return r2.Point{X: tm.Easting*utmScaleFactor + utmFalseEasting, Y: northing}
}

func (p *ZoneProjection) toGeodetic(pt r2.Point) GeodeticCoord {
	return p.utm.ConvertToGeodetic(UTMCoord{
		Easting:    pt.X,
		Northing:   pt.Y,
		Zone:       p.zone,
		Hemisphere: p.hemisphere,
	})
}

// Project converts a point on the sphere to UTM easting and northing.
func (p *ZoneProjection) Project(pt s2.Point) r2.Point {
	return p.FromLatLng(s2.LatLngFromPoint(pt))
}

// Unproject converts UTM easting and northing to a point on the sphere.
func (p *ZoneProjection) Unproject(pt r2.Point) s2.Point {
	return s2.PointFromLatLng(p.ToLatLng(pt))
}

// FromLatLng returns the LatLng projected into UTM easting and northing.
func (p *ZoneProjection) FromLatLng(ll s2.LatLng) r2.Point {
	return p.fromGeodetic(GeodeticCoordFromLatLng(ll))
}

// ToLatLng returns the LatLng of a UTM easting and northing.
func (p *ZoneProjection) ToLatLng(pt r2.Point) s2.LatLng {
	return p.toGeodetic(pt).LatLng()
}

// Interpolate returns the point obtained by interpolating the given
// fraction of the distance along the line from A to B.
func (p *ZoneProjection) Interpolate(f float64, a, b r2.Point) r2.Point {
	return a.Mul(1 - f).Add(b.Mul(f))
}

// WrapDistance reports the coordinate wrapping distance along each axis. A
// UTM grid does not wrap.
func (p *ZoneProjection) WrapDistance() r2.Point {
	return r2.Point{X: 0, Y: 0}
}

// WrapDestination returns b unchanged since the grid does not wrap.
func (p *ZoneProjection) WrapDestination(a, b r2.Point) r2.Point {
	return b
}

// ToUTM is an orb.Projection from WGS84 lon/lat points to UTM easting and
// northing in this zone.
func (p *ZoneProjection) ToUTM(pt orb.Point) orb.Point {
	r := p.fromGeodetic(GeodeticCoord{Latitude: pt.Lat(), Longitude: pt.Lon()})
	return orb.Point{r.X, r.Y}
}

// ToWGS84 is an orb.Projection from UTM easting and northing in this zone to
// lon/lat points.
func (p *ZoneProjection) ToWGS84(pt orb.Point) orb.Point {
	g := p.toGeodetic(r2.Point{X: pt.X(), Y: pt.Y()})
	return orb.Point{g.Longitude, g.Latitude}
}

// ProjectGeometry projects a lon/lat geometry into a single UTM grid chosen
// from the centroid of its bound, returning the projected geometry and the
// projection used. The input geometry is not modified.
func (u *UTM) ProjectGeometry(g orb.Geometry) (orb.Geometry, *ZoneProjection) {
	center := g.Bound().Center()
	p := u.ZoneProjection(ZoneForLongitude(center.Lon()), hemisphereForLatitude(center.Lat()))
	return project.Geometry(orb.Clone(g), p.ToUTM), p
}

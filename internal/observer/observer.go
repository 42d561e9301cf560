// Package observer models the observing site's geometry: its geodetic
// to geocentric conversion on the WGS-84 ellipsoid and the geocentric
// position/velocity induced purely by Earth's diurnal rotation.
package observer

import (
	"math"

	"github.com/star/astrom/internal/units"
	"github.com/star/astrom/internal/vec"
)

// WGS-84 ellipsoid parameters.
const (
	wgs84A  = 6378137.0             // semi-major axis (meters)
	wgs84F  = 1.0 / 298.257223563   // flattening
	wgs84E2 = wgs84F * (2 - wgs84F) // first eccentricity squared
)

// GeodeticToGeocentric converts geodetic latitude (radians) and height
// above the ellipsoid (metres) to cylindrical geocentric coordinates:
// u, the distance from the spin axis, and v, the distance north of the
// equatorial plane, both in metres.
func GeodeticToGeocentric(lat, height float64) (u, v float64) {
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)

	// Radius of curvature in the prime vertical.
	n := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)

	u = (n + height) * cosLat
	v = (n*(1-wgs84E2) + height) * sinLat
	return u, v
}

// PV returns the geocentric position (AU) and velocity (AU/day) of a
// site at geodetic latitude lat (radians) and height (metres) for the
// given local apparent sidereal time (radians). The vectors are in the
// true equator and equinox of date frame and describe only the diurnal
// rotation about the spin axis; Earth's orbital motion is added by the
// caller from the ephemeris.
func PV(lat, height, last float64) (pos, vel vec.V3) {
	u, v := GeodeticToGeocentric(lat, height)
	sinT, cosT := math.Sincos(last)

	pos = vec.V3{X: u * cosT, Y: u * sinT, Z: v}.Scale(1 / units.AU)

	// v = ω × r, with ω along +Z.
	w := units.OmegaEarth * units.SecPerDay
	vel = vec.V3{X: -w * pos.Y, Y: w * pos.X, Z: 0}
	return pos, vel
}

// Package starpos propagates catalog star positions: spherical to
// Cartesian conversions and rigorous space motion from proper motion,
// parallax and radial velocity.
package starpos

import (
	"math"

	"github.com/star/astrom/internal/units"
	"github.com/star/astrom/internal/vec"
)

// UnitVector converts a spherical direction (ra, dec in radians) to a
// Cartesian unit vector.
func UnitVector(ra, dec float64) vec.V3 {
	sr, cr := math.Sincos(ra)
	sd, cd := math.Sincos(dec)
	return vec.V3{X: cr * cd, Y: sr * cd, Z: sd}
}

// Spherical converts a Cartesian direction back to (ra, dec) in
// radians, with ra normalized to [0, 2pi). The zero vector maps to
// (0, 0) rather than NaN.
func Spherical(p vec.V3) (ra, dec float64) {
	r := math.Hypot(p.X, p.Y)
	if r != 0 {
		ra = math.Atan2(p.Y, p.X)
		if ra < 0 {
			ra += 2 * math.Pi
		}
	}
	if p.X != 0 || p.Y != 0 || p.Z != 0 {
		dec = math.Atan2(p.Z, r)
	}
	return ra, dec
}

// SpaceMotion propagates a catalog position from epochFrom to epochTo
// (Julian years), returning the updated (ra, dec) in radians.
//
// Inputs: ra, dec in radians; pmRA, pmDec in radians/year as true
// angular rates on the sky (the RA rate is not divided by cos(dec));
// parallax in arcseconds; rv in km/s.
//
// The motion is integrated on the unit sphere: the tangent-plane
// velocity from the proper motions plus the radial foreshortening term
// coupling rv and parallax are applied as a Cartesian displacement and
// the result renormalized, so large time baselines and high proper
// motions stay rigorous. Zero parallax simply drops the foreshortening
// term (a target at infinity).
func SpaceMotion(ra, dec, pmRA, pmDec, parallax, rv, epochFrom, epochTo float64) (float64, float64) {
	sr, cr := math.Sincos(ra)
	sd, cd := math.Sincos(dec)

	p := vec.V3{X: cr * cd, Y: sr * cd, Z: sd}
	east := vec.V3{X: -sr, Y: cr, Z: 0}
	north := vec.V3{X: -cr * sd, Y: -sr * sd, Z: cd}

	// Radial motion expressed as an angular rate, rad/yr.
	w := units.KmPerSecToAUPerYear * rv * parallax * units.ArcsecToRad

	motion := east.Scale(pmRA).Add(north.Scale(pmDec)).Add(p.Scale(w))
	p = p.Add(motion.Scale(epochTo - epochFrom)).Unit()

	return Spherical(p)
}

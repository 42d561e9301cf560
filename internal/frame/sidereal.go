package frame

import (
	"math"

	"github.com/star/astrom/internal/units"
)

// GMST calculates Greenwich Mean Sidereal Time in radians for a given
// UT expressed as MJD. Uses the IAU-82 model as described in Vallado
// "Fundamentals of Astrodynamics".
//
// The day fraction is split out and added separately so precision is
// not lost multiplying the large secular coefficient by a large T.
func GMST(ut float64) float64 {
	tu := (ut - units.MJDJ2000) / units.DaysPerJulianCentury

	// GMST at 0h plus the secular drift, seconds of time.
	gmstSec := 24110.54841 +
		(8640184.812866+(0.093104-6.2e-6*tu)*tu)*tu

	frac := ut - math.Floor(ut)
	rad := frac*2*math.Pi + gmstSec*(2*math.Pi/units.SecPerDay)

	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// LocalApparentSiderealTime returns LAST in radians at the site:
// GMST of the (quasi-UT) argument plus east longitude plus the
// equation of the equinoxes evaluated at the dynamical time.
func LocalApparentSiderealTime(ut, tdb, elong float64) float64 {
	last := math.Mod(GMST(ut)+elong+EquationOfEquinoxes(tdb), 2*math.Pi)
	if last < 0 {
		last += 2 * math.Pi
	}
	return last
}

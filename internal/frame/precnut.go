// Package frame produces the rotation between the mean equator and
// equinox of J2000 and the true equator and equinox of date, plus the
// sidereal-time quantities that depend on it.
//
// Precession follows the IAU 1976 three-angle model; nutation keeps
// the four dominant terms of the IAU 1980 series (good to ~0.5 arcsec,
// which bounds the frame rotation error well below the accuracy of the
// bundled ephemeris). The rest of the engine consumes only the
// resulting matrix and the two sidereal scalars, so a full-series
// implementation can be swapped in behind the same signatures.
package frame

import (
	"math"

	"github.com/star/astrom/internal/units"
	"github.com/star/astrom/internal/vec"
)

// centuries returns Julian centuries of TDB from J2000.
func centuries(tdb float64) float64 {
	return (tdb - units.MJDJ2000) / units.DaysPerJulianCentury
}

// precession returns the rotation from the mean equator/equinox of
// J2000 to the mean equator/equinox of date (IAU 1976 angles).
func precession(t float64) vec.M3 {
	zeta := (2306.2181 + (0.30188+0.017998*t)*t) * t * units.ArcsecToRad
	z := (2306.2181 + (1.09468+0.018203*t)*t) * t * units.ArcsecToRad
	theta := (2004.3109 - (0.42665+0.041833*t)*t) * t * units.ArcsecToRad

	return vec.Rz(-z).Mul(vec.Ry(theta)).Mul(vec.Rz(-zeta))
}

// meanObliquity returns the mean obliquity of the ecliptic in radians
// (IAU 1976 polynomial).
func meanObliquity(t float64) float64 {
	return (84381.448 + (-46.8150+(-0.00059+0.001813*t)*t)*t) * units.ArcsecToRad
}

// nutation returns the nutation in longitude and obliquity in radians,
// from the four leading IAU 1980 series terms.
func nutation(t float64) (dpsi, deps float64) {
	om := (125.04452 - 1934.136261*t) * units.DegToRad // lunar ascending node
	ls := (280.4665 + 36000.7698*t) * units.DegToRad   // mean longitude of Sun
	lm := (218.3165 + 481267.8813*t) * units.DegToRad  // mean longitude of Moon

	dpsi = (-17.2000*math.Sin(om) -
		1.3187*math.Sin(2*ls) -
		0.2274*math.Sin(2*lm) +
		0.2062*math.Sin(2*om)) * units.ArcsecToRad
	deps = (9.2025*math.Cos(om) +
		0.5736*math.Cos(2*ls) +
		0.0977*math.Cos(2*lm) -
		0.0895*math.Cos(2*om)) * units.ArcsecToRad
	return dpsi, deps
}

// PrecNutMatrix returns the rotation from the mean equator and equinox
// of J2000 to the true equator and equinox of date at the given TDB
// (MJD). Apply its transpose to go true-of-date -> mean J2000.
func PrecNutMatrix(tdb float64) vec.M3 {
	t := centuries(tdb)
	eps0 := meanObliquity(t)
	dpsi, deps := nutation(t)

	n := vec.Rx(-(eps0 + deps)).Mul(vec.Rz(-dpsi)).Mul(vec.Rx(eps0))
	return n.Mul(precession(t))
}

// EquationOfEquinoxes returns the equation of the equinoxes (apparent
// minus mean sidereal time) in radians at the given TDB (MJD),
// including the IAU 1994 complementary terms.
func EquationOfEquinoxes(tdb float64) float64 {
	t := centuries(tdb)
	eps0 := meanObliquity(t)
	dpsi, deps := nutation(t)
	om := (125.04452 - 1934.136261*t) * units.DegToRad

	return dpsi*math.Cos(eps0+deps) +
		(0.00264*math.Sin(om)+0.000063*math.Sin(2*om))*units.ArcsecToRad
}

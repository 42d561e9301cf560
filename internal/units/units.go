// Package units holds the unit conversions and physical constants shared
// across the transformation chain. Every cross-package conversion goes
// through a named constant here rather than an inline magic number, so
// the hours/degrees/radians and AU/metres/days boundaries stay auditable.
package units

import "math"

// Angle conversions.
const (
	DegToRad = math.Pi / 180.0
	RadToDeg = 180.0 / math.Pi

	// Right ascension is hours at the API boundary, radians internally.
	HourToRad = 15.0 * DegToRad
	RadToHour = 1.0 / HourToRad

	ArcsecToRad = DegToRad / 3600.0
	RadToArcsec = 3600.0 * RadToDeg
)

// Time conversions.
const (
	SecPerDay            = 86400.0
	DayPerSec            = 1.0 / SecPerDay
	DaysPerJulianYear    = 365.25
	DaysPerJulianCentury = 36525.0
)

// Reference epochs (MJD).
const (
	MJDJ2000 = 51544.5 // J2000.0 = 2000 January 1.5 TT
)

// Physical constants.
const (
	AU         = 1.49597870693e11     // astronomical unit, metres
	LightSpeed = 2.99792458e8         // speed of light, m/s
	OmegaEarth = 7.292115146706979e-5 // Earth rotation rate, rad/s (IAU value)
	TTMinusTAI = 32.184               // TT-TAI, seconds (definition)

	// 1 km/s expressed in AU per Julian year; couples radial velocity
	// and parallax in the space-motion foreshortening term.
	KmPerSecToAUPerYear = 0.21094502
)

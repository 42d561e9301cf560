// Package ephem provides Earth's heliocentric and barycentric position
// and velocity from a truncated analytical model.
//
// The model composes three pieces, all in the mean equator and equinox
// of J2000 frame:
//
//   - the Earth-Moon barycentre around the Sun from the low-order
//     solar-longitude series of the Astronomical Almanac (USNO),
//   - the Earth's offset from the EMB from the leading terms of the
//     lunar theory (Meeus ch. 47),
//   - the Sun's offset from the solar-system barycentre from
//     first-order elliptical orbits of the four giant planets
//     (Standish J2000 mean elements, inclinations neglected).
//
// Positions are good to a few times 1e-6 AU (several hundred km),
// which keeps light-time corrections accurate to a couple of
// milliseconds and the induced radial velocities to a few m/s. A
// high-precision numerical ephemeris can replace this model behind the
// same State contract with no change downstream.
package ephem

import (
	"math"

	"github.com/star/astrom/internal/units"
	"github.com/star/astrom/internal/vec"
)

// State holds Earth-centre position and velocity relative to the Sun
// and to the solar-system barycentre, in AU and AU/day, mean equator
// and equinox of J2000.
type State struct {
	HelioPos, HelioVel vec.V3
	BaryPos, BaryVel   vec.V3
}

// Step used for the central-difference velocity evaluation, days.
const velStep = 0.05

// Earth returns the Earth state at the given TDB (MJD).
func Earth(tdb float64) State {
	hp := helioPos(tdb)
	hv := helioPos(tdb + velStep).Sub(helioPos(tdb - velStep)).Scale(1 / (2 * velStep))

	sp := sunFromBarycentre(tdb)
	sv := sunFromBarycentre(tdb + velStep).Sub(sunFromBarycentre(tdb - velStep)).Scale(1 / (2 * velStep))

	return State{
		HelioPos: hp,
		HelioVel: hv,
		BaryPos:  hp.Add(sp),
		BaryVel:  hv.Add(sv),
	}
}

// Obliquity of the ecliptic at J2000, radians (IAU 1976).
const epsJ2000 = 23.43929111 * units.DegToRad

// General precession in ecliptic longitude, degrees per Julian
// century. Used to refer of-date longitudes to the J2000 equinox.
const precRate = 1.3969716

// eclipticToEquatorial rotates an ecliptic-of-J2000 vector into the
// J2000 equatorial frame.
func eclipticToEquatorial(p vec.V3) vec.V3 {
	return vec.Rx(-epsJ2000).Apply(p)
}

// helioPos returns the Earth-centre heliocentric position at tdb in
// AU, J2000 equatorial.
func helioPos(tdb float64) vec.V3 {
	t := (tdb - units.MJDJ2000) / units.DaysPerJulianCentury

	// Solar geometric longitude and distance (Almanac low-order
	// series, mean equinox of date).
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := (357.52911 + 35999.05029*t - 0.0001537*t*t) * units.DegToRad
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)
	sunLon := l0 + c
	r := 1.000001018 * (1 - 0.01671123*math.Cos(m) - 0.00014*math.Cos(2*m))

	// Earth as seen from the Sun is the antipode; refer to J2000.
	lon := (sunLon + 180 - precRate*t) * units.DegToRad
	emb := vec.V3{X: r * math.Cos(lon), Y: r * math.Sin(lon)}

	return eclipticToEquatorial(emb.Sub(moonGeocentric(tdb).Scale(moonFrac)))
}

// Moon/(Earth+Moon) mass fraction: EMB = Earth + moonFrac * r_moon.
const moonFrac = 1.0 / 82.30056

// moonGeocentric returns the geocentric position of the Moon at tdb in
// AU, ecliptic of J2000. Leading Meeus terms only; good to ~0.2% of
// the 4700 km Earth-EMB offset it is used for.
func moonGeocentric(tdb float64) vec.V3 {
	t := (tdb - units.MJDJ2000) / units.DaysPerJulianCentury

	lp := 218.3164477 + 481267.88123421*t // mean longitude, of date
	d := (297.8501921 + 445267.1114034*t) * units.DegToRad
	ms := (357.5291092 + 35999.0502909*t) * units.DegToRad
	mm := (134.9633964 + 477198.8675055*t) * units.DegToRad
	f := (93.2720950 + 483202.0175233*t) * units.DegToRad

	lon := lp +
		6.288774*math.Sin(mm) +
		1.274027*math.Sin(2*d-mm) +
		0.658314*math.Sin(2*d) +
		0.213618*math.Sin(2*mm) -
		0.185116*math.Sin(ms) -
		0.114332*math.Sin(2*f)
	lat := (5.128122*math.Sin(f) +
		0.280602*math.Sin(mm+f) +
		0.277693*math.Sin(mm-f) +
		0.173237*math.Sin(2*d-f)) * units.DegToRad
	distKm := 385000.56 -
		20905.355*math.Cos(mm) -
		3699.111*math.Cos(2*d-mm) -
		2955.968*math.Cos(2*d) -
		569.925*math.Cos(2*mm)

	lonr := (lon - precRate*t) * units.DegToRad
	r := distKm * 1e3 / units.AU
	cb := math.Cos(lat)
	return vec.V3{
		X: r * cb * math.Cos(lonr),
		Y: r * cb * math.Sin(lonr),
		Z: r * math.Sin(lat),
	}
}

// giant holds J2000 mean orbital elements of an outer planet plus its
// mass as a fraction of the solar mass (Standish 1992).
type giant struct {
	a, e     float64 // semi-major axis (AU), eccentricity
	l0, ln   float64 // mean longitude at J2000 and rate (deg, deg/cy)
	peri     float64 // longitude of perihelion (deg)
	massFrac float64 // m_planet / m_sun
}

var giants = []giant{
	{5.20288700, 0.04838624, 34.39644051, 3034.74612775, 14.72847983, 1 / 1047.3486},
	{9.53667594, 0.05386179, 49.95424423, 1222.49362201, 92.59887831, 1 / 3497.898},
	{19.18916464, 0.04725744, 313.23810451, 428.48202785, 170.95427630, 1 / 22902.98},
	{30.06992276, 0.00859048, -55.12002969, 218.45945325, 44.96476227, 1 / 19412.24},
}

// sunFromBarycentre returns the Sun-centre position relative to the
// solar-system barycentre at tdb in AU, J2000 equatorial. The inner
// planets are omitted (their combined pull on the Sun is under 500 km).
func sunFromBarycentre(tdb float64) vec.V3 {
	t := (tdb - units.MJDJ2000) / units.DaysPerJulianCentury

	var sun vec.V3
	for _, g := range giants {
		l := g.l0 + g.ln*t
		m := (l - g.peri) * units.DegToRad
		// First-order equation of centre and radius.
		lon := l*units.DegToRad + 2*g.e*math.Sin(m)
		r := g.a * (1 - g.e*math.Cos(m))
		p := vec.V3{X: r * math.Cos(lon), Y: r * math.Sin(lon)}
		sun = sun.Sub(p.Scale(g.massFrac))
	}
	return eclipticToEquatorial(sun)
}

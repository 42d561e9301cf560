// Package astrom reduces ground-based astronomical observations: it
// converts civil (UTC) timestamps into the dynamical time scales
// corrected for light travel to the Sun and the solar-system
// barycentre, and catalog sky positions into the observed horizontal
// quantities (airmass, altitude, azimuth, hour angle, parallactic
// angle, refraction) at a given observatory and instant.
//
// All operations are pure functions over their inputs: there is no
// shared mutable state, no I/O, and every call is safe to run
// concurrently. Times are Modified Julian Dates (MJD = JD - 2400000.5);
// right ascensions are hours and other angles degrees at the API
// boundary, radians internally.
package astrom

import (
	"math"

	"github.com/star/astrom/internal/caldate"
	"github.com/star/astrom/internal/timescale"
	"github.com/star/astrom/internal/units"
)

// J2000Epoch is the standard catalog reference epoch in Julian years.
const J2000Epoch = 2000.0

// Site is an observing site on the WGS-84 ellipsoid.
type Site struct {
	Longitude float64 // degrees, east positive, [-360, 360]
	Latitude  float64 // degrees, [-90, 90]
	Height    float64 // metres above the ellipsoid
}

// Target is a catalog position with its space-motion parameters. The
// proper motions are true angular rates on the sky (the RA component
// is not in seconds of time and not divided by cos dec).
type Target struct {
	RA       float64 // hours, [0, 24)
	Dec      float64 // degrees, [-90, 90]
	PMRA     float64 // arcsec/year
	PMDec    float64 // arcsec/year
	Parallax float64 // arcsec, >= 0
	RV       float64 // km/s, positive receding
	Epoch    float64 // Julian years, e.g. 2000.0
}

// NewTarget returns a Target at (ra hours, dec degrees) with zero
// space motion and the epoch preset to J2000.
func NewTarget(ra, dec float64) Target {
	return Target{RA: ra, Dec: dec, Epoch: J2000Epoch}
}

// Atmosphere holds the ambient conditions used by the refraction
// model. A zero Pressure disables refraction entirely.
type Atmosphere struct {
	Temperature float64 // K
	Pressure    float64 // mbar
	Humidity    float64 // relative, 0-1
	Wavelength  float64 // microns, (0, 1e6]
	LapseRate   float64 // K/metre
}

// DefaultAtmosphere returns the conventional observing conditions used
// when nothing better is known: 285 K, standard sea-level pressure,
// 20% humidity, V band.
func DefaultAtmosphere() Atmosphere {
	return Atmosphere{
		Temperature: 285.0,
		Pressure:    1013.25,
		Humidity:    0.2,
		Wavelength:  0.55,
		LapseRate:   0.0065,
	}
}

// Dtt returns TT-UTC in seconds at the given UTC (MJD): 32.184 s plus
// the accumulated leap seconds. Outside the leap-second table the
// nearest known offset is held, so far-future dates are approximate.
func Dtt(utc float64) float64 {
	return timescale.TTMinusUTC(utc)
}

// CalendarToMJD converts a proleptic Gregorian calendar date to the
// MJD of 0h on that date. The error is a *caldate.InvalidDateError
// naming the specific field (year, month or day) that is invalid.
func CalendarToMJD(year, month, day int) (float64, error) {
	return caldate.ToMJD(year, month, day)
}

// MJDToCalendar is the inverse of CalendarToMJD, additionally
// returning the fraction of the day past 0h.
func MJDToCalendar(mjd float64) (year, month, day int, frac float64) {
	return caldate.FromMJD(mjd)
}

// JulianEpoch returns the Julian epoch (years) of an MJD.
func JulianEpoch(mjd float64) float64 {
	return caldate.JulianEpoch(mjd)
}

// validateSite checks the site coordinate domains.
func validateSite(site Site) error {
	if site.Longitude < -360 || site.Longitude > 360 {
		return &RangeError{Field: "longitude", Value: site.Longitude, Min: -360, Max: 360}
	}
	if site.Latitude < -90 || site.Latitude > 90 {
		return &RangeError{Field: "latitude", Value: site.Latitude, Min: -90, Max: 90}
	}
	return nil
}

// validateTarget checks the catalog coordinate domains.
func validateTarget(target Target) error {
	if target.RA < 0 || target.RA >= 24 {
		return &RangeError{Field: "ra", Value: target.RA, Min: 0, Max: 24}
	}
	if target.Dec < -90 || target.Dec > 90 {
		return &RangeError{Field: "dec", Value: target.Dec, Min: -90, Max: 90}
	}
	return nil
}

// dayFraction returns the fraction of the day past 0h, in [0, 1).
func dayFraction(mjd float64) float64 {
	return mjd - math.Floor(mjd)
}

// targetRadians converts a validated Target to internal radian units.
func targetRadians(target Target) (ra, dec, pmRA, pmDec float64) {
	ra = target.RA * units.HourToRad
	dec = target.Dec * units.DegToRad
	pmRA = target.PMRA * units.ArcsecToRad
	pmDec = target.PMDec * units.ArcsecToRad
	return ra, dec, pmRA, pmDec
}

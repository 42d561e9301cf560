package astrom

import (
	"math"

	"github.com/star/astrom/internal/caldate"
	"github.com/star/astrom/internal/frame"
	"github.com/star/astrom/internal/refract"
	"github.com/star/astrom/internal/starpos"
	"github.com/star/astrom/internal/timescale"
	"github.com/star/astrom/internal/topo"
	"github.com/star/astrom/internal/units"
)

// Observed is the result of ObservedPlace. Azimuth is measured north
// through east; Altitude, ZenithDist, DecObserved, Parallactic and
// Refraction are degrees; HourAngle and RAObserved are hours.
//
// Model limits, surfaced here rather than as errors: the two-term
// refraction formula degrades beyond a zenith distance of about 75
// degrees, and the airmass polynomial beyond about 87 degrees.
type Observed struct {
	Airmass     float64
	Altitude    float64
	Azimuth     float64
	HourAngle   float64
	Parallactic float64 // [0, 360)
	Refraction  float64

	ZenithDist  float64
	DecObserved float64
	RAObserved  float64
}

// ObservedPlace converts a catalog position into the observed
// horizontal quantities at a site and UTC instant: the catalog
// position is propagated to the observation epoch, decomposed against
// the local apparent sidereal time into hour angle and declination,
// refracted, and the airmass and parallactic angle derived from the
// result. Setting atm.Pressure to zero disables refraction, in which
// case the decomposition is purely geometric.
func ObservedPlace(utc float64, site Site, target Target, atm Atmosphere) (Observed, error) {
	if err := validateSite(site); err != nil {
		return Observed{}, err
	}
	if err := validateTarget(target); err != nil {
		return Observed{}, err
	}
	if atm.Wavelength <= 0 || atm.Wavelength > 1e6 {
		return Observed{}, &RangeError{Field: "wave", Value: atm.Wavelength, Min: 0, Max: 1e6}
	}

	elong := site.Longitude * units.DegToRad
	lat := site.Latitude * units.DegToRad
	tt := utc + timescale.TTMinusUTC(utc)*units.DayPerSec

	// Catalog position at the observation epoch.
	ra, dec, pmRA, pmDec := targetRadians(target)
	ra, dec = starpos.SpaceMotion(ra, dec, pmRA, pmDec,
		target.Parallax, target.RV, target.Epoch, caldate.JulianEpoch(utc))

	refa, refb := refract.Coefficients(atm.Temperature, atm.Pressure, atm.Humidity, atm.Wavelength)
	if atm.Pressure <= 0 {
		refa, refb = 0, 0
	}

	last := frame.LocalApparentSiderealTime(utc, tt, elong)
	obs := topo.ApparentToObserved(ra, dec, last, lat, refa, refb)

	// Displacement as a function of the observed zenith distance,
	// clamped as in the refraction solve.
	delz := refract.Displacement(math.Min(obs.ZenithDist, 1.55), refa, refb)

	pa := topo.ParallacticAngle(obs.HourAngle, dec, lat) * units.RadToDeg
	if pa < 0 {
		pa += 360
	}

	return Observed{
		Airmass:     refract.Airmass(obs.ZenithDist),
		Altitude:    90 - obs.ZenithDist*units.RadToDeg,
		Azimuth:     obs.Azimuth * units.RadToDeg,
		HourAngle:   obs.HourAngle * units.RadToHour,
		Parallactic: pa,
		Refraction:  delz * units.RadToDeg,
		ZenithDist:  obs.ZenithDist * units.RadToDeg,
		DecObserved: obs.Dec * units.RadToDeg,
		RAObserved:  obs.RA * units.RadToHour,
	}, nil
}

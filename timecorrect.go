package astrom

import (
	"github.com/star/astrom/internal/caldate"
	"github.com/star/astrom/internal/ephem"
	"github.com/star/astrom/internal/frame"
	"github.com/star/astrom/internal/observer"
	"github.com/star/astrom/internal/starpos"
	"github.com/star/astrom/internal/timescale"
	"github.com/star/astrom/internal/units"
)

// TimeCorrection is the result of TimeCorrect. All times are MJD on
// the named scale; the light-time corrected times are later than the
// geometric ones when the observatory is farther from the body than
// the reference point along the target direction.
type TimeCorrection struct {
	TT   float64 // terrestrial time
	TDB  float64 // barycentric dynamical time
	BTDB float64 // TDB corrected for light travel to the barycentre
	HUTC float64 // UTC corrected for light travel to the heliocentre
	HTDB float64 // TDB corrected for light travel to the heliocentre

	// Apparent target radial velocity induced by the observatory's
	// motion relative to the heliocentre and barycentre, km/s.
	VHelio float64
	VBary  float64
}

// TimeCorrect converts a UTC instant at an observing site into the
// dynamical time scales and light-travel corrections for a target.
//
// The chain: TT from the leap-second table; TDB from the relativistic
// clock correction at the site; Earth's heliocentric and barycentric
// state from the ephemeris; the site's diurnal position/velocity
// rotated from the true frame of date back to J2000 and added to the
// Earth-centre vectors; the catalog position propagated to the
// observation epoch; and finally the projection of the observatory
// vectors onto the target direction, divided by the speed of light.
func TimeCorrect(utc float64, site Site, target Target) (TimeCorrection, error) {
	if err := validateSite(site); err != nil {
		return TimeCorrection{}, err
	}
	if err := validateTarget(target); err != nil {
		return TimeCorrection{}, err
	}

	elong := site.Longitude * units.DegToRad
	lat := site.Latitude * units.DegToRad

	// Time scales. The clock correction needs the site's cylindrical
	// geocentric coordinates in km.
	u, v := observer.GeodeticToGeocentric(lat, site.Height)
	tt := utc + timescale.TTMinusUTC(utc)*units.DayPerSec
	tdb := tt + timescale.TDBMinusTT(tt, dayFraction(utc), elong, u/1e3, v/1e3)*units.DayPerSec

	// Earth-centre state, then the observatory offset. The diurnal
	// vectors are built in the true frame of date, so rotate them back
	// to the mean J2000 frame of the ephemeris before adding.
	es := ephem.Earth(tdb)
	last := frame.LocalApparentSiderealTime(tdb, tdb, elong)
	opos, ovel := observer.PV(lat, site.Height, last)
	rnpb := frame.PrecNutMatrix(tdb)
	opos = rnpb.ApplyTranspose(opos)
	ovel = rnpb.ApplyTranspose(ovel)

	// Observatory position (metres) and velocity (m/s) relative to
	// the heliocentre and barycentre.
	hpos := es.HelioPos.Add(opos).Scale(units.AU)
	hvel := es.HelioVel.Add(ovel).Scale(units.AU * units.DayPerSec)
	bpos := es.BaryPos.Add(opos).Scale(units.AU)
	bvel := es.BaryVel.Add(ovel).Scale(units.AU * units.DayPerSec)

	// Catalog position at the observation epoch.
	ra, dec, pmRA, pmDec := targetRadians(target)
	ra, dec = starpos.SpaceMotion(ra, dec, pmRA, pmDec,
		target.Parallax, target.RV, target.Epoch, caldate.JulianEpoch(utc))
	targ := starpos.UnitVector(ra, dec)

	// Light-travel corrections in days, added to arrival time.
	hcorr := targ.Dot(hpos) / units.LightSpeed * units.DayPerSec
	bcorr := targ.Dot(bpos) / units.LightSpeed * units.DayPerSec

	return TimeCorrection{
		TT:     tt,
		TDB:    tdb,
		BTDB:   tdb + bcorr,
		HUTC:   utc + hcorr,
		HTDB:   tdb + hcorr,
		VHelio: -targ.Dot(hvel) / 1e3,
		VBary:  -targ.Dot(bvel) / 1e3,
	}, nil
}

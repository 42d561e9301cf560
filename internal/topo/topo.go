// Package topo transforms an apparent place into the quantities an
// observer actually measures: azimuth, zenith distance, hour angle and
// the refracted coordinate decomposition, plus the parallactic angle.
package topo

import (
	"math"

	"github.com/star/astrom/internal/refract"
)

// Observed holds the observed-place decomposition, all in radians.
// Azimuth is measured north through east. The fields are mutually
// consistent: recomputing azimuth and zenith distance from HourAngle
// and Dec reproduces them to numerical precision.
type Observed struct {
	Azimuth    float64
	ZenithDist float64
	HourAngle  float64
	Dec        float64
	RA         float64
}

// Zenith distances are clamped to this value inside the refraction
// solve; the tangent formula is meaningless at the horizon.
const maxRefractZD = 1.55 // ~88.8 deg

// ApparentToObserved converts an apparent (ra, dec) to the observed
// place for a site at geodetic latitude lat with local apparent
// sidereal time last (all radians). refa and refb are the refraction
// coefficients; with both zero the result is the purely geometric
// decomposition. Polar motion and UT1-UTC are taken as zero.
//
// The refraction is applied to the zenith distance and the hour angle,
// declination and RA are re-derived from the refracted direction, so
// the returned quantities describe a single consistent direction.
func ApparentToObserved(ra, dec, last, lat float64, refa, refb float64) Observed {
	ha := math.Mod(last-ra, 2*math.Pi)
	if ha <= -math.Pi {
		ha += 2 * math.Pi
	} else if ha > math.Pi {
		ha -= 2 * math.Pi
	}

	sinP, cosP := math.Sincos(lat)
	sinD, cosD := math.Sincos(dec)
	sinH, cosH := math.Sincos(ha)

	// Geometric altitude and azimuth (north through east). At the
	// zenith both atan2 arguments vanish and Go returns 0, a defined
	// conventional azimuth.
	sinAlt := sinP*sinD + cosP*cosD*cosH
	az := math.Atan2(-cosD*sinH, sinD*cosP-sinP*cosD*cosH)
	if az < 0 {
		az += 2 * math.Pi
	}
	zd := math.Pi/2 - math.Asin(math.Min(math.Max(sinAlt, -1), 1))

	// Solve zdObs + disp(zdObs) = zd by Newton iteration so that the
	// reported displacement is a function of the *observed* zenith
	// distance, matching the tangent-formula convention.
	zdObs := zd
	if refa != 0 || refb != 0 {
		for i := 0; i < 4; i++ {
			z := math.Min(zdObs, maxRefractZD)
			tz := math.Tan(z)
			sec2 := 1 + tz*tz
			f := zdObs + refract.Displacement(z, refa, refb) - zd
			df := 1 + sec2*(refa+3*refb*tz*tz)
			zdObs -= f / df
		}
		if zdObs < 0 {
			zdObs = 0
		}
	}

	// Back-solve the refracted hour angle and declination from the
	// unchanged azimuth and the refracted altitude.
	sinA, cosA := math.Sincos(az)
	sinE, cosE := math.Sincos(math.Pi/2 - zdObs)

	sinDO := sinP*sinE + cosP*cosE*cosA
	decObs := math.Asin(math.Min(math.Max(sinDO, -1), 1))
	haObs := math.Atan2(-sinA*cosE, sinE*cosP-cosE*sinP*cosA)

	raObs := math.Mod(last-haObs, 2*math.Pi)
	if raObs < 0 {
		raObs += 2 * math.Pi
	}

	return Observed{
		Azimuth:    az,
		ZenithDist: zdObs,
		HourAngle:  haObs,
		Dec:        decObs,
		RA:         raObs,
	}
}

// ParallacticAngle returns the parallactic angle in radians, the
// position angle of the zenith at the target measured from north
// through east, for hour angle ha, declination dec and site latitude
// lat (radians). Positive west of the meridian, negative east.
func ParallacticAngle(ha, dec, lat float64) float64 {
	sinH, cosH := math.Sincos(ha)
	return math.Atan2(sinH, math.Cos(dec)*math.Tan(lat)-math.Sin(dec)*cosH)
}

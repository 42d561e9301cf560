// Package timescale converts between the time scales that feed the
// transformation chain: UTC (civil), TT (uniform terrestrial time) and
// TDB (dynamical time at the solar-system barycentre).
//
// TT-UTC is a step function of the leap-second history. TDB-TT is a
// small (<2 ms) periodic relativistic correction evaluated from the
// leading Fairhead & Bretagnon series terms plus the Moyer topocentric
// terms, which depend on the observer's distance from Earth's spin
// axis and equatorial plane and on local solar time.
package timescale

import (
	"math"

	"github.com/star/astrom/internal/units"
)

// TTMinusUTC returns TT-UTC in seconds at the given UTC MJD:
// 32.184 s plus the accumulated leap seconds (TAI-UTC).
func TTMinusUTC(utc float64) float64 {
	return units.TTMinusTAI + TAIMinusUTC(utc)
}

// fairhead holds one periodic term of the TDB-TT series: amp (µs) ×
// sin(freq·t + phase), t in Julian millennia of TDB from J2000.
type fairhead struct {
	amp, freq, phase float64
}

// Leading T⁰ terms of the Fairhead & Bretagnon (1990) series. The
// truncation keeps every term above 1 µs; the omitted remainder is
// below ~5 µs total, well inside the sub-millisecond contract.
var fairheadT0 = []fairhead{
	{1656.674564, 6283.075849991, 6.240054195},
	{22.417471, 5753.384884897, 4.296977442},
	{13.839792, 12566.151699983, 6.196904410},
	{4.770086, 529.690965095, 0.444401603},
	{4.676740, 6069.776754553, 4.021195093},
	{2.256707, 213.299095438, 5.543113262},
	{1.694205, -3.523118349, 5.025132748},
	{1.554905, 77713.771467920, 5.198467090},
	{1.276839, 7860.419392439, 5.988822341},
	{1.193379, 5223.693919802, 3.649823730},
	{1.115322, 3930.209696220, 1.422745069},
}

// Leading T¹ term (secular modulation of the annual term).
var fairheadT1 = fairhead{102.156724, 6283.075849991, 4.249032005}

// TDBMinusTT returns TDB-TT in seconds.
//
//	tt     — TT as MJD (TDB works equally well at this precision)
//	ut     — fraction of the UTC day, used for local solar time
//	elong  — observer east longitude, radians
//	u      — observer distance from Earth's spin axis, km
//	v      — observer distance north of the equatorial plane, km
//
// The topocentric (diurnal) terms contribute up to ~2 µs; pass u = v =
// 0 for the geocentric correction alone.
func TDBMinusTT(tt, ut, elong, u, v float64) float64 {
	// Julian millennia of dynamical time from J2000.
	t := (tt - units.MJDJ2000) / (units.DaysPerJulianCentury * 10)

	// Fundamental arguments (Simon et al. 1994), radians.
	tsol := math.Mod(ut, 1)*2*math.Pi + elong
	elsun := math.Mod(6.267303+628.307584999*t, 2*math.Pi)
	emsun := math.Mod(6.240053+628.301955000*t, 2*math.Pi)
	d := math.Mod(5.198467+7771.377147000*t, 2*math.Pi)
	elj := math.Mod(0.599431+52.969097000*t, 2*math.Pi)
	els := math.Mod(0.874265+21.329910000*t, 2*math.Pi)

	// Topocentric terms (Moyer 1981), seconds.
	wt := +0.00029e-10*u*math.Sin(tsol+elsun-els) +
		0.00100e-10*u*math.Sin(tsol-2*emsun) +
		0.00133e-10*u*math.Sin(tsol-d) +
		0.00133e-10*u*math.Sin(tsol+elsun-elj) -
		0.00229e-10*u*math.Sin(tsol+2*elsun+emsun) -
		0.02200e-10*v*math.Cos(elsun+emsun) +
		0.05312e-10*u*math.Sin(tsol-elsun) -
		0.13677e-10*u*math.Sin(tsol+2*elsun) -
		1.31840e-10*v*math.Cos(elsun) +
		3.17679e-10*u*math.Sin(tsol)

	// Geocentric series, microseconds.
	var w0 float64
	for _, term := range fairheadT0 {
		w0 += term.amp * math.Sin(term.freq*t+term.phase)
	}
	w1 := fairheadT1.amp * math.Sin(fairheadT1.freq*t+fairheadT1.phase)

	return (w0+w1*t)*1e-6 + wt
}

// Package refract models atmospheric refraction with the two-term
// tangent formula and computes the relative airmass.
//
// The coefficient model follows the fast approximation calibrated
// against full radiative-transfer integrations (Hohenkerk & Sinclair;
// the same model as SLALIB REFCOQ/ERFA refco). The tangent formula is
// usable to a zenith distance of about 75 degrees; closer to the
// horizon a full ray-trace model is required, and callers needing that
// regime must substitute one. The airmass polynomial (Hardie 1962) is
// similarly valid to roughly 87 degrees.
package refract

import "math"

// Coefficients returns the refraction constants refa and refb
// (radians) such that the refraction displacement at observed zenith
// distance z is tan(z)*(refa + refb*tan^2(z)).
//
//	tk   — ambient temperature, K
//	pmb  — ambient pressure, millibars (0 disables refraction)
//	rh   — relative humidity, fraction 0-1
//	wave — observing wavelength, microns (>100 selects the radio model)
func Coefficients(tk, pmb, rh, wave float64) (refa, refb float64) {
	optical := wave <= 100.0

	// Clamp inputs to the model's fitted domain.
	t := math.Min(math.Max(tk, 100), 500)
	p := math.Min(math.Max(pmb, 0), 10000)
	r := math.Min(math.Max(rh, 0), 1)
	w := math.Min(math.Max(wave, 0.1), 1e6)

	// Partial pressure of water vapour at the observer.
	var pw float64
	if p > 0 {
		tc := t - 273.15
		ps := math.Pow(10, (0.7859+0.03477*tc)/(1+0.00412*tc)) *
			(1 + p*(4.5e-6+6e-10*tc*tc))
		pw = r * ps / (1 - (1-r)*ps/p)
	}

	// Refractivity at the observer.
	var gamma float64
	if optical {
		wlsq := w * w
		gamma = ((77.53484e-6+(4.39108e-7+3.666e-9/wlsq)/wlsq)*p - 11.2684e-6*pw) / t
	} else {
		gamma = (77.6890e-6*p - (6.3938e-6-0.375463/t)*pw) / t
	}

	// Formula for beta from Stone, with the radio-case water-vapour
	// adjustment.
	beta := 4.4474e-6 * t
	if !optical {
		beta -= 0.0074 * pw * beta
	}

	refa = gamma * (1 - beta)
	refb = -gamma * (beta - gamma/2)
	return refa, refb
}

// Displacement returns the refraction displacement in zenith distance
// (radians) at observed zenith distance zd (radians):
// tan(zd)*(refa + refb*tan^2(zd)). Valid to zd of about 75 degrees.
func Displacement(zd, refa, refb float64) float64 {
	tz := math.Tan(zd)
	return tz * (refa + refb*tz*tz)
}

// Airmass returns the relative airmass at observed zenith distance zd
// (radians) using the Hardie (1962) polynomial in sec(zd)-1. The
// zenith distance is capped at 1.52 rad (about 87 degrees), beyond
// which the polynomial is outside its fitted range.
func Airmass(zd float64) float64 {
	w := math.Min(math.Abs(zd), 1.52)
	seczm1 := 1/math.Cos(w) - 1
	return 1 + seczm1*(0.9981833-seczm1*(0.002875+0.0008083*seczm1))
}

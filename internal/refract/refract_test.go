package refract

import (
	"math"
	"testing"

	"github.com/star/astrom/internal/units"
)

// Typical optical conditions give refa near 60 arcsec worth of
// refractivity (~2.9e-4 rad) and a refb three orders smaller and
// negative.
func TestCoefficientsOptical(t *testing.T) {
	refa, refb := Coefficients(285, 1013.25, 0.2, 0.55)

	if refa < 2.5e-4 || refa > 3.2e-4 {
		t.Errorf("refa = %v rad, want ~2.9e-4", refa)
	}
	if refb > -2e-7 || refb < -5e-7 {
		t.Errorf("refb = %v rad, want ~-3e-7", refb)
	}
}

func TestCoefficientsZeroPressure(t *testing.T) {
	refa, refb := Coefficients(285, 0, 0.2, 0.55)
	if refa != 0 || refb != 0 {
		t.Errorf("zero pressure gave (%v, %v), want (0, 0)", refa, refb)
	}
}

// Colder, denser air refracts more; lower pressure refracts less.
func TestCoefficientsTrends(t *testing.T) {
	warmA, _ := Coefficients(300, 1013.25, 0.2, 0.55)
	coldA, _ := Coefficients(270, 1013.25, 0.2, 0.55)
	if coldA <= warmA {
		t.Errorf("cold refa %v not above warm refa %v", coldA, warmA)
	}

	seaA, _ := Coefficients(285, 1013.25, 0.2, 0.55)
	peakA, _ := Coefficients(285, 770, 0.2, 0.55)
	if peakA >= seaA {
		t.Errorf("high-altitude refa %v not below sea-level refa %v", peakA, seaA)
	}
}

// The radio branch differs from the optical one: water vapour matters
// much more at radio wavelengths.
func TestCoefficientsRadioBranch(t *testing.T) {
	optA, _ := Coefficients(285, 1013.25, 0.8, 0.55)
	radA, _ := Coefficients(285, 1013.25, 0.8, 1e4)
	if optA == radA {
		t.Error("radio branch returned the optical coefficient")
	}
}

func TestDisplacement(t *testing.T) {
	refa, refb := Coefficients(285, 1013.25, 0.2, 0.55)

	if d := Displacement(0, refa, refb); d != 0 {
		t.Errorf("zenith displacement = %v, want 0", d)
	}

	// At 45 deg the displacement is close to refa + refb (tan z = 1),
	// about one arcminute.
	d := Displacement(45*units.DegToRad, refa, refb)
	if math.Abs(d-(refa+refb)) > 1e-15 {
		t.Errorf("45 deg displacement = %v, want refa+refb = %v", d, refa+refb)
	}
	if d < 50*units.ArcsecToRad || d > 70*units.ArcsecToRad {
		t.Errorf("45 deg displacement = %v arcsec, want ~60", d*units.RadToArcsec)
	}
}

func TestAirmass(t *testing.T) {
	if a := Airmass(0); a != 1 {
		t.Errorf("Airmass(0) = %v, want exactly 1", a)
	}

	// sec(60 deg) = 2; the Hardie polynomial pulls it slightly below.
	a := Airmass(60 * units.DegToRad)
	if a < 1.98 || a > 2.0 {
		t.Errorf("Airmass(60 deg) = %v, want just under 2", a)
	}

	// Monotone increasing up to the cap.
	prev := 0.0
	for zd := 0.0; zd <= 1.52; zd += 0.04 {
		if a := Airmass(zd); a < prev {
			t.Fatalf("airmass decreased at zd=%v", zd)
		} else {
			prev = a
		}
	}

	// Beyond ~87 deg the polynomial is held at its cap rather than
	// extrapolated outside its fitted range.
	if Airmass(89*units.DegToRad) != Airmass(1.52) {
		t.Error("airmass not capped beyond the model's valid range")
	}
}

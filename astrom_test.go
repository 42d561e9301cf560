package astrom

import (
	"errors"
	"math"
	"testing"

	"github.com/star/astrom/internal/caldate"
)

// laPalma is the observing site used by most tests: an ORM-like site
// in the northern subtropics at 2396 m.
var laPalma = Site{Longitude: 0, Latitude: 28.76, Height: 2396}

// sirius is the classic bright-star test target.
var sirius = NewTarget(6.75, -16.72)

func TestCalendarToMJD(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             float64
	}{
		{1858, 11, 17, 0},
		{1970, 1, 1, 40587},
		{2000, 1, 1, 51544},
		{2000, 2, 29, 51603},
		{2017, 9, 1, 57997},
	}
	for _, tt := range tests {
		got, err := CalendarToMJD(tt.year, tt.month, tt.day)
		if err != nil {
			t.Errorf("CalendarToMJD(%d, %d, %d): %v", tt.year, tt.month, tt.day, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CalendarToMJD(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestCalendarToMJDInvalid(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		field            caldate.Field
	}{
		{"month zero", 2020, 0, 1, caldate.FieldMonth},
		{"month thirteen", 2020, 13, 1, caldate.FieldMonth},
		{"day zero", 2020, 6, 0, caldate.FieldDay},
		{"day 30 february", 2020, 2, 30, caldate.FieldDay},
		{"day 29 non-leap", 2019, 2, 29, caldate.FieldDay},
		{"year too early", -5000, 1, 1, caldate.FieldYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalendarToMJD(tt.year, tt.month, tt.day)
			var derr *caldate.InvalidDateError
			if !errors.As(err, &derr) {
				t.Fatalf("error = %v, want *caldate.InvalidDateError", err)
			}
			if derr.Field != tt.field {
				t.Errorf("field = %v, want %v", derr.Field, tt.field)
			}
		})
	}
}

func TestDtt(t *testing.T) {
	// 2000-01-01: TAI-UTC was 32 s, so TT-UTC = 64.184 s.
	if got := Dtt(51544.0); got != 64.184 {
		t.Errorf("Dtt(51544) = %v, want 64.184", got)
	}
	// After the 2017 leap second: 37 + 32.184.
	if got := Dtt(58000.0); got != 69.184 {
		t.Errorf("Dtt(58000) = %v, want 69.184", got)
	}
}

func TestValidation(t *testing.T) {
	atm := DefaultAtmosphere()

	tests := []struct {
		name   string
		site   Site
		target Target
		atm    Atmosphere
		field  string
	}{
		{"longitude", Site{Longitude: 400, Latitude: 20}, sirius, atm, "longitude"},
		{"latitude", Site{Latitude: 91}, sirius, atm, "latitude"},
		{"ra high", laPalma, NewTarget(25, 0), atm, "ra"},
		{"ra 24", laPalma, NewTarget(24, 0), atm, "ra"},
		{"dec low", laPalma, NewTarget(6, -91), atm, "dec"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ObservedPlace(51544.0, tt.site, tt.target, tt.atm)
			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("error = %v, want *RangeError", err)
			}
			if rerr.Field != tt.field {
				t.Errorf("field = %q, want %q", rerr.Field, tt.field)
			}

			// TimeCorrect shares the site and target validation.
			if tt.name != "ra 24" {
				if _, err := TimeCorrect(51544.0, tt.site, tt.target); err == nil {
					t.Error("TimeCorrect accepted the invalid input")
				}
			}
		})
	}

	// The wavelength domain is (0, 1e6] microns.
	for _, wave := range []float64{0, -0.5, 1.1e6} {
		atm := DefaultAtmosphere()
		atm.Wavelength = wave
		_, err := ObservedPlace(51544.0, laPalma, sirius, atm)
		var rerr *RangeError
		if !errors.As(err, &rerr) || rerr.Field != "wave" {
			t.Errorf("wavelength %v: error = %v, want *RangeError on wave", wave, err)
		}
	}
}

func TestTimeCorrect(t *testing.T) {
	utc := 51544.0
	tc, err := TimeCorrect(utc, laPalma, sirius)
	if err != nil {
		t.Fatal(err)
	}

	// TT leads UTC by exactly the leap-second offset plus 32.184 s.
	if got := (tc.TT - utc) * 86400; math.Abs(got-64.184) > 1e-6 {
		t.Errorf("TT-UTC = %v s, want 64.184", got)
	}

	// TDB differs from TT by at most a couple of milliseconds.
	if d := math.Abs(tc.TDB-tc.TT) * 86400; d > 0.002 {
		t.Errorf("|TDB-TT| = %v s, want < 2 ms", d)
	}

	// Light travel to the heliocentre is bounded by 1 AU plus the
	// geocentric radius, just over 499 s.
	if d := math.Abs(tc.HUTC-utc) * 86400; d > 501 {
		t.Errorf("|HUTC-UTC| = %v s, want <= 501", d)
	}
	// The barycentric correction can exceed the heliocentric one by the
	// Sun-barycentre offset, at most ~0.01 AU more.
	if d := math.Abs(tc.BTDB-tc.TDB) * 86400; d > 506 {
		t.Errorf("|BTDB-TDB| = %v s, want <= 506", d)
	}

	// Both heliocentric corrections share the same light-travel term.
	if d := (tc.HTDB - tc.TDB) - (tc.HUTC - utc); math.Abs(d) > 1e-12 {
		t.Errorf("HTDB and HUTC corrections differ by %v d", d)
	}

	// Apparent radial velocity is bounded by Earth's orbital speed plus
	// the diurnal rotation.
	if math.Abs(tc.VHelio) > 30.4 {
		t.Errorf("VHelio = %v km/s, want |v| <= 30.4", tc.VHelio)
	}
	if math.Abs(tc.VBary) > 30.5 {
		t.Errorf("VBary = %v km/s, want |v| <= 30.5", tc.VBary)
	}
}

// TestTimeCorrectEclipticPole: toward the ecliptic pole Earth's orbital
// velocity is perpendicular to the line of sight, leaving only small
// residual terms.
func TestTimeCorrectEclipticPole(t *testing.T) {
	pole := NewTarget(18.0, 66.56)
	tc, err := TimeCorrect(55197.0, laPalma, pole)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(tc.VHelio) > 1.0 {
		t.Errorf("VHelio toward ecliptic pole = %v km/s, want |v| < 1", tc.VHelio)
	}
}

// TestTimeCorrectAnnualSign: six months apart the projection of Earth's
// velocity on a fixed ecliptic-plane target reverses sign.
func TestTimeCorrectAnnualSign(t *testing.T) {
	target := NewTarget(12.0, 0)
	a, err := TimeCorrect(55197.0, laPalma, target)
	if err != nil {
		t.Fatal(err)
	}
	b, err := TimeCorrect(55197.0+182.62, laPalma, target)
	if err != nil {
		t.Fatal(err)
	}
	if a.VHelio*b.VHelio >= 0 {
		t.Errorf("VHelio six months apart did not reverse: %v and %v", a.VHelio, b.VHelio)
	}
}

func TestObservedPlace(t *testing.T) {
	// Sirius from the site at 2000-01-01 0h UTC: the local sidereal
	// time is ~6.66 h, so the star is minutes from transit, altitude
	// ~44.5 deg in the south.
	obs, err := ObservedPlace(51544.0, laPalma, sirius, DefaultAtmosphere())
	if err != nil {
		t.Fatal(err)
	}

	if obs.Altitude < 43 || obs.Altitude > 46 {
		t.Errorf("altitude = %v deg, want ~44.5", obs.Altitude)
	}
	if obs.Azimuth < 170 || obs.Azimuth > 190 {
		t.Errorf("azimuth = %v deg, want near due south", obs.Azimuth)
	}
	if math.Abs(obs.HourAngle) > 0.3 {
		t.Errorf("hour angle = %v hr, want near transit", obs.HourAngle)
	}
	if obs.Airmass < 1.3 || obs.Airmass > 1.55 {
		t.Errorf("airmass = %v, want ~1.43", obs.Airmass)
	}
	if obs.Refraction <= 0 || obs.Refraction > 0.03 {
		t.Errorf("refraction = %v deg, want ~1 arcmin", obs.Refraction)
	}
	if math.Abs(obs.Altitude-(90-obs.ZenithDist)) > 1e-12 {
		t.Errorf("altitude %v and zenith distance %v inconsistent", obs.Altitude, obs.ZenithDist)
	}
	if obs.Parallactic < 0 || obs.Parallactic >= 360 {
		t.Errorf("parallactic angle = %v, want [0, 360)", obs.Parallactic)
	}
	if obs.RAObserved < 0 || obs.RAObserved >= 24 {
		t.Errorf("observed RA = %v, want [0, 24)", obs.RAObserved)
	}
}

func TestObservedPlaceNoRefraction(t *testing.T) {
	atm := DefaultAtmosphere()
	atm.Pressure = 0

	obs, err := ObservedPlace(51544.0, laPalma, sirius, atm)
	if err != nil {
		t.Fatal(err)
	}
	if obs.Refraction != 0 {
		t.Errorf("refraction = %v with zero pressure, want exactly 0", obs.Refraction)
	}

	// Without refraction the observed place equals the apparent place,
	// so the refracted run must sit slightly higher in the sky.
	refr, err := ObservedPlace(51544.0, laPalma, sirius, DefaultAtmosphere())
	if err != nil {
		t.Fatal(err)
	}
	if refr.Altitude <= obs.Altitude {
		t.Errorf("refracted altitude %v not above geometric %v", refr.Altitude, obs.Altitude)
	}
	if math.Abs(obs.DecObserved-sirius.Dec) > 1e-9 {
		t.Errorf("geometric observed dec = %v, want catalog %v", obs.DecObserved, sirius.Dec)
	}
}

// A target below the horizon still reduces: the airmass saturates at
// the model cap instead of blowing up.
func TestObservedPlaceBelowHorizon(t *testing.T) {
	// Sirius 12 hours from transit is far below the horizon.
	obs, err := ObservedPlace(51544.5, laPalma, sirius, DefaultAtmosphere())
	if err != nil {
		t.Fatal(err)
	}
	if obs.Altitude >= 0 {
		t.Fatalf("altitude = %v, expected below horizon", obs.Altitude)
	}
	if math.IsNaN(obs.Airmass) || math.IsInf(obs.Airmass, 0) {
		t.Errorf("airmass = %v, want finite", obs.Airmass)
	}
}

// Proper motion changes the observed place across epochs. Barnard's
// star moves ~10 arcsec/yr, which after a decade is well above the
// reduction's noise floor.
func TestObservedPlaceProperMotion(t *testing.T) {
	barnard := Target{
		RA: 17.9634, Dec: 4.6934,
		PMRA: -0.7986, PMDec: 10.3269,
		Parallax: 0.5474, RV: -110.5,
		Epoch: 2000.0,
	}
	frozen := barnard
	frozen.PMRA, frozen.PMDec, frozen.RV = 0, 0, 0

	// 2010-01-01 ~11.3h UT, which puts the star near transit.
	utc := 55197.47
	a, err := ObservedPlace(utc, laPalma, barnard, DefaultAtmosphere())
	if err != nil {
		t.Fatal(err)
	}
	b, err := ObservedPlace(utc, laPalma, frozen, DefaultAtmosphere())
	if err != nil {
		t.Fatal(err)
	}

	// ~103 arcsec of motion in declination over the decade.
	dDec := (a.DecObserved - b.DecObserved) * 3600
	if dDec < 95 || dDec > 112 {
		t.Errorf("proper-motion declination shift = %v arcsec, want ~103", dDec)
	}
}

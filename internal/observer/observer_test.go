package observer

import (
	"math"
	"testing"

	"github.com/star/astrom/internal/units"
)

func TestGeodeticToGeocentric(t *testing.T) {
	tests := []struct {
		name         string
		latDeg       float64
		height       float64
		wantU, wantV float64
		tol          float64
	}{
		// On the equator u is the equatorial radius and v vanishes.
		{"equator sea level", 0, 0, 6378137.0, 0, 1e-6},
		// At the pole u vanishes and v is the polar radius.
		{"north pole sea level", 90, 0, 0, 6356752.3142, 1e-3},
		{"south pole sea level", -90, 0, 0, -6356752.3142, 1e-3},
		// Height adds along the local vertical.
		{"equator 1000 m", 0, 1000, 6379137.0, 0, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := GeodeticToGeocentric(tt.latDeg*units.DegToRad, tt.height)
			if math.Abs(u-tt.wantU) > tt.tol || math.Abs(v-tt.wantV) > tt.tol {
				t.Errorf("got (%.4f, %.4f), want (%.4f, %.4f)", u, v, tt.wantU, tt.wantV)
			}
		})
	}
}

// The geocentric latitude is smaller in magnitude than the geodetic
// latitude everywhere between equator and pole.
func TestGeocentricLatitudeShrinks(t *testing.T) {
	for _, latDeg := range []float64{15.0, 30.0, 45.0, 60.0, 75.0} {
		lat := latDeg * units.DegToRad
		u, v := GeodeticToGeocentric(lat, 0)
		geocentric := math.Atan2(v, u)
		if geocentric >= lat {
			t.Errorf("lat %v: geocentric %v not below geodetic %v", latDeg, geocentric, lat)
		}
		if lat-geocentric > 12e-3 { // max difference ~11.5 arcmin
			t.Errorf("lat %v: geodetic-geocentric difference too large: %v rad", latDeg, lat-geocentric)
		}
	}
}

func TestPV(t *testing.T) {
	lat := 28.76 * units.DegToRad
	const height = 2396.0
	last := 1.234

	pos, vel := PV(lat, height, last)

	// Position magnitude is the geocentric radius in AU.
	u, v := GeodeticToGeocentric(lat, height)
	wantR := math.Hypot(u, v) / units.AU
	if d := math.Abs(pos.Norm() - wantR); d > 1e-18 {
		t.Errorf("|pos| = %v AU, want %v", pos.Norm(), wantR)
	}

	// Velocity is perpendicular to the position's equatorial
	// projection and purely horizontal.
	if vel.Z != 0 {
		t.Errorf("vel.Z = %v, want 0", vel.Z)
	}
	if dot := pos.X*vel.X + pos.Y*vel.Y; math.Abs(dot) > 1e-20 {
		t.Errorf("pos·vel = %v, want 0", dot)
	}

	// Speed is omega times the distance from the spin axis.
	wantSpeed := units.OmegaEarth * units.SecPerDay * u / units.AU
	if d := math.Abs(vel.Norm() - wantSpeed); d > 1e-15 {
		t.Errorf("|vel| = %v AU/day, want %v", vel.Norm(), wantSpeed)
	}
}

// The sidereal-time argument only spins the vectors about the pole.
func TestPVRotationInvariants(t *testing.T) {
	lat := -33.9 * units.DegToRad
	p1, _ := PV(lat, 100, 0.5)
	p2, _ := PV(lat, 100, 2.9)

	if math.Abs(p1.Norm()-p2.Norm()) > 1e-20 {
		t.Errorf("radius changed with sidereal time: %v vs %v", p1.Norm(), p2.Norm())
	}
	if math.Abs(p1.Z-p2.Z) > 1e-20 {
		t.Errorf("polar component changed with sidereal time: %v vs %v", p1.Z, p2.Z)
	}
}

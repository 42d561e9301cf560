// Command diag runs one reduction of a reference target and prints the
// results, for eyeballing against an external ephemeris service.
package main

import (
	"fmt"
	"os"

	astrom "github.com/star/astrom"
)

func main() {
	// Sirius from an ORM-like site at 2000-01-01 00:00 UTC.
	utc := 51544.0
	site := astrom.Site{Longitude: -17.88, Latitude: 28.76, Height: 2396}
	target := astrom.Target{
		RA: 6.7525, Dec: -16.7161,
		PMRA: -0.5463, PMDec: -1.2231,
		Parallax: 0.3792, RV: -5.5,
		Epoch: 2000.0,
	}

	fmt.Printf("UTC %v at (%.4f, %.4f, %.0f m)\n", utc, site.Longitude, site.Latitude, site.Height)
	fmt.Printf("target RA %.4f hr, Dec %.4f deg (J2000)\n\n", target.RA, target.Dec)

	tc, err := astrom.TimeCorrect(utc, site, target)
	if err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}
	fmt.Printf("TT     %.8f\n", tc.TT)
	fmt.Printf("TDB    %.8f\n", tc.TDB)
	fmt.Printf("BTDB   %.8f  (%+.3f s)\n", tc.BTDB, (tc.BTDB-tc.TDB)*86400)
	fmt.Printf("HUTC   %.8f  (%+.3f s)\n", tc.HUTC, (tc.HUTC-utc)*86400)
	fmt.Printf("HTDB   %.8f\n", tc.HTDB)
	fmt.Printf("Vhelio %+.4f km/s\n", tc.VHelio)
	fmt.Printf("Vbary  %+.4f km/s\n\n", tc.VBary)

	obs, err := astrom.ObservedPlace(utc, site, target, astrom.DefaultAtmosphere())
	if err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}
	fmt.Printf("altitude    %8.4f deg\n", obs.Altitude)
	fmt.Printf("azimuth     %8.4f deg\n", obs.Azimuth)
	fmt.Printf("airmass     %8.4f\n", obs.Airmass)
	fmt.Printf("hour angle  %8.4f hr\n", obs.HourAngle)
	fmt.Printf("parallactic %8.4f deg\n", obs.Parallactic)
	fmt.Printf("refraction  %8.4f arcsec\n", obs.Refraction*3600)
}

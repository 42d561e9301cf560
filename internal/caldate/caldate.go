// Package caldate converts between proleptic Gregorian calendar dates
// and Modified Julian Date (MJD = JD - 2400000.5).
package caldate

import (
	"fmt"

	"github.com/star/astrom/internal/units"
)

// MinYear is the earliest supported calendar year. The integer JD
// algorithm below (Fliegel & Van Flandern 1968) is valid from
// March 1, 4801 BC; dates before -4699 are rejected outright.
const MinYear = -4699

// Field identifies which part of a calendar date failed validation.
type Field string

const (
	FieldYear  Field = "year"
	FieldMonth Field = "month"
	FieldDay   Field = "day"
)

// InvalidDateError reports a calendar date that does not exist, naming
// the specific field at fault so callers can pinpoint the bad input.
type InvalidDateError struct {
	Field Field
	Value int
}

func (e *InvalidDateError) Error() string {
	switch e.Field {
	case FieldYear:
		return fmt.Sprintf("invalid date: bad year %d (minimum %d)", e.Value, MinYear)
	case FieldMonth:
		return fmt.Sprintf("invalid date: bad month %d (must be 1-12)", e.Value)
	default:
		return fmt.Sprintf("invalid date: bad day %d for given year/month", e.Value)
	}
}

// monthDays holds the day count per month in a non-leap year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the
// given year, or 0 if the month is out of range.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	d := monthDays[month-1]
	if month == 2 && IsLeapYear(year) {
		d++
	}
	return d
}

// ToMJD converts a Gregorian calendar date to the MJD of 0h on that
// date. Validation is field by field: year first, then month, then day.
func ToMJD(year, month, day int) (float64, error) {
	if year < MinYear {
		return 0, &InvalidDateError{Field: FieldYear, Value: year}
	}
	if month < 1 || month > 12 {
		return 0, &InvalidDateError{Field: FieldMonth, Value: month}
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, &InvalidDateError{Field: FieldDay, Value: day}
	}

	// Fliegel & Van Flandern integer Julian Day Number (of the noon),
	// then shift to MJD at 0h: MJD = JDN - 2400001.
	c := (month - 14) / 12
	jdn := day - 32075 +
		1461*(year+4800+c)/4 +
		367*(month-2-c*12)/12 -
		3*((year+4900+c)/100)/4
	return float64(jdn - 2400001), nil
}

// FromMJD converts an MJD to a Gregorian calendar date plus the
// fraction of the day past 0h. It is the exact inverse of ToMJD for
// dates in the supported range.
func FromMJD(mjd float64) (year, month, day int, frac float64) {
	days := int(mjd)
	frac = mjd - float64(days)
	if frac < 0 { // MJD before the epoch
		days--
		frac++
	}

	// Inverse of the Fliegel & Van Flandern algorithm.
	l := days + 2400001 + 68569
	n := 4 * l / 146097
	l -= (146097*n + 3) / 4
	i := 4000 * (l + 1) / 1461001
	l -= 1461*i/4 - 31
	j := 80 * l / 2447
	day = l - 2447*j/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return year, month, day, frac
}

// JulianEpoch returns the Julian epoch (years, e.g. 2000.0) of an MJD.
func JulianEpoch(mjd float64) float64 {
	return 2000.0 + (mjd-units.MJDJ2000)/units.DaysPerJulianYear
}

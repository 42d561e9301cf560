package timescale

// leapStep is one entry of the TAI-UTC step function: from utcMJD
// onward (until the next entry) TAI-UTC equals offset seconds.
type leapStep struct {
	utcMJD float64
	offset float64
}

// taiMinusUTC is the history of leap-second insertions since the start
// of the modern (integer-second) UTC era on 1972 January 1. Source:
// IERS Bulletin C. The table ends at the 2017 January 1 insertion; no
// further leap seconds have been announced as of the last update.
//
// Extrapolation policy: for dates before the first entry or after the
// last, the nearest known offset is held constant. Future dates are
// therefore approximate until the table is extended.
var taiMinusUTC = []leapStep{
	{41317, 10}, // 1972 Jan 1
	{41499, 11}, // 1972 Jul 1
	{41683, 12}, // 1973 Jan 1
	{42048, 13}, // 1974 Jan 1
	{42413, 14}, // 1975 Jan 1
	{42778, 15}, // 1976 Jan 1
	{43144, 16}, // 1977 Jan 1
	{43509, 17}, // 1978 Jan 1
	{43874, 18}, // 1979 Jan 1
	{44239, 19}, // 1980 Jan 1
	{44786, 20}, // 1981 Jul 1
	{45151, 21}, // 1982 Jul 1
	{45516, 22}, // 1983 Jul 1
	{46247, 23}, // 1985 Jul 1
	{47161, 24}, // 1988 Jan 1
	{47892, 25}, // 1990 Jan 1
	{48257, 26}, // 1991 Jan 1
	{48804, 27}, // 1992 Jul 1
	{49169, 28}, // 1993 Jul 1
	{49534, 29}, // 1994 Jul 1
	{50083, 30}, // 1996 Jan 1
	{50630, 31}, // 1997 Jul 1
	{51179, 32}, // 1999 Jan 1
	{53736, 33}, // 2006 Jan 1
	{54832, 34}, // 2009 Jan 1
	{56109, 35}, // 2012 Jul 1
	{57204, 36}, // 2015 Jul 1
	{57754, 37}, // 2017 Jan 1
}

// TAIMinusUTC returns TAI-UTC in seconds at the given UTC MJD,
// applying the hold-nearest extrapolation policy outside the table.
func TAIMinusUTC(utc float64) float64 {
	offset := taiMinusUTC[0].offset
	for _, step := range taiMinusUTC {
		if utc < step.utcMJD {
			break
		}
		offset = step.offset
	}
	return offset
}

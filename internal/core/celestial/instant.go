package celestial

import (
	"time"

	perr "muhurta/internal/platform/errors"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// The engine's internal time axis is the Julian Day number. Only the
// proleptic Gregorian calendar is supported; instants are carried as UTC
// time.Time values and converted at the ephemeris boundary.

// minYear..maxYear bound the supported instant range; the VSOP87 theory the
// provider runs on degrades badly outside a few millennia around J2000
const (
	minYear = -2000
	maxYear = 6000
)

// ValidateInstant rejects zero values and instants outside the supported range
func ValidateInstant(t time.Time) error {
	if t.IsZero() {
		return perr.InvalidInstantf("zero instant")
	}
	y := t.Year()
	if y < minYear || y > maxYear {
		return perr.InvalidInstantf("year %d outside supported range [%d,%d]", y, minYear, maxYear)
	}
	return nil
}

// JulianDay converts an instant to its Julian Day number
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// FromJulianDay converts a Julian Day number back to a UTC instant.
// Round trip through JulianDay holds to within one second
func FromJulianDay(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}

// Package panchanga implements the lunar-calendar derivations: tithi, yoga
// and nakshatra from Sun/Moon ecliptic longitudes. All functions are pure
// and total over finite inputs
package panchanga

import (
	"math"

	"muhurta/internal/core/celestial"
	perr "muhurta/internal/platform/errors"
)

// Paksha is the waxing or waning half of the lunar month
type Paksha string

const (
	// Shukla is the waxing half, tithi 1..15
	Shukla Paksha = "shukla"
	// Krishna is the waning half, tithi 16..30
	Krishna Paksha = "krishna"
)

// Tithi is the lunar day, 1..30
type Tithi int

// Yoga is the Sun-plus-Moon division, 1..27
type Yoga int

// Nakshatra is the lunar mansion, 1..27
type Nakshatra int

// tithi arc width in degrees
const tithiArc = 12.0

// yoga arc width in degrees, 360/27
const yogaArc = 360.0 / 27.0

// checkAngle guards the pure functions against programmer-error inputs.
// NaN, infinities and absurd magnitudes fail fast; ordinary out-of-range
// finite angles are normalized, not rejected
func checkAngle(deg float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return perr.InvalidAnglef("longitude is not finite: %v", deg)
	}
	if math.Abs(deg) > 1e6 {
		return perr.InvalidAnglef("longitude magnitude implausible: %v", deg)
	}
	return nil
}

// TithiAt derives the tithi from Sun and Moon longitudes in degrees.
// angle = (moon - sun) mod 360, bucketed into 12 degree arcs, 1-based.
// Defined for every valid longitude pair; never 0 or 31
func TithiAt(sunLon, moonLon float64) (Tithi, error) {
	if err := checkAngle(sunLon); err != nil {
		return 0, err
	}
	if err := checkAngle(moonLon); err != nil {
		return 0, err
	}
	angle := celestial.NormalizeDegrees(moonLon - sunLon)
	n := int(angle/tithiArc) + 1
	if n > 30 {
		n = 30 // angle == 360 cannot occur post-normalization; guard float dust
	}
	return Tithi(n), nil
}

// YogaAt derives the yoga from Sun and Moon longitudes in degrees.
// sum = (sun + moon) mod 360, bucketed into 360/27 degree arcs, 1-based
func YogaAt(sunLon, moonLon float64) (Yoga, error) {
	if err := checkAngle(sunLon); err != nil {
		return 0, err
	}
	if err := checkAngle(moonLon); err != nil {
		return 0, err
	}
	sum := celestial.NormalizeDegrees(sunLon + moonLon)
	n := int(sum/yogaArc) + 1
	if n > 27 {
		n = 27
	}
	return Yoga(n), nil
}

// NakshatraAt derives the nakshatra from the Moon's longitude alone
func NakshatraAt(moonLon float64) (Nakshatra, error) {
	if err := checkAngle(moonLon); err != nil {
		return 0, err
	}
	bl := celestial.BodyLongitude{Body: celestial.Moon, Longitude: moonLon}
	return Nakshatra(bl.NakshatraIndex() + 1), nil
}

// Paksha returns the half of the lunar month the tithi falls in
func (t Tithi) Paksha() Paksha {
	if t >= 1 && t <= 15 {
		return Shukla
	}
	return Krishna
}

// Name returns the traditional tithi name. The 15 names cycle across both
// pakshas except the full and new moon days
func (t Tithi) Name() string {
	if t < 1 || t > 30 {
		return "unknown"
	}
	if t == 15 {
		return "Purnima"
	}
	if t == 30 {
		return "Amavasya"
	}
	i := (int(t) - 1) % 15
	return tithiNames[i]
}

// Name returns the traditional yoga name
func (y Yoga) Name() string {
	if y < 1 || y > 27 {
		return "unknown"
	}
	return yogaNames[y-1]
}

// Name returns the traditional nakshatra name
func (n Nakshatra) Name() string {
	if n < 1 || n > 27 {
		return "unknown"
	}
	return nakshatraNames[n-1]
}

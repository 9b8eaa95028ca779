// Package celestial defines the bodies, coordinates and time axis shared by
// the auspiciousness engine. Longitudes are ecliptic degrees in [0,360)
package celestial

import (
	"math"

	perr "muhurta/internal/platform/errors"
)

// Body identifies a celestial body on the engine's fixed roster
type Body int

const (
	// Sun is the apparent Sun
	Sun Body = iota
	// Moon is the Moon
	Moon
	// Mercury through Saturn are the classical planets
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	// Rahu is the mean ascending node of the lunar orbit
	Rahu
)

var bodyNames = [...]string{"sun", "moon", "mercury", "venus", "mars", "jupiter", "saturn", "rahu"}

// String returns the lowercase wire name of the body
func (b Body) String() string {
	if b < Sun || b > Rahu {
		return "unknown"
	}
	return bodyNames[b]
}

// ParseBody maps a wire name back to a Body
func ParseBody(s string) (Body, error) {
	for i, n := range bodyNames {
		if n == s {
			return Body(i), nil
		}
	}
	return 0, perr.InvalidArgf("unknown body %q", s)
}

// Roster is the fixed set of bodies a position snapshot must resolve.
// Order is stable; snapshots preserve it
var Roster = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu}

// GeoPosition is an observer location in degrees, altitude in meters
type GeoPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude,omitempty"`
}

// Validate checks the coordinate ranges
func (g GeoPosition) Validate() error {
	if math.IsNaN(g.Latitude) || g.Latitude < -90 || g.Latitude > 90 {
		return perr.WithField(perr.InvalidArgf("latitude out of range [-90,90]"), "latitude")
	}
	if math.IsNaN(g.Longitude) || g.Longitude < -180 || g.Longitude > 180 {
		return perr.WithField(perr.InvalidArgf("longitude out of range [-180,180]"), "longitude")
	}
	return nil
}

// NormalizeDegrees wraps an angle into [0,360)
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// zodiac sign names, 30 degrees each starting at 0 Aries
var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignName returns the zodiac sign name for index 0..11
func SignName(i int) string {
	if i < 0 || i > 11 {
		return "unknown"
	}
	return signNames[i]
}

// BodyLongitude pairs a body with its ecliptic longitude in degrees [0,360)
type BodyLongitude struct {
	Body      Body    `json:"body"`
	Longitude float64 `json:"longitude"`
}

// Sign returns the zodiac sign index, floor(longitude/30) in 0..11
func (bl BodyLongitude) Sign() int {
	s := int(NormalizeDegrees(bl.Longitude) / 30)
	if s > 11 {
		s = 11
	}
	return s
}

// SignName returns the zodiac sign name for the longitude
func (bl BodyLongitude) SignName() string { return SignName(bl.Sign()) }

// DegreesInSign returns the longitude within the sign, [0,30)
func (bl BodyLongitude) DegreesInSign() float64 {
	return math.Mod(NormalizeDegrees(bl.Longitude), 30)
}

// NakshatraIndex returns floor(longitude*27/360) clamped to 0..26.
// The clamp absorbs floating point edge cases at exactly 360 degrees
func (bl BodyLongitude) NakshatraIndex() int {
	i := int(NormalizeDegrees(bl.Longitude) * 27 / 360)
	if i < 0 {
		i = 0
	}
	if i > 26 {
		i = 26
	}
	return i
}

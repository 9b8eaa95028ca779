// Package ephemeris defines the port through which the engine obtains
// geocentric body longitudes and the daylight window for a date and place
package ephemeris

import (
	"context"
	"time"

	"muhurta/internal/core/celestial"
)

// Window is the daylight window for one civil date at one location.
// Approximate marks a window that was not derived from true solar
// geometry; Note says why. Consumers must surface the flag, never hide it
type Window struct {
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
	Approximate bool      `json:"approximate,omitempty"`
	Note        string    `json:"note,omitempty"`
}

// Provider resolves celestial positions and daylight windows.
// Implementations must be safe for concurrent use and must return an
// error rather than fabricate a value
type Provider interface {
	// BodyLongitude returns the geocentric ecliptic longitude of body at
	// the given instant, in degrees [0,360)
	BodyLongitude(ctx context.Context, at time.Time, body celestial.Body) (celestial.BodyLongitude, error)

	// SunWindow returns the daylight window for the civil date of date
	// (evaluated in UTC) at the given location. A date with no usable
	// window, polar night included, is an error, never a default
	SunWindow(ctx context.Context, date time.Time, geo celestial.GeoPosition) (Window, error)
}

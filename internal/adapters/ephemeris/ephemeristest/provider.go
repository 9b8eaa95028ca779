// Package ephemeristest provides a deterministic in-memory ephemeris
// provider for tests. Longitudes move linearly from a fixed epoch so
// derived panchanga values are predictable day over day
package ephemeristest

import (
	"context"
	"sync"
	"time"

	"muhurta/internal/adapters/ephemeris"
	"muhurta/internal/core/celestial"
	perr "muhurta/internal/platform/errors"
)

// default mean daily motions in degrees, rounded for test readability
var defaultRates = map[celestial.Body]float64{
	celestial.Sun:     1,
	celestial.Moon:    13,
	celestial.Mercury: 1.4,
	celestial.Venus:   1.2,
	celestial.Mars:    0.5,
	celestial.Jupiter: 0.08,
	celestial.Saturn:  0.03,
	celestial.Rahu:    -0.05,
}

// Provider is a fake ephemeris. The zero value is not usable; call New
type Provider struct {
	mu sync.Mutex

	// Epoch anchors the linear motion; longitudes at Epoch come from
	// Longitudes and advance by RatePerDay degrees per day after it
	Epoch      time.Time
	Longitudes map[celestial.Body]float64
	RatePerDay map[celestial.Body]float64

	// Rise and Set override the window; when zero the provider answers
	// 06:00-18:00 UTC on the queried date
	Rise, Set time.Time

	// Err fails every call; BodyErr fails a single body; WindowErr fails
	// SunWindow only
	Err       error
	BodyErr   map[celestial.Body]error
	WindowErr error

	BodyCalls   int
	WindowCalls int
}

// New returns a provider with all roster bodies at zero longitude on
// 2026-01-01 and the default rates
func New() *Provider {
	p := &Provider{
		Epoch:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Longitudes: make(map[celestial.Body]float64, len(celestial.Roster)),
		RatePerDay: make(map[celestial.Body]float64, len(defaultRates)),
		BodyErr:    make(map[celestial.Body]error),
	}
	for _, b := range celestial.Roster {
		p.Longitudes[b] = 0
		p.RatePerDay[b] = defaultRates[b]
	}
	return p
}

var _ ephemeris.Provider = (*Provider)(nil)

// Pin fixes a body's longitude at the epoch and freezes its motion
func (p *Provider) Pin(body celestial.Body, lon float64) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Longitudes[body] = lon
	p.RatePerDay[body] = 0
	return p
}

// BodyLongitude answers from the linear model
func (p *Provider) BodyLongitude(ctx context.Context, at time.Time, body celestial.Body) (celestial.BodyLongitude, error) {
	if err := ctx.Err(); err != nil {
		return celestial.BodyLongitude{}, perr.EphemerisUnavailablef("canceled: %v", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.BodyCalls++

	if p.Err != nil {
		return celestial.BodyLongitude{}, p.Err
	}
	if err, ok := p.BodyErr[body]; ok {
		return celestial.BodyLongitude{}, err
	}
	if err := celestial.ValidateInstant(at); err != nil {
		return celestial.BodyLongitude{}, err
	}

	days := at.Sub(p.Epoch).Hours() / 24
	lon := celestial.NormalizeDegrees(p.Longitudes[body] + p.RatePerDay[body]*days)
	return celestial.BodyLongitude{Body: body, Longitude: lon}, nil
}

// SunWindow answers the configured or default 06:00-18:00 UTC window
func (p *Provider) SunWindow(ctx context.Context, date time.Time, geo celestial.GeoPosition) (ephemeris.Window, error) {
	if err := ctx.Err(); err != nil {
		return ephemeris.Window{}, perr.EphemerisUnavailablef("canceled: %v", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.WindowCalls++

	if p.Err != nil {
		return ephemeris.Window{}, p.Err
	}
	if p.WindowErr != nil {
		return ephemeris.Window{}, p.WindowErr
	}
	if err := geo.Validate(); err != nil {
		return ephemeris.Window{}, err
	}
	if !p.Rise.IsZero() && !p.Set.IsZero() {
		return ephemeris.Window{Sunrise: p.Rise, Sunset: p.Set}, nil
	}
	y, m, d := date.UTC().Date()
	return ephemeris.Window{
		Sunrise: time.Date(y, m, d, 6, 0, 0, 0, time.UTC),
		Sunset:  time.Date(y, m, d, 18, 0, 0, 0, time.UTC),
	}, nil
}

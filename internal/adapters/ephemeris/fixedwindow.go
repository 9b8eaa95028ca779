package ephemeris

import (
	"context"
	"time"

	"muhurta/internal/core/celestial"

	"cloudeng.io/datetime"
)

// FixedWindow decorates a provider with a constant 06:00-18:00 daylight
// window in a fixed location, for deployments without a usable rise/set
// source. Every window it returns is marked approximate
type FixedWindow struct {
	inner Provider
	loc   *time.Location

	rise datetime.TimeOfDay
	set  datetime.TimeOfDay
}

// NewFixedWindow wraps inner, answering SunWindow with the fixed window
// rendered in loc. A nil loc means UTC
func NewFixedWindow(inner Provider, loc *time.Location) *FixedWindow {
	if loc == nil {
		loc = time.UTC
	}
	return &FixedWindow{
		inner: inner,
		loc:   loc,
		rise:  datetime.NewTimeOfDay(6, 0, 0),
		set:   datetime.NewTimeOfDay(18, 0, 0),
	}
}

// BodyLongitude delegates to the wrapped provider
func (f *FixedWindow) BodyLongitude(ctx context.Context, at time.Time, body celestial.Body) (celestial.BodyLongitude, error) {
	return f.inner.BodyLongitude(ctx, at, body)
}

// SunWindow returns the fixed 06:00-18:00 window for the civil date,
// explicitly labeled so callers can surface the approximation
func (f *FixedWindow) SunWindow(ctx context.Context, date time.Time, geo celestial.GeoPosition) (Window, error) {
	if err := geo.Validate(); err != nil {
		return Window{}, err
	}
	if err := celestial.ValidateInstant(date); err != nil {
		return Window{}, err
	}
	u := date.UTC()
	cd := datetime.NewCalendarDate(u.Year(), datetime.Month(u.Month()), u.Day())
	return Window{
		Sunrise:     cd.Time(f.rise, f.loc),
		Sunset:      cd.Time(f.set, f.loc),
		Approximate: true,
		Note:        "fixed 06:00-18:00 window; solar geometry not consulted",
	}, nil
}

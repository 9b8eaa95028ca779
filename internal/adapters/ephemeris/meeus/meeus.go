// Package meeus implements the ephemeris provider on the Meeus
// algorithms: apparent solar longitude, lunar theory and mean node, and
// VSOP87 planet positions, with go-sunrise for the daylight window.
//
// VSOP87 data files are loaded lazily per planet and cached for the life
// of the provider; the search path follows planetposition (the VSOP87
// environment variable, then the working directory)
package meeus

import (
	"context"
	"sync"
	"time"

	"muhurta/internal/adapters/ephemeris"
	"muhurta/internal/core/celestial"
	perr "muhurta/internal/platform/errors"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/elliptic"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/mooncaker816/learnmeeus/v3/planetposition"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/unit"
)

// vsopIndex maps roster planets to their VSOP87 series
var vsopIndex = map[celestial.Body]int{
	celestial.Mercury: planetposition.Mercury,
	celestial.Venus:   planetposition.Venus,
	celestial.Mars:    planetposition.Mars,
	celestial.Jupiter: planetposition.Jupiter,
	celestial.Saturn:  planetposition.Saturn,
}

// Provider is the in-process Meeus ephemeris. Safe for concurrent use
type Provider struct {
	mu      sync.Mutex
	planets map[int]*planetposition.V87Planet
}

// New returns a provider with an empty VSOP87 cache
func New() *Provider {
	return &Provider{planets: make(map[int]*planetposition.V87Planet, len(vsopIndex)+1)}
}

var _ ephemeris.Provider = (*Provider)(nil)

func (p *Provider) planet(i int) (*planetposition.V87Planet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pl, ok := p.planets[i]; ok {
		return pl, nil
	}
	pl, err := planetposition.LoadPlanet(i)
	if err != nil {
		return nil, perr.EphemerisUnavailablef("load VSOP87 series %d: %v", i, err)
	}
	p.planets[i] = pl
	return pl, nil
}

// BodyLongitude computes the geocentric ecliptic longitude of body at
// the given instant
func (p *Provider) BodyLongitude(ctx context.Context, at time.Time, body celestial.Body) (celestial.BodyLongitude, error) {
	if err := ctx.Err(); err != nil {
		return celestial.BodyLongitude{}, perr.EphemerisUnavailablef("canceled: %v", err)
	}
	if err := celestial.ValidateInstant(at); err != nil {
		return celestial.BodyLongitude{}, err
	}

	jd := celestial.JulianDay(at)
	var lon float64
	switch body {
	case celestial.Sun:
		lon = solar.ApparentLongitude(base.J2000Century(jd)).Deg()
	case celestial.Moon:
		l, _, _ := moonposition.Position(jd)
		lon = l.Deg()
	case celestial.Rahu:
		lon = moonposition.Node(jd).Deg()
	case celestial.Mercury, celestial.Venus, celestial.Mars, celestial.Jupiter, celestial.Saturn:
		var err error
		if lon, err = p.planetLongitude(body, jd); err != nil {
			return celestial.BodyLongitude{}, err
		}
	default:
		return celestial.BodyLongitude{}, perr.InvalidArgf("body %q is not on the roster", body)
	}
	return celestial.BodyLongitude{Body: body, Longitude: celestial.NormalizeDegrees(lon)}, nil
}

// planetLongitude converts the apparent equatorial position from the
// VSOP87 series into an ecliptic longitude using the mean obliquity
func (p *Provider) planetLongitude(body celestial.Body, jd float64) (float64, error) {
	target, err := p.planet(vsopIndex[body])
	if err != nil {
		return 0, err
	}
	earth, err := p.planet(planetposition.Earth)
	if err != nil {
		return 0, err
	}
	ra, dec := elliptic.Position(target, earth, jd)
	return eclipticLongitude(ra, dec, jd), nil
}

// eclipticLongitude rotates an apparent equatorial position into the
// ecliptic frame of date and returns the longitude in degrees
func eclipticLongitude(ra unit.RA, dec unit.Angle, jd float64) float64 {
	obl := coord.NewObliquity(nutation.MeanObliquity(jd))
	ecl := new(coord.Ecliptic).EqToEcl(&coord.Equatorial{RA: ra, Dec: dec}, obl)
	return ecl.Lon.Deg()
}

// SunWindow computes the daylight window for the civil date of date at
// geo. Polar dates with no sunrise or sunset are rejected, not defaulted
func (p *Provider) SunWindow(ctx context.Context, date time.Time, geo celestial.GeoPosition) (ephemeris.Window, error) {
	if err := ctx.Err(); err != nil {
		return ephemeris.Window{}, perr.EphemerisUnavailablef("canceled: %v", err)
	}
	if err := celestial.ValidateInstant(date); err != nil {
		return ephemeris.Window{}, err
	}
	if err := geo.Validate(); err != nil {
		return ephemeris.Window{}, err
	}

	u := date.UTC()
	cd := datetime.NewCalendarDate(u.Year(), datetime.Month(u.Month()), u.Day())
	rise, set := sunrise.SunriseSunset(
		geo.Latitude, geo.Longitude,
		cd.Year(), time.Month(cd.Month()), cd.Day())
	if rise.IsZero() || set.IsZero() || !rise.Before(set) {
		return ephemeris.Window{}, perr.InvertedDayWindowf(
			"no daylight window at lat %.4f lon %.4f on %04d-%02d-%02d",
			geo.Latitude, geo.Longitude, cd.Year(), cd.Month(), cd.Day())
	}
	return ephemeris.Window{Sunrise: rise.UTC(), Sunset: set.UTC()}, nil
}

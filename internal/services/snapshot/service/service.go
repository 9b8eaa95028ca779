// Package service implements the position snapshot builder
package service

import (
	"context"
	"time"

	"muhurta/internal/core/celestial"
	"muhurta/internal/core/muhurta"
	"muhurta/internal/core/panchanga"
	"muhurta/internal/modkit"
	perr "muhurta/internal/platform/errors"

	"muhurta/internal/services/snapshot/domain"
)

// Service builds full-roster snapshots and day tables from the ephemeris
type Service struct {
	deps modkit.Deps
}

// New constructs the snapshot service
func New(deps modkit.Deps) *Service {
	if deps.Ephemeris == nil {
		panic("snapshot service requires an ephemeris provider")
	}
	return &Service{deps: deps}
}

var _ domain.ReaderPort = (*Service)(nil)

// At resolves the full roster at one instant. The roster is all or
// nothing: the first failing body voids the snapshot
func (s *Service) At(ctx context.Context, at time.Time) (domain.Snapshot, error) {
	if err := celestial.ValidateInstant(at); err != nil {
		return domain.Snapshot{}, err
	}

	positions := make([]domain.BodyPosition, 0, len(celestial.Roster))
	for _, b := range celestial.Roster {
		bl, err := s.deps.Ephemeris.BodyLongitude(ctx, at, b)
		if err != nil {
			return domain.Snapshot{}, perr.Wrapf(err, perr.ErrorCodeEphemerisUnavailable,
				"snapshot at %s: resolve %s", at.UTC().Format(time.RFC3339), b)
		}
		positions = append(positions, domain.BodyPosition{
			Body:          b.String(),
			Longitude:     bl.Longitude,
			Sign:          bl.Sign(),
			SignName:      bl.SignName(),
			DegreesInSign: bl.DegreesInSign(),
			Nakshatra:     bl.NakshatraIndex() + 1,
			NakshatraName: panchanga.Nakshatra(bl.NakshatraIndex() + 1).Name(),
		})
	}

	return domain.Snapshot{
		At:        at.UTC(),
		JulianDay: celestial.JulianDay(at),
		Positions: positions,
	}, nil
}

// Day builds the fifteen-interval muhurta table for a civil date. Each
// interval carries the panchanga derived at its midpoint
func (s *Service) Day(ctx context.Context, date time.Time, geo celestial.GeoPosition) (domain.DayView, error) {
	w, err := s.deps.Ephemeris.SunWindow(ctx, date, geo)
	if err != nil {
		return domain.DayView{}, err
	}
	ivs, err := muhurta.Partition(w.Sunrise, w.Sunset)
	if err != nil {
		return domain.DayView{}, err
	}

	// quality follows the civil date's weekday even when sunrise falls
	// on the previous UTC day
	weekday := date.UTC().Weekday()
	views := make([]domain.IntervalView, 0, len(ivs))
	for _, iv := range ivs {
		if err := ctx.Err(); err != nil {
			return domain.DayView{}, perr.EphemerisUnavailablef("day view canceled: %v", err)
		}
		mid := iv.Midpoint()
		sun, err := s.deps.Ephemeris.BodyLongitude(ctx, mid, celestial.Sun)
		if err != nil {
			return domain.DayView{}, err
		}
		moon, err := s.deps.Ephemeris.BodyLongitude(ctx, mid, celestial.Moon)
		if err != nil {
			return domain.DayView{}, err
		}

		ti, err := panchanga.TithiAt(sun.Longitude, moon.Longitude)
		if err != nil {
			return domain.DayView{}, err
		}
		yo, err := panchanga.YogaAt(sun.Longitude, moon.Longitude)
		if err != nil {
			return domain.DayView{}, err
		}
		na, err := panchanga.NakshatraAt(moon.Longitude)
		if err != nil {
			return domain.DayView{}, err
		}

		views = append(views, domain.IntervalView{
			Ordinal:       iv.Ordinal,
			Name:          iv.Name,
			Start:         iv.Start,
			End:           iv.End,
			Quality:       string(muhurta.QualityOf(iv.Ordinal, weekday, ti)),
			Tithi:         int(ti),
			TithiName:     ti.Name(),
			Paksha:        string(ti.Paksha()),
			Yoga:          int(yo),
			YogaName:      yo.Name(),
			Nakshatra:     int(na),
			NakshatraName: na.Name(),
		})
	}

	return domain.DayView{
		Date:        date.UTC().Format("2006-01-02"),
		Sunrise:     w.Sunrise,
		Sunset:      w.Sunset,
		Approximate: w.Approximate,
		Note:        w.Note,
		Intervals:   views,
	}, nil
}

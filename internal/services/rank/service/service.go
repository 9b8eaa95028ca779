// Package service implements the horizon ranker
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"muhurta/internal/core/almanac"
	"muhurta/internal/core/celestial"
	"muhurta/internal/core/panchanga"
	"muhurta/internal/core/scoring"
	"muhurta/internal/modkit"
	perr "muhurta/internal/platform/errors"
	"muhurta/internal/platform/logger"

	"muhurta/internal/services/rank/domain"
)

// Service scans candidate days and ranks them for a profile and category
type Service struct {
	deps modkit.Deps
	cal  *almanac.Catalog
}

// New constructs the ranking service. The catalog is embedded; a load
// failure is a build defect, not a runtime condition
func New(deps modkit.Deps) *Service {
	if deps.Ephemeris == nil {
		panic("rank service requires an ephemeris provider")
	}
	cal, err := almanac.Load()
	if err != nil {
		panic(fmt.Sprintf("rank service: %v", err))
	}
	return &Service{deps: deps, cal: cal}
}

var _ domain.RankerPort = (*Service)(nil)

// Catalog exposes the loaded almanac for the API's category listing
func (s *Service) Catalog() *almanac.Catalog { return s.cal }

// Rank scans [from, from+horizon) one day at a time, scores each day at
// its sunrise and returns the top candidates. The scan aborts on the
// first provider error; values are never fabricated
func (s *Service) Rank(ctx context.Context, p domain.Profile, q domain.Query) (domain.Ranking, error) {
	cat, ok := s.cal.Category(q.Category)
	if !ok {
		return domain.Ranking{}, perr.WithField(perr.NotFoundf("unknown event category %q", q.Category), "category")
	}
	if p.BirthDate.IsZero() {
		return domain.Ranking{}, perr.WithField(perr.InvalidArgf("birth date is required"), "birth_date")
	}
	if err := q.Geo.Validate(); err != nil {
		return domain.Ranking{}, err
	}

	from := q.From
	if from.IsZero() {
		from = time.Now().UTC()
	}
	y, m, d := from.UTC().Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	horizon := q.HorizonDays
	if horizon <= 0 {
		horizon = domain.DefaultHorizonDays
	}
	if horizon > domain.MaxHorizonDays {
		return domain.Ranking{}, perr.WithField(
			perr.InvalidArgf("horizon %d exceeds %d days", horizon, domain.MaxHorizonDays), "horizon_days")
	}
	minScore := q.MinScore
	if minScore <= 0 {
		minScore = domain.DefaultMinScore
	}
	topN := q.TopN
	if topN <= 0 {
		topN = domain.DefaultTopN
	}

	out := domain.Ranking{
		RankingID:    uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Category:     cat.Key,
		CategoryName: cat.Name,
		From:         from.Format("2006-01-02"),
		HorizonDays:  horizon,
		MinScore:     minScore,
		TopN:         topN,
	}

	cands := make([]domain.Candidate, 0, topN)
	for i := 0; i < horizon; i++ {
		// a canceled request stops between days, never mid-day
		if err := ctx.Err(); err != nil {
			return domain.Ranking{}, perr.Wrapf(err, perr.ErrorCodeUnavailable,
				"ranking canceled after %d of %d days", i, horizon)
		}

		day := from.AddDate(0, 0, i)
		c, approx, err := s.scoreDay(ctx, day, p, q.Geo, cat)
		if err != nil {
			return domain.Ranking{}, err
		}
		if approx.ok {
			out.Approximate = true
			out.Note = approx.note
		}
		out.Scanned++
		if c.Score >= minScore {
			cands = append(cands, c)
		}
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		return cands[i].Date < cands[j].Date
	})
	if len(cands) > topN {
		cands = cands[:topN]
	}
	out.Candidates = cands

	logger.C(ctx).Debug().
		Str("category", cat.Key).
		Int("scanned", out.Scanned).
		Int("kept", len(cands)).
		Msg("ranking complete")
	return out, nil
}

type approxMark struct {
	ok   bool
	note string
}

// scoreDay evaluates one candidate day at its sunrise
func (s *Service) scoreDay(
	ctx context.Context,
	day time.Time,
	p domain.Profile,
	geo celestial.GeoPosition,
	cat almanac.EventCategory,
) (domain.Candidate, approxMark, error) {
	w, err := s.deps.Ephemeris.SunWindow(ctx, day, geo)
	if err != nil {
		return domain.Candidate{}, approxMark{}, err
	}

	sun, err := s.deps.Ephemeris.BodyLongitude(ctx, w.Sunrise, celestial.Sun)
	if err != nil {
		return domain.Candidate{}, approxMark{}, err
	}
	moon, err := s.deps.Ephemeris.BodyLongitude(ctx, w.Sunrise, celestial.Moon)
	if err != nil {
		return domain.Candidate{}, approxMark{}, err
	}

	ti, err := panchanga.TithiAt(sun.Longitude, moon.Longitude)
	if err != nil {
		return domain.Candidate{}, approxMark{}, err
	}
	na, err := panchanga.NakshatraAt(moon.Longitude)
	if err != nil {
		return domain.Candidate{}, approxMark{}, err
	}

	// the weekday bonus is calendrical: it follows the candidate civil
	// date, not the sunrise instant, which can sit on the previous UTC
	// day at eastern longitudes
	weekday := day.Weekday()
	facts := scoring.Facts{
		Tithi:      ti,
		Nakshatra:  na,
		Weekday:    weekday,
		Month:      day.Month(),
		BirthMonth: p.BirthDate.UTC().Month(),
	}
	b := scoring.Score(s.cal, cat, facts)

	c := domain.Candidate{
		Date:          day.Format("2006-01-02"),
		Weekday:       weekday.String(),
		Score:         b.Total,
		Breakdown:     b,
		Quality:       scoring.Describe(b.Total),
		Tithi:         int(ti),
		TithiName:     ti.Name(),
		Paksha:        string(ti.Paksha()),
		Nakshatra:     int(na),
		NakshatraName: na.Name(),
		Slot:          s.cal.SlotFor(ti).String(),
		Sunrise:       w.Sunrise,
		Sunset:        w.Sunset,
		Rationale:     scoring.Rationale(cat, facts, b),
	}
	return c, approxMark{ok: w.Approximate, note: w.Note}, nil
}

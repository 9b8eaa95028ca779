package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"muhurta/internal/adapters/ephemeris"
	"muhurta/internal/adapters/ephemeris/meeus"
	"muhurta/internal/adapters/ephemeris/procbind"
	"muhurta/internal/core/celestial"
	"muhurta/internal/modkit"
	"muhurta/internal/modkit/module"
	"muhurta/internal/platform/config"
	"muhurta/internal/platform/logger"

	rankdom "muhurta/internal/services/rank/domain"
	rankmod "muhurta/internal/services/rank/module"
)

func main() {
	root := config.New()
	cliCfg := root.Prefix("CORE_RANK_")
	l := logger.Get()

	var (
		category = flag.String("category", "", "event category key, e.g. wedding")
		birthStr = flag.String("birth", "", "birth date, YYYY-MM-DD")
		name     = flag.String("name", "", "profile name (optional)")
		lat      = flag.Float64("lat", 0, "latitude in degrees")
		lon      = flag.Float64("lon", 0, "longitude in degrees")
		fromStr  = flag.String("from", "", "first candidate date, YYYY-MM-DD (default today)")
		days     = flag.Int("days", 0, "horizon in days (default 90)")
		minScore = flag.Int("min", 0, "minimum score to keep (default 60)")
		topN     = flag.Int("top", 0, "max candidates to return (default 20)")
	)
	flag.Parse()

	if *category == "" || *birthStr == "" {
		log.Fatal("category/birth are required")
	}
	birth, err := time.Parse("2006-01-02", *birthStr)
	if err != nil {
		log.Fatalf("bad -birth: %v", err)
	}
	var from time.Time
	if *fromStr != "" {
		if from, err = time.Parse("2006-01-02", *fromStr); err != nil {
			log.Fatalf("bad -from: %v", err)
		}
	}

	deps := modkit.Deps{
		Cfg:       cliCfg,
		Ephemeris: buildProvider(cliCfg),
	}
	rank := rankmod.New(deps)
	ranker := module.MustPortsOf[rankmod.Ports](rank).Ranker

	r, err := ranker.Rank(context.Background(),
		rankdom.Profile{Name: *name, BirthDate: birth},
		rankdom.Query{
			Category:    *category,
			Geo:         celestial.GeoPosition{Latitude: *lat, Longitude: *lon},
			From:        from,
			HorizonDays: *days,
			MinScore:    *minScore,
			TopN:        *topN,
		})
	if err != nil {
		l.Fatal().Err(err).Msg("ranking failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		l.Fatal().Err(err).Msg("encode ranking")
	}
}

// buildProvider selects the ephemeris backend from config
// CORE_RANK_EPHEMERIS: meeus (default) or proc with CORE_RANK_EPHEMERIS_BIN
func buildProvider(cfg config.Conf) ephemeris.Provider {
	l := logger.Get()

	var p ephemeris.Provider
	switch mode := cfg.MayString("EPHEMERIS", "meeus"); mode {
	case "meeus":
		p = meeus.New()
	case "proc":
		p = procbind.
			New(cfg.MustString("EPHEMERIS_BIN")).
			WithTimeout(cfg.MayDuration("EPHEMERIS_TIMEOUT", procbind.DefaultTimeout))
	default:
		l.Panic().Str("mode", mode).Msg("unknown ephemeris mode")
	}

	if cfg.MayBool("FIXED_WINDOW", false) {
		loc, err := time.LoadLocation(cfg.MayString("FIXED_WINDOW_TZ", "UTC"))
		if err != nil {
			l.Panic().Err(err).Msg("bad CORE_RANK_FIXED_WINDOW_TZ")
		}
		l.Warn().Msg("fixed daylight window enabled; rankings will be marked approximate")
		p = ephemeris.NewFixedWindow(p, loc)
	}
	return p
}

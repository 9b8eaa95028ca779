package main

import (
	"context"
	"time"

	"muhurta/internal/adapters/ephemeris"
	"muhurta/internal/adapters/ephemeris/meeus"
	"muhurta/internal/adapters/ephemeris/procbind"
	"muhurta/internal/platform/config"
	"muhurta/internal/platform/logger"
	phttp "muhurta/internal/platform/net/http"

	"muhurta/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	prov := buildProvider(apiCfg)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(srv.Router(), api.Options{
		Config:    apiCfg,
		Ephemeris: prov,
	})

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

// buildProvider selects the ephemeris backend from config
// CORE_API_EPHEMERIS: meeus (default) or proc with CORE_API_EPHEMERIS_BIN
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

	// explicit opt-in fallback; results are labeled approximate downstream
	if cfg.MayBool("FIXED_WINDOW", false) {
		loc, err := time.LoadLocation(cfg.MayString("FIXED_WINDOW_TZ", "UTC"))
		if err != nil {
			l.Panic().Err(err).Msg("bad CORE_API_FIXED_WINDOW_TZ")
		}
		l.Warn().Msg("fixed daylight window enabled; rankings will be marked approximate")
		p = ephemeris.NewFixedWindow(p, loc)
	}
	return p
}

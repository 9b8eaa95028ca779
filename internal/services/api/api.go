// Package api provides the HTTP API for the application
package api

import (
	"muhurta/internal/adapters/ephemeris"
	"muhurta/internal/platform/config"
	phttp "muhurta/internal/platform/net/http"

	"muhurta/internal/modkit"
	"muhurta/internal/modkit/httpkit"
	"muhurta/internal/modkit/module"

	metamod "muhurta/internal/services/api/meta/module"
	muhuratsmod "muhurta/internal/services/api/muhurats/module"
	panchangamod "muhurta/internal/services/api/panchanga/module"

	// engine modules owning the Ranker and Reader ports
	rankmod "muhurta/internal/services/rank/module"
	snapmod "muhurta/internal/services/snapshot/module"
)

// Options are the API options
type Options struct {
	Config    config.Conf
	Ephemeris ephemeris.Provider
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:       opt.Config,
		Ephemeris: opt.Ephemeris,
	}

	// construct the engine modules first and extract their ports
	snapshot := snapmod.New(deps)
	rank := rankmod.New(deps)
	reader := module.MustPortsOf[snapmod.Ports](snapshot).Reader
	ranker := module.MustPortsOf[rankmod.Ports](rank).Ranker

	mods := []module.Module{
		snapshot,
		rank,
		metamod.New(deps, rank.Service().Catalog()),
		muhuratsmod.New(deps, modkit.WithPorts(muhuratsmod.Ports{Ranker: ranker})),
		panchangamod.New(deps, modkit.WithPorts(panchangamod.Ports{Reader: reader})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

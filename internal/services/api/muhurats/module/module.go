// Package module wires the muhurat endpoints into the API
package module

import (
	stdhttp "net/http"

	"muhurta/internal/modkit"
	"muhurta/internal/modkit/httpkit"
	str "muhurta/internal/platform/strings"

	muhuratshttp "muhurta/internal/services/api/muhurats/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(stdhttp.Handler) stdhttp.Handler
	ports  Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the muhurats module; the Ranker port must be injected
// via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("muhurats"),
		modkit.WithPrefix("/muhurats"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Ranker == nil {
		panic("muhurats module requires a Ranker port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		muhuratshttp.Register(r, muhuratshttp.Deps{Ranker: ports.Ranker})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "muhurats") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }

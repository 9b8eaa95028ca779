// Package module wires the ranking service and exposes its ports
package module

import (
	"muhurta/internal/modkit"
	"muhurta/internal/modkit/httpkit"
	"muhurta/internal/services/rank/service"
)

// Module defines the rank service module
type Module struct {
	deps  modkit.Deps
	svc   *service.Service
	ports Ports
}

// New constructs the rank module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps)
	return &Module{deps: deps, svc: svc, ports: Ports{Ranker: svc}}
}

// Service returns the concrete service for callers that need the catalog
func (m *Module) Service() *service.Service { return m.svc }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "rank" }

// Prefix returns the module config prefix (none, the API mounts routes)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes of its own
func (m *Module) MountRoutes(_ httpkit.Router) {}

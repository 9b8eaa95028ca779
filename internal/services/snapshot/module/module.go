// Package module wires the snapshot service and exposes its ports
package module

import (
	"muhurta/internal/modkit"
	"muhurta/internal/modkit/httpkit"
	"muhurta/internal/services/snapshot/service"
)

// Module defines the snapshot service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the snapshot module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps)
	return &Module{deps: deps, ports: Ports{Reader: svc}}
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "snapshot" }

// Prefix returns the module config prefix (none, the API mounts routes)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes of its own
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Package modkit provides module wiring and core deps
package modkit

import (
	"muhurta/internal/adapters/ephemeris"
	"muhurta/internal/platform/config"
	"muhurta/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log       logger.Logger
	Cfg       config.Conf
	Ephemeris ephemeris.Provider
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the provider
func (d Deps) ZeroOK() bool { return true }

package app

import (
	"go.trai.ch/ukbuild/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Levels adjusts the verbosity of Logger once flags are parsed.
	Levels *logger.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log ports.Logger, levels *logger.Logger) *Components {
	return &Components{
		App:    app,
		Logger: log,
		Levels: levels,
	}
}

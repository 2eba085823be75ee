// Package tui provides an interactive terminal editor for modmenu options.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/modmenu/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Options reads and edits option values.
	Options driving.OptionService

	// Persistence reloads the config file. Optional.
	Persistence driving.ConfigPersistence
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(options driving.OptionService, persistence driving.ConfigPersistence) *Ports {
	return &Ports{
		Options:     options,
		Persistence: persistence,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Options == nil {
		return ErrMissingOptionService
	}
	return nil
}

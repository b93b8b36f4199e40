// Package tui provides an interactive terminal editor for retouch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Session is the editing session. Required.
	Session driving.SessionService

	// Settings provides the default image and filter parameters. Optional.
	Settings driving.SettingsService

	// Watcher reports changes to the loaded file. Optional.
	Watcher driving.SourceWatcher
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	return nil
}

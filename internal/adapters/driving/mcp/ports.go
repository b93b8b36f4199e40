package mcp

import (
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports exposed by the MCP server.
type Ports struct {
	// Session is the editing session the tools operate on.
	Session driving.SessionService

	// History exposes the load/save journal. Optional.
	History driving.HistoryService

	// Settings provides the configured filter parameters. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	return nil
}

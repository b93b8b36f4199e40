// Package mcp provides an MCP (Model Context Protocol) server adapter for retouch.
// It lets AI assistants drive an editing session through tools.
package mcp

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("mcp: session service is required")

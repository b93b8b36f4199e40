package viewer

import (
	"context"
	"image"

	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
)

// Ensure Nop implements the interface.
var _ driven.Viewer = Nop{}

// Nop is a viewer that renders nothing.
type Nop struct{}

// Show does nothing.
func (Nop) Show(context.Context, string, image.Image) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }

//go:build !cgo || !opencv

package opencv

import (
	"context"
	"image"
	"time"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
)

// Ensure Window implements the interface.
var _ driven.WaitingViewer = (*Window)(nil)

// Window shows images in a native OpenCV window.
// This is a stub for builds without CGO or the opencv tag.
type Window struct{}

// NewWindow creates a window viewer.
func NewWindow() *Window {
	return &Window{}
}

// Show is not available in this build.
func (w *Window) Show(_ context.Context, _ string, _ image.Image) error {
	return domain.ErrNotImplemented
}

// Wait is not available in this build.
func (w *Window) Wait(_ context.Context, _ time.Duration) error {
	return domain.ErrNotImplemented
}

// Close releases nothing.
func (w *Window) Close() error {
	return nil
}

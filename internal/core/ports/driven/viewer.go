package driven

import (
	"context"
	"image"
	"time"
)

// Viewer renders an image for the user.
type Viewer interface {
	// Show renders img under the given title. It must not block beyond
	// the rendering itself; the caller owns the display wait.
	Show(ctx context.Context, title string, img image.Image) error

	// Close releases any window or terminal resources.
	Close() error
}

// WaitingViewer is a Viewer that must keep handling window events while
// Display blocks. Wait replaces the plain sleep of the display duration.
type WaitingViewer interface {
	Viewer

	// Wait pumps events for d or until ctx is done.
	Wait(ctx context.Context, d time.Duration) error
}

package driving

import (
	"context"
	"image"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// SessionService is an editing session over a single image.
//
// The session owns a working image and a snapshot taken at load time.
// Every editing operation replaces the working image wholesale and then
// displays it. Operations other than Load return domain.ErrNoImage until
// an image has been loaded.
type SessionService interface {
	// ID identifies the session in logs and history.
	ID() string

	// Load reads path into both the snapshot and the working image.
	// Errors wrap domain.ErrIO; the previous state is kept on failure.
	Load(ctx context.Context, path string) error

	// ApplyFilter replaces the working image with the filtered version.
	// Unknown kinds return domain.ErrInvalidFilter and leave it unchanged.
	ApplyFilter(ctx context.Context, kind domain.FilterKind, params domain.FilterParams) error

	// Resize resamples the working image to width x height.
	Resize(ctx context.Context, width, height int) error

	// Rotate turns the working image counter-clockwise by angle degrees
	// about its centre, keeping the canvas size.
	Rotate(ctx context.Context, angle float64) error

	// AdjustBrightnessContrast computes in*contrast + brightness per channel.
	AdjustBrightnessContrast(ctx context.Context, contrast, brightness float64) error

	// Crop replaces the working image with the given sub-rectangle.
	Crop(ctx context.Context, x, y, width, height int) error

	// Save encodes the working image to path.
	Save(ctx context.Context, path string) error

	// Reset restores the working image from the snapshot.
	Reset(ctx context.Context) error

	// Display renders the working image and blocks for the display duration.
	Display(ctx context.Context) error

	// Loaded reports whether an image has been loaded.
	Loaded() bool

	// Current returns the working image, or nil before Load.
	Current() image.Image

	// Original returns the snapshot, or nil before Load.
	Original() image.Image

	// Info describes the working image.
	Info() (domain.ImageInfo, error)

	// Operations returns the edits applied since the last Load or Reset.
	Operations() []domain.Operation
}

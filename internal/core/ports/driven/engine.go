package driven

import (
	"image"
)

// ImageEngine performs every pixel operation of the editor.
// Implementations must never mutate the image passed in; each call
// returns a newly allocated image.
type ImageEngine interface {
	// Name identifies the engine in logs and settings.
	Name() string

	// Load decodes the image file at path.
	// Errors wrap domain.ErrIO.
	Load(path string) (image.Image, error)

	// Save encodes img to path in the format implied by the extension.
	// Returns domain.ErrUnsupportedFormat for unknown extensions and
	// wraps domain.ErrIO on write failures.
	Save(path string, img image.Image, opts SaveOptions) error

	// Grayscale converts img to a single luma channel.
	Grayscale(img image.Image) (image.Image, error)

	// GaussianBlur blurs with a kernel x kernel Gaussian of the given sigma.
	GaussianBlur(img image.Image, kernel int, sigma float64) (image.Image, error)

	// Canny returns a single-channel edge map with values 0 or 255.
	Canny(img image.Image, low, high float64) (image.Image, error)

	// Sharpen convolves img with domain.SharpenKernel.
	Sharpen(img image.Image) (image.Image, error)

	// Resize resamples img to exactly width x height pixels.
	Resize(img image.Image, width, height int) (image.Image, error)

	// Rotate turns img counter-clockwise by angle degrees about its centre,
	// keeping the canvas size.
	Rotate(img image.Image, angle float64) (image.Image, error)

	// ConvertScale computes in*alpha + beta per colour channel with
	// saturation.
	ConvertScale(img image.Image, alpha, beta float64) (image.Image, error)

	// Crop returns the sub-image rect (relative to the image origin).
	Crop(img image.Image, rect image.Rectangle) (image.Image, error)
}

// SaveOptions tunes encoding.
type SaveOptions struct {
	// JPEGQuality is used for .jpg/.jpeg outputs. Zero means the
	// engine default.
	JPEGQuality int
}

package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the WebP decoder

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.ImageEngine = (*Engine)(nil)

// Name is the engine name used in settings.
const Name = string(domain.EngineImaging)

// Engine is the pure Go image engine.
type Engine struct {
	autoOrient bool
}

// NewEngine creates an engine. When autoOrient is set, Load applies the
// EXIF orientation tag of JPEG and TIFF files.
func NewEngine(autoOrient bool) *Engine {
	return &Engine{autoOrient: autoOrient}
}

// Name returns "imaging".
func (e *Engine) Name() string {
	return Name
}

// Load decodes the file at path.
func (e *Engine) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(e.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrIO, path, err)
	}
	return img, nil
}

// Save encodes img to path, choosing the format from the extension.
func (e *Engine) Save(path string, img image.Image, opts driven.SaveOptions) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}

	var encode []imaging.EncodeOption
	if opts.JPEGQuality > 0 {
		encode = append(encode, imaging.JPEGQuality(opts.JPEGQuality))
	}

	if err := imaging.Save(img, path, encode...); err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
		}
		return fmt.Errorf("%w: save %s: %v", domain.ErrIO, path, err)
	}
	return nil
}

// Grayscale converts img with the BT.601 luma weights.
func (e *Engine) Grayscale(img image.Image) (image.Image, error) {
	if domain.IsGray(img) {
		return toGray(imaging.Clone(img)), nil
	}
	return toGray(imaging.Grayscale(img)), nil
}

// GaussianBlur blurs img. imaging sizes its kernel as ceil(3*sigma) on each
// side of the centre, so sigma is capped to keep that radius within
// kernel/2 and the blur never reaches past the requested kernel.
func (e *Engine) GaussianBlur(img image.Image, kernel int, sigma float64) (image.Image, error) {
	if kernel <= 0 || sigma <= 0 {
		return nil, fmt.Errorf("%w: blur kernel %d sigma %g", domain.ErrInvalidInput, kernel, sigma)
	}
	radius := kernel / 2
	if radius == 0 {
		return keepGray(img, imaging.Clone(img)), nil
	}
	return keepGray(img, imaging.Blur(img, blurSigma(radius, sigma))), nil
}

// blurSigma returns the largest sigma up to requested whose imaging
// kernel radius does not exceed radius.
func blurSigma(radius int, requested float64) float64 {
	limit := float64(radius)/3 - 1e-9
	return math.Min(requested, limit)
}

// Canny detects edges on the luma of img.
func (e *Engine) Canny(img image.Image, low, high float64) (image.Image, error) {
	if low <= 0 || high < low {
		return nil, fmt.Errorf("%w: canny thresholds %g/%g", domain.ErrInvalidInput, low, high)
	}
	return canny(toGray(imaging.Grayscale(img)), low, high), nil
}

// Sharpen convolves img with domain.SharpenKernel.
func (e *Engine) Sharpen(img image.Image) (image.Image, error) {
	return keepGray(img, imaging.Convolve3x3(img, domain.SharpenKernel, nil)), nil
}

// Resize resamples img with a bilinear filter.
func (e *Engine) Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", domain.ErrInvalidInput, width, height)
	}
	return keepGray(img, imaging.Resize(img, width, height, imaging.Linear)), nil
}

// Rotate turns img counter-clockwise about its centre. The rotated image
// is pasted centred onto a black canvas of the original size.
func (e *Engine) Rotate(img image.Image, angle float64) (image.Image, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, fmt.Errorf("%w: rotation angle %g", domain.ErrInvalidInput, angle)
	}
	b := img.Bounds()
	rotated := imaging.Rotate(img, angle, color.Black)
	canvas := imaging.New(b.Dx(), b.Dy(), color.Black)
	return keepGray(img, imaging.PasteCenter(canvas, rotated)), nil
}

// ConvertScale computes in*alpha + beta on each colour channel, rounding
// and saturating to 0..255. Alpha is untouched.
func (e *Engine) ConvertScale(img image.Image, alpha, beta float64) (image.Image, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("%w: scale %g offset %g", domain.ErrInvalidInput, alpha, beta)
	}
	scale := func(v uint8) uint8 {
		return saturate(float64(v)*alpha + beta)
	}
	out := imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
	})
	return keepGray(img, out), nil
}

// Crop copies rect, given relative to the image origin.
func (e *Engine) Crop(img image.Image, rect image.Rectangle) (image.Image, error) {
	b := img.Bounds()
	abs := rect.Add(b.Min)
	if rect.Empty() || !abs.In(b) {
		return nil, fmt.Errorf("%w: crop %v outside %dx%d", domain.ErrInvalidInput, rect, b.Dx(), b.Dy())
	}
	return keepGray(img, imaging.Crop(img, abs)), nil
}

// saturate rounds v half away from zero and clamps it to a byte.
func saturate(v float64) uint8 {
	v = math.Round(v)
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// keepGray converts out back to *image.Gray when src was single-channel.
func keepGray(src image.Image, out *image.NRGBA) image.Image {
	if domain.IsGray(src) {
		return toGray(out)
	}
	return out
}

// toGray copies the red channel of an NRGBA image whose channels are equal.
func toGray(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		row := src.Pix[y*src.Stride:]
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.Dx(); x++ {
			out[x] = row[x*4]
		}
	}
	return dst
}

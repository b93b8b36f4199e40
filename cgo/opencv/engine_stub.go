//go:build !cgo || !opencv

package opencv

import (
	"image"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
)

// Available reports whether the binary was built with OpenCV.
const Available = false

// Ensure Engine implements the interface.
var _ driven.ImageEngine = (*Engine)(nil)

// Engine performs image operations with OpenCV.
// This is a stub for builds without CGO or the opencv tag.
type Engine struct{}

// New creates an OpenCV engine.
func New() (*Engine, error) {
	return &Engine{}, nil
}

// Name returns "opencv".
func (e *Engine) Name() string {
	return string(domain.EngineOpenCV)
}

// Load is not available in this build.
func (e *Engine) Load(_ string) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

// Save is not available in this build.
func (e *Engine) Save(_ string, _ image.Image, _ driven.SaveOptions) error {
	return domain.ErrNotImplemented
}

// Grayscale is not available in this build.
func (e *Engine) Grayscale(_ image.Image) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

// GaussianBlur is not available in this build.
func (e *Engine) GaussianBlur(_ image.Image, _ int, _ float64) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

// Canny is not available in this build.
func (e *Engine) Canny(_ image.Image, _, _ float64) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

// Sharpen is not available in this build.
func (e *Engine) Sharpen(_ image.Image) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

// Resize is not available in this build.
func (e *Engine) Resize(_ image.Image, _, _ int) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

// Rotate is not available in this build.
func (e *Engine) Rotate(_ image.Image, _ float64) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

// ConvertScale is not available in this build.
func (e *Engine) ConvertScale(_ image.Image, _, _ float64) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

// Crop is not available in this build.
func (e *Engine) Crop(_ image.Image, _ image.Rectangle) (image.Image, error) {
	return nil, domain.ErrNotImplemented
}

package preview

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

// stubSession serves a fixed image; the editing methods are unused.
type stubSession struct {
	driving.SessionService
	img image.Image
	ops []domain.Operation
}

func (s *stubSession) Info() (domain.ImageInfo, error) {
	if s.img == nil {
		return domain.ImageInfo{}, domain.ErrNoImage
	}
	return domain.NewImageInfo("lena.png", s.img), nil
}

func (s *stubSession) Current() image.Image { return s.img }

func (s *stubSession) Operations() []domain.Operation { return s.ops }

func TestView_NoImage(t *testing.T) {
	v := NewView(nil, &stubSession{})

	out := v.View()

	assert.Contains(t, out, "Preview")
	assert.Contains(t, out, "No image loaded")
}

func TestView_WithImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	v := NewView(nil, &stubSession{
		img: img,
		ops: []domain.Operation{{Kind: domain.OperationFilter, Detail: "grayscale"}},
	})
	v.SetDimensions(8, 7)

	out := v.View()

	assert.Contains(t, out, "8x8, 1 channel")
	assert.Contains(t, out, "filter grayscale")
	assert.Equal(t, 32, strings.Count(out, "▀"), "8x8 fits 8 columns by 4 cell rows")
}

func TestView_OriginalPipeline(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	v := NewView(nil, &stubSession{img: img})

	assert.Contains(t, v.View(), "original")
}

func TestView_SetDimensions(t *testing.T) {
	v := NewView(nil, &stubSession{})

	v.SetDimensions(0, -3)
	w, h := v.Dimensions()

	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

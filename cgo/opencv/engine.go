//go:build cgo && opencv

package opencv

import (
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
)

// Available reports whether the binary was built with OpenCV.
const Available = true

// Ensure Engine implements the interface.
var _ driven.ImageEngine = (*Engine)(nil)

// writable lists the extensions IMWrite is asked to encode.
var writable = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".bmp": true,
	".tif": true, ".tiff": true, ".webp": true,
}

// Engine performs image operations with OpenCV.
type Engine struct{}

// New creates an OpenCV engine.
func New() (*Engine, error) {
	return &Engine{}, nil
}

// Name returns "opencv".
func (e *Engine) Name() string {
	return string(domain.EngineOpenCV)
}

// Load reads path as a BGR image.
func (e *Engine) Load(path string) (image.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("%w: could not read %s", domain.ErrIO, path)
	}
	return toImage(mat)
}

// Save writes img with the encoder chosen from the extension.
func (e *Engine) Save(path string, img image.Image, opts driven.SaveOptions) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !writable[ext] {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}

	mat, err := toMat(img)
	if err != nil {
		return fmt.Errorf("%w: converting image: %v", domain.ErrIO, err)
	}
	defer mat.Close()

	var ok bool
	if (ext == ".jpg" || ext == ".jpeg") && opts.JPEGQuality > 0 {
		ok = gocv.IMWriteWithParams(path, mat, []int{int(gocv.IMWriteJpegQuality), opts.JPEGQuality})
	} else {
		ok = gocv.IMWrite(path, mat)
	}
	if !ok {
		return fmt.Errorf("%w: could not write %s", domain.ErrIO, path)
	}
	return nil
}

// Grayscale converts to one channel with COLOR_BGR2GRAY.
func (e *Engine) Grayscale(img image.Image) (image.Image, error) {
	if domain.IsGray(img) {
		return apply(img, func(src gocv.Mat, dst *gocv.Mat) { src.CopyTo(dst) })
	}
	return apply(img, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.CvtColor(src, dst, gocv.ColorBGRToGray)
	})
}

// GaussianBlur blurs with a kernel x kernel Gaussian.
func (e *Engine) GaussianBlur(img image.Image, kernel int, sigma float64) (image.Image, error) {
	if kernel <= 0 || kernel%2 == 0 || sigma <= 0 {
		return nil, fmt.Errorf("%w: blur kernel %d sigma %g", domain.ErrInvalidInput, kernel, sigma)
	}
	return apply(img, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.GaussianBlur(src, dst, image.Pt(kernel, kernel), sigma, 0, gocv.BorderDefault)
	})
}

// Canny runs cv::Canny on the luma of img.
func (e *Engine) Canny(img image.Image, low, high float64) (image.Image, error) {
	if low <= 0 || high < low {
		return nil, fmt.Errorf("%w: canny thresholds %g/%g", domain.ErrInvalidInput, low, high)
	}
	return apply(img, func(src gocv.Mat, dst *gocv.Mat) {
		if src.Channels() == 1 {
			gocv.Canny(src, dst, float32(low), float32(high))
			return
		}
		gray := gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
		gocv.Canny(gray, dst, float32(low), float32(high))
	})
}

// Sharpen convolves with domain.SharpenKernel using filter2D.
func (e *Engine) Sharpen(img image.Image) (image.Image, error) {
	kernel := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)
	defer kernel.Close()
	for i, v := range domain.SharpenKernel {
		kernel.SetFloatAt(i/3, i%3, float32(v))
	}

	return apply(img, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.Filter2D(src, dst, src.Type(), kernel, image.Pt(-1, -1), 0, gocv.BorderDefault)
	})
}

// Resize resamples with bilinear interpolation.
func (e *Engine) Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", domain.ErrInvalidInput, width, height)
	}
	return apply(img, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.Resize(src, dst, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)
	})
}

// Rotate warps img about its centre onto a canvas of the same size.
func (e *Engine) Rotate(img image.Image, angle float64) (image.Image, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, fmt.Errorf("%w: rotation angle %g", domain.ErrInvalidInput, angle)
	}
	return apply(img, func(src gocv.Mat, dst *gocv.Mat) {
		center := image.Pt(src.Cols()/2, src.Rows()/2)
		m := gocv.GetRotationMatrix2D(center, angle, 1.0)
		defer m.Close()
		gocv.WarpAffine(src, dst, m, image.Pt(src.Cols(), src.Rows()))
	})
}

// ConvertScale is cv::Mat::convertTo(dst, -1, alpha, beta).
func (e *Engine) ConvertScale(img image.Image, alpha, beta float64) (image.Image, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("%w: scale %g offset %g", domain.ErrInvalidInput, alpha, beta)
	}
	return apply(img, func(src gocv.Mat, dst *gocv.Mat) {
		src.ConvertToWithParams(dst, src.Type(), float32(alpha), float32(beta))
	})
}

// Crop copies the region of interest rect.
func (e *Engine) Crop(img image.Image, rect image.Rectangle) (image.Image, error) {
	b := img.Bounds()
	if rect.Empty() || !rect.In(image.Rect(0, 0, b.Dx(), b.Dy())) {
		return nil, fmt.Errorf("%w: crop %v outside %dx%d", domain.ErrInvalidInput, rect, b.Dx(), b.Dy())
	}
	return apply(img, func(src gocv.Mat, dst *gocv.Mat) {
		roi := src.Region(rect)
		defer roi.Close()
		roi.CopyTo(dst)
	})
}

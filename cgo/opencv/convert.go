//go:build cgo && opencv

package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// toMat converts img to an 8-bit gray or BGR Mat. The caller closes it.
func toMat(img image.Image) (gocv.Mat, error) {
	if gray, ok := img.(*image.Gray); ok {
		return gocv.ImageGrayToMatGray(gray)
	}
	return gocv.ImageToMatRGB(img)
}

// toImage converts mat back to an image and closes it.
func toImage(mat gocv.Mat) (image.Image, error) {
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("%w: opencv returned an empty image", domain.ErrIO)
	}
	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("converting mat: %w", err)
	}
	return img, nil
}

// apply runs op on img converted to a Mat.
func apply(img image.Image, op func(src gocv.Mat, dst *gocv.Mat)) (image.Image, error) {
	src, err := toMat(img)
	if err != nil {
		return nil, fmt.Errorf("converting image: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	op(src, &dst)
	return toImage(dst)
}

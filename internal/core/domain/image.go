package domain

import (
	"fmt"
	"image"
)

// ImageInfo describes the working image of a session.
type ImageInfo struct {
	// Path is the file the image was loaded from.
	Path string `json:"path"`

	// Width and Height are the pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Channels is 1 for gray images, 3 for opaque colour and 4 otherwise.
	Channels int `json:"channels"`
}

// String renders the info as "640x480, 3 channels".
func (i ImageInfo) String() string {
	unit := "channels"
	if i.Channels == 1 {
		unit = "channel"
	}
	return fmt.Sprintf("%dx%d, %d %s", i.Width, i.Height, i.Channels, unit)
}

// NewImageInfo builds the info for img loaded from path.
func NewImageInfo(path string, img image.Image) ImageInfo {
	b := img.Bounds()
	return ImageInfo{
		Path:     path,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: Channels(img),
	}
}

// opaquer is implemented by the image types of the standard library.
type opaquer interface {
	Opaque() bool
}

// Channels reports the number of sample channels in img.
func Channels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	}
	if o, ok := img.(opaquer); ok && o.Opaque() {
		return 3
	}
	return 4
}

// IsGray reports whether img stores a single luma channel.
func IsGray(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	default:
		return false
	}
}

// Rect converts crop parameters to a rectangle relative to the image origin.
// A non-positive width or height gives the empty rectangle.
func Rect(x, y, width, height int) image.Rectangle {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+width, y+height)
}

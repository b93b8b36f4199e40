// Package imaging implements driven.ImageEngine on top of
// github.com/disintegration/imaging.
//
// Results are *image.NRGBA, except that single-channel input stays
// *image.Gray and Grayscale and Canny always return *image.Gray.
package imaging

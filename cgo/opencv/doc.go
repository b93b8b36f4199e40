// Package opencv implements driven.ImageEngine and driven.Viewer with
// OpenCV through gocv.io/x/gocv.
//
// Build requires:
//   - OpenCV 4 development libraries
//   - Install via: brew install opencv (macOS) or see gocv.io/getting-started (Linux)
//   - go build -tags opencv
//
// Without cgo or the opencv tag every operation returns
// domain.ErrNotImplemented and Available is false.
//
// Images cross the boundary as BGR or gray Mats, so an alpha channel is
// dropped on entry.
package opencv

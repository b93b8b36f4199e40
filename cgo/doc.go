// Package cgo provides CGO bindings for native libraries.
// This package isolates all CGO code from the pure Go core.
//
// Sub-packages:
//   - opencv: OpenCV image engine and window viewer through gocv
package cgo

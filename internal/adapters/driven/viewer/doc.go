// Package viewer provides driven.Viewer implementations that need no cgo.
//
// Terminal draws images with upper half block cells so each character
// cell shows two pixels. Nop discards.
package viewer

package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown engine or viewer type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Image Errors.

	// ErrIO indicates an image file could not be read, decoded or written.
	ErrIO = errors.New("image I/O failed")

	// ErrNoImage indicates an operation was requested before any image was loaded.
	ErrNoImage = errors.New("no image loaded")

	// ErrInvalidFilter indicates the filter choice is not one of the known filters.
	ErrInvalidFilter = fmt.Errorf("%w: unknown filter", ErrInvalidInput)

	// ErrUnsupportedFormat indicates the file extension has no known encoder.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

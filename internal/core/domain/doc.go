// Package domain defines the core business entities for retouch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FilterKind: The fixed set of filters offered by the editor
//   - Operation: A single edit applied to the working image
//   - ImageInfo: Dimensions and channel layout of an image
//   - HistoryEntry: A persisted record of a load or save
//   - Settings: Editor configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ImageEngine: Decodes, transforms and encodes images (imaging or OpenCV)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Viewer: Renders the working image. Without it, Display only waits.
//   - HistoryStore: Load/save journal. Without it, nothing is recorded.
//   - FileWatcher: Source file change notifications for the TUI.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

// Package services implements the driving port interfaces.
// Services contain the core editing logic and orchestrate
// calls to driven ports (engine, viewer, stores).
//
// Services are pure Go with no CGO.
package services

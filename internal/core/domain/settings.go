package domain

import (
	"fmt"
	"time"
)

// EngineName identifies an image engine implementation.
type EngineName string

// Available engines.
const (
	// EngineImaging is the pure Go engine.
	EngineImaging EngineName = "imaging"

	// EngineOpenCV uses OpenCV through cgo. Requires the opencv build tag.
	EngineOpenCV EngineName = "opencv"
)

// IsValid returns true if the engine is recognised.
func (e EngineName) IsValid() bool {
	return e == EngineImaging || e == EngineOpenCV
}

// String returns the string representation.
func (e EngineName) String() string {
	return string(e)
}

// Description returns a human-readable description of the engine.
func (e EngineName) Description() string {
	switch e {
	case EngineImaging:
		return "imaging (pure Go)"
	case EngineOpenCV:
		return "OpenCV (cgo)"
	default:
		return unknownDescription
	}
}

// ViewerKind identifies where Display renders the working image.
type ViewerKind string

// Available viewers.
const (
	// ViewerTerminal draws the image with coloured half blocks on stdout.
	ViewerTerminal ViewerKind = "terminal"

	// ViewerWindow opens a native window. Requires the opencv build tag.
	ViewerWindow ViewerKind = "window"

	// ViewerNone disables display output.
	ViewerNone ViewerKind = "none"
)

// IsValid returns true if the viewer is recognised.
func (v ViewerKind) IsValid() bool {
	switch v {
	case ViewerTerminal, ViewerWindow, ViewerNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v ViewerKind) String() string {
	return string(v)
}

// EngineSettings selects the image engine.
type EngineSettings struct {
	Name EngineName
}

// InputSettings controls how images are loaded.
type InputSettings struct {
	// DefaultImage is opened when no path is given on the command line.
	DefaultImage string

	// AutoOrient applies the EXIF orientation tag on load.
	AutoOrient bool
}

// DisplaySettings controls Display.
type DisplaySettings struct {
	Viewer ViewerKind

	// Duration is how long Display blocks after rendering.
	Duration time.Duration

	// Width is the terminal preview width in columns. Zero uses the
	// terminal width.
	Width int
}

// OutputSettings controls how images are encoded on save.
type OutputSettings struct {
	// JPEGQuality is in the range 1..100.
	JPEGQuality int
}

// HistorySettings controls the load/save journal.
type HistorySettings struct {
	Enabled bool
}

// Settings holds all editor settings.
type Settings struct {
	Engine  EngineSettings
	Input   InputSettings
	Display DisplaySettings
	Filter  FilterParams
	Output  OutputSettings
	History HistorySettings
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Engine: EngineSettings{Name: EngineImaging},
		Input: InputSettings{
			DefaultImage: "lena.png",
			AutoOrient:   true,
		},
		Display: DisplaySettings{
			Viewer:   ViewerTerminal,
			Duration: 2 * time.Second,
		},
		Filter:  DefaultFilterParams(),
		Output:  OutputSettings{JPEGQuality: 95},
		History: HistorySettings{Enabled: true},
	}
}

// Validate checks every field and returns the first problem found.
func (s Settings) Validate() error {
	if !s.Engine.Name.IsValid() {
		return fmt.Errorf("%w: engine %q", ErrUnsupportedType, s.Engine.Name)
	}
	if !s.Display.Viewer.IsValid() {
		return fmt.Errorf("%w: viewer %q", ErrUnsupportedType, s.Display.Viewer)
	}
	if s.Display.Duration < 0 {
		return fmt.Errorf("%w: display duration must not be negative", ErrInvalidInput)
	}
	if s.Display.Width < 0 {
		return fmt.Errorf("%w: display width must not be negative", ErrInvalidInput)
	}
	if s.Filter.BlurKernel <= 0 || s.Filter.BlurKernel%2 == 0 {
		return fmt.Errorf("%w: blur kernel must be a positive odd number", ErrInvalidInput)
	}
	if s.Filter.BlurSigma <= 0 {
		return fmt.Errorf("%w: blur sigma must be positive", ErrInvalidInput)
	}
	if s.Filter.CannyLow <= 0 || s.Filter.CannyHigh < s.Filter.CannyLow {
		return fmt.Errorf("%w: canny thresholds must satisfy 0 < low <= high", ErrInvalidInput)
	}
	if s.Output.JPEGQuality < 1 || s.Output.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg quality must be in 1..100", ErrInvalidInput)
	}
	return nil
}

package driving

import "github.com/custodia-labs/retouch-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults for
	// unset keys.
	Get() (*domain.Settings, error)

	// Set parses value for the dotted key and persists it.
	// Unknown keys return domain.ErrNotFound; bad values wrap
	// domain.ErrInvalidInput.
	Set(key, value string) error

	// Keys lists the configurable keys in display order.
	Keys() []SettingKey

	// Validate checks the current settings.
	Validate() error

	// Path returns the configuration file path.
	Path() string
}

// SettingKey describes one configurable key.
type SettingKey struct {
	Key         string
	Description string
}

package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEngineName     = "engine.name"
	keyDefaultImage   = "input.default_image"
	keyAutoOrient     = "input.auto_orient"
	keyViewer         = "display.viewer"
	keyDisplayMillis  = "display.duration_ms"
	keyDisplayWidth   = "display.width"
	keyBlurKernel     = "filter.blur_kernel"
	keyBlurSigma      = "filter.blur_sigma"
	keyCannyLow       = "filter.canny_low"
	keyCannyHigh      = "filter.canny_high"
	keyJPEGQuality    = "output.jpeg_quality"
	keyHistoryEnabled = "history.enabled"
)

// setting binds a config key to the field it controls.
type setting struct {
	key         string
	description string

	// apply parses raw into s and returns the value to store.
	apply func(s *domain.Settings, raw string) (any, error)
}

var settingKeys = []setting{
	{keyEngineName, "Image engine (imaging, opencv)", func(s *domain.Settings, raw string) (any, error) {
		s.Engine.Name = domain.EngineName(raw)
		return raw, nil
	}},
	{keyDefaultImage, "Image opened when no path is given", func(s *domain.Settings, raw string) (any, error) {
		if raw == "" {
			return nil, fmt.Errorf("%w: default image must not be empty", domain.ErrInvalidInput)
		}
		s.Input.DefaultImage = raw
		return raw, nil
	}},
	{keyAutoOrient, "Apply EXIF orientation on load", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseBool(raw)
		s.Input.AutoOrient = v
		return v, err
	}},
	{keyViewer, "Display target (terminal, window, none)", func(s *domain.Settings, raw string) (any, error) {
		s.Display.Viewer = domain.ViewerKind(raw)
		return raw, nil
	}},
	{keyDisplayMillis, "Wait after each display in milliseconds", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseInt(raw)
		s.Display.Duration = time.Duration(v) * time.Millisecond
		return v, err
	}},
	{keyDisplayWidth, "Terminal preview width in columns, 0 to fit", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseInt(raw)
		s.Display.Width = v
		return v, err
	}},
	{keyBlurKernel, "Gaussian blur kernel size (odd)", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseInt(raw)
		s.Filter.BlurKernel = v
		return v, err
	}},
	{keyBlurSigma, "Gaussian blur sigma", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseFloat(raw)
		s.Filter.BlurSigma = v
		return v, err
	}},
	{keyCannyLow, "Canny lower hysteresis threshold", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseFloat(raw)
		s.Filter.CannyLow = v
		return v, err
	}},
	{keyCannyHigh, "Canny upper hysteresis threshold", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseFloat(raw)
		s.Filter.CannyHigh = v
		return v, err
	}},
	{keyJPEGQuality, "JPEG quality on save (1-100)", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseInt(raw)
		s.Output.JPEGQuality = v
		return v, err
	}},
	{keyHistoryEnabled, "Record loads and saves", func(s *domain.Settings, raw string) (any, error) {
		v, err := parseBool(raw)
		s.History.Enabled = v
		return v, err
	}},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Unset keys keep their
// defaults; a value of the wrong type is treated as unset.
func (s *SettingsService) Get() (*domain.Settings, error) {
	d := domain.DefaultSettings()

	settings := &domain.Settings{
		Engine: domain.EngineSettings{
			Name: domain.EngineName(s.getString(keyEngineName, d.Engine.Name.String())),
		},
		Input: domain.InputSettings{
			DefaultImage: s.getString(keyDefaultImage, d.Input.DefaultImage),
			AutoOrient:   s.getBool(keyAutoOrient, d.Input.AutoOrient),
		},
		Display: domain.DisplaySettings{
			Viewer: domain.ViewerKind(s.getString(keyViewer, d.Display.Viewer.String())),
			Duration: time.Duration(
				s.getInt(keyDisplayMillis, int(d.Display.Duration/time.Millisecond)),
			) * time.Millisecond,
			Width: s.getInt(keyDisplayWidth, d.Display.Width),
		},
		Filter: domain.FilterParams{
			BlurKernel: s.getInt(keyBlurKernel, d.Filter.BlurKernel),
			BlurSigma:  s.getFloat(keyBlurSigma, d.Filter.BlurSigma),
			CannyLow:   s.getFloat(keyCannyLow, d.Filter.CannyLow),
			CannyHigh:  s.getFloat(keyCannyHigh, d.Filter.CannyHigh),
		},
		Output: domain.OutputSettings{
			JPEGQuality: s.getInt(keyJPEGQuality, d.Output.JPEGQuality),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, d.History.Enabled),
		},
	}

	return settings, nil
}

// Set parses value for key, validates the resulting settings and persists
// the value. Nothing is written when validation fails.
func (s *SettingsService) Set(key, value string) error {
	def, ok := lookupSetting(key)
	if !ok {
		return fmt.Errorf("%w: setting %q", domain.ErrNotFound, key)
	}

	current, err := s.Get()
	if err != nil {
		return err
	}

	stored, err := def.apply(current, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if err := current.Validate(); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the configurable keys in display order.
func (s *SettingsService) Keys() []driving.SettingKey {
	keys := make([]driving.SettingKey, 0, len(settingKeys))
	for _, def := range settingKeys {
		keys = append(keys, driving.SettingKey{Key: def.key, Description: def.description})
	}
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func lookupSetting(key string) (setting, bool) {
	for _, def := range settingKeys {
		if def.key == key {
			return def, true
		}
	}
	return setting{}, false
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case int, int64, float64:
		return s.configStore.GetInt(key)
	default:
		return defaultVal
	}
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case int, int64, float64:
		return s.configStore.GetFloat(key)
	default:
		return defaultVal
	}
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	if _, ok := val.(bool); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func parseInt(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, raw)
	}
	return v, nil
}

func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, raw)
	}
	return v, nil
}

func parseBool(raw string) (bool, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not true or false", domain.ErrInvalidInput, raw)
	}
	return v, nil
}

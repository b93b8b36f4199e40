package cli

import (
	"context"
	"fmt"
	"image"
	"testing"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

// mockSession records each call as a short string.
type mockSession struct {
	calls  []string
	loaded bool

	LoadErr   error
	FilterErr error
	SaveErr   error
}

func (m *mockSession) record(format string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

func (m *mockSession) ID() string { return "cli-session" }

func (m *mockSession) Load(_ context.Context, path string) error {
	m.record("load %s", path)
	if m.LoadErr != nil {
		return m.LoadErr
	}
	m.loaded = true
	return nil
}

func (m *mockSession) ApplyFilter(_ context.Context, kind domain.FilterKind, params domain.FilterParams) error {
	m.record("filter %d %d", int(kind), params.BlurKernel)
	if !kind.IsValid() {
		return domain.ErrInvalidFilter
	}
	return m.FilterErr
}

func (m *mockSession) Resize(_ context.Context, w, h int) error {
	m.record("resize %dx%d", w, h)
	if w <= 0 || h <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func (m *mockSession) Rotate(_ context.Context, angle float64) error {
	m.record("rotate %g", angle)
	return nil
}

func (m *mockSession) AdjustBrightnessContrast(_ context.Context, contrast, brightness float64) error {
	m.record("adjust %g %g", contrast, brightness)
	return nil
}

func (m *mockSession) Crop(_ context.Context, x, y, w, h int) error {
	m.record("crop %d %d %d %d", x, y, w, h)
	return nil
}

func (m *mockSession) Save(_ context.Context, path string) error {
	m.record("save %s", path)
	return m.SaveErr
}

func (m *mockSession) Reset(_ context.Context) error {
	m.record("reset")
	return nil
}

func (m *mockSession) Display(_ context.Context) error {
	m.record("display")
	return nil
}

func (m *mockSession) Loaded() bool { return m.loaded }

func (m *mockSession) Current() image.Image { return nil }

func (m *mockSession) Original() image.Image { return nil }

func (m *mockSession) Info() (domain.ImageInfo, error) { return domain.ImageInfo{}, domain.ErrNoImage }

func (m *mockSession) Operations() []domain.Operation { return nil }

// mockSettings keeps settings in memory.
type mockSettings struct {
	settings domain.Settings
	set      map[string]string

	SetErr      error
	ValidateErr error
}

func newMockSettings() *mockSettings {
	return &mockSettings{settings: domain.DefaultSettings(), set: map[string]string{}}
}

func (m *mockSettings) Get() (*domain.Settings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettings) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettings) Keys() []driving.SettingKey {
	return []driving.SettingKey{
		{Key: "engine.name", Description: "Image engine (imaging, opencv)"},
		{Key: "display.viewer", Description: "Display target (terminal, window, none)"},
	}
}

func (m *mockSettings) Validate() error { return m.ValidateErr }

func (m *mockSettings) Path() string { return "/tmp/retouch/config.toml" }

// mockHistory serves fixed entries.
type mockHistory struct {
	entries   []domain.HistoryEntry
	lastLimit int
	cleared   bool
}

func (m *mockHistory) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.lastLimit = limit
	if limit > 0 && limit < len(m.entries) {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func (m *mockHistory) Clear(_ context.Context) error {
	m.cleared = true
	m.entries = nil
	return nil
}

// mockWatcher never reports events.
type mockWatcher struct{}

func (mockWatcher) Watch(_ context.Context, _ string) (<-chan domain.FileEvent, error) {
	return make(chan domain.FileEvent), nil
}

// useServices installs svc for the duration of the test.
func useServices(t *testing.T, svc *Services) {
	t.Helper()
	prevServices, prevBuilder := services, builder
	services = svc
	builder = nil
	t.Cleanup(func() {
		services, builder = prevServices, prevBuilder
	})
}

// newTestServices returns services backed by the mocks above.
func newTestServices(session *mockSession) *Services {
	return &Services{
		NewSession: func(bool) driving.SessionService { return session },
		Settings:   newMockSettings(),
		History:    &mockHistory{},
		Watcher:    mockWatcher{},
	}
}

package tui

import (
	"context"
	"image"
	"sync"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

// MockSessionService records calls and serves a configurable image.
type MockSessionService struct {
	mu    sync.Mutex
	calls []string
	img   image.Image
	path  string

	LoadFunc   func(ctx context.Context, path string) error
	FilterFunc func(kind domain.FilterKind, params domain.FilterParams) error
	CropFunc   func(x, y, w, h int) error
}

func (m *MockSessionService) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *MockSessionService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockSessionService) ID() string { return "test-session" }

func (m *MockSessionService) Load(ctx context.Context, path string) error {
	m.record("load " + path)
	if m.LoadFunc != nil {
		if err := m.LoadFunc(ctx, path); err != nil {
			return err
		}
	}
	m.path = path
	m.img = image.NewNRGBA(image.Rect(0, 0, 4, 2))
	return nil
}

func (m *MockSessionService) ApplyFilter(_ context.Context, kind domain.FilterKind, params domain.FilterParams) error {
	m.record("filter " + kind.String())
	if m.FilterFunc != nil {
		return m.FilterFunc(kind, params)
	}
	return nil
}

func (m *MockSessionService) Resize(_ context.Context, _, _ int) error {
	m.record("resize")
	return nil
}

func (m *MockSessionService) Rotate(_ context.Context, _ float64) error {
	m.record("rotate")
	return nil
}

func (m *MockSessionService) AdjustBrightnessContrast(_ context.Context, _, _ float64) error {
	m.record("adjust")
	return nil
}

func (m *MockSessionService) Crop(_ context.Context, x, y, w, h int) error {
	m.record("crop")
	if m.CropFunc != nil {
		return m.CropFunc(x, y, w, h)
	}
	return nil
}

func (m *MockSessionService) Save(_ context.Context, path string) error {
	m.record("save " + path)
	return nil
}

func (m *MockSessionService) Reset(_ context.Context) error {
	m.record("reset")
	return nil
}

func (m *MockSessionService) Display(_ context.Context) error { return nil }

func (m *MockSessionService) Loaded() bool { return m.img != nil }

func (m *MockSessionService) Current() image.Image { return m.img }

func (m *MockSessionService) Original() image.Image { return m.img }

func (m *MockSessionService) Info() (domain.ImageInfo, error) {
	if m.img == nil {
		return domain.ImageInfo{}, domain.ErrNoImage
	}
	return domain.NewImageInfo(m.path, m.img), nil
}

func (m *MockSessionService) Operations() []domain.Operation { return nil }

// MockSettingsService serves fixed settings.
type MockSettingsService struct {
	Settings domain.Settings
}

func (m *MockSettingsService) Get() (*domain.Settings, error) {
	s := m.Settings
	return &s, nil
}

func (m *MockSettingsService) Set(_, _ string) error { return nil }

func (m *MockSettingsService) Keys() []driving.SettingKey { return nil }

func (m *MockSettingsService) Validate() error { return nil }

func (m *MockSettingsService) Path() string { return "" }

// MockWatcher hands out a channel the test writes to.
type MockWatcher struct {
	Events  chan domain.FileEvent
	Err     error
	Watched []string
}

func (m *MockWatcher) Watch(_ context.Context, path string) (<-chan domain.FileEvent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Watched = append(m.Watched, path)
	return m.Events, nil
}

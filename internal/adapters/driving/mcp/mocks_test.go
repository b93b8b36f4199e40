package mcp

import (
	"context"
	"image"
	"image/color"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

// mockSessionService keeps a tiny image and records edits.
type mockSessionService struct {
	driving.SessionService

	path     string
	original image.Image
	current  image.Image
	ops      []domain.Operation

	filter  domain.FilterKind
	params  domain.FilterParams
	saved   string
	err     error
	loadErr error
}

func newLoadedSession() *mockSessionService {
	m := &mockSessionService{}
	_ = m.Load(context.Background(), "lena.png")
	return m
}

func (m *mockSessionService) Load(_ context.Context, path string) error {
	if m.loadErr != nil {
		return m.loadErr
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	m.path, m.original, m.current, m.ops = path, img, img, nil
	return nil
}

func (m *mockSessionService) edit(op domain.Operation, next image.Image) error {
	if m.err != nil {
		return m.err
	}
	if m.current == nil {
		return domain.ErrNoImage
	}
	m.ops = append(m.ops, op)
	m.current = next
	return nil
}

func (m *mockSessionService) ApplyFilter(_ context.Context, kind domain.FilterKind, params domain.FilterParams) error {
	m.filter, m.params = kind, params
	gray := image.NewGray(image.Rect(0, 0, 4, 3))
	return m.edit(domain.Operation{Kind: domain.OperationFilter, Detail: kind.String()}, gray)
}

func (m *mockSessionService) Resize(_ context.Context, w, h int) error {
	if w <= 0 || h <= 0 {
		return domain.ErrInvalidInput
	}
	return m.edit(domain.Operation{Kind: domain.OperationResize}, image.NewNRGBA(image.Rect(0, 0, w, h)))
}

func (m *mockSessionService) Rotate(_ context.Context, _ float64) error {
	return m.edit(domain.Operation{Kind: domain.OperationRotate}, m.current)
}

func (m *mockSessionService) AdjustBrightnessContrast(_ context.Context, _, _ float64) error {
	return m.edit(domain.Operation{Kind: domain.OperationAdjust}, m.current)
}

func (m *mockSessionService) Crop(_ context.Context, _, _, w, h int) error {
	return m.edit(domain.Operation{Kind: domain.OperationCrop}, image.NewNRGBA(image.Rect(0, 0, w, h)))
}

func (m *mockSessionService) Save(_ context.Context, path string) error {
	if m.current == nil {
		return domain.ErrNoImage
	}
	m.saved = path
	return m.err
}

func (m *mockSessionService) Reset(_ context.Context) error {
	if m.original == nil {
		return domain.ErrNoImage
	}
	m.current, m.ops = m.original, nil
	return nil
}

func (m *mockSessionService) Current() image.Image { return m.current }

func (m *mockSessionService) Original() image.Image { return m.original }

func (m *mockSessionService) Info() (domain.ImageInfo, error) {
	if m.current == nil {
		return domain.ImageInfo{}, domain.ErrNoImage
	}
	return domain.NewImageInfo(m.path, m.current), nil
}

func (m *mockSessionService) Operations() []domain.Operation { return m.ops }

// mockHistoryService serves fixed entries.
type mockHistoryService struct {
	entries []domain.HistoryEntry
	limit   int
	err     error
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.limit = limit
	return m.entries, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error { return m.err }

// mockSettingsService serves fixed settings.
type mockSettingsService struct {
	driving.SettingsService
	settings domain.Settings
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	s := m.settings
	return &s, nil
}

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

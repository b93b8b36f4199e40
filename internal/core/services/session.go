package services

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/retouch-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// displayTitle is the window title used by Display.
const displayTitle = "Current Image"

// SessionConfig holds the optional collaborators and tuning of a session.
type SessionConfig struct {
	// Viewer renders the working image on Display. Optional.
	Viewer driven.Viewer

	// History records loads and saves. Optional.
	History driven.HistoryStore

	// DisplayDuration is how long Display blocks after rendering.
	DisplayDuration time.Duration

	// JPEGQuality is passed to the engine on Save.
	JPEGQuality int
}

// SessionService holds the working image and the snapshot of one loaded file.
type SessionService struct {
	mu sync.Mutex

	id      string
	engine  driven.ImageEngine
	viewer  driven.Viewer
	history driven.HistoryStore

	displayFor  time.Duration
	jpegQuality int

	// sleep is replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error

	path     string
	original image.Image
	current  image.Image
	ops      []domain.Operation
}

// NewSessionService creates an empty session that edits with engine.
func NewSessionService(engine driven.ImageEngine, cfg SessionConfig) *SessionService {
	return &SessionService{
		id:          uuid.New().String(),
		engine:      engine,
		viewer:      cfg.Viewer,
		history:     cfg.History,
		displayFor:  cfg.DisplayDuration,
		jpegQuality: cfg.JPEGQuality,
		sleep:       sleepContext,
	}
}

// ID returns the session identifier.
func (s *SessionService) ID() string {
	return s.id
}

// Load reads path into the snapshot and the working image.
func (s *SessionService) Load(ctx context.Context, path string) error {
	if s.engine == nil {
		return domain.ErrNotImplemented
	}
	if path == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	logger.Section("Load")
	logger.Debug("Session %s loading %s with engine %s", s.id, path, s.engine.Name())

	decoded := logger.Timed("Decoding " + path)
	img, err := s.engine.Load(path)
	decoded()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.path = path
	s.original = img
	s.current = img
	s.ops = nil
	info := domain.NewImageInfo(path, img)
	s.mu.Unlock()

	logger.Info("Loaded %s (%s)", path, info)
	s.record(ctx, domain.HistoryLoad, info, "")
	return nil
}

// ApplyFilter replaces the working image with the filtered version.
func (s *SessionService) ApplyFilter(
	ctx context.Context,
	kind domain.FilterKind,
	params domain.FilterParams,
) error {
	if !kind.IsValid() {
		logger.Warn("Rejected filter choice %d", int(kind))
		return domain.ErrInvalidFilter
	}
	p := params.WithDefaults()

	return s.edit(ctx, domain.Operation{Kind: domain.OperationFilter, Detail: kind.String()},
		func(img image.Image) (image.Image, error) {
			switch kind {
			case domain.FilterGrayscale:
				return s.engine.Grayscale(img)
			case domain.FilterBlur:
				return s.engine.GaussianBlur(img, p.BlurKernel, p.BlurSigma)
			case domain.FilterEdgeDetect:
				return s.engine.Canny(img, p.CannyLow, p.CannyHigh)
			case domain.FilterSharpen:
				return s.engine.Sharpen(img)
			default:
				return nil, domain.ErrInvalidFilter
			}
		})
}

// Resize resamples the working image to width x height.
func (s *SessionService) Resize(ctx context.Context, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", domain.ErrInvalidInput, width, height)
	}

	return s.edit(ctx, domain.Operation{
		Kind:   domain.OperationResize,
		Detail: fmt.Sprintf("%dx%d", width, height),
	}, func(img image.Image) (image.Image, error) {
		return s.engine.Resize(img, width, height)
	})
}

// Rotate turns the working image about its centre, keeping the canvas size.
func (s *SessionService) Rotate(ctx context.Context, angle float64) error {
	if !finite(angle) {
		return fmt.Errorf("%w: rotation angle %g", domain.ErrInvalidInput, angle)
	}
	return s.edit(ctx, domain.Operation{
		Kind:   domain.OperationRotate,
		Detail: fmt.Sprintf("%g°", angle),
	}, func(img image.Image) (image.Image, error) {
		return s.engine.Rotate(img, angle)
	})
}

// AdjustBrightnessContrast computes in*contrast + brightness per channel.
func (s *SessionService) AdjustBrightnessContrast(ctx context.Context, contrast, brightness float64) error {
	if !finite(contrast) || !finite(brightness) {
		return fmt.Errorf("%w: contrast %g brightness %g", domain.ErrInvalidInput, contrast, brightness)
	}
	return s.edit(ctx, domain.Operation{
		Kind:   domain.OperationAdjust,
		Detail: fmt.Sprintf("×%g %+g", contrast, brightness),
	}, func(img image.Image) (image.Image, error) {
		return s.engine.ConvertScale(img, contrast, brightness)
	})
}

// Crop replaces the working image with the given sub-rectangle.
// The rectangle must lie fully inside the image.
func (s *SessionService) Crop(ctx context.Context, x, y, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: crop size %dx%d must be positive", domain.ErrInvalidInput, width, height)
	}
	rect := domain.Rect(x, y, width, height)

	return s.edit(ctx, domain.Operation{
		Kind:   domain.OperationCrop,
		Detail: fmt.Sprintf("%d,%d %dx%d", x, y, width, height),
	}, func(img image.Image) (image.Image, error) {
		b := img.Bounds()
		bounds := image.Rect(0, 0, b.Dx(), b.Dy())
		if rect.Empty() || !rect.In(bounds) {
			return nil, fmt.Errorf("%w: crop %v outside image %v", domain.ErrInvalidInput, rect, bounds)
		}
		return s.engine.Crop(img, rect)
	})
}

// Save encodes the working image to path.
func (s *SessionService) Save(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	img := s.current
	pipeline := domain.Pipeline(s.ops)
	s.mu.Unlock()

	if img == nil {
		return domain.ErrNoImage
	}

	logger.Debug("Session %s saving %s (%s)", s.id, path, pipeline)
	defer logger.Timed("Encoding " + path)()
	if err := s.engine.Save(path, img, driven.SaveOptions{JPEGQuality: s.jpegQuality}); err != nil {
		return err
	}

	s.record(ctx, domain.HistorySave, domain.NewImageInfo(path, img), pipeline)
	return nil
}

// Reset restores the working image from the snapshot and displays it.
func (s *SessionService) Reset(ctx context.Context) error {
	s.mu.Lock()
	if s.original == nil {
		s.mu.Unlock()
		return domain.ErrNoImage
	}
	s.current = s.original
	s.ops = nil
	s.mu.Unlock()

	logger.Debug("Session %s reset to original", s.id)
	return s.Display(ctx)
}

// Display renders the working image and blocks for the display duration.
func (s *SessionService) Display(ctx context.Context) error {
	s.mu.Lock()
	img := s.current
	s.mu.Unlock()

	if img == nil {
		return domain.ErrNoImage
	}

	if s.viewer != nil {
		if err := s.viewer.Show(ctx, displayTitle, img); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	if s.displayFor <= 0 {
		return nil
	}
	if w, ok := s.viewer.(driven.WaitingViewer); ok {
		return w.Wait(ctx, s.displayFor)
	}
	return s.sleep(ctx, s.displayFor)
}

// Loaded reports whether an image has been loaded.
func (s *SessionService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.original != nil
}

// Current returns the working image.
func (s *SessionService) Current() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Original returns the snapshot.
func (s *SessionService) Original() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.original
}

// Info describes the working image.
func (s *SessionService) Info() (domain.ImageInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.ImageInfo{}, domain.ErrNoImage
	}
	return domain.NewImageInfo(s.path, s.current), nil
}

// Operations returns a copy of the edits applied since the last Load or Reset.
func (s *SessionService) Operations() []domain.Operation {
	s.mu.Lock()
	defer s.mu.Unlock()

	ops := make([]domain.Operation, len(s.ops))
	copy(ops, s.ops)
	return ops
}

// edit runs fn on the working image, swaps in the result, logs op and
// displays. On error the working image is left untouched.
func (s *SessionService) edit(
	ctx context.Context,
	op domain.Operation,
	fn func(image.Image) (image.Image, error),
) error {
	if s.engine == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return domain.ErrNoImage
	}

	logger.Debug("Session %s applying %s", s.id, op)
	start := time.Now()

	result, err := fn(s.current)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op.Kind, err)
	}

	op.At = time.Now().UTC()
	s.current = result
	s.ops = append(s.ops, op)
	s.mu.Unlock()

	logger.Debug("Applied %s in %s, now %s", op, time.Since(start).Round(time.Millisecond),
		domain.NewImageInfo("", result))

	return s.Display(ctx)
}

// record appends to the history store. Failures are only logged.
func (s *SessionService) record(ctx context.Context, action domain.HistoryAction, info domain.ImageInfo, pipeline string) {
	if s.history == nil {
		return
	}

	entry := domain.HistoryEntry{
		ID:        uuid.New().String(),
		SessionID: s.id,
		Action:    action,
		Path:      info.Path,
		Width:     info.Width,
		Height:    info.Height,
		Channels:  info.Channels,
		Pipeline:  pipeline,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.history.Record(ctx, entry); err != nil {
		logger.Warn("Failed to record %s of %s: %v", action, info.Path, err)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

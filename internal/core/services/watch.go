package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/retouch-cli/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.SourceWatcher = (*WatchService)(nil)

// WatchService watches source images on disk.
type WatchService struct {
	watcher driven.FileWatcher
}

// NewWatchService creates a watch service. A nil watcher disables watching.
func NewWatchService(watcher driven.FileWatcher) *WatchService {
	return &WatchService{watcher: watcher}
}

// Watch starts watching path.
func (s *WatchService) Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error) {
	if s.watcher == nil {
		return nil, domain.ErrNotImplemented
	}
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	events, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	logger.Debug("Watching %s for changes", path)
	return events, nil
}

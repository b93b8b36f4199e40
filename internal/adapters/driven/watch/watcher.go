// Package watch reports changes to image files with fsnotify.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/retouch-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("watcher closed")

// Watcher watches single files. The parent directory is watched so that
// editors which save by renaming a temporary file are still seen.
type Watcher struct {
	mu       sync.Mutex
	watchers []*fsnotify.Watcher
	closed   bool
}

// New creates a watcher.
func New() *Watcher {
	return &Watcher{}
}

// Watch starts watching path.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil, ErrClosed
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	w.watchers = append(w.watchers, fw)

	events := make(chan domain.FileEvent, 1)
	go w.forward(ctx, fw, abs, events)

	logger.Debug("Watching %s", abs)
	return events, nil
}

// Close stops all watches.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	var firstErr error
	for _, fw := range w.watchers {
		if err := fw.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.watchers = nil
	return firstErr
}

func (w *Watcher) forward(ctx context.Context, fw *fsnotify.Watcher, path string, out chan<- domain.FileEvent) {
	defer close(out)
	defer w.release(fw)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			fe := handleFsEvent(path, event)
			if fe == nil {
				continue
			}
			select {
			case out <- *fe:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error on %s: %v", path, err)
		}
	}
}

// release closes fw and drops it from the live set.
func (w *Watcher) release(fw *fsnotify.Watcher) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, live := range w.watchers {
		if live == fw {
			w.watchers = append(w.watchers[:i], w.watchers[i+1:]...)
			break
		}
	}
	fw.Close()
}

// active reports how many watches are still running.
func (w *Watcher) active() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watchers)
}

// handleFsEvent maps an fsnotify event for path to a FileEvent.
// Events for other files and chmod-only events return nil.
func handleFsEvent(path string, event fsnotify.Event) *domain.FileEvent {
	if filepath.Clean(event.Name) != path {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.FileEvent{Path: path, Removed: true}
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		return &domain.FileEvent{Path: path}
	default:
		return nil
	}
}

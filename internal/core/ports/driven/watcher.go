package driven

import (
	"context"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// FileWatcher reports changes to files on disk.
type FileWatcher interface {
	// Watch starts watching path. Events are delivered on the returned
	// channel until ctx is cancelled or the watcher is closed, at which
	// point the channel is closed.
	Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error)

	// Close stops all watches.
	Close() error
}

package driving

import (
	"context"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// SourceWatcher notifies about changes to the file an image was loaded from.
type SourceWatcher interface {
	// Watch delivers events for path until ctx is cancelled.
	Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error)
}

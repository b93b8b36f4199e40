package driving

import (
	"context"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// HistoryService exposes the load/save journal.
type HistoryService interface {
	// List returns up to limit entries, newest first.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

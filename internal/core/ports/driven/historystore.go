package driven

import (
	"context"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// HistoryStore persists the load/save journal.
type HistoryStore interface {
	// Record appends an entry.
	Record(ctx context.Context, entry domain.HistoryEntry) error

	// List returns up to limit entries, newest first.
	// A limit of zero or less returns all entries.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

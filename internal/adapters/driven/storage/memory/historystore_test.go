package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

func entry(id string, action domain.HistoryAction) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        id,
		SessionID: "session-1",
		Action:    action,
		Path:      id + ".png",
		Width:     64,
		Height:    48,
		Channels:  3,
		CreatedAt: time.Now(),
	}
}

func TestHistoryStore_RecordAndList(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	require.NoError(t, store.Record(ctx, entry("a", domain.HistoryLoad)))
	require.NoError(t, store.Record(ctx, entry("b", domain.HistorySave)))
	require.NoError(t, store.Record(ctx, entry("c", domain.HistoryLoad)))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "a", entries[2].ID)
}

func TestHistoryStore_List_Limit(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.Record(ctx, entry(id, domain.HistoryLoad)))
	}

	tests := []struct {
		limit int
		want  []string
	}{
		{limit: 1, want: []string{"d"}},
		{limit: 2, want: []string{"d", "c"}},
		{limit: 10, want: []string{"d", "c", "b", "a"}},
		{limit: -1, want: []string{"d", "c", "b", "a"}},
	}

	for _, tt := range tests {
		entries, err := store.List(ctx, tt.limit)
		require.NoError(t, err)
		ids := make([]string, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
		assert.Equal(t, tt.want, ids, "limit %d", tt.limit)
	}
}

func TestHistoryStore_Record_InvalidAction(t *testing.T) {
	store := NewHistoryStore()

	err := store.Record(context.Background(), entry("a", "delete"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	require.NoError(t, store.Record(ctx, entry("a", domain.HistoryLoad)))

	require.NoError(t, store.Clear(ctx))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

func historyFixture() *mockHistory {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &mockHistory{entries: []domain.HistoryEntry{
		{
			ID: "2", SessionID: "s1", Action: domain.HistorySave, Path: "out.png",
			Width: 320, Height: 240, Channels: 1, Pipeline: "grayscale > resize 320x240",
			CreatedAt: at.Add(time.Minute),
		},
		{
			ID: "1", SessionID: "s1", Action: domain.HistoryLoad, Path: "in.png",
			Width: 640, Height: 480, Channels: 3, CreatedAt: at,
		},
	}}
}

func TestHistory_Table(t *testing.T) {
	svc := newTestServices(&mockSession{})
	history := historyFixture()
	svc.History = history
	useServices(t, svc)

	out, err := runRoot(t, "", "history")

	require.NoError(t, err)
	assert.Contains(t, out, "ACTION")
	assert.Contains(t, out, "out.png")
	assert.Contains(t, out, "grayscale > resize 320x240")
	assert.Contains(t, out, "640x480")
	assert.Equal(t, defaultHistoryLimit, history.lastLimit)
}

func TestHistory_Limit(t *testing.T) {
	svc := newTestServices(&mockSession{})
	history := historyFixture()
	svc.History = history
	useServices(t, svc)
	defer func() { _ = historyCmd.Flags().Set("limit", "20") }()

	out, err := runRoot(t, "", "history", "--limit", "1")

	require.NoError(t, err)
	assert.Equal(t, 1, history.lastLimit)
	assert.Contains(t, out, "out.png")
	assert.NotContains(t, out, "in.png")
}

func TestHistory_JSON(t *testing.T) {
	svc := newTestServices(&mockSession{})
	svc.History = historyFixture()
	useServices(t, svc)
	defer func() { _ = historyCmd.Flags().Set("json", "false") }()

	out, err := runRoot(t, "", "history", "--json")

	require.NoError(t, err)
	var entries []historyJSON
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "save", entries[0].Action)
	assert.Equal(t, "2026-03-01T12:01:00Z", entries[0].CreatedAt)
	assert.Empty(t, entries[1].Pipeline)
}

func TestHistory_Empty(t *testing.T) {
	useServices(t, newTestServices(&mockSession{}))

	out, err := runRoot(t, "", "history")

	require.NoError(t, err)
	assert.Contains(t, out, "No history yet.")
}

func TestHistory_Clear(t *testing.T) {
	svc := newTestServices(&mockSession{})
	history := historyFixture()
	svc.History = history
	useServices(t, svc)

	out, err := runRoot(t, "", "history", "clear")

	require.NoError(t, err)
	assert.True(t, history.cleared)
	assert.Contains(t, out, "History cleared.")
}

func TestHistory_NotConfigured(t *testing.T) {
	svc := newTestServices(&mockSession{})
	svc.History = nil
	useServices(t, svc)

	_, err := runRoot(t, "", "history")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")
}

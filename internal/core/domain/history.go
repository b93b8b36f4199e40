package domain

import "time"

// HistoryAction identifies what a history entry records.
type HistoryAction string

// History actions.
const (
	HistoryLoad HistoryAction = "load"
	HistorySave HistoryAction = "save"
)

// IsValid returns true if the action is recognised.
func (a HistoryAction) IsValid() bool {
	return a == HistoryLoad || a == HistorySave
}

// HistoryEntry is a persisted record of an image being loaded or saved.
type HistoryEntry struct {
	ID        string        `json:"id"`
	SessionID string        `json:"session_id"`
	Action    HistoryAction `json:"action"`
	Path      string        `json:"path"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Channels  int           `json:"channels"`

	// Pipeline is the operation chain that produced a saved image.
	Pipeline string `json:"pipeline,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// FileEvent reports a change to a watched file.
type FileEvent struct {
	Path string

	// Removed is true when the file was deleted or renamed away.
	Removed bool
}

package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilArguments(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())
	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		contains []string
	}{
		{"ready", StateReady, "", []string{"Ready", "enter: select", "q: quit"}},
		{"success message", StateReady, "Image saved as out.png", []string{"Image saved as out.png"}},
		{"working", StateWorking, "", []string{"Working..."}},
		{"error", StateError, "no image loaded", []string{"Error: no image loaded"}},
		{"bare error", StateError, "", []string{"Error"}},
		{"editing", StateEditing, "", []string{"tab: next field", "esc: back"}},
		{"changed", StateChanged, "lena.png changed on disk", []string{"changed on disk", "ctrl+r: reload"}},
		{"help", StateHelp, "", []string{"Help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(160)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			view := bar.View()
			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}
		})
	}
}

func TestStatusBar_Info(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetInfo("640x480, 3 channels")

	assert.Equal(t, "640x480, 3 channels", bar.Info())
	assert.Contains(t, bar.View(), "640x480, 3 channels")
}

func TestStatusBar_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(5)

	assert.NotEmpty(t, bar.View())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetInfo("1x1, 1 channel")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, "1x1, 1 channel", bar.Info())
}

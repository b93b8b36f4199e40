package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "width", "Width", "640")

	require.NotNil(t, f)
	assert.Equal(t, "width", f.Name())
	assert.Equal(t, "", f.Value())
	assert.False(t, f.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	f := NewField(nil, "path", "Path", "")

	assert.NotNil(t, f.styles)
}

func TestField_Init(t *testing.T) {
	assert.NotNil(t, NewField(nil, "a", "A", "").Init())
}

func TestField_TypingWhenFocused(t *testing.T) {
	f := NewField(nil, "angle", "Angle", "")
	f.Focus()

	for _, r := range "45" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "45", f.Value())
}

func TestField_IgnoresKeysWhenBlurred(t *testing.T) {
	f := NewField(nil, "angle", "Angle", "")

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})

	assert.Equal(t, "", f.Value())
}

func TestField_FocusAndBlur(t *testing.T) {
	f := NewField(nil, "a", "A", "")

	f.Focus()
	assert.True(t, f.Focused())
	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_View(t *testing.T) {
	f := NewField(nil, "path", "Path", "")
	f.SetValue("out.png")

	view := f.View()

	assert.Contains(t, view, "Path")
	assert.Contains(t, view, "out.png")
}

func TestField_SetWidth(t *testing.T) {
	f := NewField(nil, "a", "A", "")

	f.SetWidth(60)
	assert.Equal(t, 44, f.textinput.Width)

	f.SetWidth(5)
	assert.Equal(t, 10, f.textinput.Width)
}

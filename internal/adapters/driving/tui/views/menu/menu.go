// Package menu provides the action menu of the editor.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/styles"
)

// View lists the editing actions.
type View struct {
	styles   *styles.Styles
	items    []messages.Action
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []messages.Action{
			messages.ActionLoad,
			messages.ActionFilter,
			messages.ActionResize,
			messages.ActionRotate,
			messages.ActionAdjust,
			messages.ActionCrop,
			messages.ActionSave,
			messages.ActionReset,
			messages.ActionHelp,
			messages.ActionQuit,
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			action := v.items[v.selected]
			if action == messages.ActionQuit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ActionSelected{Action: action}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("retouch"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Image Editor"))
	b.WriteString("\n\n")

	for i, action := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(action.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected action.
func (v *View) Selected() messages.Action {
	return v.items[v.selected]
}

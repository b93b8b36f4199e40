// Package form collects the parameters of an editing action.
package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/styles"
)

// Spec describes one field of a form.
type Spec struct {
	Name        string
	Label       string
	Placeholder string

	// Value pre-fills the field.
	Value string
}

// View is a vertical list of labelled fields.
type View struct {
	styles  *styles.Styles
	action  messages.Action
	hint    string
	fields  []*input.Field
	focused int
	width   int
	height  int
}

// NewView creates an empty form.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// Open replaces the fields and focuses the first one.
func (v *View) Open(action messages.Action, hint string, specs []Spec) tea.Cmd {
	v.action = action
	v.hint = hint
	v.focused = 0
	v.fields = make([]*input.Field, len(specs))
	for i, spec := range specs {
		f := input.NewField(v.styles, spec.Name, spec.Label, spec.Placeholder)
		f.SetValue(spec.Value)
		f.SetWidth(v.width / 2)
		v.fields[i] = f
	}
	if len(v.fields) == 0 {
		return nil
	}
	return tea.Batch(v.fields[0].Focus(), v.fields[0].Init())
}

// Init initialises the form view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(v.fields) == 0 {
		return v, nil
	}

	switch keyMsg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "tab", "down":
		return v, v.focus(v.focused + 1)
	case "shift+tab", "up":
		return v, v.focus(v.focused - 1)
	case "enter":
		submitted := messages.FormSubmitted{Action: v.action, Values: v.Values()}
		return v, func() tea.Msg { return submitted }
	}

	var cmd tea.Cmd
	v.fields[v.focused], cmd = v.fields[v.focused].Update(msg)
	return v, cmd
}

// focus moves the focus to field i, wrapping around.
func (v *View) focus(i int) tea.Cmd {
	n := len(v.fields)
	v.fields[v.focused].Blur()
	v.focused = (i%n + n) % n
	return v.fields[v.focused].Focus()
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.action.String()))
	b.WriteString("\n")
	if v.hint != "" {
		b.WriteString(v.styles.Muted.Render(v.hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[Tab] Next  [Enter] Apply  [Esc] Cancel"))
	return b.String()
}

// Values returns the trimmed field values keyed by field name.
func (v *View) Values() map[string]string {
	values := make(map[string]string, len(v.fields))
	for _, f := range v.fields {
		values[f.Name()] = strings.TrimSpace(f.Value())
	}
	return values
}

// Action returns the action the form was opened for.
func (v *View) Action() messages.Action {
	return v.action
}

// Focused returns the index of the focused field.
func (v *View) Focused() int {
	return v.focused
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, f := range v.fields {
		f.SetWidth(width / 2)
	}
}

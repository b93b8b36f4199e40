package tui

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/logger"
)

// sidebarWidth is the width of the menu and form panel.
const sidebarWidth = 44

// App is the editor application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView    *menu.View
	formView    *form.View
	previewView *preview.View
	statusBar   *status.Bar

	// currentView tracks which panel is active on the left.
	currentView messages.ViewType

	// initial is loaded on Init when set.
	initial string

	// source is the path of the loaded image, watched for changes.
	source    string
	events    <-chan domain.FileEvent
	stopWatch context.CancelFunc

	// err holds the last operation error.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		formView:    form.NewView(s),
		previewView: preview.NewView(s, ports.Session),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithImage loads path when the program starts.
func (a *App) WithImage(path string) *App {
	a.initial = path
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("retouch"),
	}
	if a.initial != "" {
		cmds = append(cmds, a.run(messages.ActionLoad, map[string]string{"path": a.initial}))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if keymap.Matches(msg.String(), a.keymap.Reload) && a.source != "" {
			a.statusBar.SetState(status.StateWorking)
			return a, a.run(messages.ActionLoad, map[string]string{"path": a.source})
		}

		switch a.currentView {
		case messages.ViewMenu:
			if keymap.Matches(msg.String(), a.keymap.Help) {
				a.showHelp()
				return a, nil
			}
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewForm:
			a.formView, cmd = a.formView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) {
				a.currentView = messages.ViewMenu
				a.statusBar.Clear()
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewMenu {
			a.statusBar.Clear()
		}
		return a, nil

	case messages.ActionSelected:
		return a, a.selectAction(msg.Action)

	case messages.FormSubmitted:
		a.currentView = messages.ViewMenu
		a.statusBar.SetState(status.StateWorking)
		return a, a.run(msg.Action, msg.Values)

	case messages.OperationCompleted:
		return a, a.completed(msg)

	case messages.SourceChanged:
		a.statusBar.SetState(status.StateChanged)
		name := filepath.Base(msg.Event.Path)
		if msg.Event.Removed {
			a.statusBar.SetMessage(name + " was removed from disk")
		} else {
			a.statusBar.SetMessage(name + " changed on disk")
		}
		return a, waitForEvent(a.events)

	case messages.WatchStopped:
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil
	}

	return a, nil
}

// selectAction opens the form of action, or runs it when it has no
// parameters.
func (a *App) selectAction(action messages.Action) tea.Cmd {
	switch action {
	case messages.ActionHelp:
		a.showHelp()
		return nil
	case messages.ActionReset:
		a.statusBar.SetState(status.StateWorking)
		return a.run(action, nil)
	}

	hint, specs := a.formFor(action)
	a.formView.SetDimensions(sidebarWidth, a.height)
	a.currentView = messages.ViewForm
	a.statusBar.SetState(status.StateEditing)
	a.statusBar.SetMessage("")
	return a.formView.Open(action, hint, specs)
}

// completed updates the status after an operation and starts watching a
// newly loaded file.
func (a *App) completed(msg messages.OperationCompleted) tea.Cmd {
	if msg.Err != nil {
		a.setError(msg.Err)
		return nil
	}

	a.err = nil
	a.statusBar.SetState(status.StateReady)
	a.statusBar.SetMessage(msg.Summary)
	if info, err := a.ports.Session.Info(); err == nil {
		a.statusBar.SetInfo(info.String())
	}

	if msg.Action != messages.ActionLoad {
		return nil
	}
	if info, err := a.ports.Session.Info(); err == nil {
		return a.watch(info.Path)
	}
	return nil
}

// watch replaces the current source watch with one on path.
func (a *App) watch(path string) tea.Cmd {
	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}
	a.source = path
	a.events = nil
	if a.ports.Watcher == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(a.ctx)
	events, err := a.ports.Watcher.Watch(ctx, path)
	if err != nil {
		cancel()
		logger.Warn("Not watching %s: %v", path, err)
		return nil
	}
	a.events = events
	a.stopWatch = cancel
	return waitForEvent(events)
}

// waitForEvent delivers the next event of events as a message.
func waitForEvent(events <-chan domain.FileEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return messages.WatchStopped{}
		}
		return messages.SourceChanged{Event: ev}
	}
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

func (a *App) showHelp() {
	a.currentView = messages.ViewHelp
	a.statusBar.SetState(status.StateHelp)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var left string
	switch a.currentView {
	case messages.ViewForm:
		left = a.formView.View()
	case messages.ViewHelp:
		left = a.viewHelp()
	default:
		left = a.menuView.View()
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		a.styles.Panel.Width(sidebarWidth).Render(left),
		a.styles.Panel.Render(a.previewView.View()),
	)
	return panels + "\n" + a.statusBar.View()
}

// viewHelp renders the help panel.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Menu:
  j/k, ↑/↓    Navigate actions
  enter       Select action
  ?           This help
  q           Quit

Forms:
  tab         Next field
  shift+tab   Previous field
  enter       Apply
  esc         Cancel

Anywhere:
  ctrl+r      Reload the image from disk
  ctrl+c      Quit

[esc] back to menu`
}

// SetDimensions sizes the panels for a width x height terminal.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.menuView.SetDimensions(sidebarWidth, height)
	a.formView.SetDimensions(sidebarWidth, height)
	a.statusBar.SetWidth(width)

	// Two panel borders and paddings, the status bar and the border rows.
	a.previewView.SetDimensions(width-sidebarWidth-8, height-3)
}

// Close stops watching the source file.
func (a *App) Close() {
	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns true once the terminal size is known.
func (a *App) Ready() bool {
	return a.ready
}

// Err returns the last operation error.
func (a *App) Err() error {
	return a.err
}

// Source returns the path of the loaded image.
func (a *App) Source() string {
	return a.source
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.statusBar
}

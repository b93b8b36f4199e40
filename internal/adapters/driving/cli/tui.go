package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [image]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the full-screen editor.

The left panel lists the edits, the right panel previews the working
image. The source file is watched and can be reloaded when it changes.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Apply
  Tab      - Next field
  Esc      - Back / Cancel
  Ctrl+R   - Reload the source image
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// buildTUIPorts maps the services onto the TUI ports.
func buildTUIPorts(svc *Services) *tui.Ports {
	ports := &tui.Ports{
		Settings: svc.Settings,
		Watcher:  svc.Watcher,
	}
	if svc.NewSession != nil {
		ports.Session = svc.NewSession(false)
	}
	return ports
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	svc, err := loadServices()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(buildTUIPorts(svc))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	defer app.Close()

	app.WithContext(cmd.Context())
	if len(args) > 0 {
		app.WithImage(args[0])
	} else if svc.Settings != nil {
		if s, err := svc.Settings.Get(); err == nil {
			app.WithImage(s.Input.DefaultImage)
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage editor settings",
	Long: `View and change the engine, display, filter and output settings.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Set a single setting by its dotted key, for example:

  retouch settings set display.viewer none
  retouch settings set filter.blur_sigma 2.5

Run 'retouch settings keys' for the full list.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the configurable keys",
	RunE:  runSettingsKeys,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to choose the engine, the viewer and the display wait.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func settingsService() (driving.SettingsService, error) {
	svc, err := loadServices()
	if err != nil {
		return nil, err
	}
	if svc.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return svc.Settings, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Engine]")
	cmd.Printf("  Name: %s\n", settings.Engine.Name.Description())
	cmd.Println()

	cmd.Println("[Input]")
	cmd.Printf("  Default image: %s\n", settings.Input.DefaultImage)
	cmd.Printf("  Auto orient: %s\n", yesNo(settings.Input.AutoOrient))
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Viewer: %s\n", settings.Display.Viewer)
	cmd.Printf("  Wait: %s\n", settings.Display.Duration)
	if settings.Display.Width > 0 {
		cmd.Printf("  Width: %d columns\n", settings.Display.Width)
	} else {
		cmd.Println("  Width: terminal")
	}
	cmd.Println()

	cmd.Println("[Filter]")
	cmd.Printf("  Blur: %dx%d, sigma %g\n", settings.Filter.BlurKernel, settings.Filter.BlurKernel, settings.Filter.BlurSigma)
	cmd.Printf("  Canny: %g / %g\n", settings.Filter.CannyLow, settings.Filter.CannyHigh)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  JPEG quality: %d\n", settings.Output.JPEGQuality)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.History.Enabled))
	cmd.Println()

	cmd.Printf("Config file: %s\n", svc.Path())
	if err := svc.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'retouch settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("unknown setting %q, run 'retouch settings keys'", key)
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("KEY", "DESCRIPTION")
	for _, k := range svc.Keys() {
		t.Row(k.Key, k.Description)
	}
	cmd.Println(t.String())
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	current, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Retouch Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Engine
	cmd.Println("Step 1: Select Image Engine")
	cmd.Println("---------------------------")
	engines := []domain.EngineName{domain.EngineImaging, domain.EngineOpenCV}
	for i, e := range engines {
		cmd.Printf("  %d. %s\n", i+1, e.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	engine := engines[parseChoice(readLine(reader), len(engines), 1)-1]
	if err := svc.Set("engine.name", engine.String()); err != nil {
		return fmt.Errorf("failed to set engine: %w", err)
	}
	cmd.Printf("Set engine to: %s\n\n", engine.Description())

	// Step 2: Viewer
	cmd.Println("Step 2: Select Viewer")
	cmd.Println("---------------------")
	viewers := []domain.ViewerKind{domain.ViewerTerminal, domain.ViewerWindow, domain.ViewerNone}
	for i, v := range viewers {
		cmd.Printf("  %d. %s\n", i+1, v)
	}
	cmd.Print("\nEnter choice [1]: ")
	viewer := viewers[parseChoice(readLine(reader), len(viewers), 1)-1]
	if err := svc.Set("display.viewer", viewer.String()); err != nil {
		return fmt.Errorf("failed to set viewer: %w", err)
	}
	cmd.Printf("Set viewer to: %s\n\n", viewer)

	// Step 3: Display wait
	cmd.Println("Step 3: Display Wait")
	cmd.Println("--------------------")
	defaultMillis := strconv.FormatInt(current.Display.Duration.Milliseconds(), 10)
	cmd.Printf("Milliseconds to wait after each display [%s]: ", defaultMillis)
	millis := readLine(reader)
	if millis == "" {
		millis = defaultMillis
	}
	if err := svc.Set("display.duration_ms", millis); err != nil {
		return fmt.Errorf("failed to set display wait: %w", err)
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := svc.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

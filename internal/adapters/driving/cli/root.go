// Package cli provides the cobra commands of retouch.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/retouch-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Options carries the global flags to the service builder.
type Options struct {
	// ConfigDir overrides the configuration directory.
	ConfigDir string
}

// Services are the driving ports the commands use.
type Services struct {
	// NewSession creates an editing session. Interactive sessions render
	// through the configured viewer and wait after each display; the TUI
	// and MCP server use non-interactive ones.
	NewSession func(interactive bool) driving.SessionService

	Settings driving.SettingsService
	History  driving.HistoryService
	Watcher  driving.SourceWatcher

	// Close releases stores and watchers. Optional.
	Close func() error
}

// Builder wires the services once the global flags are parsed.
type Builder func(opts Options) (*Services, error)

var (
	builder  Builder
	services *Services
)

var rootCmd = &cobra.Command{
	Use:   "retouch [image]",
	Short: "Interactive image editor",
	Long: `retouch loads an image and edits it from a numbered menu:
filters, resize, rotate, brightness and contrast, crop, save and reset.

The current image is shown after every edit. Without an argument the
image configured as input.default_image is opened.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runEdit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.retouch)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBuilder sets the function that wires the services.
func SetBuilder(b Builder) {
	builder = b
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// loadServices builds the services on first use.
func loadServices() (*Services, error) {
	if services != nil {
		return services, nil
	}
	if builder == nil {
		return nil, errors.New("services not configured")
	}

	s, err := builder(Options{ConfigDir: configDir})
	if err != nil {
		return nil, fmt.Errorf("initialising: %w", err)
	}
	services = s
	return services, nil
}

func closeServices() {
	if services == nil || services.Close == nil {
		return
	}
	if err := services.Close(); err != nil {
		logger.Warn("Closing services: %v", err)
	}
	services = nil
}

// Command retouch is an interactive image editor.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/retouch-cli/cgo/opencv"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driven/engine/imaging"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driven/viewer"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/retouch-cli/internal/core/services"
	"github.com/custodia-labs/retouch-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(build)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// build wires the driven adapters into the services.
func build(opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := settingsService.Validate(); err != nil {
		logger.Warn("Invalid settings, run 'retouch settings': %v", err)
	}

	engine, err := newEngine(settings)
	if err != nil {
		return nil, err
	}

	var closers []func() error

	var history driven.HistoryStore
	if settings.History.Enabled {
		store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		closers = append(closers, store.Close)
		history = store
	} else {
		history = memory.NewHistoryStore()
	}

	fileWatcher := watch.New()
	closers = append(closers, fileWatcher.Close)

	display := newViewer(settings)
	closers = append(closers, display.Close)

	newSession := func(interactive bool) driving.SessionService {
		cfg := services.SessionConfig{
			History:     history,
			JPEGQuality: settings.Output.JPEGQuality,
		}
		if interactive {
			cfg.Viewer = display
			cfg.DisplayDuration = settings.Display.Duration
		}
		return services.NewSessionService(engine, cfg)
	}

	return &cli.Services{
		NewSession: newSession,
		Settings:   settingsService,
		History:    services.NewHistoryService(history),
		Watcher:    services.NewWatchService(fileWatcher),
		Close: func() error {
			var errs []error
			for _, c := range closers {
				errs = append(errs, c())
			}
			return errors.Join(errs...)
		},
	}, nil
}

// newEngine selects the image engine named in settings.
func newEngine(settings *domain.Settings) (driven.ImageEngine, error) {
	switch settings.Engine.Name {
	case domain.EngineOpenCV:
		if !opencv.Available {
			logger.Warn("OpenCV engine not compiled in, falling back to imaging")
			break
		}
		engine, err := opencv.New()
		if err != nil {
			return nil, fmt.Errorf("starting opencv engine: %w", err)
		}
		return engine, nil
	case domain.EngineImaging:
	default:
		logger.Warn("Unknown engine %q, using imaging", settings.Engine.Name)
	}
	return imaging.NewEngine(settings.Input.AutoOrient), nil
}

// newViewer selects the display target named in settings.
func newViewer(settings *domain.Settings) driven.Viewer {
	switch settings.Display.Viewer {
	case domain.ViewerWindow:
		if opencv.Available {
			return opencv.NewWindow()
		}
		logger.Warn("Window viewer needs the opencv build, using the terminal")
	case domain.ViewerNone:
		return viewer.Nop{}
	}
	return viewer.NewTerminal(os.Stdout, settings.Display.Width)
}

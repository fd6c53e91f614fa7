// Command pacer is a terminal document viewer with an auto-advance reading mode.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/pacer/internal/adapters/driven/clock"
	"github.com/custodia-labs/pacer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pacer/internal/adapters/driven/document"
	"github.com/custodia-labs/pacer/internal/adapters/driving/cli"
	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/core/services"
	"github.com/custodia-labs/pacer/internal/logger"
)

func main() {
	if err := run(); err != nil {
		// cobra has already printed command errors.
		os.Exit(1)
	}
}

func run() error {
	environment, err := cli.LoadEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	cli.SetEnvironment(environment)
	logger.SetVerbose(environment.Verbose)

	configStore, err := file.NewConfigStore(environment.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	systemClock := clock.New()

	var watcher driven.DocumentWatcher
	if settings.Viewer.Watch {
		watcher = document.NewWatcher()
	}
	documents := services.NewDocumentService(document.NewLoader(settings.Viewer.LinesPerPage), watcher)

	cli.SetSettingsService(settingsService)
	cli.SetReadConfig(&cli.ReadConfig{
		Advance:   services.NewAdvanceController(systemClock, settings.Advance),
		Collector: services.NewCadenceCollector(),
		Documents: documents,
		Readiness: services.NewReadiness(systemClock, domain.DefaultReadyPollInterval),
		Follow:    settings.Viewer.Watch,
		LogFile:   filepath.Join(filepath.Dir(configStore.Path()), "pacer.log"),
	})

	return cli.Execute()
}

// =============================================================================
// Trucking Delivery Tracker - Application Wiring
// =============================================================================
//
// Every command needs the same pieces: configuration, a logger, the record
// store, the console and the chart renderer. newApp builds them once from
// the global flags.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/chart"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/config"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/logging"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/menu"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/prompt"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/store"
	"github.com/ginjaninja78/trucking-delivery-tracker/pkg/utils"
)

// app holds the components shared by all commands.
type app struct {
	cfg      *config.Config
	logger   logging.Logger
	store    *store.Store
	console  *prompt.Console
	renderer *chart.PNGRenderer

	// dataFileExisted is false when Initialize had to create the data file.
	dataFileExisted bool

	logFile io.Closer
}

// newApp loads configuration, sets up logging and initializes the store.
func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}

	level := cfg.Level()
	if verbose {
		level = logging.LevelDebug
	}

	a := &app{cfg: cfg}

	a.logger = logging.New(os.Stderr, level)
	if cfg.LogFile != "" {
		if err := utils.EnsureDir(filepath.Dir(cfg.LogFile)); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		a.logger = logging.Multi(a.logger, logging.NewWithTimestamps(f, level))
	}

	a.logger.Debug("using data file %s", cfg.DataFile)

	a.dataFileExisted = utils.FileExists(cfg.DataFile)
	a.store = store.New(store.Options{
		Path:       cfg.DataFile,
		ArchiveDir: cfg.ArchiveDir,
		Logger:     a.logger,
	})
	if err := a.store.Initialize(); err != nil {
		a.Close()
		return nil, err
	}

	a.console = prompt.NewConsole(os.Stdin, os.Stdout)
	a.renderer = &chart.PNGRenderer{
		Dir:        cfg.ChartDir,
		FileFormat: cfg.ChartFileFormat,
		Width:      cfg.ChartWidth,
		Height:     cfg.ChartHeight,
	}

	return a, nil
}

func (a *app) menu() *menu.Menu {
	return menu.New(a.console, a.store, a.renderer, a.logger)
}

// Close releases the log file, if one was opened.
func (a *app) Close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

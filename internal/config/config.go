// =============================================================================
// Trucking Delivery Tracker - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Values come from, in
// increasing priority:
//   1. Built-in defaults
//   2. The YAML config file (optional, config.yaml by default)
//   3. Environment variables (a .env file in the working directory is loaded
//      first, if present)
//   4. Command-line flags (applied by the cmd package)
//
// ENVIRONMENT VARIABLES:
//   TRACKER_DATA_FILE   : Path to the delivery CSV file
//   TRACKER_CHART_DIR   : Directory for rendered chart images
//   TRACKER_EXPORT_DIR  : Directory for XLSX exports
//   TRACKER_LOG_LEVEL   : debug, info, warn, error
//   TRACKER_LOG_FILE    : Path to a log file (empty disables file logging)
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/logging"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// STORAGE SETTINGS
	// =========================================================================

	// DataFile is the CSV file holding delivery records.
	// Default: "trucking_data.csv"
	DataFile string `yaml:"data_file"`

	// ArchiveDir receives backups of data files that could not be parsed,
	// before they are reinitialized.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// ChartDir is where rendered chart images are written.
	// Default: "./charts"
	ChartDir string `yaml:"chart_dir"`

	// ExportDir is where XLSX exports are written.
	// Default: "./exports"
	ExportDir string `yaml:"export_dir"`

	// ChartFileFormat names chart files.
	// Placeholders:
	//   {chart}     - Chart kind ("mileage" or "load_types")
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	// Default: "{chart}_{timestamp}_{uuid}.png"
	ChartFileFormat string `yaml:"chart_file_format"`

	// ExportFileFormat names export files. Same placeholders as ChartFileFormat.
	// Default: "deliveries_{timestamp}.xlsx"
	ExportFileFormat string `yaml:"export_file_format"`

	// ChartWidth and ChartHeight are the rendered image size in pixels.
	// Default: 1024x512
	ChartWidth  int `yaml:"chart_width"`
	ChartHeight int `yaml:"chart_height"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is an optional log file. Empty means stderr only.
	LogFile string `yaml:"log_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load builds the configuration from defaults, the optional YAML file at
// configPath, and the environment.
//
// A missing config file is not an error. A file that exists but cannot be
// parsed is.
func Load(configPath string) (*Config, error) {
	// Pull a local .env into the environment. Absence is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
			// Run with defaults.
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides copies TRACKER_* environment variables over file values.
func applyEnvOverrides(cfg *Config) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"TRACKER_DATA_FILE", &cfg.DataFile},
		{"TRACKER_CHART_DIR", &cfg.ChartDir},
		{"TRACKER_EXPORT_DIR", &cfg.ExportDir},
		{"TRACKER_LOG_LEVEL", &cfg.LogLevel},
		{"TRACKER_LOG_FILE", &cfg.LogFile},
	}

	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && v != "" {
			*o.dst = v
		}
	}
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.DataFile == "" {
		cfg.DataFile = "trucking_data.csv"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.ChartDir == "" {
		cfg.ChartDir = "./charts"
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "./exports"
	}
	if cfg.ChartFileFormat == "" {
		cfg.ChartFileFormat = "{chart}_{timestamp}_{uuid}.png"
	}
	if cfg.ExportFileFormat == "" {
		cfg.ExportFileFormat = "deliveries_{timestamp}.xlsx"
	}
	if cfg.ChartWidth == 0 {
		cfg.ChartWidth = 1024
	}
	if cfg.ChartHeight == 0 {
		cfg.ChartHeight = 512
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks values that defaults cannot repair.
func Validate(cfg *Config) error {
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.ChartWidth < 0 || cfg.ChartHeight < 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", cfg.ChartWidth, cfg.ChartHeight)
	}
	return nil
}

// Level returns the parsed log level. Validate has already accepted it.
func (c *Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "trucking_data.csv" {
		t.Fatalf("DataFile = %q; want trucking_data.csv", cfg.DataFile)
	}
	if cfg.ChartWidth != 1024 || cfg.ChartHeight != 512 {
		t.Fatalf("chart size = %dx%d; want 1024x512", cfg.ChartWidth, cfg.ChartHeight)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q; want info", cfg.LogLevel)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("data_file: fleet.csv\nchart_dir: out/charts\nlog_level: debug\nchart_width: 800\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TRACKER_CHART_DIR", "env/charts")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "fleet.csv" {
		t.Fatalf("DataFile = %q; want fleet.csv", cfg.DataFile)
	}
	if cfg.ChartDir != "env/charts" {
		t.Fatalf("ChartDir = %q; want env/charts", cfg.ChartDir)
	}
	if cfg.ChartWidth != 800 || cfg.ChartHeight != 512 {
		t.Fatalf("chart size = %dx%d; want 800x512", cfg.ChartWidth, cfg.ChartHeight)
	}
	if cfg.Level().String() != "DEBUG" {
		t.Fatalf("Level() = %v; want DEBUG", cfg.Level())
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("data_file: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("Load(%q) expected parse error", bad)
	}

	level := filepath.Join(dir, "level.yaml")
	if err := os.WriteFile(level, []byte("log_level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(level); err == nil {
		t.Fatalf("Load(%q) expected invalid level error", level)
	}
}

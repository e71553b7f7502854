package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds all configuration options.
//
// Values are resolved in three layers, later layers winning:
// defaults, JSON config file, ARTSTREAM_* environment variables.
// Command-line flags are applied on top by the front-ends.
type Settings struct {
	// DatabasePaths are the art database files to load, in order.
	DatabasePaths []string `json:"database_paths" env:"ARTSTREAM_DB" envSeparator:","`

	// IntervalSeconds is the wait between successive displayed records.
	IntervalSeconds float64 `json:"interval_seconds" env:"ARTSTREAM_INTERVAL"`

	// StartupPauseSeconds is the single fixed pause before the loop starts.
	StartupPauseSeconds float64 `json:"startup_pause_seconds" env:"ARTSTREAM_STARTUP_PAUSE"`

	// Verbose enables per-record verbose events on the CLI.
	Verbose bool `json:"verbose" env:"ARTSTREAM_VERBOSE"`

	// MaxParallelLoads bounds how many database files are parsed at once.
	MaxParallelLoads int `json:"max_parallel_loads" env:"ARTSTREAM_MAX_PARALLEL_LOADS"`

	// ImportWidth is the target character width for imported images.
	ImportWidth int `json:"import_width" env:"ARTSTREAM_IMPORT_WIDTH"`

	// ImportRamp is the light-to-dark character ramp for imported images.
	ImportRamp string `json:"import_ramp" env:"ARTSTREAM_IMPORT_RAMP"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		IntervalSeconds:     2.0,
		StartupPauseSeconds: 1.0,
		MaxParallelLoads:    4,
		ImportWidth:         64,
		ImportRamp:          " .:-=+*#%@",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; defaults are returned, matching the
// behaviour of running without a config file at all.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return settings, nil
}

// ApplyEnv overlays ARTSTREAM_* environment variables onto the settings.
func (s *Settings) ApplyEnv() error {
	if err := env.Parse(s); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Interval returns the display interval as a duration.
func (s *Settings) Interval() time.Duration {
	return time.Duration(s.IntervalSeconds * float64(time.Second))
}

// StartupPause returns the startup pause as a duration.
func (s *Settings) StartupPause() time.Duration {
	return time.Duration(s.StartupPauseSeconds * float64(time.Second))
}

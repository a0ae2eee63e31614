// Package config loads the spritegen settings from YAML files.
package config

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tptassets/spritegen"
)

//go:embed defaults/spritegen.yaml
var defaultYAML []byte

// Config holds the settings shared by the spritegen commands.
type Config struct {
	Output   string       `yaml:"output"`
	Database string       `yaml:"database"`
	Catalog  bool         `yaml:"catalog"`
	Seed     int64        `yaml:"seed"`
	Frame    string       `yaml:"frame"`
	Export   ExportConfig `yaml:"export"`
	Log      LogConfig    `yaml:"log"`
}

// ExportConfig controls the transformations applied when writing sprites.
type ExportConfig struct {
	Scale     int  `yaml:"scale"`
	Grayscale bool `yaml:"grayscale"`
}

// LogConfig configures the command line logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:   "sprites",
		Database: "~/.spritegen/assets.db",
		Catalog:  true,
		Export:   ExportConfig{Scale: 1},
		Log:      LogConfig{Level: "info"},
	}
}

// ExportOptions converts the export section to generator export options.
func (c Config) ExportOptions() spritegen.ExportOptions {
	return spritegen.ExportOptions{
		Scale:     c.Export.Scale,
		Grayscale: c.Export.Grayscale,
	}
}

// LogLevel parses the configured log level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: %w", err)
	}
	return lvl, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Export.Scale < 0 {
		return fmt.Errorf("config: export scale must not be negative, got %d", c.Export.Scale)
	}
	if c.Catalog && c.Database == "" {
		return fmt.Errorf("config: catalog enabled without a database path")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

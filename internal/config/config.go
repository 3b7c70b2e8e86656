// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all assistant configuration.
type Config struct {
	Storage   Storage   `yaml:"storage"`
	Birthdays Birthdays `yaml:"birthdays"`
	UI        UI        `yaml:"ui"`
}

// Storage holds persistence settings.
type Storage struct {
	Path string `yaml:"path"`
}

// Birthdays holds upcoming-birthday query settings.
type Birthdays struct {
	WindowDays int `yaml:"window_days"`
}

// UI holds terminal output settings.
type UI struct {
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage:   Storage{Path: ".assistant/addressbook.json"},
		Birthdays: Birthdays{WindowDays: 7},
	}
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return errors.New("config: storage.path cannot be empty")
	}
	if c.Birthdays.WindowDays <= 0 {
		return fmt.Errorf("config: birthdays.window_days must be positive, got %d", c.Birthdays.WindowDays)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ASSISTANT_STORAGE_PATH, ASSISTANT_BIRTHDAY_WINDOW,
// ASSISTANT_NO_COLOR.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ASSISTANT_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("ASSISTANT_BIRTHDAY_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ASSISTANT_BIRTHDAY_WINDOW %q: %w", v, err)
		}
		c.Birthdays.WindowDays = n
	}
	if v := os.Getenv("ASSISTANT_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ASSISTANT_NO_COLOR %q: %w", v, err)
		}
		c.UI.NoColor = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Storage   *rawStorage   `yaml:"storage"`
	Birthdays *rawBirthdays `yaml:"birthdays"`
	UI        *rawUI        `yaml:"ui"`
}

type rawStorage struct {
	Path *string `yaml:"path"`
}

type rawBirthdays struct {
	WindowDays *int `yaml:"window_days"`
}

type rawUI struct {
	NoColor *bool `yaml:"no_color"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Storage != nil && layer.Storage.Path != nil {
		c.Storage.Path = *layer.Storage.Path
	}
	if layer.Birthdays != nil && layer.Birthdays.WindowDays != nil {
		c.Birthdays.WindowDays = *layer.Birthdays.WindowDays
	}
	if layer.UI != nil && layer.UI.NoColor != nil {
		c.UI.NoColor = *layer.UI.NoColor
	}
}

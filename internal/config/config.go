// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/roboticarm/internal/theme"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application configuration.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Session SessionConfig `toml:"session"`
	UI      UIConfig      `toml:"ui"`
}

// EngineConfig holds arm engine settings.
type EngineConfig struct {
	LegacyResize bool `toml:"legacy_resize"` // grow one extra slot on "size n persist"
}

// SessionConfig holds prompt loop settings.
type SessionConfig struct {
	Prompt string `toml:"prompt"` // e.g., "> "
}

// UIConfig holds output settings.
type UIConfig struct {
	Theme string `toml:"theme"` // see theme.Available
	Color string `toml:"color"` // "auto", "always", "never"
	Block string `toml:"block"` // glyph drawn per block, e.g., "X"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			LegacyResize: false,
		},
		Session: SessionConfig{
			Prompt: "> ",
		},
		UI: UIConfig{
			Theme: "mocha",
			Color: ColorAuto,
			Block: "X",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "roboticarm", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ROBOTICARM_LEGACY_RESIZE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing ROBOTICARM_LEGACY_RESIZE: %w", err)
		}
		cfg.Engine.LegacyResize = b
	}
	if v, ok := os.LookupEnv("ROBOTICARM_PROMPT"); ok {
		cfg.Session.Prompt = v
	}
	if v := os.Getenv("ROBOTICARM_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("ROBOTICARM_COLOR"); v != "" {
		cfg.UI.Color = strings.ToLower(v)
	}
	if v := os.Getenv("ROBOTICARM_BLOCK"); v != "" {
		cfg.UI.Block = v
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.UI.Color)
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q: available themes are %s",
			c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if utf8.RuneCountInString(c.UI.Block) != 1 {
		return errors.New("block must be exactly one character")
	}
	if strings.ContainsAny(c.Session.Prompt, "\n\r") {
		return errors.New("prompt must fit on one line")
	}
	return nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Timezone TimezoneConfig `toml:"timezone"`
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// TimezoneConfig holds the reference and display zones.
type TimezoneConfig struct {
	Reference      string   `toml:"reference"`       // zone week keys and stored slots are computed in
	Display        []string `toml:"display"`         // zones the grid can be viewed in
	DefaultDisplay string   `toml:"default_display"` // zone selected at startup
}

// CalendarConfig holds week navigation settings.
type CalendarConfig struct {
	WindowDays int `toml:"window_days"` // selectable days around the current week
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Timezone: TimezoneConfig{
			Reference:      "Asia/Manila",
			Display:        []string{"America/New_York", "Asia/Manila"},
			DefaultDisplay: "America/New_York",
		},
		Calendar: CalendarConfig{
			WindowDays: 14,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "weekgrid.db"
	}
	return filepath.Join(home, ".local", "share", "weekgrid", "weekgrid.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "weekgrid", "config.toml")
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

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

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
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEEKGRID_REFERENCE_TZ"); v != "" {
		cfg.Timezone.Reference = v
	}
	if v := os.Getenv("WEEKGRID_DISPLAY_TZ"); v != "" {
		cfg.Timezone.Display = splitList(v)
	}
	if v := os.Getenv("WEEKGRID_DEFAULT_DISPLAY_TZ"); v != "" {
		cfg.Timezone.DefaultDisplay = v
	}
	if v := os.Getenv("WEEKGRID_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.WindowDays = n
		}
	}
	if v := os.Getenv("WEEKGRID_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("WEEKGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := dateutil.LoadZone(c.Timezone.Reference); err != nil {
		return fmt.Errorf("reference timezone: %w", err)
	}
	if len(c.Timezone.Display) == 0 {
		return errors.New("at least one display timezone must be configured")
	}
	for _, name := range c.Timezone.Display {
		if _, err := dateutil.LoadZone(name); err != nil {
			return fmt.Errorf("display timezone: %w", err)
		}
	}
	if c.Timezone.DefaultDisplay != "" && c.DisplayIndex(c.Timezone.DefaultDisplay) < 0 {
		return fmt.Errorf("default_display %q must be one of the display timezones", c.Timezone.DefaultDisplay)
	}
	if c.Calendar.WindowDays <= 0 {
		return errors.New("window_days must be positive")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// DisplayIndex returns the position of name in the display zones, or -1.
func (c *Config) DisplayIndex(name string) int {
	for i, z := range c.Timezone.Display {
		if strings.EqualFold(z, name) {
			return i
		}
	}
	return -1
}

// ReferenceLocation resolves the reference timezone.
func (c *Config) ReferenceLocation() (*time.Location, error) {
	return dateutil.LoadZone(c.Timezone.Reference)
}

// DisplayLocations resolves every display timezone in order.
func (c *Config) DisplayLocations() ([]*time.Location, error) {
	locs := make([]*time.Location, 0, len(c.Timezone.Display))
	for _, name := range c.Timezone.Display {
		loc, err := dateutil.LoadZone(name)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

// DefaultDisplayIndex returns the index of the startup display zone.
func (c *Config) DefaultDisplayIndex() int {
	if i := c.DisplayIndex(c.Timezone.DefaultDisplay); i >= 0 {
		return i
	}
	return 0
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
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

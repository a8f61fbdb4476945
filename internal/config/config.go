package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration for timetraveler, stored in
// ~/.timetraveler/config.toml.
type Config struct {
	// DefaultTimezone replaces the host timezone as the default for both
	// anchors. Empty = host default.
	DefaultTimezone string `toml:"default_timezone"`
	// DefaultUnit is used when the output unit prompt is left empty.
	DefaultUnit string `toml:"default_unit"`
	// DisplayLayout controls how anchors are printed: "ordinal" or a Go
	// time layout.
	DisplayLayout string `toml:"display_layout"`
	// Color enables styled terminal output.
	Color bool `toml:"color"`
}

const (
	// DefaultUnit is the output unit used when none is configured.
	DefaultUnit = "days"
	// DefaultDisplayLayout renders anchors as "1st Jan 2018, 10:30:00AM UTC".
	DefaultDisplayLayout = "ordinal"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		DefaultTimezone: "",
		DefaultUnit:     DefaultUnit,
		DisplayLayout:   DefaultDisplayLayout,
		Color:           true,
	}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# timetraveler configuration – ~/.timetraveler/config.toml
#
# All settings are optional; the values below are the built-in defaults.

# Timezone used for both dates unless overridden at the prompt, e.g.
# "Europe/Berlin". Leave empty to use the host timezone ($TZ or /etc/localtime).
# Can be overridden with: timetraveler --timezone <tz>
default_timezone = ""

# Unit used for the "Custom Format" column when the prompt is left empty.
# One of: seconds, minutes, hours, days, weeks, years.
default_unit = "days"

# How the From/To dates are displayed. "ordinal" prints
# "1st Jan 2018, 10:30:00AM UTC"; any other value is used as a Go time layout.
display_layout = "ordinal"

# Colored headers and tables.
color = true
`

// ErrNoConfigFile reports that no config file could be located or created.
// The returned Config still holds the defaults.
var ErrNoConfigFile = errors.New("config file unavailable")

// FilePath returns the path to ~/.timetraveler/config.toml.
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".timetraveler", "config.toml"), nil
}

// Load reads the config file at path, creating it with annotated defaults
// on first run. An empty path means FilePath().
func Load(path string) (Config, error) {
	if path == "" {
		p, err := FilePath()
		if err != nil {
			return defaultConfig(), fmt.Errorf("%w: %w", ErrNoConfigFile, err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			return defaultConfig(), fmt.Errorf("%w: could not create %s: %w", ErrNoConfigFile, path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.DefaultUnit == "" {
		cfg.DefaultUnit = DefaultUnit
	}
	if cfg.DisplayLayout == "" {
		cfg.DisplayLayout = DefaultDisplayLayout
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// ResolveTimezone picks the process-wide default timezone: the flag value,
// then the config file, then host.
func ResolveTimezone(flag string, cfg Config, host string) string {
	switch {
	case flag != "":
		return flag
	case cfg.DefaultTimezone != "":
		return cfg.DefaultTimezone
	default:
		return host
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config.toml key mapping.
type fileConfig struct {
	WrapWidth  int  `toml:"wrap_width"`
	LineLength int  `toml:"line_length"`
	Verbose    bool `toml:"verbose"`
}

type config struct {
	// WrapWidth is the fallback wrap width when stdout is not a terminal.
	WrapWidth int
	// LineLength is the default Base64 output line length. 0 disables
	// wrapping.
	LineLength int
	Verbose    bool
}

func defaultConfig() config {
	return config{
		WrapWidth:  0,
		LineLength: 0,
		Verbose:    false,
	}
}

// configPath resolves the config file location: the explicit flag value if
// set, otherwise $XDG_CONFIG_HOME/textio/config.toml (with the usual
// ~/.config fallback). Returns "" when no candidate exists.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	path := filepath.Join(base, "textio", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadConfig reads path and overlays only the keys actually present onto
// the defaults. An empty path yields the defaults unchanged.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("wrap_width") {
		cfg.WrapWidth = raw.WrapWidth
	}
	if meta.IsDefined("line_length") {
		cfg.LineLength = raw.LineLength
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}
	return cfg, nil
}

// Package config loads cardstudio settings from the user's config file.
//
// Settings live in a TOML file at ~/.config/cardstudio/config.toml (or
// $XDG_CONFIG_HOME/cardstudio/config.toml). All fields are optional; the
// zero config is valid. The GEMINI_API_KEY environment variable overrides
// the file's api key so CI and one-off runs never need a config file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName is the directory name under the config root.
const appName = "cardstudio"

// Config holds user-level settings.
type Config struct {
	// GeminiAPIKey authenticates the content generation service.
	GeminiAPIKey string `toml:"gemini_api_key"`

	// Model overrides the generation model name.
	Model string `toml:"model"`

	// DefaultFormat is the render format used when --format is omitted.
	DefaultFormat string `toml:"default_format"`
}

// Path returns the config file location following the XDG convention.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file and applies environment overrides. A missing
// file yields the zero config; a malformed file is an error.
func Load() (Config, error) {
	var cfg Config

	path, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			if _, err := toml.Decode(string(data), &cfg); err != nil {
				return Config{}, err
			}
		case !os.IsNotExist(readErr):
			return Config{}, readErr
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}
	return cfg, nil
}

package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed configs/default.yaml
var configFS embed.FS

// Default returns the built-in configuration
func Default() *Config {
	data, err := configFS.ReadFile("configs/default.yaml")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults missing: %v", err))
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return &cfg
}

// DefaultPath returns the user config location,
// $XDG_CONFIG_HOME/postlint/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "postlint", "config.yaml"), nil
}

// Load returns the built-in defaults overlaid with the user config file.
// An explicit path must exist; when path is empty the default location is
// read only if present.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			slog.Debug("no user config directory", "error", err)
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no user config", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	slog.Debug("loaded user config", "path", path, "format", cfg.Format, "min_score", cfg.MinScore, "media", cfg.Media)
	return cfg, nil
}

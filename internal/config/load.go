package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names an environment variable holding a config file path.
const EnvConfig = "GLOBE_CONFIG"

// FileName is the config file name looked up in the working directory.
const FileName = "globe.yaml"

// Load builds the configuration from defaults, then the first config file
// found, then command-line flags, and validates the result.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolvePath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePath returns the --config flag, then $GLOBE_CONFIG, then the
// first existing file from the search locations.
func resolvePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return findConfigFile()
}

func findConfigFile() string {
	for _, path := range []string{
		FileName,
		filepath.Join(ConfigDir(), "config.yaml"),
	} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Globe")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Globe")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "globe")
	}
	return filepath.Join(home, ".config", "globe")
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so
// a misspelt setting does not silently keep its default.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// AssetPath resolves an asset path against the configured root.
// Absolute paths are returned unchanged.
func (a AssetsConfig) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.Root, name)
}

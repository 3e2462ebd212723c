package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if err := applyFlags(cfg); err != nil {
		return nil, fmt.Errorf("applying flags: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	home, _ := homedir.Dir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "NurbsEditor")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "NurbsEditor")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "nurbs-editor")
		}
		return filepath.Join(home, ".config", "nurbs-editor")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// expandPaths resolves a leading ~ in file paths.
func (c *Config) expandPaths() error {
	var err error
	if c.Preset.Path, err = homedir.Expand(c.Preset.Path); err != nil {
		return fmt.Errorf("expanding preset path: %w", err)
	}
	if c.Editor.ScreenshotDir, err = homedir.Expand(c.Editor.ScreenshotDir); err != nil {
		return fmt.Errorf("expanding screenshot dir: %w", err)
	}
	if c.Logging.LogFile, err = homedir.Expand(c.Logging.LogFile); err != nil {
		return fmt.Errorf("expanding log file path: %w", err)
	}
	return nil
}

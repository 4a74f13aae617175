package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCameraMode is returned when camera.mode is neither freeroam nor orbital.
var ErrInvalidCameraMode = errors.New("invalid camera mode")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes and checks values that the file or flags may have set.
// Non-positive speeds fall back to the defaults.
func (c *Config) Validate() error {
	def := Default()

	c.Camera.Mode = strings.ToLower(strings.TrimSpace(c.Camera.Mode))
	switch c.Camera.Mode {
	case "":
		c.Camera.Mode = def.Camera.Mode
	case "freeroam", "orbital":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCameraMode, c.Camera.Mode)
	}

	fixSpeed(&c.Camera.FreeroamRotateSpeed, def.Camera.FreeroamRotateSpeed)
	fixSpeed(&c.Camera.FreeroamMoveSpeed, def.Camera.FreeroamMoveSpeed)
	fixSpeed(&c.Camera.OrbitalRotateSpeed, def.Camera.OrbitalRotateSpeed)
	fixSpeed(&c.Camera.OrbitalZoomSpeed, def.Camera.OrbitalZoomSpeed)

	if c.Graphics.Width < 0 {
		c.Graphics.Width = 0
	}
	if c.Graphics.Height < 0 {
		c.Graphics.Height = 0
	}
	return nil
}

func fixSpeed(v *float32, def float32) {
	if *v <= 0 {
		*v = def
	}
}

// ModelPath resolves a model filename referenced by the scene.
func (c *Config) ModelPath(name string) string {
	return c.resolve(c.Scene.ModelsDir, name)
}

// TexturePath resolves a texture filename referenced by the scene.
func (c *Config) TexturePath(name string) string {
	return c.resolve(c.Scene.TexturesDir, name)
}

func (c *Config) resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if dir == "" {
		dir = filepath.Dir(c.Scene.File)
	}
	return filepath.Join(dir, name)
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
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Scenery")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Scenery")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenery")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "scenery")
	}
}

// loadFromFile merges a YAML file over cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

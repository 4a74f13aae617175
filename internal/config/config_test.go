package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scene.File != "scene.xml" {
		t.Errorf("expected scene file scene.xml, got %s", cfg.Scene.File)
	}
	if cfg.Graphics.Width != 0 || cfg.Graphics.Height != 0 {
		t.Errorf("expected no window override, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Camera.Mode != "freeroam" {
		t.Errorf("expected freeroam camera, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.FreeroamRotateSpeed != 200 || cfg.Camera.OrbitalRotateSpeed != 200 {
		t.Errorf("expected rotate speeds 200, got %f/%f", cfg.Camera.FreeroamRotateSpeed, cfg.Camera.OrbitalRotateSpeed)
	}
	if cfg.Camera.FreeroamMoveSpeed != 100 || cfg.Camera.OrbitalZoomSpeed != 100 {
		t.Errorf("expected move/zoom speeds 100, got %f/%f", cfg.Camera.FreeroamMoveSpeed, cfg.Camera.OrbitalZoomSpeed)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Scene.Watch {
		t.Error("expected scene watching to be off by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
scene:
  file: "solar.xml"
  models_dir: "models"
  textures_dir: "textures"

graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  mode: orbital
  orbital_zoom_speed: 40

logging:
  level: "debug"
  log_file: "viewer.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Scene.File != "solar.xml" || cfg.Scene.ModelsDir != "models" || cfg.Scene.TexturesDir != "textures" {
		t.Errorf("unexpected scene config %+v", cfg.Scene)
	}
	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Camera.Mode != "orbital" {
		t.Errorf("expected orbital camera, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.OrbitalZoomSpeed != 40 {
		t.Errorf("expected zoom speed 40, got %f", cfg.Camera.OrbitalZoomSpeed)
	}
	// Untouched keys keep their defaults.
	if cfg.Camera.FreeroamMoveSpeed != 100 {
		t.Errorf("expected default move speed, got %f", cfg.Camera.FreeroamMoveSpeed)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		check   func(*testing.T, *Config)
	}{
		{
			name:   "mode is case insensitive",
			mutate: func(c *Config) { c.Camera.Mode = " Orbital " },
			check: func(t *testing.T, c *Config) {
				if c.Camera.Mode != "orbital" {
					t.Errorf("expected orbital, got %q", c.Camera.Mode)
				}
			},
		},
		{
			name:   "empty mode falls back",
			mutate: func(c *Config) { c.Camera.Mode = "" },
			check: func(t *testing.T, c *Config) {
				if c.Camera.Mode != "freeroam" {
					t.Errorf("expected freeroam, got %q", c.Camera.Mode)
				}
			},
		},
		{
			name:    "unknown mode",
			mutate:  func(c *Config) { c.Camera.Mode = "fps" },
			wantErr: ErrInvalidCameraMode,
		},
		{
			name: "non-positive speeds reset",
			mutate: func(c *Config) {
				c.Camera.FreeroamMoveSpeed = 0
				c.Camera.OrbitalRotateSpeed = -5
			},
			check: func(t *testing.T, c *Config) {
				if c.Camera.FreeroamMoveSpeed != 100 || c.Camera.OrbitalRotateSpeed != 200 {
					t.Errorf("speeds not reset: %+v", c.Camera)
				}
			},
		},
		{
			name:   "negative size clears override",
			mutate: func(c *Config) { c.Graphics.Width = -1 },
			check: func(t *testing.T, c *Config) {
				if c.Graphics.Width != 0 {
					t.Errorf("expected width 0, got %d", c.Graphics.Width)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestAssetPaths(t *testing.T) {
	cfg := Default()
	cfg.Scene.File = filepath.Join("scenes", "solar.xml")

	if got, want := cfg.ModelPath("sphere.3d"), filepath.Join("scenes", "sphere.3d"); got != want {
		t.Errorf("ModelPath = %s, want %s", got, want)
	}

	cfg.Scene.TexturesDir = "tex"
	if got, want := cfg.TexturePath("earth.jpg"), filepath.Join("tex", "earth.jpg"); got != want {
		t.Errorf("TexturePath = %s, want %s", got, want)
	}

	abs := filepath.Join(t.TempDir(), "box.obj")
	if got := cfg.ModelPath(abs); got != abs {
		t.Errorf("absolute path should pass through, got %s", got)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "scene flag",
			setup: func() { *flagScene = "demo.xml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.File != "demo.xml" {
					t.Errorf("expected scene demo.xml, got %s", cfg.Scene.File)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name:  "orbital flag",
			setup: func() { *flagOrbital = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.Mode != "orbital" {
					t.Errorf("expected orbital, got %s", cfg.Camera.Mode)
				}
			},
			teardown: func() { *flagOrbital = false },
		},
		{
			name:  "watch flag",
			setup: func() { *flagWatch = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Scene.Watch {
					t.Error("expected scene watching with watch flag")
				}
			},
			teardown: func() { *flagWatch = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.File = "orbit.xml"
	cfg.Camera.Mode = "orbital"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Scene.File != "orbit.xml" || loaded.Camera.Mode != "orbital" {
		t.Errorf("unexpected reloaded config %+v", loaded)
	}
}

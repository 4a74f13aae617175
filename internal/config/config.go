// Package config loads the viewer settings.
package config

// Config holds all viewer settings.
type Config struct {
	Scene    SceneConfig    `yaml:"scene"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SceneConfig locates the scene description and the files it references.
// Relative model and texture names in the scene are resolved against
// ModelsDir and TexturesDir; empty directories mean "next to the scene file".
// Watch reloads the scene when it or a referenced file changes on disk.
type SceneConfig struct {
	File        string `yaml:"file"`
	ModelsDir   string `yaml:"models_dir"`
	TexturesDir string `yaml:"textures_dir"`
	Watch       bool   `yaml:"watch"`
}

// GraphicsConfig holds display settings. Zero Width/Height keep the
// window size declared by the scene.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// CameraConfig holds camera speeds (degrees/s and units/s) and the
// behaviour the viewer starts in ("freeroam" or "orbital").
type CameraConfig struct {
	Mode                string  `yaml:"mode"`
	FreeroamRotateSpeed float32 `yaml:"freeroam_rotate_speed"`
	FreeroamMoveSpeed   float32 `yaml:"freeroam_move_speed"`
	OrbitalRotateSpeed  float32 `yaml:"orbital_rotate_speed"`
	OrbitalZoomSpeed    float32 `yaml:"orbital_zoom_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock viewer settings.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			File: "scene.xml",
		},
		Graphics: GraphicsConfig{
			VSync:   true,
			ShowFPS: true,
		},
		Camera: CameraConfig{
			Mode:                "freeroam",
			FreeroamRotateSpeed: 200,
			FreeroamMoveSpeed:   100,
			OrbitalRotateSpeed:  200,
			OrbitalZoomSpeed:    100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

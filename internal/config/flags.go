package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScene      = flag.String("scene", "", "Scene description (XML) to load")
	flagOrbital    = flag.Bool("orbital", false, "Start the camera in orbital mode")
	flagWatch      = flag.Bool("watch", false, "Reload the scene when its files change")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width (overrides the scene)")
	flagHeight     = flag.Int("height", 0, "Window height (overrides the scene)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI overrides. A positional argument names the scene
// file, as in `viewer scene.xml`; --scene wins over it.
func applyFlags(cfg *Config) {
	if flag.NArg() > 0 {
		cfg.Scene.File = flag.Arg(0)
	}
	if *flagScene != "" {
		cfg.Scene.File = *flagScene
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOrbital {
		cfg.Camera.Mode = "orbital"
	}
	if *flagWatch {
		cfg.Scene.Watch = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}

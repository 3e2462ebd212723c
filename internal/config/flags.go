package config

import (
	"flag"

	"github.com/Faultbox/nurbs-editor/internal/engine/shading"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPreset     = flag.String("preset", "", "Control-point preset to load at startup")
	flagWatch      = flag.Bool("watch", false, "Reload the preset when it changes on disk")
	flagShading    = flag.String("shading", "", "Shading mode: none, gouraud, phong, blinn-phong")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPreset != "" {
		cfg.Preset.Path = *flagPreset
	}
	if *flagWatch {
		cfg.Preset.Watch = true
	}
	if *flagShading != "" {
		mode, err := shading.ParseMode(*flagShading)
		if err != nil {
			return err
		}
		cfg.Editor.Shading = mode
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/nurbs-editor/internal/engine/shading"
	"github.com/mitchellh/go-homedir"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Editor.UCount != 20 || cfg.Editor.VCount != 20 {
		t.Errorf("expected 20x20 tessellation, got %dx%d", cfg.Editor.UCount, cfg.Editor.VCount)
	}
	if cfg.Editor.PickTolerance != 0.03 {
		t.Errorf("expected pick tolerance 0.03, got %f", cfg.Editor.PickTolerance)
	}
	if cfg.Editor.Snapping {
		t.Error("expected snapping to be off by default")
	}
	if cfg.Editor.Shading != shading.Phong {
		t.Errorf("expected phong shading, got %s", cfg.Editor.Shading)
	}

	if cfg.Camera.Position != (Vec3{0, 5, 10}) {
		t.Errorf("unexpected camera position %v", cfg.Camera.Position)
	}
	if cfg.Object.Scale != (Vec3{1, 1, 1}) {
		t.Errorf("expected unit object scale, got %v", cfg.Object.Scale)
	}
	if cfg.Light.Attenuation != 0.05 {
		t.Errorf("expected attenuation 0.05, got %f", cfg.Light.Attenuation)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestVec3Math(t *testing.T) {
	v := Vec3{1, 2, 3}.Math()
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("unexpected conversion %+v", v)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

editor:
  u_count: 8
  v_count: 12
  snapping: true
  grid_size: 0.25
  shading: blinn-phong

camera:
  position: [1, 2, 3]
  fov_degrees: 60

object:
  origin: [0, 1, 0]
  rotation_degrees: [90, 0, 0]

preset:
  path: surface.nurbs
  watch: true

logging:
  level: "debug"
  log_file: "editor.log"
  max_backups: 5
  compress: false
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	// Untouched keys keep their defaults
	if !cfg.Window.VSync {
		t.Error("expected vsync default to survive")
	}

	if cfg.Editor.UCount != 8 || cfg.Editor.VCount != 12 {
		t.Errorf("expected 8x12 tessellation, got %dx%d", cfg.Editor.UCount, cfg.Editor.VCount)
	}
	if !cfg.Editor.Snapping || cfg.Editor.GridSize != 0.25 {
		t.Errorf("unexpected snapping settings %v %f", cfg.Editor.Snapping, cfg.Editor.GridSize)
	}
	if cfg.Editor.Shading != shading.BlinnPhong {
		t.Errorf("expected blinn-phong, got %s", cfg.Editor.Shading)
	}

	if cfg.Camera.Position != (Vec3{1, 2, 3}) {
		t.Errorf("expected camera position [1 2 3], got %v", cfg.Camera.Position)
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}

	if cfg.Object.Origin != (Vec3{0, 1, 0}) || cfg.Object.Rotation != (Vec3{90, 0, 0}) {
		t.Errorf("unexpected object placement %+v", cfg.Object)
	}
	if cfg.Object.Scale != (Vec3{1, 1, 1}) {
		t.Errorf("expected default object scale to survive, got %v", cfg.Object.Scale)
	}

	if cfg.Preset.Path != "surface.nurbs" || !cfg.Preset.Watch {
		t.Errorf("unexpected preset config %+v", cfg.Preset)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "editor.log" {
		t.Errorf("expected log file 'editor.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Logging.MaxBackups != 5 || cfg.Logging.Compress {
		t.Errorf("unexpected rotation settings %+v", cfg.Logging)
	}
	if cfg.Logging.MaxSizeMB != 50 {
		t.Errorf("expected default max size to survive, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileBadShading(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("editor:\n  shading: toon\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for unknown shading mode, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
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
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
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
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "preset and watch flags",
			setup: func() {
				*flagPreset = "saddle.nurbs"
				*flagWatch = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Preset.Path != "saddle.nurbs" {
					t.Errorf("expected preset saddle.nurbs, got %s", cfg.Preset.Path)
				}
				if !cfg.Preset.Watch {
					t.Error("expected watch to be enabled")
				}
			},
			teardown: func() {
				*flagPreset = ""
				*flagWatch = false
			},
		},
		{
			name: "shading flag",
			setup: func() {
				*flagShading = "gouraud"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Editor.Shading != shading.Gouraud {
					t.Errorf("expected gouraud, got %s", cfg.Editor.Shading)
				}
			},
			teardown: func() {
				*flagShading = ""
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
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
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsBadShading(t *testing.T) {
	*flagShading = "cel"
	defer func() { *flagShading = "" }()

	if err := applyFlags(Default()); err == nil {
		t.Error("expected error for unknown shading flag")
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
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

	// Flag beats file
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("preset:\n  path: ~/surface.nurbs\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	home, err := homedir.Dir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	want := filepath.Join(home, "surface.nurbs")
	if cfg.Preset.Path != want {
		t.Errorf("expected %s, got %s", want, cfg.Preset.Path)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Editor.Shading = shading.Gouraud
	cfg.Camera.Target = Vec3{1, 0, -1}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Editor.Shading != shading.Gouraud {
		t.Errorf("expected gouraud after round trip, got %s", loaded.Editor.Shading)
	}
	if loaded.Camera.Target != (Vec3{1, 0, -1}) {
		t.Errorf("expected target [1 0 -1], got %v", loaded.Camera.Target)
	}
}

func TestLoggerOptions(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "warn"
	cfg.Logging.LogFile = "/tmp/nurbs.log"
	cfg.Logging.MaxAgeDays = 2

	opts := cfg.Logging.LoggerOptions()
	if opts.Level != "warn" || opts.File != "/tmp/nurbs.log" {
		t.Errorf("unexpected level or file %+v", opts)
	}
	if opts.MaxSizeMB != 50 || opts.MaxBackups != 3 || opts.MaxAgeDays != 2 || !opts.Compress {
		t.Errorf("unexpected rotation options %+v", opts)
	}
	if opts.Quiet || opts.Console != nil {
		t.Errorf("expected console output on stdout, got %+v", opts)
	}
}

// Package config handles editor configuration loading and management.
package config

import (
	"github.com/Faultbox/nurbs-editor/internal/engine/shading"
	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// Config holds all editor settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Editor   EditorConfig   `yaml:"editor"`
	Camera   CameraConfig   `yaml:"camera"`
	Object   ObjectConfig   `yaml:"object"`
	Material MaterialConfig `yaml:"material"`
	Light    LightConfig    `yaml:"light"`
	Preset   PresetConfig   `yaml:"preset"`
	Spline   SplineConfig   `yaml:"spline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Vec3 is a three-component vector written as a YAML flow sequence.
type Vec3 [3]float32

// Math converts to the engine vector type.
func (v Vec3) Math() math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
}

// EditorConfig holds surface editor settings.
type EditorConfig struct {
	UCount        int          `yaml:"u_count"`
	VCount        int          `yaml:"v_count"`
	Snapping      bool         `yaml:"snapping"`
	GridSize      float32      `yaml:"grid_size"`
	PickTolerance float32      `yaml:"pick_tolerance"` // NDC units
	ShowPoints    bool         `yaml:"show_points"`
	ShowNet       bool         `yaml:"show_net"`
	ShowLight     bool         `yaml:"show_light"`
	ShowBounds    bool         `yaml:"show_bounds"`
	ShowNormals   bool         `yaml:"show_normals"`
	NormalLength  float32      `yaml:"normal_length"`
	Wireframe     bool         `yaml:"wireframe"`
	Fill          bool         `yaml:"fill"`
	Shading       shading.Mode `yaml:"shading"`
	FOVStep       float32      `yaml:"fov_step_degrees"`
	ScreenshotDir string       `yaml:"screenshot_dir"` // May start with ~
}

// CameraConfig holds the startup camera.
type CameraConfig struct {
	Position Vec3    `yaml:"position,flow"`
	Target   Vec3    `yaml:"target,flow"`
	Up       Vec3    `yaml:"up,flow"`
	FOV      float32 `yaml:"fov_degrees"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

// ObjectConfig places the surface in the world.
type ObjectConfig struct {
	Origin   Vec3 `yaml:"origin,flow"`
	Rotation Vec3 `yaml:"rotation_degrees,flow"` // Applied X, then Y, then Z
	Scale    Vec3 `yaml:"scale,flow"`
}

// MaterialConfig holds the surface material.
type MaterialConfig struct {
	Color Vec3    `yaml:"color,flow"`
	Ka    Vec3    `yaml:"ka,flow"`
	Kd    Vec3    `yaml:"kd,flow"`
	Ks    Vec3    `yaml:"ks,flow"`
	P     float32 `yaml:"p"`
}

// LightConfig holds the ambient term and the point light.
type LightConfig struct {
	Ambient     Vec3    `yaml:"ambient,flow"`
	Intensity   Vec3    `yaml:"intensity,flow"`
	Position    Vec3    `yaml:"position,flow"`
	Attenuation float32 `yaml:"attenuation"`
}

// PresetConfig holds the control-point preset file.
type PresetConfig struct {
	Path  string `yaml:"path"` // May start with ~
	Watch bool   `yaml:"watch"`
}

// SplineConfig holds spline editor settings.
type SplineConfig struct {
	Approximation int     `yaml:"approximation"` // Samples per segment
	TangentFactor float32 `yaml:"tangent_factor"`
	ShowPoints    bool    `yaml:"show_points"`
	ShowTangents  bool    `yaml:"show_tangents"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"` // May start with ~
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "NURBS editor",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Samples:    4,
		},
		Editor: EditorConfig{
			UCount:        20,
			VCount:        20,
			Snapping:      false,
			GridSize:      0.5,
			PickTolerance: 0.03,
			ShowPoints:    true,
			ShowNet:       true,
			ShowLight:     true,
			ShowBounds:    false,
			ShowNormals:   false,
			NormalLength:  0.2,
			Wireframe:     false,
			Fill:          true,
			Shading:       shading.Phong,
			FOVStep:       1,
		},
		Camera: CameraConfig{
			Position: Vec3{0, 5, 10},
			Target:   Vec3{0, 0, 0},
			Up:       Vec3{0, 1, 0},
			FOV:      45,
			Near:     1,
			Far:      100,
		},
		Object: ObjectConfig{
			Origin:   Vec3{0, 0, 0},
			Rotation: Vec3{0, 0, 0},
			Scale:    Vec3{1, 1, 1},
		},
		Material: MaterialConfig{
			Color: Vec3{1, 0.5, 0.2},
			Ka:    Vec3{0.3, 0.3, 0.3},
			Kd:    Vec3{0.7, 0.7, 0.7},
			Ks:    Vec3{0.7, 0.7, 0.7},
			P:     10,
		},
		Light: LightConfig{
			Ambient:     Vec3{1, 1, 1},
			Intensity:   Vec3{1, 1, 1},
			Position:    Vec3{0, 3, 0},
			Attenuation: 0.05,
		},
		Preset: PresetConfig{
			Path:  "",
			Watch: false,
		},
		Spline: SplineConfig{
			Approximation: 20,
			TangentFactor: 1,
			ShowPoints:    true,
			ShowTangents:  true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Package config handles skyview configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/midgard-sky/internal/engine/gfx"
	"github.com/Faultbox/midgard-sky/internal/world"
)

// Config holds all client settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Textures    TexturesConfig    `yaml:"textures"`
	Environment EnvironmentConfig `yaml:"environment"`
	Camera      CameraConfig      `yaml:"camera"`
	Debug       DebugConfig       `yaml:"debug"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"` // degrees
	MinimalEnv bool    `yaml:"minimal_env"`
}

// TexturesConfig selects the texture pack.
type TexturesConfig struct {
	Pack           string `yaml:"pack"` // directory or .zip
	Watch          bool   `yaml:"watch"`
	GenerateSkybox bool   `yaml:"generate_skybox"`
	Seed           int64  `yaml:"seed"`
}

// EnvironmentConfig holds the initial environment colours and the presets
// cycled through as new maps.
type EnvironmentConfig struct {
	SkyCol    string         `yaml:"sky_color"`
	CloudsCol string         `yaml:"clouds_color"`
	FogCol    string         `yaml:"fog_color"`
	Presets   []world.Preset `yaml:"presets"`
}

// CameraConfig holds camera settings.
type CameraConfig struct {
	Mode        string  `yaml:"mode"` // first_person or third_person
	Sensitivity float32 `yaml:"sensitivity"`
}

// DebugConfig holds debugging aids.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			FOV:    70,
		},
		Textures: TexturesConfig{
			Pack:           "texpacks/default",
			Watch:          true,
			GenerateSkybox: true,
			Seed:           1,
		},
		Environment: EnvironmentConfig{
			SkyCol:    world.DefaultSkyCol.Hex(),
			CloudsCol: world.DefaultCloudsCol.Hex(),
			FogCol:    world.DefaultFogCol.Hex(),
			Presets: []world.Preset{
				{Name: "dusk", SkyCol: "#FF9966", CloudsCol: "#FFCC99", FogCol: "#CC8866"},
				{Name: "overcast", SkyCol: "#8C96A0", CloudsCol: "#B4B4B4", FogCol: "#A0A0A0"},
				{Name: "night", SkyCol: "#0A0A28", CloudsCol: "#3C3C50", FogCol: "#141430"},
			},
		},
		Camera: CameraConfig{
			Mode:        "first_person",
			Sensitivity: 0.003,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the settings. Window, fov and camera problems are reported
// on their own; all colour and preset errors are aggregated into one error.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		return fmt.Errorf("invalid fov %v", c.Graphics.FOV)
	}
	switch c.Camera.Mode {
	case "first_person", "third_person":
	default:
		return fmt.Errorf("unknown camera mode %q", c.Camera.Mode)
	}

	var err error
	colours := []struct{ name, hex string }{
		{"sky_color", c.Environment.SkyCol},
		{"clouds_color", c.Environment.CloudsCol},
		{"fog_color", c.Environment.FogCol},
	}
	for _, col := range colours {
		if _, perr := gfx.ParseHex(col.hex); perr != nil {
			err = multierr.Append(err, fmt.Errorf("environment.%s: %w", col.name, perr))
		}
	}
	for _, p := range c.Environment.Presets {
		if perr := p.Validate(); perr != nil {
			err = multierr.Append(err, fmt.Errorf("preset %q: %w", p.Name, perr))
		}
	}
	return err
}

// InitialPreset returns the environment section as a preset.
func (c *Config) InitialPreset() world.Preset {
	return world.Preset{
		Name:      "default",
		SkyCol:    c.Environment.SkyCol,
		CloudsCol: c.Environment.CloudsCol,
		FogCol:    c.Environment.FogCol,
	}
}

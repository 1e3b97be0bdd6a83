// Package config handles globe viewer configuration loading and management.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Globe    GlobeConfig    `yaml:"globe"`
	Light    LightConfig    `yaml:"light"`
	Assets   AssetsConfig   `yaml:"assets"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	HighDPI    bool       `yaml:"high_dpi"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds perspective and orbit control settings.
type CameraConfig struct {
	FOV           float32    `yaml:"fov"` // Vertical field of view, degrees
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Position      [3]float32 `yaml:"position"`
	DampingFactor float32    `yaml:"damping_factor"`
	RotateSpeed   float32    `yaml:"rotate_speed"`
	ZoomSpeed     float32    `yaml:"zoom_speed"`
	MinDistance   float32    `yaml:"min_distance"`
	MaxDistance   float32    `yaml:"max_distance"`
}

// GlobeConfig holds globe and atmosphere geometry settings.
type GlobeConfig struct {
	Radius            float32    `yaml:"radius"`
	WidthSegments     int        `yaml:"width_segments"`
	HeightSegments    int        `yaml:"height_segments"`
	RotationRate      float32    `yaml:"rotation_rate"` // Radians per second about Y
	AtmosphereScale   float32    `yaml:"atmosphere_scale"`
	AtmosphereColor   string     `yaml:"atmosphere_color"` // #rrggbb
	AtmosphereOpacity float32    `yaml:"atmosphere_opacity"`
	Orientation       [2]float32 `yaml:"orientation"` // Fixed X and Y offsets, radians
}

// LightConfig holds the shader light direction and scene sun settings.
type LightConfig struct {
	Direction     [3]float32 `yaml:"direction"`
	SunPosition   [3]float32 `yaml:"sun_position"`
	SunIntensity  float32    `yaml:"sun_intensity"`
	SunColor      string     `yaml:"sun_color"`
	FollowSun     bool       `yaml:"follow_sun"` // Drive the sun from the shader direction
	SliderStep    float32    `yaml:"slider_step"`
	SliderMinimum float32    `yaml:"slider_min"`
	SliderMaximum float32    `yaml:"slider_max"`
}

// AssetsConfig holds texture file locations.
type AssetsConfig struct {
	Root           string `yaml:"root"`
	Day            string `yaml:"day"`
	Night          string `yaml:"night"`
	Bump           string `yaml:"bump"`
	MaxTextureSize int    `yaml:"max_texture_size"` // 0 = use the GL limit
	DecodeWorkers  int    `yaml:"decode_workers"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	Panel         bool   `yaml:"panel"`
	ShaderDir     string `yaml:"shader_dir"` // Load and watch GLSL from disk when set
	ErrorDialog   bool   `yaml:"error_dialog"`
	ScreenshotDir string `yaml:"screenshot_dir"` // F12 writes PNG screenshots here
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with the values of the reference scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			HighDPI:    true,
			ClearColor: [3]float32{0, 0, 0},
		},
		Camera: CameraConfig{
			FOV:           25,
			Near:          0.1,
			Far:           100,
			Position:      [3]float32{4.5, 2, 3},
			DampingFactor: 0.05,
			RotateSpeed:   1,
			ZoomSpeed:     1,
			MinDistance:   1.2,
			MaxDistance:   50,
		},
		Globe: GlobeConfig{
			Radius:            1,
			WidthSegments:     64,
			HeightSegments:    64,
			RotationRate:      0.025,
			AtmosphereScale:   1.04,
			AtmosphereColor:   "#4db2ff",
			AtmosphereOpacity: 0.2,
			Orientation:       [2]float32{math.Pi, math.Pi},
		},
		Light: LightConfig{
			Direction:     [3]float32{0, 0, 1},
			SunPosition:   [3]float32{0, 0, 3},
			SunIntensity:  2,
			SunColor:      "#ffffff",
			FollowSun:     false,
			SliderStep:    0.01,
			SliderMinimum: -1,
			SliderMaximum: 1,
		},
		Assets: AssetsConfig{
			Root:           ".",
			Day:            "textures/earth_day_4096.jpg",
			Night:          "textures/earth_night_4096.jpg",
			Bump:           "textures/earth_bump_roughness_clouds_4096.jpg",
			MaxTextureSize: 0,
			DecodeWorkers:  3,
		},
		Debug: DebugConfig{
			Panel:         true,
			ShaderDir:     "",
			ErrorDialog:   true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports the first setting that cannot produce a usable scene.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %.2f out of (0, 180)", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("%w: clip planes near=%.3f far=%.3f", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.DampingFactor <= 0 || c.Camera.DampingFactor > 1:
		return fmt.Errorf("%w: damping factor %.3f out of (0, 1]", ErrInvalid, c.Camera.DampingFactor)
	case c.Camera.MinDistance <= 0 || c.Camera.MinDistance > c.Camera.MaxDistance:
		return fmt.Errorf("%w: distance range [%.2f, %.2f]", ErrInvalid, c.Camera.MinDistance, c.Camera.MaxDistance)
	case c.Globe.Radius <= 0:
		return fmt.Errorf("%w: globe radius %.3f", ErrInvalid, c.Globe.Radius)
	case c.Globe.WidthSegments < 3 || c.Globe.HeightSegments < 2:
		return fmt.Errorf("%w: sphere segments %dx%d", ErrInvalid, c.Globe.WidthSegments, c.Globe.HeightSegments)
	case c.Globe.AtmosphereScale <= 0:
		return fmt.Errorf("%w: atmosphere scale %.3f", ErrInvalid, c.Globe.AtmosphereScale)
	case c.Globe.AtmosphereOpacity < 0 || c.Globe.AtmosphereOpacity > 1:
		return fmt.Errorf("%w: atmosphere opacity %.3f", ErrInvalid, c.Globe.AtmosphereOpacity)
	case c.Light.SliderMinimum >= c.Light.SliderMaximum || c.Light.SliderStep <= 0:
		return fmt.Errorf("%w: slider range [%.2f, %.2f] step %.3f", ErrInvalid,
			c.Light.SliderMinimum, c.Light.SliderMaximum, c.Light.SliderStep)
	case c.Assets.Day == "" || c.Assets.Night == "":
		return fmt.Errorf("%w: day and night textures are required", ErrInvalid)
	case c.Assets.MaxTextureSize < 0:
		return fmt.Errorf("%w: max texture size %d", ErrInvalid, c.Assets.MaxTextureSize)
	}

	if _, err := ParseHexColor(c.Globe.AtmosphereColor); err != nil {
		return fmt.Errorf("%w: atmosphere color: %v", ErrInvalid, err)
	}
	if _, err := ParseHexColor(c.Light.SunColor); err != nil {
		return fmt.Errorf("%w: sun color: %v", ErrInvalid, err)
	}
	return nil
}

// ParseHexColor converts "#rrggbb" into linear 0..1 RGB components.
func ParseHexColor(s string) ([3]float32, error) {
	if len(s) != 7 || s[0] != '#' {
		return [3]float32{}, fmt.Errorf("color %q is not #rrggbb", s)
	}
	rgb, err := hex.DecodeString(s[1:])
	if err != nil {
		return [3]float32{}, fmt.Errorf("color %q: %w", s, err)
	}
	return [3]float32{float32(rgb[0]) / 255, float32(rgb[1]) / 255, float32(rgb[2]) / 255}, nil
}

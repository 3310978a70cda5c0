package gllab

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Lab names accepted by Config.Lab.
const (
	LabPrimitives = "primitives"
	LabTransform  = "transform"
	LabObjects    = "objects"
	LabFilter     = "filter"
	LabTexture    = "texture"
	LabPhong      = "phong"
)

// LabNames lists the labs in course order.
var LabNames = []string{LabPrimitives, LabTransform, LabObjects, LabFilter, LabTexture, LabPhong}

// Mipmap modes accepted by TextureConfig.Mipmaps.
const (
	MipmapNone     = "none"
	MipmapGenerate = "generate"
	MipmapUpload   = "upload"
)

// Config holds the settings of the lab runner. Load it with LoadConfig or
// start from DefaultConfig.
type Config struct {
	Lab          string           `yaml:"lab" toml:"lab"`
	Window       WindowConfig     `yaml:"window" toml:"window"`
	ShaderDir    string           `yaml:"shader_dir" toml:"shader_dir"` // empty uses the embedded shaders
	WatchShaders bool             `yaml:"watch_shaders" toml:"watch_shaders"`
	ModelPath    string           `yaml:"model_path" toml:"model_path"`
	Camera       CameraConfig     `yaml:"camera" toml:"camera"`
	Projection   ProjectionConfig `yaml:"projection" toml:"projection"`
	Texture      TextureConfig    `yaml:"texture" toml:"texture"`
	LogLevel     string           `yaml:"log_level" toml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
	VSync  bool   `yaml:"vsync" toml:"vsync"`
}

type CameraConfig struct {
	Position    [3]float32 `yaml:"position" toml:"position"`
	Yaw         float32    `yaml:"yaw" toml:"yaw"`
	Pitch       float32    `yaml:"pitch" toml:"pitch"`
	Speed       float32    `yaml:"speed" toml:"speed"`
	Sensitivity float32    `yaml:"sensitivity" toml:"sensitivity"`
}

type ProjectionConfig struct {
	FovY float32 `yaml:"fov_y" toml:"fov_y"` // degrees
	Near float32 `yaml:"near" toml:"near"`
	Far  float32 `yaml:"far" toml:"far"`
}

type TextureConfig struct {
	Size    int    `yaml:"size" toml:"size"`
	Pattern string `yaml:"pattern" toml:"pattern"` // filter lab source image
	Mipmaps string `yaml:"mipmaps" toml:"mipmaps"`
}

// DefaultConfig returns the settings the labs use when no file is given.
func DefaultConfig() Config {
	return Config{
		Lab: LabPrimitives,
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "gllab",
			VSync:  true,
		},
		ModelPath: "model.obj",
		Camera: CameraConfig{
			Position:    [3]float32{0, 2, 5},
			Yaw:         -90,
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Projection: ProjectionConfig{FovY: 45, Near: 0.1, Far: 100},
		Texture:    TextureConfig{Size: 512, Pattern: TestStripes.String(), Mipmaps: MipmapGenerate},
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file over
// DefaultConfig, expands ~ in paths and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.expandPaths(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.ShaderDir, &c.ModelPath} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	known := false
	for _, name := range LabNames {
		if c.Lab == name {
			known = true
		}
	}
	if !known {
		errs = append(errs, fmt.Errorf("unknown lab %q (want one of %s)", c.Lab, strings.Join(LabNames, ", ")))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := c.ProjectionMatrix(1); err != nil {
		errs = append(errs, fmt.Errorf("projection: %w", err))
	}
	if c.Texture.Size <= 0 {
		errs = append(errs, fmt.Errorf("texture size %d", c.Texture.Size))
	}
	if _, err := ParsePattern(c.Texture.Pattern); err != nil {
		errs = append(errs, err)
	}
	switch c.Texture.Mipmaps {
	case MipmapNone, MipmapGenerate, MipmapUpload:
	default:
		errs = append(errs, fmt.Errorf("unknown mipmap mode %q", c.Texture.Mipmaps))
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// ProjectionMatrix returns the configured perspective projection for the
// given aspect ratio.
func (c Config) ProjectionMatrix(aspect float32) (Mat4, error) {
	return Perspective(Radians(c.Projection.FovY), aspect, c.Projection.Near, c.Projection.Far)
}

// NewCamera returns a camera placed as configured.
func (c Config) NewCamera() *FlyCamera {
	cam := NewFlyCamera(Vec3(c.Camera.Position))
	cam.Yaw = c.Camera.Yaw
	cam.Pitch = c.Camera.Pitch
	cam.Speed = c.Camera.Speed
	cam.Sensitivity = c.Camera.Sensitivity
	return cam
}

// NewSceneState returns the initial scene for the configured camera,
// texture pattern and mipmap mode.
func (c Config) NewSceneState() *SceneState {
	s := NewSceneState(Vec3(c.Camera.Position))
	s.Camera = c.NewCamera()
	s.Pattern = c.TexturePattern()
	s.Mipmaps = c.Texture.Mipmaps != MipmapNone
	return s
}

// TexturePattern returns the filter lab's source pattern, defaulting to
// TestStripes.
func (c Config) TexturePattern() Pattern {
	p, err := ParsePattern(c.Texture.Pattern)
	if err != nil {
		return TestStripes
	}
	return p
}

package gllab_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gllab"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := gllab.DefaultConfig()
	require.NoError(t, cfg.Validate())

	proj, err := cfg.ProjectionMatrix(4.0 / 3.0)
	require.NoError(t, err)
	assert.InDelta(t, -1, proj.TransformPoint(gllab.Vec3{0, 0, -cfg.Projection.Near})[2], eps)

	assert.Equal(t, gllab.TestStripes, cfg.TexturePattern())
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "lab.yaml", `
lab: phong
window:
  width: 1280
  title: Phong
camera:
  position: [1, 2, 3]
  speed: 5
texture:
  pattern: brick
  mipmaps: upload
log_level: debug
`)
	cfg, err := gllab.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, gllab.LabPhong, cfg.Lab)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset fields keep their defaults")
	assert.Equal(t, "Phong", cfg.Window.Title)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, gllab.Brick, cfg.TexturePattern())
	assert.Equal(t, gllab.MipmapUpload, cfg.Texture.Mipmaps)

	cam := cfg.NewCamera()
	assert.Equal(t, gllab.Vec3{1, 2, 3}, cam.Position)
	assert.Equal(t, float32(5), cam.Speed)
	assert.Equal(t, float32(-90), cam.Yaw)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "lab.toml", `
lab = "filter"
shader_dir = "~/shaders"

[projection]
fov_y = 60.0
far = 50.0

[texture]
pattern = "stripes"
`)
	cfg, err := gllab.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, gllab.LabFilter, cfg.Lab)
	assert.Equal(t, float32(60), cfg.Projection.FovY)
	assert.Equal(t, float32(50), cfg.Projection.Far)
	assert.Equal(t, float32(0.1), cfg.Projection.Near)
	assert.Equal(t, gllab.TestStripes, cfg.TexturePattern())

	assert.False(t, strings.HasPrefix(cfg.ShaderDir, "~"), "home directory is expanded")
	assert.True(t, strings.HasSuffix(cfg.ShaderDir, "shaders"))
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"unknown extension", "lab.ini", "lab=phong", "unsupported extension"},
		{"bad yaml", "lab.yaml", "window: [", "parse config"},
		{"bad toml", "lab.toml", "lab = ", "parse config"},
		{"unknown lab", "lab.yaml", "lab: raytracer", `unknown lab "raytracer"`},
		{"bad frustum", "lab.toml", "[projection]\nnear = 10.0\nfar = 1.0", "invalid frustum"},
		{"bad mipmaps", "lab.yaml", "texture:\n  mipmaps: sometimes", "mipmap mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gllab.LoadConfig(writeConfig(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := gllab.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := gllab.DefaultConfig()
	cfg.Window.Width = 0
	cfg.Texture.Size = -1
	cfg.Texture.Pattern = "plaid"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"window size", "texture size", "plaid", "log level"} {
		assert.Contains(t, err.Error(), want)
	}
	assert.Equal(t, gllab.TestStripes, cfg.TexturePattern(), "unknown pattern falls back")
}

func TestConfigNewSceneState(t *testing.T) {
	cfg := gllab.DefaultConfig()
	cfg.Camera.Position = [3]float32{4, 5, 6}
	cfg.Camera.Pitch = 10
	cfg.Texture.Pattern = "dots"
	cfg.Texture.Mipmaps = gllab.MipmapNone

	s := cfg.NewSceneState()
	assert.Equal(t, gllab.Vec3{4, 5, 6}, s.Camera.Position)
	assert.Equal(t, float32(10), s.Camera.Pitch)
	assert.Equal(t, gllab.Dots, s.Pattern)
	assert.False(t, s.Mipmaps)
	assert.Equal(t, gllab.PrimitiveTriangle, s.Primitive)
}

// Command example runs the OpenGL labs.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                          # Go + OpenGL/X11 headers
//	go run ./example/ -lab phong          # run one lab
//	go run ./example/ -config lab.yaml    # or configure it from a file
//
// Labs: primitives, transform, objects, filter, texture, phong. The shaders
// are embedded; set shader_dir (or -shaders) to load them from disk and
// watch_shaders to rebuild them on save.
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gllab"
	"github.com/go-theft-auto/gllab/backend/opengl"
)

//go:embed shaders
var embeddedShaders embed.FS

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML or TOML config file")
	labName := flag.String("lab", "", "lab to run (overrides the config)")
	shaderDir := flag.String("shaders", "", "load shaders from this directory")
	modelPath := flag.String("model", "", "OBJ file for the phong lab")
	screenshot := flag.String("screenshot", "", "render a few frames, save a PNG here and exit")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := gllab.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = gllab.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *labName != "" {
		cfg.Lab = *labName
	}
	if *shaderDir != "" {
		cfg.ShaderDir = *shaderDir
	}
	if *modelPath != "" {
		cfg.ModelPath = *modelPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gllab.SetLogLevel(cfg.LogLevel)
	if *verbose {
		gllab.SetVerbose(true)
	}
	logger := gllab.Logger().With("lab", cfg.Lab)

	shaders, err := shaderFS(cfg)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if *screenshot != "" {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	current, err := newLab(labEnv{cfg: cfg, shaders: shaders, logger: logger})
	if err != nil {
		return fmt.Errorf("%s lab: %w", cfg.Lab, err)
	}
	defer current.Delete()

	var reloads <-chan string
	if cfg.WatchShaders && cfg.ShaderDir != "" {
		watcher, err := opengl.NewShaderWatcher(cfg.ShaderDir, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go watcher.Run(ctx)
		reloads = watcher.Changes()
	}

	input := opengl.NewGLFWInputAdapter(window)
	scene := cfg.NewSceneState()
	scene.MouseLook = current.MouseLook()
	input.SetMouseLook(scene.MouseLook)

	frames := 0
	last := glfw.GetTime()
	for !window.ShouldClose() && !scene.Quit {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		input.BeginFrame()
		glfw.PollEvents()
		scene.Update(input.EndFrame(dt), dt)
		if scene.Changed && scene.ShowInfo {
			logInfo(logger, scene)
		}

		select {
		case name := <-reloads:
			if err := current.Reload(shaders); err != nil {
				logger.Error("shader reload failed, keeping previous programs", "file", name, "error", err)
			} else {
				logger.Info("shaders reloaded", "file", name)
			}
		default:
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.1, 0.1, 0.15, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		// A minimized window has an empty framebuffer.
		if w > 0 && h > 0 {
			aspect := float32(w) / float32(h)
			proj, err := cfg.ProjectionMatrix(aspect)
			if err != nil {
				return err
			}
			if err := current.Draw(scene, frame{proj: proj, aspect: aspect}); err != nil {
				return fmt.Errorf("%s lab: %w", cfg.Lab, err)
			}
		}

		frames++
		if *screenshot != "" && frames == 3 {
			return saveFramebuffer(*screenshot, w, h)
		}
		window.SwapBuffers()
	}

	return nil
}

// shaderFS returns the shader directory from the config, or the embedded
// shaders when none is set.
func shaderFS(cfg gllab.Config) (fs.FS, error) {
	if cfg.ShaderDir != "" {
		return os.DirFS(cfg.ShaderDir), nil
	}
	sub, err := fs.Sub(embeddedShaders, "shaders")
	if err != nil {
		return nil, fmt.Errorf("embedded shaders: %w", err)
	}
	return sub, nil
}

func logInfo(logger *slog.Logger, s *gllab.SceneState) {
	logger.Info("scene",
		"primitive", s.Primitive,
		"filter", s.Filter,
		"direction", s.Direction,
		"mipmaps", s.Mipmaps,
		"camera", s.Camera.Position,
	)
}

// saveFramebuffer reads back the current framebuffer and writes it as PNG.
func saveFramebuffer(path string, w, h int) error {
	img := opengl.ReadFramebuffer(w, h)
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save screenshot: %w", err)
	}
	return nil
}

// Package opengl provides the OpenGL 4.1 backend for the gllab package:
// shader programs, meshes, textures, GLFW input and shader reloading.
//
// Everything except ShaderWatcher and ShaderError requires a current GL
// context on the calling goroutine.
package opengl

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
)

// ShaderStage identifies where a program build failed.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageLink
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	default:
		return fmt.Sprintf("ShaderStage(%d)", int(s))
	}
}

// ShaderError is returned when a shader fails to compile or a program fails
// to link. Log holds the driver's info log.
type ShaderError struct {
	Stage ShaderStage
	Name  string // source name, if known
	Log   string
}

func (e *ShaderError) Error() string {
	log := strings.TrimRight(e.Log, "\x00\n ")
	if e.Name != "" {
		return fmt.Sprintf("%s shader %s failed: %s", e.Stage, e.Name, log)
	}
	if e.Stage == StageLink {
		return fmt.Sprintf("shader program linking failed: %s", log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, log)
}

// Program is a linked shader program with cached uniform locations.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a vertex/fragment shader pair. Sources do
// not need a trailing NUL. Failures are returned as *ShaderError.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fsh, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fsh)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fsh)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(id, logLength, nil, &log[0])
		gl.DeleteProgram(id)
		return nil, &ShaderError{Stage: StageLink, Log: string(log)}
	}

	// The shaders are linked into the program now.
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fsh)

	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

// LoadProgram reads a shader pair from fsys and builds it with NewProgram.
// Compile errors carry the file name.
func LoadProgram(fsys fs.FS, vertexPath, fragmentPath string) (*Program, error) {
	vsrc, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read shader: %w", err)
	}
	fsrc, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read shader: %w", err)
	}

	p, err := NewProgram(string(vsrc), string(fsrc))
	var serr *ShaderError
	if errors.As(err, &serr) {
		switch serr.Stage {
		case StageVertex:
			serr.Name = vertexPath
		case StageFragment:
			serr.Name = fragmentPath
		default:
			serr.Name = vertexPath + "+" + fragmentPath
		}
	}
	return p, err
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)

		stage := StageVertex
		if kind == gl.FRAGMENT_SHADER {
			stage = StageFragment
		}
		return 0, &ShaderError{Stage: stage, Log: string(log)}
	}
	return shader, nil
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// location returns the cached location of a uniform, -1 if the program has
// no active uniform by that name. Setting location -1 is a no-op in GL.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a row-major matrix, transposing it on upload.
func (p *Program) SetMat4(name string, m gllab.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, true, &m[0])
}

func (p *Program) SetVec2(name string, x, y float32) {
	gl.Uniform2f(p.location(name), x, y)
}

func (p *Program) SetVec3(name string, v gllab.Vec3) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetFloats uploads a float array uniform such as uniform float uKernel[5].
func (p *Program) SetFloats(name string, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1fv(p.location(name), int32(len(v)), &v[0])
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

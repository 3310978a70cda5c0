package main

import (
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
	"github.com/go-theft-auto/gllab/backend/opengl"
)

// filterLab runs a 1D convolution over a procedural image in a fragment
// shader. 1-4 pick the filter, Space flips its direction.
type filterLab struct {
	progs  *programSet
	meshes meshSet
	quad   *opengl.Mesh
	image  *opengl.Texture
}

func newFilterLab(env labEnv) (lab, error) {
	progs, err := newProgramSet(env.shaders, map[string]shaderPair{
		"filter": {"filter.vert", "filter.frag"},
	})
	if err != nil {
		return nil, err
	}
	l := &filterLab{progs: progs}
	if l.quad, err = l.meshes.add(gllab.FullscreenQuad()); err != nil {
		l.Delete()
		return nil, err
	}

	size := env.cfg.Texture.Size
	src := gllab.Generate(env.cfg.TexturePattern(), size, size)
	// Clamped like gllab.Apply, so both agree at the border.
	l.image = opengl.NewTexture(src, opengl.TextureOptions{Clamp: true})
	return l, nil
}

func (l *filterLab) MouseLook() bool { return false }

func (l *filterLab) Reload(fsys fs.FS) error { return l.progs.reload(fsys) }

func (l *filterLab) Draw(s *gllab.SceneState, _ frame) error {
	gl.Disable(gl.DEPTH_TEST)

	w, h := l.image.Size()
	stepX, stepY := 1/float32(w), float32(0)
	if s.Direction == gllab.Vertical {
		stepX, stepY = 0, 1/float32(h)
	}

	prog := l.progs.get("filter")
	prog.Use()
	l.image.Bind(0)
	prog.SetInt("uImage", 0)
	prog.SetFloats("uKernel", gllab.Kernel(s.Filter))
	prog.SetVec2("uStep", stepX, stepY)
	prog.SetFloat("uBias", gllab.Bias(s.Filter)/255)
	l.quad.Draw()
	return nil
}

func (l *filterLab) Delete() {
	if l.image != nil {
		l.image.Delete()
	}
	l.meshes.delete()
	l.progs.delete()
}

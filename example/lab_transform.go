package main

import (
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
	"github.com/go-theft-auto/gllab/backend/opengl"
)

// transformLab moves and rotates a cube from the keyboard in front of a
// fixed camera.
type transformLab struct {
	progs  *programSet
	meshes meshSet
	cube   *opengl.Mesh
	view   gllab.Mat4
}

func newTransformLab(env labEnv) (lab, error) {
	progs, err := newProgramSet(env.shaders, map[string]shaderPair{
		"color": {"color.vert", "color.frag"},
	})
	if err != nil {
		return nil, err
	}
	l := &transformLab{progs: progs}
	if l.view, err = gllab.TransformView(); err != nil {
		l.Delete()
		return nil, err
	}
	if l.cube, err = l.meshes.add(gllab.ColorCube()); err != nil {
		l.Delete()
		return nil, err
	}
	return l, nil
}

func (l *transformLab) MouseLook() bool { return false }

func (l *transformLab) Reload(fsys fs.FS) error { return l.progs.reload(fsys) }

func (l *transformLab) Draw(s *gllab.SceneState, fr frame) error {
	gl.Enable(gl.DEPTH_TEST)

	prog := l.progs.get("color")
	prog.Use()
	prog.SetMat4("uMVP", gllab.Compose(fr.proj, l.view, s.Model.Matrix()))
	l.cube.Draw()
	return nil
}

func (l *transformLab) Delete() {
	l.meshes.delete()
	l.progs.delete()
}

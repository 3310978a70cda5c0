package main

import (
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
	"github.com/go-theft-auto/gllab/backend/opengl"
)

// primitivesLab draws a triangle, a square or a spinning cube, picked with 1-3.
type primitivesLab struct {
	progs  *programSet
	meshes meshSet
	shapes map[gllab.Primitive]*opengl.Mesh
	view   gllab.Mat4
}

func newPrimitivesLab(env labEnv) (lab, error) {
	progs, err := newProgramSet(env.shaders, map[string]shaderPair{
		"color": {"color.vert", "color.frag"},
	})
	if err != nil {
		return nil, err
	}
	l := &primitivesLab{progs: progs, shapes: make(map[gllab.Primitive]*opengl.Mesh)}

	for prim, b := range map[gllab.Primitive]gllab.VertexBuffer{
		gllab.PrimitiveTriangle: gllab.Triangle(),
		gllab.PrimitiveSquare:   gllab.Square(),
		gllab.PrimitiveCube:     gllab.ColorCube(),
	} {
		m, err := l.meshes.add(b)
		if err != nil {
			l.Delete()
			return nil, err
		}
		l.shapes[prim] = m
	}

	l.view, err = gllab.LookAt(gllab.Vec3{0, 0, 3}, gllab.Vec3{}, gllab.Vec3{0, 1, 0})
	if err != nil {
		l.Delete()
		return nil, err
	}
	return l, nil
}

func (l *primitivesLab) MouseLook() bool { return false }

func (l *primitivesLab) Reload(fsys fs.FS) error { return l.progs.reload(fsys) }

func (l *primitivesLab) Draw(s *gllab.SceneState, fr frame) error {
	// Flat shapes keep their proportions through an aspect-corrected ortho.
	mvp, err := gllab.Ortho(-fr.aspect, fr.aspect, -1, 1, -1, 1)
	if err != nil {
		return err
	}
	if s.Primitive == gllab.PrimitiveCube {
		gl.Enable(gl.DEPTH_TEST)
		spin, err := gllab.RotationAxisAngle(gllab.Vec3{1, 1, 0}, s.Elapsed)
		if err != nil {
			return err
		}
		mvp = gllab.Compose(fr.proj, l.view, spin)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	prog := l.progs.get("color")
	prog.Use()
	prog.SetMat4("uMVP", mvp)
	l.shapes[s.Primitive].Draw()
	return nil
}

func (l *primitivesLab) Delete() {
	l.meshes.delete()
	l.progs.delete()
}

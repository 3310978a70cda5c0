package main

import (
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
	"github.com/go-theft-auto/gllab/backend/opengl"
)

// sceneObject is one spinning cube of the objects lab.
type sceneObject struct {
	position gllab.Vec3
	axis     gllab.Vec3
	speed    float32 // degrees per second
}

var sceneObjects = []sceneObject{
	{gllab.Vec3{0, 0, 0}, gllab.Vec3{1, 1, 0}, 30},
	{gllab.Vec3{2, 0.5, -1}, gllab.Vec3{0, 1, 1}, 36},
	{gllab.Vec3{-2, -0.5, -1.5}, gllab.Vec3{1, 0, 1}, 42},
	{gllab.Vec3{0, 2, -2}, gllab.Vec3{1, 1, 1}, 48},
	{gllab.Vec3{1.5, -1.5, -0.5}, gllab.Vec3{0, 1, 0}, 54},
}

// objectsLab draws several shaded cubes sharing one mesh, viewed through the
// fly camera.
type objectsLab struct {
	progs  *programSet
	meshes meshSet
	cube   *opengl.Mesh
}

func newObjectsLab(env labEnv) (lab, error) {
	progs, err := newProgramSet(env.shaders, map[string]shaderPair{
		"shaded": {"shaded.vert", "shaded.frag"},
	})
	if err != nil {
		return nil, err
	}
	l := &objectsLab{progs: progs}
	if l.cube, err = l.meshes.add(gllab.ShadedCube()); err != nil {
		l.Delete()
		return nil, err
	}
	return l, nil
}

func (l *objectsLab) MouseLook() bool { return true }

func (l *objectsLab) Reload(fsys fs.FS) error { return l.progs.reload(fsys) }

func (l *objectsLab) Draw(s *gllab.SceneState, fr frame) error {
	view, err := s.Camera.ViewMatrix()
	if err != nil {
		return err
	}
	gl.Enable(gl.DEPTH_TEST)

	prog := l.progs.get("shaded")
	prog.Use()
	prog.SetMat4("uViewProj", gllab.Compose(fr.proj, view))
	prog.SetVec3("uLightDir", gllab.Vec3{-0.3, -1, -0.5})

	for _, obj := range sceneObjects {
		rot, err := gllab.RotationAxisAngle(obj.axis, gllab.Radians(obj.speed*s.Elapsed))
		if err != nil {
			return err
		}
		prog.SetMat4("uModel", gllab.Compose(gllab.Translation(obj.position), rot))
		l.cube.Draw()
	}
	return nil
}

func (l *objectsLab) Delete() {
	l.meshes.delete()
	l.progs.delete()
}

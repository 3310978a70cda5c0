package main

import (
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
	"github.com/go-theft-auto/gllab/backend/opengl"
)

// Phong material and light of the model lab.
var (
	lightPos         = gllab.Vec3{5, 5, 5}
	lightColor       = gllab.Vec3{1, 1, 1}
	objectColor      = gllab.Vec3{0.8, 0.3, 0.3}
	ambientStrength  = float32(0.2)
	specularStrength = float32(0.5)
	shininess        = float32(32)
	modelSpinDegPerS = float32(20)
)

// phongLab draws an OBJ model, or the default cube when the file cannot be
// read, with per-fragment Phong lighting.
type phongLab struct {
	progs *programSet
	mesh  *opengl.Mesh
}

func newPhongLab(env labEnv) (lab, error) {
	model, err := gllab.LoadOBJ(env.cfg.ModelPath, gllab.WithTriangulation(), gllab.WithLogger(env.logger))
	if err != nil {
		return nil, err
	}
	env.logger.Info("model ready", "path", env.cfg.ModelPath, "vertices", model.VertexCount(), "fallback", model.Fallback)

	progs, err := newProgramSet(env.shaders, map[string]shaderPair{
		"phong": {"phong.vert", "phong.frag"},
	})
	if err != nil {
		return nil, err
	}
	mesh, err := opengl.NewModelMesh(model)
	if err != nil {
		progs.delete()
		return nil, err
	}
	return &phongLab{progs: progs, mesh: mesh}, nil
}

func (l *phongLab) MouseLook() bool { return true }

func (l *phongLab) Reload(fsys fs.FS) error { return l.progs.reload(fsys) }

func (l *phongLab) Draw(s *gllab.SceneState, fr frame) error {
	view, err := s.Camera.ViewMatrix()
	if err != nil {
		return err
	}
	model, err := gllab.RotationAxisAngle(gllab.Vec3{0, 1, 0}, gllab.Radians(modelSpinDegPerS*s.Elapsed))
	if err != nil {
		return err
	}
	gl.Enable(gl.DEPTH_TEST)

	prog := l.progs.get("phong")
	prog.Use()
	prog.SetMat4("uModel", model)
	prog.SetMat4("uView", view)
	prog.SetMat4("uProjection", fr.proj)
	prog.SetVec3("uLightPos", lightPos)
	prog.SetVec3("uViewPos", s.Camera.Position)
	prog.SetVec3("uLightColor", lightColor)
	prog.SetVec3("uObjectColor", objectColor)
	prog.SetFloat("uAmbientStrength", ambientStrength)
	prog.SetFloat("uSpecularStrength", specularStrength)
	prog.SetFloat("uShininess", shininess)
	l.mesh.Draw()
	return nil
}

func (l *phongLab) Delete() {
	l.mesh.Delete()
	l.progs.delete()
}

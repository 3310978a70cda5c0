package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-theft-auto/gllab"
	"github.com/go-theft-auto/gllab/backend/opengl"
)

// lab is one of the runnable demos. All methods run on the GL thread.
type lab interface {
	// MouseLook reports whether the lab is driven by the fly camera.
	MouseLook() bool
	// Reload rebuilds the lab's shader programs from fsys. On error the
	// previous programs stay in use.
	Reload(fsys fs.FS) error
	Draw(s *gllab.SceneState, fr frame) error
	Delete()
}

// frame carries the per-frame projection and the framebuffer aspect ratio.
type frame struct {
	proj   gllab.Mat4
	aspect float32
}

// labEnv is what every lab constructor gets.
type labEnv struct {
	cfg     gllab.Config
	shaders fs.FS
	logger  *slog.Logger
}

func newLab(env labEnv) (lab, error) {
	switch env.cfg.Lab {
	case gllab.LabPrimitives:
		return newPrimitivesLab(env)
	case gllab.LabTransform:
		return newTransformLab(env)
	case gllab.LabObjects:
		return newObjectsLab(env)
	case gllab.LabFilter:
		return newFilterLab(env)
	case gllab.LabTexture:
		return newTextureLab(env)
	case gllab.LabPhong:
		return newPhongLab(env)
	default:
		return nil, fmt.Errorf("unknown lab %q", env.cfg.Lab)
	}
}

type shaderPair struct {
	vert, frag string
}

// programSet holds named programs that are rebuilt together on reload.
type programSet struct {
	pairs map[string]shaderPair
	progs map[string]*opengl.Program
}

func newProgramSet(fsys fs.FS, pairs map[string]shaderPair) (*programSet, error) {
	ps := &programSet{pairs: pairs, progs: make(map[string]*opengl.Program)}
	if err := ps.reload(fsys); err != nil {
		return nil, err
	}
	return ps, nil
}

// reload builds every program and swaps them in only if all succeed.
func (ps *programSet) reload(fsys fs.FS) error {
	built := make(map[string]*opengl.Program, len(ps.pairs))
	var errs []error
	for name, pair := range ps.pairs {
		p, err := opengl.LoadProgram(fsys, pair.vert, pair.frag)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		built[name] = p
	}
	if err := errors.Join(errs...); err != nil {
		for _, p := range built {
			p.Delete()
		}
		return err
	}

	ps.delete()
	ps.progs = built
	return nil
}

func (ps *programSet) get(name string) *opengl.Program {
	return ps.progs[name]
}

func (ps *programSet) delete() {
	for _, p := range ps.progs {
		p.Delete()
	}
	ps.progs = nil
}

// meshSet deletes a group of meshes together.
type meshSet []*opengl.Mesh

func (ms *meshSet) add(b gllab.VertexBuffer) (*opengl.Mesh, error) {
	m, err := opengl.NewMesh(b)
	if err != nil {
		return nil, err
	}
	*ms = append(*ms, m)
	return m, nil
}

func (ms meshSet) delete() {
	for _, m := range ms {
		m.Delete()
	}
}

package main

import (
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
	"github.com/go-theft-auto/gllab/backend/opengl"
)

type texturedDrawable struct {
	obj  gllab.TexturedObject
	mesh *opengl.Mesh
	tex  *opengl.Texture
}

// textureLab shows three cubes tiling their texture 1x, 2x and 4x over a
// tiled ground plane. M toggles mipmapping so the plane's far end shows the
// difference.
type textureLab struct {
	progs    *programSet
	meshes   meshSet
	textures map[gllab.Pattern]*opengl.Texture
	objects  []texturedDrawable
	mipmaps  bool
}

func newTextureLab(env labEnv) (lab, error) {
	progs, err := newProgramSet(env.shaders, map[string]shaderPair{
		"texture": {"texture.vert", "texture.frag"},
	})
	if err != nil {
		return nil, err
	}
	l := &textureLab{progs: progs, textures: make(map[gllab.Pattern]*opengl.Texture), mipmaps: true}

	mode, err := opengl.ParseMipmapMode(env.cfg.Texture.Mipmaps)
	if err != nil {
		l.Delete()
		return nil, err
	}
	size := env.cfg.Texture.Size

	for _, obj := range gllab.TextureShowcase {
		mesh, err := l.meshes.add(obj.Mesh())
		if err != nil {
			l.Delete()
			return nil, err
		}
		tex, ok := l.textures[obj.Pattern]
		if !ok {
			tex = opengl.NewTexture(gllab.Generate(obj.Pattern, size, size), opengl.TextureOptions{Mipmaps: mode})
			l.textures[obj.Pattern] = tex
			env.logger.Info("texture ready", "pattern", obj.Pattern, "size", size, "levels", tex.Levels())
		}
		l.objects = append(l.objects, texturedDrawable{obj: obj, mesh: mesh, tex: tex})
	}
	return l, nil
}

func (l *textureLab) MouseLook() bool { return true }

func (l *textureLab) Reload(fsys fs.FS) error { return l.progs.reload(fsys) }

func (l *textureLab) Draw(s *gllab.SceneState, fr frame) error {
	view, err := s.Camera.ViewMatrix()
	if err != nil {
		return err
	}
	gl.Enable(gl.DEPTH_TEST)

	if s.Mipmaps != l.mipmaps {
		for _, tex := range l.textures {
			tex.SetMipmapping(s.Mipmaps)
		}
		l.mipmaps = s.Mipmaps
	}

	prog := l.progs.get("texture")
	prog.Use()
	prog.SetInt("uTexture", 0)
	prog.SetMat4("uViewProj", gllab.Compose(fr.proj, view))

	for _, d := range l.objects {
		d.tex.Bind(0)
		prog.SetMat4("uModel", d.obj.Matrix(s.Elapsed))
		d.mesh.Draw()
	}
	return nil
}

func (l *textureLab) Delete() {
	for _, tex := range l.textures {
		tex.Delete()
	}
	l.meshes.delete()
	l.progs.delete()
}

package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
)

// MipmapMode selects how a texture's mip levels are produced.
type MipmapMode int

const (
	MipmapNone     MipmapMode = iota // level 0 only
	MipmapGenerate                   // glGenerateMipmap on the GPU
	MipmapUpload                     // levels built by gllab.MipChain and uploaded one by one
)

// ParseMipmapMode maps the config names ("none", "generate", "upload").
func ParseMipmapMode(name string) (MipmapMode, error) {
	switch name {
	case gllab.MipmapNone:
		return MipmapNone, nil
	case gllab.MipmapGenerate:
		return MipmapGenerate, nil
	case gllab.MipmapUpload:
		return MipmapUpload, nil
	}
	return 0, fmt.Errorf("unknown mipmap mode %q", name)
}

// TextureOptions configures NewTexture. The zero value repeats, filters
// linearly and has no mipmaps.
type TextureOptions struct {
	Mipmaps MipmapMode
	Clamp   bool // clamp to edge instead of repeat
}

// Texture is a 2D RGB texture.
type Texture struct {
	id            uint32
	width, height int
	levels        int
}

// NewTexture uploads img as an RGB texture.
func NewTexture(img *image.RGBA, opts TextureOptions) *Texture {
	b := img.Bounds()
	t := &Texture{width: b.Dx(), height: b.Dy(), levels: 1}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	// RGB rows are not 4-byte aligned for odd widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	wrap := int32(gl.REPEAT)
	if opts.Clamp {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	switch opts.Mipmaps {
	case MipmapUpload:
		chain := gllab.MipChain(img)
		for level, m := range chain {
			uploadLevel(int32(level), m)
		}
		t.levels = len(chain)
	case MipmapGenerate:
		uploadLevel(0, img)
		gl.GenerateMipmap(gl.TEXTURE_2D)
		t.levels = gllab.MipLevels(t.width, t.height)
	default:
		uploadLevel(0, img)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, int32(t.levels-1))
	t.SetMipmapping(t.levels > 1)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

func uploadLevel(level int32, img *image.RGBA) {
	b := img.Bounds()
	pix := gllab.RGBBytes(img)
	gl.TexImage2D(gl.TEXTURE_2D, level, gl.RGB8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

// SetMipmapping switches minification between trilinear and plain linear.
// It has no effect on a texture without mip levels. The texture is left bound.
func (t *Texture) SetMipmapping(on bool) {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	filter := int32(gl.LINEAR)
	if on && t.levels > 1 {
		filter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Size returns the level 0 size in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Levels returns the number of mip levels.
func (t *Texture) Levels() int {
	return t.levels
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

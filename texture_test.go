package gllab_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gllab"
)

func TestParsePattern(t *testing.T) {
	for _, p := range gllab.Patterns() {
		got, err := gllab.ParsePattern(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := gllab.ParsePattern("marble")
	assert.Error(t, err)
}

func TestGeneratePixels(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	tests := []struct {
		pattern gllab.Pattern
		x, y    int
		want    color.RGBA
	}{
		{gllab.Checkerboard, 0, 0, white},
		{gllab.Checkerboard, 32, 0, color.RGBA{50, 50, 50, 255}},
		{gllab.Checkerboard, 32, 32, white},
		{gllab.Brick, 10, 0, color.RGBA{200, 200, 200, 255}},
		{gllab.Grid, 1, 30, color.RGBA{0, 255, 255, 255}},
		{gllab.Grid, 30, 30, color.RGBA{30, 30, 50, 255}},
		{gllab.Dots, 32, 32, color.RGBA{255, 100, 200, 255}},
		{gllab.Dots, 0, 0, color.RGBA{240, 240, 255, 255}},
	}
	for _, tt := range tests {
		img := gllab.Generate(tt.pattern, 128, 128)
		assert.Equal(t, tt.want, img.RGBAAt(tt.x, tt.y), "%s at (%d, %d)", tt.pattern, tt.x, tt.y)
	}
}

func TestGenerateIsOpaque(t *testing.T) {
	for _, p := range gllab.Patterns() {
		img := gllab.Generate(p, 64, 48)
		assert.Equal(t, 64, img.Bounds().Dx())
		assert.Equal(t, 48, img.Bounds().Dy())
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 255 {
				t.Fatalf("%s: transparent pixel at byte %d", p, i)
			}
		}
	}
}

func TestMipLevels(t *testing.T) {
	assert.Equal(t, 1, gllab.MipLevels(1, 1))
	assert.Equal(t, 3, gllab.MipLevels(4, 2))
	assert.Equal(t, 10, gllab.MipLevels(512, 512))
	assert.Equal(t, 10, gllab.MipLevels(512, 3))
}

func TestMipChain(t *testing.T) {
	src := gllab.Generate(gllab.Grid, 64, 16)
	chain := gllab.MipChain(src)

	require.Len(t, chain, gllab.MipLevels(64, 16))
	assert.Same(t, src, chain[0])

	w, h := 64, 16
	for _, level := range chain[1:] {
		w, h = max(1, w/2), max(1, h/2)
		assert.Equal(t, w, level.Bounds().Dx())
		assert.Equal(t, h, level.Bounds().Dy())
	}
	last := chain[len(chain)-1]
	assert.Equal(t, 1, last.Bounds().Dx())
	assert.Equal(t, 1, last.Bounds().Dy())
}

func TestRGBBytes(t *testing.T) {
	img := gllab.Generate(gllab.Checkerboard, 64, 2)
	b := gllab.RGBBytes(img)

	require.Len(t, b, 64*2*3)
	assert.Equal(t, []byte{255, 255, 255}, b[:3])
	assert.Equal(t, []byte{50, 50, 50}, b[32*3:32*3+3])
}

func TestTextureShowcase(t *testing.T) {
	var tilings []float32
	patterns := map[gllab.Pattern]bool{}
	grounds := 0
	for _, obj := range gllab.TextureShowcase {
		patterns[obj.Pattern] = true
		if obj.Ground {
			grounds++
			assert.Equal(t, float32(10), obj.Tiling)
			continue
		}
		tilings = append(tilings, obj.Tiling)
	}
	assert.Equal(t, []float32{1, 2, 4}, tilings)
	assert.Equal(t, 1, grounds)
	assert.Len(t, patterns, len(gllab.TextureShowcase), "every object has its own pattern")
}

func TestTexturedObjectMesh(t *testing.T) {
	for _, obj := range gllab.TextureShowcase {
		b := obj.Mesh()
		var maxUV, maxX float32
		for i := 0; i < b.VertexCount(); i++ {
			v := b.Vertex(i)
			maxX = max(maxX, v[0])
			maxUV = max(maxUV, v[6], v[7])
		}
		assert.Equal(t, obj.Tiling, maxUV, "%s repeats its texture", obj.Pattern)
		if obj.Ground {
			assert.Equal(t, float32(gllab.GroundSize), maxX)
		} else {
			assert.Equal(t, float32(0.5), maxX)
		}
	}
}

func TestTexturedObjectMatrixSpinsCubesOnly(t *testing.T) {
	for _, obj := range gllab.TextureShowcase {
		start := obj.Matrix(0)
		assertVec3(t, obj.Position, start.TransformPoint(gllab.Vec3{}))

		// A quarter turn at CubeSpinRate.
		later := obj.Matrix(90.0 / gllab.CubeSpinRate)
		assertVec3(t, obj.Position, later.TransformPoint(gllab.Vec3{}))
		if obj.Ground {
			assert.Equal(t, start, later)
			continue
		}
		assertVec3(t, obj.Position.Add(gllab.Vec3{0, 0, -1}), later.TransformPoint(gllab.Vec3{1, 0, 0}))
	}
}

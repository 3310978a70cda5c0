package gllab

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
)

// Pattern is a procedural texture pattern.
type Pattern int

const (
	Checkerboard Pattern = iota
	Brick
	Grid
	Dots
	TestStripes
	patternCount
)

var patternNames = [patternCount]string{
	Checkerboard: "checkerboard",
	Brick:        "brick",
	Grid:         "grid",
	Dots:         "dots",
	TestStripes:  "stripes",
}

func (p Pattern) String() string {
	if p >= 0 && p < patternCount {
		return patternNames[p]
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// Patterns returns every pattern in declaration order.
func Patterns() []Pattern {
	ps := make([]Pattern, patternCount)
	for i := range ps {
		ps[i] = Pattern(i)
	}
	return ps
}

// ParsePattern returns the pattern with the given name.
func ParsePattern(name string) (Pattern, error) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("unknown texture pattern %q", name)
}

// Generate renders pattern p into a new w x h image. Row 0 is the first row
// uploaded to the GPU.
func Generate(p Pattern, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	shade := patternFuncs[Checkerboard]
	if p >= 0 && p < patternCount {
		shade = patternFuncs[p]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, shade(x, y))
		}
	}
	return img
}

var patternFuncs = [patternCount]func(x, y int) color.RGBA{
	Checkerboard: checkerboardAt,
	Brick:        brickAt,
	Grid:         gridAt,
	Dots:         dotsAt,
	TestStripes:  stripesAt,
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// 32 pixel squares.
func checkerboardAt(x, y int) color.RGBA {
	if (y/32+x/32)%2 == 0 {
		return rgb(255, 255, 255)
	}
	return rgb(50, 50, 50)
}

// 64x32 bricks in running bond with 4 pixel mortar.
func brickAt(x, y int) color.RGBA {
	const (
		brickH = 32
		brickW = 64
		mortar = 4
	)
	row := y / brickH
	offset := (row % 2) * (brickW / 2)
	col := (x + offset) % (brickW + mortar)
	if y%brickH < mortar || col < mortar {
		return rgb(200, 200, 200)
	}
	variation := uint8((y%brickH + x%brickW) % 30)
	return rgb(180+variation, 80+variation/2, 50)
}

func gridAt(x, y int) color.RGBA {
	const (
		cell = 64
		line = 4
	)
	if y%cell < line || x%cell < line {
		return rgb(0, 255, 255)
	}
	return rgb(30, 30, 50)
}

func dotsAt(x, y int) color.RGBA {
	dx := float32(x%64 - 32)
	dy := float32(y%64 - 32)
	if math32.Sqrt(dx*dx+dy*dy) < 20 {
		return rgb(255, 100, 200)
	}
	return rgb(240, 240, 255)
}

// stripesAt layers vertical, horizontal and diagonal bands so every filter
// direction has edges to work on.
func stripesAt(x, y int) color.RGBA {
	c := rgb(0, 255, 255)
	if x%40 < 20 {
		c = rgb(255, 0, 0)
	}
	if y%60 < 30 {
		c = rgb(c.R/2, c.G/2, c.B/2+128)
	}
	if (x+y)%80 < 40 {
		c = rgb(c.R/2+128, c.G/2+128, c.B/2)
	}
	return c
}

// TexturedObject is one object of the texture lab: a cube or the ground
// plane, drawn with its own pattern repeated Tiling times across each face.
type TexturedObject struct {
	Position Vec3
	Pattern  Pattern
	Tiling   float32
	Ground   bool
}

// GroundSize is the half-extent of the texture lab's ground plane.
const GroundSize = 10

// CubeSpinRate is how fast the texture lab's cubes turn about Y, in degrees
// per second.
const CubeSpinRate = 30

// TextureShowcase lists the texture lab's objects: three cubes tiling their
// pattern 1x, 2x and 4x side by side, and a ground plane tiled 10x.
var TextureShowcase = []TexturedObject{
	{Position: Vec3{-3, 1, 0}, Pattern: Checkerboard, Tiling: 1},
	{Position: Vec3{0, 1, 0}, Pattern: Brick, Tiling: 2},
	{Position: Vec3{3, 1, 0}, Pattern: Grid, Tiling: 4},
	{Position: Vec3{}, Pattern: Dots, Tiling: 10, Ground: true},
}

// Mesh returns the object's vertex buffer.
func (o TexturedObject) Mesh() VertexBuffer {
	if o.Ground {
		return Plane(GroundSize, o.Tiling)
	}
	return TexturedCube(o.Tiling)
}

// Matrix returns the object's model matrix after elapsed seconds. Cubes
// spin about Y at CubeSpinRate; the ground stays put.
func (o TexturedObject) Matrix(elapsed float32) Mat4 {
	if o.Ground {
		return Translation(o.Position)
	}
	return Compose(Translation(o.Position), RotationY(Radians(CubeSpinRate*elapsed)))
}

// MipLevels returns the number of levels in a full mip chain for a w x h
// texture, down to 1x1.
func MipLevels(w, h int) int {
	n := 1
	for w > 1 || h > 1 {
		w = max(1, w/2)
		h = max(1, h/2)
		n++
	}
	return n
}

// MipChain returns img followed by successively halved copies down to 1x1.
// Level 0 is img itself.
func MipChain(img *image.RGBA) []*image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	chain := make([]*image.RGBA, 0, MipLevels(w, h))
	chain = append(chain, img)
	for w > 1 || h > 1 {
		w = max(1, w/2)
		h = max(1, h/2)
		prev := chain[len(chain)-1]
		next := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.BiLinear.Scale(next, next.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		chain = append(chain, next)
	}
	return chain
}

// RGBBytes returns the image as tightly packed RGB bytes, row by row.
func RGBBytes(img *image.RGBA) []byte {
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			out = append(out, row[4*x], row[4*x+1], row[4*x+2])
		}
	}
	return out
}

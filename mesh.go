package gllab

// Attribute describes one float vertex attribute in an interleaved buffer.
type Attribute struct {
	Name     string
	Location uint32 // shader layout location
	Size     int32  // number of float components
}

// Layout is the ordered list of attributes of an interleaved vertex.
type Layout []Attribute

// Components returns the number of floats per vertex.
func (l Layout) Components() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	return int32(l.Components() * 4)
}

// Offset returns the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) uintptr {
	n := 0
	for _, a := range l[:i] {
		n += int(a.Size)
	}
	return uintptr(n * 4)
}

// Vertex layouts used by the labs.
var (
	LayoutPosColor = Layout{
		{Name: "aPos", Location: 0, Size: 3},
		{Name: "aColor", Location: 1, Size: 3},
	}
	LayoutPosNormalColor = Layout{
		{Name: "aPos", Location: 0, Size: 3},
		{Name: "aNormal", Location: 1, Size: 3},
		{Name: "aColor", Location: 2, Size: 3},
	}
	LayoutPosNormalUV = Layout{
		{Name: "aPos", Location: 0, Size: 3},
		{Name: "aNormal", Location: 1, Size: 3},
		{Name: "aTexCoord", Location: 2, Size: 2},
	}
	LayoutPos2UV = Layout{
		{Name: "aPos", Location: 0, Size: 2},
		{Name: "aTexCoord", Location: 1, Size: 2},
	}
)

// VertexBuffer is interleaved vertex data with optional indices.
// It is built once and treated as immutable afterwards.
type VertexBuffer struct {
	Layout  Layout
	Data    []float32
	Indices []uint32
}

// VertexCount returns the number of vertices in Data.
func (b VertexBuffer) VertexCount() int {
	c := b.Layout.Components()
	if c == 0 {
		return 0
	}
	return len(b.Data) / c
}

// Indexed reports whether the buffer is drawn with indices.
func (b VertexBuffer) Indexed() bool {
	return len(b.Indices) > 0
}

// DrawCount returns the element count for a draw call.
func (b VertexBuffer) DrawCount() int {
	if b.Indexed() {
		return len(b.Indices)
	}
	return b.VertexCount()
}

// Vertex returns the floats of vertex i.
func (b VertexBuffer) Vertex(i int) []float32 {
	c := b.Layout.Components()
	return b.Data[i*c : (i+1)*c]
}

// cubeFace is one side of an axis-aligned cube. u x v = normal, so corners
// walked from u toward v are counter-clockwise seen from outside.
type cubeFace struct {
	normal Vec3
	u, v   Vec3
	color  Vec3
}

// Face order: front, back, top, bottom, right, left.
var cubeFaces = [6]cubeFace{
	{normal: Vec3{0, 0, 1}, u: Vec3{1, 0, 0}, v: Vec3{0, 1, 0}, color: Vec3{1, 0, 0}},
	{normal: Vec3{0, 0, -1}, u: Vec3{-1, 0, 0}, v: Vec3{0, 1, 0}, color: Vec3{0, 1, 0}},
	{normal: Vec3{0, 1, 0}, u: Vec3{1, 0, 0}, v: Vec3{0, 0, -1}, color: Vec3{0, 0, 1}},
	{normal: Vec3{0, -1, 0}, u: Vec3{1, 0, 0}, v: Vec3{0, 0, 1}, color: Vec3{1, 1, 0}},
	{normal: Vec3{1, 0, 0}, u: Vec3{0, 0, -1}, v: Vec3{0, 1, 0}, color: Vec3{1, 0, 1}},
	{normal: Vec3{-1, 0, 0}, u: Vec3{0, 0, 1}, v: Vec3{0, 1, 0}, color: Vec3{0, 1, 1}},
}

// quadCorners are the (s, t) signs of a face's corners in CCW order.
var quadCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// quadTriangles splits a quad's corners into two CCW triangles.
var quadTriangles = [6]uint32{0, 1, 2, 2, 3, 0}

func (f cubeFace) corner(k uint32, half float32) Vec3 {
	st := quadCorners[k]
	return f.normal.Add(f.u.Mul(st[0])).Add(f.v.Mul(st[1])).Mul(half)
}

// Triangle returns the colored 2D triangle of the primitives lab.
func Triangle() VertexBuffer {
	return VertexBuffer{
		Layout: LayoutPosColor,
		Data: []float32{
			-0.6, -0.4, 0, 1, 0, 0,
			0.6, -0.4, 0, 0, 1, 0,
			0, 0.6, 0, 0, 0, 1,
		},
	}
}

// Square returns an indexed colored quad.
func Square() VertexBuffer {
	return VertexBuffer{
		Layout: LayoutPosColor,
		Data: []float32{
			-0.5, -0.5, 0, 1, 0.5, 0,
			0.5, -0.5, 0, 0, 1, 0.5,
			0.5, 0.5, 0, 0.5, 0, 1,
			-0.5, 0.5, 0, 1, 1, 0,
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	}
}

// ColorCube returns an 8-vertex unit cube with per-corner colors and 36
// indices, counter-clockwise seen from outside.
func ColorCube() VertexBuffer {
	return VertexBuffer{
		Layout: LayoutPosColor,
		Data: []float32{
			-0.5, -0.5, -0.5, 1, 0, 0,
			0.5, -0.5, -0.5, 0, 1, 0,
			0.5, 0.5, -0.5, 0, 0, 1,
			-0.5, 0.5, -0.5, 1, 1, 0,
			-0.5, -0.5, 0.5, 1, 0, 1,
			0.5, -0.5, 0.5, 0, 1, 1,
			0.5, 0.5, 0.5, 1, 1, 1,
			-0.5, 0.5, 0.5, 0.2, 0.6, 0.9,
		},
		Indices: []uint32{
			0, 2, 1, 2, 0, 3, // back
			4, 5, 6, 6, 7, 4, // front
			0, 4, 7, 7, 3, 0, // left
			1, 6, 5, 6, 1, 2, // right
			0, 1, 5, 5, 4, 0, // bottom
			3, 6, 2, 6, 3, 7, // top
		},
	}
}

// ShadedCube returns a unit cube with 24 vertices carrying a face normal and
// a solid face color, shared by every object of the multi-object lab.
func ShadedCube() VertexBuffer {
	b := VertexBuffer{Layout: LayoutPosNormalColor}
	for fi, face := range cubeFaces {
		for k := uint32(0); k < 4; k++ {
			p := face.corner(k, 0.5)
			b.Data = append(b.Data,
				p[0], p[1], p[2],
				face.normal[0], face.normal[1], face.normal[2],
				face.color[0], face.color[1], face.color[2])
		}
		b.Indices = appendQuad(b.Indices, uint32(fi*4))
	}
	return b
}

// TexturedCube returns a unit cube with face normals and texture coordinates
// running from 0 to texScale across each face. texScale > 1 tiles the texture.
func TexturedCube(texScale float32) VertexBuffer {
	b := VertexBuffer{Layout: LayoutPosNormalUV}
	for fi, face := range cubeFaces {
		for k := uint32(0); k < 4; k++ {
			p := face.corner(k, 0.5)
			st := quadCorners[k]
			b.Data = append(b.Data,
				p[0], p[1], p[2],
				face.normal[0], face.normal[1], face.normal[2],
				(st[0]+1)/2*texScale, (st[1]+1)/2*texScale)
		}
		b.Indices = appendQuad(b.Indices, uint32(fi*4))
	}
	return b
}

// Plane returns a ground plane at y = 0 spanning [-size, size] in x and z,
// facing +Y, with texture coordinates from 0 to texScale.
func Plane(size, texScale float32) VertexBuffer {
	return VertexBuffer{
		Layout: LayoutPosNormalUV,
		Data: []float32{
			-size, 0, size, 0, 1, 0, 0, 0,
			size, 0, size, 0, 1, 0, texScale, 0,
			size, 0, -size, 0, 1, 0, texScale, texScale,
			-size, 0, -size, 0, 1, 0, 0, texScale,
		},
		Indices: appendQuad(nil, 0),
	}
}

// FullscreenQuad returns a clip-space quad with texture coordinates, used by
// the filter lab to run a fragment shader over every pixel.
func FullscreenQuad() VertexBuffer {
	return VertexBuffer{
		Layout: LayoutPos2UV,
		Data: []float32{
			-1, -1, 0, 0,
			1, -1, 1, 0,
			1, 1, 1, 1,
			-1, 1, 0, 1,
		},
		Indices: appendQuad(nil, 0),
	}
}

func appendQuad(indices []uint32, base uint32) []uint32 {
	for _, k := range quadTriangles {
		indices = append(indices, base+k)
	}
	return indices
}

package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gllab"
)

var errEmptyMesh = errors.New("empty vertex data")

// Mesh is a vertex array object with its buffers.
type Mesh struct {
	vao     uint32
	vbos    []uint32
	ebo     uint32
	count   int32
	indexed bool
}

// NewMesh uploads an interleaved vertex buffer, with indices if it has any.
func NewMesh(b gllab.VertexBuffer) (*Mesh, error) {
	comps := b.Layout.Components()
	if comps == 0 || len(b.Data) == 0 {
		return nil, errEmptyMesh
	}
	if len(b.Data)%comps != 0 {
		return nil, fmt.Errorf("vertex data length %d is not a multiple of %d", len(b.Data), comps)
	}

	m := &Mesh{count: int32(b.DrawCount()), indexed: b.Indexed()}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	vbo := uploadBuffer(gl.ARRAY_BUFFER, len(b.Data)*4, gl.Ptr(b.Data))
	m.vbos = append(m.vbos, vbo)

	stride := b.Layout.Stride()
	for i, a := range b.Layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, b.Layout.Offset(i))
		gl.EnableVertexAttribArray(a.Location)
	}

	if m.indexed {
		m.ebo = uploadBuffer(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, gl.Ptr(b.Indices))
	}

	gl.BindVertexArray(0)
	return m, nil
}

// NewModelMesh uploads a loaded OBJ model as two buffers: positions at
// location 0 and normals at location 1. Faces must already be triangles.
func NewModelMesh(model *gllab.Model) (*Mesh, error) {
	if model == nil || model.VertexCount() == 0 {
		return nil, errEmptyMesh
	}
	if len(model.Normals) != len(model.Positions) {
		return nil, fmt.Errorf("model has %d position and %d normal floats", len(model.Positions), len(model.Normals))
	}

	m := &Mesh{count: int32(model.VertexCount())}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	for loc, data := range [][]float32{model.Positions, model.Normals} {
		vbo := uploadBuffer(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data))
		m.vbos = append(m.vbos, vbo)
		gl.VertexAttribPointerWithOffset(uint32(loc), 3, gl.FLOAT, false, 3*4, 0)
		gl.EnableVertexAttribArray(uint32(loc))
	}

	gl.BindVertexArray(0)
	return m, nil
}

func uploadBuffer(target uint32, size int, data unsafe.Pointer) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(target, id)
	gl.BufferData(target, size, data, gl.STATIC_DRAW)
	return id
}

// Draw draws the mesh as triangles with the current program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the mesh's GL objects.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if len(m.vbos) > 0 {
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		m.vbos = nil
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

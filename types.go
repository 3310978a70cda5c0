package gllab

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a position, direction or RGB color.
type Vec3 = mgl32.Vec3

// Vec4 is a homogeneous point or RGBA color.
type Vec4 = mgl32.Vec4

// Mat4 is a 4x4 matrix stored row-major: element (row, col) lives at m[row*4+col].
//
// Products apply right to left, so a.Mul(b) applied to v is a*(b*v). OpenGL
// expects column-major uniforms, so upload with transpose=true or convert with
// ColumnMajor first.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[r*4+c]
}

// Mul returns m*o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4+0]*o[0*4+c] +
				m[r*4+1]*o[1*4+c] +
				m[r*4+2]*o[2*4+c] +
				m[r*4+3]*o[3*4+c]
		}
	}
	return out
}

// MulVec4 returns m*v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// TransformPoint applies m to the point p (w = 1) and divides by the resulting w.
// A zero w leaves the components undivided.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := m.MulVec4(p.Vec4(1))
	if v[3] == 0 || v[3] == 1 {
		return v.Vec3()
	}
	return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// ColumnMajor returns m in mgl32's column-major layout.
func (m Mat4) ColumnMajor() mgl32.Mat4 {
	return mgl32.Mat4(m.Transpose())
}

// Mat4FromColumnMajor converts an mgl32 matrix into the row-major layout.
func Mat4FromColumnMajor(cm mgl32.Mat4) Mat4 {
	return Mat4(cm).Transpose()
}

// ApproxEqual reports whether every element of m is within eps of o.
func (m Mat4) ApproxEqual(o Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// Row returns row r as a vector.
func (m Mat4) Row(r int) Vec4 {
	return Vec4{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

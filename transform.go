package gllab

import (
	"fmt"

	"github.com/chewxy/math32"
)

// basisEpsilon is the smallest length accepted when normalizing a basis vector.
const basisEpsilon = 1e-6

// LookAt builds the world-to-view matrix for a camera at eye looking at target.
//
// The view basis is forward = normalize(eye-target), right = normalize(up x forward),
// trueUp = forward x right. The camera looks down -Z, so target lands on
// (0, 0, -|eye-target|).
func LookAt(eye, target, up Vec3) (Mat4, error) {
	forward := eye.Sub(target)
	dist := forward.Len()
	if dist < basisEpsilon {
		return Mat4{}, fmt.Errorf("%w: eye %v equals target %v", ErrDegenerateBasis, eye, target)
	}
	forward = forward.Mul(1 / dist)

	right := up.Cross(forward)
	rlen := right.Len()
	if rlen < basisEpsilon {
		return Mat4{}, fmt.Errorf("%w: up %v is parallel to view direction", ErrDegenerateBasis, up)
	}
	right = right.Mul(1 / rlen)
	trueUp := forward.Cross(right)

	return Mat4{
		right[0], right[1], right[2], -right.Dot(eye),
		trueUp[0], trueUp[1], trueUp[2], -trueUp.Dot(eye),
		forward[0], forward[1], forward[2], -forward.Dot(eye),
		0, 0, 0, 1,
	}, nil
}

// Perspective builds a symmetric-frustum projection. fovY is in radians.
// View-space depth -near maps to NDC -1 and -far maps to +1.
func Perspective(fovY, aspect, near, far float32) (Mat4, error) {
	// Written so that NaN inputs fail too.
	if !(fovY > 0 && fovY < math32.Pi) {
		return Mat4{}, fmt.Errorf("%w: fovY %v outside (0, pi)", ErrInvalidFrustum, fovY)
	}
	if !(aspect > 0) {
		return Mat4{}, fmt.Errorf("%w: aspect %v", ErrInvalidFrustum, aspect)
	}
	if !(near > 0 && far > near) {
		return Mat4{}, fmt.Errorf("%w: near %v far %v", ErrInvalidFrustum, near, far)
	}

	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}, nil
}

// Ortho builds an orthographic projection mapping the given box onto the
// [-1, 1] cube, with -near mapping to -1.
func Ortho(left, right, bottom, top, near, far float32) (Mat4, error) {
	if right == left || top == bottom || far == near {
		return Mat4{}, fmt.Errorf("%w: ortho box [%v %v] [%v %v] [%v %v]",
			ErrInvalidFrustum, left, right, bottom, top, near, far)
	}
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(far + near) / fn,
		0, 0, 0, 1,
	}, nil
}

// RotationAxisAngle returns the rotation of angle radians about axis
// (Rodrigues' formula). The axis does not need to be normalized.
func RotationAxisAngle(axis Vec3, angle float32) (Mat4, error) {
	l := axis.Len()
	if l == 0 {
		return Mat4{}, ErrZeroAxis
	}
	x, y, z := axis[0]/l, axis[1]/l, axis[2]/l
	s, c := math32.Sincos(angle)
	t := 1 - c

	return Mat4{
		c + x*x*t, x*y*t - z*s, x*z*t + y*s, 0,
		y*x*t + z*s, c + y*y*t, y*z*t - x*s, 0,
		z*x*t - y*s, z*y*t + x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}, nil
}

// RotationX returns a rotation of angle radians about +X.
func RotationX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation of angle radians about +Y.
func RotationY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation of angle radians about +Z.
func RotationZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a translation by v.
func Translation(v Vec3) Mat4 {
	m := Identity()
	m[3] = v[0]
	m[7] = v[1]
	m[11] = v[2]
	return m
}

// Scaling returns a non-uniform scale by v.
func Scaling(v Vec3) Mat4 {
	m := Identity()
	m[0] = v[0]
	m[5] = v[1]
	m[10] = v[2]
	return m
}

// Compose multiplies the matrices in the given order: Compose(a, b, c) is a*b*c,
// so c is applied to a vector first. No matrices yields the identity.
func Compose(ms ...Mat4) Mat4 {
	out := Identity()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

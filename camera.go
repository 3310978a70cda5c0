package gllab

import "github.com/chewxy/math32"

// Pitch is clamped to this many degrees either side of the horizon so the
// front vector never becomes parallel to the world up axis.
const maxPitch = 89

// Movement is a set of camera movement directions.
type Movement uint8

const (
	MoveForward Movement = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// FlyCamera is a first-person camera driven by yaw and pitch.
//
// Yaw and pitch are in degrees. Yaw -90 with pitch 0 looks down -Z.
type FlyCamera struct {
	Position    Vec3
	Yaw, Pitch  float32
	WorldUp     Vec3
	Speed       float32 // units per second
	Sensitivity float32 // degrees per pixel of mouse movement
}

// NewFlyCamera returns a camera at position looking down -Z.
func NewFlyCamera(position Vec3) *FlyCamera {
	return &FlyCamera{
		Position:    position,
		Yaw:         -90,
		WorldUp:     Vec3{0, 1, 0},
		Speed:       2.5,
		Sensitivity: 0.1,
	}
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() Vec3 {
	sy, cy := math32.Sincos(Radians(c.Yaw))
	sp, cp := math32.Sincos(Radians(c.Pitch))
	return Vec3{cy * cp, sp, sy * cp}.Normalize()
}

// Right returns the unit vector to the camera's right.
func (c *FlyCamera) Right() Vec3 {
	return c.Front().Cross(c.WorldUp).Normalize()
}

// Up returns the camera's unit up vector.
func (c *FlyCamera) Up() Vec3 {
	return c.Right().Cross(c.Front()).Normalize()
}

// ProcessMouse turns the camera by a mouse delta in pixels. dy is positive
// when the mouse moves up the screen.
func (c *FlyCamera) ProcessMouse(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Move translates the camera along its own axes for dt seconds.
func (c *FlyCamera) Move(dir Movement, dt float32) {
	if dir == 0 {
		return
	}
	velocity := c.Speed * dt
	front, right, up := c.Front(), c.Right(), c.Up()

	var delta Vec3
	if dir&MoveForward != 0 {
		delta = delta.Add(front)
	}
	if dir&MoveBackward != 0 {
		delta = delta.Sub(front)
	}
	if dir&MoveRight != 0 {
		delta = delta.Add(right)
	}
	if dir&MoveLeft != 0 {
		delta = delta.Sub(right)
	}
	if dir&MoveUp != 0 {
		delta = delta.Add(up)
	}
	if dir&MoveDown != 0 {
		delta = delta.Sub(up)
	}
	c.Position = c.Position.Add(delta.Mul(velocity))
}

// ViewMatrix returns the world-to-view matrix for the camera.
func (c *FlyCamera) ViewMatrix() (Mat4, error) {
	return LookAt(c.Position, c.Position.Add(c.Front()), c.Up())
}

// ModelTransform is the keyboard-driven object placement of the transform lab.
// Angles are in degrees.
type ModelTransform struct {
	Position       Vec3
	AngleX, AngleY float32
}

// Matrix returns Translation * RotationX * RotationY.
func (t ModelTransform) Matrix() Mat4 {
	return Compose(
		Translation(t.Position),
		RotationX(Radians(t.AngleX)),
		RotationY(Radians(t.AngleY)),
	)
}

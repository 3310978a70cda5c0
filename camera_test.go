package gllab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gllab"
)

func TestFlyCameraDefaultAxes(t *testing.T) {
	cam := gllab.NewFlyCamera(gllab.Vec3{0, 0, 5})

	assertVec3(t, gllab.Vec3{0, 0, -1}, cam.Front())
	assertVec3(t, gllab.Vec3{1, 0, 0}, cam.Right())
	assertVec3(t, gllab.Vec3{0, 1, 0}, cam.Up())

	view, err := cam.ViewMatrix()
	require.NoError(t, err)
	assertVec3(t, gllab.Vec3{0, 0, -5}, view.TransformPoint(gllab.Vec3{}))
}

func TestFlyCameraPitchClamp(t *testing.T) {
	cam := gllab.NewFlyCamera(gllab.Vec3{})

	cam.ProcessMouse(0, 5000)
	assert.Equal(t, float32(89), cam.Pitch)
	_, err := cam.ViewMatrix()
	assert.NoError(t, err, "clamped pitch keeps the basis valid")

	cam.ProcessMouse(0, -10000)
	assert.Equal(t, float32(-89), cam.Pitch)
}

func TestFlyCameraMouseTurns(t *testing.T) {
	cam := gllab.NewFlyCamera(gllab.Vec3{})
	cam.ProcessMouse(900, 0) // 90 degrees at the default sensitivity

	assert.InDelta(t, 0, cam.Yaw, eps)
	assertVec3(t, gllab.Vec3{1, 0, 0}, cam.Front())
}

func TestFlyCameraMove(t *testing.T) {
	tests := []struct {
		name string
		dir  gllab.Movement
		want gllab.Vec3
	}{
		{"forward", gllab.MoveForward, gllab.Vec3{0, 0, -2.5}},
		{"backward", gllab.MoveBackward, gllab.Vec3{0, 0, 2.5}},
		{"left", gllab.MoveLeft, gllab.Vec3{-2.5, 0, 0}},
		{"right", gllab.MoveRight, gllab.Vec3{2.5, 0, 0}},
		{"up", gllab.MoveUp, gllab.Vec3{0, 2.5, 0}},
		{"down", gllab.MoveDown, gllab.Vec3{0, -2.5, 0}},
		{"opposite cancel", gllab.MoveForward | gllab.MoveBackward, gllab.Vec3{}},
		{"none", 0, gllab.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := gllab.NewFlyCamera(gllab.Vec3{})
			cam.Move(tt.dir, 1)
			assertVec3(t, tt.want, cam.Position)
		})
	}
}

func TestModelTransformMatrix(t *testing.T) {
	var mt gllab.ModelTransform
	assert.True(t, mt.Matrix().ApproxEqual(gllab.Identity(), eps))

	mt.Position = gllab.Vec3{1, 2, 3}
	assertVec3(t, gllab.Vec3{1, 2, 3}, mt.Matrix().TransformPoint(gllab.Vec3{}))

	// Rotation applies before translation.
	mt.AngleY = 90
	assertVec3(t, gllab.Vec3{1, 2, 2}, mt.Matrix().TransformPoint(gllab.Vec3{1, 0, 0}))
}

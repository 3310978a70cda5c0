package gllab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gllab"
)

// press runs one frame with the given keys going down.
func press(s *gllab.SceneState, in *gllab.InputState, keys ...gllab.Key) {
	in.Reset()
	for _, k := range keys {
		in.SetKey(k, true)
	}
	in.UpdateKeyRepeat(0.016)
	s.Update(in, 0.016)
	for _, k := range keys {
		in.SetKey(k, false)
	}
}

func TestSceneStateDefaults(t *testing.T) {
	s := gllab.NewSceneState(gllab.Vec3{0, 0, 3})

	assert.Equal(t, gllab.PrimitiveTriangle, s.Primitive)
	assert.Equal(t, gllab.FilterOriginal, s.Filter)
	assert.Equal(t, gllab.Horizontal, s.Direction)
	assert.True(t, s.ShowInfo)
	assert.True(t, s.Mipmaps)
	assert.Equal(t, gllab.Vec3{0, 0, 3}, s.Camera.Position)
}

func TestSceneStateSelection(t *testing.T) {
	s := gllab.NewSceneState(gllab.Vec3{})
	in := gllab.NewInputState()

	press(s, in, gllab.Key2)
	assert.True(t, s.Changed)
	assert.Equal(t, gllab.PrimitiveSquare, s.Primitive)
	assert.Equal(t, gllab.FilterBlur, s.Filter)

	press(s, in, gllab.Key4)
	assert.Equal(t, gllab.FilterEdge, s.Filter)
	assert.Equal(t, gllab.PrimitiveSquare, s.Primitive, "4 only selects a filter")

	press(s, in, gllab.Key3)
	assert.Equal(t, gllab.PrimitiveCube, s.Primitive)
	assert.Equal(t, gllab.FilterSharpen, s.Filter)

	press(s, in)
	assert.False(t, s.Changed, "idle frame")
}

func TestSceneStateToggles(t *testing.T) {
	s := gllab.NewSceneState(gllab.Vec3{})
	in := gllab.NewInputState()

	press(s, in, gllab.KeyH, gllab.KeyM)
	assert.False(t, s.ShowInfo)
	assert.False(t, s.Mipmaps)

	press(s, in, gllab.KeySpace)
	assert.Equal(t, gllab.Vertical, s.Direction)
	press(s, in, gllab.KeySpace)
	assert.Equal(t, gllab.Horizontal, s.Direction)

	assert.False(t, s.Quit)
	press(s, in, gllab.KeyEscape)
	assert.True(t, s.Quit)
}

func TestSceneStateModelControls(t *testing.T) {
	s := gllab.NewSceneState(gllab.Vec3{})
	in := gllab.NewInputState()

	press(s, in, gllab.KeyUp, gllab.KeyRight)
	assert.InDelta(t, gllab.TranslateStep, s.Model.Position[1], eps)
	assert.InDelta(t, gllab.TranslateStep, s.Model.Position[0], eps)

	press(s, in, gllab.KeyW, gllab.KeyA)
	assert.InDelta(t, gllab.RotateStep, s.Model.AngleX, eps)
	assert.InDelta(t, gllab.RotateStep, s.Model.AngleY, eps)

	press(s, in, gllab.KeyS, gllab.KeyS)
	assert.InDelta(t, 0, s.Model.AngleX, eps)

	assert.Equal(t, gllab.Vec3{}, s.Camera.Position, "camera stays put without mouse look")
}

func TestSceneStateMouseLook(t *testing.T) {
	s := gllab.NewSceneState(gllab.Vec3{})
	s.MouseLook = true
	in := gllab.NewInputState()
	in.SetMousePos(0, 0)

	in.Reset()
	in.SetMousePos(0, -100)
	in.SetKey(gllab.KeyW, true)
	s.Update(in, 1)

	assert.InDelta(t, 10, s.Camera.Pitch, eps)
	assert.Less(t, s.Camera.Position[2], float32(0), "moved forward")
	assert.Greater(t, s.Camera.Position[1], float32(0), "the upward drag pitches the camera up")
	assert.Equal(t, gllab.ModelTransform{}, s.Model, "keys drive the camera, not the model")

	press(s, in, gllab.KeySpace)
	assert.Equal(t, gllab.Horizontal, s.Direction, "space moves the camera in mouse look")
}

func TestTransformViewFramesCube(t *testing.T) {
	cfg := gllab.DefaultConfig()
	proj, err := cfg.ProjectionMatrix(float32(cfg.Window.Width) / float32(cfg.Window.Height))
	require.NoError(t, err)
	view, err := gllab.TransformView()
	require.NoError(t, err)
	var model gllab.ModelTransform
	mvp := gllab.Compose(proj, view, model.Matrix())

	center := mvp.TransformPoint(gllab.Vec3{})
	assert.InDelta(t, 0, center[0], eps)
	assert.InDelta(t, 0, center[1], eps)

	cube := gllab.ColorCube()
	for i := 0; i < cube.VertexCount(); i++ {
		v := cube.Vertex(i)
		p := mvp.TransformPoint(gllab.Vec3{v[0], v[1], v[2]})
		for axis, c := range p {
			assert.True(t, c > -1 && c < 1, "corner %d axis %d at %v", i, axis, c)
		}
	}
}

package gllab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gllab"
)

func TestInputStateKeyEdges(t *testing.T) {
	in := gllab.NewInputState()

	in.SetKey(gllab.KeyW, true)
	assert.True(t, in.KeyDown(gllab.KeyW))
	assert.True(t, in.KeyPressed(gllab.KeyW))
	assert.True(t, in.KeyRepeated(gllab.KeyW))

	in.Reset()
	in.SetKey(gllab.KeyW, true)
	assert.True(t, in.KeyDown(gllab.KeyW))
	assert.False(t, in.KeyPressed(gllab.KeyW), "held key is not pressed again")

	in.Reset()
	in.SetKey(gllab.KeyW, false)
	assert.False(t, in.KeyDown(gllab.KeyW))
	assert.True(t, in.KeyReleased(gllab.KeyW))

	in.Reset()
	assert.False(t, in.KeyReleased(gllab.KeyW))
}

func TestInputStateKeyRepeat(t *testing.T) {
	in := gllab.NewInputState()
	in.SetKey(gllab.KeyUp, true)
	in.UpdateKeyRepeat(0.016)

	in.Reset()
	in.UpdateKeyRepeat(0.3)
	assert.False(t, in.KeyRepeated(gllab.KeyUp), "before the repeat delay")

	in.Reset()
	in.UpdateKeyRepeat(0.15)
	assert.True(t, in.KeyRepeated(gllab.KeyUp), "first repeat after the delay")

	in.Reset()
	in.UpdateKeyRepeat(0.1)
	assert.True(t, in.KeyRepeated(gllab.KeyUp), "several intervals elapsed")

	in.Reset()
	in.SetKey(gllab.KeyUp, false)
	in.UpdateKeyRepeat(1)
	assert.False(t, in.KeyRepeated(gllab.KeyUp))
}

func TestInputStateMouseDelta(t *testing.T) {
	in := gllab.NewInputState()

	in.SetMousePos(100, 100)
	dx, dy := in.MouseDelta()
	assert.Zero(t, dx, "first sample only sets the reference")
	assert.Zero(t, dy)

	in.Reset()
	in.SetMousePos(110, 90)
	in.SetMousePos(115, 80)
	dx, dy = in.MouseDelta()
	assert.Equal(t, float32(15), dx)
	assert.Equal(t, float32(20), dy, "moving up the screen is positive")

	x, y := in.MousePos()
	assert.Equal(t, float32(115), x)
	assert.Equal(t, float32(80), y)

	in.Reset()
	dx, dy = in.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestInputStateIgnoresUnknownKeys(t *testing.T) {
	in := gllab.NewInputState()
	in.SetKey(gllab.KeyNone, true)
	in.SetKey(gllab.KeyCount, true)
	in.SetKey(-3, true)

	assert.False(t, in.KeyDown(gllab.KeyNone))
	assert.False(t, in.KeyPressed(gllab.KeyCount))
	assert.False(t, in.KeyRepeated(-3))
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "LShift", gllab.KeyName(gllab.KeyLeftShift))
	assert.Equal(t, "4", gllab.KeyName(gllab.Key4))
	assert.Equal(t, "?", gllab.KeyName(gllab.KeyNone))
	assert.Equal(t, "?", gllab.KeyName(gllab.KeyCount))
}

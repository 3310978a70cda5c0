package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gllab"
)

func TestGLFWKeyMapping(t *testing.T) {
	seen := map[gllab.Key]bool{}
	for _, k := range []glfw.Key{
		glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4,
		glfw.KeyW, glfw.KeyA, glfw.KeyS, glfw.KeyD, glfw.KeyH, glfw.KeyM,
		glfw.KeyUp, glfw.KeyDown, glfw.KeyLeft, glfw.KeyRight,
		glfw.KeySpace, glfw.KeyLeftShift, glfw.KeyEscape,
	} {
		lk := glfwKeyToLabKey(k)
		assert.NotEqual(t, gllab.KeyNone, lk, "glfw key %d", k)
		assert.False(t, seen[lk], "duplicate mapping for %s", gllab.KeyName(lk))
		seen[lk] = true
	}
	assert.Len(t, seen, int(gllab.KeyCount)-1, "every lab key has a binding")

	assert.Equal(t, gllab.Key2, glfwKeyToLabKey(glfw.KeyKP2))
	assert.Equal(t, gllab.KeyNone, glfwKeyToLabKey(glfw.KeyF1))
}

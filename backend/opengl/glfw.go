package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gllab"
)

// GLFWInputAdapter adapts GLFW input to gllab.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gllab.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter and installs its
// callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  gllab.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// BeginFrame clears last frame's events. Call it before glfw.PollEvents.
func (a *GLFWInputAdapter) BeginFrame() {
	a.input.Reset()
}

// EndFrame advances key repeat by dt seconds and returns the input for this
// frame. Call it after glfw.PollEvents.
func (a *GLFWInputAdapter) EndFrame(dt float32) *gllab.InputState {
	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// SetMouseLook captures and hides the cursor while on.
func (a *GLFWInputAdapter) SetMouseLook(on bool) {
	mode := glfw.CursorNormal
	if on {
		mode = glfw.CursorDisabled
	}
	a.window.SetInputMode(glfw.CursorMode, mode)
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	labKey := glfwKeyToLabKey(key)
	if labKey == gllab.KeyNone {
		return
	}

	// GLFW's own repeat events are ignored; InputState times repeats itself.
	switch action {
	case glfw.Press:
		a.input.SetKey(labKey, true)
	case glfw.Release:
		a.input.SetKey(labKey, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToLabKey maps GLFW keys to lab keys.
func glfwKeyToLabKey(key glfw.Key) gllab.Key {
	switch key {
	case glfw.Key1, glfw.KeyKP1:
		return gllab.Key1
	case glfw.Key2, glfw.KeyKP2:
		return gllab.Key2
	case glfw.Key3, glfw.KeyKP3:
		return gllab.Key3
	case glfw.Key4, glfw.KeyKP4:
		return gllab.Key4
	case glfw.KeyW:
		return gllab.KeyW
	case glfw.KeyA:
		return gllab.KeyA
	case glfw.KeyS:
		return gllab.KeyS
	case glfw.KeyD:
		return gllab.KeyD
	case glfw.KeyH:
		return gllab.KeyH
	case glfw.KeyM:
		return gllab.KeyM
	case glfw.KeyUp:
		return gllab.KeyUp
	case glfw.KeyDown:
		return gllab.KeyDown
	case glfw.KeyLeft:
		return gllab.KeyLeft
	case glfw.KeyRight:
		return gllab.KeyRight
	case glfw.KeySpace:
		return gllab.KeySpace
	case glfw.KeyLeftShift:
		return gllab.KeyLeftShift
	case glfw.KeyEscape:
		return gllab.KeyEscape
	default:
		return gllab.KeyNone
	}
}

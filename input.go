package gllab

// Key is a keyboard key used by the labs.
type Key int

const (
	KeyNone Key = iota
	Key1
	Key2
	Key3
	Key4
	KeyW
	KeyA
	KeyS
	KeyD
	KeyH
	KeyM
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyLeftShift
	KeyEscape
	KeyCount
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState holds keyboard and mouse state for the current frame.
// The window layer fills it; SceneState.Update consumes it.
type InputState struct {
	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool // pressed this frame
	keyUp       [KeyCount]bool // released this frame
	keyHoldTime [KeyCount]float32
	keyRepeat   [KeyCount]bool // repeat fired this frame

	mouseX, mouseY float32
	mouseSeen      bool
	deltaX, deltaY float32
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame events. Call it at the start of each frame before
// collecting input.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
		s.keyUp[i] = false
		s.keyRepeat[i] = false
	}
	s.deltaX, s.deltaY = 0, 0
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat advances hold times by dt seconds and marks keys whose
// repeat interval elapsed this frame. Call it once per frame after input is
// collected.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(1); key < KeyCount; key++ {
		if !s.keyDown[key] || s.keyPressed[key] {
			continue
		}
		prev := s.keyHoldTime[key]
		s.keyHoldTime[key] += dt
		if s.keyHoldTime[key] < KeyRepeatDelay {
			continue
		}
		before := int((prev - KeyRepeatDelay) / KeyRepeatInterval)
		after := int((s.keyHoldTime[key] - KeyRepeatDelay) / KeyRepeatInterval)
		if prev < KeyRepeatDelay || after > before {
			s.keyRepeat[key] = true
		}
	}
}

// SetMousePos records the cursor position. The first sample only establishes
// the reference point, so it produces no delta.
func (s *InputState) SetMousePos(x, y float32) {
	if s.mouseSeen {
		s.deltaX += x - s.mouseX
		s.deltaY += s.mouseY - y
	}
	s.mouseX, s.mouseY = x, y
	s.mouseSeen = true
}

// MousePos returns the last cursor position.
func (s *InputState) MousePos() (x, y float32) {
	return s.mouseX, s.mouseY
}

// MouseDelta returns the cursor movement this frame in pixels, with y
// positive when the cursor moved up the screen.
func (s *InputState) MouseDelta() (dx, dy float32) {
	return s.deltaX, s.deltaY
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was released this frame.
func (s *InputState) KeyReleased(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true on the initial press and then on every repeat
// tick while the key stays held.
func (s *InputState) KeyRepeated(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key] || s.keyRepeat[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if k > KeyNone && k < KeyCount {
		return keyNames[k]
	}
	return "?"
}

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	Key1:         "1",
	Key2:         "2",
	Key3:         "3",
	Key4:         "4",
	KeyW:         "W",
	KeyA:         "A",
	KeyS:         "S",
	KeyD:         "D",
	KeyH:         "H",
	KeyM:         "M",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeySpace:     "Space",
	KeyLeftShift: "LShift",
	KeyEscape:    "Esc",
}

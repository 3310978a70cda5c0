package gllab

// Primitive selects the shape drawn by the primitives lab.
type Primitive int

const (
	PrimitiveTriangle Primitive = iota + 1
	PrimitiveSquare
	PrimitiveCube
)

// Step sizes of the transform lab's keyboard controls.
const (
	TranslateStep float32 = 0.1
	RotateStep    float32 = 5 // degrees
)

// TransformEye is the position of the transform lab's fixed camera, which
// looks at the origin with +Y up.
var TransformEye = Vec3{1.5, 1.5, 2.5}

// TransformView returns the view matrix of the transform lab's fixed camera.
func TransformView() (Mat4, error) {
	return LookAt(TransformEye, Vec3{}, Vec3{0, 1, 0})
}

// SceneState is the per-frame state shared by the labs. The window layer
// updates it once per frame through Update; render code only reads it.
type SceneState struct {
	Camera    *FlyCamera
	Model     ModelTransform
	Primitive Primitive
	Filter    Filter
	Direction Direction
	Pattern   Pattern // source image of the filter lab
	ShowInfo  bool
	Mipmaps   bool
	MouseLook bool // feed mouse deltas to the camera
	Elapsed   float32
	Quit      bool

	// Changed is set by Update when a selection (primitive, filter,
	// direction, info or mipmap toggle) changed this frame.
	Changed bool
}

// NewSceneState returns the default state with the camera at cameraPos.
func NewSceneState(cameraPos Vec3) *SceneState {
	return &SceneState{
		Camera:    NewFlyCamera(cameraPos),
		Primitive: PrimitiveTriangle,
		ShowInfo:  true,
		Mipmaps:   true,
	}
}

// Update applies one frame of input.
//
// Bindings: Esc quits; 1-3 pick the primitive and 1-4 the filter; Space
// toggles the filter direction; H toggles the info overlay; M toggles
// mipmapping. With MouseLook, W/A/S/D, Space and LeftShift move the camera;
// otherwise arrows translate the model and W/S/A/D rotate it about X and Y.
func (s *SceneState) Update(in *InputState, dt float32) {
	s.Elapsed += dt
	s.Changed = false

	if in.KeyPressed(KeyEscape) {
		s.Quit = true
	}

	for i, k := range [...]Key{Key1, Key2, Key3, Key4} {
		if !in.KeyPressed(k) {
			continue
		}
		if i < 3 {
			s.Primitive = Primitive(i + 1)
		}
		s.Filter = Filter(i)
		s.Changed = true
	}
	if in.KeyPressed(KeyH) {
		s.ShowInfo = !s.ShowInfo
		s.Changed = true
	}
	if in.KeyPressed(KeyM) {
		s.Mipmaps = !s.Mipmaps
		s.Changed = true
	}

	if s.MouseLook {
		s.updateCamera(in, dt)
		return
	}

	if in.KeyPressed(KeySpace) {
		s.Direction = s.Direction.Toggle()
		s.Changed = true
	}
	s.updateModel(in)
}

func (s *SceneState) updateCamera(in *InputState, dt float32) {
	if s.Camera == nil {
		return
	}
	dx, dy := in.MouseDelta()
	if dx != 0 || dy != 0 {
		s.Camera.ProcessMouse(dx, dy)
	}

	var dir Movement
	for _, b := range cameraBindings {
		if in.KeyDown(b.key) {
			dir |= b.move
		}
	}
	s.Camera.Move(dir, dt)
}

var cameraBindings = [...]struct {
	key  Key
	move Movement
}{
	{KeyW, MoveForward},
	{KeyS, MoveBackward},
	{KeyA, MoveLeft},
	{KeyD, MoveRight},
	{KeySpace, MoveUp},
	{KeyLeftShift, MoveDown},
}

func (s *SceneState) updateModel(in *InputState) {
	if in.KeyRepeated(KeyUp) {
		s.Model.Position[1] += TranslateStep
	}
	if in.KeyRepeated(KeyDown) {
		s.Model.Position[1] -= TranslateStep
	}
	if in.KeyRepeated(KeyLeft) {
		s.Model.Position[0] -= TranslateStep
	}
	if in.KeyRepeated(KeyRight) {
		s.Model.Position[0] += TranslateStep
	}
	if in.KeyRepeated(KeyW) {
		s.Model.AngleX += RotateStep
	}
	if in.KeyRepeated(KeyS) {
		s.Model.AngleX -= RotateStep
	}
	if in.KeyRepeated(KeyA) {
		s.Model.AngleY += RotateStep
	}
	if in.KeyRepeated(KeyD) {
		s.Model.AngleY -= RotateStep
	}
}

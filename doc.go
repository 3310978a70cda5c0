/*
Package gllab provides the reusable pieces of a set of OpenGL teaching labs:
transform math, a minimal Wavefront OBJ loader, a fly camera with per-frame
scene state, the built-in meshes, procedural textures and 1D convolution
filters.

# Overview

Everything in this package is pure Go and runs without a GL context. The
backend/opengl package uploads the results: meshes become VAOs, images become
textures and matrices become uniforms. The example command wires both
together into the six labs.

# Quick Start

	cfg := gllab.DefaultConfig()
	scene := cfg.NewSceneState()
	adapter := opengl.NewGLFWInputAdapter(window)

	proj, err := cfg.ProjectionMatrix(800.0 / 600.0)
	if err != nil {
	    return err
	}

	for !window.ShouldClose() {
	    adapter.BeginFrame()
	    glfw.PollEvents()
	    scene.Update(adapter.EndFrame(dt), dt)

	    view, _ := scene.Camera.ViewMatrix()
	    mvp := gllab.Compose(proj, view, scene.Model.Matrix())
	    program.SetMat4("uMVP", mvp)
	    ...
	}

# Matrix Convention

Mat4 is row-major: element (row, col) is m[row*4+col]. Points are column
vectors, so Compose(a, b, c) applied to p is a*(b*(c*p)) and the rightmost
matrix acts first. Upload with transpose=true (Program.SetMat4 does this) or
convert with ColumnMajor for mgl32 interop.

Projections follow OpenGL clip space. The camera looks down -Z; view-space
depth -near maps to NDC z = -1 and -far maps to +1. LookAt and Perspective
share this convention and every lab uses the same pair.

# Errors

	ErrDegenerateBasis  LookAt with eye == target or up parallel to the view direction
	ErrInvalidFrustum   Perspective or Ortho with an impossible frustum
	ErrZeroAxis         RotationAxisAngle with a zero-length axis
	*ParseError         malformed v, vn or f line in an OBJ file

Sentinels are wrapped with the offending values; test with errors.Is and
errors.As. An unreadable OBJ file is not an error: LoadOBJ logs
ErrFileUnreadable and returns DefaultCube.

# OBJ Subset

Only three line types are read:

	v x y z [w]        position, w checked and ignored
	vn x y z           normal
	f v[/vt][/vn] ...  face, 1-based indices, vt ignored

Each face-vertex emits one position and one normal, in file order, with no
deduplication. Faces with more than three vertices are passed through unless
WithTriangulation is given. A missing or out-of-range normal index emits
FallbackNormal (0, 1, 0). Numbers must be finite; NaN, Inf and extra
components are parse errors. Faces using negative (relative) indices are skipped
and counted in a warning.

# Keyboard Reference

	Esc              Quit
	1 2 3            Primitive: triangle, square, cube
	1 2 3 4          Filter: original, blur, sharpen, edge
	H                Toggle the info overlay
	M                Toggle mipmapping

With mouse look (objects, texture and phong labs):

	Mouse            Yaw and pitch, pitch clamped to +-89 degrees
	W A S D          Move forward, left, back, right
	Space LShift     Move up, down

Without mouse look (transform and filter labs):

	Arrows           Translate the model by TranslateStep (repeats while held)
	W S              Rotate about X by RotateStep
	A D              Rotate about Y by RotateStep
	Space            Toggle the filter direction

# Logging

The package logs through log/slog. Logger returns the default logger, whose
level follows SetVerbose and SetLogLevel. The OBJ loader accepts its own
logger through WithLogger.
*/
package gllab

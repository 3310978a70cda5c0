package gllab

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Model is a renderer-ready vertex/normal buffer pair. Both slices hold
// groups of three floats, one group per emitted vertex, in emission order.
// Vertices are not deduplicated.
type Model struct {
	Positions []float32
	Normals   []float32

	// Fallback is set when the model is the built-in cube returned in place of
	// an unreadable file.
	Fallback bool
}

// VertexCount returns the number of emitted vertices.
func (m *Model) VertexCount() int {
	return len(m.Positions) / 3
}

// Position returns the i-th emitted position.
func (m *Model) Position(i int) Vec3 {
	return Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

// Normal returns the i-th emitted normal.
func (m *Model) Normal(i int) Vec3 {
	return Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

func (m *Model) appendVertex(p, n Vec3) {
	m.Positions = append(m.Positions, p[0], p[1], p[2])
	m.Normals = append(m.Normals, n[0], n[1], n[2])
}

// FallbackNormal is emitted for face vertices without a usable normal index.
var FallbackNormal = Vec3{0, 1, 0}

// LoadOBJ reads and decodes the OBJ file at path.
//
// A file that cannot be opened or read is not an error: the loader logs a
// warning and returns DefaultCube with Fallback set. Malformed content is
// reported as a *ParseError.
func LoadOBJ(path string, opts ...LoaderOption) (*Model, error) {
	o := applyLoaderOptions(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		o.logger.Warn("obj: using default cube",
			"path", path, "error", fmt.Errorf("%w: %w", ErrFileUnreadable, err))
		return DefaultCube(), nil
	}

	m, err := DecodeOBJ(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	o.logger.Debug("obj: loaded", "path", path, "vertices", m.VertexCount())
	return m, nil
}

// DecodeOBJ parses OBJ text from r. Only v, vn and f lines are interpreted;
// everything else is ignored.
func DecodeOBJ(r io.Reader, opts ...LoaderOption) (*Model, error) {
	dec := &objDecoder{opts: applyLoaderOptions(opts)}
	if err := dec.collect(r); err != nil {
		return nil, err
	}
	return dec.expand()
}

// faceRef is one face-vertex: 0-based position and normal indices.
// A normal of -1 means none was given or it is out of range.
type faceRef struct {
	v, n int
}

type objFace struct {
	line int
	text string
	refs []faceRef
}

type objDecoder struct {
	opts      loaderOptions
	positions []Vec3
	normals   []Vec3
	faces     []objFace
	line      int
	skipped   int
}

// collect reads every line, accumulating positions, normals and faces.
func (dec *objDecoder) collect(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		dec.line++
		if err := dec.parseLine(strings.TrimSpace(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read obj: %w", err)
	}
	if dec.skipped > 0 {
		dec.opts.logger.Warn("obj: skipped faces with relative indices", "count", dec.skipped)
	}
	return nil
}

func (dec *objDecoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "v":
		p, err := parseVec3(fields[1:], 4)
		if err != nil {
			return dec.parseError(line, err)
		}
		dec.positions = append(dec.positions, p)
	case "vn":
		n, err := parseVec3(fields[1:], 3)
		if err != nil {
			return dec.parseError(line, err)
		}
		dec.normals = append(dec.normals, n)
	case "f":
		return dec.parseFace(line, fields[1:])
	}
	return nil
}

// parseFace parses f v1[/vt1][/vn1] v2[/vt2][/vn2] ...
func (dec *objDecoder) parseFace(line string, fields []string) error {
	face := objFace{line: dec.line, text: line, refs: make([]faceRef, 0, len(fields))}
	for _, f := range fields {
		parts := strings.Split(f, "/")

		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return dec.parseError(line, fmt.Errorf("vertex index: %w", err))
		}
		if v < 0 {
			dec.skipped++
			dec.opts.logger.Debug("obj: relative index not supported", "line", dec.line)
			return nil
		}
		if v == 0 {
			return dec.parseError(line, errors.New("vertex index 0"))
		}

		ref := faceRef{v: v - 1, n: -1}
		if len(parts) > 2 && parts[2] != "" {
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return dec.parseError(line, fmt.Errorf("normal index: %w", err))
			}
			if n < 0 {
				dec.skipped++
				dec.opts.logger.Debug("obj: relative index not supported", "line", dec.line)
				return nil
			}
			ref.n = n - 1
		}
		face.refs = append(face.refs, ref)
	}
	dec.faces = append(dec.faces, face)
	return nil
}

// expand emits one position/normal pair per face-vertex, in file order.
func (dec *objDecoder) expand() (*Model, error) {
	m := &Model{}
	for _, face := range dec.faces {
		for _, ref := range face.refs {
			if ref.v >= len(dec.positions) {
				return nil, &ParseError{
					Line: face.line,
					Text: face.text,
					Err:  fmt.Errorf("vertex index %d out of range (%d positions)", ref.v+1, len(dec.positions)),
				}
			}
		}

		refs := face.refs
		if dec.opts.triangulate && len(refs) > 3 {
			refs = fanTriangulate(refs)
		}
		for _, ref := range refs {
			n := FallbackNormal
			if ref.n >= 0 && ref.n < len(dec.normals) {
				n = dec.normals[ref.n]
			}
			m.appendVertex(dec.positions[ref.v], n)
		}
	}
	return m, nil
}

func (dec *objDecoder) parseError(line string, err error) error {
	return &ParseError{Line: dec.line, Text: line, Err: err}
}

// fanTriangulate splits a convex polygon into triangles (0, i, i+1).
func fanTriangulate(refs []faceRef) []faceRef {
	out := make([]faceRef, 0, 3*(len(refs)-2))
	for i := 1; i+1 < len(refs); i++ {
		out = append(out, refs[0], refs[i], refs[i+1])
	}
	return out
}

// parseVec3 reads x, y and z from fields. Up to maxFields components are
// accepted; any past the third (the optional w of a position) must be finite
// numbers and are otherwise ignored.
func parseVec3(fields []string, maxFields int) (Vec3, error) {
	if len(fields) < 3 || len(fields) > maxFields {
		return Vec3{}, fmt.Errorf("expected 3 to %d components, got %d", maxFields, len(fields))
	}
	var v Vec3
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return Vec3{}, err
		}
		if x := float32(f); math32.IsNaN(x) || math32.IsInf(x, 0) {
			return Vec3{}, fmt.Errorf("component %d is not finite: %q", i+1, field)
		}
		if i < 3 {
			v[i] = float32(f)
		}
	}
	return v, nil
}

// DefaultCube returns the model used when a file cannot be read: a cube
// spanning [-1, 1] on every axis, 12 triangles, constant outward normal per
// face and counter-clockwise winding seen from outside.
func DefaultCube() *Model {
	m := &Model{Fallback: true}
	for _, face := range cubeFaces {
		for _, k := range quadTriangles {
			m.appendVertex(face.corner(k, 1), face.normal)
		}
	}
	return m
}

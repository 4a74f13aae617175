package formats

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

	"github.com/Faultbox/scenery/pkg/math"
)

// OBJ format errors.
var (
	ErrInvalidOBJVertex = errors.New("invalid OBJ vertex statement")
	ErrInvalidOBJFace   = errors.New("invalid OBJ face statement")
	ErrOBJIndexRange    = errors.New("OBJ index out of range")
)

// FaceVertex is one corner of a face. Indices are 0-based; -1 marks a
// missing texture coordinate or normal.
type FaceVertex struct {
	V, VT, VN int
}

// OBJ is the subset of Wavefront OBJ the viewer reads and the generator
// writes: positions, normals, texture coordinates and triangle faces.
type OBJ struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	// Faces are triangles; polygons are fan-triangulated while parsing.
	Faces [][3]FaceVertex
}

// ParseOBJ parses OBJ text. Unknown statements (o, g, s, usemtl, ...) and
// comments are skipped.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		tok := strings.Fields(line)

		var err error
		switch tok[0] {
		case "v":
			var v math.Vec3
			v, err = parseVec3(tok[1:])
			obj.Positions = append(obj.Positions, v)
		case "vn":
			var v math.Vec3
			v, err = parseVec3(tok[1:])
			obj.Normals = append(obj.Normals, v)
		case "vt":
			var v math.Vec2
			v, err = parseVec2(tok[1:])
			obj.TexCoords = append(obj.TexCoords, v)
		case "f":
			err = obj.parseFace(tok[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}
	return obj, nil
}

// ParseOBJFile reads and parses an OBJ file.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

func parseVec3(tok []string) (math.Vec3, error) {
	if len(tok) < 3 {
		return math.Vec3{}, ErrInvalidOBJVertex
	}
	var c [3]float32
	for i := range c {
		f, err := parseFloat(tok[i])
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: %v", ErrInvalidOBJVertex, err)
		}
		c[i] = f
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func parseVec2(tok []string) (math.Vec2, error) {
	if len(tok) < 1 {
		return math.Vec2{}, ErrInvalidOBJVertex
	}
	var c [2]float32
	for i := 0; i < 2 && i < len(tok); i++ {
		f, err := parseFloat(tok[i])
		if err != nil {
			return math.Vec2{}, fmt.Errorf("%w: %v", ErrInvalidOBJVertex, err)
		}
		c[i] = f
	}
	return math.Vec2{X: c[0], Y: c[1]}, nil
}

func (o *OBJ) parseFace(tok []string) error {
	if len(tok) < 3 {
		return fmt.Errorf("%w: need at least 3 vertices, got %d", ErrInvalidOBJFace, len(tok))
	}
	corners := make([]FaceVertex, len(tok))
	for i, t := range tok {
		fv, err := o.parseFaceVertex(t)
		if err != nil {
			return err
		}
		corners[i] = fv
	}
	for i := 1; i+1 < len(corners); i++ {
		o.Faces = append(o.Faces, [3]FaceVertex{corners[0], corners[i], corners[i+1]})
	}
	return nil
}

// parseFaceVertex handles v, v/vt, v//vn and v/vt/vn.
func (o *OBJ) parseFaceVertex(s string) (FaceVertex, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 || parts[0] == "" {
		return FaceVertex{}, fmt.Errorf("%w: %q", ErrInvalidOBJFace, s)
	}

	fv := FaceVertex{V: -1, VT: -1, VN: -1}
	var err error
	if fv.V, err = resolveIndex(parts[0], len(o.Positions)); err != nil {
		return FaceVertex{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if fv.VT, err = resolveIndex(parts[1], len(o.TexCoords)); err != nil {
			return FaceVertex{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if fv.VN, err = resolveIndex(parts[2], len(o.Normals)); err != nil {
			return FaceVertex{}, err
		}
	}
	return fv, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index.
func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOBJFace, s)
	}
	idx := n - 1
	if n < 0 {
		idx = count + n
	}
	if n == 0 || idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: %d (have %d)", ErrOBJIndexRange, n, count)
	}
	return idx, nil
}

// WriteOBJ writes obj as text. Non-finite normal components are written
// as zero so degenerate generator output stays loadable.
func WriteOBJ(w io.Writer, obj *OBJ) error {
	bw := bufio.NewWriter(w)

	for _, v := range obj.Positions {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	bw.WriteString("\n")
	for _, n := range obj.Normals {
		fmt.Fprintf(bw, "vn %.6f %.6f %.6f\n", finiteOrZero(n.X), finiteOrZero(n.Y), finiteOrZero(n.Z))
	}
	bw.WriteString("\n")
	for _, t := range obj.TexCoords {
		fmt.Fprintf(bw, "vt %.6f %.6f\n", t.X, t.Y)
	}
	bw.WriteString("\n")
	for _, f := range obj.Faces {
		bw.WriteString("f")
		for _, c := range f {
			bw.WriteString(" " + formatFaceVertex(c))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func formatFaceVertex(c FaceVertex) string {
	switch {
	case c.VT < 0 && c.VN < 0:
		return strconv.Itoa(c.V + 1)
	case c.VN < 0:
		return fmt.Sprintf("%d/%d", c.V+1, c.VT+1)
	case c.VT < 0:
		return fmt.Sprintf("%d//%d", c.V+1, c.VN+1)
	default:
		return fmt.Sprintf("%d/%d/%d", c.V+1, c.VT+1, c.VN+1)
	}
}

func finiteOrZero(f float32) float32 {
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0
	}
	return f
}

// WriteOBJFile writes obj to path.
func WriteOBJFile(path string, obj *OBJ) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	if err := WriteOBJ(f, obj); err != nil {
		f.Close()
		return fmt.Errorf("writing OBJ file: %w", err)
	}
	return f.Close()
}

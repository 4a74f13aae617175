package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/scenery/pkg/math"
)

// ErrInvalidPoint is returned for a malformed line in a positional mesh.
var ErrInvalidPoint = errors.New("invalid vertex line")

// ParsePoints parses the early ".3d" format: one "x,y,z" vertex per line,
// every three consecutive vertices forming a triangle. Whitespace works as
// a separator as well. Trailing vertices that do not complete a triangle
// are dropped.
func ParsePoints(data []byte) ([]math.Vec3, error) {
	var pts []math.Vec3
	sc := bufio.NewScanner(bytes.NewReader(data))

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		tok := fields(line)
		if len(tok) != 3 {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrInvalidPoint, line)
		}
		var c [3]float32
		for i := range c {
			f, err := parseFloat(tok[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrInvalidPoint, err)
			}
			c[i] = f
		}
		pts = append(pts, math.Vec3{X: c[0], Y: c[1], Z: c[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	return pts[:len(pts)-len(pts)%3], nil
}

// IsOBJ reports whether data looks like OBJ text rather than a positional
// vertex list: it does if the first statement is a known OBJ keyword.
func IsOBJ(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		kw := strings.Fields(line)[0]
		switch kw {
		case "v", "vn", "vt", "f", "o", "g", "s", "mtllib", "usemtl":
			return true
		}
		return false
	}
	return false
}

// ParseMesh parses either format, deciding with IsOBJ. Positional lists
// come back as an OBJ with one triangle per three positions.
func ParseMesh(data []byte) (*OBJ, error) {
	if IsOBJ(data) {
		return ParseOBJ(data)
	}
	pts, err := ParsePoints(data)
	if err != nil {
		return nil, err
	}
	obj := &OBJ{Positions: pts}
	for i := 0; i+2 < len(pts); i += 3 {
		obj.Faces = append(obj.Faces, [3]FaceVertex{
			{V: i, VT: -1, VN: -1},
			{V: i + 1, VT: -1, VN: -1},
			{V: i + 2, VT: -1, VN: -1},
		})
	}
	return obj, nil
}

// ParseMeshFile reads and parses a mesh file in either format.
func ParseMeshFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}
	return ParseMesh(data)
}

package formats

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/scenery/pkg/math"
)

// Patch file errors.
var (
	ErrTruncatedPatchData = errors.New("truncated patch data")
	ErrPatchIndexRange    = errors.New("patch control point index out of range")
)

// PatchSet is the content of a Bézier patch file.
type PatchSet struct {
	// Patches hold 16 control point indices each, in the row-major order
	// expected by curve.NewPatch.
	Patches       [][16]int
	ControlPoints []math.Vec3
}

// ParsePatches parses a patch file:
//
//	<patch count>
//	<16 comma separated indices>      (one line per patch)
//	<control point count>
//	<x, y, z>                         (one line per control point)
//
// Indices are stored column by column in the file and are transposed here.
func ParsePatches(data []byte) (*PatchSet, error) {
	tok := fields(strings.ReplaceAll(string(data), "\n", " "))
	pos := 0
	next := func() (string, error) {
		if pos >= len(tok) {
			return "", ErrTruncatedPatchData
		}
		pos++
		return tok[pos-1], nil
	}
	nextInt := func() (int, error) {
		s, err := next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid count or index %q", s)
		}
		return n, nil
	}

	nPatches, err := nextInt()
	if err != nil {
		return nil, fmt.Errorf("patch count: %w", err)
	}

	set := &PatchSet{Patches: make([][16]int, nPatches)}
	for p := 0; p < nPatches; p++ {
		for j := 0; j < 16; j++ {
			idx, err := nextInt()
			if err != nil {
				return nil, fmt.Errorf("patch %d index %d: %w", p, j, err)
			}
			row, col := j/4, j%4
			set.Patches[p][col*4+row] = idx
		}
	}

	nPoints, err := nextInt()
	if err != nil {
		return nil, fmt.Errorf("control point count: %w", err)
	}
	set.ControlPoints = make([]math.Vec3, nPoints)
	for i := 0; i < nPoints; i++ {
		var c [3]float32
		for k := range c {
			s, err := next()
			if err != nil {
				return nil, fmt.Errorf("control point %d: %w", i, err)
			}
			if c[k], err = parseFloat(s); err != nil {
				return nil, fmt.Errorf("control point %d: %w", i, err)
			}
		}
		set.ControlPoints[i] = math.Vec3{X: c[0], Y: c[1], Z: c[2]}
	}

	for p, patch := range set.Patches {
		for _, idx := range patch {
			if idx >= nPoints {
				return nil, fmt.Errorf("patch %d: %w: %d (have %d)", p, ErrPatchIndexRange, idx, nPoints)
			}
		}
	}
	return set, nil
}

// ParsePatchesFile reads and parses a patch file.
func ParsePatchesFile(path string) (*PatchSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patch file: %w", err)
	}
	return ParsePatches(data)
}

// ControlGrid returns the 16 control points of patch i.
func (s *PatchSet) ControlGrid(i int) [16]math.Vec3 {
	var grid [16]math.Vec3
	for k, idx := range s.Patches[i] {
		grid[k] = s.ControlPoints[idx]
	}
	return grid
}

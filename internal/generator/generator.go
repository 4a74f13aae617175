// Package generator builds primitive meshes and tessellated Bézier
// surfaces as OBJ data.
//
// Every vertex carries its own normal and texture coordinate, so the
// position, normal and texcoord indices of a face corner are always equal.
// Triangles wind counter-clockwise seen from the side the normal points to.
package generator

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scenery/pkg/formats"
	"github.com/Faultbox/scenery/pkg/math"
)

// ErrInvalidParameter is returned for sizes or subdivision counts a shape
// cannot be built with.
var ErrInvalidParameter = errors.New("invalid shape parameter")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

type builder struct {
	obj formats.OBJ
}

// vertex adds a corner and returns its index.
func (b *builder) vertex(pos, normal math.Vec3, u, v float32) int {
	b.obj.Positions = append(b.obj.Positions, pos)
	b.obj.Normals = append(b.obj.Normals, normal)
	b.obj.TexCoords = append(b.obj.TexCoords, math.Vec2{X: u, Y: v})
	return len(b.obj.Positions) - 1
}

func (b *builder) triangle(i0, i1, i2 int) {
	b.obj.Faces = append(b.obj.Faces, [3]formats.FaceVertex{
		{V: i0, VT: i0, VN: i0},
		{V: i1, VT: i1, VN: i1},
		{V: i2, VT: i2, VN: i2},
	})
}

// quad adds the two triangles of a grid cell. a and b run along one edge,
// c and d along the next, with c above a.
func (b *builder) quad(a, bb, c, d int) {
	b.triangle(a, bb, c)
	b.triangle(c, bb, d)
}

func (b *builder) result() *formats.OBJ {
	obj := b.obj
	return &obj
}

// grid adds a flat (div+1)x(div+1) patch spanning origin..origin+u+v.
// The normal is v x u, which is also the side the triangles face.
func (b *builder) grid(div int, origin, u, v math.Vec3) {
	normal := v.Cross(u).Normalize()
	base := len(b.obj.Positions)
	for row := 0; row <= div; row++ {
		fr := float32(row) / float32(div)
		for col := 0; col <= div; col++ {
			fc := float32(col) / float32(div)
			pos := origin.Add(u.Scale(fc)).Add(v.Scale(fr))
			b.vertex(pos, normal, fc, fr)
		}
	}

	stride := div + 1
	for row := 0; row < div; row++ {
		for col := 0; col < div; col++ {
			v00 := base + row*stride + col
			v01 := v00 + 1
			v10 := v00 + stride
			v11 := v10 + 1
			b.triangle(v00, v10, v11)
			b.triangle(v00, v11, v01)
		}
	}
}

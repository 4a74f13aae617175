package curve

import (
	"github.com/Faultbox/scenery/pkg/math"
)

// bezier is the cubic Bézier basis. It is symmetric, so it is also its own
// transpose.
var bezier = math.Mat4{
	-1, 3, -3, 1,
	3, -6, 3, 0,
	-3, 3, 0, 0,
	1, 0, 0, 0,
}

// Patch is a bicubic Bézier surface with its per-axis M·P·Mᵗ matrices
// precomputed.
type Patch struct {
	mpmt [3]math.Mat4
}

// NewPatch builds a patch from 16 control points in row-major order:
// points[i*4+j] is row i (along u), column j (along v).
func NewPatch(points [16]math.Vec3) *Patch {
	var px, py, pz math.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			p := points[i*4+j]
			// column-major: element (row i, col j) lives at j*4+i
			px[j*4+i] = p.X
			py[j*4+i] = p.Y
			pz[j*4+i] = p.Z
		}
	}

	mt := bezier.Transpose()
	return &Patch{mpmt: [3]math.Mat4{
		bezier.Mul(px).Mul(mt),
		bezier.Mul(py).Mul(mt),
		bezier.Mul(pz).Mul(mt),
	}}
}

// Evaluate returns the position and unit normal at (u, v). Where the
// surface is degenerate and the partial derivatives are parallel, the normal
// falls back to +Y.
func (p *Patch) Evaluate(u, v float32) (pos, normal math.Vec3) {
	U, V := math.Cubic(u), math.Cubic(v)
	dU, dV := math.CubicDerivative(u), math.CubicDerivative(v)

	pos = p.eval(U, V)
	du := p.eval(dU, V)
	dv := p.eval(U, dV)

	normal = du.Cross(dv).Normalize()
	if normal == math.Zero3 || !normal.IsFinite() {
		normal = math.UnitY
	}
	return pos, normal
}

// eval computes a·MPMt·b for each axis.
func (p *Patch) eval(a, b math.Vec4) math.Vec3 {
	return math.Vec3{
		X: a.Dot(p.mpmt[0].MulVec4(b)),
		Y: a.Dot(p.mpmt[1].MulVec4(b)),
		Z: a.Dot(p.mpmt[2].MulVec4(b)),
	}
}

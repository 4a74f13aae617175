package generator

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/scenery/pkg/formats"
	"github.com/Faultbox/scenery/pkg/math"
)

// Plane is a square on the XZ plane centered at the origin, facing +Y.
func Plane(length float32, divisions int) (*formats.OBJ, error) {
	if err := checkBox(length, divisions); err != nil {
		return nil, err
	}
	hl := length / 2
	b := &builder{}
	b.grid(divisions,
		math.Vec3{X: -hl, Z: -hl},
		math.Vec3{X: length},
		math.Vec3{Z: length},
	)
	return b.result(), nil
}

// Box is an axis-aligned cube centered at the origin with faces pointing out.
func Box(length float32, divisions int) (*formats.OBJ, error) {
	return cube(length, divisions, false)
}

// Skybox is a cube whose faces point inward, for viewing from inside.
func Skybox(length float32, divisions int) (*formats.OBJ, error) {
	return cube(length, divisions, true)
}

func checkBox(length float32, divisions int) error {
	if !(length > 0) {
		return invalid("length %v must be positive", length)
	}
	if divisions < 1 {
		return invalid("divisions %d must be at least 1", divisions)
	}
	return nil
}

// cubeFaces lists the outward normal of each face with two edge axes whose
// cross product v x u equals it.
var cubeFaces = []struct{ n, u, v math.Vec3 }{
	{math.UnitX, math.UnitZ, math.UnitY},
	{math.UnitX.Neg(), math.UnitY, math.UnitZ},
	{math.UnitY, math.UnitX, math.UnitZ},
	{math.UnitY.Neg(), math.UnitZ, math.UnitX},
	{math.UnitZ, math.UnitY, math.UnitX},
	{math.UnitZ.Neg(), math.UnitX, math.UnitY},
}

func cube(length float32, divisions int, inward bool) (*formats.OBJ, error) {
	if err := checkBox(length, divisions); err != nil {
		return nil, err
	}
	hl := length / 2
	b := &builder{}
	for _, f := range cubeFaces {
		u, v := f.u, f.v
		if inward {
			u, v = v, u
		}
		origin := f.n.Scale(hl).Sub(u.Scale(hl)).Sub(v.Scale(hl))
		b.grid(divisions, origin, u.Scale(length), v.Scale(length))
	}
	return b.result(), nil
}

// Sphere is centered at the origin. Slices divide the longitude, stacks
// the latitude from the south pole to the north pole.
func Sphere(radius float32, slices, stacks int) (*formats.OBJ, error) {
	if !(radius > 0) {
		return nil, invalid("radius %v must be positive", radius)
	}
	if slices < 3 {
		return nil, invalid("slices %d must be at least 3", slices)
	}
	if stacks < 2 {
		return nil, invalid("stacks %d must be at least 2", stacks)
	}

	b := &builder{}
	ring := stacks + 1
	for slice := 0; slice <= slices; slice++ {
		u := float32(slice) / float32(slices)
		yaw := 2 * math.Pi * u
		for stack := 0; stack <= stacks; stack++ {
			v := float32(stack) / float32(stacks)
			pitch := -math.Pi/2 + math.Pi*v
			n := spherical(yaw, pitch)
			b.vertex(n.Scale(radius), n, u, v)
		}
	}

	for slice := 0; slice < slices; slice++ {
		for stack := 0; stack < stacks; stack++ {
			a := slice*ring + stack
			bb := a + ring
			c := a + 1
			d := bb + 1
			if stack > 0 {
				b.triangle(a, bb, c)
			}
			if stack < stacks-1 {
				b.triangle(c, bb, d)
			}
		}
	}
	return b.result(), nil
}

// spherical returns the unit vector at yaw (around +Y from +Z) and pitch.
func spherical(yaw, pitch float32) math.Vec3 {
	sy, cy := math32.Sincos(yaw)
	sp, cp := math32.Sincos(pitch)
	return math.Vec3{X: cp * sy, Y: sp, Z: cp * cy}
}

// Cone stands on the XZ plane with its apex at (0, height, 0). Stacks
// divide the side from base to apex.
func Cone(radius, height float32, slices, stacks int) (*formats.OBJ, error) {
	if !(radius > 0) || !(height > 0) {
		return nil, invalid("radius %v and height %v must be positive", radius, height)
	}
	if slices < 3 {
		return nil, invalid("slices %d must be at least 3", slices)
	}
	if stacks < 1 {
		return nil, invalid("stacks %d must be at least 1", stacks)
	}

	b := &builder{}
	down := math.UnitY.Neg()

	// Base disk.
	center := b.vertex(math.Zero3, down, 0.5, 0.5)
	rim := make([]int, slices+1)
	for slice := 0; slice <= slices; slice++ {
		sy, cy := math32.Sincos(2 * math.Pi * float32(slice) / float32(slices))
		rim[slice] = b.vertex(math.Vec3{X: radius * sy, Z: radius * cy}, down, 0.5+0.5*sy, 0.5+0.5*cy)
	}
	for slice := 0; slice < slices; slice++ {
		b.triangle(center, rim[slice+1], rim[slice])
	}

	// Side.
	slope := radius / height
	ring := stacks + 1
	base := len(b.obj.Positions)
	for slice := 0; slice <= slices; slice++ {
		u := float32(slice) / float32(slices)
		sy, cy := math32.Sincos(2 * math.Pi * u)
		n := math.Vec3{X: sy, Y: slope, Z: cy}.Normalize()
		for stack := 0; stack <= stacks; stack++ {
			v := float32(stack) / float32(stacks)
			r := radius * (1 - v)
			b.vertex(math.Vec3{X: r * sy, Y: v * height, Z: r * cy}, n, u, v)
		}
	}
	for slice := 0; slice < slices; slice++ {
		for stack := 0; stack < stacks; stack++ {
			a := base + slice*ring + stack
			bb := a + ring
			c := a + 1
			d := bb + 1
			b.triangle(a, bb, c)
			if stack < stacks-1 {
				b.triangle(c, bb, d)
			}
		}
	}
	return b.result(), nil
}

// Tube is a hollow cylinder centered at the origin along Y, with outer and
// inner walls and flat rings closing the top and bottom.
func Tube(inner, outer, height float32, slices int) (*formats.OBJ, error) {
	if !(inner >= 0) || !(outer > inner) {
		return nil, invalid("radii %v and %v need 0 <= inner < outer", inner, outer)
	}
	if !(height > 0) {
		return nil, invalid("height %v must be positive", height)
	}
	if slices < 3 {
		return nil, invalid("slices %d must be at least 3", slices)
	}

	h2 := height / 2
	b := &builder{}

	// wall adds a strip of slices quads between two circles. flip reverses
	// the winding for surfaces facing the other way.
	wall := func(r0, y0, r1, y1 float32, normal func(sy, cy float32) math.Vec3, flip bool) {
		base := len(b.obj.Positions)
		for slice := 0; slice <= slices; slice++ {
			u := float32(slice) / float32(slices)
			sy, cy := math32.Sincos(2 * math.Pi * u)
			n := normal(sy, cy)
			b.vertex(math.Vec3{X: r0 * sy, Y: y0, Z: r0 * cy}, n, u, 0)
			b.vertex(math.Vec3{X: r1 * sy, Y: y1, Z: r1 * cy}, n, u, 1)
		}
		for slice := 0; slice < slices; slice++ {
			a := base + slice*2
			bb := a + 2
			c := a + 1
			d := bb + 1
			if flip {
				b.quad(bb, a, d, c)
			} else {
				b.quad(a, bb, c, d)
			}
		}
	}

	outward := func(sy, cy float32) math.Vec3 { return math.Vec3{X: sy, Z: cy} }
	inward := func(sy, cy float32) math.Vec3 { return math.Vec3{X: -sy, Z: -cy} }
	up := func(float32, float32) math.Vec3 { return math.UnitY }
	down := func(float32, float32) math.Vec3 { return math.UnitY.Neg() }

	wall(outer, -h2, outer, h2, outward, false)
	wall(inner, -h2, inner, h2, inward, true)
	wall(outer, h2, inner, h2, up, false)
	wall(outer, -h2, inner, -h2, down, true)

	return b.result(), nil
}

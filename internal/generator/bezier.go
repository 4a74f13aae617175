package generator

import (
	"github.com/Faultbox/scenery/pkg/curve"
	"github.com/Faultbox/scenery/pkg/formats"
)

// Bezier tessellates every patch of set into a (tess+1)x(tess+1) vertex
// grid. Texture coordinates run (1-u, 1-v) so the teapot-style patch files
// map textures the right way up.
func Bezier(set *formats.PatchSet, tessellation int) (*formats.OBJ, error) {
	if set == nil || len(set.Patches) == 0 {
		return nil, invalid("patch set is empty")
	}
	if tessellation < 1 {
		return nil, invalid("tessellation %d must be at least 1", tessellation)
	}

	b := &builder{}
	step := 1 / float32(tessellation)
	stride := tessellation + 1
	for i := range set.Patches {
		patch := curve.NewPatch(set.ControlGrid(i))
		base := len(b.obj.Positions)
		for ui := 0; ui <= tessellation; ui++ {
			u := float32(ui) * step
			for vi := 0; vi <= tessellation; vi++ {
				v := float32(vi) * step
				pos, normal := patch.Evaluate(u, v)
				b.vertex(pos, normal, 1-u, 1-v)
			}
		}

		for ui := 0; ui < tessellation; ui++ {
			for vi := 0; vi < tessellation; vi++ {
				v00 := base + ui*stride + vi
				v01 := v00 + 1
				v10 := v00 + stride
				v11 := v10 + 1
				b.triangle(v00, v10, v11)
				b.triangle(v00, v11, v01)
			}
		}
	}
	return b.result(), nil
}

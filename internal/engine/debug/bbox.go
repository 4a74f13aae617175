// Package debug provides debug visualization and capture utilities.
package debug

import (
	"github.com/Faultbox/scenery/internal/engine/model"
	"github.com/Faultbox/scenery/pkg/math"
)

// BoxEdgeVertexCount is the number of line endpoints of a box wireframe
// (12 edges × 2).
const BoxEdgeVertexCount = 24

// BoxEdges returns the wireframe of a mesh's bounding box as line
// endpoint pairs in mesh space, grown by padding on every side.
func BoxEdges(b model.Bounds, padding float32) [BoxEdgeVertexCount]math.Vec3 {
	minX, minY, minZ := b.Min[0]-padding, b.Min[1]-padding, b.Min[2]-padding
	maxX, maxY, maxZ := b.Max[0]+padding, b.Max[1]+padding, b.Max[2]+padding

	c := func(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }
	return [BoxEdgeVertexCount]math.Vec3{
		// Bottom face
		c(minX, minY, minZ), c(maxX, minY, minZ),
		c(maxX, minY, minZ), c(maxX, minY, maxZ),
		c(maxX, minY, maxZ), c(minX, minY, maxZ),
		c(minX, minY, maxZ), c(minX, minY, minZ),
		// Top face
		c(minX, maxY, minZ), c(maxX, maxY, minZ),
		c(maxX, maxY, minZ), c(maxX, maxY, maxZ),
		c(maxX, maxY, maxZ), c(minX, maxY, maxZ),
		c(minX, maxY, maxZ), c(minX, maxY, minZ),
		// Vertical edges
		c(minX, minY, minZ), c(minX, maxY, minZ),
		c(maxX, minY, minZ), c(maxX, maxY, minZ),
		c(maxX, minY, maxZ), c(maxX, maxY, maxZ),
		c(minX, minY, maxZ), c(minX, maxY, maxZ),
	}
}

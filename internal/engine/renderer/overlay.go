package renderer

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/Faultbox/scenery/internal/engine/debug"
	"github.com/Faultbox/scenery/internal/engine/scene"
	"github.com/Faultbox/scenery/pkg/math"
)

// axisLength is how far the debug axes reach from the origin.
const axisLength = 1000

// drawOverlay draws the world axes, light markers, mesh bounds and
// animation paths unlit.
func (r *Renderer) drawOverlay(frame *scene.Frame) {
	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT | gl.POLYGON_BIT | gl.LINE_BIT | gl.POINT_BIT)
	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.TEXTURE_2D)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.LoadMatrixf(r.view.Ptr())
	drawAxes()
	r.drawLightMarkers()

	for i := range frame.Items {
		item := &frame.Items[i]
		mv := r.view.Mul(item.Transform)
		gl.LoadMatrixf(mv.Ptr())
		drawBounds(item)
	}

	for i := range frame.Paths {
		p := &frame.Paths[i]
		mv := r.view.Mul(p.Transform)
		gl.LoadMatrixf(mv.Ptr())
		drawPath(p)
	}
	gl.LoadMatrixf(r.view.Ptr())

	gl.PopAttrib()
}

func drawAxes() {
	gl.LineWidth(1)
	gl.Begin(gl.LINES)
	gl.Color3f(1, 0, 0)
	gl.Vertex3f(-axisLength, 0, 0)
	gl.Vertex3f(axisLength, 0, 0)
	gl.Color3f(0, 1, 0)
	gl.Vertex3f(0, -axisLength, 0)
	gl.Vertex3f(0, axisLength, 0)
	gl.Color3f(0, 0, 1)
	gl.Vertex3f(0, 0, -axisLength)
	gl.Vertex3f(0, 0, axisLength)
	gl.End()
}

// drawLightMarkers marks point and spot lights with a dot, and spots and
// directional lights with a short line along their direction.
func (r *Renderer) drawLightMarkers() {
	gl.PointSize(8)
	gl.Color3f(1, 1, 0)
	gl.Begin(gl.POINTS)
	for _, l := range r.lights.Lights {
		if l.HasLocation() {
			vertex(l.Position)
		}
	}
	gl.End()

	gl.Begin(gl.LINES)
	for _, l := range r.lights.Lights {
		dir := l.Direction.Normalize()
		if dir == math.Zero3 {
			continue
		}
		from := l.Position
		if !l.HasLocation() {
			from = math.Zero3
		}
		vertex(from)
		vertex(from.Add(dir))
	}
	gl.End()
}

func drawBounds(item *scene.DrawItem) {
	if item.Mesh == nil || len(item.Mesh.Vertices) == 0 {
		return
	}
	gl.Color3f(0, 1, 1)
	gl.Begin(gl.LINES)
	for _, v := range debug.BoxEdges(item.Mesh.Bounds, 0) {
		vertex(v)
	}
	gl.End()
}

func drawPath(p *scene.PathOverlay) {
	gl.Color3f(1, 1, 1)
	gl.Begin(gl.LINE_LOOP)
	for _, pt := range p.Points {
		vertex(pt)
	}
	gl.End()

	gl.PointSize(5)
	gl.Color3f(1, 0.5, 0)
	gl.Begin(gl.POINTS)
	for _, pt := range p.ControlPoints {
		vertex(pt)
	}
	gl.End()
}

func vertex(v math.Vec3) {
	gl.Vertex3f(v.X, v.Y, v.Z)
}

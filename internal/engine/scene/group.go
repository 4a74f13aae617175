package scene

import (
	"github.com/Faultbox/scenery/internal/engine/model"
	"github.com/Faultbox/scenery/internal/engine/texture"
	"github.com/Faultbox/scenery/pkg/math"
)

// Material is the fixed-function material of a model reference.
// Colors are RGBA in [0,1].
type Material struct {
	Diffuse   [4]float32
	Ambient   [4]float32
	Specular  [4]float32
	Emissive  [4]float32
	Shininess float32
}

// DefaultMaterial is light grey with a dim ambient term and no highlights.
func DefaultMaterial() Material {
	const d, a = 200.0 / 255, 50.0 / 255
	return Material{
		Diffuse:  [4]float32{d, d, d, 1},
		Ambient:  [4]float32{a, a, a, 1},
		Specular: [4]float32{0, 0, 0, 1},
		Emissive: [4]float32{0, 0, 0, 1},
	}
}

// ModelReference names a mesh and optional texture by filename. The files
// themselves live in the asset store.
type ModelReference struct {
	Model    string
	Texture  string
	Material Material
}

// Group is a scene graph node.
type Group struct {
	Description string
	Transforms  []Transform
	Models      []ModelReference
	Children    []*Group

	// frame is the last frame whose animations this group advanced.
	frame uint64
}

// Resolver maps filenames to loaded resources. A nil result means the
// resource is unavailable; the loader has already reported why.
type Resolver interface {
	Mesh(name string) *model.Mesh
	Texture(name string) *texture.Image
}

// DrawItem is one resolved model ready for the renderer.
type DrawItem struct {
	Transform math.Mat4
	Mesh      *model.Mesh
	Texture   *texture.Image
	Material  Material
}

// PathOverlay is an animation path drawn in the frame of the group that
// declared it.
type PathOverlay struct {
	Transform     math.Mat4
	Points        []math.Vec3
	ControlPoints []math.Vec3
}

// frameContext carries per-frame traversal state.
type frameContext struct {
	frame    uint64
	dt       float32
	resolver Resolver
	opts     FrameOptions
	out      *Frame
}

// applyTransforms composes the group's frame onto parent, then advances
// every animated step. Animations advance at most once per frame even if
// the group is reached twice.
func (g *Group) applyTransforms(parent math.Mat4, ctx *frameContext) math.Mat4 {
	m := parent
	for _, tr := range g.Transforms {
		if ctx.opts.ShowPaths {
			if at, ok := tr.(*AnimatedTranslation); ok {
				ctx.out.Paths = append(ctx.out.Paths, PathOverlay{
					Transform:     m,
					Points:        at.Path(ctx.opts.pathSteps()),
					ControlPoints: at.Points,
				})
			}
		}
		m = compose(m, tr)
	}

	if g.frame != ctx.frame {
		g.frame = ctx.frame
		for _, tr := range g.Transforms {
			advance(tr, ctx.dt)
		}
	}
	return m
}

// render emits the group's models and then its children, depth first.
// Children receive the composed matrix by value, so nothing a child does
// reaches its siblings.
func (g *Group) render(parent math.Mat4, ctx *frameContext) {
	m := g.applyTransforms(parent, ctx)

	for _, ref := range g.Models {
		mesh := ctx.resolver.Mesh(ref.Model)
		if mesh == nil {
			continue
		}
		item := DrawItem{Transform: m, Mesh: mesh, Material: ref.Material}
		if ref.Texture != "" {
			item.Texture = ctx.resolver.Texture(ref.Texture)
		}
		ctx.out.Items = append(ctx.out.Items, item)
	}

	for _, child := range g.Children {
		child.render(m, ctx)
	}
}

// Walk visits g and its descendants in pre-order.
func (g *Group) Walk(fn func(*Group)) {
	fn(g)
	for _, child := range g.Children {
		child.Walk(fn)
	}
}

// Package scene holds the scene graph: a tree of groups whose transforms
// are composed each frame into a flat list of draw items.
package scene

import (
	"sort"

	"github.com/Faultbox/scenery/internal/engine/camera"
	"github.com/Faultbox/scenery/internal/engine/lighting"
	"github.com/Faultbox/scenery/pkg/math"
)

// DefaultPathSteps is the path overlay resolution per loop.
const DefaultPathSteps = 100

// Window is the requested window size.
type Window struct {
	Width  int
	Height int
}

// Camera is the camera state the scene starts with.
type Camera struct {
	Placement  camera.Placement
	Projection camera.Projection
}

// World is a loaded scene.
type World struct {
	Window Window
	Camera Camera
	Lights []lighting.Light
	Groups []*Group

	frame uint64
}

// FrameOptions controls optional frame output.
type FrameOptions struct {
	// ShowPaths adds animation path polylines to the frame.
	ShowPaths bool
	// PathSteps is the polyline resolution. Zero means DefaultPathSteps.
	PathSteps int
}

func (o FrameOptions) pathSteps() int {
	if o.PathSteps > 0 {
		return o.PathSteps
	}
	return DefaultPathSteps
}

// Frame is everything the renderer needs for one frame, in draw order.
type Frame struct {
	Items []DrawItem
	Paths []PathOverlay
}

// Frame traverses the scene, returning the draw list at the current
// animation phases, and then advances every animation by dt seconds.
func (w *World) Frame(dt float32, resolver Resolver, opts FrameOptions) *Frame {
	w.frame++
	out := &Frame{}
	ctx := &frameContext{
		frame:    w.frame,
		dt:       dt,
		resolver: resolver,
		opts:     opts,
		out:      out,
	}

	root := math.Identity()
	for _, g := range w.Groups {
		g.render(root, ctx)
	}
	return out
}

// Walk visits every group in pre-order.
func (w *World) Walk(fn func(*Group)) {
	for _, g := range w.Groups {
		g.Walk(fn)
	}
}

// ModelFiles returns the distinct model filenames, sorted.
func (w *World) ModelFiles() []string {
	return w.files(func(ref ModelReference) string { return ref.Model })
}

// TextureFiles returns the distinct texture filenames, sorted.
func (w *World) TextureFiles() []string {
	return w.files(func(ref ModelReference) string { return ref.Texture })
}

func (w *World) files(pick func(ModelReference) string) []string {
	seen := make(map[string]struct{})
	w.Walk(func(g *Group) {
		for _, ref := range g.Models {
			if name := pick(ref); name != "" {
				seen[name] = struct{}{}
			}
		}
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Stats counts groups, model references and animated steps.
type Stats struct {
	Groups     int
	Models     int
	Animations int
}

// Stats summarizes the scene for logging.
func (w *World) Stats() Stats {
	var s Stats
	w.Walk(func(g *Group) {
		s.Groups++
		s.Models += len(g.Models)
		for _, tr := range g.Transforms {
			switch tr.(type) {
			case *AnimatedTranslation, *AnimatedRotation:
				s.Animations++
			}
		}
	})
	return s
}

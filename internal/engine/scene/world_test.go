package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenery/internal/engine/model"
	"github.com/Faultbox/scenery/internal/engine/texture"
	"github.com/Faultbox/scenery/pkg/math"
)

// fakeStore resolves any name it knows and counts lookups.
type fakeStore struct {
	meshes   map[string]*model.Mesh
	textures map[string]*texture.Image
	lookups  map[string]int
}

func newFakeStore(meshes ...string) *fakeStore {
	s := &fakeStore{
		meshes:   make(map[string]*model.Mesh),
		textures: make(map[string]*texture.Image),
		lookups:  make(map[string]int),
	}
	for _, name := range meshes {
		s.meshes[name] = &model.Mesh{Name: name}
	}
	return s
}

func (s *fakeStore) Mesh(name string) *model.Mesh {
	s.lookups[name]++
	return s.meshes[name]
}

func (s *fakeStore) Texture(name string) *texture.Image {
	return s.textures[name]
}

func ref(name string) ModelReference {
	return ModelReference{Model: name, Material: DefaultMaterial()}
}

func TestChildComposition(t *testing.T) {
	child := &Group{
		Transforms: []Transform{Translation{Offset: math.Vec3{Y: 1}}},
		Models:     []ModelReference{ref("child.obj")},
	}
	parent := &Group{
		Transforms: []Transform{
			Translation{Offset: math.Vec3{X: 1}},
			Scaling{Factor: math.Vec3{X: 2, Y: 2, Z: 2}},
		},
		Models:   []ModelReference{ref("parent.obj")},
		Children: []*Group{child},
	}
	w := &World{Groups: []*Group{parent}}

	frame := w.Frame(0.016, newFakeStore("parent.obj", "child.obj"), FrameOptions{})
	require.Len(t, frame.Items, 2)

	parentM := math.Translate(1, 0, 0).Mul(math.Scale(2, 2, 2))
	childM := parentM.Mul(math.Translate(0, 1, 0))

	assert.Equal(t, "parent.obj", frame.Items[0].Mesh.Name)
	assert.True(t, parentM.ApproxEqual(frame.Items[0].Transform, 1e-6))
	assert.Equal(t, "child.obj", frame.Items[1].Mesh.Name)
	assert.True(t, childM.ApproxEqual(frame.Items[1].Transform, 1e-6))

	// Order matters: the child origin lands at (1,2,0), not (1,1,0)*2.
	assertVec(t, math.Vec3{X: 1, Y: 2}, translationOf(frame.Items[1].Transform))
}

func TestTraversalOrderAndIsolation(t *testing.T) {
	a := &Group{
		Description: "a",
		Transforms:  []Transform{Translation{Offset: math.Vec3{X: 5}}},
		Models:      []ModelReference{ref("missing.obj"), ref("a.obj")},
		Children: []*Group{
			{Models: []ModelReference{ref("a1.obj")}},
		},
	}
	b := &Group{
		Description: "b",
		Models:      []ModelReference{ref("b.obj")},
	}
	w := &World{Groups: []*Group{a, b}}

	frame := w.Frame(0, newFakeStore("a.obj", "a1.obj", "b.obj"), FrameOptions{})

	var names []string
	for _, item := range frame.Items {
		names = append(names, item.Mesh.Name)
	}
	assert.Equal(t, []string{"a.obj", "a1.obj", "b.obj"}, names)

	assertVec(t, math.Vec3{X: 5}, translationOf(frame.Items[1].Transform), "child inherits parent frame")
	assertVec(t, math.Zero3, translationOf(frame.Items[2].Transform), "sibling does not")
}

func TestTextureResolution(t *testing.T) {
	store := newFakeStore("earth.obj")
	store.textures["earth.jpg"] = &texture.Image{Name: "earth.jpg"}

	g := &Group{Models: []ModelReference{
		{Model: "earth.obj", Texture: "earth.jpg"},
		{Model: "earth.obj", Texture: "missing.jpg"},
		{Model: "earth.obj"},
	}}
	frame := (&World{Groups: []*Group{g}}).Frame(0, store, FrameOptions{})
	require.Len(t, frame.Items, 3)

	assert.Equal(t, "earth.jpg", frame.Items[0].Texture.Name)
	assert.Nil(t, frame.Items[1].Texture, "missing texture draws untextured")
	assert.Nil(t, frame.Items[2].Texture)
}

func TestAnimationUsesPhaseBeforeAdvancing(t *testing.T) {
	rot := NewAnimatedRotation(math.UnitY, 4)
	g := &Group{
		Transforms: []Transform{rot},
		Models:     []ModelReference{ref("m.obj")},
	}
	w := &World{Groups: []*Group{g}}
	store := newFakeStore("m.obj")

	f1 := w.Frame(1, store, FrameOptions{})
	assert.True(t, math.Identity().ApproxEqual(f1.Items[0].Transform, 1e-6))
	assert.InDelta(t, 0.25, rot.Phase(), 1e-6)

	f2 := w.Frame(1, store, FrameOptions{})
	assert.True(t, math.RotateDegrees(90, math.UnitY).ApproxEqual(f2.Items[0].Transform, 1e-5))
}

func TestAnimationAdvancesOncePerFrame(t *testing.T) {
	rot := NewAnimatedRotation(math.UnitY, 10)
	shared := &Group{Transforms: []Transform{rot}}
	w := &World{Groups: []*Group{shared, shared}}

	w.Frame(1, newFakeStore(), FrameOptions{})
	assert.InDelta(t, 0.1, rot.Phase(), 1e-6)

	w.Frame(1, newFakeStore(), FrameOptions{})
	assert.InDelta(t, 0.2, rot.Phase(), 1e-6)
}

func TestPathOverlay(t *testing.T) {
	at, err := NewAnimatedTranslation(zigzag, 10, false, math.UnitY)
	require.NoError(t, err)

	g := &Group{Transforms: []Transform{
		Translation{Offset: math.Vec3{Y: 3}},
		at,
	}}
	w := &World{Groups: []*Group{g}}

	frame := w.Frame(0, newFakeStore(), FrameOptions{})
	assert.Empty(t, frame.Paths)

	frame = w.Frame(0, newFakeStore(), FrameOptions{ShowPaths: true, PathSteps: 16})
	require.Len(t, frame.Paths, 1)
	p := frame.Paths[0]
	assert.Len(t, p.Points, 17)
	assert.Equal(t, zigzag, p.ControlPoints)
	assertVec(t, math.Vec3{Y: 3}, translationOf(p.Transform), "path drawn in the frame before the animation")
}

func TestFileListsAndStats(t *testing.T) {
	w := &World{Groups: []*Group{
		{
			Transforms: []Transform{NewAnimatedRotation(math.UnitY, 5)},
			Models: []ModelReference{
				{Model: "sphere.obj", Texture: "sun.jpg"},
				{Model: "box.obj"},
			},
			Children: []*Group{
				{Models: []ModelReference{{Model: "sphere.obj", Texture: "earth.jpg"}}},
			},
		},
	}}

	assert.Equal(t, []string{"box.obj", "sphere.obj"}, w.ModelFiles())
	assert.Equal(t, []string{"earth.jpg", "sun.jpg"}, w.TextureFiles())
	assert.Equal(t, Stats{Groups: 2, Models: 3, Animations: 1}, w.Stats())
}

func TestCompose(t *testing.T) {
	trs := []Transform{
		Rotation{Angle: 90, Axis: math.UnitZ},
		Translation{Offset: math.Vec3{X: 1}},
		Rotation{Angle: 45, Axis: math.Zero3},
	}
	m := Compose(math.Identity(), trs)
	// Rotating after translating: (1,0,0) turned 90 degrees about Z.
	assertVec(t, math.Vec3{Y: 1}, translationOf(m))

	assert.Equal(t, "Translation(1, 0, 0)", trs[1].String())
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	assert.InDelta(t, 200.0/255, m.Diffuse[0], 1e-6)
	assert.InDelta(t, 50.0/255, m.Ambient[1], 1e-6)
	assert.Equal(t, float32(0), m.Specular[2])
	assert.Equal(t, float32(0), m.Emissive[0])
	assert.Equal(t, float32(0), m.Shininess)
}

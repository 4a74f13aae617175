package generator

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Faultbox/scenery/pkg/formats"
)

// Shape describes a command-line shape: its parameter names and how to
// build it from their textual values.
type Shape struct {
	Name   string
	Params []string
	build  func(a *args) (*formats.OBJ, error)
}

// Usage renders the shape's argument list.
func (s Shape) Usage() string {
	u := s.Name
	for _, p := range s.Params {
		u += " <" + p + ">"
	}
	return u
}

// Build parses values, one per parameter, and generates the shape.
func (s Shape) Build(values []string) (*formats.OBJ, error) {
	if len(values) != len(s.Params) {
		return nil, fmt.Errorf("%s takes %d parameters, got %d", s.Name, len(s.Params), len(values))
	}
	a := &args{names: s.Params, values: values}
	obj, err := s.build(a)
	if a.err != nil {
		return nil, a.err
	}
	return obj, err
}

// args hands out parsed parameters in order, keeping the first error.
type args struct {
	names  []string
	values []string
	next   int
	err    error
}

func (a *args) raw() (string, string) {
	i := a.next
	a.next++
	return a.names[i], a.values[i]
}

func (a *args) float() float32 {
	name, s := a.raw()
	f, err := strconv.ParseFloat(s, 32)
	if err != nil && a.err == nil {
		a.err = fmt.Errorf("%w: %s %q is not a number", ErrInvalidParameter, name, s)
	}
	return float32(f)
}

func (a *args) int() int {
	name, s := a.raw()
	n, err := strconv.Atoi(s)
	if err != nil && a.err == nil {
		a.err = fmt.Errorf("%w: %s %q is not an integer", ErrInvalidParameter, name, s)
	}
	return n
}

func (a *args) str() string {
	_, s := a.raw()
	return s
}

var shapes = map[string]Shape{}

func register(s Shape) {
	shapes[s.Name] = s
}

func init() {
	register(Shape{Name: "plane", Params: []string{"length", "divisions"}, build: func(a *args) (*formats.OBJ, error) {
		l, d := a.float(), a.int()
		return Plane(l, d)
	}})
	register(Shape{Name: "box", Params: []string{"length", "divisions"}, build: func(a *args) (*formats.OBJ, error) {
		l, d := a.float(), a.int()
		return Box(l, d)
	}})
	register(Shape{Name: "skybox", Params: []string{"length", "divisions"}, build: func(a *args) (*formats.OBJ, error) {
		l, d := a.float(), a.int()
		return Skybox(l, d)
	}})
	register(Shape{Name: "sphere", Params: []string{"radius", "slices", "stacks"}, build: func(a *args) (*formats.OBJ, error) {
		r, sl, st := a.float(), a.int(), a.int()
		return Sphere(r, sl, st)
	}})
	register(Shape{Name: "cone", Params: []string{"radius", "height", "slices", "stacks"}, build: func(a *args) (*formats.OBJ, error) {
		r, h, sl, st := a.float(), a.float(), a.int(), a.int()
		return Cone(r, h, sl, st)
	}})
	register(Shape{Name: "tube", Params: []string{"inner", "outer", "height", "slices"}, build: func(a *args) (*formats.OBJ, error) {
		ri, ro, h, sl := a.float(), a.float(), a.float(), a.int()
		return Tube(ri, ro, h, sl)
	}})
	register(Shape{Name: "bezier", Params: []string{"patchfile", "tessellation"}, build: func(a *args) (*formats.OBJ, error) {
		path, tess := a.str(), a.int()
		if a.err != nil {
			return nil, a.err
		}
		set, err := formats.ParsePatchesFile(path)
		if err != nil {
			return nil, err
		}
		return Bezier(set, tess)
	}})
}

// Lookup returns the registered shape called name.
func Lookup(name string) (Shape, bool) {
	s, ok := shapes[name]
	return s, ok
}

// Shapes returns every registered shape sorted by name.
func Shapes() []Shape {
	list := make([]Shape, 0, len(shapes))
	for _, s := range shapes {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

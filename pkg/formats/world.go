package formats

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/scenery/pkg/math"
)

// Scene description errors. Both are fatal for loading; everything else in
// the document degrades to defaults and is reported through Warnings.
var (
	ErrInvalidWorldXML = errors.New("invalid scene XML")
	ErrNoWorldRoot     = errors.New("scene XML has no <world> root")
)

// Default values for missing scene attributes.
const (
	DefaultWindowSize  = 512
	DefaultFOV         = 60
	DefaultNear        = 1
	DefaultFar         = 1000
	DefaultSpotCutoff  = 30
	DefaultAnimPeriod  = 0
	DefaultScaleFactor = 1
)

// Element is a generic XML element that keeps child order, which matters
// for transform sequences.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
}

// Name returns the local element name.
func (e *Element) Name() string {
	return e.XMLName.Local
}

// Attr returns the value of attribute name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child called name, or nil.
func (e *Element) Child(name string) *Element {
	for i := range e.Children {
		if e.Children[i].Name() == name {
			return &e.Children[i]
		}
	}
	return nil
}

// WindowDoc is the <window> element.
type WindowDoc struct {
	Width, Height int
}

// CameraDoc is the <camera> element.
type CameraDoc struct {
	Position, LookAt, Up math.Vec3
	FOV, Near, Far       float32
}

// LightKind names a light type.
type LightKind string

// Light kinds accepted in <light type="...">. "spotlight" is read as spot.
const (
	LightPoint       LightKind = "point"
	LightDirectional LightKind = "directional"
	LightSpot        LightKind = "spot"
)

// LightDoc is a <light> element.
type LightDoc struct {
	Kind      LightKind
	Position  math.Vec3
	Direction math.Vec3
	Cutoff    float32
}

// TransformKind names a transform operation.
type TransformKind string

// Transform operations, matching their element names.
const (
	TransformTranslate TransformKind = "translate"
	TransformRotate    TransformKind = "rotate"
	TransformScale     TransformKind = "scale"
)

// TransformDoc is one child of <transform>. Animated transforms carry a
// time attribute; for them Vector is the rotation axis (rotate) and Points
// the path (translate).
type TransformDoc struct {
	Kind     TransformKind
	Vector   math.Vec3
	Angle    float32
	Animated bool
	Time     float32
	Align    bool
	Points   []math.Vec3
}

// ColorDoc is a <color> element with components scaled to [0,1]. Nil
// fields were absent from the document.
type ColorDoc struct {
	Diffuse   *math.Vec3
	Ambient   *math.Vec3
	Specular  *math.Vec3
	Emissive  *math.Vec3
	Shininess *float32
}

// ModelDoc is a <model> element.
type ModelDoc struct {
	File    string
	Texture string
	Color   *ColorDoc
}

// GroupDoc is a <group> element.
type GroupDoc struct {
	Description string
	Transforms  []TransformDoc
	Models      []ModelDoc
	Children    []GroupDoc
}

// WorldDoc is a parsed scene description.
type WorldDoc struct {
	Window WindowDoc
	Camera CameraDoc
	Lights []LightDoc
	Groups []GroupDoc

	// Warnings lists recoverable problems, such as bad numbers or unknown
	// light types, in document order.
	Warnings []string
}

// ParseWorld parses a scene description.
func ParseWorld(data []byte) (*WorldDoc, error) {
	var root Element
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorldXML, err)
	}
	if root.Name() != "world" {
		return nil, fmt.Errorf("%w: found <%s>", ErrNoWorldRoot, root.Name())
	}

	p := &docParser{}
	doc := &WorldDoc{
		Window: p.window(root.Child("window")),
		Camera: p.camera(root.Child("camera")),
	}
	if lights := root.Child("lights"); lights != nil {
		doc.Lights = p.lights(lights)
	}
	for i := range root.Children {
		if root.Children[i].Name() == "group" {
			doc.Groups = append(doc.Groups, p.group(&root.Children[i]))
		}
	}
	doc.Warnings = p.warnings
	return doc, nil
}

// ParseWorldFile reads and parses a scene description file.
func ParseWorldFile(path string) (*WorldDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return ParseWorld(data)
}

// ModelFiles returns every distinct model filename in document order.
func (w *WorldDoc) ModelFiles() []string {
	var out []string
	seen := map[string]bool{}
	w.walk(func(m ModelDoc) {
		if m.File != "" && !seen[m.File] {
			seen[m.File] = true
			out = append(out, m.File)
		}
	})
	return out
}

// TextureFiles returns every distinct texture filename in document order.
func (w *WorldDoc) TextureFiles() []string {
	var out []string
	seen := map[string]bool{}
	w.walk(func(m ModelDoc) {
		if m.Texture != "" && !seen[m.Texture] {
			seen[m.Texture] = true
			out = append(out, m.Texture)
		}
	})
	return out
}

func (w *WorldDoc) walk(fn func(ModelDoc)) {
	var visit func(groups []GroupDoc)
	visit = func(groups []GroupDoc) {
		for _, g := range groups {
			for _, m := range g.Models {
				fn(m)
			}
			visit(g.Children)
		}
	}
	visit(w.Groups)
}

type docParser struct {
	warnings []string
}

func (p *docParser) warnf(format string, args ...interface{}) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

// float reads a numeric attribute, falling back to def when it is missing
// or malformed.
func (p *docParser) float(e *Element, name string, def float32) float32 {
	if e == nil {
		return def
	}
	s, ok := e.Attr(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		p.warnf("<%s %s=%q>: not a number, using %v", e.Name(), name, s, def)
		return def
	}
	return float32(f)
}

func (p *docParser) integer(e *Element, name string, def int) int {
	if e == nil {
		return def
	}
	s, ok := e.Attr(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		p.warnf("<%s %s=%q>: not an integer, using %d", e.Name(), name, s, def)
		return def
	}
	return n
}

func (p *docParser) vec(e *Element, x, y, z string, def math.Vec3) math.Vec3 {
	return math.Vec3{
		X: p.float(e, x, def.X),
		Y: p.float(e, y, def.Y),
		Z: p.float(e, z, def.Z),
	}
}

func (p *docParser) xyz(e *Element, def math.Vec3) math.Vec3 {
	return p.vec(e, "x", "y", "z", def)
}

func (p *docParser) window(e *Element) WindowDoc {
	w := WindowDoc{
		Width:  p.integer(e, "width", DefaultWindowSize),
		Height: p.integer(e, "height", DefaultWindowSize),
	}
	if w.Width <= 0 || w.Height <= 0 {
		p.warnf("<window>: non-positive size %dx%d, using %d", w.Width, w.Height, DefaultWindowSize)
		w.Width, w.Height = DefaultWindowSize, DefaultWindowSize
	}
	return w
}

func (p *docParser) camera(e *Element) CameraDoc {
	var pos, look, up, proj *Element
	if e != nil {
		pos, look, up, proj = e.Child("position"), e.Child("lookAt"), e.Child("up"), e.Child("projection")
	}
	return CameraDoc{
		Position: p.xyz(pos, math.Vec3{X: 1, Y: 1, Z: 1}),
		LookAt:   p.xyz(look, math.Vec3{}),
		Up:       p.xyz(up, math.UnitY),
		FOV:      p.float(proj, "fov", DefaultFOV),
		Near:     p.float(proj, "near", DefaultNear),
		Far:      p.float(proj, "far", DefaultFar),
	}
}

func (p *docParser) lights(e *Element) []LightDoc {
	var out []LightDoc
	for i := range e.Children {
		le := &e.Children[i]
		if le.Name() != "light" {
			continue
		}
		typ, _ := le.Attr("type")
		pos := p.vec(le, "posx", "posy", "posz", math.Vec3{})
		dir := p.vec(le, "dirx", "diry", "dirz", math.Vec3{})

		switch strings.ToLower(typ) {
		case "point":
			out = append(out, LightDoc{Kind: LightPoint, Position: pos})
		case "directional":
			out = append(out, LightDoc{Kind: LightDirectional, Direction: dir})
		case "spot", "spotlight":
			out = append(out, LightDoc{
				Kind:      LightSpot,
				Position:  pos,
				Direction: dir,
				Cutoff:    p.float(le, "cutoff", DefaultSpotCutoff),
			})
		default:
			p.warnf("<light type=%q>: unknown light type, skipped", typ)
		}
	}
	return out
}

func (p *docParser) group(e *Element) GroupDoc {
	g := GroupDoc{}
	g.Description, _ = e.Attr("desc")

	for i := range e.Children {
		c := &e.Children[i]
		switch c.Name() {
		case "transform":
			g.Transforms = append(g.Transforms, p.transforms(c)...)
		case "models":
			g.Models = append(g.Models, p.models(c)...)
		case "group":
			g.Children = append(g.Children, p.group(c))
		default:
			p.warnf("<group>: unknown element <%s> ignored", c.Name())
		}
	}
	return g
}

func (p *docParser) transforms(e *Element) []TransformDoc {
	var out []TransformDoc
	for i := range e.Children {
		c := &e.Children[i]
		_, animated := c.Attr("time")

		switch TransformKind(c.Name()) {
		case TransformTranslate:
			t := TransformDoc{Kind: TransformTranslate, Animated: animated}
			if animated {
				t.Time = p.float(c, "time", DefaultAnimPeriod)
				align, _ := c.Attr("align")
				t.Align = strings.EqualFold(strings.TrimSpace(align), "true")
				for j := range c.Children {
					if pt := &c.Children[j]; pt.Name() == "point" {
						t.Points = append(t.Points, p.xyz(pt, math.Vec3{}))
					}
				}
			} else {
				t.Vector = p.xyz(c, math.Vec3{})
			}
			out = append(out, t)
		case TransformRotate:
			t := TransformDoc{Kind: TransformRotate, Animated: animated, Vector: p.xyz(c, math.Vec3{})}
			if animated {
				t.Time = p.float(c, "time", DefaultAnimPeriod)
			} else {
				t.Angle = p.float(c, "angle", 0)
			}
			out = append(out, t)
		case TransformScale:
			s := math.Vec3{X: DefaultScaleFactor, Y: DefaultScaleFactor, Z: DefaultScaleFactor}
			out = append(out, TransformDoc{Kind: TransformScale, Vector: p.xyz(c, s)})
		default:
			p.warnf("<transform>: unknown operation <%s> ignored", c.Name())
		}
	}
	return out
}

func (p *docParser) models(e *Element) []ModelDoc {
	var out []ModelDoc
	for i := range e.Children {
		me := &e.Children[i]
		if me.Name() != "model" {
			continue
		}
		m := ModelDoc{}
		m.File, _ = me.Attr("file")
		if m.File == "" {
			p.warnf("<model>: missing file attribute, skipped")
			continue
		}
		for j := range me.Children {
			c := &me.Children[j]
			switch c.Name() {
			case "texture":
				m.Texture, _ = c.Attr("file")
			case "color":
				m.Color = p.color(c)
			}
		}
		out = append(out, m)
	}
	return out
}

func (p *docParser) color(e *Element) *ColorDoc {
	cd := &ColorDoc{}
	rgb := func(c *Element) *math.Vec3 {
		v := math.Vec3{
			X: p.float(c, "R", 0) / 255,
			Y: p.float(c, "G", 0) / 255,
			Z: p.float(c, "B", 0) / 255,
		}
		return &v
	}
	for i := range e.Children {
		c := &e.Children[i]
		switch c.Name() {
		case "diffuse":
			cd.Diffuse = rgb(c)
		case "ambient":
			cd.Ambient = rgb(c)
		case "specular":
			cd.Specular = rgb(c)
		case "emissive":
			cd.Emissive = rgb(c)
		case "shininess":
			s := p.float(c, "value", 0)
			cd.Shininess = &s
		}
	}
	return cd
}

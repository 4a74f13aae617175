package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/engine/camera"
	"github.com/Faultbox/scenery/internal/engine/lighting"
	"github.com/Faultbox/scenery/internal/logger"
	"github.com/Faultbox/scenery/pkg/formats"
	"github.com/Faultbox/scenery/pkg/math"
)

// Load reads a scene description file. Only a missing or malformed root
// is an error; everything else falls back to defaults with a warning.
func Load(path string) (*World, error) {
	doc, err := formats.ParseWorldFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", path, err)
	}
	return FromDoc(doc), nil
}

// Decode builds a world from scene description bytes.
func Decode(data []byte) (*World, error) {
	doc, err := formats.ParseWorld(data)
	if err != nil {
		return nil, err
	}
	return FromDoc(doc), nil
}

// FromDoc converts a parsed scene description.
func FromDoc(doc *formats.WorldDoc) *World {
	log := logger.Named("scene")
	for _, w := range doc.Warnings {
		log.Warn(w)
	}

	w := &World{
		Window: Window{Width: doc.Window.Width, Height: doc.Window.Height},
		Camera: Camera{
			Placement: camera.Placement{
				Pos:    doc.Camera.Position,
				Target: doc.Camera.LookAt,
				Up:     doc.Camera.Up,
			},
			Projection: camera.Projection{
				FOV:  doc.Camera.FOV,
				Near: doc.Camera.Near,
				Far:  doc.Camera.Far,
			},
		},
	}
	checkCamera(log, &w.Camera)

	for i, ld := range doc.Lights {
		if i == lighting.MaxLights {
			log.Warn("too many lights, extra lights ignored",
				zap.Int("max", lighting.MaxLights),
				zap.Int("declared", len(doc.Lights)))
			break
		}
		w.Lights = append(w.Lights, lighting.FromDoc(ld))
	}

	b := &builder{log: log, worldUp: w.Camera.Placement.Up}
	for i := range doc.Groups {
		w.Groups = append(w.Groups, b.group(&doc.Groups[i]))
	}

	s := w.Stats()
	log.Info("scene loaded",
		zap.Int("groups", s.Groups),
		zap.Int("models", s.Models),
		zap.Int("animations", s.Animations),
		zap.Int("lights", len(w.Lights)))
	return w
}

// checkCamera repairs placements whose up vector is parallel to the view
// direction, which would leave the view matrix undefined.
func checkCamera(log *zap.Logger, c *Camera) {
	p := &c.Placement
	if p.Pos == p.Target {
		log.Warn("camera position equals look-at point, using defaults")
		*p = camera.DefaultPlacement()
		return
	}
	if p.Up.Normalize() == math.Zero3 || p.Front().Cross(p.Up).Normalize() == math.Zero3 {
		log.Warn("camera up is zero or parallel to the view direction, using +Y")
		p.Up = math.UnitY
		if p.Front().Cross(p.Up).Normalize() == math.Zero3 {
			p.Up = math.UnitZ
		}
	}
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near || c.Projection.FOV <= 0 || c.Projection.FOV >= 180 {
		log.Warn("invalid projection, using defaults",
			zap.Float32("fov", c.Projection.FOV),
			zap.Float32("near", c.Projection.Near),
			zap.Float32("far", c.Projection.Far))
		c.Projection = camera.DefaultProjection()
	}
}

type builder struct {
	log     *zap.Logger
	worldUp math.Vec3
}

func (b *builder) group(doc *formats.GroupDoc) *Group {
	g := &Group{Description: doc.Description}

	for _, td := range doc.Transforms {
		if tr := b.transform(doc.Description, td); tr != nil {
			g.Transforms = append(g.Transforms, tr)
		}
	}
	for _, md := range doc.Models {
		g.Models = append(g.Models, ModelReference{
			Model:    md.File,
			Texture:  md.Texture,
			Material: material(md.Color),
		})
	}
	for i := range doc.Children {
		g.Children = append(g.Children, b.group(&doc.Children[i]))
	}
	return g
}

func (b *builder) transform(group string, td formats.TransformDoc) Transform {
	switch td.Kind {
	case formats.TransformTranslate:
		if !td.Animated {
			return Translation{Offset: td.Vector}
		}
		at, err := NewAnimatedTranslation(td.Points, td.Time, td.Align, b.worldUp)
		if err != nil {
			b.log.Warn("animated translation dropped",
				zap.String("group", group),
				zap.Int("points", len(td.Points)),
				zap.Error(err))
			return nil
		}
		b.warnPeriod(group, td.Time)
		return at
	case formats.TransformRotate:
		if !td.Animated {
			return Rotation{Angle: td.Angle, Axis: td.Vector}
		}
		b.warnPeriod(group, td.Time)
		return NewAnimatedRotation(td.Vector, td.Time)
	case formats.TransformScale:
		return Scaling{Factor: td.Vector}
	}
	return nil
}

func (b *builder) warnPeriod(group string, period float32) {
	if period <= 0 {
		b.log.Warn("animation period is not positive, animation stays still",
			zap.String("group", group),
			zap.Float32("time", period))
	}
}

// material applies the <color> overrides to the default material.
func material(c *formats.ColorDoc) Material {
	m := DefaultMaterial()
	if c == nil {
		return m
	}
	set := func(dst *[4]float32, v *math.Vec3) {
		if v != nil {
			*dst = [4]float32{v.X, v.Y, v.Z, 1}
		}
	}
	set(&m.Diffuse, c.Diffuse)
	set(&m.Ambient, c.Ambient)
	set(&m.Specular, c.Specular)
	set(&m.Emissive, c.Emissive)
	if c.Shininess != nil {
		m.Shininess = *c.Shininess
	}
	return m
}

// Package lighting describes the scene's light sources in the form the
// fixed-function renderer uploads them.
package lighting

import (
	"github.com/Faultbox/scenery/pkg/formats"
	"github.com/Faultbox/scenery/pkg/math"
)

// MaxLights is the number of lights the fixed-function pipeline supports.
const MaxLights = 8

// Kind is the light source type.
type Kind int

const (
	Point Kind = iota
	Directional
	Spot
)

func (k Kind) String() string {
	switch k {
	case Directional:
		return "directional"
	case Spot:
		return "spot"
	default:
		return "point"
	}
}

// Light is a single light source. Position is used by point and spot
// lights, Direction by directional and spot lights.
type Light struct {
	Kind      Kind
	Position  math.Vec3
	Direction math.Vec3
	Cutoff    float32 // Spot cone half-angle in degrees
	Exponent  float32 // Spot falloff
	Color     [4]float32
}

// White is the default diffuse and specular light color.
var White = [4]float32{1, 1, 1, 1}

// FromDoc converts a parsed <light> element.
func FromDoc(d formats.LightDoc) Light {
	l := Light{
		Position:  d.Position,
		Direction: d.Direction,
		Color:     White,
	}
	switch d.Kind {
	case formats.LightDirectional:
		l.Kind = Directional
	case formats.LightSpot:
		l.Kind = Spot
		l.Cutoff = d.Cutoff
	default:
		l.Kind = Point
	}
	return l
}

// GLPosition returns the homogeneous light position. Directional lights
// use w=0 so the vector is read as a direction.
func (l Light) GLPosition() [4]float32 {
	if l.Kind == Directional {
		return [4]float32{l.Direction.X, l.Direction.Y, l.Direction.Z, 0}
	}
	return [4]float32{l.Position.X, l.Position.Y, l.Position.Z, 1}
}

// GLSpotDirection returns the spot direction for upload.
func (l Light) GLSpotDirection() [3]float32 {
	return l.Direction.Array()
}

// HasLocation reports whether the light has a position worth marking in
// the debug overlay.
func (l Light) HasLocation() bool {
	return l.Kind != Directional
}

// Buffer holds the lights uploaded each frame.
type Buffer struct {
	Lights []Light
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{Lights: make([]Light, 0, MaxLights)}
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
}

// Add appends a light. Returns false if the buffer is full.
func (b *Buffer) Add(l Light) bool {
	if len(b.Lights) >= MaxLights {
		return false
	}
	b.Lights = append(b.Lights, l)
	return true
}

// Set replaces all lights, truncating to MaxLights. It returns how many
// lights were dropped.
func (b *Buffer) Set(lights []Light) int {
	b.Clear()
	n := len(lights)
	if n > MaxLights {
		n = MaxLights
	}
	b.Lights = append(b.Lights, lights[:n]...)
	return len(lights) - n
}

// Len returns the number of lights in the buffer.
func (b *Buffer) Len() int {
	return len(b.Lights)
}

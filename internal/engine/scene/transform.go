package scene

import (
	"fmt"

	"github.com/Faultbox/scenery/pkg/math"
)

// Transform is one step of a group's transform list. The set of
// implementations is closed: Translation, Rotation, Scaling,
// *AnimatedTranslation and *AnimatedRotation. Animated steps are pointers
// so their phase is never copied.
type Transform interface {
	fmt.Stringer
	transform()
}

// Translation moves by Offset.
type Translation struct {
	Offset math.Vec3
}

func (t Translation) String() string {
	return fmt.Sprintf("Translation(%g, %g, %g)", t.Offset.X, t.Offset.Y, t.Offset.Z)
}

// Rotation turns Angle degrees about Axis. A zero axis is a no-op.
type Rotation struct {
	Angle float32
	Axis  math.Vec3
}

func (r Rotation) String() string {
	return fmt.Sprintf("Rotation(%g deg, axis %g, %g, %g)", r.Angle, r.Axis.X, r.Axis.Y, r.Axis.Z)
}

// Scaling scales each axis by Factor.
type Scaling struct {
	Factor math.Vec3
}

func (s Scaling) String() string {
	return fmt.Sprintf("Scaling(%g, %g, %g)", s.Factor.X, s.Factor.Y, s.Factor.Z)
}

func (Translation) transform()          {}
func (Rotation) transform()             {}
func (Scaling) transform()              {}
func (*AnimatedTranslation) transform() {}
func (*AnimatedRotation) transform()    {}

// compose multiplies tr onto m at the current animation phase.
func compose(m math.Mat4, tr Transform) math.Mat4 {
	switch v := tr.(type) {
	case Translation:
		return m.Mul(math.TranslateVec(v.Offset))
	case Rotation:
		return m.Mul(math.RotateDegrees(v.Angle, v.Axis))
	case Scaling:
		return m.Mul(math.Scale(v.Factor.X, v.Factor.Y, v.Factor.Z))
	case *AnimatedTranslation:
		return m.Mul(v.Matrix())
	case *AnimatedRotation:
		return m.Mul(v.Matrix())
	default:
		return m
	}
}

// advance moves an animated step forward by dt. Static steps ignore it.
func advance(tr Transform, dt float32) {
	switch v := tr.(type) {
	case *AnimatedTranslation:
		v.Advance(dt)
	case *AnimatedRotation:
		v.Advance(dt)
	}
}

// Compose multiplies transforms onto m in list order without advancing
// any animation.
func Compose(m math.Mat4, transforms []Transform) math.Mat4 {
	for _, tr := range transforms {
		m = compose(m, tr)
	}
	return m
}

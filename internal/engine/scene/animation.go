package scene

import (
	"fmt"
	"strings"

	"github.com/Faultbox/scenery/pkg/curve"
	"github.com/Faultbox/scenery/pkg/math"
)

// nextPhase advances a normalized phase by dt seconds of a period. The
// phase snaps back to 0 instead of wrapping when it would pass 1. A
// non-positive period never moves.
func nextPhase(t, dt, period float32) float32 {
	if period <= 0 {
		return 0
	}
	next := t + dt/period
	if next > 1 {
		return 0
	}
	return next
}

// AnimatedTranslation moves along a closed Catmull-Rom loop through its
// control points, completing the loop every Period seconds.
type AnimatedTranslation struct {
	Points  []math.Vec3
	Period  float32
	Aligned bool

	// WorldUp orients the aligned frame. It is the scene's initial camera
	// up and does not follow camera navigation.
	WorldUp math.Vec3

	path  *curve.Spline
	phase float32
}

// NewAnimatedTranslation builds the closed path through points. At least
// four points are required.
func NewAnimatedTranslation(points []math.Vec3, period float32, aligned bool, worldUp math.Vec3) (*AnimatedTranslation, error) {
	path, err := curve.NewClosedSpline(points)
	if err != nil {
		return nil, err
	}
	return &AnimatedTranslation{
		Points:  append([]math.Vec3(nil), points...),
		Period:  period,
		Aligned: aligned,
		WorldUp: worldUp,
		path:    path,
	}, nil
}

// Phase returns the normalized position along the loop.
func (a *AnimatedTranslation) Phase() float32 {
	return a.phase
}

// Position returns the point on the path at the current phase.
func (a *AnimatedTranslation) Position() math.Vec3 {
	p, _ := a.path.Evaluate(a.phase)
	return p
}

// Matrix translates to the current path position. When aligned, the
// object's X axis also follows the path tangent.
func (a *AnimatedTranslation) Matrix() math.Mat4 {
	p, d := a.path.Evaluate(a.phase)
	m := math.TranslateVec(p)
	if !a.Aligned {
		return m
	}

	front := d.Normalize()
	right := front.Cross(a.WorldUp).Normalize()
	if right == math.Zero3 {
		// Stationary or moving straight along the up axis.
		return m
	}
	up := right.Cross(front).Normalize()

	return m.Mul(math.FromColumns(front.Vec4(0), up.Vec4(0), right.Vec4(0), math.Vec4{0, 0, 0, 1}))
}

// Advance moves the phase forward by dt seconds.
func (a *AnimatedTranslation) Advance(dt float32) {
	a.phase = nextPhase(a.phase, dt, a.Period)
}

// Path samples the whole loop with steps segments per unit phase.
func (a *AnimatedTranslation) Path(steps int) []math.Vec3 {
	return a.path.Sample(steps)
}

func (a *AnimatedTranslation) String() string {
	pts := make([]string, len(a.Points))
	for i, p := range a.Points {
		pts[i] = fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
	}
	return fmt.Sprintf("AnimatedTranslation(points [%s], t %.2f, period %.2f, aligned %t)",
		strings.Join(pts, " "), a.phase, a.Period, a.Aligned)
}

// AnimatedRotation turns a full 360 degrees about Axis every Period seconds.
type AnimatedRotation struct {
	Axis   math.Vec3
	Period float32

	phase float32
}

// NewAnimatedRotation creates a rotation starting at phase 0.
func NewAnimatedRotation(axis math.Vec3, period float32) *AnimatedRotation {
	return &AnimatedRotation{Axis: axis, Period: period}
}

// Phase returns the normalized rotation progress.
func (a *AnimatedRotation) Phase() float32 {
	return a.phase
}

// Matrix rotates by 360*phase degrees.
func (a *AnimatedRotation) Matrix() math.Mat4 {
	return math.RotateDegrees(360*a.phase, a.Axis)
}

// Advance moves the phase forward by dt seconds.
func (a *AnimatedRotation) Advance(dt float32) {
	a.phase = nextPhase(a.phase, dt, a.Period)
}

func (a *AnimatedRotation) String() string {
	return fmt.Sprintf("AnimatedRotation(axis %.2f, %.2f, %.2f, period %.2f)",
		a.Axis.X, a.Axis.Y, a.Axis.Z, a.Period)
}

package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/scenery/pkg/math"
)

// maxPitch keeps the front vector away from the world up axis.
var maxPitch = math.Radians(89.99)

// Placement is where the camera sits and what it looks at.
type Placement struct {
	Pos    math.Vec3
	Target math.Vec3
	Up     math.Vec3
}

// DefaultPlacement looks at the origin from (1,1,1) with +Y up.
func DefaultPlacement() Placement {
	return Placement{
		Pos:    math.Vec3{X: 1, Y: 1, Z: 1},
		Target: math.Zero3,
		Up:     math.UnitY,
	}
}

// Front is the unit view direction.
func (p Placement) Front() math.Vec3 {
	return p.Target.Sub(p.Pos).Normalize()
}

// YawPitch returns the view direction as angles in radians. Yaw is measured
// around Y starting at +Z, pitch from the XZ plane and within ±89.99°.
// Pitch uses atan2 since f.Y rounds to 1 in float32 near the poles.
func (p Placement) YawPitch() (yaw, pitch float32) {
	f := p.Front()
	yaw = math32.Atan2(f.X, f.Z)
	pitch = math32.Atan2(f.Y, math32.Hypot(f.X, f.Z))
	return yaw, math.Clamp(pitch, -maxPitch, maxPitch)
}

// Right is the unit right vector relative to worldUp.
func (p Placement) Right(worldUp math.Vec3) math.Vec3 {
	return p.Front().Cross(worldUp).Normalize()
}

// Translate moves position and target together.
func (p Placement) Translate(v math.Vec3) Placement {
	return Placement{Pos: p.Pos.Add(v), Target: p.Target.Add(v), Up: p.Up}
}

// Rotate turns the view direction in place by the given degrees. The
// target ends one unit in front of the position.
func (p Placement) Rotate(yawDeg, pitchDeg float32, worldUp math.Vec3) Placement {
	f := p.turned(yawDeg, pitchDeg)
	r := f.Cross(worldUp).Normalize()
	u := r.Cross(f).Normalize()

	return Placement{Pos: p.Pos, Target: p.Pos.Add(f), Up: u}
}

// Revolve moves the position around center on a sphere, keeping the
// current distance (at least 1).
func (p Placement) Revolve(yawDeg, pitchDeg float32, center, worldUp math.Vec3) Placement {
	radius := math32.Max(1, p.Pos.Sub(center).Length())
	f := p.turned(yawDeg, pitchDeg)

	return Placement{Pos: center.Sub(f.Scale(radius)), Target: center, Up: worldUp}
}

// Zoom moves the position units closer to center. Negative units move it
// away. The distance never drops below 1.
func (p Placement) Zoom(units float32, center, worldUp math.Vec3) Placement {
	toCamera := p.Pos.Sub(center)
	radius := math32.Max(1, toCamera.Length()-units)
	f := toCamera.Normalize().Neg()

	return Placement{Pos: center.Sub(f.Scale(radius)), Target: center, Up: worldUp}
}

// turned returns the front vector after adding yaw and pitch.
func (p Placement) turned(yawDeg, pitchDeg float32) math.Vec3 {
	yaw, pitch := p.YawPitch()
	yaw += math.Radians(yawDeg)
	pitch = math.Clamp(pitch+math.Radians(pitchDeg), -maxPitch, maxPitch)

	return direction(yaw, pitch)
}

func direction(yaw, pitch float32) math.Vec3 {
	sy, cy := math32.Sincos(yaw)
	sp, cp := math32.Sincos(pitch)
	return math.Vec3{X: cp * sy, Y: sp, Z: cp * cy}.Normalize()
}

// Projection holds the perspective parameters. FOV is vertical, in degrees.
type Projection struct {
	FOV  float32
	Near float32
	Far  float32
}

// DefaultProjection returns 60 degrees, near 1, far 1000.
func DefaultProjection() Projection {
	return Projection{FOV: 60, Near: 1, Far: 1000}
}

// Matrix returns the perspective matrix for aspect (width/height).
func (p Projection) Matrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(p.FOV), aspect, p.Near, p.Far)
}

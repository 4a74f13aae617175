// Package camera implements the viewer's camera controller with a
// free-flying mode and an orbital mode around the scene's look-at point.
package camera

import (
	"strings"

	"github.com/Faultbox/scenery/pkg/math"
)

// Behaviour selects how input moves the camera.
type Behaviour int

const (
	Freeroam Behaviour = iota
	Orbital
)

func (b Behaviour) String() string {
	if b == Orbital {
		return "orbital"
	}
	return "freeroam"
}

// ParseBehaviour reads a behaviour name as written by String.
func ParseBehaviour(s string) (Behaviour, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "freeroam", "":
		return Freeroam, true
	case "orbital":
		return Orbital, true
	}
	return Freeroam, false
}

// Key is a camera control key, independent of the windowing backend.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyS
	KeyA
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Speeds are degrees per second for rotation and units per second for
// movement and zoom.
type Speeds struct {
	FreeroamRotate float32
	FreeroamMove   float32
	OrbitalRotate  float32
	OrbitalZoom    float32
}

// DefaultSpeeds returns the stock camera speeds.
func DefaultSpeeds() Speeds {
	return Speeds{
		FreeroamRotate: 200,
		FreeroamMove:   100,
		OrbitalRotate:  200,
		OrbitalZoom:    100,
	}
}

// Controller owns the initial and current camera state. The initial
// placement supplies the world up axis and the orbit center.
type Controller struct {
	Initial    Placement
	Current    Placement
	Projection Projection
	Behaviour  Behaviour
	Speeds     Speeds

	initialProjection Projection
}

// NewController starts in freeroam at the initial placement.
func NewController(initial Placement, proj Projection, speeds Speeds) *Controller {
	return &Controller{
		Initial:           initial,
		Current:           initial,
		Projection:        proj,
		Behaviour:         Freeroam,
		Speeds:            speeds,
		initialProjection: proj,
	}
}

// WorldUp is the up vector of the initial placement.
func (c *Controller) WorldUp() math.Vec3 {
	return c.Initial.Up
}

// ToggleMode switches behaviour. Entering orbital mode snaps back to the
// initial placement so the orbit starts from a known spot.
func (c *Controller) ToggleMode() {
	if c.Behaviour == Freeroam {
		c.Behaviour = Orbital
		c.Current = c.Initial
		return
	}
	c.Behaviour = Freeroam
}

// SetBehaviour switches to b, going through ToggleMode when it changes.
func (c *Controller) SetBehaviour(b Behaviour) {
	if c.Behaviour != b {
		c.ToggleMode()
	}
}

// Rotate turns the freeroam camera. Directions are -1, 0 or 1.
func (c *Controller) Rotate(yawDir, pitchDir, dt float32) {
	step := c.Speeds.FreeroamRotate * dt
	c.Current = c.Current.Rotate(yawDir*step, pitchDir*step, c.WorldUp())
}

// MoveForward moves along the view direction.
func (c *Controller) MoveForward(dt float32) {
	c.move(c.Current.Front(), dt)
}

// MoveBackward moves against the view direction.
func (c *Controller) MoveBackward(dt float32) {
	c.move(c.Current.Front().Neg(), dt)
}

// MoveRight strafes right of the view direction.
func (c *Controller) MoveRight(dt float32) {
	c.move(c.Current.Right(c.WorldUp()), dt)
}

// MoveLeft strafes left of the view direction.
func (c *Controller) MoveLeft(dt float32) {
	c.move(c.Current.Right(c.WorldUp()).Neg(), dt)
}

// MoveUp moves along the world up axis.
func (c *Controller) MoveUp(dt float32) {
	c.move(c.WorldUp(), dt)
}

// MoveDown moves against the world up axis.
func (c *Controller) MoveDown(dt float32) {
	c.move(c.WorldUp().Neg(), dt)
}

func (c *Controller) move(dir math.Vec3, dt float32) {
	c.Current = c.Current.Translate(dir.Scale(c.Speeds.FreeroamMove * dt))
}

// ZoomIn moves the orbital camera toward the initial target.
func (c *Controller) ZoomIn(dt float32) {
	c.Current = c.Current.Zoom(c.Speeds.OrbitalZoom*dt, c.Initial.Target, c.WorldUp())
}

// ZoomOut moves the orbital camera away from the initial target.
func (c *Controller) ZoomOut(dt float32) {
	c.Current = c.Current.Zoom(-c.Speeds.OrbitalZoom*dt, c.Initial.Target, c.WorldUp())
}

// RotateAzimuth revolves around the world up axis.
func (c *Controller) RotateAzimuth(dir, dt float32) {
	angle := dir * c.Speeds.OrbitalRotate * dt
	c.Current = c.Current.Revolve(angle, 0, c.Initial.Target, c.WorldUp())
}

// RotateElevation revolves up or down, clamped short of the poles.
func (c *Controller) RotateElevation(dir, dt float32) {
	angle := dir * c.Speeds.OrbitalRotate * dt
	c.Current = c.Current.Revolve(0, angle, c.Initial.Target, c.WorldUp())
}

// HandleKey applies one held key for a frame of dt seconds.
func (c *Controller) HandleKey(key Key, dt float32) {
	if c.Behaviour == Freeroam {
		c.handleFreeroam(key, dt)
		return
	}
	c.handleOrbital(key, dt)
}

func (c *Controller) handleFreeroam(key Key, dt float32) {
	switch key {
	case KeyW:
		c.MoveForward(dt)
	case KeyS:
		c.MoveBackward(dt)
	case KeyA:
		c.MoveLeft(dt)
	case KeyD:
		c.MoveRight(dt)
	case KeyQ:
		c.MoveUp(dt)
	case KeyE:
		c.MoveDown(dt)
	case KeyRight:
		c.Rotate(-1, 0, dt)
	case KeyLeft:
		c.Rotate(1, 0, dt)
	case KeyUp:
		c.Rotate(0, 1, dt)
	case KeyDown:
		c.Rotate(0, -1, dt)
	}
}

func (c *Controller) handleOrbital(key Key, dt float32) {
	switch key {
	case KeyW:
		c.ZoomIn(dt)
	case KeyS:
		c.ZoomOut(dt)
	case KeyRight:
		c.RotateAzimuth(1, dt)
	case KeyLeft:
		c.RotateAzimuth(-1, dt)
	case KeyUp:
		c.RotateElevation(1, dt)
	case KeyDown:
		c.RotateElevation(-1, dt)
	}
}

// ViewMatrix returns the look-at matrix of the current placement.
func (c *Controller) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Current.Pos, c.Current.Target, c.Current.Up)
}

// ProjectionMatrix returns the perspective matrix for aspect.
func (c *Controller) ProjectionMatrix(aspect float32) math.Mat4 {
	return c.Projection.Matrix(aspect)
}

// ResetProjection restores the projection the controller was built with.
func (c *Controller) ResetProjection() {
	c.Projection = c.initialProjection
}

// Reset restores the initial placement and projection.
func (c *Controller) Reset() {
	c.Current = c.Initial
	c.Projection = c.initialProjection
}

// Package curve evaluates the cubic curves and surfaces used by the scene:
// Catmull-Rom splines for animated paths and bicubic Bézier patches for
// generated surfaces.
package curve

import (
	"errors"

	"github.com/Faultbox/scenery/pkg/math"
)

// ErrTooFewControlPoints is returned when a spline has fewer than four points.
var ErrTooFewControlPoints = errors.New("curve: at least 4 control points required")

// catmullRom is the Catmull-Rom basis, indexed [row][col].
var catmullRom = [4][4]float32{
	{-0.5, 1.5, -1.5, 0.5},
	{1, -2.5, 2, -0.5},
	{-0.5, 0, 0.5, 0},
	{0, 1, 0, 0},
}

// Segment is one cubic piece of a spline, stored as the product M·P of the
// basis and its four control points. Row i holds the coefficient of t^(3-i).
type Segment [4]math.Vec3

// NewSegment builds the segment interpolating p1..p2; p0 and p3 shape the
// tangents only.
func NewSegment(p0, p1, p2, p3 math.Vec3) Segment {
	p := [4]math.Vec3{p0, p1, p2, p3}
	var s Segment
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i] = s[i].Add(p[j].Scale(catmullRom[i][j]))
		}
	}
	return s
}

// Evaluate returns the position and derivative at t. t outside [0,1]
// extrapolates the cubic.
func (s Segment) Evaluate(t float32) (pos, deriv math.Vec3) {
	return s.dot(math.Cubic(t)), s.dot(math.CubicDerivative(t))
}

func (s Segment) dot(w math.Vec4) math.Vec3 {
	return s[0].Scale(w[0]).
		Add(s[1].Scale(w[1])).
		Add(s[2].Scale(w[2])).
		Add(s[3].Scale(w[3]))
}

// Spline is a sequence of segments sharing endpoints, parametrized
// uniformly over [0,1].
type Spline struct {
	segments []Segment
}

// NewSpline builds an open spline through points[1..n-2]. Fewer than four
// points yield an empty spline.
func NewSpline(points []math.Vec3) *Spline {
	if len(points) < 4 {
		return &Spline{}
	}
	segs := make([]Segment, 0, len(points)-3)
	for i := 0; i+3 < len(points); i++ {
		segs = append(segs, NewSegment(points[i], points[i+1], points[i+2], points[i+3]))
	}
	return &Spline{segments: segs}
}

// NewClosedSpline builds a looping spline that passes through every point,
// one segment per point. The first three points are repeated at the end so
// the path closes on itself with a continuous tangent.
func NewClosedSpline(points []math.Vec3) (*Spline, error) {
	if len(points) < 4 {
		return nil, ErrTooFewControlPoints
	}
	loop := make([]math.Vec3, 0, len(points)+3)
	loop = append(loop, points...)
	loop = append(loop, points[:3]...)
	return NewSpline(loop), nil
}

// Len returns the number of segments.
func (s *Spline) Len() int {
	return len(s.segments)
}

// Segment returns segment i.
func (s *Spline) Segment(i int) Segment {
	return s.segments[i]
}

// Evaluate maps t in [0,1] onto the segments and returns position and
// derivative. t == 1 lands on the end of the last segment. An empty spline
// returns zero vectors.
func (s *Spline) Evaluate(t float32) (pos, deriv math.Vec3) {
	n := len(s.segments)
	if n == 0 {
		return math.Vec3{}, math.Vec3{}
	}

	scaled := t * float32(n)
	idx := int(scaled)
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return s.segments[idx].Evaluate(scaled - float32(idx))
}

// Sample returns steps+1 positions evenly spaced in t over the whole spline.
func (s *Spline) Sample(steps int) []math.Vec3 {
	if steps < 1 || len(s.segments) == 0 {
		return nil
	}
	out := make([]math.Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		p, _ := s.Evaluate(float32(i) / float32(steps))
		out = append(out, p)
	}
	return out
}

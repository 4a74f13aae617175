package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenery/pkg/math"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got math.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

func TestSegmentInterpolatesInnerPoints(t *testing.T) {
	p0 := math.Vec3{X: -1, Y: 2, Z: 0}
	p1 := math.Vec3{X: 0, Y: 0, Z: 0}
	p2 := math.Vec3{X: 4, Y: 1, Z: -2}
	p3 := math.Vec3{X: 5, Y: 5, Z: 5}
	s := NewSegment(p0, p1, p2, p3)

	pos, d := s.Evaluate(0)
	assertVec(t, p1, pos, "t=0 should hit p1")
	assertVec(t, p2.Sub(p0).Scale(0.5), d, "tangent at p1")

	pos, d = s.Evaluate(1)
	assertVec(t, p2, pos, "t=1 should hit p2")
	assertVec(t, p3.Sub(p1).Scale(0.5), d, "tangent at p2")
}

func TestSegmentReproducesUniformLine(t *testing.T) {
	s := NewSegment(math.Vec3{X: 0}, math.Vec3{X: 1}, math.Vec3{X: 2}, math.Vec3{X: 3})

	for _, tt := range []float32{0, 0.25, 0.5, 0.75, 1} {
		pos, d := s.Evaluate(tt)
		assertVec(t, math.Vec3{X: 1 + tt}, pos, "t=%v", tt)
		assertVec(t, math.Vec3{X: 1}, d, "t=%v", tt)
	}
}

func TestSegmentExtrapolates(t *testing.T) {
	s := NewSegment(math.Vec3{X: 0}, math.Vec3{X: 1}, math.Vec3{X: 2}, math.Vec3{X: 3})
	pos, _ := s.Evaluate(2)
	assertVec(t, math.Vec3{X: 3}, pos)
}

func square() []math.Vec3 {
	return []math.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -1},
	}
}

func TestClosedSplineLoops(t *testing.T) {
	pts := square()
	s, err := NewClosedSpline(pts)
	require.NoError(t, err)
	require.Equal(t, len(pts), s.Len())

	// Segment k starts at point k+1 of the loop.
	for k := 0; k < s.Len(); k++ {
		pos, _ := s.Evaluate(float32(k) / float32(s.Len()))
		assertVec(t, pts[(k+1)%len(pts)], pos, "segment %d start", k)
	}

	start, dStart := s.Evaluate(0)
	end, dEnd := s.Evaluate(1)
	assertVec(t, start, end, "t=1 must close the loop")
	assertVec(t, dStart, dEnd, "tangent must be continuous across the seam")
}

func TestClosedSplineContinuousAtBoundaries(t *testing.T) {
	s, err := NewClosedSpline(square())
	require.NoError(t, err)

	n := float32(s.Len())
	for k := 1; k < s.Len(); k++ {
		boundary := float32(k) / n
		before, _ := s.Evaluate(boundary - 1e-4)
		after, _ := s.Evaluate(boundary)
		assert.Less(t, before.Distance(after), float32(1e-2), "jump at segment %d", k)
	}
}

func TestClosedSplineTooFewPoints(t *testing.T) {
	_, err := NewClosedSpline(square()[:3])
	assert.ErrorIs(t, err, ErrTooFewControlPoints)
}

func TestOpenSpline(t *testing.T) {
	s := NewSpline([]math.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}})
	require.Equal(t, 2, s.Len())

	pos, _ := s.Evaluate(0)
	assertVec(t, math.Vec3{X: 1}, pos)
	pos, _ = s.Evaluate(0.5)
	assertVec(t, math.Vec3{X: 2}, pos)
	pos, _ = s.Evaluate(1)
	assertVec(t, math.Vec3{X: 3}, pos)
}

func TestEmptySpline(t *testing.T) {
	s := NewSpline(nil)
	assert.Equal(t, 0, s.Len())

	pos, d := s.Evaluate(0.3)
	assert.Equal(t, math.Vec3{}, pos)
	assert.Equal(t, math.Vec3{}, d)
	assert.Nil(t, s.Sample(8))
}

func TestSample(t *testing.T) {
	s, err := NewClosedSpline(square())
	require.NoError(t, err)

	pts := s.Sample(16)
	require.Len(t, pts, 17)
	assertVec(t, pts[0], pts[16], "sampled loop should close")
}

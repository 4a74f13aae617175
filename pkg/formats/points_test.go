package formats

import (
	"errors"
	"testing"

	"github.com/Faultbox/scenery/pkg/math"
)

func TestParsePoints(t *testing.T) {
	src := "0,0,0\n1, 0, 0\n0 1 0\n\n5,5,5\n"

	pts, err := ParsePoints([]byte(src))
	if err != nil {
		t.Fatalf("ParsePoints failed: %v", err)
	}
	// The dangling fourth vertex does not complete a triangle.
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	if pts[1] != (math.Vec3{X: 1}) || pts[2] != (math.Vec3{Y: 1}) {
		t.Errorf("unexpected points %v", pts)
	}
}

func TestParsePoints_Invalid(t *testing.T) {
	for _, src := range []string{"1,2\n", "1,2,x\n"} {
		if _, err := ParsePoints([]byte(src)); !errors.Is(err, ErrInvalidPoint) {
			t.Errorf("%q: expected ErrInvalidPoint, got %v", src, err)
		}
	}
}

func TestIsOBJ(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{cubeCorner, true},
		{"\n  v 1 2 3\n", true},
		{"1,2,3\n", false},
		{"# header\n1 2 3\n", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsOBJ([]byte(tt.src)); got != tt.want {
			t.Errorf("IsOBJ(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestParseMesh_Positional(t *testing.T) {
	obj, err := ParseMesh([]byte("0,0,0\n1,0,0\n0,1,0\n0,0,0\n0,1,0\n0,0,1\n"))
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}
	if len(obj.Faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(obj.Faces))
	}
	if c := obj.Faces[1][2]; c.V != 5 || c.VT != -1 || c.VN != -1 {
		t.Errorf("unexpected corner %+v", c)
	}
}

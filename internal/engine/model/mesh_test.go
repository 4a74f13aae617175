package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/scenery/pkg/formats"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestFromOBJSharesVertices(t *testing.T) {
	obj, err := formats.ParseOBJ([]byte(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	mesh, err := FromOBJ(obj)
	if err != nil {
		t.Fatalf("FromOBJ: %v", err)
	}

	if len(mesh.Vertices) != 4 {
		t.Errorf("expected 4 shared vertices, got %d", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", mesh.TriangleCount())
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, idx := range want {
		if mesh.Indices[i] != idx {
			t.Errorf("index %d: expected %d, got %d", i, idx, mesh.Indices[i])
		}
	}

	v := mesh.Vertices[2]
	if v.Position != [3]float32{1, 1, 0} || v.TexCoord != [2]float32{1, 1} || v.Normal != [3]float32{0, 0, 1} {
		t.Errorf("unexpected vertex %+v", v)
	}

	if mesh.Bounds.Min != [3]float32{0, 0, 0} || mesh.Bounds.Max != [3]float32{1, 1, 0} {
		t.Errorf("unexpected bounds %+v", mesh.Bounds)
	}
	if c := mesh.Bounds.Center(); c != [3]float32{0.5, 0.5, 0} {
		t.Errorf("unexpected center %v", c)
	}
}

func TestFromOBJDefaults(t *testing.T) {
	obj, err := formats.ParseMesh([]byte("0,0,0\n1,0,0\n0,0,1\n"))
	if err != nil {
		t.Fatalf("ParseMesh: %v", err)
	}
	mesh, err := FromOBJ(obj)
	if err != nil {
		t.Fatalf("FromOBJ: %v", err)
	}
	if len(mesh.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(mesh.Vertices))
	}
	for i, v := range mesh.Vertices {
		if v.Normal != DefaultNormal {
			t.Errorf("vertex %d: expected default normal, got %v", i, v.Normal)
		}
		if v.TexCoord != DefaultTexCoord {
			t.Errorf("vertex %d: expected default texcoord, got %v", i, v.TexCoord)
		}
	}
}

func TestFromOBJIndexRange(t *testing.T) {
	obj := &formats.OBJ{
		Faces: [][3]formats.FaceVertex{{{V: 0, VT: -1, VN: -1}, {V: 1, VT: -1, VN: -1}, {V: 2, VT: -1, VN: -1}}},
	}
	if _, err := FromOBJ(obj); !errors.Is(err, formats.ErrOBJIndexRange) {
		t.Errorf("expected ErrOBJIndexRange, got %v", err)
	}
}

func TestEmptyMesh(t *testing.T) {
	mesh, err := FromOBJ(&formats.OBJ{})
	if err != nil {
		t.Fatalf("FromOBJ: %v", err)
	}
	if mesh.TriangleCount() != 0 || mesh.Bounds != (Bounds{}) {
		t.Errorf("expected empty mesh, got %+v", mesh)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	mesh, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mesh.Name != path || mesh.TriangleCount() != 2 {
		t.Errorf("unexpected mesh %q with %d triangles", mesh.Name, mesh.TriangleCount())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}

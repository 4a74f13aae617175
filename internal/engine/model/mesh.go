package model

import (
	"fmt"

	"github.com/Faultbox/scenery/pkg/formats"
)

// Defaults for corners that carry no normal or texture coordinate.
var (
	DefaultNormal   = [3]float32{0, 1, 0}
	DefaultTexCoord = [2]float32{0, 0}
)

// FromOBJ builds a mesh from parsed OBJ data. Each distinct
// position/texcoord/normal combination becomes one vertex.
func FromOBJ(obj *formats.OBJ) (*Mesh, error) {
	mesh := &Mesh{
		Indices: make([]uint32, 0, len(obj.Faces)*3),
	}
	lookup := make(map[formats.FaceVertex]uint32)

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for _, face := range obj.Faces {
		for _, fv := range face {
			if idx, ok := lookup[fv]; ok {
				mesh.Indices = append(mesh.Indices, idx)
				continue
			}

			v, err := buildVertex(obj, fv)
			if err != nil {
				return nil, err
			}
			for i := 0; i < 3; i++ {
				if v.Position[i] < bounds.Min[i] {
					bounds.Min[i] = v.Position[i]
				}
				if v.Position[i] > bounds.Max[i] {
					bounds.Max[i] = v.Position[i]
				}
			}

			idx := uint32(len(mesh.Vertices))
			mesh.Vertices = append(mesh.Vertices, v)
			lookup[fv] = idx
			mesh.Indices = append(mesh.Indices, idx)
		}
	}

	if len(mesh.Vertices) > 0 {
		mesh.Bounds = bounds
	}
	return mesh, nil
}

func buildVertex(obj *formats.OBJ, fv formats.FaceVertex) (Vertex, error) {
	if fv.V < 0 || fv.V >= len(obj.Positions) {
		return Vertex{}, fmt.Errorf("%w: position %d", formats.ErrOBJIndexRange, fv.V)
	}
	v := Vertex{
		Position: obj.Positions[fv.V].Array(),
		Normal:   DefaultNormal,
		TexCoord: DefaultTexCoord,
	}
	if fv.VN >= 0 {
		if fv.VN >= len(obj.Normals) {
			return Vertex{}, fmt.Errorf("%w: normal %d", formats.ErrOBJIndexRange, fv.VN)
		}
		v.Normal = obj.Normals[fv.VN].Array()
	}
	if fv.VT >= 0 {
		if fv.VT >= len(obj.TexCoords) {
			return Vertex{}, fmt.Errorf("%w: texcoord %d", formats.ErrOBJIndexRange, fv.VT)
		}
		tc := obj.TexCoords[fv.VT]
		v.TexCoord = [2]float32{tc.X, tc.Y}
	}
	return v, nil
}

// Load reads a mesh file in either supported format.
func Load(path string) (*Mesh, error) {
	obj, err := formats.ParseMeshFile(path)
	if err != nil {
		return nil, err
	}
	mesh, err := FromOBJ(obj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	mesh.Name = path
	return mesh, nil
}

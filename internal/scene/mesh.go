package scene

import (
	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/stl"
)

// TriMesh is triangle soup flattened for GPU upload: one position and
// one normal per vertex, three vertices per triangle.
type TriMesh struct {
	Positions []float32 // x,y,z per vertex
	Normals   []float32 // nx,ny,nz per vertex
}

// NewTriMesh flattens a model into float32 arrays. Triangles with a
// zero stored normal get a computed face normal.
func NewTriMesh(model *stl.Model) *TriMesh {
	mesh := &TriMesh{
		Positions: make([]float32, 0, len(model.Triangles)*9),
		Normals:   make([]float32, 0, len(model.Triangles)*9),
	}

	for _, tri := range model.Triangles {
		normal := tri.Normal
		if normal.Length() == 0 {
			normal = tri.CalculateNormal()
		}

		for _, v := range []geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			mesh.Positions = append(mesh.Positions,
				float32(v.X), float32(v.Y), float32(v.Z))
			mesh.Normals = append(mesh.Normals,
				float32(normal.X), float32(normal.Y), float32(normal.Z))
		}
	}

	return mesh
}

// VertexCount returns the number of vertices in the mesh
func (m *TriMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Interleaved returns position/normal pairs packed per vertex, the
// layout the render backend uploads.
func (m *TriMesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*2)
	for i := 0; i < len(m.Positions); i += 3 {
		out = append(out, m.Positions[i], m.Positions[i+1], m.Positions[i+2])
		out = append(out, m.Normals[i], m.Normals[i+1], m.Normals[i+2])
	}
	return out
}

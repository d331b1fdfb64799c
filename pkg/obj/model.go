package obj

import (
	"github.com/philipparndt/objmix/pkg/geometry"
)

// Vertex is a single vertex record. Two vertices are the same record only if
// they are the same pointer, regardless of their coordinates.
type Vertex struct {
	Position geometry.Vector3
	Normal   geometry.Vector3
	Texcoord geometry.Vector2

	// HasNormal and HasTexcoord record whether the source file set the
	// attribute; the zero values are used otherwise.
	HasNormal   bool
	HasTexcoord bool
}

// NewVertex creates a vertex at the given position
func NewVertex(x, y, z float64) *Vertex {
	return &Vertex{Position: geometry.NewVector3(x, y, z)}
}

// Triangle references three shared vertex records. A nil slot is a face
// reference that did not resolve to any vertex.
type Triangle [3]*Vertex

// Resolved returns the number of non-nil slots
func (t Triangle) Resolved() int {
	n := 0
	for _, v := range t {
		if v != nil {
			n++
		}
	}
	return n
}

// Mesh represents a triangle mesh loaded from one or more OBJ files
type Mesh struct {
	Name      string
	Triangles []Triangle

	// VertexCount is the number of vertex records parsed into this mesh,
	// including ones no triangle references.
	VertexCount int
}

// NewMesh creates a new empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]Triangle, 0),
	}
}

// AddTriangle adds a triangle to the mesh
func (m *Mesh) AddTriangle(triangle Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Merge appends the triangles of other to m, sharing the vertex records.
// No vertices are deduplicated across the two meshes. other is left empty.
func (m *Mesh) Merge(other *Mesh) {
	if other == nil || other == m {
		return
	}
	m.Triangles = append(m.Triangles, other.Triangles...)
	m.VertexCount += other.VertexCount
	other.Triangles = nil
	other.VertexCount = 0
}

// MergeAll merges meshes in order into the first one and returns it.
// It returns nil when no meshes are given.
func MergeAll(meshes ...*Mesh) *Mesh {
	if len(meshes) == 0 {
		return nil
	}
	result := meshes[0]
	for _, mesh := range meshes[1:] {
		result.Merge(mesh)
	}
	return result
}

// BoundingBox calculates the bounding box over the distinct vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	return m.Vertices().BoundingBox()
}

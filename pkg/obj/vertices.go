package obj

import "github.com/philipparndt/objmix/pkg/geometry"

// VertexSet is the ordered set of distinct vertex records referenced by a
// mesh, together with their 1-based output indices.
type VertexSet struct {
	List  []*Vertex
	index map[*Vertex]int
}

// Vertices walks the triangles in order and collects every distinct vertex
// record the first time it is seen. Unresolved slots are skipped. The result
// reflects the current triangle list, so callers should take a fresh set after
// any mutation of m.Triangles.
func (m *Mesh) Vertices() *VertexSet {
	set := &VertexSet{
		List:  make([]*Vertex, 0, len(m.Triangles)),
		index: make(map[*Vertex]int, len(m.Triangles)),
	}
	for _, triangle := range m.Triangles {
		for _, v := range triangle {
			if v == nil {
				continue
			}
			if _, seen := set.index[v]; seen {
				continue
			}
			set.List = append(set.List, v)
			set.index[v] = len(set.List)
		}
	}
	return set
}

// Len returns the number of distinct vertices
func (s *VertexSet) Len() int {
	return len(s.List)
}

// Index returns the 1-based output index of v, or 0 if v is not in the set
func (s *VertexSet) Index(v *Vertex) int {
	if v == nil {
		return 0
	}
	return s.index[v]
}

// BoundingBox returns the extent of all vertex positions in the set
func (s *VertexSet) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range s.List {
		bbox.Extend(v.Position)
	}
	return bbox
}

// Transform replaces every position and normal with m times itself
func (s *VertexSet) Transform(m geometry.Matrix3) {
	for _, v := range s.List {
		v.Position = m.MulVec(v.Position)
		v.Normal = m.MulVec(v.Normal)
	}
}

// Translate subtracts offset from every position. Normals are unchanged.
func (s *VertexSet) Translate(offset geometry.Vector3) {
	for _, v := range s.List {
		v.Position = v.Position.Sub(offset)
	}
}

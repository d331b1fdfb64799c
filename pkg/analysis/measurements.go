package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/objmix/pkg/geometry"
	"github.com/philipparndt/objmix/pkg/obj"
)

// MeshSummary contains counts and measurements of an OBJ mesh
type MeshSummary struct {
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	ParsedVertices int
	UniqueVertices int
	TriangleCount  int
	PartialFaces   int // Faces with at least one unresolved reference
	WithNormals    int
	WithTexcoords  int
	EdgeCount      int
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
}

// AnalyzeMesh summarizes a mesh. Edges touching an unresolved slot are skipped.
func AnalyzeMesh(mesh *obj.Mesh) *MeshSummary {
	vertices := mesh.Vertices()

	result := &MeshSummary{
		ParsedVertices: mesh.VertexCount,
		UniqueVertices: vertices.Len(),
		TriangleCount:  mesh.TriangleCount(),
	}

	if bounds := vertices.BoundingBox(); !bounds.IsEmpty() {
		result.BoundingBox = bounds
		result.Dimensions = bounds.Size()
	}

	for _, v := range vertices.List {
		if v.HasNormal {
			result.WithNormals++
		}
		if v.HasTexcoord {
			result.WithTexcoords++
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range mesh.Triangles {
		if triangle.Resolved() < len(triangle) {
			result.PartialFaces++
		}

		for i := range triangle {
			start, end := triangle[i], triangle[(i+1)%len(triangle)]
			if start == nil || end == nil {
				continue
			}

			length := start.Position.Distance(end.Position)
			result.EdgeCount++
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

package obj

import (
	"fmt"
	"strings"

	"github.com/philipparndt/objmix/pkg/geometry"
)

// AlignMode selects how the horizontal anchor is derived from the bounds
type AlignMode int

const (
	// AlignMixed centers horizontally on ((minX+minZ)/2, (maxX+maxZ)/2).
	// X and Z extrema are paired, so applying it twice moves the mesh again.
	AlignMixed AlignMode = iota
	// AlignCenter centers horizontally on the middle of the X and Z extents
	AlignCenter
)

// ParseAlignMode converts a config or flag value to an AlignMode
func ParseAlignMode(s string) (AlignMode, error) {
	switch strings.ToLower(s) {
	case "", "mixed":
		return AlignMixed, nil
	case "center":
		return AlignCenter, nil
	default:
		return AlignMixed, fmt.Errorf("invalid align mode: %s (expected mixed or center)", s)
	}
}

func (a AlignMode) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "mixed"
}

// AlignReport describes what Align measured and applied
type AlignReport struct {
	Bounds geometry.BoundingBox
	Anchor geometry.Vector3
}

// Rotate applies Euler rotations in degrees about X, then Y, then Z.
// Positions and normals are rotated by the same matrix. A zero angle leaves
// that axis untouched.
func (m *Mesh) Rotate(x, y, z float64) {
	axes := []struct {
		angle  float64
		matrix func(float64) geometry.Matrix3
	}{
		{x, geometry.RotationX},
		{y, geometry.RotationY},
		{z, geometry.RotationZ},
	}

	for _, axis := range axes {
		if axis.angle == 0 {
			continue
		}
		m.Vertices().Transform(axis.matrix(axis.angle))
	}
}

// Align moves the mesh so that it stands on the Y=0 plane and is centered
// horizontally according to mode. Normals are not changed. An empty mesh is
// left as is and yields a zero report.
func (m *Mesh) Align(mode AlignMode) AlignReport {
	vertices := m.Vertices()
	bounds := vertices.BoundingBox()
	if bounds.IsEmpty() {
		return AlignReport{}
	}

	anchor := Anchor(bounds, mode)
	vertices.Translate(anchor)

	return AlignReport{Bounds: bounds, Anchor: anchor}
}

// Anchor returns the point that Align moves to the origin
func Anchor(bounds geometry.BoundingBox, mode AlignMode) geometry.Vector3 {
	if mode == AlignCenter {
		return geometry.NewVector3(
			(bounds.Min.X+bounds.Max.X)/2.0,
			bounds.Min.Y,
			(bounds.Min.Z+bounds.Max.Z)/2.0,
		)
	}
	return geometry.NewVector3(
		(bounds.Min.X+bounds.Min.Z)/2.0,
		bounds.Min.Y,
		(bounds.Max.X+bounds.Max.Z)/2.0,
	)
}

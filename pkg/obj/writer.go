package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// AttributePolicy controls when "vn" and "vt" lines are written
type AttributePolicy int

const (
	// AttributesAlways writes a normal and a texcoord line for every vertex,
	// using zero values for attributes the source never set.
	AttributesAlways AttributePolicy = iota
	// AttributesWhenSet writes only the attributes the source file set.
	AttributesWhenSet
)

// ParseAttributePolicy converts a config or flag value to an AttributePolicy
func ParseAttributePolicy(s string) (AttributePolicy, error) {
	switch strings.ToLower(s) {
	case "", "always":
		return AttributesAlways, nil
	case "when-set", "set":
		return AttributesWhenSet, nil
	default:
		return AttributesAlways, fmt.Errorf("invalid attribute policy: %s (expected always or when-set)", s)
	}
}

func (p AttributePolicy) String() string {
	if p == AttributesWhenSet {
		return "when-set"
	}
	return "always"
}

// WriteOptions configures the OBJ writer
type WriteOptions struct {
	Attributes AttributePolicy
}

// Write serializes the mesh as OBJ text. Vertex indices are taken from a
// fresh dedup pass so they always match the current triangle list.
func Write(w io.Writer, m *Mesh, opts WriteOptions) error {
	bw := bufio.NewWriter(w)
	vertices := m.Vertices()

	for _, v := range vertices.List {
		writeRecord(bw, "v", v.Position.X, v.Position.Y, v.Position.Z)
		if opts.Attributes == AttributesAlways || v.HasNormal {
			writeRecord(bw, "vn", v.Normal.X, v.Normal.Y, v.Normal.Z)
		}
		if opts.Attributes == AttributesAlways || v.HasTexcoord {
			writeRecord(bw, "vt", v.Texcoord.U, v.Texcoord.V)
		}
	}
	fmt.Fprintf(bw, "# %d verticies\n", vertices.Len())

	for _, triangle := range m.Triangles {
		bw.WriteString("f")
		for _, v := range triangle {
			if v == nil {
				continue
			}
			index := strconv.Itoa(vertices.Index(v))
			bw.WriteString(" " + index + "/" + index + "/" + index)
		}
		bw.WriteString("\n")
	}
	fmt.Fprintf(bw, "# %d elements\n", len(m.Triangles))

	return bw.Flush()
}

// Dump returns the OBJ text for the mesh
func Dump(m *Mesh, opts WriteOptions) string {
	var sb strings.Builder
	// strings.Builder never returns a write error
	_ = Write(&sb, m, opts)
	return sb.String()
}

func writeRecord(w *bufio.Writer, keyword string, values ...float64) {
	w.WriteString(keyword)
	for _, value := range values {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(value, 'f', 7, 64))
	}
	w.WriteByte('\n')
}

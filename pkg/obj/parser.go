package obj

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/objmix/pkg/geometry"
)

// ErrNoVertex is returned when vertex data appears before the first "v" record
var ErrNoVertex = errors.New("vertex data before any vertex record")

// ParseError describes a malformed record in an OBJ stream
type ParseError struct {
	Name  string
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s:%d: invalid value %q: %v", e.Name, e.Line, e.Token, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type recordKind int

const (
	kindPosition recordKind = iota
	kindNormal
	kindTexcoord
	kindTriangle
)

// Parse reads an OBJ file and returns a Mesh named after the file
func Parse(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseBytes(filepath.Base(filename), data)
}

// ParseReader reads the whole stream and parses it
func ParseReader(name string, reader io.Reader) (*Mesh, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return ParseBytes(name, buf.Bytes())
}

// ParseBytes parses OBJ data in a single pass over its bytes.
//
// Only "v", "vn", "vt", "f" and "#" records are understood. A "vn" or "vt"
// record updates the vertex created by the most recent "v" record, so
// attribute lines must follow the position line they belong to. Face
// references are 1-based positions of "v" records in this stream; only the
// part before the first '/' is used and unknown references resolve to nil.
func ParseBytes(name string, data []byte) (*Mesh, error) {
	p := newParser(name)
	for _, b := range data {
		if err := p.feed(b); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return p.mesh, nil
}

// parser is the byte-level state machine behind ParseBytes
type parser struct {
	name string
	mesh *Mesh
	line int

	token     []byte
	kind      recordKind
	prev      byte
	inComment bool

	// current is the vertex that "v", "vn" and "vt" values are written to
	current *Vertex
	count   int
	byIndex map[int]*Vertex

	floats []float64
	refs   []int
}

func newParser(name string) *parser {
	return &parser{
		name:    name,
		mesh:    NewMesh(name),
		line:    1,
		prev:    '\n',
		byIndex: make(map[int]*Vertex),
	}
}

func (p *parser) feed(b byte) error {
	if p.inComment {
		if b != '\n' {
			return nil
		}
		p.inComment = false
	}
	if b == '\r' || b == '\t' {
		b = ' '
	}

	switch b {
	case 'v':
	case 'n':
		if p.prev == 'v' {
			p.kind = kindNormal
		}
	case 't':
		if p.prev == 'v' {
			p.kind = kindTexcoord
		}
	case 'f':
		if p.prev == '\n' {
			p.kind = kindTriangle
		}
	case ' ', '\n':
		if err := p.delimit(); err != nil {
			return err
		}
		if b == '\n' {
			if err := p.endLine(); err != nil {
				return err
			}
			p.line++
		}
	case '#':
		p.inComment = true
		return nil
	default:
		p.token = append(p.token, b)
	}

	p.prev = b
	return nil
}

// finish terminates a last line that has no trailing newline
func (p *parser) finish() error {
	if p.prev != '\n' || p.inComment {
		p.inComment = false
		if err := p.feed('\n'); err != nil {
			return err
		}
	}
	p.mesh.VertexCount = p.count
	return nil
}

// delimit handles a field separator: a bare "v" opens a new vertex, otherwise
// the pending token is decoded into the current record.
func (p *parser) delimit() error {
	defer func() { p.token = p.token[:0] }()

	switch {
	case p.prev == 'v':
		p.count++
		p.current = &Vertex{}
		p.byIndex[p.count] = p.current
		p.kind = kindPosition
	case p.prev == ' ':
	case len(p.token) > 0:
		return p.decode()
	}
	return nil
}

func (p *parser) decode() error {
	text := string(p.token)

	if p.kind == kindTriangle {
		if i := strings.IndexByte(text, '/'); i >= 0 {
			text = text[:i]
		}
		ref, err := strconv.Atoi(text)
		if err != nil {
			return p.fail(string(p.token), err)
		}
		p.refs = append(p.refs, ref)
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return p.fail(text, err)
	}
	p.floats = append(p.floats, value)
	return nil
}

// endLine stores the values collected on the current line
func (p *parser) endLine() error {
	defer func() {
		p.floats = p.floats[:0]
		p.refs = p.refs[:0]
	}()

	switch p.kind {
	case kindPosition, kindNormal:
		if len(p.floats) == 0 {
			return nil
		}
		if p.current == nil {
			return p.fail("", ErrNoVertex)
		}
		// Short records leave the vertex at its defaults; extra values are ignored.
		if len(p.floats) < 3 {
			return nil
		}
		value := geometry.NewVector3(p.floats[0], p.floats[1], p.floats[2])
		if p.kind == kindPosition {
			p.current.Position = value
		} else {
			p.current.Normal = value
			p.current.HasNormal = true
		}

	case kindTexcoord:
		if len(p.floats) != 2 {
			return nil
		}
		if p.current == nil {
			return p.fail("", ErrNoVertex)
		}
		p.current.Texcoord = geometry.NewVector2(p.floats[0], p.floats[1])
		p.current.HasTexcoord = true

	case kindTriangle:
		var triangle Triangle
		for i, ref := range p.refs {
			if i == len(triangle) {
				break
			}
			triangle[i] = p.byIndex[ref]
		}
		if triangle.Resolved() > 0 {
			p.mesh.AddTriangle(triangle)
		}
	}
	return nil
}

func (p *parser) fail(token string, err error) error {
	return &ParseError{Name: p.name, Line: p.line, Token: token, Err: err}
}

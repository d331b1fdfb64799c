package mixer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/objmix/internal/config"
	"github.com/philipparndt/objmix/internal/logger"
	"github.com/philipparndt/objmix/pkg/geometry"
	"github.com/philipparndt/objmix/pkg/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	quadOBJ     = "v 0 0 0\nv 2 0 0\nv 2 2 0\nv 0 2 0\nf 1 2 3\nf 1 3 4\n"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunSingleFile(t *testing.T) {
	path := writeFile(t, "triangle.obj", triangleOBJ)

	out, err := Run(Options{Inputs: []string{path}})
	require.NoError(t, err)

	assert.Equal(t, 3, countLines(out, "v "))
	assert.Equal(t, 3, countLines(out, "vn "))
	assert.Equal(t, 3, countLines(out, "vt "))
	assert.Contains(t, out, "# 3 verticies\nf 1/1/1 2/2/2 3/3/3\n# 1 elements\n")
}

func TestRunMergesInOrder(t *testing.T) {
	first := writeFile(t, "triangle.obj", triangleOBJ)
	second := writeFile(t, "quad.obj", quadOBJ)

	out, err := Run(Options{Inputs: []string{first, second}, Attributes: obj.AttributesWhenSet})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"v 0.0000000 0.0000000 0.0000000",
		"v 1.0000000 0.0000000 0.0000000",
		"v 0.0000000 1.0000000 0.0000000",
		"v 0.0000000 0.0000000 0.0000000",
		"v 2.0000000 0.0000000 0.0000000",
		"v 2.0000000 2.0000000 0.0000000",
		"v 0.0000000 2.0000000 0.0000000",
		"# 7 verticies",
		"f 1/1/1 2/2/2 3/3/3",
		"f 4/4/4 5/5/5 6/6/6",
		"f 4/4/4 6/6/6 7/7/7",
		"# 3 elements",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestRunSameFileTwiceDuplicates(t *testing.T) {
	path := writeFile(t, "triangle.obj", triangleOBJ)

	out, err := Run(Options{Inputs: []string{path, path}})
	require.NoError(t, err)

	assert.Contains(t, out, "# 6 verticies\n")
	assert.Contains(t, out, "f 4/4/4 5/5/5 6/6/6\n# 2 elements\n")
}

func TestRunRotateAndAlign(t *testing.T) {
	path := writeFile(t, "quad.obj", quadOBJ)

	out, err := Run(Options{
		Inputs:     []string{path},
		Rotate:     geometry.NewVector3(-90, 0, 0),
		Align:      true,
		AlignMode:  obj.AlignCenter,
		Attributes: obj.AttributesWhenSet,
	})
	require.NoError(t, err)

	// Rotating -90 about X lays the quad into the XZ plane at Y=0,
	// centering moves X to [-1,1] and Z to [-1,1].
	mesh, err := obj.ParseBytes("out.obj", []byte(out))
	require.NoError(t, err)

	bounds := mesh.BoundingBox()
	assert.InDelta(t, -1.0, bounds.Min.X, 1e-6)
	assert.InDelta(t, 1.0, bounds.Max.X, 1e-6)
	assert.InDelta(t, 0.0, bounds.Min.Y, 1e-6)
	assert.InDelta(t, 0.0, bounds.Max.Y, 1e-6)
	assert.InDelta(t, -1.0, bounds.Min.Z, 1e-6)
	assert.InDelta(t, 1.0, bounds.Max.Z, 1e-6)
}

func TestRunParseErrorProducesNoOutput(t *testing.T) {
	good := writeFile(t, "good.obj", triangleOBJ)
	bad := writeFile(t, "bad.obj", "v 1 2 x\n")

	out, err := Run(Options{Inputs: []string{good, bad}})
	require.Error(t, err)
	assert.Empty(t, out)

	var parseErr *obj.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Contains(t, err.Error(), bad)
}

func TestRunMissingFile(t *testing.T) {
	_, err := Run(Options{Inputs: []string{filepath.Join(t.TempDir(), "missing.obj")}})

	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRunNoInputs(t *testing.T) {
	_, err := Run(Options{})

	assert.True(t, errors.Is(err, ErrNoInputs))
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Transform.RotateX = 90
	cfg.Transform.RotateZ = -45
	cfg.Transform.Align = true
	cfg.Transform.AlignMode = "center"
	cfg.Output.Attributes = "when-set"

	opts, err := OptionsFromConfig(cfg, []string{"a.obj", "b.obj"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.obj", "b.obj"}, opts.Inputs)
	assert.Equal(t, geometry.NewVector3(90, 0, -45), opts.Rotate)
	assert.True(t, opts.Align)
	assert.Equal(t, obj.AlignCenter, opts.AlignMode)
	assert.Equal(t, obj.AttributesWhenSet, opts.Attributes)

	cfg.Output.Attributes = "sometimes"
	_, err = OptionsFromConfig(cfg, nil)
	assert.Error(t, err)
}

func countLines(text, prefix string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestLoadLogsEachInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logger.InitWithFileConfig("debug", logger.FileConfig{}, &buf))
	t.Cleanup(func() { logger.Log = zap.NewNop() })

	path := writeFile(t, "triangle.obj", triangleOBJ)
	_, err := Load([]string{path})
	require.NoError(t, err)
	logger.Sync()

	assert.Contains(t, buf.String(), "DEBUG parsing mesh")
	assert.Contains(t, buf.String(), "INFO parsed mesh")
}

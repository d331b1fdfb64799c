package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/objmix/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every persistent flag back to its default and clears its
// Changed state, so a step does not inherit flags from the previous one.
// Repeated slice flags append once they have been set, so they are replaced.
func resetFlags(t *testing.T) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		if value, ok := flag.Value.(pflag.SliceValue); ok {
			require.NoError(t, value.Replace(nil))
		} else {
			require.NoError(t, flag.Value.Set(flag.DefValue))
		}
		flag.Changed = false
	})
}

// The commands share package-level flag state, so the steps run in sequence.
func TestCommands(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.obj")
	second := filepath.Join(dir, "b.obj")
	require.NoError(t, os.WriteFile(first, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("v 0 0 1\nv 1 0 1\nv 0 1 1\nf 1 2 3\n"), 0644))

	configFile := filepath.Join(dir, "objmix.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging:\n  level: error\n"), 0644))

	t.Run("mix to stdout", func(t *testing.T) {
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		resetFlags(t)
		rootCmd.SetArgs([]string{"-c", configFile, "-f", first, "-f", second})

		require.NoError(t, rootCmd.Execute())

		out := stdout.String()
		assert.Contains(t, out, "# 6 verticies\n")
		assert.Contains(t, out, "f 1/1/1 2/2/2 3/3/3\nf 4/4/4 5/5/5 6/6/6\n# 2 elements\n")
	})

	t.Run("positional inputs after -f", func(t *testing.T) {
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		resetFlags(t)
		rootCmd.SetArgs([]string{"-c", configFile, "-f", first, second})

		require.NoError(t, rootCmd.Execute())

		out := stdout.String()
		assert.Contains(t, out, "# 6 verticies\n")
		assert.Contains(t, out, "# 2 elements\n")
	})

	t.Run("mix to file with alignment", func(t *testing.T) {
		output := filepath.Join(dir, "merged.obj")
		resetFlags(t)
		rootCmd.SetArgs([]string{"-c", configFile, "-f", first, "-f", second,
			"--align", "--align-mode", "center", "--attributes", "when-set", "-o", output})

		require.NoError(t, rootCmd.Execute())

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "v -0.5000000 0.0000000 -0.5000000\n"))
		assert.NotContains(t, string(data), "vn ")
	})

	t.Run("info", func(t *testing.T) {
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		resetFlags(t)
		rootCmd.SetArgs([]string{"info", "-c", configFile, "-f", first})

		require.NoError(t, rootCmd.Execute())

		assert.Contains(t, stdout.String(), "Unique vertices: 3")
		assert.Contains(t, stdout.String(), "Triangles: 1")
		assert.False(t, cfg.Transform.Align)
		assert.Empty(t, cfg.Output.File)
	})

	t.Run("config save", func(t *testing.T) {
		saved := filepath.Join(dir, "saved.yaml")
		resetFlags(t)
		rootCmd.SetArgs([]string{"config", "-c", configFile, "--rotate-x", "90", saved})

		require.NoError(t, rootCmd.Execute())

		loaded, err := config.Load(saved)
		require.NoError(t, err)
		assert.Equal(t, 90.0, loaded.Transform.RotateX)
		assert.Equal(t, "error", loaded.Logging.Level)
	})

	t.Run("invalid align mode", func(t *testing.T) {
		resetFlags(t)
		rootCmd.SetArgs([]string{"-c", configFile, "-f", first, "--align-mode", "diagonal"})

		assert.Error(t, rootCmd.Execute())
	})
}

func TestCheckOutputNotInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.obj")

	assert.NoError(t, checkOutputNotInput(filepath.Join(dir, "out.obj"), []string{input}))
	assert.Error(t, checkOutputNotInput(input, []string{filepath.Join(dir, "b.obj"), input}))
	assert.Error(t, checkOutputNotInput(filepath.Join(dir, "sub", "..", "a.obj"), []string{input}))
}

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/internal/config"
	"github.com/katalvlaran/tutte/tutte"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd, a := newRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.Execute()
	a.close()

	return out.String(), err
}

func TestPoly(t *testing.T) {
	out, err := run(t, "poly", "cycle", "5")
	require.NoError(t, err)
	assert.Equal(t, "x^4 + x^3 + x^2 + x + y\n", out)

	out, err = run(t, "poly", "diamond")
	require.NoError(t, err)
	assert.Equal(t, "x^3 + 2x^2 + 2xy + x + y^2 + y\n", out)

	out, err = run(t, "poly", "dipole", "3", "--json", "--cache", "memory")
	require.NoError(t, err)
	var body polyOutput
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "dipole", body.Family)
	assert.Equal(t, 2, body.Vertices)
	assert.Equal(t, 3, body.Edges)
	assert.Equal(t, "x + y^2 + y", body.Polynomial)
	assert.False(t, body.Cached)
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "cycle", "5", "--x", "2", "--y", "0"}, "30"},
		{[]string{"eval", "wheel", "5", "--x", "1", "--y", "1"}, "45"},
		{[]string{"eval", "path", "3", "--x", "1/2", "--y", "7", "--domain", "rat"}, "1/4"},
		{[]string{"eval", "bouquet", "2", "--x", "0", "--y", "1.5", "--domain", "float"}, "2.25"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestInvariants(t *testing.T) {
	out, err := run(t, "invariants", "diamond", "--lambda", "3", "--p", "1")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "diamond", body["family"])
	assert.EqualValues(t, 8, body["spanning_trees"])
	assert.EqualValues(t, 8, body["kirchhoff_spanning_forests"])
	assert.EqualValues(t, 18, body["acyclic_orientations"])
	assert.EqualValues(t, 6, body["chromatic"])
	assert.EqualValues(t, 2, body["flow"])
	assert.EqualValues(t, 1, body["reliability"])

	out, err = run(t, "invariants", "cycle", "4")
	require.NoError(t, err)
	assert.NotContains(t, out, "chromatic")
	assert.NotContains(t, out, "reliability")
}

func TestErrors(t *testing.T) {
	_, err := run(t, "poly", "complete", "6", "--budget", "10")
	assert.ErrorIs(t, err, tutte.ErrResourceExhausted)

	_, err = run(t, "poly", "hypercube", "3")
	assert.ErrorIs(t, err, builder.ErrUnknownFamily)

	_, err = run(t, "poly", "cycle", "5", "--workers", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "poly", "cycle", "5", "--cache", "memcached")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "eval", "cycle", "5", "--x", "1")
	assert.Error(t, err)

	_, err = run(t, "poly")
	assert.Error(t, err)

	_, err = run(t, "poly", "complete", "300")
	assert.ErrorIs(t, err, builder.ErrTooLarge, "default cap")

	_, err = run(t, "poly", "bouquet", "40", "--max-edges", "30")
	assert.ErrorIs(t, err, builder.ErrTooLarge)

	_, err = run(t, "poly", "cycle", "5", "--max-vertices=-1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutte.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  budget: 10\n"), 0o600))

	_, err := run(t, "poly", "complete", "6", "--config", path)
	assert.ErrorIs(t, err, tutte.ErrResourceExhausted)

	// flags beat the file
	out, err := run(t, "poly", "complete", "3", "--config", path, "--budget", "0")
	require.NoError(t, err)
	assert.Equal(t, "x^2 + x + y\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tutte version dev\n", out)
}

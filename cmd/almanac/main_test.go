// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stagemap/internal/fixture"
	"github.com/katalvlaran/stagemap/pipeline"
)

// writeAlmanac stores the standard almanac text under a temp dir.
func writeAlmanac(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "almanac.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixture.Text), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(append([]string{"--log-level", "error"}, args...), &out, io.Discard)
	return out.String(), err
}

// TestLowest covers both seed readings and every strategy.
func TestLowest(t *testing.T) {
	path := writeAlmanac(t)
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"DefaultRanges", []string{"lowest", path}, "46\n"},
		{"Values", []string{"lowest", path, "--mode", "values"}, "35\n"},
		{"ValuesScalar", []string{"lowest", path, "-m", "values", "-s", "scalar"}, "35\n"},
		{"RangesInterval", []string{"lowest", path, "--strategy", "interval"}, "46\n"},
		{"RangesScalarOneWorker", []string{"--workers", "1", "lowest", path, "-s", "scalar"}, "46\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runCLI(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestTrace prints each seed image, defaulting to the file's seed line.
func TestTrace(t *testing.T) {
	path := writeAlmanac(t)

	out, err := runCLI(t, "trace", path)
	require.NoError(t, err)
	assert.Equal(t, "79 -> 82\n14 -> 43\n55 -> 86\n13 -> 35\n", out)

	out, err = runCLI(t, "trace", path, "82")
	require.NoError(t, err)
	assert.Equal(t, "82 -> 46\n", out)
}

// TestConfigFile applies a YAML config and lets flags override it.
func TestConfigFile(t *testing.T) {
	path := writeAlmanac(t)
	cfgPath := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seeds:\n  mode: values\n"), 0o644))

	out, err := runCLI(t, "--config", cfgPath, "lowest", path)
	require.NoError(t, err)
	assert.Equal(t, "35\n", out)

	out, err = runCLI(t, "--config", cfgPath, "lowest", path, "--mode", "ranges")
	require.NoError(t, err)
	assert.Equal(t, "46\n", out)
}

// TestErrors surfaces failures from each layer.
func TestErrors(t *testing.T) {
	path := writeAlmanac(t)

	_, err := runCLI(t, "lowest", path, "--strategy", "brute")
	assert.ErrorIs(t, err, pipeline.ErrUnknownStrategy)

	_, err = runCLI(t, "lowest", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("seeds: 1 2\n\na-to-b map:\n1 2\n"), 0o644))
	_, err = runCLI(t, "lowest", bad)
	assert.Error(t, err)

	_, err = runCLI(t, "--config", filepath.Join(t.TempDir(), "typo.yaml"), "lowest", path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfgPath := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pipeline:\n  stages: [nowhere]\n"), 0o644))
	_, err = runCLI(t, "--config", cfgPath, "lowest", path)
	assert.ErrorIs(t, err, pipeline.ErrMissingCategory)
}

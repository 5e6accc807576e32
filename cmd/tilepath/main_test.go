package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMap(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

const detour = `name: detour
start: {x: 0, y: 0}
end: {x: 4, y: 2}
rows:
  - "....."
  - ".###."
  - "....."
`

func TestRun_Found(t *testing.T) {
	path := writeMap(t, detour)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-map", path}, &stdout, &stderr)
	require.Equal(t, exitFound, code, stderr.String())
	assert.Equal(t, "S****\n.###*\n....E\n", stdout.String())
	assert.Contains(t, stderr.String(), "path found")
	assert.Contains(t, stderr.String(), "steps=6")
}

func TestRun_Overrides(t *testing.T) {
	path := writeMap(t, detour)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-map", path, "-from", "0,2", "-to", "4,0", "-diagonal", "-cost10", "-heuristic", "octile", "-v"}, &stdout, &stderr)
	require.Equal(t, exitFound, code, stderr.String())
	assert.Contains(t, stderr.String(), "expand")
	assert.Contains(t, stdout.String(), "S")
	assert.Contains(t, stdout.String(), "E")
}

func TestRun_NoPath(t *testing.T) {
	path := writeMap(t, "start: {x: 0, y: 0}\nend: {x: 2, y: 0}\nrows: [\".#.\"]\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-map", path}, &stdout, &stderr)
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, stderr.String(), "no path")
	assert.Equal(t, "S#E\n", stdout.String())
}

func TestRun_Capped(t *testing.T) {
	path := writeMap(t, "start: {x: 0, y: 0}\nend: {x: 5, y: 0}\nrows: [\"......\"]\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-map", path, "-max", "2", "-cap"}, &stdout, &stderr)
	assert.Equal(t, exitNoPath, code)
	assert.Equal(t, "S**..E\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	good := writeMap(t, detour)
	cases := []struct {
		name string
		args []string
	}{
		{"missing map flag", nil},
		{"missing file", []string{"-map", filepath.Join(t.TempDir(), "none.yaml")}},
		{"bad position", []string{"-map", good, "-from", "zero"}},
		{"unknown heuristic", []string{"-map", good, "-heuristic", "euclid"}},
		{"same tile", []string{"-map", good, "-from", "1,0", "-to", "1,0"}},
		{"outside grid", []string{"-map", good, "-to", "9,9"}},
		{"bad flag", []string{"-nope"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, exitError, run(tc.args, &stdout, &stderr))
			assert.NotEmpty(t, stderr.String())
		})
	}

	noEnd := writeMap(t, "start: {x: 0, y: 0}\nrows: [\"..\"]\n")
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitError, run([]string{"-map", noEnd}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "no end position")
}

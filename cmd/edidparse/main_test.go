package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	edid "github.com/thyge/edidparse"
)

func TestLoadConfig(t *testing.T) {
	defer func(f string, s bool, w int, v bool) {
		*format, *strict, *workers, *verbose = f, s, w, v
	}(*format, *strict, *workers, *verbose)

	p := filepath.Join(t.TempDir(), "edidparse.yaml")
	require.NoError(t, os.WriteFile(p, []byte("format: yaml\nworkers: 8\nstrict: true\nverbose: true\n"), 0o644))
	require.NoError(t, flag.Set("workers", "2"))

	require.NoError(t, loadConfig(p))
	assert.Equal(t, "yaml", *format)
	assert.Equal(t, 2, *workers)
	assert.True(t, *strict)
	assert.True(t, *verbose)

	require.NoError(t, os.WriteFile(p, []byte("format: [yaml"), 0o644))
	assert.Error(t, loadConfig(p))
}

func TestEmit(t *testing.T) {
	defer func(f string) { *format = f }(*format)
	s := summary{Passed: 2, ByKind: map[edid.ErrorKind]int{edid.KindNoHeader: 1}}

	var buf bytes.Buffer
	*format = "json"
	emit(&buf, s)
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(2), got["Passed"])
	assert.Equal(t, map[string]any{"NoHeader": float64(1)}, got["ByKind"])

	buf.Reset()
	*format = "yaml"
	emit(&buf, s)
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &y))
	assert.Equal(t, 2, y["passed"])
	assert.Equal(t, map[string]any{"NoHeader": 1}, y["bykind"])
}

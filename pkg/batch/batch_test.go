package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	edid "github.com/thyge/edidparse"
)

func dellS2417DG() []byte {
	b := []byte{
		0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00,
		0x10, 0xAC, 0xE7, 0xA0, 0x01, 0x00, 0x00, 0x00, 0x1C, 0x1C,
		0x01, 0x04,
		0xA5, 0x35, 0x1E, 0x78, 0x3A,
		0xEE, 0x91, 0xA3, 0x54, 0x4C, 0x99, 0x26, 0x0F, 0x50, 0x54,
		0x21, 0x08, 0x00,
		0xD1, 0xC0, 0x81, 0xC0, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x56, 0x5E, 0x00, 0xA0, 0xA0, 0xA0, 0x29, 0x50, 0x30, 0x20,
		0x35, 0x00, 0x0F, 0x28, 0x21, 0x00, 0x00, 0x1A,
		0x00, 0x00, 0x00, 0xFF, 0x00, 'A', '0', '1', '2', '3',
		'4', '5', '6', '7', '8', '9', 0x0A, 0x20,
		0x00, 0x00, 0x00, 0xFD, 0x00, 0x50, 0x75, 0x30, 0x90, 0x25,
		0x01, 0x0A, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
		0x00, 0x00, 0x00, 0xFC, 0x00, 'D', 'E', 'L', 'L', ' ',
		'S', '2', '4', '1', '7', 'D', 'G', 0x0A,
		0x01, 0x00,
	}
	b[0x7F] = edid.ComputeChecksum(b)
	return b
}

func corpus(t *testing.T) (string, map[string]string) {
	t.Helper()
	dir := t.TempDir()

	noHeader := dellS2417DG()
	noHeader[0] = 0x01

	zeroGamma := dellS2417DG()
	zeroGamma[0x17] = 0x00
	zeroGamma[0x7F] = edid.ComputeChecksum(zeroGamma)

	files := map[string][]byte{
		"good.bin":         dellS2417DG(),
		"DEL/nested.bin":   dellS2417DG(),
		"short.bin":        dellS2417DG()[:64],
		"noheader.bin":     noHeader,
		"gamma.bin":        zeroGamma,
		"garbage.txt":      []byte("not hex"),
		".hidden/skip.bin": noHeader,
		"DEL/.ignored.bin": noHeader,
	}
	paths := make(map[string]string)
	for name, data := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, data, 0o644))
		paths[name] = p
	}
	return dir, paths
}

func TestWalk(t *testing.T) {
	dir, paths := corpus(t)
	got, err := Walk(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		paths["good.bin"],
		paths["DEL/nested.bin"],
		paths["short.bin"],
		paths["noheader.bin"],
		paths["gamma.bin"],
		paths["garbage.txt"],
	}, got)

	_, err = Walk(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir, paths := corpus(t)
	files, err := Walk(dir)
	require.NoError(t, err)

	s := Run(context.Background(), files, 3, edid.Options{})
	assert.Equal(t, 3, s.Passed)
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, 1, s.Unreadable)
	assert.Zero(t, s.Panicked)
	assert.Zero(t, s.Skipped)
	assert.Equal(t, len(files), s.Total())
	assert.Equal(t, map[edid.ErrorKind]int{
		edid.KindTooShort: 1,
		edid.KindNoHeader: 1,
	}, s.ByKind)

	failed := make(map[string]error)
	for _, f := range s.Failures {
		failed[f.Path] = f.Err
	}
	assert.Len(t, failed, 3)
	assert.ErrorIs(t, failed[paths["short.bin"]], edid.ErrTooShort)
	assert.ErrorIs(t, failed[paths["noheader.bin"]], edid.ErrNoHeader)
	assert.ErrorContains(t, failed[paths["garbage.txt"]], "parse hex")
}

func TestRunStrict(t *testing.T) {
	_, paths := corpus(t)
	s := Run(context.Background(), []string{paths["good.bin"], paths["gamma.bin"]}, 2,
		edid.Options{Strict: true})
	require.Len(t, s.Failures, 1)
	assert.Equal(t, paths["gamma.bin"], s.Failures[0].Path)
	assert.ErrorIs(t, s.Failures[0].Err, edid.ErrStrictViolation)
	assert.Equal(t, 1, s.ByKind[edid.KindStrictViolation])
}

func TestRunCancelled(t *testing.T) {
	_, paths := corpus(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := Run(ctx, []string{paths["good.bin"], paths["short.bin"]}, 0, edid.Options{})
	assert.Equal(t, 2, s.Skipped)
	assert.Zero(t, s.Passed+s.Failed)
	assert.Empty(t, s.Failures)
}

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSysfs(t *testing.T) {
	root := t.TempDir()
	drm := filepath.Join(root, "class", "drm")
	writeFile(t, drm, "card0-DP-1/edid", block())
	writeFile(t, drm, "card0-HDMI-A-1/edid", nil)
	writeFile(t, drm, "card0-eDP-1/edid", []byte{1, 2, 3})
	writeFile(t, drm, "renderD128/edid", block())
	require.NoError(t, os.MkdirAll(filepath.Join(drm, "card0"), 0o755))

	conns, err := Sysfs(root)
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, "card0-DP-1", conns[0].Name)
	assert.Equal(t, block(), conns[0].EDID)
}

func TestSysfsMissingRoot(t *testing.T) {
	_, err := Sysfs(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "list drm nodes")
}

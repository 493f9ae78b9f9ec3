package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	edid "github.com/thyge/edidparse"
)

// Connector is one DRM connector with a readable EDID.
type Connector struct {
	// Name is the sysfs node, e.g. "card0-HDMI-A-1".
	Name string
	EDID []byte
}

// Sysfs lists the connectors under <root>/class/drm that expose an EDID.
// root is normally "/sys". Disconnected connectors, which expose an empty
// file, and files without the EDID header are skipped.
func Sysfs(root string) ([]Connector, error) {
	dir := filepath.Join(root, "class", "drm")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list drm nodes: %w", err)
	}
	var conns []Connector
	for _, ent := range entries {
		if !strings.HasPrefix(ent.Name(), "card") {
			continue
		}
		buf, err := os.ReadFile(filepath.Join(dir, ent.Name(), "edid"))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s edid: %w", ent.Name(), err)
		}
		if len(buf) == 0 || !edid.HasHeader(buf) {
			continue
		}
		conns = append(conns, Connector{Name: ent.Name(), EDID: buf})
	}
	return conns, nil
}

package edid

import "fmt"

// Latest EDID structure version and revision this package decodes.
const (
	LatestSupportedVersion  = 1
	LatestSupportedRevision = 4
)

type Version struct {
	Version  uint8
	Revision uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Version, v.Revision)
}

// AtLeast reports whether v is version.revision or newer.
func (v Version) AtLeast(version, revision uint8) bool {
	if v.Version != version {
		return v.Version > version
	}
	return v.Revision >= revision
}

func (d *decoder) version() Version {
	v := Version{Version: d.b[0x12], Revision: d.b[0x13]}
	if v.AtLeast(LatestSupportedVersion, LatestSupportedRevision+1) {
		d.warnf(CodeVersionUnsupported, 0x12,
			"EDID %s is newer than %d.%d, decoding as %d.%d",
			v, LatestSupportedVersion, LatestSupportedRevision, LatestSupportedVersion, LatestSupportedRevision)
	}
	return v
}

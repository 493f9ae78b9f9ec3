package edid

import "fmt"

// ExtensionType is the tag byte that starts every 128-byte extension block.
type ExtensionType byte

const (
	TimingExtension                          ExtensionType = 0x00
	EDIDExtension                            ExtensionType = 0x01
	CEAExtension                             ExtensionType = 0x02
	VideoTimingBlockExtension                ExtensionType = 0x10
	EDID2_0Extension                         ExtensionType = 0x20
	DisplayInformationExtension              ExtensionType = 0x40
	LocalizedStringExtension                 ExtensionType = 0x50
	MicrodisplayInterfaceExtension           ExtensionType = 0x60
	DisplayIDExtension                       ExtensionType = 0x70
	DisplayTransferCharacteristicsDataBlock1 ExtensionType = 0xA7
	DisplayTransferCharacteristicsDataBlock2 ExtensionType = 0xAF
	DisplayTransferCharacteristicsDataBlock3 ExtensionType = 0xBF
	BlockMap                                 ExtensionType = 0xF0
	DisplayDeviceDataBlock                   ExtensionType = 0xFF
)

var extensionLookup = map[ExtensionType]string{
	TimingExtension:                          "Timing Extension",
	EDIDExtension:                            "Extended Display Identification Data",
	CEAExtension:                             "Additional Timing Data Block (CEA EDID Timing Extension)",
	VideoTimingBlockExtension:                "Video Timing Block Extension (VTB-EXT)",
	EDID2_0Extension:                         "EDID 2.0 Extension",
	DisplayInformationExtension:              "Display Information Extension (DI-EXT)",
	LocalizedStringExtension:                 "Localized String Extension (LS-EXT)",
	MicrodisplayInterfaceExtension:           "Microdisplay Interface Extension (MI-EXT)",
	DisplayIDExtension:                       "Display ID Extension",
	DisplayTransferCharacteristicsDataBlock1: "Display Transfer Characteristics Data Block (DTCDB)",
	DisplayTransferCharacteristicsDataBlock2: "Display Transfer Characteristics Data Block (DTCDB)",
	DisplayTransferCharacteristicsDataBlock3: "Display Transfer Characteristics Data Block (DTCDB)",
	BlockMap:                                 "Block Map",
	DisplayDeviceDataBlock:                   "Display Device Data Block (DDDB)",
}

func (et ExtensionType) String() string {
	if s, ok := extensionLookup[et]; ok {
		return s
	}
	return fmt.Sprintf("Unknown extension (0x%02X)", byte(et))
}

func (et ExtensionType) MarshalText() ([]byte, error) {
	return []byte(et.String()), nil
}

// ExtensionTags returns the tag of every complete extension block that
// follows the base block in b. Block contents are not decoded.
func ExtensionTags(b []byte) []ExtensionType {
	var tags []ExtensionType
	for i := BlockLength; i+BlockLength <= len(b); i += BlockLength {
		tags = append(tags, ExtensionType(b[i]))
	}
	return tags
}

package edid

import "bytes"

// BlockLength is the size of the EDID base block and of every extension block.
const BlockLength = 128

var fixedHeader = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

func checkLength(b []byte) error {
	if len(b) < BlockLength {
		return &Error{Kind: KindTooShort, Offset: -1, Got: len(b), Expected: BlockLength}
	}
	return nil
}

func checkHeader(b []byte) error {
	if len(b) < len(fixedHeader) {
		return &Error{Kind: KindHeaderTooShort, Offset: -1, Got: len(b), Expected: len(fixedHeader)}
	}
	if !bytes.Equal(b[:len(fixedHeader)], fixedHeader) {
		return &Error{Kind: KindNoHeader, Offset: 0}
	}
	return nil
}

// HasHeader reports whether b starts with the fixed EDID header.
func HasHeader(b []byte) bool {
	return checkHeader(b) == nil
}

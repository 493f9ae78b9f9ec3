package edid

// WhitePoint is one additional white point. An Index of 0 marks the entry
// as unused.
type WhitePoint struct {
	Index uint8
	Point Chromaticity
	// Gamma is nil when the value is in an extension.
	Gamma *float64 `json:",omitempty" yaml:",omitempty"`
}

type ColorPointDescriptor struct {
	White1 WhitePoint
	White2 WhitePoint
}

func (*ColorPointDescriptor) Tag() DescriptorTag { return TagColorPoint }

func newColorPointDescriptor(d *decoder, w []byte, off int) (DisplayDescriptor, error) {
	if w[5] == 0x00 {
		d.warnf(CodeWhitePointIndex, off+5, "first white point uses reserved index 0")
	}
	return &ColorPointDescriptor{
		White1: whitePoint(w[5:10]),
		White2: whitePoint(w[10:15]),
	}, nil
}

// whitePoint decodes index, shared low bits, x, y and gamma.
func whitePoint(b []byte) WhitePoint {
	wp := WhitePoint{
		Index: b[0],
		Point: newChromaticity(
			makeU10(bitSet(b[1], 3), bitSet(b[1], 2), b[2]),
			makeU10(bitSet(b[1], 1), bitSet(b[1], 0), b[3]),
		),
	}
	if b[4] != 0xFF {
		g := float64(uint16(b[4])+100) / 100
		wp.Gamma = &g
	}
	return wp
}

package edid

// Chromaticity is a CIE 1931 xy coordinate. RawX and RawY are the 10-bit
// values as stored; X and Y are RawX/1024 and RawY/1024.
type Chromaticity struct {
	X    float64
	Y    float64
	RawX uint16
	RawY uint16
}

func newChromaticity(rawX, rawY uint16) Chromaticity {
	return Chromaticity{X: intoFraction(rawX), Y: intoFraction(rawY), RawX: rawX, RawY: rawY}
}

type ColorCharacteristics struct {
	Red   Chromaticity
	Green Chromaticity
	Blue  Chromaticity
	White Chromaticity
}

// color decodes bytes 0x19-0x22. Byte 0x19 holds the low bits of red and
// green, byte 0x1A those of blue and white, two bits per coordinate.
func (d *decoder) color() ColorCharacteristics {
	rg, bw := d.b[0x19], d.b[0x1A]
	coord := func(shared byte, hi uint, upper byte) uint16 {
		return makeU10(bitSet(shared, hi), bitSet(shared, hi-1), upper)
	}
	return ColorCharacteristics{
		Red:   newChromaticity(coord(rg, 7, d.b[0x1B]), coord(rg, 5, d.b[0x1C])),
		Green: newChromaticity(coord(rg, 3, d.b[0x1D]), coord(rg, 1, d.b[0x1E])),
		Blue:  newChromaticity(coord(bw, 7, d.b[0x1F]), coord(bw, 5, d.b[0x20])),
		White: newChromaticity(coord(bw, 3, d.b[0x21]), coord(bw, 1, d.b[0x22])),
	}
}

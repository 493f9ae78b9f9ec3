package edid

import "encoding/binary"

// Bit numbering follows the VESA tables: bit 7 is the most significant bit
// of a byte and bit 0 the least significant. Every decoder in this package
// goes through these helpers instead of shifting by hand.

// bitsOf returns bits hi..lo (inclusive) of b, shifted down to bit 0.
func bitsOf(b byte, hi, lo uint) byte {
	return (b >> lo) & byte(1<<(hi-lo+1)-1)
}

// bitSet reports whether bit n of b is 1.
func bitSet(b byte, n uint) bool {
	return b>>n&1 == 1
}

// makeU10 builds a 10-bit chromaticity value. The dedicated byte carries
// bits 9..2 and the two flags are bits 1 and 0 taken from a shared byte.
func makeU10(bit1, bit0 bool, upper byte) uint16 {
	v := uint16(upper) << 2
	if bit1 {
		v |= 0x2
	}
	if bit0 {
		v |= 0x1
	}
	return v
}

// joinNibble builds a 12-bit value from a dedicated low byte and the low
// nibble of high.
func joinNibble(high, low byte) uint16 {
	return uint16(high&0x0F)<<8 | uint16(low)
}

// joinPair builds a value from a dedicated low byte and a 2-bit slice
// placed above it, shifted by width bits.
func joinPair(pair byte, low byte, width uint) uint16 {
	return uint16(pair&0x3)<<width | uint16(low)
}

func le16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func le32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// intoFraction converts a 10-bit binary fraction to a float in [0, 1023/1024].
func intoFraction(raw uint16) float64 {
	return float64(raw&0x3FF) / 1024
}

// fromBCD decodes a packed binary-coded decimal byte (two decimal digits).
func fromBCD(b byte) (uint16, error) {
	hi, lo := b>>4, b&0x0F
	if hi > 9 || lo > 9 {
		return 0, &Error{Kind: KindBcdError, Value: b, Offset: -1}
	}
	return uint16(hi)*10 + uint16(lo), nil
}

func gcd(a, b uint16) uint16 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

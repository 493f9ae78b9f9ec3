package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsOf(t *testing.T) {
	assert.Equal(t, byte(0b101), bitsOf(0b1010_0000, 7, 5))
	assert.Equal(t, byte(0xFF), bitsOf(0xFF, 7, 0))
	assert.Equal(t, byte(1), bitsOf(0b0000_0001, 0, 0))
	assert.Equal(t, byte(0b11), bitsOf(0b0000_1100, 3, 2))
	assert.True(t, bitSet(0x80, 7))
	assert.False(t, bitSet(0x7F, 7))
}

func TestMakeU10(t *testing.T) {
	assert.Equal(t, uint16(0b11_1111_1111), makeU10(true, true, 0xFF))
	assert.Equal(t, uint16(0b10_0000_0010), makeU10(true, false, 0x80))
	assert.Equal(t, uint16(1), makeU10(false, true, 0))

	// every raw value maps into [0, 1023/1024] and order is kept
	prev := -1.0
	for raw := 0; raw < 1024; raw++ {
		v := makeU10(raw&2 != 0, raw&1 != 0, byte(raw>>2))
		require.Equal(t, uint16(raw), v)
		f := intoFraction(v)
		require.Greater(t, f, prev)
		require.GreaterOrEqual(t, f, 0.0)
		require.LessOrEqual(t, f, 1023.0/1024)
		prev = f
	}
}

func TestIntoFraction(t *testing.T) {
	assert.Equal(t, 0.0, intoFraction(0))
	assert.Equal(t, 31.0/1024, intoFraction(0b00_0001_1111))
	assert.InDelta(t, 0.6103516, intoFraction(0b10_0111_0001), 1e-7)
	assert.InDelta(t, 0.3066406, intoFraction(0b01_0011_1010), 1e-7)
	assert.InDelta(t, 0.1503906, intoFraction(0b00_1001_1010), 1e-7)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, uint16(0b1111_0000_0001), joinNibble(0b1111_0000>>4, 0b0000_0001))
	assert.Equal(t, uint16(0b0001_1111_0000), joinNibble(0b1100_0001, 0b1111_0000))
	assert.Equal(t, uint16(0x3FF), joinPair(0b11, 0xFF, 8))
	assert.Equal(t, uint16(0b10_1111), joinPair(0b10, 0b1111, 4))
	assert.Equal(t, uint16(1), le16([]byte{0x01, 0x00}))
	assert.Equal(t, uint16(0xFFFE), le16([]byte{0xFE, 0xFF}))
}

func TestFromBCD(t *testing.T) {
	for _, tc := range []struct {
		in   byte
		want uint16
	}{
		{0x00, 0},
		{0x09, 9},
		{0x10, 10},
		{0x56, 56},
		{0x99, 99},
	} {
		got, err := fromBCD(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
	for _, in := range []byte{0x0A, 0xA0, 0x1E, 0xFF} {
		_, err := fromBCD(in)
		assert.ErrorIs(t, err, ErrBcdError, "0x%02X", in)
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, Ratio{16, 9}, newRatio(32, 18))
	assert.Equal(t, "71:20", newRatio(355, 100).String())
	assert.InDelta(t, 1.7777, Ratio{16, 9}.Float(), 1e-4)
	assert.Panics(t, func() { newRatio(1, 0) })
}

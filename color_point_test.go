package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorPointDescriptor(t *testing.T) {
	d, c := testDecoder()
	w := descriptorBlock(0xFB,
		1, 0b0000_1100, 0b0000_1111, 0b1000_0000, 254,
		2, 0b0000_0001, 0b0100_0000, 0b1111_0001, 23,
		0xFF, 0x0A, 0x0A,
	)
	got, err := d.displayDescriptor(w, 0x5A)
	require.NoError(t, err)
	cp := got.(*ColorPointDescriptor)

	assert.Equal(t, uint8(1), cp.White1.Index)
	assert.Equal(t, 63.0/1024, cp.White1.Point.X)
	assert.Equal(t, 0.5, cp.White1.Point.Y)
	require.NotNil(t, cp.White1.Gamma)
	assert.InDelta(t, 3.54, *cp.White1.Gamma, 1e-9)

	assert.Equal(t, uint8(2), cp.White2.Index)
	assert.Equal(t, 0.25, cp.White2.Point.X)
	assert.Equal(t, 965.0/1024, cp.White2.Point.Y)
	require.NotNil(t, cp.White2.Gamma)
	assert.InDelta(t, 1.23, *cp.White2.Gamma, 1e-9)
	assert.False(t, c.Has(CodeWhitePointIndex))

	w[5] = 0
	w[9] = 0xFF
	got, err = d.displayDescriptor(w, 0x5A)
	require.NoError(t, err)
	assert.Nil(t, got.(*ColorPointDescriptor).White1.Gamma)
	assert.True(t, c.Has(CodeWhitePointIndex))
}

func TestColorPointBitOrder(t *testing.T) {
	// bit 3 of the shared byte is bit 1 of x, bit 2 is bit 0
	wp := whitePoint([]byte{1, 0b0000_1000, 0x00, 0x00, 0xFF})
	assert.Equal(t, uint16(2), wp.Point.RawX)
	wp = whitePoint([]byte{1, 0b0000_0100, 0x00, 0x00, 0xFF})
	assert.Equal(t, uint16(1), wp.Point.RawX)
	wp = whitePoint([]byte{1, 0b0000_0010, 0x00, 0x00, 0xFF})
	assert.Equal(t, uint16(2), wp.Point.RawY)
}

func TestColorCharacteristics(t *testing.T) {
	d, _ := testDecoder()
	copy(d.b[0x19:], []byte{0b1100_0000, 0b0000_0001, 0xFF, 0, 0, 0, 0, 0, 0, 0x80})
	got := d.color()
	assert.Equal(t, uint16(0x3FF), got.Red.RawX)
	assert.Equal(t, uint16(0), got.Red.RawY)
	assert.Equal(t, uint16(0x201), got.White.RawY)
	assert.Equal(t, 1023.0/1024, got.Red.X)
}

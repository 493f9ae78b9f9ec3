package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVTTimingCode(t *testing.T) {
	d, c := testDecoder()
	assert.Nil(t, d.cvtTimingCode([]byte{0, 0, 0}, 0x60))

	// 1080 lines: (1080/2)-1 = 539 = 0x21B, 16:9, 60 Hz preferred,
	// 60 Hz and 60 Hz reduced supported
	got := d.cvtTimingCode([]byte{0x1B, 0x24, 0b0010_1001}, 0x60)
	require.NotNil(t, got)
	assert.Equal(t, &CVTTimingCode{
		Lines:          0x21B,
		AspectRatio:    CVT_16_9,
		PreferredRate:  CVTRate60,
		SupportedRates: CVTSupportedRates{Hz60: true, Hz60Reduced: true},
	}, got)
	assert.Equal(t, uint32(1080), got.AddressableLines())
	assert.Empty(t, c.Diagnostics)

	_ = d.cvtTimingCode([]byte{0x1B, 0x25, 0x00}, 0x60)
	assert.True(t, c.Has(CodeReservedBits))
	c.Diagnostics = nil
	_ = d.cvtTimingCode([]byte{0x1B, 0x24, 0x80}, 0x60)
	assert.True(t, c.Has(CodeReservedBits))
}

func TestCVTPreferredRate(t *testing.T) {
	d, _ := testDecoder()
	for bits, want := range []CVTRate{CVTRate50, CVTRate60, CVTRate75, CVTRate85} {
		got := d.cvtTimingCode([]byte{0x01, 0x00, byte(bits) << 5}, 0x60)
		require.NotNil(t, got)
		assert.Equal(t, want, got.PreferredRate)
	}
}

func TestCVTAspectRatio(t *testing.T) {
	d, _ := testDecoder()
	for bits, want := range []Ratio{{4, 3}, {16, 9}, {16, 10}, {15, 9}} {
		got := d.cvtTimingCode([]byte{0x01, byte(bits) << 2, 0x00}, 0x60)
		require.NotNil(t, got)
		assert.Equal(t, want, got.AspectRatio.Ratio())
	}
}

func TestCVTDescriptor(t *testing.T) {
	d, c := testDecoder()
	w := descriptorBlock(0xF8, 0x01, 0x1B, 0x24, 0x08, 0, 0, 0, 0x57, 0x28, 0x10)
	got, err := d.displayDescriptor(w, 0x6C)
	require.NoError(t, err)
	cvt := got.(*CVTDescriptor)
	assert.Equal(t, uint8(1), cvt.Version)
	require.NotNil(t, cvt.Codes[0])
	assert.Nil(t, cvt.Codes[1])
	require.NotNil(t, cvt.Codes[2])
	assert.Equal(t, CVT_16_10, cvt.Codes[2].AspectRatio)
	assert.Nil(t, cvt.Codes[3])
	assert.False(t, c.Has(CodeCVTVersion))

	w[5] = 0x02
	_, err = d.displayDescriptor(w, 0x6C)
	require.NoError(t, err)
	assert.True(t, c.Has(CodeCVTVersion))

	w = descriptorBlock(0xF8, 0x01, 0, 0, 0, 0x1B, 0x24, 0x08)
	_, err = d.displayDescriptor(w, 0x6C)
	assert.ErrorIs(t, err, ErrDescriptorNoFirstCVT)
}

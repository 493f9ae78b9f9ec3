package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextDescriptor(t *testing.T) {
	d, _ := testDecoder()
	w := append([]byte{0x00, 0x00, 0x00, 0xFF, 0x00}, []byte("A0123456789\n ")...)
	got, err := d.displayDescriptor(w, 0x48)
	require.NoError(t, err)
	assert.Equal(t, &TextDescriptor{Kind: TagProductSerial, Text: "A0123456789", Raw: "A0123456789\n "}, got)
	assert.Equal(t, TagProductSerial, got.Tag())

	w = descriptorBlock(0xFC, 'M', 'O', 'N', 0xE9, 0x0A, ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ')
	got, err = d.displayDescriptor(w, 0x48)
	require.NoError(t, err)
	assert.Equal(t, "MON?", got.(*TextDescriptor).Text)

	// no terminator, all 13 bytes used
	w = append([]byte{0x00, 0x00, 0x00, 0xFE, 0x00}, []byte("ABCDEFGHIJKLM")...)
	got, err = d.displayDescriptor(w, 0x48)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKLM", got.(*TextDescriptor).Text)
	assert.Equal(t, TagDataString, got.Tag())
}

func TestDescriptorDispatchErrors(t *testing.T) {
	d, _ := testDecoder()

	for tag := 0x11; tag <= 0xF6; tag++ {
		_, err := d.displayDescriptor(descriptorBlock(byte(tag)), 0x48)
		var e *Error
		require.ErrorAs(t, err, &e, "tag 0x%02X", tag)
		assert.Equal(t, KindDescriptorUsedReservedKind, e.Kind)
		assert.Equal(t, byte(tag), e.Value)
	}

	w := descriptorBlock(0xFC)
	w[2] = 0x01
	_, err := d.displayDescriptor(w, 0x48)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindDescriptorUnexpectedHeader, e.Kind)
	assert.Equal(t, [5]byte{0x00, 0x00, 0x01, 0xFC, 0x00}, e.Header)

	w = descriptorBlock(0xFC)
	w[4] = 0x02
	_, err = d.displayDescriptor(w, 0x48)
	assert.ErrorIs(t, err, ErrDescriptorUnexpectedHeader)
}

func TestDescriptorTagString(t *testing.T) {
	assert.Equal(t, "Display Product Name", TagProductName.String())
	assert.Equal(t, "Manufacturer Specified (0x0A)", DescriptorTag(0x0A).String())
	assert.Equal(t, "Reserved (0x20)", DescriptorTag(0x20).String())
	assert.True(t, DescriptorTag(0x0F).IsManufacturer())
	assert.False(t, TagDummy.IsManufacturer())
}

func TestManufacturerDescriptor(t *testing.T) {
	d, _ := testDecoder()
	w := descriptorBlock(0x03, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)
	got, err := d.displayDescriptor(w, 0x6C)
	require.NoError(t, err)
	assert.Equal(t, &ManufacturerDescriptor{Kind: 0x03, Data: [13]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}}, got)
	assert.Equal(t, DescriptorTag(0x03), got.Tag())
}

func TestDummyDescriptor(t *testing.T) {
	d, c := testDecoder()
	got, err := d.displayDescriptor(descriptorBlock(0x10), 0x6C)
	require.NoError(t, err)
	assert.IsType(t, &DummyDescriptor{}, got)
	assert.False(t, c.Has(CodeDummyNotEmpty))

	_, err = d.displayDescriptor(descriptorBlock(0x10, 0, 0, 0x20), 0x6C)
	require.NoError(t, err)
	require.True(t, c.Has(CodeDummyNotEmpty))
	assert.Equal(t, 0x6C+7, c.Diagnostics[len(c.Diagnostics)-2].Offset)
}

func TestStandardTimingsDescriptor(t *testing.T) {
	d, c := testDecoder()
	w := descriptorBlock(0xFA, 0xD1, 0xC0, 0x81, 0x8F, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x0A)
	got, err := d.displayDescriptor(w, 0x5A)
	require.NoError(t, err)
	s := got.(*StandardTimingsDescriptor)
	assert.Equal(t, &StandardTiming{1920, AR_16_9, 60}, s.Timings[0])
	assert.Equal(t, &StandardTiming{1280, AR_5_4, 75}, s.Timings[1])
	assert.Nil(t, s.Timings[5])
	assert.False(t, c.Has(CodeStdTimingPadding))

	w[17] = 0x00
	w[7], w[8] = 0x01, 0x00
	_, err = d.displayDescriptor(w, 0x5A)
	require.NoError(t, err)
	assert.True(t, c.Has(CodeStdTimingPadding))
	require.True(t, c.Has(CodeStdTimingNonConformantUnused))
	for _, diag := range c.Diagnostics {
		if diag.Code == CodeStdTimingNonConformantUnused {
			assert.Equal(t, 0x5A+7, diag.Offset)
		}
	}
}

func TestDCMDescriptor(t *testing.T) {
	d, c := testDecoder()
	w := descriptorBlock(0xF9, 0x03, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04, 0x00, 0x05, 0x00, 0xFF, 0xFF)
	got, err := d.displayDescriptor(w, 0x5A)
	require.NoError(t, err)
	assert.Equal(t, &DCMDescriptor{Version: 3, RedA3: 1, RedA2: 2, GreenA3: 3, GreenA2: 4, BlueA3: 5, BlueA2: 0xFFFF}, got)
	assert.False(t, c.Has(CodeDCMVersion))

	w[5] = 0x02
	_, err = d.displayDescriptor(w, 0x5A)
	require.NoError(t, err)
	assert.True(t, c.Has(CodeDCMVersion))
}

func TestEstablishedTimingsIII(t *testing.T) {
	d, c := testDecoder()
	w := descriptorBlock(0xF7, 0x0A, 0x80, 0x00, 0x00, 0x00, 0x01, 0x10)
	got, err := d.displayDescriptor(w, 0x6C)
	require.NoError(t, err)
	et := got.(*EstablishedTimingsIII)
	assert.Equal(t, []EstablishedTiming{ET_640_350_85, ET_1920_1200_60, ET_1920_1440_75}, et.Supported)
	assert.True(t, et.Has(ET_1920_1440_75))
	assert.False(t, et.Has(ET_640_480_85))
	assert.Equal(t, "1920×1440 @ 75 Hz", ET_1920_1440_75.String())
	assert.Equal(t, "1920×1200 @ 60 Hz (reduced blanking)", ET_1920_1200_60R.String())
	assert.False(t, c.Has(CodeReservedBits))

	w[11] = 0x01
	_, err = d.displayDescriptor(w, 0x6C)
	require.NoError(t, err)
	assert.True(t, c.Has(CodeReservedBits))

	c.Diagnostics = nil
	w[11] = 0x00
	w[15] = 0x01
	_, err = d.displayDescriptor(w, 0x6C)
	require.NoError(t, err)
	assert.True(t, c.Has(CodeReservedBits))
}

func TestEstablishedTimingsI(t *testing.T) {
	d, _ := testDecoder()
	d.b[0x23], d.b[0x24], d.b[0x25] = 0x80, 0x11, 0xFF
	et := d.establishedTimings()
	assert.Equal(t, []EstablishedTiming{ET_720_400_70, ET_1024_768_87i, ET_1280_1024_75, ET_1152_870_75}, et.Supported)
	assert.Equal(t, uint8(0x7F), et.ManufacturerReserved)
	assert.True(t, et.Has(ET_1152_870_75))
	assert.True(t, ET_1024_768_87i.Mode().Interlaced)
}

func TestDescriptorsWalk(t *testing.T) {
	d := newDecoder(dellS2417DG(), Options{Sink: Discard})
	got, err := d.descriptors(Version{1, 4})
	require.NoError(t, err)
	assert.Equal(t, BlockTiming, got.Preferred.Kind)
	require.NotNil(t, got.Preferred.Timing)
	assert.Len(t, got.Timings(), 1)
	kinds := []DescriptorTag{}
	for _, blk := range got.Blocks {
		require.Equal(t, BlockDescriptor, blk.Kind)
		kinds = append(kinds, blk.Descriptor.Tag())
	}
	assert.Equal(t, []DescriptorTag{TagProductSerial, TagRangeLimits, TagProductName}, kinds)
}

package edid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDell(t *testing.T) {
	raw := dellS2417DG()
	c := &Collector{}
	e, err := DecodeWithOptions(raw, Options{Sink: c})
	require.NoError(t, err)
	require.NotNil(t, e)

	vp := e.VendorProduct
	assert.Equal(t, ManufacturerID("DEL"), vp.Manufacturer.ID)
	assert.Equal(t, "Dell Inc.", vp.Manufacturer.Name)
	assert.Equal(t, uint16(41191), vp.ProductCode)
	require.NotNil(t, vp.SerialNumber)
	assert.Equal(t, uint32(1), *vp.SerialNumber)
	assert.Equal(t, Date{Kind: DateManufactured, Week: 28, Year: 2018}, vp.Date)

	assert.Equal(t, Version{1, 4}, e.Version)

	require.True(t, e.BasicDisplay.Input.IsDigital())
	assert.Equal(t, BitDepth8, e.BasicDisplay.Input.Digital.BitDepth)
	assert.Equal(t, InterfaceDisplayPort, e.BasicDisplay.Input.Digital.Interface)
	assert.Equal(t, &ScreenSize{WidthCM: 53, HeightCM: 30}, e.BasicDisplay.ScreenSize)
	assert.Nil(t, e.BasicDisplay.AspectRatio)
	require.NotNil(t, e.BasicDisplay.Gamma)
	assert.InDelta(t, 2.2, *e.BasicDisplay.Gamma, 1e-9)
	f := e.BasicDisplay.Features
	assert.True(t, f.ActiveOff)
	assert.True(t, f.PreferredTimingIsNative)
	assert.False(t, f.ContinuousFrequency)
	require.NotNil(t, f.ColorEncoding)
	assert.Equal(t, EncodingRGB444_YCrCb444_422, *f.ColorEncoding)
	assert.Nil(t, f.ColorType)

	const tol = 0.0005
	assert.InDelta(t, 0.6396, e.Color.Red.X, tol)
	assert.InDelta(t, 0.3300, e.Color.Red.Y, tol)
	assert.InDelta(t, 0.2998, e.Color.Green.X, tol)
	assert.InDelta(t, 0.5996, e.Color.Green.Y, tol)
	assert.InDelta(t, 0.1503, e.Color.Blue.X, tol)
	assert.InDelta(t, 0.0595, e.Color.Blue.Y, tol)
	assert.InDelta(t, 0.3125, e.Color.White.X, tol)
	assert.InDelta(t, 0.3291, e.Color.White.Y, tol)

	assert.Equal(t, []EstablishedTiming{ET_640_480_60, ET_800_600_60, ET_1024_768_60}, e.EstablishedTimings.Supported)

	used := e.StandardTimings.Used()
	require.Len(t, used, 2)
	assert.Equal(t, StandardTiming{HorizontalActive: 1920, AspectRatio: AR_16_9, RefreshRate: 60}, used[0])
	assert.Equal(t, uint16(1080), used[0].VerticalActive())
	assert.Equal(t, uint16(720), used[1].VerticalActive())

	pt := e.PreferredTiming()
	require.NotNil(t, pt)
	assert.Equal(t, uint16(2560), pt.HorizontalActive)
	assert.Equal(t, uint16(1440), pt.VerticalActive)
	assert.InDelta(t, 59.95, pt.RefreshRateHz(), 0.01)

	serial, ok := e.SerialString()
	assert.True(t, ok)
	assert.Equal(t, "A0123456789", serial)
	name, ok := e.ProductName()
	assert.True(t, ok)
	assert.Equal(t, "DELL S2417DG", name)

	rl := e.RangeLimits()
	require.NotNil(t, rl)
	assert.Equal(t, RangeLimitsOnly, rl.Kind)
	assert.Equal(t, uint16(250), rl.Limits.MaxPixelClockMHz)

	assert.Equal(t, uint8(1), e.ExtensionCount)
	assert.Equal(t, raw[0x7F], e.Checksum)
	assert.True(t, e.ChecksumValid())
	assert.Zero(t, c.Count(SeverityWarning))
}

func TestDecodeLength(t *testing.T) {
	_, err := Decode(dellS2417DG()[:127])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooShort))
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 127, e.Got)
	assert.Equal(t, 128, e.Expected)

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestDecodeNoHeader(t *testing.T) {
	raw := dellS2417DG()
	raw[1] = 0x00
	_, err := Decode(raw)
	assert.ErrorIs(t, err, ErrNoHeader)
	assert.False(t, HasHeader(raw))
	assert.True(t, HasHeader(dellS2417DG()))

	var e *Error
	require.ErrorAs(t, checkHeader([]byte{0x00, 0xFF}), &e)
	assert.Equal(t, KindHeaderTooShort, e.Kind)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	raw := dellS2417DG()
	raw[0x7F]++
	c := &Collector{}
	e, err := DecodeWithOptions(raw, Options{Sink: c})
	require.NoError(t, err)
	assert.False(t, e.ChecksumValid())
	assert.Equal(t, raw[0x7F], e.Checksum)
	assert.True(t, c.Has(CodeChecksumMismatch))

	_, err = DecodeWithOptions(raw, Options{Sink: Discard, Strict: true})
	require.ErrorIs(t, err, ErrStrictViolation)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, CodeChecksumMismatch, se.Code)
	assert.Equal(t, 0x7F, se.Offset)
}

func TestDecodeStrictViolationStopsEarly(t *testing.T) {
	raw := dellS2417DG()
	// unused standard timing written as 01 00
	raw[0x2B] = 0x00
	withChecksum(raw)

	e, err := DecodeWithOptions(raw, Options{Sink: Discard})
	require.NoError(t, err)
	assert.Nil(t, e.StandardTimings[2])
	assert.NotNil(t, e.StandardTimings[1])

	e, err = DecodeWithOptions(raw, Options{Sink: Discard, Strict: true})
	assert.Nil(t, e)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, CodeStdTimingNonConformantUnused, se.Code)
}

func TestDecodeReservedDescriptorTag(t *testing.T) {
	raw := setBlock(dellS2417DG(), 2, descriptorBlock(0x20))
	e, err := DecodeWithOptions(raw, Options{Sink: Discard})
	assert.Nil(t, e)
	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindDescriptorUsedReservedKind, de.Kind)
	assert.Equal(t, byte(0x20), de.Value)
	assert.Equal(t, 0x5A+3, de.Offset)
}

func TestDecodePreferredNotTiming(t *testing.T) {
	raw := setBlock(dellS2417DG(), 0, descriptorBlock(0x10))
	c := &Collector{}
	e, err := DecodeWithOptions(raw, Options{Sink: c})
	require.NoError(t, err)
	assert.Nil(t, e.PreferredTiming())
	assert.Equal(t, BlockDescriptor, e.Descriptors.Preferred.Kind)
	require.True(t, c.Has(CodePreferredNotTiming))
	for _, d := range c.Diagnostics {
		if d.Code == CodePreferredNotTiming {
			assert.Equal(t, SeverityViolation, d.Severity)
		}
	}

	// EDID 1.2 only gets a warning
	raw[0x13] = 0x02
	withChecksum(raw)
	c = &Collector{}
	_, err = DecodeWithOptions(raw, Options{Sink: c, Strict: true})
	require.NoError(t, err)
	assert.True(t, c.Has(CodePreferredNotTiming))
}

func TestDecodeContinuousFrequency(t *testing.T) {
	raw := dellS2417DG()
	raw[0x18] |= 0x01
	// replace the range limits with a dummy
	setBlock(raw, 2, descriptorBlock(0x10))
	c := &Collector{}
	e, err := DecodeWithOptions(raw, Options{Sink: c})
	require.NoError(t, err)
	assert.Nil(t, e.RangeLimits())
	assert.True(t, c.Has(CodeMissingRangeLimits))

	raw = dellS2417DG()
	raw[0x18] |= 0x01
	withChecksum(raw)
	c = &Collector{}
	e, err = DecodeWithOptions(raw, Options{Sink: c})
	require.NoError(t, err)
	require.NotNil(t, e.RangeLimits())
	assert.True(t, e.RangeLimits().Flexible)
	assert.False(t, c.Has(CodeMissingRangeLimits))
}

func TestDecodeVersionWarning(t *testing.T) {
	raw := dellS2417DG()
	raw[0x13] = 0x05
	withChecksum(raw)
	c := &Collector{}
	e, err := DecodeWithOptions(raw, Options{Sink: c, Strict: true})
	require.NoError(t, err)
	assert.Equal(t, "1.5", e.Version.String())
	assert.True(t, c.Has(CodeVersionUnsupported))

	assert.True(t, Version{2, 0}.AtLeast(1, 5))
	assert.False(t, Version{1, 4}.AtLeast(1, 5))
	assert.True(t, Version{1, 3}.AtLeast(1, 3))
}

func TestChecksumHelpers(t *testing.T) {
	raw := dellS2417DG()
	assert.True(t, ChecksumValid(raw))
	want := raw[0x7F]
	raw[0x7F] = 0
	assert.Equal(t, want, ComputeChecksum(raw))
	assert.False(t, ChecksumValid(raw[:100]))
}

func TestExtensionTags(t *testing.T) {
	raw := append(dellS2417DG(), make([]byte, 2*BlockLength+10)...)
	raw[BlockLength] = byte(CEAExtension)
	raw[2*BlockLength] = byte(DisplayIDExtension)
	assert.Equal(t, []ExtensionType{CEAExtension, DisplayIDExtension}, ExtensionTags(raw))
	assert.Equal(t, "Display ID Extension", DisplayIDExtension.String())
	assert.Equal(t, "Unknown extension (0x33)", ExtensionType(0x33).String())
	assert.Empty(t, ExtensionTags(dellS2417DG()))

	// extension blocks do not affect the base block
	_, err := DecodeWithOptions(raw, Options{Sink: Discard})
	assert.NoError(t, err)
}

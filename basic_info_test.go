package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoInput(t *testing.T) {
	in, err := videoInput(0xA5)
	require.NoError(t, err)
	require.NotNil(t, in.Digital)
	assert.Nil(t, in.Analog)
	assert.Equal(t, BitDepth8, in.Digital.BitDepth)
	assert.Equal(t, 8, in.Digital.BitDepth.Bits())
	assert.Equal(t, InterfaceDisplayPort, in.Digital.Interface)

	in, err = videoInput(0xF0)
	require.NoError(t, err)
	assert.Equal(t, BitDepthReserved, in.Digital.BitDepth)
	assert.Equal(t, 0, in.Digital.BitDepth.Bits())
	assert.Equal(t, InterfaceNotReported, in.Digital.Interface)

	for code := byte(6); code <= 0x0F; code++ {
		_, err := videoInput(0x80 | code)
		assert.ErrorIs(t, err, ErrDigitalInterfaceReserved, "interface 0x%X", code)
	}

	in, err = videoInput(0b0011_1111)
	require.NoError(t, err)
	require.NotNil(t, in.Analog)
	assert.Equal(t, AnalogInput{
		SignalLevel:          SignalLevel0714_0286,
		BlankToBlackSetup:    true,
		SeparateSync:         true,
		CompositeSyncOnHSync: true,
		SyncOnGreen:          true,
		SerrationOnVSync:     true,
	}, *in.Analog)
}

func TestSizeOrRatio(t *testing.T) {
	tests := []struct {
		name  string
		h, v  byte
		size  *ScreenSize
		ratio *Ratio
	}{
		{"none", 0, 0, nil, nil},
		{"size", 53, 30, &ScreenSize{53, 30}, nil},
		{"16:9", 0x4F, 0, nil, &Ratio{16, 9}},
		{"16:10", 0x3D, 0, nil, &Ratio{16, 10}},
		{"4:3", 0x22, 0, nil, &Ratio{4, 3}},
		{"5:4", 0x1A, 0, nil, &Ratio{5, 4}},
		{"3:2", 0x05, 0, nil, &Ratio{3, 2}},
		{"21:9", 0x86, 0, nil, &Ratio{21, 9}},
		{"formula", 16, 0, nil, &Ratio{29, 25}},
		{"formula 45", 45, 0, nil, &Ratio{29, 20}},
		{"portrait", 0, 0x4F, nil, &Ratio{9, 16}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, c := testDecoder()
			size, ratio := d.sizeOrRatio(tc.h, tc.v)
			assert.Equal(t, tc.size, size)
			assert.Equal(t, tc.ratio, ratio)
			assert.Empty(t, c.Diagnostics)
		})
	}
}

func TestAspectRatioPrecisionWarning(t *testing.T) {
	d, c := testDecoder()
	_, ratio := d.sizeOrRatio(0xFF, 0)
	require.NotNil(t, ratio)
	assert.Equal(t, Ratio{71, 20}, *ratio)
	assert.True(t, c.Has(CodeAspectRatioPrecision))
}

func TestGamma(t *testing.T) {
	d, c := testDecoder()
	assert.Nil(t, d.gamma(0xFF, 0x17))

	g := d.gamma(120, 0x17)
	require.NotNil(t, g)
	assert.InDelta(t, 2.2, *g, 1e-9)

	g = d.gamma(254, 0x17)
	require.NotNil(t, g)
	assert.InDelta(t, 3.54, *g, 1e-9)
	assert.False(t, c.Has(CodeGammaZero))

	g = d.gamma(0, 0x17)
	require.NotNil(t, g)
	assert.InDelta(t, 1.0, *g, 1e-9)
	assert.True(t, c.Has(CodeGammaZero))
}

func TestFeatureSupport(t *testing.T) {
	f := featureSupport(0xFF, true)
	assert.True(t, f.Standby)
	assert.True(t, f.Suspend)
	assert.True(t, f.ActiveOff)
	assert.True(t, f.SRGBDefault)
	assert.True(t, f.PreferredTimingIsNative)
	assert.True(t, f.ContinuousFrequency)
	require.NotNil(t, f.ColorEncoding)
	assert.Equal(t, EncodingRGB444_YCrCb444_422, *f.ColorEncoding)
	assert.Nil(t, f.ColorType)

	f = featureSupport(0b0000_1000, false)
	assert.False(t, f.Standby)
	assert.Nil(t, f.ColorEncoding)
	require.NotNil(t, f.ColorType)
	assert.Equal(t, ColorRGB, *f.ColorType)
	assert.Equal(t, "RGB color", f.ColorType.String())
}

func TestBasicDisplayAnalog(t *testing.T) {
	d, _ := testDecoder()
	d.b[0x14] = 0x0E
	d.b[0x15], d.b[0x16] = 0x22, 0x00
	d.b[0x17] = 0xFF
	d.b[0x18] = 0b1110_1000
	info, err := d.basicDisplay()
	require.NoError(t, err)
	assert.False(t, info.Input.IsDigital())
	assert.Equal(t, &Ratio{4, 3}, info.AspectRatio)
	assert.Nil(t, info.Gamma)
	assert.Equal(t, ColorRGB, *info.Features.ColorType)
}

package cvtgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	edid "github.com/thyge/edidparse"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		mode                       Mode
		clock                      uint16
		hBlank, hFrontPorch, hSync uint16
		vBlank, vFrontPorch, vSync uint16
		sync                       edid.DigitalSyncKind
	}{
		{Mode{Width: 1920, Height: 1080, RefreshHz: 60, Type: CVT}, 17300, 656, 128, 200, 40, 3, 5, edid.SyncDigitalSeparatePosVNegH},
		{Mode{Width: 1024, Height: 768, RefreshHz: 60, Type: CVT}, 6350, 304, 48, 104, 30, 3, 4, edid.SyncDigitalSeparatePosVNegH},
		{Mode{Width: 1920, Height: 1080, RefreshHz: 60, Type: CVT_RB}, 13850, 160, 48, 32, 31, 3, 5, edid.SyncDigitalSeparateNegVPosH},
		{Mode{Width: 1920, Height: 1080, RefreshHz: 60, Type: CVT_RB2}, 13332, 80, 8, 32, 31, 1, 8, edid.SyncDigitalSeparateNegVPosH},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			dt, err := Generate(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.clock, dt.PixelClock)
			assert.Equal(t, uint16(tt.mode.Width), dt.HorizontalActive)
			assert.Equal(t, uint16(tt.mode.Height), dt.VerticalActive)
			assert.Equal(t, tt.hBlank, dt.HorizontalBlanking)
			assert.Equal(t, tt.hFrontPorch, dt.HorizontalFrontPorch)
			assert.Equal(t, tt.hSync, dt.HorizontalSyncPulseWidth)
			assert.Equal(t, tt.vBlank, dt.VerticalBlanking)
			assert.Equal(t, tt.vFrontPorch, dt.VerticalFrontPorch)
			assert.Equal(t, tt.vSync, dt.VerticalSyncPulseWidth)
			require.NotNil(t, dt.Sync.Digital)
			assert.Equal(t, tt.sync, dt.Sync.Digital.Kind)
			assert.InDelta(t, tt.mode.RefreshHz, dt.RefreshRateHz(), 0.1)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	for _, m := range []Mode{
		{Width: 0, Height: 1080, RefreshHz: 60},
		{Width: 1920, Height: 1080, RefreshHz: 0},
		{Width: 1920, Height: 1080, RefreshHz: 60, Type: CVTTimingType(2)},
		{Width: 8192, Height: 4320, RefreshHz: 60},
	} {
		_, err := Generate(m)
		assert.ErrorIs(t, err, ErrBadMode, m.String())
	}
}

func TestFromCode(t *testing.T) {
	code := edid.CVTTimingCode{
		Lines:         539,
		AspectRatio:   edid.CVT_16_9,
		PreferredRate: edid.CVTRate60,
		SupportedRates: edid.CVTSupportedRates{
			Hz50:        true,
			Hz60:        true,
			Hz60Reduced: true,
		},
	}
	modes := FromCode(code)
	require.Len(t, modes, 3)
	assert.Equal(t, Mode{Width: 1920, Height: 1080, RefreshHz: 60, Type: CVT, Aspect: edid.Ratio{Horizontal: 16, Vertical: 9}}, modes[0])
	assert.Equal(t, float64(50), modes[1].RefreshHz)
	assert.Equal(t, CVT_RB, modes[2].Type)

	// 4:3 at 1024 lines is 1365 wide before rounding; vsync still says 4:3
	dt, err := Generate(FromCode(edid.CVTTimingCode{
		Lines:          511,
		AspectRatio:    edid.CVT_4_3,
		PreferredRate:  edid.CVTRate60,
		SupportedRates: edid.CVTSupportedRates{Hz60: true},
	})[0])
	require.NoError(t, err)
	assert.Equal(t, uint16(1360), dt.HorizontalActive)
	assert.Equal(t, uint16(4), dt.VerticalSyncPulseWidth)
}

func TestExpand(t *testing.T) {
	e := &edid.ParsedEdid{}
	e.Descriptors.Blocks[1] = edid.EighteenByteBlock{
		Kind: edid.BlockDescriptor,
		Descriptor: &edid.CVTDescriptor{
			Version: 1,
			Codes: [4]*edid.CVTTimingCode{{
				Lines:          539,
				AspectRatio:    edid.CVT_16_9,
				PreferredRate:  edid.CVTRate60,
				SupportedRates: edid.CVTSupportedRates{Hz60: true, Hz60Reduced: true},
			}},
		},
	}
	got := Expand(e)
	require.Len(t, got, 2)
	assert.Equal(t, uint16(17300), got[0].Timing.PixelClock)
	assert.Equal(t, uint16(13850), got[1].Timing.PixelClock)

	assert.Empty(t, Expand(&edid.ParsedEdid{}))
}

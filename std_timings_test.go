package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardTiming(t *testing.T) {
	tests := []struct {
		name string
		b0   byte
		b1   byte
		want *StandardTiming
		code DiagnosticCode
	}{
		{"unused", 0x01, 0x01, nil, CodeNone},
		{"unused nonconformant", 0x01, 0x00, nil, CodeStdTimingNonConformantUnused},
		{"zero pixels", 0x00, 0x40, nil, CodeStdTimingZeroPixels},
		{"zero pixels zero", 0x00, 0x00, nil, CodeStdTimingZeroPixels},
		{"1920x1080@60", 0xD1, 0xC0, &StandardTiming{1920, AR_16_9, 60}, CodeNone},
		{"1280x1024@75", 0x81, 0x8F, &StandardTiming{1280, AR_5_4, 75}, CodeNone},
		{"1024x768@85", 0x61, 0x59, &StandardTiming{1024, AR_4_3, 85}, CodeNone},
		{"1680x1050@60", 0xB3, 0x00, &StandardTiming{1680, AR_16_10, 60}, CodeNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, c := testDecoder()
			got := d.standardTiming(tc.b0, tc.b1, 0x26)
			assert.Equal(t, tc.want, got)
			if tc.code == CodeNone {
				assert.Empty(t, c.Diagnostics)
				return
			}
			require.Len(t, c.Diagnostics, 1)
			assert.Equal(t, tc.code, c.Diagnostics[0].Code)
			assert.Equal(t, 0x26, c.Diagnostics[0].Offset)
		})
	}
}

func TestStandardTimingVerticalActive(t *testing.T) {
	assert.Equal(t, uint16(1050), StandardTiming{HorizontalActive: 1680, AspectRatio: AR_16_10}.VerticalActive())
	assert.Equal(t, uint16(1024), StandardTiming{HorizontalActive: 1280, AspectRatio: AR_5_4}.VerticalActive())
	assert.Equal(t, uint16(768), StandardTiming{HorizontalActive: 1024, AspectRatio: AR_4_3}.VerticalActive())
	assert.Equal(t, "1920x1080 @ 60 Hz (16:9)", StandardTiming{1920, AR_16_9, 60}.String())
}

func TestStandardTimings(t *testing.T) {
	d, c := testDecoder()
	copy(d.b[0x26:], []byte{0xD1, 0xC0, 0x01, 0x01, 0x01, 0x00, 0x81, 0x8F})
	for i := 0x2E; i < 0x36; i++ {
		d.b[i] = 0x01
	}
	st, err := d.standardTimings()
	require.NoError(t, err)
	assert.NotNil(t, st[0])
	assert.Nil(t, st[1])
	assert.Nil(t, st[2])
	assert.NotNil(t, st[3])
	assert.Len(t, st.Used(), 2)
	require.Len(t, c.Diagnostics, 1)
	assert.Equal(t, 0x2A, c.Diagnostics[0].Offset)
}

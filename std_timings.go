package edid

import (
	"fmt"

	"github.com/asticode/go-astikit"
)

// AspectRatio is the 2-bit image aspect ratio code of a standard timing.
type AspectRatio byte

const (
	AR_16_10 AspectRatio = 0
	AR_4_3   AspectRatio = 1
	AR_5_4   AspectRatio = 2
	AR_16_9  AspectRatio = 3
)

var aspectRatioLookup = map[AspectRatio]Ratio{
	AR_16_10: {16, 10},
	AR_4_3:   {4, 3},
	AR_5_4:   {5, 4},
	AR_16_9:  {16, 9},
}

func (ar AspectRatio) Ratio() Ratio {
	return aspectRatioLookup[ar]
}

func (ar AspectRatio) String() string {
	r, ok := aspectRatioLookup[ar]
	if !ok {
		return "NA"
	}
	return r.String()
}

func (ar AspectRatio) MarshalText() ([]byte, error) {
	return []byte(ar.String()), nil
}

type StandardTiming struct {
	HorizontalActive uint16
	AspectRatio      AspectRatio
	RefreshRate      uint8
}

// VerticalActive derives the addressable line count from the aspect ratio.
func (st StandardTiming) VerticalActive() uint16 {
	r := st.AspectRatio.Ratio()
	if r.Horizontal == 0 {
		return 0
	}
	return uint16(uint32(st.HorizontalActive) * uint32(r.Vertical) / uint32(r.Horizontal))
}

func (st StandardTiming) String() string {
	return fmt.Sprintf("%dx%d @ %d Hz (%s)", st.HorizontalActive, st.VerticalActive(), st.RefreshRate, st.AspectRatio)
}

// StandardTimings holds the eight slots at 0x26-0x35. Unused slots are nil.
type StandardTimings [8]*StandardTiming

// Used returns the non-empty slots in order.
func (s StandardTimings) Used() []StandardTiming {
	var out []StandardTiming
	for _, st := range s {
		if st != nil {
			out = append(out, *st)
		}
	}
	return out
}

func (d *decoder) standardTimings() (StandardTimings, error) {
	var out StandardTimings
	err := d.standardTimingPairs(astikit.NewBytesIterator(d.b[0x26:0x36]), 0x26, out[:])
	return out, err
}

// standardTimingPairs fills dst from consecutive 2-byte codes read from i.
// base is the block offset of the first byte i yields.
func (d *decoder) standardTimingPairs(i *astikit.BytesIterator, base int, dst []*StandardTiming) error {
	for n := range dst {
		off := base + i.Offset()
		bs, err := i.NextBytesNoCopy(2)
		if err != nil || len(bs) < 2 {
			return &Error{Kind: KindTryFromSlice, Offset: off, Got: len(bs), Expected: 2}
		}
		dst[n] = d.standardTiming(bs[0], bs[1], off)
	}
	return nil
}

// standardTiming decodes one 2-byte code found at off.
func (d *decoder) standardTiming(b0, b1 byte, off int) *StandardTiming {
	switch {
	case b0 == 0x01 && b1 == 0x01:
		return nil
	case b0 == 0x01 && b1 == 0x00:
		d.violationf(CodeStdTimingNonConformantUnused, off,
			"unused standard timing encoded as 01 00 instead of 01 01")
		return nil
	case b0 == 0x00:
		d.violationf(CodeStdTimingZeroPixels, off,
			"standard timing with horizontal pixel byte 0x00, treating it as unused")
		return nil
	}
	return &StandardTiming{
		HorizontalActive: (uint16(b0) + 31) * 8,
		AspectRatio:      AspectRatio(bitsOf(b1, 7, 6)),
		RefreshRate:      bitsOf(b1, 5, 0) + 60,
	}
}

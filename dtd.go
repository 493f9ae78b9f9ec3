package edid

import "fmt"

type SyncPolarity bool

const (
	SYNC_ON_POSITIVE SyncPolarity = true
	SYNC_ON_NEGATIVE SyncPolarity = false
)

var syncPolarityLookup = map[SyncPolarity]string{
	SYNC_ON_POSITIVE: "Positive",
	SYNC_ON_NEGATIVE: "Negative",
}

func (sp SyncPolarity) String() string {
	return syncPolarityLookup[sp]
}

func (sp SyncPolarity) MarshalText() ([]byte, error) {
	return []byte(sp.String()), nil
}

// StereoMode is the final DTD byte masked with 0x61 (bits 6, 5 and 0).
type StereoMode byte

const (
	Stereo_None                   StereoMode = 0x00
	Stereo_Sequential_Right       StereoMode = 0x20
	Stereo_Sequential_Left        StereoMode = 0x40
	Stereo_2way_Interleaved_Right StereoMode = 0x21
	Stereo_2way_Interleaved_Left  StereoMode = 0x41
	Stereo_4way_Interleaved       StereoMode = 0x60
	Stereo_SideBySide_Interleaved StereoMode = 0x61
)

func (sm StereoMode) String() string {
	switch sm {
	case Stereo_None:
		return "No Stereo"
	case Stereo_Sequential_Right:
		return "field sequential, right during stereo sync"
	case Stereo_Sequential_Left:
		return "field sequential, left during stereo sync"
	case Stereo_2way_Interleaved_Right:
		return "2-way interleaved, right image on even lines"
	case Stereo_2way_Interleaved_Left:
		return "2-way interleaved, left image on even lines"
	case Stereo_4way_Interleaved:
		return "4-way interleaved"
	case Stereo_SideBySide_Interleaved:
		return "side-by-side interleaved"
	default:
		return "RESERVED"
	}
}

func (sm StereoMode) MarshalText() ([]byte, error) {
	return []byte(sm.String()), nil
}

func stereoMode(b byte) StereoMode {
	sm := StereoMode(b & 0x61)
	// With bits 6 and 5 clear bit 0 is a don't care.
	if sm == 0x01 {
		return Stereo_None
	}
	return sm
}

type DigitalSyncKind byte

const (
	SyncDigitalComposite DigitalSyncKind = iota
	SyncDigitalCompositeSerrated
	SyncDigitalSeparateNegVNegH
	SyncDigitalSeparateNegVPosH
	SyncDigitalSeparatePosVNegH
	SyncDigitalSeparatePosVPosH
)

var digitalSyncLookup = map[DigitalSyncKind]string{
	SyncDigitalComposite:         "digital composite",
	SyncDigitalCompositeSerrated: "digital composite with serrations",
	SyncDigitalSeparateNegVNegH:  "digital separate, -vsync -hsync",
	SyncDigitalSeparateNegVPosH:  "digital separate, -vsync +hsync",
	SyncDigitalSeparatePosVNegH:  "digital separate, +vsync -hsync",
	SyncDigitalSeparatePosVPosH:  "digital separate, +vsync +hsync",
}

func (k DigitalSyncKind) String() string {
	return digitalSyncLookup[k]
}

func (k DigitalSyncKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type DigitalSync struct {
	Kind DigitalSyncKind
	// HorizontalPolarity applies to composite sync. Separate sync kinds
	// carry both polarities in Kind.
	HorizontalPolarity SyncPolarity
}

type AnalogSync struct {
	Bipolar      bool
	Serrations   bool
	SyncOnAllRGB bool
}

// SyncSignal holds exactly one of Digital or Analog.
type SyncSignal struct {
	Digital *DigitalSync `json:",omitempty" yaml:",omitempty"`
	Analog  *AnalogSync  `json:",omitempty" yaml:",omitempty"`
}

func syncSignal(b byte) SyncSignal {
	if !bitSet(b, 4) {
		return SyncSignal{Analog: &AnalogSync{
			Bipolar:      bitSet(b, 3),
			Serrations:   bitSet(b, 2),
			SyncOnAllRGB: bitSet(b, 1),
		}}
	}
	ds := &DigitalSync{HorizontalPolarity: SyncPolarity(bitSet(b, 1))}
	switch {
	case !bitSet(b, 3) && !bitSet(b, 2):
		ds.Kind = SyncDigitalComposite
	case !bitSet(b, 3):
		ds.Kind = SyncDigitalCompositeSerrated
	default:
		ds.Kind = SyncDigitalSeparateNegVNegH + DigitalSyncKind(bitsOf(b, 2, 1))
	}
	return SyncSignal{Digital: ds}
}

// DetailedTiming is an 18-byte detailed timing definition. Counts are in
// pixels or lines and the pixel clock is in units of 10 kHz.
type DetailedTiming struct {
	PixelClock               uint16
	HorizontalActive         uint16
	HorizontalBlanking       uint16
	VerticalActive           uint16
	VerticalBlanking         uint16
	HorizontalFrontPorch     uint16
	HorizontalSyncPulseWidth uint16
	VerticalFrontPorch       uint16
	VerticalSyncPulseWidth   uint16
	// Image sizes are nil when the display left them unspecified.
	HorizontalImageSizeMM *uint16 `json:",omitempty" yaml:",omitempty"`
	VerticalImageSizeMM   *uint16 `json:",omitempty" yaml:",omitempty"`
	HorizontalBorder      uint8
	VerticalBorder        uint8
	Interlaced            bool
	Stereo                StereoMode
	Sync                  SyncSignal
}

func (t *DetailedTiming) PixelClockKHz() uint32 {
	return uint32(t.PixelClock) * 10
}

func (t *DetailedTiming) HorizontalTotal() uint32 {
	return uint32(t.HorizontalActive) + uint32(t.HorizontalBlanking)
}

func (t *DetailedTiming) VerticalTotal() uint32 {
	return uint32(t.VerticalActive) + uint32(t.VerticalBlanking)
}

func (t *DetailedTiming) HorizontalFrequencyKHz() float64 {
	if t.HorizontalTotal() == 0 {
		return 0
	}
	return float64(t.PixelClockKHz()) / float64(t.HorizontalTotal())
}

// RefreshRateHz is the vertical rate. For interlaced timings it is the
// field rate.
func (t *DetailedTiming) RefreshRateHz() float64 {
	total := t.HorizontalTotal() * t.VerticalTotal()
	if total == 0 {
		return 0
	}
	return float64(t.PixelClockKHz()) * 1000 / float64(total)
}

func (t *DetailedTiming) String() string {
	s := fmt.Sprintf("%dx%d @ %.2f Hz", t.HorizontalActive, t.VerticalActive, t.RefreshRateHz())
	if t.Interlaced {
		s += " interlaced"
	}
	return s
}

func decodeDetailedTiming(w []byte) *DetailedTiming {
	t := &DetailedTiming{
		PixelClock:               le16(w[0:2]),
		HorizontalActive:         joinNibble(w[4]>>4, w[2]),
		HorizontalBlanking:       joinNibble(w[4], w[3]),
		VerticalActive:           joinNibble(w[7]>>4, w[5]),
		VerticalBlanking:         joinNibble(w[7], w[6]),
		HorizontalFrontPorch:     joinPair(bitsOf(w[11], 7, 6), w[8], 8),
		HorizontalSyncPulseWidth: joinPair(bitsOf(w[11], 5, 4), w[9], 8),
		VerticalFrontPorch:       joinPair(bitsOf(w[11], 3, 2), bitsOf(w[10], 7, 4), 4),
		VerticalSyncPulseWidth:   joinPair(bitsOf(w[11], 1, 0), bitsOf(w[10], 3, 0), 4),
		HorizontalBorder:         w[15],
		VerticalBorder:           w[16],
		Interlaced:               bitSet(w[17], 7),
		Stereo:                   stereoMode(w[17]),
		Sync:                     syncSignal(w[17]),
	}
	if h := joinNibble(w[14]>>4, w[12]); h != 0 {
		t.HorizontalImageSizeMM = &h
	}
	if v := joinNibble(w[14], w[13]); v != 0 {
		t.VerticalImageSizeMM = &v
	}
	return t
}

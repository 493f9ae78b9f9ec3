package edid

// CVTAspectRatio is the 2-bit aspect ratio of a CVT 3 byte timing code.
type CVTAspectRatio uint8

const (
	CVT_4_3   CVTAspectRatio = 0
	CVT_16_9  CVTAspectRatio = 1
	CVT_16_10 CVTAspectRatio = 2
	CVT_15_9  CVTAspectRatio = 3
)

var cvtAspectRatioLookup = map[CVTAspectRatio]Ratio{
	CVT_4_3:   {4, 3},
	CVT_16_9:  {16, 9},
	CVT_16_10: {16, 10},
	CVT_15_9:  {15, 9},
}

func (ar CVTAspectRatio) Ratio() Ratio {
	return cvtAspectRatioLookup[ar]
}

func (ar CVTAspectRatio) String() string {
	return ar.Ratio().String()
}

func (ar CVTAspectRatio) MarshalText() ([]byte, error) {
	return []byte(ar.String()), nil
}

// CVTRate is a vertical rate named by the CVT tables.
type CVTRate uint8

const (
	CVTRate50 CVTRate = 50
	CVTRate60 CVTRate = 60
	CVTRate75 CVTRate = 75
	CVTRate85 CVTRate = 85
)

var cvtPreferredRates = [4]CVTRate{CVTRate50, CVTRate60, CVTRate75, CVTRate85}

type CVTSupportedRates struct {
	Hz50        bool
	Hz60        bool
	Hz75        bool
	Hz85        bool
	Hz60Reduced bool
}

// CVTTimingCode is one 3-byte CVT code. Lines is the stored 12-bit value.
type CVTTimingCode struct {
	Lines          uint16
	AspectRatio    CVTAspectRatio
	PreferredRate  CVTRate
	SupportedRates CVTSupportedRates
}

// AddressableLines is the vertical resolution the code stands for.
func (c CVTTimingCode) AddressableLines() uint32 {
	return (uint32(c.Lines) + 1) * 2
}

type CVTDescriptor struct {
	Version uint8
	Codes   [4]*CVTTimingCode
}

func (*CVTDescriptor) Tag() DescriptorTag { return TagCVT3ByteCodes }

func newCVTDescriptor(d *decoder, w []byte, off int) (DisplayDescriptor, error) {
	c := &CVTDescriptor{Version: w[5]}
	if c.Version != 0x01 {
		d.warnf(CodeCVTVersion, off+5, "CVT timing codes version 0x%02X is reserved, expected 0x01", c.Version)
	}
	for n := range c.Codes {
		at := 6 + 3*n
		c.Codes[n] = d.cvtTimingCode(w[at:at+3], off+at)
	}
	if c.Codes[0] == nil {
		return nil, &Error{Kind: KindDescriptorNoFirstCVT, Offset: off + 6}
	}
	return c, nil
}

func (d *decoder) cvtTimingCode(b []byte, off int) *CVTTimingCode {
	if b[0] == 0 && b[1] == 0 && b[2] == 0 {
		return nil
	}
	if bitsOf(b[1], 1, 0) != 0 || bitSet(b[2], 7) {
		d.violationf(CodeReservedBits, off, "CVT timing code uses reserved bits (% X)", b)
	}
	return &CVTTimingCode{
		Lines:         joinNibble(b[1]>>4, b[0]),
		AspectRatio:   CVTAspectRatio(bitsOf(b[1], 3, 2)),
		PreferredRate: cvtPreferredRates[bitsOf(b[2], 6, 5)],
		SupportedRates: CVTSupportedRates{
			Hz50:        bitSet(b[2], 4),
			Hz60:        bitSet(b[2], 3),
			Hz75:        bitSet(b[2], 2),
			Hz85:        bitSet(b[2], 1),
			Hz60Reduced: bitSet(b[2], 0),
		},
	}
}

// CVTAspectRatios are the aspect ratios a CVT range limits descriptor
// declares support for.
type CVTAspectRatios struct {
	AR4x3   bool
	AR16x9  bool
	AR16x10 bool
	AR5x4   bool
	AR15x9  bool
}

// CVTPreferredAspect is bits 7-5 of byte 15 of a CVT range limits
// descriptor.
type CVTPreferredAspect uint8

const (
	CVTPreferred4x3   CVTPreferredAspect = 0
	CVTPreferred16x9  CVTPreferredAspect = 1
	CVTPreferred16x10 CVTPreferredAspect = 2
	CVTPreferred5x4   CVTPreferredAspect = 3
	CVTPreferred15x9  CVTPreferredAspect = 4
)

var cvtPreferredLookup = map[CVTPreferredAspect]Ratio{
	CVTPreferred4x3:   {4, 3},
	CVTPreferred16x9:  {16, 9},
	CVTPreferred16x10: {16, 10},
	CVTPreferred5x4:   {5, 4},
	CVTPreferred15x9:  {15, 9},
}

func (p CVTPreferredAspect) Ratio() Ratio {
	return cvtPreferredLookup[p]
}

func (p CVTPreferredAspect) String() string {
	return p.Ratio().String()
}

func (p CVTPreferredAspect) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func cvtPreferredAspect(b byte, off int) (CVTPreferredAspect, error) {
	p := CVTPreferredAspect(bitsOf(b, 7, 5))
	if _, ok := cvtPreferredLookup[p]; !ok {
		return 0, &Error{Kind: KindRangeLimitsCVTReservedBits, Offset: off, Value: b}
	}
	return p, nil
}

// CVTSupport is the CVT part of a range limits descriptor.
type CVTSupport struct {
	Version uint8
	// EnhancedPixelClockMHz is the maximum pixel clock refined to 0.25 MHz.
	EnhancedPixelClockMHz float64
	// MaxActivePixels is nil when the display sets no limit.
	MaxActivePixels    *uint16 `json:",omitempty" yaml:",omitempty"`
	SupportedAspects   CVTAspectRatios
	PreferredAspect    CVTPreferredAspect
	ReducedBlanking    bool
	StandardBlanking   bool
	HorizontalShrink   bool
	HorizontalStretch  bool
	VerticalShrink     bool
	VerticalStretch    bool
	PreferredRefreshHz uint8
}

func (d *decoder) cvtSupport(w []byte, off int, maxClockMHz uint16) (*CVTSupport, error) {
	preferred, err := cvtPreferredAspect(w[15], off+15)
	if err != nil {
		return nil, err
	}
	c := &CVTSupport{
		Version:               w[11],
		EnhancedPixelClockMHz: float64(maxClockMHz) - float64(bitsOf(w[12], 7, 2))/4,
		SupportedAspects: CVTAspectRatios{
			AR4x3:   bitSet(w[14], 7),
			AR16x9:  bitSet(w[14], 6),
			AR16x10: bitSet(w[14], 5),
			AR5x4:   bitSet(w[14], 4),
			AR15x9:  bitSet(w[14], 3),
		},
		PreferredAspect:    preferred,
		ReducedBlanking:    bitSet(w[15], 4),
		StandardBlanking:   bitSet(w[15], 3),
		HorizontalShrink:   bitSet(w[16], 7),
		HorizontalStretch:  bitSet(w[16], 6),
		VerticalShrink:     bitSet(w[16], 5),
		VerticalStretch:    bitSet(w[16], 4),
		PreferredRefreshHz: w[17],
	}
	if px := joinPair(bitsOf(w[12], 1, 0), w[13], 8); px != 0 {
		px *= 8
		c.MaxActivePixels = &px
	}
	if bitsOf(w[14], 2, 0) != 0 {
		d.violationf(CodeReservedBits, off+14, "CVT supported aspect ratio reserved bits are set (0x%02X)", w[14])
	}
	return c, nil
}

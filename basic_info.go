package edid

import "fmt"

type BitDepth byte

const (
	BitDepthUndefined BitDepth = 0
	BitDepth6         BitDepth = 1
	BitDepth8         BitDepth = 2
	BitDepth10        BitDepth = 3
	BitDepth12        BitDepth = 4
	BitDepth14        BitDepth = 5
	BitDepth16        BitDepth = 6
	BitDepthReserved  BitDepth = 7
)

func (d BitDepth) String() string {
	switch d {
	default:
		return "undefined"
	case BitDepth6:
		return "6"
	case BitDepth8:
		return "8"
	case BitDepth10:
		return "10"
	case BitDepth12:
		return "12"
	case BitDepth14:
		return "14"
	case BitDepth16:
		return "16"
	case BitDepthReserved:
		return "reserved"
	}
}

func (d BitDepth) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Bits returns the number of bits per primary color, or 0 when undefined
// or reserved.
func (d BitDepth) Bits() int {
	if d == BitDepthUndefined || d == BitDepthReserved {
		return 0
	}
	return 4 + 2*int(d)
}

// VideoInterface is the digital interface standard. InterfaceNotReported
// means the display did not say.
type VideoInterface byte

const (
	InterfaceNotReported VideoInterface = 0
	InterfaceDVI         VideoInterface = 1
	InterfaceHDMIa       VideoInterface = 2
	InterfaceHDMIb       VideoInterface = 3
	InterfaceMDDI        VideoInterface = 4
	InterfaceDisplayPort VideoInterface = 5
)

var videoInterfaceLookup = map[VideoInterface]string{
	InterfaceNotReported: "not reported",
	InterfaceDVI:         "DVI",
	InterfaceHDMIa:       "HDMIa",
	InterfaceHDMIb:       "HDMIb",
	InterfaceMDDI:        "MDDI",
	InterfaceDisplayPort: "DisplayPort",
}

func (v VideoInterface) String() string {
	return videoInterfaceLookup[v]
}

func (v VideoInterface) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// SignalLevelStandard is the analog video white and sync level relative to blank.
type SignalLevelStandard byte

const (
	SignalLevel0700_0300 SignalLevelStandard = 0
	SignalLevel0714_0286 SignalLevelStandard = 1
	SignalLevel1000_0400 SignalLevelStandard = 2
	SignalLevel0700_0000 SignalLevelStandard = 3
)

var signalLevelLookup = map[SignalLevelStandard]string{
	SignalLevel0700_0300: "+0.7/-0.3 V",
	SignalLevel0714_0286: "+0.714/-0.286 V",
	SignalLevel1000_0400: "+1.0/-0.4 V",
	SignalLevel0700_0000: "+0.7/0 V (EVC)",
}

func (s SignalLevelStandard) String() string {
	return signalLevelLookup[s]
}

func (s SignalLevelStandard) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type DigitalInput struct {
	BitDepth  BitDepth
	Interface VideoInterface
}

type AnalogInput struct {
	SignalLevel          SignalLevelStandard
	BlankToBlackSetup    bool
	SeparateSync         bool
	CompositeSyncOnHSync bool
	SyncOnGreen          bool
	SerrationOnVSync     bool
}

// VideoInput holds exactly one of Digital or Analog.
type VideoInput struct {
	Digital *DigitalInput `json:",omitempty" yaml:",omitempty"`
	Analog  *AnalogInput  `json:",omitempty" yaml:",omitempty"`
}

func (v VideoInput) IsDigital() bool {
	return v.Digital != nil
}

type ScreenSize struct {
	WidthCM  uint8
	HeightCM uint8
}

// Ratio is a reduced horizontal:vertical aspect ratio.
type Ratio struct {
	Horizontal uint16
	Vertical   uint16
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Horizontal, r.Vertical)
}

func (r Ratio) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r Ratio) Float() float64 {
	return float64(r.Horizontal) / float64(r.Vertical)
}

// newRatio reduces num/den. den must not be zero.
func newRatio(num, den uint16) Ratio {
	if den == 0 {
		panic("edid: ratio with zero denominator")
	}
	g := gcd(num, den)
	return Ratio{Horizontal: num / g, Vertical: den / g}
}

type ColorEncoding byte

const (
	EncodingRGB444              ColorEncoding = 0
	EncodingRGB444_YCrCb444     ColorEncoding = 1
	EncodingRGB444_YCrCb422     ColorEncoding = 2
	EncodingRGB444_YCrCb444_422 ColorEncoding = 3
)

var colorEncodingLookup = map[ColorEncoding]string{
	EncodingRGB444:              "RGB 4:4:4",
	EncodingRGB444_YCrCb444:     "RGB 4:4:4 + YCrCb 4:4:4",
	EncodingRGB444_YCrCb422:     "RGB 4:4:4 + YCrCb 4:2:2",
	EncodingRGB444_YCrCb444_422: "RGB 4:4:4 + YCrCb 4:4:4 + YCrCb 4:2:2",
}

func (c ColorEncoding) String() string {
	return colorEncodingLookup[c]
}

func (c ColorEncoding) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type ColorType byte

const (
	ColorMonochrome ColorType = 0
	ColorRGB        ColorType = 1
	ColorNonRGB     ColorType = 2
	ColorUndefined  ColorType = 3
)

var colorTypeLookup = map[ColorType]string{
	ColorMonochrome: "monochrome or grayscale",
	ColorRGB:        "RGB color",
	ColorNonRGB:     "non-RGB color",
	ColorUndefined:  "undefined",
}

func (c ColorType) String() string {
	return colorTypeLookup[c]
}

func (c ColorType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type FeatureSupport struct {
	Standby   bool
	Suspend   bool
	ActiveOff bool
	// ColorEncoding is set for digital displays, ColorType for analog ones.
	ColorEncoding           *ColorEncoding `json:",omitempty" yaml:",omitempty"`
	ColorType               *ColorType     `json:",omitempty" yaml:",omitempty"`
	SRGBDefault             bool
	PreferredTimingIsNative bool
	ContinuousFrequency     bool
}

type BasicDisplayInfo struct {
	Input VideoInput
	// At most one of ScreenSize and AspectRatio is set.
	ScreenSize  *ScreenSize `json:",omitempty" yaml:",omitempty"`
	AspectRatio *Ratio      `json:",omitempty" yaml:",omitempty"`
	// Gamma is nil when it is carried by an extension block.
	Gamma    *float64 `json:",omitempty" yaml:",omitempty"`
	Features FeatureSupport
}

func (d *decoder) basicDisplay() (BasicDisplayInfo, error) {
	var info BasicDisplayInfo
	input, err := videoInput(d.b[0x14])
	if err != nil {
		return info, err
	}
	info.Input = input
	info.ScreenSize, info.AspectRatio = d.sizeOrRatio(d.b[0x15], d.b[0x16])
	info.Gamma = d.gamma(d.b[0x17], 0x17)
	info.Features = featureSupport(d.b[0x18], input.IsDigital())
	return info, nil
}

func videoInput(b byte) (VideoInput, error) {
	if !bitSet(b, 7) {
		return VideoInput{Analog: &AnalogInput{
			SignalLevel:          SignalLevelStandard(bitsOf(b, 6, 5)),
			BlankToBlackSetup:    bitSet(b, 4),
			SeparateSync:         bitSet(b, 3),
			CompositeSyncOnHSync: bitSet(b, 2),
			SyncOnGreen:          bitSet(b, 1),
			SerrationOnVSync:     bitSet(b, 0),
		}}, nil
	}
	iface := VideoInterface(bitsOf(b, 3, 0))
	if iface > InterfaceDisplayPort {
		return VideoInput{}, &Error{Kind: KindDigitalInterfaceReserved, Offset: 0x14, Value: byte(iface)}
	}
	return VideoInput{Digital: &DigitalInput{
		BitDepth:  BitDepth(bitsOf(b, 6, 4)),
		Interface: iface,
	}}, nil
}

func (d *decoder) sizeOrRatio(h, v byte) (*ScreenSize, *Ratio) {
	switch {
	case h == 0 && v == 0:
		return nil, nil
	case v == 0:
		r := d.aspectRatio(h, 0x15)
		return nil, &r
	case h == 0:
		r := d.aspectRatio(v, 0x16)
		r.Horizontal, r.Vertical = r.Vertical, r.Horizontal
		return nil, &r
	}
	return &ScreenSize{WidthCM: h, HeightCM: v}, nil
}

// knownAspectRatios covers the codes displays use for common ratios, which
// the (100+code)/100 formula only approximates.
var knownAspectRatios = map[byte]Ratio{
	0x4F: {16, 9},
	0x3D: {16, 10},
	0x22: {4, 3},
	0x1A: {5, 4},
	0x05: {3, 2},
	0x86: {21, 9},
}

// aspectRatio decodes a non-zero landscape aspect ratio code.
func (d *decoder) aspectRatio(code byte, off int) Ratio {
	if r, ok := knownAspectRatios[code]; ok {
		return r
	}
	if code == 0xFF {
		d.warnf(CodeAspectRatioPrecision, off,
			"aspect ratio code 0xFF reads as 3.55:1, the real ratio may be wider")
	}
	return newRatio(100+uint16(code), 100)
}

// gamma decodes a (value+100)/100 gamma byte. 0xFF means the value lives in
// an extension.
func (d *decoder) gamma(b byte, off int) *float64 {
	if b == 0xFF {
		d.report(SeverityInfo, CodeNone, off, "gamma is defined in an extension block")
		return nil
	}
	if b == 0x00 {
		d.violationf(CodeGammaZero, off, "gamma byte 0x00 is not defined by EDID 1.4, reading it as 1.00")
	}
	g := float64(uint16(b)+100) / 100
	return &g
}

func featureSupport(b byte, digital bool) FeatureSupport {
	f := FeatureSupport{
		Standby:                 bitSet(b, 7),
		Suspend:                 bitSet(b, 6),
		ActiveOff:               bitSet(b, 5),
		SRGBDefault:             bitSet(b, 2),
		PreferredTimingIsNative: bitSet(b, 1),
		ContinuousFrequency:     bitSet(b, 0),
	}
	if digital {
		e := ColorEncoding(bitsOf(b, 4, 3))
		f.ColorEncoding = &e
	} else {
		t := ColorType(bitsOf(b, 4, 3))
		f.ColorType = &t
	}
	return f
}

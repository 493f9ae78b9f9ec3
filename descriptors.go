package edid

import (
	"fmt"

	"github.com/asticode/go-astikit"
)

// DescriptorTag is byte 3 of a display descriptor.
type DescriptorTag byte

const (
	TagDummy                 DescriptorTag = 0x10
	TagEstablishedTimingsIII DescriptorTag = 0xF7
	TagCVT3ByteCodes         DescriptorTag = 0xF8
	TagDCM                   DescriptorTag = 0xF9
	TagStandardTimings       DescriptorTag = 0xFA
	TagColorPoint            DescriptorTag = 0xFB
	TagProductName           DescriptorTag = 0xFC
	TagRangeLimits           DescriptorTag = 0xFD
	TagDataString            DescriptorTag = 0xFE
	TagProductSerial         DescriptorTag = 0xFF
)

var descriptorTagLookup = map[DescriptorTag]string{
	TagDummy:                 "Dummy Descriptor",
	TagEstablishedTimingsIII: "Established Timings III",
	TagCVT3ByteCodes:         "CVT 3 Byte Timing Codes",
	TagDCM:                   "Display Color Management Data",
	TagStandardTimings:       "Standard Timing Identifications",
	TagColorPoint:            "Color Point Data",
	TagProductName:           "Display Product Name",
	TagRangeLimits:           "Display Range Limits",
	TagDataString:            "Alphanumeric Data String",
	TagProductSerial:         "Display Product Serial Number",
}

// IsManufacturer reports whether the tag is in the 0x00-0x0F range left to
// manufacturers.
func (t DescriptorTag) IsManufacturer() bool {
	return t <= 0x0F
}

func (t DescriptorTag) String() string {
	if s, ok := descriptorTagLookup[t]; ok {
		return s
	}
	if t.IsManufacturer() {
		return fmt.Sprintf("Manufacturer Specified (0x%02X)", byte(t))
	}
	return fmt.Sprintf("Reserved (0x%02X)", byte(t))
}

func (t DescriptorTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// DisplayDescriptor is implemented by every display descriptor variant.
type DisplayDescriptor interface {
	Tag() DescriptorTag
}

type BlockKind uint8

const (
	BlockTiming BlockKind = iota
	BlockDescriptor
)

func (k BlockKind) String() string {
	if k == BlockDescriptor {
		return "descriptor"
	}
	return "timing"
}

func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// EighteenByteBlock is either a detailed timing or a display descriptor.
type EighteenByteBlock struct {
	Kind       BlockKind
	Timing     *DetailedTiming   `json:",omitempty" yaml:",omitempty"`
	Descriptor DisplayDescriptor `json:",omitempty" yaml:",omitempty"`
}

// EighteenByteDescriptors holds the blocks at 0x36, 0x48, 0x5A and 0x6C.
type EighteenByteDescriptors struct {
	Preferred EighteenByteBlock
	Blocks    [3]EighteenByteBlock
}

// All returns the four blocks in their byte order.
func (e EighteenByteDescriptors) All() [4]EighteenByteBlock {
	return [4]EighteenByteBlock{e.Preferred, e.Blocks[0], e.Blocks[1], e.Blocks[2]}
}

// Timings returns every detailed timing, preferred first.
func (e EighteenByteDescriptors) Timings() []*DetailedTiming {
	var out []*DetailedTiming
	for _, blk := range e.All() {
		if blk.Timing != nil {
			out = append(out, blk.Timing)
		}
	}
	return out
}

const (
	descriptorsStart = 0x36
	descriptorsEnd   = 0x7E
	blockSize        = 18
)

type descriptorDecoder func(d *decoder, w []byte, off int) (DisplayDescriptor, error)

var descriptorDecoders [256]descriptorDecoder

func init() {
	for t := 0x00; t <= 0x0F; t++ {
		descriptorDecoders[t] = newManufacturerDescriptor
	}
	descriptorDecoders[TagDummy] = newDummyDescriptor
	descriptorDecoders[TagEstablishedTimingsIII] = newEstablishedTimingsIII
	descriptorDecoders[TagCVT3ByteCodes] = newCVTDescriptor
	descriptorDecoders[TagDCM] = newDCMDescriptor
	descriptorDecoders[TagStandardTimings] = newStandardTimingsDescriptor
	descriptorDecoders[TagColorPoint] = newColorPointDescriptor
	descriptorDecoders[TagProductName] = newTextDescriptor
	descriptorDecoders[TagRangeLimits] = newRangeLimitsDescriptor
	descriptorDecoders[TagDataString] = newTextDescriptor
	descriptorDecoders[TagProductSerial] = newTextDescriptor
}

func (d *decoder) descriptors(v Version) (EighteenByteDescriptors, error) {
	var out EighteenByteDescriptors
	i := astikit.NewBytesIterator(d.b[descriptorsStart:descriptorsEnd])
	for n := 0; n < 4; n++ {
		off := descriptorsStart + i.Offset()
		w, err := i.NextBytesNoCopy(blockSize)
		if err != nil || len(w) != blockSize {
			return out, &Error{Kind: KindTryFromSlice, Offset: off, Got: len(w), Expected: blockSize}
		}
		blk, err := d.eighteenByteBlock(w, off)
		if err != nil {
			return out, err
		}
		if n == 0 {
			out.Preferred = blk
			continue
		}
		out.Blocks[n-1] = blk
	}

	if out.Preferred.Kind == BlockDescriptor {
		msg := "first 18-byte block holds a display descriptor instead of the preferred timing"
		if v.AtLeast(1, 3) {
			d.violationf(CodePreferredNotTiming, descriptorsStart, "%s", msg)
		} else {
			d.warnf(CodePreferredNotTiming, descriptorsStart, "%s", msg)
		}
	}
	return out, nil
}

func (d *decoder) eighteenByteBlock(w []byte, off int) (EighteenByteBlock, error) {
	if w[0] != 0 || w[1] != 0 {
		return EighteenByteBlock{Kind: BlockTiming, Timing: decodeDetailedTiming(w)}, nil
	}
	desc, err := d.displayDescriptor(w, off)
	if err != nil {
		return EighteenByteBlock{}, err
	}
	return EighteenByteBlock{Kind: BlockDescriptor, Descriptor: desc}, nil
}

func (d *decoder) displayDescriptor(w []byte, off int) (DisplayDescriptor, error) {
	tag := DescriptorTag(w[3])
	if w[2] != 0 || (w[4] != 0 && tag != TagRangeLimits) {
		e := &Error{Kind: KindDescriptorUnexpectedHeader, Offset: off}
		copy(e.Header[:], w[:5])
		return nil, e
	}
	decode := descriptorDecoders[tag]
	if decode == nil {
		return nil, &Error{Kind: KindDescriptorUsedReservedKind, Offset: off + 3, Value: byte(tag)}
	}
	desc, err := decode(d, w, off)
	if err != nil {
		return nil, err
	}
	if desc.Tag() != tag {
		return nil, &Error{Kind: KindAmbiguousDescriptor, Offset: off + 3, Value: byte(tag)}
	}
	d.debugf(off, "%s", tag)
	return desc, nil
}

// ManufacturerDescriptor carries a 0x00-0x0F tagged descriptor verbatim.
type ManufacturerDescriptor struct {
	Kind DescriptorTag
	Data [13]byte
}

func (m *ManufacturerDescriptor) Tag() DescriptorTag { return m.Kind }

func newManufacturerDescriptor(_ *decoder, w []byte, _ int) (DisplayDescriptor, error) {
	m := &ManufacturerDescriptor{Kind: DescriptorTag(w[3])}
	copy(m.Data[:], w[5:])
	return m, nil
}

type DummyDescriptor struct{}

func (*DummyDescriptor) Tag() DescriptorTag { return TagDummy }

func newDummyDescriptor(d *decoder, w []byte, off int) (DisplayDescriptor, error) {
	for i, b := range w[5:] {
		if b != 0 {
			d.warnf(CodeDummyNotEmpty, off+5+i, "dummy descriptor holds data (0x%02X)", b)
			break
		}
	}
	return &DummyDescriptor{}, nil
}

// StandardTimingsDescriptor holds six more standard timings.
type StandardTimingsDescriptor struct {
	Timings [6]*StandardTiming
}

func (*StandardTimingsDescriptor) Tag() DescriptorTag { return TagStandardTimings }

func newStandardTimingsDescriptor(d *decoder, w []byte, off int) (DisplayDescriptor, error) {
	s := &StandardTimingsDescriptor{}
	if err := d.standardTimingPairs(astikit.NewBytesIterator(w[5:17]), off+5, s.Timings[:]); err != nil {
		return nil, err
	}
	if w[17] != 0x0A {
		d.warnf(CodeStdTimingPadding, off+17, "standard timings descriptor byte 17 is 0x%02X, expected 0x0A", w[17])
	}
	return s, nil
}

// DCMDescriptor is the display color management data. The polynomial
// coefficients are kept raw.
type DCMDescriptor struct {
	Version uint8
	RedA3   uint16
	RedA2   uint16
	GreenA3 uint16
	GreenA2 uint16
	BlueA3  uint16
	BlueA2  uint16
}

func (*DCMDescriptor) Tag() DescriptorTag { return TagDCM }

func newDCMDescriptor(d *decoder, w []byte, off int) (DisplayDescriptor, error) {
	if w[5] != 0x03 {
		d.warnf(CodeDCMVersion, off+5, "DCM version 0x%02X is reserved, expected 0x03", w[5])
	}
	return &DCMDescriptor{
		Version: w[5],
		RedA3:   le16(w[6:8]),
		RedA2:   le16(w[8:10]),
		GreenA3: le16(w[10:12]),
		GreenA2: le16(w[12:14]),
		BlueA3:  le16(w[14:16]),
		BlueA2:  le16(w[16:18]),
	}, nil
}

package edid

// RangeOffset is the 2-bit rate offset code of a range limits descriptor.
type RangeOffset uint8

const (
	OffsetNone   RangeOffset = 0
	OffsetMax    RangeOffset = 2
	OffsetMaxMin RangeOffset = 3
)

func (o RangeOffset) HasMax() bool { return o == OffsetMax || o == OffsetMaxMin }

func (o RangeOffset) HasMin() bool { return o == OffsetMaxMin }

func (o RangeOffset) String() string {
	switch o {
	case OffsetNone:
		return "none"
	case OffsetMax:
		return "max +255"
	case OffsetMaxMin:
		return "max and min +255"
	default:
		return "reserved"
	}
}

func (o RangeOffset) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// RangeLimits is shared by every range limits sub-kind.
type RangeLimits struct {
	MinVerticalHz    uint16
	MaxVerticalHz    uint16
	MinHorizontalKHz uint16
	MaxHorizontalKHz uint16
	HorizontalOffset RangeOffset
	VerticalOffset   RangeOffset
	MaxPixelClockMHz uint16
}

// RangeLimitsKind is the video timing support flag at byte 10.
type RangeLimitsKind uint8

const (
	RangeGTF          RangeLimitsKind = 0x00
	RangeLimitsOnly   RangeLimitsKind = 0x01
	RangeGTFSecondary RangeLimitsKind = 0x02
	RangeCVT          RangeLimitsKind = 0x04
)

var rangeLimitsKindLookup = map[RangeLimitsKind]string{
	RangeGTF:          "default GTF supported",
	RangeLimitsOnly:   "range limits only",
	RangeGTFSecondary: "secondary GTF curve supported",
	RangeCVT:          "CVT supported",
}

func (k RangeLimitsKind) String() string {
	return rangeLimitsKindLookup[k]
}

func (k RangeLimitsKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// GTFSecondaryCurve holds the secondary GTF curve coefficients as stored,
// except StartBreakKHz which is already doubled.
type GTFSecondaryCurve struct {
	StartBreakKHz uint16
	C2            uint8
	M             uint16
	K             uint8
	J2            uint8
}

type RangeLimitsDescriptor struct {
	Kind   RangeLimitsKind
	Limits RangeLimits
	// Flexible is set for RangeLimitsOnly when the display is continuous
	// frequency.
	Flexible       bool
	SecondaryCurve *GTFSecondaryCurve `json:",omitempty" yaml:",omitempty"`
	CVT            *CVTSupport        `json:",omitempty" yaml:",omitempty"`
}

func (*RangeLimitsDescriptor) Tag() DescriptorTag { return TagRangeLimits }

func newRangeLimitsDescriptor(d *decoder, w []byte, off int) (DisplayDescriptor, error) {
	limits, err := d.rangeLimits(w, off)
	if err != nil {
		return nil, err
	}
	r := &RangeLimitsDescriptor{Kind: RangeLimitsKind(w[10]), Limits: limits}
	continuous := bitSet(d.b[0x18], 0)

	switch r.Kind {
	case RangeGTF:
	case RangeLimitsOnly:
		r.Flexible = continuous
		return r, nil
	case RangeGTFSecondary:
		if w[11] != 0x00 {
			d.violationf(CodeReservedBits, off+11, "GTF secondary curve reserved byte is 0x%02X", w[11])
		}
		r.SecondaryCurve = &GTFSecondaryCurve{
			StartBreakKHz: uint16(w[12]) * 2,
			C2:            w[13],
			M:             le16(w[14:16]),
			K:             w[16],
			J2:            w[17],
		}
	case RangeCVT:
		if r.CVT, err = d.cvtSupport(w, off, limits.MaxPixelClockMHz); err != nil {
			return nil, err
		}
	default:
		return nil, &Error{Kind: KindRangeLimitsUsedReservedVTSFlag, Offset: off + 10, Value: w[10]}
	}

	if !continuous {
		d.warnf(CodeContinuousFrequencyMismatch, off+10,
			"range limits advertise %s but the continuous frequency feature bit is clear", r.Kind)
	}
	return r, nil
}

func (d *decoder) rangeLimits(w []byte, off int) (RangeLimits, error) {
	flags := w[4]
	if bitsOf(flags, 7, 4) != 0 {
		return RangeLimits{}, &Error{Kind: KindRangeLimitsUsedReservedBits, Offset: off + 4, Value: flags}
	}
	h, v := RangeOffset(bitsOf(flags, 3, 2)), RangeOffset(bitsOf(flags, 1, 0))
	if h == 1 || v == 1 {
		return RangeLimits{}, &Error{Kind: KindRangeLimitsUsedReservedBits, Offset: off + 4, Value: flags}
	}

	l := RangeLimits{HorizontalOffset: h, VerticalOffset: v}
	rates := []struct {
		idx    int
		dst    *uint16
		offset bool
	}{
		{5, &l.MinVerticalHz, v.HasMin()},
		{6, &l.MaxVerticalHz, v.HasMax()},
		{7, &l.MinHorizontalKHz, h.HasMin()},
		{8, &l.MaxHorizontalKHz, h.HasMax()},
	}
	for _, r := range rates {
		val, err := d.bcdAt(w, off, r.idx)
		if err != nil {
			return RangeLimits{}, err
		}
		if val == 0 {
			d.violationf(CodeRangeLimitZeroRate, off+r.idx, "range limit rate at descriptor byte %d is zero", r.idx)
		}
		if r.offset {
			val += 255
		}
		*r.dst = val
	}

	clock, err := d.bcdAt(w, off, 9)
	if err != nil {
		return RangeLimits{}, err
	}
	l.MaxPixelClockMHz = clock * 10
	return l, nil
}

// bcdAt decodes descriptor byte idx, placing any error at its block offset.
func (d *decoder) bcdAt(w []byte, off, idx int) (uint16, error) {
	v, err := fromBCD(w[idx])
	if err != nil {
		e := err.(*Error)
		e.Offset = off + idx
		return 0, e
	}
	return v, nil
}

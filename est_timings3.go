package edid

// EstablishedTimingsIII lists the timings set in an Established Timings III
// descriptor.
type EstablishedTimingsIII struct {
	Supported []EstablishedTiming
}

func (*EstablishedTimingsIII) Tag() DescriptorTag { return TagEstablishedTimingsIII }

func (t *EstablishedTimingsIII) Has(et EstablishedTiming) bool {
	return hasTiming(t.Supported, et)
}

func newEstablishedTimingsIII(d *decoder, w []byte, off int) (DisplayDescriptor, error) {
	if w[5] != 0x0A {
		d.debugf(off+5, "Established Timings III revision byte is 0x%02X", w[5])
	}
	if bitsOf(w[11], 3, 0) != 0 {
		d.violationf(CodeReservedBits, off+11, "Established Timings III reserved bits of byte 11 are set (0x%02X)", w[11])
	}
	for i, b := range w[12:18] {
		if b != 0 {
			d.violationf(CodeReservedBits, off+12+i, "Established Timings III reserved byte is 0x%02X", b)
			break
		}
	}
	return &EstablishedTimingsIII{
		Supported: collectTimings(w[6:12], ET_640_350_85, 44),
	}, nil
}

package edid

import "fmt"

// Options configure a decode.
type Options struct {
	// Sink receives every diagnostic. Nil means SlogSink over slog.Default().
	Sink Sink
	// Strict turns the first SeverityViolation diagnostic into a
	// StrictViolation error.
	Strict bool
}

// ParsedEdid is a fully decoded EDID base block.
type ParsedEdid struct {
	VendorProduct      VendorProductID
	Version            Version
	BasicDisplay       BasicDisplayInfo
	Color              ColorCharacteristics
	EstablishedTimings EstablishedTimings
	StandardTimings    StandardTimings
	Descriptors        EighteenByteDescriptors
	ExtensionCount     uint8
	// Checksum is byte 0x7F as found, whether or not the block sums to zero.
	Checksum      uint8
	checksumValid bool
}

// ChecksumValid reports whether the 128 bytes of the base block summed to
// zero modulo 256.
func (e *ParsedEdid) ChecksumValid() bool {
	return e.checksumValid
}

// PreferredTiming returns the first detailed timing, or nil when the first
// block holds a display descriptor.
func (e *ParsedEdid) PreferredTiming() *DetailedTiming {
	return e.Descriptors.Preferred.Timing
}

// ProductName returns the text of the first product name descriptor.
func (e *ParsedEdid) ProductName() (string, bool) {
	return e.text(TagProductName)
}

// SerialString returns the text of the first product serial descriptor.
func (e *ParsedEdid) SerialString() (string, bool) {
	return e.text(TagProductSerial)
}

func (e *ParsedEdid) text(tag DescriptorTag) (string, bool) {
	for _, blk := range e.Descriptors.All() {
		if t, ok := blk.Descriptor.(*TextDescriptor); ok && t.Kind == tag {
			return t.Text, true
		}
	}
	return "", false
}

// RangeLimits returns the first display range limits descriptor, if any.
func (e *ParsedEdid) RangeLimits() *RangeLimitsDescriptor {
	for _, blk := range e.Descriptors.All() {
		if r, ok := blk.Descriptor.(*RangeLimitsDescriptor); ok {
			return r
		}
	}
	return nil
}

// Decode decodes an EDID base block with the default Options.
func Decode(b []byte) (*ParsedEdid, error) {
	return DecodeWithOptions(b, Options{})
}

// DecodeWithOptions decodes the first 128 bytes of b. Bytes past the base
// block are extension blocks and are only counted. Either a complete
// ParsedEdid or an error is returned, never both.
func DecodeWithOptions(b []byte, opts Options) (*ParsedEdid, error) {
	if err := checkLength(b); err != nil {
		return nil, err
	}
	if err := checkHeader(b); err != nil {
		return nil, err
	}

	d := newDecoder(b[:BlockLength], opts)
	e := &ParsedEdid{}
	var err error

	if e.VendorProduct, err = d.vendorProduct(); err != nil {
		return nil, err
	}
	if d.err != nil {
		return nil, d.err
	}
	e.Version = d.version()
	if e.BasicDisplay, err = d.basicDisplay(); err != nil {
		return nil, err
	}
	if d.err != nil {
		return nil, d.err
	}
	e.Color = d.color()
	e.EstablishedTimings = d.establishedTimings()
	if e.StandardTimings, err = d.standardTimings(); err != nil {
		return nil, err
	}
	if d.err != nil {
		return nil, d.err
	}
	if e.Descriptors, err = d.descriptors(e.Version); err != nil {
		return nil, err
	}
	if d.err != nil {
		return nil, d.err
	}

	e.ExtensionCount = d.b[0x7E]
	e.Checksum = d.b[0x7F]
	e.checksumValid = ChecksumValid(d.b)
	if !e.checksumValid {
		d.violationf(CodeChecksumMismatch, 0x7F, "checksum 0x%02X does not match, expected 0x%02X",
			e.Checksum, ComputeChecksum(d.b))
	}
	d.crossCheck(e)
	if d.err != nil {
		return nil, d.err
	}
	return e, nil
}

// crossCheck runs the checks that span several parts of the block.
func (d *decoder) crossCheck(e *ParsedEdid) {
	if !e.BasicDisplay.Features.ContinuousFrequency {
		return
	}
	if e.RangeLimits() == nil {
		d.warnf(CodeMissingRangeLimits, 0x18,
			"continuous frequency is set but no display range limits descriptor is present")
	}
}

// ChecksumValid reports whether the first 128 bytes of b sum to zero.
func ChecksumValid(b []byte) bool {
	if len(b) < BlockLength {
		return false
	}
	var sum byte
	for _, v := range b[:BlockLength] {
		sum += v
	}
	return sum == 0
}

// ComputeChecksum returns the value byte 0x7F must hold for the first 128
// bytes of b to sum to zero. b must hold at least 127 bytes.
func ComputeChecksum(b []byte) byte {
	var sum byte
	for _, v := range b[:BlockLength-1] {
		sum += v
	}
	return -sum
}

type decoder struct {
	b      []byte
	sink   Sink
	strict bool
	// err holds the first strict mode violation.
	err error
}

func newDecoder(b []byte, opts Options) *decoder {
	sink := opts.Sink
	if sink == nil {
		sink = SlogSink{}
	}
	return &decoder{b: b, sink: sink, strict: opts.Strict}
}

func (d *decoder) report(sev Severity, code DiagnosticCode, off int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.sink.Report(Diagnostic{Severity: sev, Code: code, Offset: off, Message: msg})
	if sev == SeverityViolation && d.strict && d.err == nil {
		d.err = &Error{Kind: KindStrictViolation, Offset: off, Code: code, Msg: msg}
	}
}

func (d *decoder) debugf(off int, format string, args ...interface{}) {
	d.report(SeverityDebug, CodeNone, off, format, args...)
}

func (d *decoder) warnf(code DiagnosticCode, off int, format string, args ...interface{}) {
	d.report(SeverityWarning, code, off, format, args...)
}

func (d *decoder) violationf(code DiagnosticCode, off int, format string, args ...interface{}) {
	d.report(SeverityViolation, code, off, format, args...)
}

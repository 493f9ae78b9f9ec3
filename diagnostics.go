package edid

import (
	"context"
	"fmt"
	"log/slog"
)

// Severity grades a non-fatal finding.
type Severity int8

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	// SeverityViolation marks data that breaks the standard but is emitted by
	// real hardware. Strict decoding turns these into errors.
	SeverityViolation
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityViolation:
		return "violation"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DiagnosticCode names the condition a Diagnostic reports.
type DiagnosticCode uint8

const (
	CodeNone DiagnosticCode = iota
	CodeChecksumMismatch
	CodeVersionUnsupported
	CodeManufacturerReservedBit
	CodeManufacturerUnknown
	CodeWeekOutOfRange
	CodeGammaZero
	CodeAspectRatioPrecision
	CodeStdTimingNonConformantUnused
	CodeStdTimingZeroPixels
	CodeStdTimingPadding
	CodePreferredNotTiming
	CodeDummyNotEmpty
	CodeReservedBits
	CodeContinuousFrequencyMismatch
	CodeMissingRangeLimits
	CodeRangeLimitZeroRate
	CodeDCMVersion
	CodeCVTVersion
	CodeWhitePointIndex
)

var diagnosticCodeLookup = map[DiagnosticCode]string{
	CodeNone:                         "none",
	CodeChecksumMismatch:             "checksum_mismatch",
	CodeVersionUnsupported:           "version_unsupported",
	CodeManufacturerReservedBit:      "manufacturer_reserved_bit",
	CodeManufacturerUnknown:          "manufacturer_unknown",
	CodeWeekOutOfRange:               "week_out_of_range",
	CodeGammaZero:                    "gamma_zero",
	CodeAspectRatioPrecision:         "aspect_ratio_precision",
	CodeStdTimingNonConformantUnused: "std_timing_nonconformant_unused",
	CodeStdTimingZeroPixels:          "std_timing_zero_pixels",
	CodeStdTimingPadding:             "std_timing_padding",
	CodePreferredNotTiming:           "preferred_not_timing",
	CodeDummyNotEmpty:                "dummy_not_empty",
	CodeReservedBits:                 "reserved_bits",
	CodeContinuousFrequencyMismatch:  "continuous_frequency_mismatch",
	CodeMissingRangeLimits:           "missing_range_limits",
	CodeRangeLimitZeroRate:           "range_limit_zero_rate",
	CodeDCMVersion:                   "dcm_version",
	CodeCVTVersion:                   "cvt_version",
	CodeWhitePointIndex:              "white_point_index",
}

func (c DiagnosticCode) String() string {
	if s, ok := diagnosticCodeLookup[c]; ok {
		return s
	}
	return fmt.Sprintf("code_%d", uint8(c))
}

func (c DiagnosticCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Diagnostic is a non-fatal finding produced while decoding.
type Diagnostic struct {
	Severity Severity
	Code     DiagnosticCode
	Offset   int
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s] 0x%02X: %s", d.Severity, d.Code, d.Offset, d.Message)
}

// Sink receives diagnostics. The decoder never prints on its own.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector keeps every diagnostic reported to it, in order.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Has reports whether a diagnostic with the given code was collected.
func (c *Collector) Has(code DiagnosticCode) bool {
	for _, d := range c.Diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Count returns how many diagnostics are at or above min.
func (c *Collector) Count(min Severity) int {
	n := 0
	for _, d := range c.Diagnostics {
		if d.Severity >= min {
			n++
		}
	}
	return n
}

// SlogSink forwards diagnostics to a structured logger.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Report(d Diagnostic) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), slogLevel(d.Severity), d.Message,
		slog.String("code", d.Code.String()),
		slog.Int("offset", d.Offset),
		slog.String("severity", d.Severity.String()),
	)
}

func slogLevel(s Severity) slog.Level {
	switch s {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

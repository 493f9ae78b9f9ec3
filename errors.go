package edid

import "fmt"

// ErrorKind identifies which structural rule an EDID violated.
type ErrorKind uint8

const (
	KindTooShort ErrorKind = iota + 1
	KindHeaderTooShort
	KindNoHeader
	KindIDBadValues
	KindCharOutOfBounds
	KindIDNoZeroesAllowed
	KindDigitalInterfaceReserved
	KindDescriptorUnexpectedHeader
	KindDescriptorUsedReservedKind
	KindAmbiguousDescriptor
	KindDescriptorNoFirstCVT
	KindRangeLimitsUsedReservedBits
	KindRangeLimitsUsedReservedVTSFlag
	KindRangeLimitsCVTReservedBits
	KindTryFromSlice
	KindArrayStringError
	KindBcdError
	KindStrictViolation
)

var errorKindLookup = map[ErrorKind]string{
	KindTooShort:                       "TooShort",
	KindHeaderTooShort:                 "HeaderTooShort",
	KindNoHeader:                       "NoHeader",
	KindIDBadValues:                    "IdBadValues",
	KindCharOutOfBounds:                "CharOutOfBounds",
	KindIDNoZeroesAllowed:              "IdNoZeroesAllowed",
	KindDigitalInterfaceReserved:       "DigitalInterfaceReserved",
	KindDescriptorUnexpectedHeader:     "DescriptorUnexpectedHeader",
	KindDescriptorUsedReservedKind:     "DescriptorUsedReservedKind",
	KindAmbiguousDescriptor:            "AmbiguousDescriptor",
	KindDescriptorNoFirstCVT:           "DescriptorNoFirstCvt",
	KindRangeLimitsUsedReservedBits:    "DescriptorRangeLimitsUsedReservedBits",
	KindRangeLimitsUsedReservedVTSFlag: "DescriptorRangeLimitsUsedReservedVTSFlag",
	KindRangeLimitsCVTReservedBits:     "DescriptorRangeLimitsCvtReservedBits",
	KindTryFromSlice:                   "TryFromSlice",
	KindArrayStringError:               "ArrayStringError",
	KindBcdError:                       "BcdError",
	KindStrictViolation:                "StrictViolation",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindLookup[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Error is returned for every hard decoding failure. Offset is the byte
// offset inside the base block where the problem was found, or -1.
type Error struct {
	Kind     ErrorKind
	Offset   int
	Got      int
	Expected int
	Value    byte
	Header   [5]byte
	Code     DiagnosticCode
	Msg      string
}

func (e *Error) Error() string {
	var s string
	switch e.Kind {
	case KindTooShort:
		s = fmt.Sprintf("edid: input too short (got %d bytes, expected %d)", e.Got, e.Expected)
	case KindHeaderTooShort:
		s = fmt.Sprintf("edid: header too short (got %d bytes, expected %d)", e.Got, e.Expected)
	case KindNoHeader:
		s = "edid: missing fixed header 00 FF FF FF FF FF FF 00"
	case KindIDBadValues:
		s = "edid: manufacturer id could not be split into 5-bit codes"
	case KindCharOutOfBounds:
		s = fmt.Sprintf("edid: manufacturer id code %d is not a letter", e.Value)
	case KindIDNoZeroesAllowed:
		s = "edid: manufacturer id contains a zero code"
	case KindDigitalInterfaceReserved:
		s = fmt.Sprintf("edid: reserved digital video interface code 0x%X", e.Value)
	case KindDescriptorUnexpectedHeader:
		s = fmt.Sprintf("edid: unexpected display descriptor header % X", e.Header[:])
	case KindDescriptorUsedReservedKind:
		s = fmt.Sprintf("edid: display descriptor uses reserved tag 0x%02X", e.Value)
	case KindAmbiguousDescriptor:
		s = fmt.Sprintf("edid: descriptor tag 0x%02X does not match its decoder", e.Value)
	case KindDescriptorNoFirstCVT:
		s = "edid: CVT 3 byte timing descriptor is missing its first code"
	case KindRangeLimitsUsedReservedBits:
		s = fmt.Sprintf("edid: range limits offset byte uses reserved bits (0x%02X)", e.Value)
	case KindRangeLimitsUsedReservedVTSFlag:
		s = fmt.Sprintf("edid: range limits uses reserved video timing support flag 0x%02X", e.Value)
	case KindRangeLimitsCVTReservedBits:
		s = fmt.Sprintf("edid: range limits CVT preferred aspect ratio is reserved (0x%02X)", e.Value)
	case KindTryFromSlice:
		s = fmt.Sprintf("edid: slice of %d bytes where %d were required", e.Got, e.Expected)
	case KindArrayStringError:
		s = "edid: string does not fit its bounded buffer"
	case KindBcdError:
		s = fmt.Sprintf("edid: 0x%02X is not a binary-coded decimal byte", e.Value)
	case KindStrictViolation:
		s = fmt.Sprintf("edid: strict mode violation (%s)", e.Code)
	default:
		s = "edid: " + e.Kind.String()
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Offset >= 0 && e.Kind != KindTooShort && e.Kind != KindHeaderTooShort {
		s += fmt.Sprintf(" at offset 0x%02X", e.Offset)
	}
	return s
}

// Is matches on Kind, so errors.Is(err, ErrNoHeader) works for any
// NoHeader error regardless of its details.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrTooShort                       = &Error{Kind: KindTooShort, Offset: -1}
	ErrHeaderTooShort                 = &Error{Kind: KindHeaderTooShort, Offset: -1}
	ErrNoHeader                       = &Error{Kind: KindNoHeader, Offset: -1}
	ErrIDBadValues                    = &Error{Kind: KindIDBadValues, Offset: -1}
	ErrCharOutOfBounds                = &Error{Kind: KindCharOutOfBounds, Offset: -1}
	ErrIDNoZeroesAllowed              = &Error{Kind: KindIDNoZeroesAllowed, Offset: -1}
	ErrDigitalInterfaceReserved       = &Error{Kind: KindDigitalInterfaceReserved, Offset: -1}
	ErrDescriptorUnexpectedHeader     = &Error{Kind: KindDescriptorUnexpectedHeader, Offset: -1}
	ErrDescriptorUsedReservedKind     = &Error{Kind: KindDescriptorUsedReservedKind, Offset: -1}
	ErrAmbiguousDescriptor            = &Error{Kind: KindAmbiguousDescriptor, Offset: -1}
	ErrDescriptorNoFirstCVT           = &Error{Kind: KindDescriptorNoFirstCVT, Offset: -1}
	ErrRangeLimitsUsedReservedBits    = &Error{Kind: KindRangeLimitsUsedReservedBits, Offset: -1}
	ErrRangeLimitsUsedReservedVTSFlag = &Error{Kind: KindRangeLimitsUsedReservedVTSFlag, Offset: -1}
	ErrRangeLimitsCVTReservedBits     = &Error{Kind: KindRangeLimitsCVTReservedBits, Offset: -1}
	ErrTryFromSlice                   = &Error{Kind: KindTryFromSlice, Offset: -1}
	ErrArrayStringError               = &Error{Kind: KindArrayStringError, Offset: -1}
	ErrBcdError                       = &Error{Kind: KindBcdError, Offset: -1}
	ErrStrictViolation                = &Error{Kind: KindStrictViolation, Offset: -1}
)

package edid

// ManufacturerID is the 3-letter PNP ID packed into bytes 0x08-0x09.
type ManufacturerID string

// Manufacturer carries the PNP ID and, when the registry knows it, the
// company name.
type Manufacturer struct {
	ID   ManufacturerID
	Name string `json:",omitempty" yaml:",omitempty"`
}

// String returns the registered name, falling back to the raw PNP ID.
func (m Manufacturer) String() string {
	if m.Name != "" {
		return m.Name
	}
	return string(m.ID)
}

// Resolved reports whether the PNP ID was found in the registry.
func (m Manufacturer) Resolved() bool {
	return m.Name != ""
}

type DateKind uint8

const (
	DateManufactured DateKind = iota
	DateModelYear
)

func (k DateKind) String() string {
	if k == DateModelYear {
		return "model year"
	}
	return "manufactured"
}

func (k DateKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Date is either a week/year of manufacture or a model year.
// Week is 0 when unspecified and always 0 for a model year.
type Date struct {
	Kind DateKind
	Week uint8 `json:",omitempty" yaml:",omitempty"`
	Year uint16
}

// HasWeek reports whether a week of manufacture is given.
func (d Date) HasWeek() bool {
	return d.Kind == DateManufactured && d.Week != 0
}

type VendorProductID struct {
	Manufacturer Manufacturer
	ProductCode  uint16
	// SerialNumber is nil when the EDID stores zero.
	SerialNumber *uint32 `json:",omitempty" yaml:",omitempty"`
	Date         Date
}

func (d *decoder) vendorProduct() (VendorProductID, error) {
	var v VendorProductID

	id, err := d.manufacturerID(d.b[0x08:0x0A])
	if err != nil {
		return v, err
	}
	v.Manufacturer.ID = id
	if name, ok := LookupManufacturer(string(id)); ok {
		if len(name) > MaxManufacturerNameLen {
			return v, &Error{Kind: KindArrayStringError, Offset: 0x08, Msg: string(id)}
		}
		v.Manufacturer.Name = name
	} else {
		d.report(SeverityInfo, CodeManufacturerUnknown, 0x08, "PNP ID %q is not in the registry", id)
	}

	v.ProductCode = le16(d.b[0x0A:0x0C])
	if serial := le32(d.b[0x0C:0x10]); serial != 0 {
		v.SerialNumber = &serial
	}

	week, year := d.b[0x10], uint16(d.b[0x11])+1990
	if week == 0xFF {
		v.Date = Date{Kind: DateModelYear, Year: year}
		return v, nil
	}
	if week > 54 {
		d.violationf(CodeWeekOutOfRange, 0x10, "week of manufacture %d is outside 1-54", week)
	}
	v.Date = Date{Kind: DateManufactured, Week: week, Year: year}
	return v, nil
}

// manufacturerID unpacks three 5-bit letters from a big-endian 16-bit value.
// Bit 15 is reserved.
func (d *decoder) manufacturerID(raw []byte) (ManufacturerID, error) {
	if len(raw) != 2 {
		return "", &Error{Kind: KindIDBadValues, Offset: 0x08, Got: len(raw), Expected: 2}
	}
	if bitSet(raw[0], 7) {
		d.violationf(CodeManufacturerReservedBit, 0x08, "reserved bit 7 of the manufacturer id is set")
	}
	codes := [3]byte{
		bitsOf(raw[0], 6, 2),
		bitsOf(raw[0], 1, 0)<<3 | bitsOf(raw[1], 7, 5),
		bitsOf(raw[1], 4, 0),
	}
	return decodeFiveBitASCII(codes)
}

func decodeFiveBitASCII(codes [3]byte) (ManufacturerID, error) {
	var s [3]byte
	for i, c := range codes {
		l, err := fiveBitLetter(c)
		if err != nil {
			return "", err
		}
		s[i] = l
	}
	return ManufacturerID(s[:]), nil
}

// fiveBitLetter maps 1..26 to 'A'..'Z'.
func fiveBitLetter(code byte) (byte, error) {
	switch {
	case code == 0:
		return 0, &Error{Kind: KindIDNoZeroesAllowed, Offset: 0x08}
	case code > 26:
		return 0, &Error{Kind: KindCharOutOfBounds, Offset: 0x08, Value: code}
	}
	return 'A' + code - 1, nil
}

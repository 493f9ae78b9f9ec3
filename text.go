package edid

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// TextDescriptor is one of the 13-byte string descriptors: product serial
// (0xFF), alphanumeric data string (0xFE) or product name (0xFC).
type TextDescriptor struct {
	Kind DescriptorTag
	// Text stops at the 0x0A terminator, with trailing padding removed.
	Text string
	// Raw is all 13 bytes, terminator and padding included.
	Raw string
}

func (t *TextDescriptor) Tag() DescriptorTag { return t.Kind }

func (t *TextDescriptor) String() string { return t.Text }

// decodeDescriptorText reads raw as Latin-1 and shows every byte past 7
// bits as '?'. A chain keeps state, so one is built per call.
func decodeDescriptorText(raw []byte) (string, error) {
	t := transform.Chain(
		charmap.ISO8859_1.NewDecoder(),
		runes.Map(func(r rune) rune {
			if r >= 0x80 {
				return '?'
			}
			return r
		}),
	)
	s, _, err := transform.String(t, string(raw))
	return s, err
}

func newTextDescriptor(d *decoder, w []byte, off int) (DisplayDescriptor, error) {
	raw, err := decodeDescriptorText(w[5:18])
	if err != nil {
		return nil, &Error{Kind: KindArrayStringError, Offset: off + 5, Msg: err.Error()}
	}
	text := raw
	if i := strings.IndexByte(text, 0x0A); i >= 0 {
		text = text[:i]
	}
	return &TextDescriptor{
		Kind: DescriptorTag(w[3]),
		Text: strings.TrimRight(text, " "),
		Raw:  raw,
	}, nil
}

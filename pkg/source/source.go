// Package source loads EDID bytes from files, hex dumps and the Linux DRM
// sysfs tree.
package source

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zstd"

	edid "github.com/thyge/edidparse"
)

// ErrEmpty is returned when a file or hex dump holds no bytes.
var ErrEmpty = errors.New("source: no EDID bytes")

const edidDecodeMarker = "edid-decode (hex):"

// zstd.Decoder.DecodeAll may be called concurrently.
var zstdDecoder, _ = zstd.NewReader(nil)

// ReadFile returns the EDID bytes stored at path.
//
// .bin files are raw. .txt and .hex files are hex dumps. A .zst suffix is
// stripped after decompression and the inner extension decides. Any other
// extension is raw when it starts with the EDID header and a hex dump
// otherwise, which covers the extension-less files of the linuxhw corpus.
func ReadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".zst" {
		if raw, err = Decompress(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}

	var b []byte
	switch {
	case ext == ".bin":
		b = raw
	case ext == ".txt", ext == ".hex":
		b, err = ParseHex(string(raw))
	case edid.HasHeader(raw):
		b = raw
	default:
		b, err = ParseHex(string(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return b, nil
}

// Decompress inflates a zstd frame.
func Decompress(b []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(b, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}

// ParseHex decodes a hex dump, ignoring all whitespace. When the text holds
// an edid-decode "(hex):" section only the hex rows following it are read.
func ParseHex(s string) ([]byte, error) {
	if i := strings.Index(s, edidDecodeMarker); i >= 0 {
		s = hexRows(s[i+len(edidDecodeMarker):])
	}
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return nil, ErrEmpty
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return b, nil
}

// hexRows collects lines up to the first one that is neither blank nor hex.
func hexRows(s string) string {
	var sb strings.Builder
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !isHexRow(line) {
			break
		}
		sb.WriteString(line)
		sb.WriteByte(' ')
	}
	return sb.String()
}

func isHexRow(line string) bool {
	for _, r := range line {
		if r == ' ' || r == '\t' || unicode.Is(unicode.ASCII_Hex_Digit, r) {
			continue
		}
		return false
	}
	return true
}

// Dump writes b as upper-case hex, 16 bytes per row.
func Dump(w io.Writer, b []byte) error {
	var buf bytes.Buffer
	for i, c := range b {
		fmt.Fprintf(&buf, "%02X", c)
		switch {
		case i == len(b)-1, i%16 == 15:
			buf.WriteByte('\n')
		default:
			buf.WriteByte(' ')
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

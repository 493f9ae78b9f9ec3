package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block() []byte {
	b := make([]byte, 128)
	copy(b, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x10, 0xAC})
	for i := 10; i < 127; i++ {
		b[i] = byte(i)
	}
	return b
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func TestParseHex(t *testing.T) {
	b, err := ParseHex("00 ff ff ff\r\n ff ff ff 00\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}, b)

	_, err = ParseHex(" \n\t")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ParseHex("00 fg")
	assert.Error(t, err)
}

func TestParseHexEdidDecode(t *testing.T) {
	in := `edid-decode (hex):

00 ff ff ff ff ff ff 00 10 ac
a0 a0

02 03

----------------

Block 0, Base EDID:
  EDID Structure Version & Revision: 1.4
`
	b, err := ParseHex(in)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x10, 0xAC, 0xA0, 0xA0, 0x02, 0x03}, b)
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, block()[:18]))
	assert.Equal(t,
		"00 FF FF FF FF FF FF 00 10 AC 0A 0B 0C 0D 0E 0F\n10 11\n",
		buf.String())

	b, err := ParseHex(buf.String())
	require.NoError(t, err)
	assert.Equal(t, block()[:18], b)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	raw := block()
	var dump bytes.Buffer
	require.NoError(t, Dump(&dump, raw))

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"bin", "a.bin", raw},
		{"txt", "a.txt", dump.Bytes()},
		{"hex", "a.HEX", dump.Bytes()},
		{"bin zst", "b.bin.zst", compress(t, raw)},
		{"txt zst", "b.txt.zst", compress(t, dump.Bytes())},
		{"no extension raw", "DEL/DELA0A5/raw", raw},
		{"no extension hex", "DEL/DELA0A5/text", append([]byte("edid-decode (hex):\n\n"), dump.Bytes()...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ReadFile(writeFile(t, dir, tt.file, tt.data))
			require.NoError(t, err)
			assert.Equal(t, raw, b)
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.bin"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadFile(writeFile(t, dir, "empty.bin", nil))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ReadFile(writeFile(t, dir, "bad.zst", []byte("not zstd")))
	assert.ErrorContains(t, err, "zstd decode")

	_, err = ReadFile(writeFile(t, dir, "bad.txt", []byte("zz")))
	assert.ErrorContains(t, err, "parse hex")
}

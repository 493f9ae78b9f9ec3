package edid

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := &Collector{}
	c.Report(Diagnostic{Severity: SeverityDebug, Code: CodeNone})
	c.Report(Diagnostic{Severity: SeverityWarning, Code: CodeDCMVersion})
	c.Report(Diagnostic{Severity: SeverityViolation, Code: CodeGammaZero})
	assert.True(t, c.Has(CodeDCMVersion))
	assert.False(t, c.Has(CodeCVTVersion))
	assert.Equal(t, 2, c.Count(SeverityWarning))
	assert.Equal(t, 1, c.Count(SeverityViolation))
	assert.Equal(t, 3, c.Count(SeverityDebug))
}

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	raw := dellS2417DG()
	raw[0x7F]++
	_, err := DecodeWithOptions(raw, Options{Sink: SlogSink{Logger: logger}})
	require.NoError(t, err)

	var found bool
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &rec))
		if rec["code"] == "checksum_mismatch" {
			found = true
			assert.Equal(t, "WARN", rec["level"])
			assert.Equal(t, "violation", rec["severity"])
			assert.Equal(t, float64(0x7F), rec["offset"])
		}
	}
	assert.True(t, found)
}

func TestSinkFunc(t *testing.T) {
	var got []Diagnostic
	_, err := DecodeWithOptions(dellS2417DG(), Options{Sink: SinkFunc(func(d Diagnostic) {
		got = append(got, d)
	})})
	require.NoError(t, err)
	for _, d := range got {
		assert.Equal(t, SeverityDebug, d.Severity)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "edid: input too short (got 5 bytes, expected 128)",
		(&Error{Kind: KindTooShort, Got: 5, Expected: 128, Offset: -1}).Error())
	assert.Equal(t, "edid: display descriptor uses reserved tag 0x20 at offset 0x5D",
		(&Error{Kind: KindDescriptorUsedReservedKind, Value: 0x20, Offset: 0x5D}).Error())
	assert.Equal(t, "edid: strict mode violation (gamma_zero): bad gamma at offset 0x17",
		(&Error{Kind: KindStrictViolation, Code: CodeGammaZero, Msg: "bad gamma", Offset: 0x17}).Error())
	assert.Equal(t, "DescriptorNoFirstCvt", KindDescriptorNoFirstCVT.String())
	assert.Equal(t, "ErrorKind(200)", ErrorKind(200).String())

	text, err := SeverityViolation.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "violation", string(text))
	assert.Equal(t, "warning [dcm_version] 0x5F: v2", Diagnostic{SeverityWarning, CodeDCMVersion, 0x5F, "v2"}.String())
}

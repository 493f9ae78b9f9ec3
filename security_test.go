package edid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Malformed input must produce errors, never panics.

func TestDecodeTruncatedNoPanic(t *testing.T) {
	raw := dellS2417DG()
	for n := 0; n <= len(raw); n++ {
		require.NotPanics(t, func() {
			_, _ = DecodeWithOptions(raw[:n], Options{Sink: Discard})
		}, "length %d", n)
	}
}

func TestDecodeMutatedNoPanic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		raw := dellS2417DG()
		for j := 0; j < 1+rng.Intn(16); j++ {
			raw[8+rng.Intn(len(raw)-8)] = byte(rng.Intn(256))
		}
		strict := i%2 == 0
		require.NotPanics(t, func() {
			e, err := DecodeWithOptions(raw, Options{Sink: Discard, Strict: strict})
			assert.True(t, (e == nil) != (err == nil))
		})
	}
}

func TestDecodeRandomDescriptorsNoPanic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		raw := dellS2417DG()
		// descriptor header with a random tag and random body
		for n := 1; n < 4; n++ {
			at := 0x36 + 18*n
			raw[at], raw[at+1], raw[at+2], raw[at+4] = 0, 0, 0, 0
			raw[at+3] = byte(0xF7 + rng.Intn(9))
			for k := 5; k < 18; k++ {
				raw[at+k] = byte(rng.Intn(256))
			}
		}
		withChecksum(raw)
		require.NotPanics(t, func() {
			_, _ = DecodeWithOptions(raw, Options{Sink: Discard})
		})
	}
}

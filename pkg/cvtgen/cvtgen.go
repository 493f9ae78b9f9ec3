// Package cvtgen computes VESA Coordinated Video Timings and expands the CVT
// 3 byte codes found in an EDID into detailed timings.
package cvtgen

import (
	"errors"
	"fmt"
	"math"

	edid "github.com/thyge/edidparse"
)

type CVTTimingType byte

const (
	CVT     CVTTimingType = 0
	CVT_RB  CVTTimingType = 1
	CVT_RB2 CVTTimingType = 3
)

var timingTypeLookup = map[CVTTimingType]string{
	CVT:     "CVT",
	CVT_RB:  "CVT-RB",
	CVT_RB2: "CVT-RB2",
}

func (t CVTTimingType) String() string {
	if s, ok := timingTypeLookup[t]; ok {
		return s
	}
	return fmt.Sprintf("CVTTimingType(%d)", byte(t))
}

func (t CVTTimingType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

type timingConstraints struct {
	clockStep   float64 // MHz
	hBlank      int     // reduced blanking only
	hBackPorch  int
	hSync       int
	minVBlank   float64 // us
	vFrontPorch int
	// fixed vsync width, 0 when it follows the aspect ratio
	vSync int
}

var timingLookup = map[CVTTimingType]timingConstraints{
	CVT: {
		clockStep:   0.25,
		minVBlank:   550,
		vFrontPorch: 3,
	},
	CVT_RB: {
		clockStep:   0.25,
		hBlank:      160,
		hBackPorch:  80,
		hSync:       32,
		minVBlank:   460,
		vFrontPorch: 3,
	},
	CVT_RB2: {
		clockStep:   0.001,
		hBlank:      80,
		hBackPorch:  40,
		hSync:       32,
		minVBlank:   460,
		vFrontPorch: 1,
		vSync:       8,
	},
}

const (
	cellGran   = 8.0
	marginPer  = 1.8 // percent
	minVBPorch = 6
	hSyncPer   = 8.0 // percent, standard blanking
	// blanking formula gradient and offset, already scaled by K and J
	cPrime = 30.0
	mPrime = 300.0
)

// Mode is a timing request.
type Mode struct {
	Width      int
	Height     int
	RefreshHz  float64
	Interlaced bool
	Margins    bool
	Type       CVTTimingType
	// Aspect picks the vsync width. Zero means Width:Height.
	Aspect edid.Ratio
}

func (m Mode) String() string {
	s := fmt.Sprintf("%dx%d @ %g Hz %s", m.Width, m.Height, m.RefreshHz, m.Type)
	if m.Interlaced {
		s += " interlaced"
	}
	return s
}

var ErrBadMode = errors.New("cvtgen: mode out of range")

// vSyncWidth is the vsync width CVT uses to signal the aspect ratio.
func vSyncWidth(w, h int) int {
	switch {
	case h == 0:
		return 10
	case w*3 == h*4:
		return 4
	case w*9 == h*16:
		return 5
	case w*10 == h*16:
		return 6
	case w*4 == h*5, w*9 == h*15:
		return 7
	default:
		return 10
	}
}

// Generate computes the timing for m. The pixel clock is rounded to the
// 10 kHz resolution of a detailed timing.
func Generate(m Mode) (*edid.DetailedTiming, error) {
	tc, ok := timingLookup[m.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown timing type %d", ErrBadMode, m.Type)
	}
	if m.Width < cellGran || m.Height < 2 || m.RefreshHz <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrBadMode, m)
	}

	vFieldRate := m.RefreshHz
	if m.Interlaced {
		vFieldRate *= 2
	}
	hPixels := math.Floor(float64(m.Width)/cellGran) * cellGran
	var leftMargin float64
	if m.Margins {
		leftMargin = math.Floor(hPixels*marginPer/100/cellGran) * cellGran
	}
	totalActivePixels := hPixels + 2*leftMargin

	vLines := float64(m.Height)
	var interlace float64
	if m.Interlaced {
		vLines = math.Floor(vLines / 2)
		interlace = 0.5
	}
	var topMargin float64
	if m.Margins {
		topMargin = math.Floor(vLines * marginPer / 100)
	}

	vSync := tc.vSync
	if vSync == 0 {
		vSync = vSyncWidth(m.Width, m.Height)
		if m.Aspect.Vertical != 0 {
			vSync = vSyncWidth(int(m.Aspect.Horizontal), int(m.Aspect.Vertical))
		}
	}

	var (
		hBlank, hSync, hBackPorch float64
		vBlank, pixelFreq         float64
	)
	if m.Type == CVT {
		hPeriodEst := ((1/vFieldRate)-tc.minVBlank/1e6) /
			(vLines + 2*topMargin + float64(tc.vFrontPorch) + interlace) * 1e6
		vSyncBP := math.Floor(tc.minVBlank/hPeriodEst) + 1
		vSyncBP = math.Max(vSyncBP, float64(vSync+minVBPorch))
		vBlank = vSyncBP + float64(tc.vFrontPorch)

		dutyCycle := math.Max(cPrime-mPrime*hPeriodEst/1000, 20)
		hBlank = math.Floor(totalActivePixels*dutyCycle/(100-dutyCycle)/(2*cellGran)) * (2 * cellGran)
		totalPixels := totalActivePixels + hBlank
		pixelFreq = tc.clockStep * math.Floor(totalPixels/hPeriodEst/tc.clockStep)
		hSync = math.Floor(hSyncPer/100*totalPixels/cellGran) * cellGran
		hBackPorch = hBlank / 2
	} else {
		hPeriodEst := (1e6/vFieldRate - tc.minVBlank) / (vLines + 2*topMargin)
		vbiLines := math.Floor(tc.minVBlank/hPeriodEst) + 1
		vBlank = math.Max(vbiLines, float64(tc.vFrontPorch+vSync+minVBPorch))
		totalVLines := vBlank + vLines + 2*topMargin + interlace

		hBlank = float64(tc.hBlank)
		totalPixels := hBlank + totalActivePixels
		pixelFreq = tc.clockStep * math.Floor(vFieldRate*totalVLines*totalPixels/1e6/tc.clockStep)
		hSync = float64(tc.hSync)
		hBackPorch = float64(tc.hBackPorch)
	}

	clock := math.Round(pixelFreq * 100)
	if clock < 1 || clock > math.MaxUint16 || totalActivePixels > 4095 || vLines > 4095 {
		return nil, fmt.Errorf("%w: %s does not fit a detailed timing", ErrBadMode, m)
	}

	t := &edid.DetailedTiming{
		PixelClock:               uint16(clock),
		HorizontalActive:         uint16(totalActivePixels),
		HorizontalBlanking:       uint16(hBlank),
		HorizontalFrontPorch:     uint16(hBlank - hSync - hBackPorch),
		HorizontalSyncPulseWidth: uint16(hSync),
		VerticalActive:           uint16(vLines),
		VerticalBlanking:         uint16(vBlank),
		VerticalFrontPorch:       uint16(tc.vFrontPorch),
		VerticalSyncPulseWidth:   uint16(vSync),
		HorizontalBorder:         uint8(leftMargin),
		VerticalBorder:           uint8(topMargin),
		Interlaced:               m.Interlaced,
	}
	// Standard blanking is signalled by -hsync +vsync, reduced blanking by
	// +hsync -vsync.
	kind := edid.SyncDigitalSeparatePosVNegH
	if m.Type != CVT {
		kind = edid.SyncDigitalSeparateNegVPosH
	}
	t.Sync = edid.SyncSignal{Digital: &edid.DigitalSync{Kind: kind}}
	return t, nil
}

// Generated is a timing computed for a CVT code.
type Generated struct {
	Mode   Mode
	Timing *edid.DetailedTiming
}

// FromCode lists the modes a CVT 3 byte code declares support for. The
// preferred rate comes first when it is among the supported ones.
func FromCode(c edid.CVTTimingCode) []Mode {
	height := int(c.AddressableLines())
	ar := c.AspectRatio.Ratio()
	width := height * int(ar.Horizontal) / int(ar.Vertical)

	rates := []struct {
		hz edid.CVTRate
		ok bool
	}{
		{edid.CVTRate50, c.SupportedRates.Hz50},
		{edid.CVTRate60, c.SupportedRates.Hz60},
		{edid.CVTRate75, c.SupportedRates.Hz75},
		{edid.CVTRate85, c.SupportedRates.Hz85},
	}
	var modes []Mode
	for _, r := range rates {
		if !r.ok {
			continue
		}
		m := Mode{Width: width, Height: height, RefreshHz: float64(r.hz), Type: CVT, Aspect: ar}
		if r.hz == c.PreferredRate {
			modes = append([]Mode{m}, modes...)
		} else {
			modes = append(modes, m)
		}
	}
	if c.SupportedRates.Hz60Reduced {
		modes = append(modes, Mode{Width: width, Height: height, RefreshHz: 60, Type: CVT_RB, Aspect: ar})
	}
	return modes
}

// Expand generates a timing for every mode of every CVT 3 byte code in e.
// Modes that do not fit a detailed timing are left out.
func Expand(e *edid.ParsedEdid) []Generated {
	var out []Generated
	for _, blk := range e.Descriptors.All() {
		cd, ok := blk.Descriptor.(*edid.CVTDescriptor)
		if !ok {
			continue
		}
		for _, c := range cd.Codes {
			if c == nil {
				continue
			}
			for _, m := range FromCode(*c) {
				t, err := Generate(m)
				if err != nil {
					continue
				}
				out = append(out, Generated{Mode: m, Timing: t})
			}
		}
	}
	return out
}

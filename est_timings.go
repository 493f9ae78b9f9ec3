package edid

import "fmt"

// EstablishedMode is one fixed legacy video mode.
type EstablishedMode struct {
	Width      uint16
	Height     uint16
	RefreshHz  uint8
	Interlaced bool
	Reduced    bool
}

func (m EstablishedMode) String() string {
	s := fmt.Sprintf("%d×%d @ %d Hz", m.Width, m.Height, m.RefreshHz)
	if m.Interlaced {
		s += ", interlaced"
	}
	if m.Reduced {
		s += " (reduced blanking)"
	}
	return s
}

// EstablishedTiming names one bit of the established timings bytes
// (0x23-0x25) or of an Established Timings III descriptor.
type EstablishedTiming uint8

const (
	ET_720_400_70 EstablishedTiming = iota
	ET_720_400_88
	ET_640_480_60
	ET_640_480_67
	ET_640_480_72
	ET_640_480_75
	ET_800_600_56
	ET_800_600_60
	ET_800_600_72
	ET_800_600_75
	ET_832_624_75
	ET_1024_768_87i
	ET_1024_768_60
	ET_1024_768_70
	ET_1024_768_75
	ET_1280_1024_75
	ET_1152_870_75

	ET_640_350_85
	ET_640_400_85
	ET_720_400_85
	ET_640_480_85
	ET_848_480_60
	ET_800_600_85
	ET_1024_768_85
	ET_1152_864_75
	ET_1280_768_60R
	ET_1280_768_60
	ET_1280_768_75
	ET_1280_768_85
	ET_1280_960_60
	ET_1280_960_85
	ET_1280_1024_60
	ET_1280_1024_85
	ET_1360_768_60
	ET_1440_900_60R
	ET_1440_900_60
	ET_1440_900_75
	ET_1440_900_85
	ET_1400_1050_60R
	ET_1400_1050_60
	ET_1400_1050_75
	ET_1400_1050_85
	ET_1680_1050_60R
	ET_1680_1050_60
	ET_1680_1050_75
	ET_1680_1050_85
	ET_1600_1200_60
	ET_1600_1200_65
	ET_1600_1200_70
	ET_1600_1200_75
	ET_1600_1200_85
	ET_1792_1344_60
	ET_1792_1344_75
	ET_1856_1392_60
	ET_1856_1392_75
	ET_1920_1200_60R
	ET_1920_1200_60
	ET_1920_1200_75
	ET_1920_1200_85
	ET_1920_1440_60
	ET_1920_1440_75
)

// Timings are listed in bit order, most significant bit of the first byte
// first. Each run of eight is one byte.
var estTimingLookup = [...]EstablishedMode{
	ET_720_400_70:   {Width: 720, Height: 400, RefreshHz: 70},
	ET_720_400_88:   {Width: 720, Height: 400, RefreshHz: 88},
	ET_640_480_60:   {Width: 640, Height: 480, RefreshHz: 60},
	ET_640_480_67:   {Width: 640, Height: 480, RefreshHz: 67},
	ET_640_480_72:   {Width: 640, Height: 480, RefreshHz: 72},
	ET_640_480_75:   {Width: 640, Height: 480, RefreshHz: 75},
	ET_800_600_56:   {Width: 800, Height: 600, RefreshHz: 56},
	ET_800_600_60:   {Width: 800, Height: 600, RefreshHz: 60},
	ET_800_600_72:   {Width: 800, Height: 600, RefreshHz: 72},
	ET_800_600_75:   {Width: 800, Height: 600, RefreshHz: 75},
	ET_832_624_75:   {Width: 832, Height: 624, RefreshHz: 75},
	ET_1024_768_87i: {Width: 1024, Height: 768, RefreshHz: 87, Interlaced: true},
	ET_1024_768_60:  {Width: 1024, Height: 768, RefreshHz: 60},
	ET_1024_768_70:  {Width: 1024, Height: 768, RefreshHz: 70},
	ET_1024_768_75:  {Width: 1024, Height: 768, RefreshHz: 75},
	ET_1280_1024_75: {Width: 1280, Height: 1024, RefreshHz: 75},
	ET_1152_870_75:  {Width: 1152, Height: 870, RefreshHz: 75},

	ET_640_350_85:    {Width: 640, Height: 350, RefreshHz: 85},
	ET_640_400_85:    {Width: 640, Height: 400, RefreshHz: 85},
	ET_720_400_85:    {Width: 720, Height: 400, RefreshHz: 85},
	ET_640_480_85:    {Width: 640, Height: 480, RefreshHz: 85},
	ET_848_480_60:    {Width: 848, Height: 480, RefreshHz: 60},
	ET_800_600_85:    {Width: 800, Height: 600, RefreshHz: 85},
	ET_1024_768_85:   {Width: 1024, Height: 768, RefreshHz: 85},
	ET_1152_864_75:   {Width: 1152, Height: 864, RefreshHz: 75},
	ET_1280_768_60R:  {Width: 1280, Height: 768, RefreshHz: 60, Reduced: true},
	ET_1280_768_60:   {Width: 1280, Height: 768, RefreshHz: 60},
	ET_1280_768_75:   {Width: 1280, Height: 768, RefreshHz: 75},
	ET_1280_768_85:   {Width: 1280, Height: 768, RefreshHz: 85},
	ET_1280_960_60:   {Width: 1280, Height: 960, RefreshHz: 60},
	ET_1280_960_85:   {Width: 1280, Height: 960, RefreshHz: 85},
	ET_1280_1024_60:  {Width: 1280, Height: 1024, RefreshHz: 60},
	ET_1280_1024_85:  {Width: 1280, Height: 1024, RefreshHz: 85},
	ET_1360_768_60:   {Width: 1360, Height: 768, RefreshHz: 60},
	ET_1440_900_60R:  {Width: 1440, Height: 900, RefreshHz: 60, Reduced: true},
	ET_1440_900_60:   {Width: 1440, Height: 900, RefreshHz: 60},
	ET_1440_900_75:   {Width: 1440, Height: 900, RefreshHz: 75},
	ET_1440_900_85:   {Width: 1440, Height: 900, RefreshHz: 85},
	ET_1400_1050_60R: {Width: 1400, Height: 1050, RefreshHz: 60, Reduced: true},
	ET_1400_1050_60:  {Width: 1400, Height: 1050, RefreshHz: 60},
	ET_1400_1050_75:  {Width: 1400, Height: 1050, RefreshHz: 75},
	ET_1400_1050_85:  {Width: 1400, Height: 1050, RefreshHz: 85},
	ET_1680_1050_60R: {Width: 1680, Height: 1050, RefreshHz: 60, Reduced: true},
	ET_1680_1050_60:  {Width: 1680, Height: 1050, RefreshHz: 60},
	ET_1680_1050_75:  {Width: 1680, Height: 1050, RefreshHz: 75},
	ET_1680_1050_85:  {Width: 1680, Height: 1050, RefreshHz: 85},
	ET_1600_1200_60:  {Width: 1600, Height: 1200, RefreshHz: 60},
	ET_1600_1200_65:  {Width: 1600, Height: 1200, RefreshHz: 65},
	ET_1600_1200_70:  {Width: 1600, Height: 1200, RefreshHz: 70},
	ET_1600_1200_75:  {Width: 1600, Height: 1200, RefreshHz: 75},
	ET_1600_1200_85:  {Width: 1600, Height: 1200, RefreshHz: 85},
	ET_1792_1344_60:  {Width: 1792, Height: 1344, RefreshHz: 60},
	ET_1792_1344_75:  {Width: 1792, Height: 1344, RefreshHz: 75},
	ET_1856_1392_60:  {Width: 1856, Height: 1392, RefreshHz: 60},
	ET_1856_1392_75:  {Width: 1856, Height: 1392, RefreshHz: 75},
	ET_1920_1200_60R: {Width: 1920, Height: 1200, RefreshHz: 60, Reduced: true},
	ET_1920_1200_60:  {Width: 1920, Height: 1200, RefreshHz: 60},
	ET_1920_1200_75:  {Width: 1920, Height: 1200, RefreshHz: 75},
	ET_1920_1200_85:  {Width: 1920, Height: 1200, RefreshHz: 85},
	ET_1920_1440_60:  {Width: 1920, Height: 1440, RefreshHz: 60},
	ET_1920_1440_75:  {Width: 1920, Height: 1440, RefreshHz: 75},
}

// Mode returns the video mode the timing stands for.
func (et EstablishedTiming) Mode() EstablishedMode {
	if int(et) >= len(estTimingLookup) {
		return EstablishedMode{}
	}
	return estTimingLookup[et]
}

func (et EstablishedTiming) String() string {
	if int(et) >= len(estTimingLookup) {
		return fmt.Sprintf("EstablishedTiming(%d)", uint8(et))
	}
	return estTimingLookup[et].String()
}

func (et EstablishedTiming) MarshalText() ([]byte, error) {
	return []byte(et.String()), nil
}

// collectTimings walks raw most significant bit first and returns the
// timing for every set bit, starting from first. Only the top n bits are
// looked at.
func collectTimings(raw []byte, first EstablishedTiming, n int) []EstablishedTiming {
	var out []EstablishedTiming
	for i := 0; i < n; i++ {
		if bitSet(raw[i/8], uint(7-i%8)) {
			out = append(out, first+EstablishedTiming(i))
		}
	}
	return out
}

func hasTiming(list []EstablishedTiming, et EstablishedTiming) bool {
	for _, t := range list {
		if t == et {
			return true
		}
	}
	return false
}

type EstablishedTimings struct {
	Supported []EstablishedTiming
	// ManufacturerReserved holds bits 6-0 of byte 0x25.
	ManufacturerReserved uint8
}

// Has reports whether et is advertised.
func (t EstablishedTimings) Has(et EstablishedTiming) bool {
	return hasTiming(t.Supported, et)
}

func (d *decoder) establishedTimings() EstablishedTimings {
	return EstablishedTimings{
		Supported:            collectTimings(d.b[0x23:0x26], ET_720_400_70, 17),
		ManufacturerReserved: bitsOf(d.b[0x25], 6, 0),
	}
}

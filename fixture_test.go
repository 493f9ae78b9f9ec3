package edid

// dellS2417DG builds a base block modelled on a Dell S2417DG with a
// correct checksum. Range limit rates are stored as BCD.
func dellS2417DG() []byte {
	b := []byte{
		// header
		0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00,
		// DEL, product 41191, serial 1, week 28 of 2018
		0x10, 0xAC, 0xE7, 0xA0, 0x01, 0x00, 0x00, 0x00, 0x1C, 0x1C,
		// version 1.4
		0x01, 0x04,
		// digital 8 bpc DisplayPort, 53x30 cm, gamma 2.2, features
		0xA5, 0x35, 0x1E, 0x78, 0x3A,
		// color characteristics
		0xEE, 0x91, 0xA3, 0x54, 0x4C, 0x99, 0x26, 0x0F, 0x50, 0x54,
		// established timings
		0x21, 0x08, 0x00,
		// standard timings: 1920x1080@60, 1280x720@60, six unused
		0xD1, 0xC0, 0x81, 0xC0, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		// preferred timing 2560x1440
		0x56, 0x5E, 0x00, 0xA0, 0xA0, 0xA0, 0x29, 0x50, 0x30, 0x20,
		0x35, 0x00, 0x0F, 0x28, 0x21, 0x00, 0x00, 0x1A,
		// product serial
		0x00, 0x00, 0x00, 0xFF, 0x00, 'A', '0', '1', '2', '3',
		'4', '5', '6', '7', '8', '9', 0x0A, 0x20,
		// range limits, limits only
		0x00, 0x00, 0x00, 0xFD, 0x00, 0x50, 0x75, 0x30, 0x90, 0x25,
		0x01, 0x0A, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
		// product name
		0x00, 0x00, 0x00, 0xFC, 0x00, 'D', 'E', 'L', 'L', ' ',
		'S', '2', '4', '1', '7', 'D', 'G', 0x0A,
		// one extension, checksum
		0x01, 0x00,
	}
	return withChecksum(b)
}

// withChecksum fixes byte 0x7F in place and returns b.
func withChecksum(b []byte) []byte {
	b[0x7F] = ComputeChecksum(b)
	return b
}

// setBlock overwrites the n-th 18-byte block (0-3) and fixes the checksum.
func setBlock(b []byte, n int, block []byte) []byte {
	copy(b[0x36+18*n:], block)
	return withChecksum(b)
}

// descriptorBlock builds a display descriptor with the given tag and body.
func descriptorBlock(tag byte, body ...byte) []byte {
	w := make([]byte, 18)
	w[3] = tag
	copy(w[5:], body)
	return w
}

// testDecoder returns a decoder over a zeroed base block with a collector.
func testDecoder() (*decoder, *Collector) {
	c := &Collector{}
	return newDecoder(make([]byte, BlockLength), Options{Sink: c}), c
}

package seedphrase

// bitCursor walks a seed buffer one bit at a time, most significant bit
// first. It isolates the bit-index arithmetic shared by encoding and
// decoding: an off-by-one here silently corrupts every seed.
type bitCursor struct {
	buf *Seed
	pos int // absolute bit offset from the start of the buffer
}

// readBits consumes the next n bits and assembles them MSB-first into an
// unsigned word index.
func (c *bitCursor) readBits(n int) int {
	v := 0
	for i := 0; i < n; i++ {
		if c.buf[c.pos/8]&(1<<(7-c.pos%8)) != 0 {
			v |= 1 << (n - i - 1)
		}
		c.pos++
	}
	return v
}

// writeBits appends the low n bits of v to the buffer, MSB-first.
func (c *bitCursor) writeBits(n, v int) {
	for i := 0; i < n; i++ {
		if v&(1<<(n-i-1)) != 0 {
			c.buf[c.pos/8] |= 1 << (7 - c.pos%8)
		}
		c.pos++
	}
}

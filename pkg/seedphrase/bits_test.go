package seedphrase

import "testing"

func TestBitCursor_RoundTrip(t *testing.T) {
	indices := []int{1023, 0, 512, 1, 682, 341, 1000, 77, 999, 128, 256, 3, 200}

	var seed Seed
	w := bitCursor{buf: &seed}
	for i, v := range indices {
		bits := 10
		if i == len(indices)-1 {
			bits = 8
			v &= 0xff
		}
		w.writeBits(bits, v)
	}

	r := bitCursor{buf: &seed}
	for i, v := range indices {
		bits := 10
		if i == len(indices)-1 {
			bits = 8
			v &= 0xff
		}
		if got := r.readBits(bits); got != v {
			t.Errorf("readBits(%d) at word %d = %d, want %d", bits, i, got, v)
		}
	}
}

func TestBitCursor_MSBFirst(t *testing.T) {
	// Writing 10 one-bits must set the first byte and the top two bits of
	// the second.
	var seed Seed
	w := bitCursor{buf: &seed}
	w.writeBits(10, 0x3ff)

	if seed[0] != 0xff || seed[1] != 0xc0 {
		t.Errorf("buffer = %02x %02x, want ff c0", seed[0], seed[1])
	}

	r := bitCursor{buf: &seed}
	if got := r.readBits(10); got != 0x3ff {
		t.Errorf("readBits(10) = %#x, want 0x3ff", got)
	}
}

func TestBitCursor_ByteBoundary(t *testing.T) {
	// Value 1 in 10 bits lands its low bit in the second byte.
	var seed Seed
	w := bitCursor{buf: &seed}
	w.writeBits(10, 1)

	if seed[0] != 0x00 || seed[1] != 0x40 {
		t.Errorf("buffer = %02x %02x, want 00 40", seed[0], seed[1])
	}
}

package encio

// Bits are packed in a least-significant-bit to most-significant-bit order;
// bit i is stored in bit i%8 of byte i/8. Unused bits of the final byte are zero.

// PackBits packs bits into dst, which must be at least PackedLen(len(bits)) bytes long.
func PackBits(dst []byte, bits []bool) {
	for i := range dst[:PackedLen(len(bits))] {
		dst[i] = 0
	}
	for i, bit := range bits {
		if bit {
			dst[i/8] |= 1 << (i % 8)
		}
	}
}

// UnpackBits fills dst with the first len(dst) bits packed in src.
// src must be at least PackedLen(len(dst)) bytes long. Bits past len(dst) are ignored.
func UnpackBits(dst []bool, src []byte) {
	for i := range dst {
		dst[i] = (src[i/8]>>(i%8))&1 == 1
	}
}

// WriteBits appends the packed form of bits.
func (b *Buffer) WriteBits(bits []bool) {
	PackBits(b.Extend(PackedLen(len(bits))), bits)
}

// ReadBits reads PackedLen(len(dst)) bytes, unpacking them into dst.
func (c *Cursor) ReadBits(dst []bool) error {
	buff, err := c.Read(PackedLen(len(dst)))
	if err != nil {
		return err
	}
	UnpackBits(dst, buff)
	return nil
}

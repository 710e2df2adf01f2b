package types

import "strings"

// Bit is a single bit of a bit-string.
// Arrays of Bit ([N]Bit) encode as fixed-length bit-strings, packed 8 per byte with no length prefix.
type Bit bool

// BitVec is a variable-length bit-string. It encodes as the compact bit count followed by the packed bits.
type BitVec []Bit

// NewBitVec returns a BitVec holding bits.
func NewBitVec(bits ...bool) BitVec {
	v := make(BitVec, len(bits))
	for i, bit := range bits {
		v[i] = Bit(bit)
	}
	return v
}

// String returns the bits as a string of 0s and 1s, first bit first.
func (v BitVec) String() string {
	var b strings.Builder
	b.Grow(len(v))
	for _, bit := range v {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

package encio

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Compact integers use the 2 least significant bits of the first byte to select one of four modes.
// The first three hold the value shifted left by 2 in 1, 2 or 4 little-endian bytes.
// The last stores the number of following little-endian magnitude bytes, minus 4, in the upper 6 bits.
const (
	compactSingle   = 0
	compactTwo      = 1
	compactFour     = 2
	compactBig      = 3
	compactModeMask = 1<<2 - 1

	// MaxCompactSingle is the largest value encoded in a single byte.
	MaxCompactSingle = 1<<6 - 1

	// MaxCompactTwo is the largest value encoded in two bytes.
	MaxCompactTwo = 1<<14 - 1

	// MaxCompactFour is the largest value encoded in four bytes.
	MaxCompactFour = 1<<30 - 1

	// MaxCompactBytes is the largest number of magnitude bytes the big mode can hold.
	MaxCompactBytes = 1<<6 - 1 + 4
)

// CompactSize returns the encoded length of n in bytes.
func CompactSize(n uint64) int {
	switch {
	case n <= MaxCompactSingle:
		return 1
	case n <= MaxCompactTwo:
		return 2
	case n <= MaxCompactFour:
		return 4
	default:
		return 1 + bigModeLen(n)
	}
}

// bigModeLen returns the number of magnitude bytes used for n in the big mode.
// The big mode never uses less than 4.
func bigModeLen(n uint64) int {
	l := (bits.Len64(n) + 7) / 8
	if l < 4 {
		return 4
	}
	return l
}

// EncodeCompact appends n in compact form.
func EncodeCompact(b *Buffer, n uint64) {
	switch {
	case n <= MaxCompactSingle:
		b.WriteByte(byte(n<<2) | compactSingle)
	case n <= MaxCompactTwo:
		b.WriteUint16(uint16(n<<2) | compactTwo)
	case n <= MaxCompactFour:
		b.WriteUint32(uint32(n<<2) | compactFour)
	default:
		l := bigModeLen(n)
		buff := b.Extend(l + 1)
		buff[0] = byte(l-4)<<2 | compactBig
		for i := 1; i <= l; i++ {
			buff[i] = byte(n)
			n >>= 8
		}
	}
}

// DecodeCompact reads a compact integer that must fit in a uint64.
// Values needing more than 8 bytes return ErrOverflow.
// Unless c.AllowNonCanonical is set, values not encoded in their smallest form return ErrNonCanonical.
func DecodeCompact(c *Cursor) (uint64, error) {
	head, err := c.Peek()
	if err != nil {
		return 0, err
	}

	switch head & compactModeMask {
	case compactSingle:
		c.off++
		return uint64(head >> 2), nil

	case compactTwo:
		v, err := c.ReadUint16()
		if err != nil {
			return 0, err
		}
		n := uint64(v >> 2)
		if n <= MaxCompactSingle && !c.AllowNonCanonical {
			return 0, nonCanonical(n, 2)
		}
		return n, nil

	case compactFour:
		v, err := c.ReadUint32()
		if err != nil {
			return 0, err
		}
		n := uint64(v >> 2)
		if n <= MaxCompactTwo && !c.AllowNonCanonical {
			return 0, nonCanonical(n, 4)
		}
		return n, nil
	}

	l := int(head>>2) + 4
	if l > 8 && !c.AllowNonCanonical {
		// The most significant byte of a canonical encoding is never zero,
		// so this can't fit.
		return 0, NewError(ErrOverflow, fmt.Sprintf("compact integer of %v bytes does not fit in 64 bits", l))
	}

	c.off++
	buff, err := c.Read(l)
	if err != nil {
		return 0, err
	}

	var n uint64
	for i := l - 1; i >= 0; i-- {
		if i >= 8 {
			if buff[i] != 0 {
				return 0, NewError(ErrOverflow, fmt.Sprintf("compact integer of %v bytes does not fit in 64 bits", l))
			}
			continue
		}
		n = n<<8 | uint64(buff[i])
	}

	if !c.AllowNonCanonical && (buff[l-1] == 0 || n <= MaxCompactFour) {
		return 0, nonCanonical(n, l+1)
	}

	return n, nil
}

// EncodeCompactBig appends n in compact form. A nil n is encoded as 0.
// Negative values and values needing more than MaxCompactBytes bytes return ErrOverflow.
func EncodeCompactBig(b *Buffer, n *big.Int) error {
	if n == nil {
		EncodeCompact(b, 0)
		return nil
	}

	if n.Sign() < 0 {
		return NewError(ErrOverflow, fmt.Sprintf("cannot encode negative compact integer %v", n))
	}

	if n.IsUint64() {
		EncodeCompact(b, n.Uint64())
		return nil
	}

	l := (n.BitLen() + 7) / 8
	if l > MaxCompactBytes {
		return NewError(ErrOverflow, fmt.Sprintf("compact integer of %v bytes is larger than the maximum of %v", l, MaxCompactBytes))
	}

	buff := b.Extend(l + 1)
	buff[0] = byte(l-4)<<2 | compactBig
	n.FillBytes(buff[1:])
	reverse(buff[1:])
	return nil
}

// DecodeCompactBig reads a compact integer of any size.
// Unless c.AllowNonCanonical is set, values not encoded in their smallest form return ErrNonCanonical.
func DecodeCompactBig(c *Cursor) (*big.Int, error) {
	head, err := c.Peek()
	if err != nil {
		return nil, err
	}

	if head&compactModeMask != compactBig {
		n, err := DecodeCompact(c)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(n), nil
	}

	l := int(head>>2) + 4
	c.off++
	buff, err := c.Read(l)
	if err != nil {
		return nil, err
	}

	be := make([]byte, l)
	copy(be, buff)
	reverse(be)
	n := new(big.Int).SetBytes(be)

	if !c.AllowNonCanonical && (be[0] == 0 || n.BitLen() <= 30) {
		return nil, nonCanonical(n, l+1)
	}

	return n, nil
}

func nonCanonical(n interface{}, size int) error {
	return NewError(ErrNonCanonical, fmt.Sprintf("%v encoded in %v bytes", n, size))
}

func reverse(buff []byte) {
	for i, j := 0, len(buff)-1; i < j; i, j = i+1, j-1 {
		buff[i], buff[j] = buff[j], buff[i]
	}
}

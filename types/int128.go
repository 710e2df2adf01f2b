package types

import (
	"fmt"
	"math/big"

	"github.com/stewi1014/scale/encio"
)

var (
	maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
	mask64  = new(big.Int).SetUint64(1<<64 - 1)
)

// U128 is an unsigned 128 bit integer; U128[0] is the low word and U128[1] the high word.
// Its memory layout matches its encoding: 16 little-endian bytes.
type U128 [2]uint64

// NewU128 returns n as a U128.
func NewU128(n uint64) U128 {
	return U128{n, 0}
}

// U128FromBig converts n to a U128.
// It returns an error wrapping encio.ErrOverflow if n is negative or does not fit in 128 bits.
func U128FromBig(n *big.Int) (U128, error) {
	if n.Sign() < 0 || n.Cmp(maxU128) > 0 {
		return U128{}, encio.NewError(encio.ErrOverflow, fmt.Sprintf("%v does not fit in 128 unsigned bits", n))
	}
	return U128{
		new(big.Int).And(n, mask64).Uint64(),
		new(big.Int).Rsh(n, 64).Uint64(),
	}, nil
}

// Big returns u as a big.Int.
func (u U128) Big() *big.Int {
	n := new(big.Int).SetUint64(u[1])
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(u[0]))
}

// String implements fmt.Stringer.
func (u U128) String() string {
	return u.Big().String()
}

// I128 is a signed 128 bit integer in two's complement; I128[0] is the low word and I128[1] the high word.
// Its memory layout matches its encoding: 16 little-endian bytes.
type I128 [2]uint64

// NewI128 returns n as an I128.
func NewI128(n int64) I128 {
	return I128{uint64(n), uint64(n >> 63)}
}

// I128FromBig converts n to an I128.
// It returns an error wrapping encio.ErrOverflow if n does not fit in 128 signed bits.
func I128FromBig(n *big.Int) (I128, error) {
	if n.Cmp(minI128) < 0 || n.Cmp(maxI128) > 0 {
		return I128{}, encio.NewError(encio.ErrOverflow, fmt.Sprintf("%v does not fit in 128 signed bits", n))
	}

	u := new(big.Int).Set(n)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}

	return I128{
		new(big.Int).And(u, mask64).Uint64(),
		new(big.Int).Rsh(u, 64).Uint64(),
	}, nil
}

// Big returns i as a big.Int.
func (i I128) Big() *big.Int {
	n := U128(i).Big()
	if int64(i[1]) < 0 {
		n.Sub(n, two128)
	}
	return n
}

// String implements fmt.Stringer.
func (i I128) String() string {
	return i.Big().String()
}

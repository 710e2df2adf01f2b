package types

import "math/big"

// Compact is an unsigned integer encoded in compact form.
type Compact uint64

// BigCompact is an arbitrarily large unsigned integer encoded in compact form.
// A nil Int is encoded as 0. Values must not be negative, and must fit in encio.MaxCompactBytes bytes.
type BigCompact struct {
	*big.Int
}

// NewBigCompact returns a BigCompact holding n.
func NewBigCompact(n *big.Int) BigCompact {
	return BigCompact{Int: n}
}

// String implements fmt.Stringer.
func (c BigCompact) String() string {
	if c.Int == nil {
		return "0"
	}
	return c.Int.String()
}

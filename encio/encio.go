// Package encio provides the byte-level layer of scale: the output Buffer and input Cursor,
// fixed-width little-endian integers, compact integers, bit packing and the error kinds
// returned by every decoder.
//
// Everything here works on byte slices held in memory. Encoders append to a Buffer that they own,
// and decoders advance a Cursor over input they only read.
package encio

var (
	// TooBig is a byte count used for simple sanity checking before allocating memory for
	// sequences whose length was read from the input.
	// ErrLengthOverflow is returned if a decoded length would need more than this.
	//
	// By default it is 32MB on 32bit machines, and 128MB on 64bit machines.
	// Feel free to change it.
	TooBig = uint64(1 << (25 + ((^uint(0) >> 32) & 2)))
)

// PackedLen returns the number of bytes needed to hold n packed bits.
func PackedLen(n int) int {
	return (n + 7) / 8
}

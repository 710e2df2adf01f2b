// Package encode provides an Encodable for each shape of Go value: integers, booleans, compact integers,
// structs (composites), arrays and slices (fixed and variable sequences), strings, maps, pointers (options),
// registered interfaces (unions) and bit-strings.
//
// Compound Encodables are built from a Source, which they use to get the Encodables of their elements.
package encode

import (
	"fmt"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// checkPtr panics if ptr is nil.
func checkPtr(ptr unsafe.Pointer) {
	if ptr == nil {
		panic(encio.NewError(encio.ErrNilPointer, "unsafe.Pointer types are never allowed to be nil as per https://golang.org/pkg/unsafe/"))
	}
}

// checkLength returns an error if n elements, each at least minSize bytes when encoded
// and memSize bytes in memory, cannot be decoded from c.
func checkLength(n uint64, minSize int, memSize uintptr, c *encio.Cursor) error {
	if minSize > 0 && n > uint64(c.Remaining()/minSize) {
		return encio.NewErrorCause(
			encio.ErrLengthOverflow,
			encio.ErrUnexpectedEnd,
			fmt.Sprintf("%v elements of at least %v bytes, but only %v bytes remain", n, minSize, c.Remaining()),
		)
	}

	if n > encio.TooBig || (memSize > 0 && n > encio.TooBig/uint64(memSize)) {
		return encio.NewError(encio.ErrLengthOverflow, fmt.Sprintf("%v elements of %v bytes is too big", n, memSize))
	}

	return nil
}

func indexPath(i int) string {
	return fmt.Sprintf("[%v]", i)
}

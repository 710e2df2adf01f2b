package types

import (
	"fmt"
	"reflect"

	"github.com/stewi1014/scale/encio"
)

// Marshaler is implemented by types that write their own encoding.
// MarshalSCALE appends the encoded value to b; it composes with the core codecs by calling
// the encio functions, or Marshal on its own fields.
type Marshaler interface {
	MarshalSCALE(b *encio.Buffer) error
}

// Unmarshaler is implemented by types that decode themselves.
// UnmarshalSCALE must consume exactly the bytes written by MarshalSCALE,
// and return an error wrapping one of the encio error kinds for malformed input.
// The decoded value must depend only on the bytes read; sequences decode an element that reads
// no bytes once, and repeat it.
type Unmarshaler interface {
	UnmarshalSCALE(c *encio.Cursor) error
}

// ImplementsMarshaler returns a helpful error if the given type does not implement both Marshaler and Unmarshaler.
func ImplementsMarshaler(t reflect.Type) error {
	if !t.Implements(MarshalerType) {
		return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v does not implement types.Marshaler", t))
	}
	if !t.Implements(UnmarshalerType) {
		return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v does not implement types.Unmarshaler", t))
	}
	return nil
}

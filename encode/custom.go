package encode

import (
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/types"
)

// NewCustom returns a new Encodable for a type whose pointer implements types.Marshaler and types.Unmarshaler.
func NewCustom(ty reflect.Type) *Custom {
	if err := types.ImplementsMarshaler(reflect.PtrTo(ty)); err != nil {
		panic(err)
	}

	return &Custom{
		ty: ty,
	}
}

// Custom is an Encodable for types that encode themselves.
type Custom struct {
	ty reflect.Type
}

// Size implements Encodable.
// Custom types can encode to nothing.
func (e *Custom) Size() int { return 0 }

// Type implements Encodable.
func (e *Custom) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Custom) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	return reflect.NewAt(e.ty, ptr).Interface().(types.Marshaler).MarshalSCALE(b)
}

// Decode implements Encodable.
func (e *Custom) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	return reflect.NewAt(e.ty, ptr).Interface().(types.Unmarshaler).UnmarshalSCALE(c)
}

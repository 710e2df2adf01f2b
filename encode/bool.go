package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// NewBool returns a new bool Encodable.
func NewBool(ty reflect.Type) *Bool {
	if ty.Kind() != reflect.Bool {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of bool kind", ty.String())))
	}
	return &Bool{
		ty: ty,
	}
}

// Bool is an Encodable for bools.
// true is encoded as 0x01 and false as 0x00; any other byte fails to decode.
type Bool struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *Bool) Size() int { return 1 }

// Type implements Encodable.
func (e *Bool) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Bool) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	if *(*bool)(ptr) {
		return b.WriteByte(1)
	}
	return b.WriteByte(0)
}

// Decode implements Encodable.
func (e *Bool) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	by, err := c.ReadByte()
	if err != nil {
		return err
	}

	switch by {
	case 0:
		*(*bool)(ptr) = false
	case 1:
		*(*bool)(ptr) = true
	default:
		return encio.NewError(encio.ErrInvalidBool, fmt.Sprintf("%#02x is not 0x00 or 0x01", by))
	}
	return nil
}

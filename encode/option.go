package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// NewOption returns a new Encodable for a pointer type, encoding it as an option.
func NewOption(ty reflect.Type, src Source) *Option {
	if ty.Kind() != reflect.Ptr {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a pointer", ty)))
	}

	return &Option{
		ty:   ty,
		elem: src.NewEncodable(ty.Elem(), nil),
	}
}

// Option encodes pointers as optional values.
// A nil pointer is encoded as 0x00, and any other as 0x01 followed by the value it points to.
// It must be given a non-nil pointer to the pointer it's encoding or decoding.
type Option struct {
	ty   reflect.Type
	elem *Encodable
}

// Size implements Encodable.
func (e *Option) Size() int { return 1 }

// Type implements Encodable.
func (e *Option) Type() reflect.Type {
	return e.ty
}

// Encode implements Encodable.
func (e *Option) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	if *(*unsafe.Pointer)(ptr) == nil {
		return b.WriteByte(0)
	}

	if err := b.WriteByte(1); err != nil {
		return err
	}

	return (*e.elem).Encode(*(*unsafe.Pointer)(ptr), b)
}

// Decode implements Encodable.
// A present value is decoded into a new allocation; the pointer is only changed if decoding succeeds.
func (e *Option) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)

	by, err := c.ReadByte()
	if err != nil {
		return err
	}

	switch by {
	case 0:
		reflect.NewAt(e.ty, ptr).Elem().Set(reflect.Zero(e.ty))
		return nil
	case 1:
		elem := reflect.New(e.ty.Elem())
		if err := (*e.elem).Decode(elem.UnsafePointer(), c); err != nil {
			return err
		}
		reflect.NewAt(e.ty, ptr).Elem().Set(elem)
		return nil
	default:
		return encio.NewError(encio.ErrInvalidOption, fmt.Sprintf("%#02x is not 0x00 or 0x01", by))
	}
}

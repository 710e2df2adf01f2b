package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// newBits returns the bit-string Encodable for a []bool or [N]bool kinded type.
func newBits(ty reflect.Type) Encodable {
	switch ty.Kind() {
	case reflect.Slice:
		return NewBitVec(ty)
	case reflect.Array:
		return NewBitArray(ty)
	default:
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a bit-string, it must be an array or slice of bools", ty)))
	}
}

// NewBitArray returns a new Encodable for arrays of bool kind, encoding them as fixed-length bit-strings.
func NewBitArray(ty reflect.Type) *BitArray {
	if ty.Kind() != reflect.Array || ty.Elem().Kind() != reflect.Bool {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not an array of bools", ty)))
	}

	return &BitArray{
		ty:  ty,
		len: ty.Len(),
	}
}

// BitArray is an Encodable for fixed-length bit-strings.
// The bits are packed 8 to a byte, first bit in the least significant bit, with no length prefix.
type BitArray struct {
	ty  reflect.Type
	len int
}

// Size implements Encodable.
func (e *BitArray) Size() int { return encio.PackedLen(e.len) }

// Type implements Encodable.
func (e *BitArray) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *BitArray) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	b.WriteBits(unsafe.Slice((*bool)(ptr), e.len))
	return nil
}

// Decode implements Encodable.
func (e *BitArray) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	return c.ReadBits(unsafe.Slice((*bool)(ptr), e.len))
}

// NewBitVec returns a new Encodable for slices of bool kind, encoding them as variable-length bit-strings.
func NewBitVec(ty reflect.Type) *BitVec {
	if ty.Kind() != reflect.Slice || ty.Elem().Kind() != reflect.Bool {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a slice of bools", ty)))
	}

	return &BitVec{
		ty: ty,
	}
}

// BitVec is an Encodable for variable-length bit-strings.
// The compact bit count is followed by the bits, packed as in BitArray.
type BitVec struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *BitVec) Size() int { return 1 }

// Type implements Encodable.
func (e *BitVec) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *BitVec) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	slice := reflect.NewAt(e.ty, ptr).Elem()
	l := slice.Len()
	encio.EncodeCompact(b, uint64(l))
	b.WriteBits(unsafe.Slice((*bool)(slice.UnsafePointer()), l))
	return nil
}

// Decode implements Encodable.
func (e *BitVec) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	l, err := encio.DecodeCompact(c)
	if err != nil {
		return err
	}

	if l > uint64(c.Remaining())*8 {
		return encio.NewErrorCause(
			encio.ErrLengthOverflow,
			encio.ErrUnexpectedEnd,
			fmt.Sprintf("%v bits need %v bytes, but only %v remain", l, (l+7)/8, c.Remaining()),
		)
	}
	if err := checkLength(l, 0, e.ty.Elem().Size(), c); err != nil {
		return err
	}

	length := int(l)
	slice := reflect.MakeSlice(e.ty, length, length)
	if err := c.ReadBits(unsafe.Slice((*bool)(slice.UnsafePointer()), length)); err != nil {
		return err
	}

	reflect.NewAt(e.ty, ptr).Elem().Set(slice)
	return nil
}

package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// NewArray returns a new array Encodable.
// Arrays are fixed sequences; their elements are encoded one after another with no length prefix.
func NewArray(ty reflect.Type, src Source) *Array {
	if ty.Kind() != reflect.Array {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not an array", ty)))
	}

	return &Array{
		ty:   ty,
		len:  ty.Len(),
		size: ty.Elem().Size(),
		elem: src.NewEncodable(ty.Elem(), nil),
	}
}

// Array is an Encodable for arrays.
type Array struct {
	ty   reflect.Type
	elem *Encodable
	len  int
	size uintptr
}

// Size implements Encodable.
func (e *Array) Size() int {
	return (*e.elem).Size() * e.len
}

// Type implements Encodable.
func (e *Array) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Array) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	for i := 0; i < e.len; i++ {
		eptr := unsafe.Add(ptr, uintptr(i)*e.size)
		if err := (*e.elem).Encode(eptr, b); err != nil {
			return encio.WithPath(err, indexPath(i))
		}
	}
	return nil
}

// Decode implements Encodable.
func (e *Array) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	for i := 0; i < e.len; i++ {
		eptr := unsafe.Add(ptr, uintptr(i)*e.size)
		if err := (*e.elem).Decode(eptr, c); err != nil {
			return encio.WithPath(err, indexPath(i))
		}
	}
	return nil
}

// NewByteArray returns a new Encodable for arrays of a byte sized integer kind.
func NewByteArray(ty reflect.Type) *ByteArray {
	if ty.Kind() != reflect.Array || (ty.Elem().Kind() != reflect.Uint8 && ty.Elem().Kind() != reflect.Int8) {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a byte array", ty)))
	}

	return &ByteArray{
		ty:  ty,
		len: ty.Len(),
	}
}

// ByteArray is an Encodable for byte arrays.
// It produces the same bytes as Array, copying them in one go.
type ByteArray struct {
	ty  reflect.Type
	len int
}

// Size implements Encodable.
func (e *ByteArray) Size() int { return e.len }

// Type implements Encodable.
func (e *ByteArray) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *ByteArray) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	_, err := b.Write(unsafe.Slice((*byte)(ptr), e.len))
	return err
}

// Decode implements Encodable.
func (e *ByteArray) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	buff, err := c.Read(e.len)
	if err != nil {
		return err
	}
	copy(unsafe.Slice((*byte)(ptr), e.len), buff)
	return nil
}

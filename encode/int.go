package encode

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// NewInt returns a new fixed-width integer Encodable.
// Integers are encoded little-endian in their own width, with int, uint and uintptr always taking 64 bits.
func NewInt(ty reflect.Type) *Int {
	var size int
	switch ty.Kind() {
	case reflect.Int8, reflect.Uint8:
		size = 1
	case reflect.Int16, reflect.Uint16:
		size = 2
	case reflect.Int32, reflect.Uint32:
		size = 4
	case reflect.Int64, reflect.Uint64, reflect.Int, reflect.Uint, reflect.Uintptr:
		size = 8
	default:
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not an integer", ty)))
	}

	return &Int{
		ty:   ty,
		size: size,
	}
}

// Int is an Encodable for fixed-width integers.
type Int struct {
	ty   reflect.Type
	size int
}

// Size implements Encodable.
func (e *Int) Size() int { return e.size }

// Type implements Encodable.
func (e *Int) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Int) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	switch e.ty.Kind() {
	case reflect.Int8, reflect.Uint8:
		return b.WriteByte(*(*uint8)(ptr))
	case reflect.Int16, reflect.Uint16:
		b.WriteUint16(*(*uint16)(ptr))
	case reflect.Int32, reflect.Uint32:
		b.WriteUint32(*(*uint32)(ptr))
	case reflect.Int64, reflect.Uint64:
		b.WriteUint64(*(*uint64)(ptr))
	case reflect.Int:
		b.WriteUint64(uint64(*(*int)(ptr)))
	case reflect.Uint:
		b.WriteUint64(uint64(*(*uint)(ptr)))
	case reflect.Uintptr:
		b.WriteUint64(uint64(*(*uintptr)(ptr)))
	}
	return nil
}

// Decode implements Encodable.
func (e *Int) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	switch e.ty.Kind() {
	case reflect.Int8, reflect.Uint8:
		by, err := c.ReadByte()
		if err != nil {
			return err
		}
		*(*uint8)(ptr) = by
	case reflect.Int16, reflect.Uint16:
		n, err := c.ReadUint16()
		if err != nil {
			return err
		}
		*(*uint16)(ptr) = n
	case reflect.Int32, reflect.Uint32:
		n, err := c.ReadUint32()
		if err != nil {
			return err
		}
		*(*uint32)(ptr) = n
	case reflect.Int64, reflect.Uint64:
		n, err := c.ReadUint64()
		if err != nil {
			return err
		}
		*(*uint64)(ptr) = n
	case reflect.Int:
		n, err := c.ReadUint64()
		if err != nil {
			return err
		}
		if int64(n) < math.MinInt || int64(n) > math.MaxInt {
			return encio.NewError(encio.ErrOverflow, fmt.Sprintf("%v does not fit in int", int64(n)))
		}
		*(*int)(ptr) = int(int64(n))
	case reflect.Uint, reflect.Uintptr:
		n, err := c.ReadUint64()
		if err != nil {
			return err
		}
		if err := storeUint(e.ty.Kind(), ptr, n); err != nil {
			return err
		}
	}
	return nil
}

// maxUint returns the largest value an unsigned integer of kind can hold.
func maxUint(kind reflect.Kind) uint64 {
	switch kind {
	case reflect.Uint8:
		return math.MaxUint8
	case reflect.Uint16:
		return math.MaxUint16
	case reflect.Uint32:
		return math.MaxUint32
	case reflect.Uint:
		return math.MaxUint
	case reflect.Uintptr:
		return uint64(^uintptr(0))
	default:
		return math.MaxUint64
	}
}

// loadUint reads the unsigned integer of kind at ptr.
func loadUint(kind reflect.Kind, ptr unsafe.Pointer) uint64 {
	switch kind {
	case reflect.Uint8:
		return uint64(*(*uint8)(ptr))
	case reflect.Uint16:
		return uint64(*(*uint16)(ptr))
	case reflect.Uint32:
		return uint64(*(*uint32)(ptr))
	case reflect.Uint:
		return uint64(*(*uint)(ptr))
	case reflect.Uintptr:
		return uint64(*(*uintptr)(ptr))
	default:
		return *(*uint64)(ptr)
	}
}

// storeUint writes n to the unsigned integer of kind at ptr, failing with ErrOverflow if it doesn't fit.
func storeUint(kind reflect.Kind, ptr unsafe.Pointer, n uint64) error {
	if n > maxUint(kind) {
		return encio.NewError(encio.ErrOverflow, fmt.Sprintf("%v does not fit in %v", n, kind))
	}

	switch kind {
	case reflect.Uint8:
		*(*uint8)(ptr) = uint8(n)
	case reflect.Uint16:
		*(*uint16)(ptr) = uint16(n)
	case reflect.Uint32:
		*(*uint32)(ptr) = uint32(n)
	case reflect.Uint:
		*(*uint)(ptr) = uint(n)
	case reflect.Uintptr:
		*(*uintptr)(ptr) = uintptr(n)
	default:
		*(*uint64)(ptr) = n
	}
	return nil
}

func isUnsigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return true
	}
	return false
}

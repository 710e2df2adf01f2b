package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/types"
)

// NewCompact returns a new compact integer Encodable for an unsigned integer type.
// types.Compact uses it, as do unsigned struct fields tagged `scale:"compact"`.
func NewCompact(ty reflect.Type) *Compact {
	if !isUnsigned(ty.Kind()) {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not an unsigned integer, compact encoding needs one", ty)))
	}
	return &Compact{
		ty: ty,
	}
}

// Compact is an Encodable for unsigned integers in compact form.
type Compact struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *Compact) Size() int { return 1 }

// Type implements Encodable.
func (e *Compact) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Compact) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	encio.EncodeCompact(b, loadUint(e.ty.Kind(), ptr))
	return nil
}

// Decode implements Encodable.
func (e *Compact) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	n, err := encio.DecodeCompact(c)
	if err != nil {
		return err
	}
	return storeUint(e.ty.Kind(), ptr, n)
}

// NewBigCompact returns a new Encodable for types.BigCompact.
func NewBigCompact(ty reflect.Type) *BigCompact {
	if ty != types.BigCompactType {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not %v", ty, types.BigCompactType)))
	}
	return &BigCompact{}
}

// BigCompact is an Encodable for arbitrarily large compact integers.
type BigCompact struct{}

// Size implements Encodable.
func (e *BigCompact) Size() int { return 1 }

// Type implements Encodable.
func (e *BigCompact) Type() reflect.Type { return types.BigCompactType }

// Encode implements Encodable.
func (e *BigCompact) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	return encio.EncodeCompactBig(b, (*types.BigCompact)(ptr).Int)
}

// Decode implements Encodable.
func (e *BigCompact) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	n, err := encio.DecodeCompactBig(c)
	if err != nil {
		return err
	}
	(*types.BigCompact)(ptr).Int = n
	return nil
}

package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/types"
)

// NewUnion returns a new Encodable for the interface type described by enum.
func NewUnion(enum types.Enum, src Source) *Union {
	if enum.Type == nil || enum.Type.Kind() != reflect.Interface {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not an interface", enum.Type)))
	}

	e := &Union{
		ty:      enum.Type,
		compact: enum.CompactIndex(),
		byType:  make(map[reflect.Type]*unionVariant, len(enum.Variants)),
		byIndex: make(map[uint64]*unionVariant, len(enum.Variants)),
	}

	for _, variant := range enum.Variants {
		v := &unionVariant{
			index:   variant.Index,
			payload: variant.Type,
		}
		if variant.Type.Kind() == reflect.Ptr {
			v.pointer = true
			v.payload = variant.Type.Elem()
		}
		v.name = v.payload.String()
		v.enc = src.NewEncodable(v.payload, nil)

		e.byType[variant.Type] = v
		e.byIndex[variant.Index] = v
	}

	return e
}

// Union is an Encodable for interfaces registered as unions.
// The discriminant of the held type is written first, followed by its payload.
// The discriminant is a single byte, or a compact integer if the union was registered with
// more than 256 variants or an index larger than 255.
// Variants held as pointers encode the value they point to.
type Union struct {
	ty      reflect.Type
	compact bool
	byType  map[reflect.Type]*unionVariant
	byIndex map[uint64]*unionVariant
}

type unionVariant struct {
	index   uint64
	payload reflect.Type
	pointer bool
	name    string
	enc     *Encodable
}

// Size implements Encodable.
func (e *Union) Size() int { return 1 }

// Type implements Encodable.
func (e *Union) Type() reflect.Type {
	return e.ty
}

// Encode implements Encodable.
// A nil interface returns ErrNilPointer, and a type that isn't a registered variant returns ErrBadType.
func (e *Union) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)

	i := reflect.NewAt(e.ty, ptr).Elem()
	if i.IsNil() {
		return encio.NewError(encio.ErrNilPointer, fmt.Sprintf("cannot encode nil %v", e.ty))
	}

	elem := i.Elem()
	v, ok := e.byType[elem.Type()]
	if !ok {
		return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a registered variant of %v", elem.Type(), e.ty))
	}

	if e.compact {
		encio.EncodeCompact(b, v.index)
	} else if err := b.WriteByte(byte(v.index)); err != nil {
		return err
	}

	var eptr unsafe.Pointer
	if v.pointer {
		if elem.IsNil() {
			return encio.WithPath(encio.NewError(encio.ErrNilPointer, fmt.Sprintf("cannot encode nil %v", elem.Type())), v.name)
		}
		eptr = elem.UnsafePointer()
	} else {
		// Values held in interfaces aren't addressable.
		cp := reflect.New(v.payload).Elem()
		cp.Set(elem)
		eptr = unsafe.Pointer(cp.UnsafeAddr())
	}

	return encio.WithPath((*v.enc).Encode(eptr, b), v.name)
}

// Decode implements Encodable.
// An unknown discriminant returns ErrInvalidVariant.
func (e *Union) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)

	var index uint64
	if e.compact {
		n, err := encio.DecodeCompact(c)
		if err != nil {
			return err
		}
		index = n
	} else {
		by, err := c.ReadByte()
		if err != nil {
			return err
		}
		index = uint64(by)
	}

	v, ok := e.byIndex[index]
	if !ok {
		return encio.NewError(encio.ErrInvalidVariant, fmt.Sprintf("%v has no variant with index %v", e.ty, index))
	}

	elem := reflect.New(v.payload)
	if err := (*v.enc).Decode(elem.UnsafePointer(), c); err != nil {
		return encio.WithPath(err, v.name)
	}

	if v.pointer {
		reflect.NewAt(e.ty, ptr).Elem().Set(elem)
	} else {
		reflect.NewAt(e.ty, ptr).Elem().Set(elem.Elem())
	}
	return nil
}

package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// NewSlice returns a new slice Encodable.
func NewSlice(ty reflect.Type, src Source) *Slice {
	if ty.Kind() != reflect.Slice {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a slice", ty)))
	}

	return &Slice{
		t:    ty,
		elem: src.NewEncodable(ty.Elem(), nil),
	}
}

// Slice is an Encodable for slices.
// Slices are variable sequences; the compact element count is followed by the elements.
type Slice struct {
	t    reflect.Type
	elem *Encodable
}

// Size implements Encodable.
func (e *Slice) Size() int { return 1 }

// Type implements Encodable.
func (e *Slice) Type() reflect.Type { return e.t }

// Encode implements Encodable.
// nil and empty slices are encoded the same way.
func (e *Slice) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)

	slice := reflect.NewAt(e.t, ptr).Elem()
	l := slice.Len()
	encio.EncodeCompact(b, uint64(l))

	for i := 0; i < l; i++ {
		err := (*e.elem).Encode(unsafe.Pointer(slice.Index(i).UnsafeAddr()), b)
		if err != nil {
			return encio.WithPath(err, indexPath(i))
		}
	}
	return nil
}

// Decode implements Encodable.
// The decoded slice is always newly allocated, and is empty rather than nil when the length is 0.
func (e *Slice) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)

	l, err := encio.DecodeCompact(c)
	if err != nil {
		return err
	}
	if err := checkLength(l, (*e.elem).Size(), e.t.Elem().Size(), c); err != nil {
		return err
	}

	length := int(l)
	slice := reflect.MakeSlice(e.t, length, length)
	for i := 0; i < length; i++ {
		eptr := unsafe.Pointer(slice.Index(i).UnsafeAddr())
		start := c.Offset()
		if err := (*e.elem).Decode(eptr, c); err != nil {
			return encio.WithPath(err, indexPath(i))
		}

		// Decoding is a function of the input, so an element read from no bytes
		// is followed by copies of itself.
		if c.Offset() == start {
			repeat(slice, i)
			break
		}
	}

	reflect.NewAt(e.t, ptr).Elem().Set(slice)
	return nil
}

// repeat copies the element at index i over the rest of slice.
func repeat(slice reflect.Value, i int) {
	if slice.Type().Elem().Size() == 0 {
		return
	}

	l := slice.Len()
	for n := i + 1; n < l; {
		n += reflect.Copy(slice.Slice(n, l), slice.Slice(i, n))
	}
}

// NewByteSlice returns a new Encodable for slices of a byte sized integer kind.
func NewByteSlice(ty reflect.Type) *ByteSlice {
	if ty.Kind() != reflect.Slice || (ty.Elem().Kind() != reflect.Uint8 && ty.Elem().Kind() != reflect.Int8) {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a byte slice", ty)))
	}

	return &ByteSlice{
		t: ty,
	}
}

// ByteSlice is an Encodable for byte slices.
// It produces the same bytes as Slice, copying them in one go.
type ByteSlice struct {
	t reflect.Type
}

// Size implements Encodable.
func (e *ByteSlice) Size() int { return 1 }

// Type implements Encodable.
func (e *ByteSlice) Type() reflect.Type { return e.t }

// Encode implements Encodable.
func (e *ByteSlice) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	slice := reflect.NewAt(e.t, ptr).Elem()
	l := slice.Len()
	encio.EncodeCompact(b, uint64(l))
	_, err := b.Write(unsafe.Slice((*byte)(slice.UnsafePointer()), l))
	return err
}

// Decode implements Encodable.
func (e *ByteSlice) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	buff, err := readBytes(c)
	if err != nil {
		return err
	}

	slice := reflect.MakeSlice(e.t, len(buff), len(buff))
	copy(unsafe.Slice((*byte)(slice.UnsafePointer()), len(buff)), buff)
	reflect.NewAt(e.t, ptr).Elem().Set(slice)
	return nil
}

// readBytes reads a compact length prefixed byte sequence.
// The returned slice aliases the cursor's input.
func readBytes(c *encio.Cursor) ([]byte, error) {
	l, err := encio.DecodeCompact(c)
	if err != nil {
		return nil, err
	}
	if err := checkLength(l, 1, 1, c); err != nil {
		return nil, err
	}
	return c.Read(int(l))
}

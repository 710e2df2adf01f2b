package encode

import (
	"fmt"
	"reflect"
	"unicode/utf8"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// NewString returns a new string Encodable.
func NewString(ty reflect.Type) *String {
	if ty.Kind() != reflect.String {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a string", ty)))
	}
	return &String{
		ty: ty,
	}
}

// String is an Encodable for strings.
// A string is encoded as a sequence of its bytes, and must be valid UTF-8 when decoded.
type String struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *String) Size() int { return 1 }

// Type implements Encodable.
func (e *String) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *String) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	str := *(*string)(ptr)
	encio.EncodeCompact(b, uint64(len(str)))
	_, err := b.Write([]byte(str))
	return err
}

// Decode implements Encodable.
func (e *String) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	buff, err := readBytes(c)
	if err != nil {
		return err
	}
	if !utf8.Valid(buff) {
		return encio.NewError(encio.ErrInvalidUTF8, fmt.Sprintf("%q", buff))
	}
	*(*string)(ptr) = string(buff)
	return nil
}

package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/types"
)

// NewStruct returns a new struct Encodable.
// Fields are selected and configured by types.StructFields.
func NewStruct(ty reflect.Type, src Source) *Struct {
	if ty.Kind() != reflect.Struct {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a struct", ty)))
	}

	fields, err := types.StructFields(ty)
	if err != nil {
		panic(err)
	}

	s := &Struct{
		ty:     ty,
		fields: make([]structField, len(fields)),
	}

	for i, field := range fields {
		s.fields[i].name = field.Name
		s.fields[i].offset = field.Offset

		var enc Encodable
		switch {
		case field.Compact:
			enc = NewCompact(field.Type)
		case field.Bits:
			enc = newBits(field.Type)
		default:
			s.fields[i].enc = src.NewEncodable(field.Type, nil)
			continue
		}
		s.fields[i].enc = &enc
	}

	return s
}

// Struct is an Encodable for structs.
// Fields are encoded one after another in declaration order, with nothing else between them.
// Exported fields can be ignored using the tag `scale:"-"`, and
// unexported fields can be included with any other tag, i.e. `scale:""`.
type Struct struct {
	ty     reflect.Type
	fields []structField
}

type structField struct {
	name   string
	offset uintptr
	enc    *Encodable
}

// Size implements Encodable.
func (e *Struct) Size() (size int) {
	for _, field := range e.fields {
		size += (*field.enc).Size()
	}
	return
}

// Type implements Encodable.
func (e *Struct) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Struct) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	for _, field := range e.fields {
		if err := (*field.enc).Encode(unsafe.Add(ptr, field.offset), b); err != nil {
			return encio.WithPath(err, field.name)
		}
	}
	return nil
}

// Decode implements Encodable.
func (e *Struct) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	for _, field := range e.fields {
		if err := (*field.enc).Decode(unsafe.Add(ptr, field.offset), c); err != nil {
			return encio.WithPath(err, field.name)
		}
	}
	return nil
}

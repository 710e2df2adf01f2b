// Package scale encodes Go values in a compact binary format that carries no type information;
// both sides must agree on the types being exchanged.
//
// Integers are little-endian at their declared width. Lengths and indices use a variable-length
// compact integer. Structs are their fields in declaration order, slices and maps are length prefixed,
// pointers are options, and interfaces registered with RegisterEnum are unions written as a discriminant
// followed by the held value.
//
// scale/encio provides the byte-level codecs and the error kinds every decode error wraps.
//
// scale/encode provides an Encodable per value shape, and the Sources that build them.
//
// scale/types provides the types with a dedicated encoding; compact integers, 128 bit integers and bit-strings.
package scale

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/stewi1014/scale/encio"
	"go.uber.org/zap"
)

// Marshal returns the encoding of v.
// If v is a pointer, the value it points to is encoded.
// To encode a union, pass a pointer to the interface holding it.
func Marshal(v interface{}) ([]byte, error) {
	config := (*Config)(nil).copyAndFill()

	b := new(encio.Buffer)
	if err := encodeValue(config, v, b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal decodes data into the value pointed to by v.
// All of data must be used, otherwise an error wrapping encio.ErrTrailingData is returned.
// The value pointed to by v is only changed if decoding succeeds.
func Unmarshal(data []byte, v interface{}) error {
	config := (*Config)(nil).copyAndFill()

	c := encio.NewCursor(data)
	c.AllowNonCanonical = config.AllowNonCanonical

	target, decoded, err := decodeValue(config, v, c)
	if err != nil {
		return err
	}

	if c.Remaining() > 0 {
		return encio.NewError(encio.ErrTrailingData, fmt.Sprintf("%v bytes left after decoding %v", c.Remaining(), target.Type()))
	}

	target.Set(decoded)
	return nil
}

// encodeValue appends the encoding of v, or the value it points to, to b.
func encodeValue(config *Config, v interface{}, b *encio.Buffer) (err error) {
	if v == nil {
		return encio.NewError(encio.ErrNilPointer, "cannot encode nil interface")
	}

	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return encio.NewError(encio.ErrNilPointer, fmt.Sprintf("cannot encode nil %v", val.Type()))
		}
	} else {
		// Values need to be addressable.
		ptr := reflect.New(val.Type())
		ptr.Elem().Set(val)
		val = ptr
	}

	defer recoverBadType(&err)

	enc := config.Source.NewEncodable(val.Type().Elem(), nil)
	return (*enc).Encode(val.UnsafePointer(), b)
}

// decodeValue decodes a value of the type v points to from c.
// It returns the value v points to, and the decoded value to set it to.
func decodeValue(config *Config, v interface{}, c *encio.Cursor) (target, decoded reflect.Value, err error) {
	if v == nil {
		return target, decoded, encio.NewError(encio.ErrNilPointer, "cannot decode into nil interface")
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return target, decoded, encio.NewError(encio.ErrBadType, fmt.Sprintf("decoded values must be passed by reference (pointer), got %v", val.Type()))
	}
	if val.IsNil() {
		return target, decoded, encio.NewError(encio.ErrNilPointer, fmt.Sprintf("cannot decode into nil %v", val.Type()))
	}

	target = val.Elem()
	if !target.CanSet() {
		return target, decoded, encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not mutable", target.Type()))
	}

	defer recoverBadType(&err)

	enc := config.Source.NewEncodable(target.Type(), nil)
	ptr := reflect.New(target.Type())
	start := c.Offset()
	if err := (*enc).Decode(ptr.UnsafePointer(), c); err != nil {
		config.Logger.Debug("decode failed",
			zap.Stringer("type", target.Type()),
			zap.Int("start", start),
			zap.Int("offset", c.Offset()),
			zap.Error(err),
		)
		return target, decoded, err
	}

	return target, ptr.Elem(), nil
}

// recoverBadType turns an ErrBadType panic from building an Encodable into a returned error.
// Other panics are passed on.
func recoverBadType(err *error) {
	r := recover()
	if r == nil {
		return
	}

	if e, ok := r.(error); ok && errors.Is(e, encio.ErrBadType) {
		*err = e
		return
	}

	panic(r)
}

package scale

import (
	"fmt"
	"reflect"

	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/encode"
	"github.com/stewi1014/scale/types"
)

// DefaultSource is the Source for Encodables of all supported types.
// Interface types must be registered as unions in types.DefaultRegistry.
// It performs no caching; wrap it in an encode.CachingSource, as Config does by default.
var DefaultSource = NewSource(types.DefaultRegistry)

var defaultCache = encode.NewCachingSource(DefaultSource)

// NewSource returns a Source for Encodables of all supported types,
// looking up unions in registry.
//
// Floating point, complex, channel, function and unsafe pointer types have no encoding,
// and panic with an error wrapping encio.ErrBadType.
func NewSource(registry *types.Registry) encode.Source {
	return encode.SourceFromFunc(func(t reflect.Type, s encode.Source) encode.Encodable {
		ptrt := reflect.PtrTo(t)
		kind := t.Kind()
		switch {
		// Implementers
		case ptrt.Implements(types.MarshalerType) && ptrt.Implements(types.UnmarshalerType):
			return encode.NewCustom(t)

		// Specific types
		case t == types.CompactType:
			return encode.NewCompact(t)
		case t == types.BigCompactType:
			return encode.NewBigCompact(t)
		case kind == reflect.Slice && t.Elem() == types.BitType:
			return encode.NewBitVec(t)
		case kind == reflect.Array && t.Elem() == types.BitType:
			return encode.NewBitArray(t)
		case kind == reflect.Slice && isByte(t.Elem()):
			return encode.NewByteSlice(t)
		case kind == reflect.Array && isByte(t.Elem()):
			return encode.NewByteArray(t)

		// Compound-Types
		case kind == reflect.Ptr:
			return encode.NewOption(t, s)
		case kind == reflect.Interface:
			enum, ok := registry.Lookup(t)
			if !ok {
				panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("interface %v is not registered as a union", t)))
			}
			return encode.NewUnion(enum, s)
		case kind == reflect.Struct:
			return encode.NewStruct(t, s)
		case kind == reflect.Array:
			return encode.NewArray(t, s)
		case kind == reflect.Slice:
			return encode.NewSlice(t, s)
		case kind == reflect.Map:
			return encode.NewMap(t, s)

		// Number types
		case kind == reflect.Uint8,
			kind == reflect.Uint16,
			kind == reflect.Uint32,
			kind == reflect.Uint64,
			kind == reflect.Uint,
			kind == reflect.Int8,
			kind == reflect.Int16,
			kind == reflect.Int32,
			kind == reflect.Int64,
			kind == reflect.Int,
			kind == reflect.Uintptr:
			return encode.NewInt(t)

		// Misc types
		case kind == reflect.Bool:
			return encode.NewBool(t)
		case kind == reflect.String:
			return encode.NewString(t)
		default:
			panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("cannot create encodable for type %v", t)))
		}
	})
}

// isByte reports whether sequences of t can be copied as raw bytes.
func isByte(t reflect.Type) bool {
	return (t.Kind() == reflect.Uint8 || t.Kind() == reflect.Int8) &&
		!reflect.PtrTo(t).Implements(types.MarshalerType)
}

// Package types holds the value types with a dedicated encoding, the capability interfaces
// custom types implement, struct field selection and the registry of union (enum) types.
package types

import (
	"reflect"
)

var (
	CompactType    = reflect.TypeOf(Compact(0))
	BigCompactType = reflect.TypeOf(BigCompact{})
	U128Type       = reflect.TypeOf(U128{})
	I128Type       = reflect.TypeOf(I128{})
	BitType        = reflect.TypeOf(Bit(false))
	BitVecType     = reflect.TypeOf(BitVec(nil))

	MarshalerType   = reflect.TypeOf(new(Marshaler)).Elem()
	UnmarshalerType = reflect.TypeOf(new(Unmarshaler)).Elem()
)

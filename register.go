package scale

import (
	"fmt"
	"reflect"

	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/types"
)

// RegisterEnum registers an interface type as a union in types.DefaultRegistry,
// so values held in it can be encoded.
// iface is a nil pointer to the interface, and variants are values of the types it may hold,
// given discriminants 0, 1, 2... in order. i.e.
//
//	RegisterEnum((*Shape)(nil), Empty{}, Circle{}, &Square{})
//
// Unions must be registered before the first Marshal or Unmarshal of a type that uses them.
func RegisterEnum(iface interface{}, variants ...interface{}) error {
	it := reflect.TypeOf(iface)
	if it == nil || it.Kind() != reflect.Ptr || it.Elem().Kind() != reflect.Interface {
		return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a pointer to an interface", it))
	}

	vtypes := make([]reflect.Type, len(variants))
	for i, v := range variants {
		vtypes[i] = reflect.TypeOf(v)
	}

	return types.RegisterEnum(it.Elem(), vtypes...)
}

package types_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/types"
)

type shape interface{ isShape() }

type circle struct{ Radius uint32 }
type square struct{ Side uint16 }
type empty struct{}
type notShape struct{}

func (circle) isShape() {}
func (square) isShape() {}
func (empty) isShape()  {}

var shapeType = reflect.TypeOf(new(shape)).Elem()

func TestRegisterEnum(t *testing.T) {
	r := types.NewRegistry()

	err := r.RegisterEnum(shapeType,
		reflect.TypeOf(empty{}),
		reflect.TypeOf(circle{}),
		reflect.TypeOf(square{}),
	)
	td.CmpNoError(t, err)

	enum, ok := r.Lookup(shapeType)
	td.Cmp(t, ok, true)
	td.Cmp(t, enum.Type, shapeType)
	td.Cmp(t, enum.Variants, []types.Variant{
		{Index: 0, Type: reflect.TypeOf(empty{})},
		{Index: 1, Type: reflect.TypeOf(circle{})},
		{Index: 2, Type: reflect.TypeOf(square{})},
	})
	td.Cmp(t, enum.CompactIndex(), false)

	err = r.RegisterEnum(shapeType, reflect.TypeOf(circle{}))
	td.Cmp(t, errors.Is(err, types.ErrAlreadyRegistered), true)

	_, ok = r.Lookup(reflect.TypeOf(new(error)).Elem())
	td.Cmp(t, ok, false)
}

func TestRegisterInvalid(t *testing.T) {
	testCases := []struct {
		desc string
		enum types.Enum
	}{
		{
			desc: "Not an interface",
			enum: types.Enum{
				Type:     reflect.TypeOf(circle{}),
				Variants: []types.Variant{{Index: 0, Type: reflect.TypeOf(circle{})}},
			},
		},
		{
			desc: "No variants",
			enum: types.Enum{Type: shapeType},
		},
		{
			desc: "Variant does not implement",
			enum: types.Enum{
				Type:     shapeType,
				Variants: []types.Variant{{Index: 0, Type: reflect.TypeOf(notShape{})}},
			},
		},
		{
			desc: "Duplicate index",
			enum: types.Enum{
				Type: shapeType,
				Variants: []types.Variant{
					{Index: 4, Type: reflect.TypeOf(circle{})},
					{Index: 4, Type: reflect.TypeOf(square{})},
				},
			},
		},
		{
			desc: "Duplicate type",
			enum: types.Enum{
				Type: shapeType,
				Variants: []types.Variant{
					{Index: 0, Type: reflect.TypeOf(circle{})},
					{Index: 1, Type: reflect.TypeOf(circle{})},
				},
			},
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			err := types.NewRegistry().Register(tC.enum)
			td.Cmp(t, errors.Is(err, encio.ErrBadType), true, "got %v", err)
		})
	}
}

func TestCompactIndex(t *testing.T) {
	enum := types.Enum{
		Type: shapeType,
		Variants: []types.Variant{
			{Index: 0, Type: reflect.TypeOf(circle{})},
			{Index: 256, Type: reflect.TypeOf(square{})},
		},
	}
	td.Cmp(t, enum.CompactIndex(), true)
	td.CmpNoError(t, types.NewRegistry().Register(enum))
}

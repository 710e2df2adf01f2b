package encode_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/encode"
)

type testStruct1 struct {
	A uint8
	B uint16
	C bool
}

type testStruct2 struct {
	N      uint32  `scale:"compact"`
	Skip   int     `scale:"-"`
	hidden uint8   `scale:""`
	Flags  []bool  `scale:"bits"`
	Fixed  [3]bool `scale:"bits"`
}

type testStruct3 struct {
	Name  string
	Inner struct {
		Flag bool
	}
}

type testStruct4 struct {
	A uint8 `scale:"varint"`
}

func TestStruct(t *testing.T) {
	testCases := []struct {
		desc   string
		encode interface{}
		want   []byte
	}{
		{
			desc:   "plain fields",
			encode: &testStruct1{A: 1, B: 2, C: true},
			want:   mustHex("01 0200 01"),
		},
		{
			desc: "tagged fields",
			encode: &testStruct2{
				N:      64,
				hidden: 7,
				Flags:  []bool{true, false, true},
				Fixed:  [3]bool{false, true, true},
			},
			want: mustHex("0101 07 0c05 06"),
		},
		{
			desc:   "empty",
			encode: &struct{}{},
			want:   []byte{},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			enc := encode.NewStruct(reflect.TypeOf(tC.encode).Elem(), testSource)
			testEqual(t, enc, tC.encode, tC.want)
		})
	}
}

func TestStructSkipped(t *testing.T) {
	v := testStruct2{Skip: 5, Flags: []bool{}}
	enc := encode.NewStruct(reflect.TypeOf(v), testSource)
	td.Cmp(t, encodeValue(t, enc, &v), mustHex("00 00 00 00"))
}

func TestStructErrorPath(t *testing.T) {
	enc := encode.NewStruct(reflect.TypeOf(testStruct3{}), testSource)
	err := enc.Decode(unsafePtr(new(testStruct3)), encio.NewCursor(mustHex("08 6869 02")))

	var e *encio.Error
	if td.CmpTrue(t, errors.As(err, &e)) {
		td.Cmp(t, e.Err, encio.ErrInvalidBool)
		td.Cmp(t, e.Path, []string{"Inner", "Flag"})
	}
}

func TestStructBadTag(t *testing.T) {
	td.CmpPanic(t, func() {
		encode.NewStruct(reflect.TypeOf(testStruct4{}), testSource)
	}, td.Isa(new(encio.Error)))
}

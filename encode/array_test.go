package encode_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/encode"
)

func TestArray(t *testing.T) {
	testCases := []struct {
		encode interface{}
		want   []byte
	}{
		{encode: &[3]uint16{1, 2, 3}, want: mustHex("0100 0200 0300")},
		{encode: &[0]uint8{}, want: []byte{}},
		{encode: &[2]string{"a", "bc"}, want: mustHex("0461 086263")},
		{encode: &[2][2]bool{{true, false}, {false, true}}, want: mustHex("0100 0001")},
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprintf("%T", tC.encode), func(t *testing.T) {
			enc := encode.NewArray(reflect.TypeOf(tC.encode).Elem(), testSource)
			testEqual(t, enc, tC.encode, tC.want)
		})
	}
}

func TestByteArray(t *testing.T) {
	v := [4]uint8{1, 2, 3, 4}
	enc := encode.NewByteArray(reflect.TypeOf(v))
	testEqual(t, enc, &v, mustHex("01020304"))

	// Same bytes as the general array encoding.
	testEqual(t, encode.NewArray(reflect.TypeOf(v), testSource), &v, mustHex("01020304"))

	testDecodeErr(t, enc, mustHex("010203"), encio.ErrUnexpectedEnd)
}

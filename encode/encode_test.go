package encode_test

import (
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/encode"
	"github.com/stewi1014/scale/types"
)

// testRegistry holds the unions used in this package's tests.
var testRegistry = types.NewRegistry()

var testSource = encode.NewCachingSource(encode.SourceFromFunc(func(t reflect.Type, s encode.Source) encode.Encodable {
	switch {
	case t == types.CompactType:
		return encode.NewCompact(t)
	case t == types.BigCompactType:
		return encode.NewBigCompact(t)
	case reflect.PtrTo(t).Implements(types.MarshalerType):
		return encode.NewCustom(t)
	case t.Kind() == reflect.Slice && t.Elem() == types.BitType:
		return encode.NewBitVec(t)
	case t.Kind() == reflect.Array && t.Elem() == types.BitType:
		return encode.NewBitArray(t)
	}

	switch t.Kind() {
	case reflect.Bool:
		return encode.NewBool(t)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return encode.NewInt(t)
	case reflect.String:
		return encode.NewString(t)
	case reflect.Struct:
		return encode.NewStruct(t, s)
	case reflect.Array:
		return encode.NewArray(t, s)
	case reflect.Slice:
		return encode.NewSlice(t, s)
	case reflect.Map:
		return encode.NewMap(t, s)
	case reflect.Ptr:
		return encode.NewOption(t, s)
	case reflect.Interface:
		enum, ok := testRegistry.Lookup(t)
		if !ok {
			panic(encio.NewError(encio.ErrBadType, t.String()+" is not registered"))
		}
		return encode.NewUnion(enum, s)
	}
	panic(encio.NewError(encio.ErrBadType, "no encodable for "+t.String()))
}))

func newEncodable(v interface{}) encode.Encodable {
	return *testSource.NewEncodable(reflect.TypeOf(v).Elem(), nil)
}

func encodeValue(t *testing.T, enc encode.Encodable, v interface{}) []byte {
	t.Helper()
	b := new(encio.Buffer)
	if err := enc.Encode(reflect.ValueOf(v).UnsafePointer(), b); err != nil {
		t.Fatalf("encoding %v: %v", reflect.ValueOf(v).Elem(), err)
	}
	return b.Bytes()
}

// testEqual checks that the value pointed to by v encodes to want,
// and that want decodes back to the same value with no input left over.
func testEqual(t *testing.T, enc encode.Encodable, v interface{}, want []byte) {
	t.Helper()

	got := encodeValue(t, enc, v)
	td.Cmp(t, hex.EncodeToString(got), hex.EncodeToString(want), "encoded bytes")
	if len(got) < enc.Size() {
		t.Errorf("encoded %v bytes, less than the minimum size %v", len(got), enc.Size())
	}

	decoded := reflect.New(enc.Type())
	c := encio.NewCursor(got)
	td.CmpNoError(t, enc.Decode(decoded.UnsafePointer(), c))
	td.Cmp(t, c.Remaining(), 0, "bytes left over")
	td.Cmp(t, decoded.Interface(), v, "decoded value")
}

// testDecodeErr checks that decoding data into a value of enc's type fails with kind.
func testDecodeErr(t *testing.T, enc encode.Encodable, data []byte, kind error) {
	t.Helper()

	err := enc.Decode(reflect.New(enc.Type()).UnsafePointer(), encio.NewCursor(data))
	if !errors.Is(err, kind) {
		t.Errorf("decoding %x into %v: got error %v, want %v", data, enc.Type(), err, kind)
	}
}

// mustHex decodes hex, ignoring spaces.
func mustHex(s string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		panic(err)
	}
	return b
}

func unsafePtr(v interface{}) unsafe.Pointer {
	return reflect.ValueOf(v).UnsafePointer()
}

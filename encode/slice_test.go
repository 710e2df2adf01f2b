package encode_test

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/encode"
)

func TestSlice(t *testing.T) {
	testCases := []struct {
		desc   string
		encode interface{}
		want   []byte
	}{
		{
			desc:   "Empty Int slice",
			encode: &[]uint16{},
			want:   mustHex("00"),
		},
		{
			desc:   "A few numbers",
			encode: &[]uint16{1, 2, 3},
			want:   mustHex("0c 0100 0200 0300"),
		},
		{
			desc:   "Some strings",
			encode: &[]string{"Hello", "World"},
			want:   mustHex("08 14 48656c6c6f 14 576f726c64"),
		},
		{
			desc:   "Nested",
			encode: &[][]uint8{{1}, {}, {2, 3}},
			want:   mustHex("0c 0401 00 080203"),
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			enc := encode.NewSlice(reflect.TypeOf(tC.encode).Elem(), testSource)
			testEqual(t, enc, tC.encode, tC.want)
		})
	}
}

func TestSliceNil(t *testing.T) {
	var v []uint16
	enc := encode.NewSlice(reflect.TypeOf(v), testSource)
	td.Cmp(t, encodeValue(t, enc, &v), mustHex("00"))
}

func TestSliceLength(t *testing.T) {
	enc := encode.NewSlice(reflect.TypeOf([]uint16{}), testSource)

	// 2 elements of 2 bytes with 2 bytes remaining.
	testDecodeErr(t, enc, mustHex("08 0100"), encio.ErrLengthOverflow)
	testDecodeErr(t, enc, mustHex("08 0100"), encio.ErrUnexpectedEnd)

	zero := encode.NewSlice(reflect.TypeOf([]struct{}{}), testSource)
	testDecodeErr(t, zero, mustHex("0300000040"), encio.ErrLengthOverflow)
}

func TestByteSlice(t *testing.T) {
	v := []byte{1, 2, 3}
	enc := encode.NewByteSlice(reflect.TypeOf(v))
	testEqual(t, enc, &v, mustHex("0c 010203"))
	testEqual(t, encode.NewSlice(reflect.TypeOf(v), testSource), &v, mustHex("0c 010203"))

	testDecodeErr(t, enc, mustHex("feffffff"), encio.ErrLengthOverflow)
	testDecodeErr(t, enc, mustHex("0c 0102"), encio.ErrUnexpectedEnd)
}

// countingEncodable counts calls to Decode.
type countingEncodable struct {
	encode.Encodable
	decodes *int
}

func (e countingEncodable) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	*e.decodes++
	return e.Encodable.Decode(ptr, c)
}

// countingSource builds slices itself, and counts the element decodes of everything else.
func countingSource(decodes *int) encode.Source {
	return encode.SourceFromFunc(func(t reflect.Type, s encode.Source) encode.Encodable {
		if t.Kind() == reflect.Slice {
			return encode.NewSlice(t, s)
		}
		return countingEncodable{
			Encodable: *testSource.NewEncodable(t, nil),
			decodes:   decodes,
		}
	})
}

func TestSliceZeroSize(t *testing.T) {
	// 1<<24 elements.
	long := "02000004"

	t.Run("empty struct", func(t *testing.T) {
		decodes := 0
		enc := encode.NewSlice(reflect.TypeOf([]struct{}{}), countingSource(&decodes))

		var v []struct{}
		c := encio.NewCursor(mustHex(long))
		td.CmpNoError(t, enc.Decode(unsafePtr(&v), c))
		td.Cmp(t, len(v), 1<<24)
		td.Cmp(t, c.Remaining(), 0)
		td.Cmp(t, decodes, 1)
	})

	t.Run("nested", func(t *testing.T) {
		decodes := 0
		enc := encode.NewSlice(reflect.TypeOf([][]struct{}{}), countingSource(&decodes))

		var v [][]struct{}
		c := encio.NewCursor(mustHex("10" + long + long + long + long))
		td.CmpNoError(t, enc.Decode(unsafePtr(&v), c))
		td.Cmp(t, len(v), 4)
		for _, inner := range v {
			td.Cmp(t, len(inner), 1<<24)
		}
		td.Cmp(t, decodes, 4)
	})

	t.Run("zero length arrays", func(t *testing.T) {
		decodes := 0
		enc := encode.NewSlice(reflect.TypeOf([][0]uint64{}), countingSource(&decodes))

		var v [][0]uint64
		td.CmpNoError(t, enc.Decode(unsafePtr(&v), encio.NewCursor(mustHex(long))))
		td.Cmp(t, len(v), 1<<24)
		td.Cmp(t, decodes, 1)
	})
}

// marker reads one byte but holds nothing.
type marker struct{}

func (*marker) MarshalSCALE(b *encio.Buffer) error { return b.WriteByte(1) }

func (*marker) UnmarshalSCALE(c *encio.Cursor) error {
	by, err := c.ReadByte()
	if err != nil {
		return err
	}
	if by != 1 {
		return encio.NewError(encio.ErrInvalidBool, "marker must be 1")
	}
	return nil
}

func TestSliceZeroSizeReadsInput(t *testing.T) {
	v := []marker{{}, {}, {}}
	enc := encode.NewSlice(reflect.TypeOf(v), testSource)
	testEqual(t, enc, &v, mustHex("0c 01 01 01"))

	testDecodeErr(t, enc, mustHex("0c 01 01"), encio.ErrUnexpectedEnd)
	testDecodeErr(t, enc, mustHex("0c 01 01 02"), encio.ErrInvalidBool)
}

func TestSliceRepeatsZeroWidthElement(t *testing.T) {
	// A custom element can read nothing and still hold a value.
	v := []constant{7, 7, 7, 7, 7}
	enc := encode.NewSlice(reflect.TypeOf(v), testSource)
	testEqual(t, enc, &v, mustHex("14"))
}

// constant is always 7 and encodes to nothing.
type constant uint32

func (*constant) MarshalSCALE(*encio.Buffer) error { return nil }

func (c *constant) UnmarshalSCALE(*encio.Cursor) error {
	*c = 7
	return nil
}

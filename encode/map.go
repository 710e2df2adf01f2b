package encode

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// NewMap returns a new map Encodable.
func NewMap(ty reflect.Type, src Source) *Map {
	if ty.Kind() != reflect.Map {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a map", ty)))
	}

	return &Map{
		key: src.NewEncodable(ty.Key(), nil),
		val: src.NewEncodable(ty.Elem(), nil),
		t:   ty,
	}
}

// Map is an Encodable for maps.
// A map is encoded as a variable sequence of key-value pairs, sorted by key.
// Integer and string keys are sorted by value; other keys by their encoded bytes.
// Equal maps always produce the same bytes.
type Map struct {
	key, val *Encodable
	t        reflect.Type
}

// Size implements Encodable.
func (e *Map) Size() int { return 1 }

// Type implements Encodable.
func (e *Map) Type() reflect.Type {
	return e.t
}

type mapEntry struct {
	key     reflect.Value
	encoded []byte
}

func (e *Map) less(a, b mapEntry) bool {
	switch e.t.Key().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.key.Int() < b.key.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.key.Uint() < b.key.Uint()
	case reflect.String:
		return a.key.String() < b.key.String()
	default:
		return bytes.Compare(a.encoded, b.encoded) < 0
	}
}

// Encode implements Encodable.
func (e *Map) Encode(ptr unsafe.Pointer, b *encio.Buffer) error {
	checkPtr(ptr)
	v := reflect.NewAt(e.t, ptr).Elem()

	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key := reflect.New(e.t.Key()).Elem()
		key.Set(iter.Key())

		kb := new(encio.Buffer)
		if err := (*e.key).Encode(unsafe.Pointer(key.UnsafeAddr()), kb); err != nil {
			return encio.WithPath(err, fmt.Sprintf("[%v]", key))
		}

		entries = append(entries, mapEntry{
			key:     key,
			encoded: kb.Bytes(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return e.less(entries[i], entries[j])
	})

	encio.EncodeCompact(b, uint64(len(entries)))

	val := reflect.New(e.t.Elem()).Elem()
	for _, entry := range entries {
		if _, err := b.Write(entry.encoded); err != nil {
			return err
		}

		val.Set(v.MapIndex(entry.key))
		if err := (*e.val).Encode(unsafe.Pointer(val.UnsafeAddr()), b); err != nil {
			return encio.WithPath(err, fmt.Sprintf("[%v]", entry.key))
		}
	}

	return nil
}

// Decode implements Encodable.
// The decoded map is always newly allocated. A key that appears twice keeps the last value.
func (e *Map) Decode(ptr unsafe.Pointer, c *encio.Cursor) error {
	checkPtr(ptr)
	l, err := encio.DecodeCompact(c)
	if err != nil {
		return err
	}

	minSize := (*e.key).Size() + (*e.val).Size()
	if err := checkLength(l, minSize, e.t.Key().Size()+e.t.Elem().Size(), c); err != nil {
		return err
	}

	// An entry that reads no bytes ends the loop, so at most Remaining()+1 are stored.
	hint := int(l)
	if hint > c.Remaining()+1 {
		hint = c.Remaining() + 1
	}

	v := reflect.MakeMapWithSize(e.t, hint)
	for i := 0; i < int(l); i++ {
		start := c.Offset()
		nKey := reflect.New(e.t.Key()).Elem()
		if err := (*e.key).Decode(unsafe.Pointer(nKey.UnsafeAddr()), c); err != nil {
			return encio.WithPath(err, indexPath(i))
		}

		nVal := reflect.New(e.t.Elem()).Elem()
		if err := (*e.val).Decode(unsafe.Pointer(nVal.UnsafeAddr()), c); err != nil {
			return encio.WithPath(err, fmt.Sprintf("[%v]", nKey))
		}

		v.SetMapIndex(nKey, nVal)

		// An entry read from no bytes repeats, and the repeats replace it.
		if c.Offset() == start {
			break
		}
	}

	reflect.NewAt(e.t, ptr).Elem().Set(v)
	return nil
}

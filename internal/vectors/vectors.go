// Package vectors is a fixed set of values covering every shape the codec handles:
// tuples, nested tuples, arrays, vectors, enums, options, mixed nesting, compact integers and bit-strings.
// The encoding of each is kept in testdata/vectors.yaml, produced by a reference implementation of the format.
package vectors

import (
	"github.com/stewi1014/scale"
	"github.com/stewi1014/scale/internal/shuffle"
	"github.com/stewi1014/scale/types"
)

// Vector is a named value.
type Vector struct {
	Name string

	// Value is a pointer to the value.
	Value interface{}
}

// TestEnum is a union of three variants; a unit variant, one holding a single value and one holding an array.
type TestEnum interface {
	isTestEnum()
}

// Dummy is the unit variant of TestEnum.
type Dummy struct{}

// Foo is TestEnum's single value variant.
type Foo struct {
	Value uint8
}

// Bar is TestEnum's array variant.
type Bar struct {
	Values [8]uint8
}

func (Dummy) isTestEnum() {}
func (Foo) isTestEnum()   {}
func (Bar) isTestEnum()   {}

func init() {
	if err := scale.RegisterEnum((*TestEnum)(nil), Dummy{}, Foo{}, Bar{}); err != nil {
		panic(err)
	}
}

// Tuple is a non-uniform fixed length sequence.
type Tuple struct {
	A uint8
	B uint16
	C uint32
	D uint64
}

// NestedTuple holds the fields of Tuple and two more, nested.
type NestedTuple struct {
	A uint8
	B struct {
		A struct {
			A uint16
			B uint32
		}
		B struct {
			A uint64
			B uint8
			C int32
		}
	}
}

type pair struct {
	A uint8
	B uint16
}

type optionalEntry struct {
	A uint8
	B *struct {
		A uint16
		B []uint8
	}
}

type optionalEntries struct {
	First struct {
		A *uint16
		B uint8
	}
	Entries []optionalEntry
}

type nested struct {
	A uint16
	B struct {
		A uint64
		B *uint8
	}
}

type mixed struct {
	A uint8
	B struct {
		A, B uint16
	}
	C []uint16
	D []struct {
		A uint8
		B uint32
	}
}

type integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int
}

// seq returns 0, 1 ... n-1.
func seq[T integer](n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(i)
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}

func bits(b ...int) []types.Bit {
	s := make([]types.Bit, len(b))
	for i := range b {
		s[i] = b[i] != 0
	}
	return s
}

// All returns the vectors, in a fixed order.
func All() []Vector {
	var vectors []Vector
	add := func(name string, v interface{}) {
		vectors = append(vectors, Vector{Name: name, Value: v})
	}

	// Non-uniform fixed length sequences

	add("tuple", &Tuple{A: 0xf1, B: 0x1234, C: 0xFF00cc11, D: 0x1231092319023131})

	nt := &NestedTuple{A: 0xf1}
	nt.B.A.A, nt.B.A.B = 0x1234, 0xFF00cc11
	nt.B.B.A, nt.B.B.B, nt.B.B.C = 0x1231092319023131, 0x32, 3
	add("nested tuple", nt)

	// Uniform fixed length sequences

	add("empty array", &[0]uint8{})
	add("array of tuples", &[3]pair{{3, 0x3122}, {8, 0x3321}, {9, 0x9973}})

	var shuffled [16]uint8
	copy(shuffled[:], shuffle.Shuffle(seq[uint8](16)))
	add("shuffled array", &shuffled)

	// Uniform variable length sequences

	add("vec u16", &[]uint16{1, 2, 3})
	add("vec u16 range", ptr(seq[uint16](127)))
	add("vec u8 range", ptr(seq[uint8](200)))

	// Enumerations

	add("enum dummy", ptr[TestEnum](Dummy{}))
	add("enum foo", ptr[TestEnum](Foo{Value: 42}))
	add("enum bar", ptr[TestEnum](Bar{Values: [8]uint8{1, 2, 3, 4, 5, 6, 7, 8}}))

	// Optional entries

	add("option none", new(*uint16))
	add("option some", ptr(ptr(uint8(42))))

	var options []*[]uint8
	for _, i := range shuffle.Shuffle(seq[int](15)) {
		if i%3 == 0 {
			options = append(options, nil)
		} else {
			options = append(options, ptr(shuffle.Shuffle(seq[uint8](i))))
		}
	}
	add("vec of options", &options)

	entries := &optionalEntries{}
	entries.First.A, entries.First.B = ptr(uint16(0x1234)), 42
	for _, i := range shuffle.Shuffle(seq[uint16](15)) {
		entry := optionalEntry{A: uint8(i)}
		if i%3 != 0 {
			entry.B = &struct {
				A uint16
				B []uint8
			}{A: i % 5, B: shuffle.Shuffle(seq[uint8](int(i)))}
		}
		entries.Entries = append(entries.Entries, entry)
	}
	add("option and vec of tuples", entries)

	// A mix of the above

	var nestedTuples []nested
	for _, i := range shuffle.Shuffle(seq[int](10)) {
		n := nested{A: uint16(i)}
		n.B.A, n.B.B = 2*uint64(i), ptr(3*uint8(i))
		nestedTuples = append(nestedTuples, n)
	}
	add("vec of nested tuples", &nestedTuples)

	m := &mixed{A: 3, C: shuffle.Shuffle(seq[uint16](12))}
	m.B.A, m.B.B = 0x5242, 0x3312
	for _, i := range shuffle.Shuffle(seq[uint8](30)) {
		m.D = append(m.D, struct {
			A uint8
			B uint32
		}{A: i, B: uint32(i)})
	}
	add("mixed", m)

	// Some compact values

	for _, c := range []struct {
		name string
		n    types.Compact
	}{
		{"compact 0x0", 0},
		{"compact 0x7f", 127},
		{"compact 0x80", 128},
		{"compact 0x3ff", 1023},
		{"compact 0x1000", 0x1000},
		{"compact 0x3fff", 0x3fff},
		{"compact 0x4000", 0x4000},
		{"compact 0xfff1", 0xfff1},
		{"compact 0x1fffff", 0x1fffff},
		{"compact 0x200000", 0x200000},
		{"compact 0xfff1ff", 0xfff1ff},
		{"compact 0xffffffffff", 0xffffffffff},
		{"compact 0xab1c50bbc19a", 0xab1c50bbc19a},
	} {
		add(c.name, ptr(c.n))
	}

	// Bit-strings

	add("fixed bits 0", &[1]types.Bit{false})
	add("fixed bits 000", &[3]types.Bit{})
	add("fixed bits 1", &[1]types.Bit{true})
	add("fixed bits 1101", (*[4]types.Bit)(bits(1, 1, 0, 1)))
	add("fixed bits 0011001101", (*[10]types.Bit)(bits(0, 0, 1, 1, 0, 0, 1, 1, 0, 1)))

	add("variable bits 0", ptr(types.BitVec(bits(0))))
	add("variable bits 000", ptr(types.BitVec(bits(0, 0, 0))))
	add("variable bits 1", ptr(types.BitVec(bits(1))))
	add("variable bits 1011", ptr(types.BitVec(bits(1, 0, 1, 1))))
	add("variable bits 1011011101", ptr(types.BitVec(bits(1, 0, 1, 1, 0, 1, 1, 1, 0, 1))))
	add("variable bits 010111", ptr(types.BitVec(bits(0, 1, 0, 1, 1, 1))))

	return vectors
}

package scale_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/scale"
	"github.com/stewi1014/scale/encio"
	"github.com/stewi1014/scale/types"
)

func TestEncoderDecoder(t *testing.T) {
	buff := new(bytes.Buffer)
	enc := scale.NewEncoder(buff, nil)

	td.CmpNoError(t, enc.Encode(uint8(1)))
	td.CmpNoError(t, enc.Encode("two"))
	td.CmpNoError(t, enc.Encode(&[]types.Compact{3, 64}))
	td.CmpNoError(t, enc.Encode(types.NewBitVec(true, true)))

	td.Cmp(t, buff.Bytes(), mustHex("01 0c74776f 08 0c 0101 08 03"))

	dec := scale.NewDecoder(buff.Bytes(), nil)

	var a uint8
	td.CmpNoError(t, dec.Decode(&a))
	td.Cmp(t, a, uint8(1))

	var b string
	td.CmpNoError(t, dec.Decode(&b))
	td.Cmp(t, b, "two")

	var c []types.Compact
	td.CmpNoError(t, dec.Decode(&c))
	td.Cmp(t, c, []types.Compact{3, 64})

	td.Cmp(t, dec.Remaining(), 2)

	var d types.BitVec
	td.CmpNoError(t, dec.Decode(&d))
	td.Cmp(t, d, types.NewBitVec(true, true))

	td.Cmp(t, dec.Remaining(), 0)
	td.CmpErrorIs(t, dec.Decode(&a), encio.ErrUnexpectedEnd)
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEncoderWriteError(t *testing.T) {
	enc := scale.NewEncoder(failWriter{}, nil)
	td.CmpErrorIs(t, enc.Encode(uint8(1)), errWrite)
}

type record struct {
	ID   uint32
	Name string
}

func TestEncoderConcurrent(t *testing.T) {
	buff := new(bytes.Buffer)
	enc := scale.NewEncoder(buff, nil)

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := enc.Encode(&record{ID: uint32(i), Name: "record"}); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[uint32]bool)
	dec := scale.NewDecoder(buff.Bytes(), nil)
	for dec.Remaining() > 0 {
		var r record
		td.CmpNoError(t, dec.Decode(&r))
		td.Cmp(t, r.Name, "record")
		seen[r.ID] = true
	}
	td.Cmp(t, len(seen), n)
}

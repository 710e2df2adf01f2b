package encio_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/scale/encio"
)

func TestUint16(t *testing.T) {
	testCases := []uint16{
		0, 1, 2, 255, 256, 257, 1<<15 - 1, 1 << 15, 1<<16 - 1,
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			buff := new(encio.Buffer)
			buff.WriteUint16(tC)
			td.Cmp(t, buff.Bytes(), []byte{byte(tC), byte(tC >> 8)})

			c := encio.NewCursor(buff.Bytes())
			n, err := c.ReadUint16()
			td.CmpNoError(t, err)
			td.Cmp(t, n, tC)
			td.Cmp(t, c.Remaining(), 0)
		})
	}
}

func TestUint32(t *testing.T) {
	testCases := []uint32{
		0, 1, 2, 3, 4,
		246, 247, 248, 249, 250, 251, 252, 253, 254, 255, 256, 257,
		1 << 8, 1 << 16, 1 << 24, 1<<32 - 1,
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			buff := new(encio.Buffer)
			buff.WriteUint32(tC)
			td.Cmp(t, buff.Len(), 4)

			c := encio.NewCursor(buff.Bytes())
			n, err := c.ReadUint32()
			td.CmpNoError(t, err)
			td.Cmp(t, n, tC)
			td.Cmp(t, c.Remaining(), 0)
		})
	}
}

func TestUint64(t *testing.T) {
	testCases := []uint64{
		0, 1, 1 << 8, 1 << 16, 1 << 24, 1 << 32, 1 << 40, 1 << 48, 1 << 56, 1<<64 - 1,
		0x1231092319023131,
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			buff := new(encio.Buffer)
			buff.WriteUint64(tC)
			td.Cmp(t, buff.Len(), 8)

			c := encio.NewCursor(buff.Bytes())
			n, err := c.ReadUint64()
			td.CmpNoError(t, err)
			td.Cmp(t, n, tC)
		})
	}
}

func TestLittleEndian(t *testing.T) {
	buff := new(encio.Buffer)
	buff.WriteUint16(0x1234)
	buff.WriteUint32(0xFF00cc11)
	buff.WriteUint64(0x1231092319023131)
	buff.WriteUint128(1, 2)

	td.Cmp(t, buff.Bytes(), []byte{
		0x34, 0x12,
		0x11, 0xcc, 0x00, 0xff,
		0x31, 0x31, 0x02, 0x19, 0x23, 0x09, 0x31, 0x12,
		1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0,
	})

	c := encio.NewCursor(buff.Bytes())
	td.CmpNoError(t, c.Advance(14))
	lo, hi, err := c.ReadUint128()
	td.CmpNoError(t, err)
	td.Cmp(t, lo, uint64(1))
	td.Cmp(t, hi, uint64(2))
	td.Cmp(t, c.Remaining(), 0)
}

func TestTruncatedInts(t *testing.T) {
	testCases := []struct {
		desc string
		read func(*encio.Cursor) error
		size int
	}{
		{
			desc: "uint16",
			read: func(c *encio.Cursor) error { _, err := c.ReadUint16(); return err },
			size: 2,
		},
		{
			desc: "uint32",
			read: func(c *encio.Cursor) error { _, err := c.ReadUint32(); return err },
			size: 4,
		},
		{
			desc: "uint64",
			read: func(c *encio.Cursor) error { _, err := c.ReadUint64(); return err },
			size: 8,
		},
		{
			desc: "uint128",
			read: func(c *encio.Cursor) error { _, _, err := c.ReadUint128(); return err },
			size: 16,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			for l := 0; l < tC.size; l++ {
				err := tC.read(encio.NewCursor(make([]byte, l)))
				if !errors.Is(err, encio.ErrUnexpectedEnd) {
					t.Errorf("reading from %v bytes: got %v, want %v", l, err, encio.ErrUnexpectedEnd)
				}
			}
		})
	}
}

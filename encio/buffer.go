package encio

import (
	"fmt"
	"io"
)

// NewBuffer returns a Buffer with room for size bytes before it needs to grow.
func NewBuffer(size int) *Buffer {
	return &Buffer{
		buff: make([]byte, 0, size),
	}
}

// Buffer is an append-only output buffer. The zero value is ready to use.
// It is owned by exactly one encode call at a time.
type Buffer struct {
	buff []byte
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(buff []byte) (int, error) {
	return copy(b.buff[b.grow(len(buff)):], buff), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (b *Buffer) WriteByte(by byte) error {
	b.buff[b.grow(1)] = by
	return nil
}

// Extend grows the buffer by n bytes and returns them for the caller to fill.
// The returned slice is only valid until the next write.
func (b *Buffer) Extend(n int) []byte {
	off := b.grow(n)
	return b.buff[off : off+n]
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.buff)
}

// Bytes returns the written bytes. The buffer must not be written to after calling Bytes,
// or the returned slice may change.
func (b *Buffer) Bytes() []byte {
	return b.buff
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.buff = b.buff[:0]
}

// WriteTo implements io.WriterTo, writing the buffer's contents to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buff)
	if err == nil && n != len(b.buff) {
		err = fmt.Errorf("%w: wrote %v of %v bytes", io.ErrShortWrite, n, len(b.buff))
	}
	return int64(n), err
}

// grow makes room for n more bytes, returning the offset to write them at.
func (b *Buffer) grow(n int) int {
	l := len(b.buff)
	if l+n <= cap(b.buff) {
		b.buff = b.buff[:l+n]
		return l
	}

	// must allocate
	nb := make([]byte, l+n, cap(b.buff)*2+n)
	copy(nb, b.buff)
	b.buff = nb
	return l
}

// NewCursor returns a Cursor reading from the start of buff.
// buff is borrowed, not copied, and must not be modified while the Cursor is in use.
func NewCursor(buff []byte) *Cursor {
	return &Cursor{
		buff: buff,
	}
}

// Cursor is a read position over an immutable byte slice.
// It is owned by exactly one decode call at a time.
type Cursor struct {
	buff []byte
	off  int

	// AllowNonCanonical disables the check that compact integers are encoded in their smallest form.
	AllowNonCanonical bool
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buff) - c.off
}

// Offset returns the number of bytes read so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, error) {
	if c.off >= len(c.buff) {
		return 0, c.unexpectedEnd(1)
	}
	return c.buff[c.off], nil
}

// ReadByte implements io.ByteReader.
func (c *Cursor) ReadByte() (byte, error) {
	if c.off >= len(c.buff) {
		return 0, c.unexpectedEnd(1)
	}
	by := c.buff[c.off]
	c.off++
	return by, nil
}

// Read returns the next n bytes and advances past them.
// The returned slice aliases the input and must not be modified.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, c.unexpectedEnd(n)
	}
	buff := c.buff[c.off : c.off+n]
	c.off += n
	return buff, nil
}

// Advance skips n bytes.
func (c *Cursor) Advance(n int) error {
	if n < 0 || n > c.Remaining() {
		return c.unexpectedEnd(n)
	}
	c.off += n
	return nil
}

func (c *Cursor) unexpectedEnd(want int) error {
	return NewError(ErrUnexpectedEnd, fmt.Sprintf("want %v bytes at offset %v but only %v remain", want, c.off, c.Remaining()))
}

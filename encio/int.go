package encio

// EncodeUint16 writes a uint16 to the first 2 bytes of buff.
func EncodeUint16(buff []byte, n uint16) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
}

// DecodeUint16 reads a uint16 from the first 2 bytes of buff.
func DecodeUint16(buff []byte) uint16 {
	n := uint16(buff[0])
	n |= uint16(buff[1]) << 8
	return n
}

// EncodeUint32 writes a uint32 to the first 4 bytes of buff.
func EncodeUint32(buff []byte, n uint32) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
}

// DecodeUint32 reads a uint32 from the first 4 bytes of buff.
func DecodeUint32(buff []byte) uint32 {
	n := uint32(buff[0])
	n |= uint32(buff[1]) << 8
	n |= uint32(buff[2]) << 16
	n |= uint32(buff[3]) << 24
	return n
}

// EncodeUint64 writes a uint64 to the first 8 bytes of buff.
func EncodeUint64(buff []byte, n uint64) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
	buff[4] = uint8(n >> 32)
	buff[5] = uint8(n >> 40)
	buff[6] = uint8(n >> 48)
	buff[7] = uint8(n >> 56)
}

// DecodeUint64 reads a uint64 from the first 8 bytes of buff.
func DecodeUint64(buff []byte) uint64 {
	n := uint64(buff[0])
	n |= uint64(buff[1]) << 8
	n |= uint64(buff[2]) << 16
	n |= uint64(buff[3]) << 24
	n |= uint64(buff[4]) << 32
	n |= uint64(buff[5]) << 40
	n |= uint64(buff[6]) << 48
	n |= uint64(buff[7]) << 56
	return n
}

// WriteUint16 appends n in little-endian order.
func (b *Buffer) WriteUint16(n uint16) {
	EncodeUint16(b.Extend(2), n)
}

// WriteUint32 appends n in little-endian order.
func (b *Buffer) WriteUint32(n uint32) {
	EncodeUint32(b.Extend(4), n)
}

// WriteUint64 appends n in little-endian order.
func (b *Buffer) WriteUint64(n uint64) {
	EncodeUint64(b.Extend(8), n)
}

// WriteUint128 appends the 128 bit integer with low word lo and high word hi in little-endian order.
func (b *Buffer) WriteUint128(lo, hi uint64) {
	buff := b.Extend(16)
	EncodeUint64(buff, lo)
	EncodeUint64(buff[8:], hi)
}

// ReadUint16 reads a little-endian uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	buff, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	return DecodeUint16(buff), nil
}

// ReadUint32 reads a little-endian uint32.
func (c *Cursor) ReadUint32() (uint32, error) {
	buff, err := c.Read(4)
	if err != nil {
		return 0, err
	}
	return DecodeUint32(buff), nil
}

// ReadUint64 reads a little-endian uint64.
func (c *Cursor) ReadUint64() (uint64, error) {
	buff, err := c.Read(8)
	if err != nil {
		return 0, err
	}
	return DecodeUint64(buff), nil
}

// ReadUint128 reads a little-endian 128 bit integer, returning its low and high words.
func (c *Cursor) ReadUint128() (lo, hi uint64, err error) {
	buff, err := c.Read(16)
	if err != nil {
		return 0, 0, err
	}
	return DecodeUint64(buff), DecodeUint64(buff[8:]), nil
}

package scale

import (
	"sync"

	"github.com/stewi1014/scale/encio"
)

// NewDecoder returns a new Decoder reading from data.
// data is not copied, and must not be modified while the Decoder is in use.
func NewDecoder(data []byte, config *Config) *Decoder {
	config = config.copyAndFill()

	c := encio.NewCursor(data)
	c.AllowNonCanonical = config.AllowNonCanonical

	return &Decoder{
		c:      c,
		config: config,
	}
}

// Decoder decodes consecutive values from a byte slice.
// It is safe for concurrent use.
type Decoder struct {
	c      *encio.Cursor
	config *Config
	mutex  sync.Mutex
}

// Decode decodes the next value into the value pointed to by v.
// The value pointed to by v is only changed if decoding succeeds.
// If decoding fails, the Decoder's position is undefined.
func (d *Decoder) Decode(v interface{}) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	target, decoded, err := decodeValue(d.config, v, d.c)
	if err != nil {
		return err
	}

	target.Set(decoded)
	return nil
}

// Remaining returns the number of bytes not yet decoded.
func (d *Decoder) Remaining() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.c.Remaining()
}

package scale

import (
	"io"
	"sync"

	"github.com/stewi1014/scale/encio"
)

// NewEncoder returns a new Encoder writing to w.
func NewEncoder(w io.Writer, config *Config) *Encoder {
	return &Encoder{
		w:      w,
		config: config.copyAndFill(),
	}
}

// Encoder writes encoded values to an io.Writer, one after another.
// It is safe for concurrent use; each value is written with a single call to Write.
type Encoder struct {
	w      io.Writer
	config *Config
	mutex  sync.Mutex
	buff   encio.Buffer
}

// Encode writes the encoding of v, or the value it points to.
func (e *Encoder) Encode(v interface{}) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.buff.Reset()
	if err := encodeValue(e.config, v, &e.buff); err != nil {
		return err
	}

	_, err := e.buff.WriteTo(e.w)
	return err
}

package encode

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/stewi1014/scale/encio"
)

// Encodable is an encoder and decoder for a single Go type.
// Encodables hold no state between calls once created; one Encodable may be used by any number of goroutines at once.
type Encodable interface {
	// Size returns the smallest number of bytes an encoded value can occupy.
	// Sequence decoders use it to reject lengths that can't fit in the remaining input.
	Size() int

	// Type returns the type the Encodable encodes.
	Type() reflect.Type

	// Encode appends the value at ptr to b.
	// ptr must be a non-nil pointer to a value of Type().
	Encode(ptr unsafe.Pointer, b *encio.Buffer) error

	// Decode reads a value from c into the value at ptr.
	// ptr must be a non-nil pointer to a value of Type().
	// If an error is returned the value at ptr may be partially written, and must be discarded.
	Decode(ptr unsafe.Pointer, c *encio.Cursor) error
}

// Source is a generator of Encodables. Compound type Encodables take Source as an argument upon creation,
// and use it for the generation of their element types.
//
// There are a few implementations of Source in this library, and in many cases wrapping Sources that provide different features is helpful.
// CachingSource for example, has no idea what Encodables should be used to encode a given type, rather, it wraps a Source which does,
// and adds caching and handling for recursive types.
type Source interface {
	// NewEncodable returns a new Encodable to be used to serialise the given type.
	//
	// It returns a pointer to an Encodable as it needs to be able to retroactively modify it;
	// a recursive type is given a reference to its own Encodable before that Encodable is finished.
	//
	// The Source passed to NewEncodable must be passed to the Encodable that it creates. It is used by wrapping Sources to pass themselves to new Encodables,
	// so they don't lose control of element Encodable generation.
	NewEncodable(reflect.Type, Source) *Encodable
}

// SourceFromFunc creates a source from a function.
// It will substitute itself if NewEncodable() is called with a nil-source.
func SourceFromFunc(source func(reflect.Type, Source) Encodable) Source {
	return funcSource{newEncodable: source}
}

type funcSource struct {
	newEncodable func(reflect.Type, Source) Encodable
}

func (s funcSource) NewEncodable(ty reflect.Type, source Source) *Encodable {
	if source == nil {
		source = s
	}
	enc := s.newEncodable(ty, source)
	return &enc
}

// NewCachingSource returns a new CachingSource, using source for cache misses.
func NewCachingSource(source Source) *CachingSource {
	return &CachingSource{
		cache:  make(map[reflect.Type]*Encodable),
		Source: source,
	}
}

// CachingSource provides a cache of Encodables. It is thread safe.
//
// A type's cache entry is created before its Encodable is, so recursive types, such as a struct holding a slice of itself,
// get a reference to their own Encodable instead of recursing forever.
// If creation panics, every entry added during that call is removed again.
type CachingSource struct {
	mutex   sync.Mutex
	cache   map[reflect.Type]*Encodable
	pending []reflect.Type
	Source
}

// NewEncodable implements Source.
// parent is ignored; element Encodables are always created through the cache,
// so a Source wrapping a CachingSource can't call back into it while it builds.
func (src *CachingSource) NewEncodable(ty reflect.Type, parent Source) *Encodable {
	src.mutex.Lock()
	defer src.mutex.Unlock()

	if enc, ok := src.cache[ty]; ok {
		return enc
	}

	defer func() {
		if r := recover(); r != nil {
			for _, t := range src.pending {
				delete(src.cache, t)
			}
			src.pending = src.pending[:0]
			panic(r)
		}
		src.pending = src.pending[:0]
	}()

	return src.get(ty)
}

// get must be called with the mutex held.
func (src *CachingSource) get(ty reflect.Type) *Encodable {
	if enc, ok := src.cache[ty]; ok {
		return enc
	}

	enc := new(Encodable)
	src.cache[ty] = enc
	src.pending = append(src.pending, ty)
	*enc = *src.Source.NewEncodable(ty, lockedSource{src})
	return enc
}

// lockedSource is the view of a CachingSource given to Encodables it creates;
// it is only used while the CachingSource's mutex is held.
type lockedSource struct {
	src *CachingSource
}

func (s lockedSource) NewEncodable(ty reflect.Type, _ Source) *Encodable {
	return s.src.get(ty)
}

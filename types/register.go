package types

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/stewi1014/scale/encio"
)

// ErrAlreadyRegistered is returned by Register if the interface type has already been registered.
// It is wrapped.
var ErrAlreadyRegistered = errors.New("already registered")

// Variant is one alternative of a union.
type Variant struct {
	// Index is the discriminant written before the variant's payload.
	Index uint64

	// Type is the concrete type holding the variant's payload. It must implement the union's interface.
	// Zero-sized types such as struct{} are unit variants and encode no payload.
	// If Type is a pointer, the value it points to is the payload.
	Type reflect.Type
}

// Enum describes a union: an interface type and the concrete types it may hold.
type Enum struct {
	Type     reflect.Type
	Variants []Variant
}

// CompactIndex reports whether the discriminant is written as a compact integer rather than a single byte.
// That is the case when there are more than 256 variants or an index doesn't fit in a byte.
func (e Enum) CompactIndex() bool {
	if len(e.Variants) > 256 {
		return true
	}
	for _, v := range e.Variants {
		if v.Index > 255 {
			return true
		}
	}
	return false
}

func (e Enum) validate() error {
	if e.Type == nil || e.Type.Kind() != reflect.Interface {
		return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not an interface", e.Type))
	}

	if len(e.Variants) == 0 {
		return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v has no variants", e.Type))
	}

	indices := make(map[uint64]reflect.Type, len(e.Variants))
	types := make(map[reflect.Type]uint64, len(e.Variants))
	for _, v := range e.Variants {
		if v.Type == nil {
			return encio.NewError(encio.ErrBadType, fmt.Sprintf("variant %v of %v has no type", v.Index, e.Type))
		}
		if v.Type.Kind() == reflect.Interface {
			return encio.NewError(encio.ErrBadType, fmt.Sprintf("variant %v of %v is an interface", v.Type, e.Type))
		}
		if !v.Type.Implements(e.Type) {
			return encio.NewError(encio.ErrBadType, fmt.Sprintf("variant %v does not implement %v", v.Type, e.Type))
		}
		if prev, ok := indices[v.Index]; ok {
			return encio.NewError(encio.ErrBadType, fmt.Sprintf("variants %v and %v of %v share index %v", prev, v.Type, e.Type, v.Index))
		}
		if prev, ok := types[v.Type]; ok {
			return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is registered twice in %v, at %v and %v", v.Type, e.Type, prev, v.Index))
		}
		indices[v.Index] = v.Type
		types[v.Type] = v.Index
	}

	return nil
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		enums: make(map[reflect.Type]Enum),
	}
}

// Registry holds the unions known to a Source.
// It is thread safe.
type Registry struct {
	mutex sync.RWMutex
	enums map[reflect.Type]Enum
}

// DefaultRegistry is the Registry used by the package-level register functions.
var DefaultRegistry = NewRegistry()

// Register registers enum.
func (r *Registry) Register(enum Enum) error {
	if err := enum.validate(); err != nil {
		return err
	}

	variants := make([]Variant, len(enum.Variants))
	copy(variants, enum.Variants)
	enum.Variants = variants

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.enums[enum.Type]; ok {
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, enum.Type)
	}
	r.enums[enum.Type] = enum
	return nil
}

// RegisterEnum registers the interface type iface with the given variant types.
// Variants are indexed in the order given, starting at 0.
func (r *Registry) RegisterEnum(iface reflect.Type, variants ...reflect.Type) error {
	enum := Enum{
		Type:     iface,
		Variants: make([]Variant, len(variants)),
	}
	for i, ty := range variants {
		enum.Variants[i] = Variant{
			Index: uint64(i),
			Type:  ty,
		}
	}
	return r.Register(enum)
}

// Lookup returns the Enum registered for iface.
func (r *Registry) Lookup(iface reflect.Type) (Enum, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	enum, ok := r.enums[iface]
	return enum, ok
}

// Register registers enum with DefaultRegistry.
func Register(enum Enum) error {
	return DefaultRegistry.Register(enum)
}

// RegisterEnum registers iface and its variants with DefaultRegistry.
func RegisterEnum(iface reflect.Type, variants ...reflect.Type) error {
	return DefaultRegistry.RegisterEnum(iface, variants...)
}

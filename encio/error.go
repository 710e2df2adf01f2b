package encio

import (
	"errors"
	"strings"
)

// Error handling in scale is built around a small set of error kinds. Every error returned by
// a decoder wraps exactly one of them, so callers can check with
//
//	if errors.Is(err, encio.ErrUnexpectedEnd) {
//		// input was truncated
//	}
//
// no matter how deep in a nested value the error happened.
// Panics are only used when there is a clear misuse of the library; programmer error,
// such as asking for an encodable for a type that has no encoding.
var (
	// ErrUnexpectedEnd is returned when the input ends before a value is complete.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrInvalidBool is returned when a boolean byte is neither 0 nor 1.
	ErrInvalidBool = errors.New("invalid bool")

	// ErrInvalidOption is returned when an option's presence byte is neither 0 nor 1.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidVariant is returned when a union discriminant has no matching variant.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrOverflow is returned when a value does not fit the type it is decoded into,
	// or is too large to be encoded at all.
	ErrOverflow = errors.New("overflow")

	// ErrLengthOverflow is returned when a decoded sequence length is larger than the
	// remaining input or TooBig allow.
	ErrLengthOverflow = errors.New("length overflow")

	// ErrNonCanonical is returned when a compact integer is not encoded in its smallest form.
	ErrNonCanonical = errors.New("non-canonical compact integer")

	// ErrInvalidUTF8 is returned when a decoded string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrTrailingData is returned when input remains after a complete top-level value.
	ErrTrailingData = errors.New("trailing data")

	// ErrBadType is returned when a type is wrong, unresolvable or has no encoding.
	// If this error is seen, it should be taken seriously; it indicates a programming error.
	ErrBadType = errors.New("bad type")

	// ErrNilPointer is returned if a pointer or interface that should not be nil is nil.
	ErrNilPointer = errors.New("nil pointer")
)

// NewError returns an Error of kind err with the given message.
func NewError(err error, message string) error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// NewErrorCause returns an Error of kind err, caused by cause.
// errors.Is matches both err and cause.
func NewErrorCause(err, cause error, message string) error {
	return &Error{
		Err:     err,
		Cause:   cause,
		Message: message,
	}
}

// Error is the error type returned by scale.
type Error struct {
	// Err is the error kind, one of the Err* variables,
	// or an error from a custom decoder that wraps one.
	Err error

	// Cause is an optional second error; when set errors.Is matches it as well.
	Cause error

	// Message has extra information about the error.
	Message string

	// Path is the location of the failing value inside the top-level value,
	// outermost first; i.e. ["Header", "[3]", "Digest"].
	Path []string
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder

	if len(e.Path) > 0 {
		b.WriteString(strings.Join(e.Path, "."))
		b.WriteString(": ")
	}

	b.WriteString(e.Err.Error())

	if e.Message != "" {
		b.WriteString(" (")
		b.WriteString(e.Message)
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// WithPath annotates err with the location elem, i.e. a field name or "[i]".
// Errors that are not *Error, including wrappers around one, are wrapped whole,
// keeping their message and staying reachable through errors.Is.
// A nil err returns nil.
func WithPath(err error, elem string) error {
	if err == nil {
		return nil
	}

	e, ok := err.(*Error)
	if !ok {
		return &Error{
			Err:  err,
			Path: []string{elem},
		}
	}

	path := make([]string, 0, len(e.Path)+1)
	path = append(path, elem)
	path = append(path, e.Path...)

	return &Error{
		Err:     e.Err,
		Cause:   e.Cause,
		Message: e.Message,
		Path:    path,
	}
}

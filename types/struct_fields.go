package types

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/stewi1014/scale/encio"
)

const (
	// StructTag is the struct tag controlling how a field is encoded.
	// Its value is a comma separated list of options:
	//
	//	"-"        the field is skipped
	//	"compact"  an unsigned integer field is encoded as a compact integer
	//	"bits"     a []bool or [N]bool field is encoded as a packed bit-string
	//
	// Exported fields are encoded unless skipped. Unexported fields are encoded only if they carry the tag,
	// which may be empty (`scale:""`).
	StructTag = "scale"
)

// Field is a struct field selected for encoding.
type Field struct {
	reflect.StructField

	// Compact is set by the "compact" tag option.
	Compact bool

	// Bits is set by the "bits" tag option.
	Bits bool
}

// StructFields returns the fields of ty that are encoded, in declaration order.
// Declaration order is part of the encoding; reordering fields changes the encoded bytes.
func StructFields(ty reflect.Type) ([]Field, error) {
	fields := make([]Field, 0, ty.NumField())
	for i := 0; i < ty.NumField(); i++ {
		field := Field{
			StructField: ty.Field(i),
		}

		tag, tagged := field.Tag.Lookup(StructTag)
		if tag == "-" {
			continue
		}

		if !tagged && !unicode.IsUpper([]rune(field.Name)[0]) {
			// Not tagged and not exported
			continue
		}

		if tag != "" {
			for _, opt := range strings.Split(tag, ",") {
				switch opt {
				case "compact":
					field.Compact = true
				case "bits":
					field.Bits = true
				default:
					return nil, encio.NewError(encio.ErrBadType, fmt.Sprintf("unknown option %q in tag of field %v in %v", opt, field.Name, ty))
				}
			}
		}

		if field.Compact && field.Bits {
			return nil, encio.NewError(encio.ErrBadType, fmt.Sprintf("field %v in %v cannot be both compact and bits", field.Name, ty))
		}

		fields = append(fields, field)
	}

	return fields, nil
}

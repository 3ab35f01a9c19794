package typedcsv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadValue is returned when a field's text does not fully parse into its column kind.
var ErrBadValue = errors.New("typedcsv: error parsing value")

// Kind identifies the target type of one schema column.
type Kind uint8

const (
	// KindString leaves the field untouched; conversion always succeeds.
	KindString Kind = iota
	// KindInt parses a signed decimal integer sized for the platform.
	KindInt
	// KindInt64 parses a signed 64-bit decimal integer.
	KindInt64
	// KindUint parses an unsigned 64-bit decimal integer.
	KindUint
	// KindFloat parses a 64-bit floating point number.
	KindFloat
	// KindBool parses the forms accepted by strconv.ParseBool.
	KindBool
)

var kindNames = [...]string{"string", "int", "int64", "uint", "float", "bool"}

// String returns the textual name of the kind, matching what ParseKind accepts.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a textual kind name to its Kind. It accepts the names
// reported by Kind.String plus the aliases "float64", "double", and "str".
func ParseKind(name string) (Kind, error) {
	switch name {
	case "string", "str":
		return KindString, nil
	case "int":
		return KindInt, nil
	case "int64":
		return KindInt64, nil
	case "uint", "uint64":
		return KindUint, nil
	case "float", "float64", "double":
		return KindFloat, nil
	case "bool":
		return KindBool, nil
	}
	return 0, fmt.Errorf("typedcsv: unknown kind %q", name)
}

// ParseSchema parses a comma-separated kind list such as "string,int,float".
// Whitespace around each name is ignored.
func ParseSchema(spec string) (Schema, error) {
	parts := strings.Split(spec, ",")
	schema := make(Schema, 0, len(parts))
	for _, part := range parts {
		kind, err := ParseKind(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		schema = append(schema, kind)
	}
	return schema, nil
}

// Convert turns one raw field into a value of the given kind. KindString is
// the identity and never fails. Every other kind requires the entire field to
// parse: surrounding whitespace, trailing characters, empty input, and values
// out of range for the target width all return an error wrapping ErrBadValue.
func Convert(kind Kind, raw string) (any, error) {
	switch kind {
	case KindString:
		return raw, nil
	case KindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, convertError(kind, raw)
		}
		return v, nil
	case KindInt64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, convertError(kind, raw)
		}
		return v, nil
	case KindUint:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, convertError(kind, raw)
		}
		return v, nil
	case KindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, convertError(kind, raw)
		}
		return v, nil
	case KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, convertError(kind, raw)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: unsupported kind %s", ErrBadValue, kind)
}

func convertError(kind Kind, raw string) error {
	return fmt.Errorf("%w: cannot convert %q to %s", ErrBadValue, raw, kind)
}

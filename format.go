package homie5

import (
	"fmt"
	"strings"
)

// PropertyFormat is the parsed form of a property's format attribute. The
// concrete type depends on the property's datatype:
//
//   - integer  -> IntegerRange
//   - float    -> FloatRange
//   - enum     -> EnumFormat
//   - color    -> ColorFormat
//   - boolean  -> BooleanFormat
//   - json     -> JSONSchemaFormat
//   - others   -> CustomFormat
//
// A nil PropertyFormat means the property declares no format.
type PropertyFormat interface {
	fmt.Stringer

	// IsEmpty reports whether the format carries no constraint.
	IsEmpty() bool

	propertyFormat()
}

func (IntegerRange) propertyFormat()     {}
func (FloatRange) propertyFormat()       {}
func (EnumFormat) propertyFormat()       {}
func (ColorFormat) propertyFormat()      {}
func (BooleanFormat) propertyFormat()    {}
func (JSONSchemaFormat) propertyFormat() {}
func (CustomFormat) propertyFormat()     {}

// EnumFormat is the allowed value set of an enum property.
type EnumFormat []string

// IsEmpty reports whether the enum declares no values.
func (e EnumFormat) IsEmpty() bool { return len(e) == 0 }

// String renders the comma separated enum wire form.
func (e EnumFormat) String() string { return strings.Join(e, ",") }

// Contains reports whether value is one of the allowed enum values.
func (e EnumFormat) Contains(value string) bool {
	for _, v := range e {
		if v == value {
			return true
		}
	}
	return false
}

// ColorFormat lists the color spaces a color property accepts.
type ColorFormat []ColorSpace

// IsEmpty reports whether no color space is declared.
func (c ColorFormat) IsEmpty() bool { return len(c) == 0 }

// String renders the comma separated color space list.
func (c ColorFormat) String() string {
	names := make([]string, len(c))
	for i, space := range c {
		names[i] = space.String()
	}
	return strings.Join(names, ",")
}

// Supports reports whether the format allows the given color space.
func (c ColorFormat) Supports(space ColorSpace) bool {
	for _, s := range c {
		if s == space {
			return true
		}
	}
	return false
}

// BooleanFormat declares display labels for the two boolean states
// ("<false-label>,<true-label>"). The labels are presentation hints only:
// wire payloads always use the literals "true" and "false".
type BooleanFormat struct {
	FalseLabel string
	TrueLabel  string
}

// IsEmpty reports whether both labels are empty.
func (b BooleanFormat) IsEmpty() bool { return b.FalseLabel == "" && b.TrueLabel == "" }

// String renders the "<false-label>,<true-label>" wire form.
func (b BooleanFormat) String() string { return b.FalseLabel + "," + b.TrueLabel }

// JSONSchemaFormat carries the raw JSON schema string of a json property.
type JSONSchemaFormat string

// IsEmpty reports whether the schema string is empty.
func (j JSONSchemaFormat) IsEmpty() bool { return j == "" }

func (j JSONSchemaFormat) String() string { return string(j) }

// CustomFormat carries a free-form format string for datatypes without a
// defined format grammar.
type CustomFormat string

// IsEmpty reports whether the format string is empty.
func (c CustomFormat) IsEmpty() bool { return c == "" }

func (c CustomFormat) String() string { return string(c) }

// ParsePropertyFormat parses a format attribute string in the context of the
// property's datatype. An empty raw string yields a nil format, as does a
// numeric range with no components.
func ParsePropertyFormat(raw string, datatype HomieDataType) (PropertyFormat, error) {
	if raw == "" {
		return nil, nil
	}
	switch datatype {
	case DataTypeInteger:
		r, err := ParseIntegerRange(raw)
		if err != nil {
			return nil, err
		}
		if r.IsEmpty() {
			return nil, nil
		}
		return r, nil
	case DataTypeFloat:
		r, err := ParseFloatRange(raw)
		if err != nil {
			return nil, err
		}
		if r.IsEmpty() {
			return nil, nil
		}
		return r, nil
	case DataTypeEnum:
		return EnumFormat(strings.Split(raw, ",")), nil
	case DataTypeColor:
		tokens := strings.Split(raw, ",")
		spaces := make(ColorFormat, 0, len(tokens))
		for _, tok := range tokens {
			space, err := ParseColorSpace(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: bad color format %q", ErrInvalidFormat, raw)
			}
			spaces = append(spaces, space)
		}
		return spaces, nil
	case DataTypeBoolean:
		tokens := strings.Split(raw, ",")
		if len(tokens) != 2 || tokens[0] == "" || tokens[1] == "" || tokens[0] == tokens[1] {
			return nil, fmt.Errorf("%w: bad boolean format %q", ErrInvalidFormat, raw)
		}
		return BooleanFormat{FalseLabel: tokens[0], TrueLabel: tokens[1]}, nil
	case DataTypeJSON:
		return JSONSchemaFormat(raw), nil
	default:
		return CustomFormat(raw), nil
	}
}

// FormatString renders a PropertyFormat (possibly nil) back to its wire
// string.
func FormatString(f PropertyFormat) string {
	if f == nil {
		return ""
	}
	return f.String()
}

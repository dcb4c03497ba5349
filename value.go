package homie5

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// HomieValue is the typed form of a property payload. Concrete types are
// EmptyValue, StringValue, IntegerValue, FloatValue, BooleanValue, EnumValue,
// ColorValue, DateTimeValue, DurationValue and JSONValue.
//
// String() renders the canonical wire form; the rendering is value preserving
// but not necessarily byte identical to the input it was parsed from ("1.0"
// and "1" both parse to the same float and render identically).
type HomieValue interface {
	fmt.Stringer

	// DataType returns the Homie datatype the value belongs to. Empty
	// values report the string datatype.
	DataType() HomieDataType

	homieValue()
}

// EmptyValue is the uninitialized value of a property.
type EmptyValue struct{}

func (EmptyValue) String() string          { return "" }
func (EmptyValue) DataType() HomieDataType { return DataTypeString }
func (EmptyValue) homieValue()             {}

// StringValue is a plain string payload.
type StringValue string

func (v StringValue) String() string        { return string(v) }
func (StringValue) DataType() HomieDataType { return DataTypeString }
func (StringValue) homieValue()             {}

// IntegerValue is a 64-bit signed integer payload.
type IntegerValue int64

func (v IntegerValue) String() string        { return strconv.FormatInt(int64(v), 10) }
func (IntegerValue) DataType() HomieDataType { return DataTypeInteger }
func (IntegerValue) homieValue()             {}

// FloatValue is a 64-bit float payload.
type FloatValue float64

func (v FloatValue) String() string        { return formatFloat(float64(v)) }
func (FloatValue) DataType() HomieDataType { return DataTypeFloat }
func (FloatValue) homieValue()             {}

// BooleanValue is a boolean payload. The wire literals are exactly "true"
// and "false".
type BooleanValue bool

func (v BooleanValue) String() string {
	if v {
		return "true"
	}
	return "false"
}
func (BooleanValue) DataType() HomieDataType { return DataTypeBoolean }
func (BooleanValue) homieValue()             {}

// EnumValue is one member of an enum property's declared value set.
type EnumValue string

func (v EnumValue) String() string        { return string(v) }
func (EnumValue) DataType() HomieDataType { return DataTypeEnum }
func (EnumValue) homieValue()             {}

func (ColorValue) DataType() HomieDataType { return DataTypeColor }
func (ColorValue) homieValue()             {}

// DateTimeValue is a UTC timestamp payload.
type DateTimeValue time.Time

func (v DateTimeValue) String() string {
	return time.Time(v).UTC().Format(time.RFC3339)
}
func (DateTimeValue) DataType() HomieDataType { return DataTypeDatetime }
func (DateTimeValue) homieValue()             {}

// Time returns the underlying time.Time.
func (v DateTimeValue) Time() time.Time { return time.Time(v) }

// DurationValue is an ISO 8601 duration payload with second granularity.
type DurationValue time.Duration

func (v DurationValue) String() string {
	total := int64(time.Duration(v) / time.Second)
	if total == 0 {
		return "PT0S"
	}
	var b strings.Builder
	if total < 0 {
		b.WriteByte('-')
		total = -total
	}
	b.WriteString("PT")
	if h := total / 3600; h > 0 {
		fmt.Fprintf(&b, "%dH", h)
	}
	if m := total % 3600 / 60; m > 0 {
		fmt.Fprintf(&b, "%dM", m)
	}
	if s := total % 60; s > 0 {
		fmt.Fprintf(&b, "%dS", s)
	}
	return b.String()
}
func (DurationValue) DataType() HomieDataType { return DataTypeDuration }
func (DurationValue) homieValue()             {}

// Duration returns the underlying time.Duration.
func (v DurationValue) Duration() time.Duration { return time.Duration(v) }

// JSONValue is a raw JSON payload, kept as received.
type JSONValue string

func (v JSONValue) String() string        { return string(v) }
func (JSONValue) DataType() HomieDataType { return DataTypeJSON }
func (JSONValue) homieValue()             {}

// ====================================================================
// Parsing
// ====================================================================

// ParseValue converts a raw payload string into the typed HomieValue the
// property description prescribes. An empty raw string is EmptyValue for
// every datatype: a cleared retained topic decodes to the empty string and
// means "no value", not a malformed one. Numeric values are rounded to the
// declared step (anchored at min, falling back to max) before the bounds
// check; enum and color values are checked against the declared format.
func ParseValue(raw string, desc *PropertyDescription) (HomieValue, error) {
	if raw == "" {
		return EmptyValue{}, nil
	}
	switch desc.DataType {
	case DataTypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid integer", ErrValueParse, raw)
		}
		if r, ok := desc.Format.(IntegerRange); ok {
			return clampInteger(n, r)
		}
		return IntegerValue(n), nil
	case DataTypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid float", ErrValueParse, raw)
		}
		if r, ok := desc.Format.(FloatRange); ok {
			return clampFloat(f, r)
		}
		return FloatValue(f), nil
	case DataTypeBoolean:
		switch raw {
		case "true":
			return BooleanValue(true), nil
		case "false":
			return BooleanValue(false), nil
		default:
			return nil, fmt.Errorf("%w: %q is not a valid boolean", ErrFormatMismatch, raw)
		}
	case DataTypeString:
		return StringValue(raw), nil
	case DataTypeEnum:
		if values, ok := desc.Format.(EnumFormat); ok {
			if !values.Contains(raw) {
				return nil, fmt.Errorf("%w: %q not in %q", ErrInvalidEnumValue, raw, values)
			}
		}
		return EnumValue(raw), nil
	case DataTypeColor:
		color, err := ParseColor(raw)
		if err != nil {
			return nil, err
		}
		if formats, ok := desc.Format.(ColorFormat); ok && !formats.IsEmpty() {
			if !formats.Supports(color.Space) {
				return nil, fmt.Errorf("%w: color space %s not in supported formats %q",
					ErrFormatMismatch, color.Space, formats)
			}
		}
		return color, nil
	case DataTypeDatetime:
		t, err := parseFlexibleDateTime(raw)
		if err != nil {
			return nil, err
		}
		return DateTimeValue(t), nil
	case DataTypeDuration:
		d, err := parseISODuration(raw)
		if err != nil {
			return nil, err
		}
		return DurationValue(d), nil
	case DataTypeJSON:
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("%w: invalid JSON payload", ErrValueParse)
		}
		return JSONValue(raw), nil
	default:
		return nil, fmt.Errorf("%w: HomieDataType(%d)", ErrInvalidDataType, int(desc.DataType))
	}
}

func clampInteger(n int64, r IntegerRange) (HomieValue, error) {
	clamped, err := r.Clamp(n)
	if err != nil {
		return nil, err
	}
	return IntegerValue(clamped), nil
}

func clampFloat(f float64, r FloatRange) (HomieValue, error) {
	clamped, err := r.Clamp(f)
	if err != nil {
		return nil, err
	}
	return FloatValue(clamped), nil
}

// durationPattern accepts the convention's PTxHxMxS duration form with an
// optional leading sign. At least one component must be present: a bare
// "PT" carries no value.
var durationPattern = regexp.MustCompile(`^(-)?PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

func parseISODuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil || (m[2] == "" && m[3] == "" && m[4] == "") {
		return 0, fmt.Errorf("%w: %q is not a valid duration", ErrValueParse, s)
	}
	var total int64
	for i, factor := range []int64{3600, 60, 1} {
		if m[i+2] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a valid duration", ErrValueParse, s)
		}
		total += n * factor
	}
	if m[1] == "-" {
		total = -total
	}
	return time.Duration(total) * time.Second, nil
}

// parseFlexibleDateTime keeps compatibility with devices that publish naive
// timestamps: full RFC3339 first, then a timezone-less fallback (with or
// without a trailing Z) interpreted as UTC.
func parseFlexibleDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	naive := strings.TrimSuffix(s, "Z")
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", naive, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a valid datetime", ErrValueParse, s)
}

// ====================================================================
// Validation and wire encoding
// ====================================================================

// ValidateValue reports whether value conforms to the description: matching
// datatype, within range (without needing rounding), member of the enum set,
// supported color space.
func ValidateValue(value HomieValue, desc *PropertyDescription) bool {
	switch v := value.(type) {
	case EmptyValue:
		return desc.DataType == DataTypeString
	case StringValue:
		return desc.DataType == DataTypeString
	case IntegerValue:
		if desc.DataType != DataTypeInteger {
			return false
		}
		if r, ok := desc.Format.(IntegerRange); ok {
			clamped, err := r.Clamp(int64(v))
			return err == nil && clamped == int64(v)
		}
		return true
	case FloatValue:
		if desc.DataType != DataTypeFloat {
			return false
		}
		if r, ok := desc.Format.(FloatRange); ok {
			clamped, err := r.Clamp(float64(v))
			return err == nil && clamped == float64(v)
		}
		return true
	case BooleanValue:
		return desc.DataType == DataTypeBoolean
	case EnumValue:
		if desc.DataType != DataTypeEnum {
			return false
		}
		values, ok := desc.Format.(EnumFormat)
		return ok && values.Contains(string(v))
	case ColorValue:
		if desc.DataType != DataTypeColor {
			return false
		}
		formats, ok := desc.Format.(ColorFormat)
		return ok && formats.Supports(v.Space)
	case DateTimeValue:
		return desc.DataType == DataTypeDatetime
	case DurationValue:
		return desc.DataType == DataTypeDuration
	case JSONValue:
		return desc.DataType == DataTypeJSON
	default:
		return false
	}
}

// WirePayload renders a value into the payload bytes to publish. An empty
// rendering is encoded as a single zero byte, which the convention uses to
// transport empty strings.
func WirePayload(value HomieValue) []byte {
	return StringPayload(value.String())
}

// StringPayload encodes a string into payload bytes, substituting a single
// zero byte for the empty string.
func StringPayload(s string) []byte {
	if s == "" {
		return []byte{0}
	}
	return []byte(s)
}

// PayloadString decodes payload bytes into a string: a single zero byte maps
// back to the empty string, everything else must be valid UTF-8.
func PayloadString(payload []byte) (string, error) {
	if len(payload) == 1 && payload[0] == 0 {
		return "", nil
	}
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("%w: payload is not valid UTF-8", ErrInvalidPayload)
	}
	return string(payload), nil
}

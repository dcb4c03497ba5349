package homie5

import (
	"encoding/json"
	"fmt"
)

// HomieDataType enumerates the nine property datatypes defined by the
// convention. The zero value is DataTypeInteger.
type HomieDataType int

const (
	DataTypeInteger HomieDataType = iota
	DataTypeFloat
	DataTypeBoolean
	DataTypeString
	DataTypeEnum
	DataTypeColor
	DataTypeDatetime
	DataTypeDuration
	DataTypeJSON
)

var dataTypeNames = map[HomieDataType]string{
	DataTypeInteger:  "integer",
	DataTypeFloat:    "float",
	DataTypeBoolean:  "boolean",
	DataTypeString:   "string",
	DataTypeEnum:     "enum",
	DataTypeColor:    "color",
	DataTypeDatetime: "datetime",
	DataTypeDuration: "duration",
	DataTypeJSON:     "json",
}

// ParseDataType converts the wire string of a datatype (as carried in the
// device description) back into its HomieDataType.
func ParseDataType(s string) (HomieDataType, error) {
	switch s {
	case "integer":
		return DataTypeInteger, nil
	case "float":
		return DataTypeFloat, nil
	case "boolean":
		return DataTypeBoolean, nil
	case "string":
		return DataTypeString, nil
	case "enum":
		return DataTypeEnum, nil
	case "color":
		return DataTypeColor, nil
	case "datetime":
		return DataTypeDatetime, nil
	case "duration":
		return DataTypeDuration, nil
	case "json":
		return DataTypeJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDataType, s)
	}
}

// String returns the lowercase wire form of the datatype.
func (dt HomieDataType) String() string {
	if name, ok := dataTypeNames[dt]; ok {
		return name
	}
	return fmt.Sprintf("HomieDataType(%d)", int(dt))
}

// MarshalJSON encodes the datatype as its wire string.
func (dt HomieDataType) MarshalJSON() ([]byte, error) {
	name, ok := dataTypeNames[dt]
	if !ok {
		return nil, fmt.Errorf("%w: HomieDataType(%d)", ErrInvalidDataType, int(dt))
	}
	return []byte(`"` + name + `"`), nil
}

// UnmarshalJSON decodes a datatype wire string.
func (dt *HomieDataType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: datatype must be a JSON string", ErrInvalidDataType)
	}
	parsed, err := ParseDataType(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

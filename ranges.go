package homie5

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IntegerRange is the parsed "min:max:step" format of an integer property.
// Absent components are nil.
type IntegerRange struct {
	Min  *int64
	Max  *int64
	Step *int64
}

// IsEmpty reports whether no component of the range is set.
func (r IntegerRange) IsEmpty() bool {
	return r.Min == nil && r.Max == nil && r.Step == nil
}

// ParseIntegerRange parses a "min:max:step" format string. Each component
// may be omitted; a step must be positive and must not exceed max-min.
func ParseIntegerRange(raw string) (IntegerRange, error) {
	parts, err := splitRange(raw)
	if err != nil {
		return IntegerRange{}, err
	}
	var comps [3]*int64
	for i, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return IntegerRange{}, fmt.Errorf("%w: bad integer range %q", ErrInvalidFormat, raw)
		}
		v := n
		comps[i] = &v
	}
	r := IntegerRange{Min: comps[0], Max: comps[1], Step: comps[2]}
	if !r.valid() {
		return IntegerRange{}, fmt.Errorf("%w: inconsistent integer range %q", ErrInvalidFormat, raw)
	}
	return r, nil
}

func (r IntegerRange) valid() bool {
	if r.Step != nil && *r.Step <= 0 {
		return false
	}
	if r.Min != nil && r.Max != nil {
		if *r.Min > *r.Max {
			return false
		}
		if r.Step != nil && *r.Step > *r.Max-*r.Min {
			return false
		}
	}
	return true
}

// String renders the range back to its "min:max:step" wire form. A
// lone min renders as "min:" to stay distinguishable from a bare value.
func (r IntegerRange) String() string {
	var b strings.Builder
	if r.Min != nil {
		b.WriteString(strconv.FormatInt(*r.Min, 10))
		if r.Max == nil && r.Step == nil {
			b.WriteString(":")
			return b.String()
		}
	}
	if r.Max != nil {
		b.WriteString(":")
		b.WriteString(strconv.FormatInt(*r.Max, 10))
	} else if r.Step != nil {
		b.WriteString(":")
	}
	if r.Step != nil {
		b.WriteString(":")
		b.WriteString(strconv.FormatInt(*r.Step, 10))
	}
	return b.String()
}

// Clamp validates value against the range, rounding to the nearest step
// (anchored at min, falling back to max) before the bounds check.
func (r IntegerRange) Clamp(value int64) (int64, error) {
	base := value
	if r.Min != nil {
		base = *r.Min
	} else if r.Max != nil {
		base = *r.Max
	}
	rounded := value
	if r.Step != nil && *r.Step > 0 {
		steps := math.Round(float64(value-base) / float64(*r.Step))
		rounded = int64(steps)*(*r.Step) + base
	}
	if r.Min != nil && rounded < *r.Min {
		return 0, fmt.Errorf("%w: %d below minimum %s", ErrValueOutOfRange, value, r)
	}
	if r.Max != nil && rounded > *r.Max {
		return 0, fmt.Errorf("%w: %d above maximum %s", ErrValueOutOfRange, value, r)
	}
	return rounded, nil
}

// FloatRange is the parsed "min:max:step" format of a float property.
type FloatRange struct {
	Min  *float64
	Max  *float64
	Step *float64
}

// IsEmpty reports whether no component of the range is set.
func (r FloatRange) IsEmpty() bool {
	return r.Min == nil && r.Max == nil && r.Step == nil
}

// ParseFloatRange parses a "min:max:step" format string for floats.
func ParseFloatRange(raw string) (FloatRange, error) {
	parts, err := splitRange(raw)
	if err != nil {
		return FloatRange{}, err
	}
	var comps [3]*float64
	for i, part := range parts {
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return FloatRange{}, fmt.Errorf("%w: bad float range %q", ErrInvalidFormat, raw)
		}
		v := f
		comps[i] = &v
	}
	r := FloatRange{Min: comps[0], Max: comps[1], Step: comps[2]}
	if !r.valid() {
		return FloatRange{}, fmt.Errorf("%w: inconsistent float range %q", ErrInvalidFormat, raw)
	}
	return r, nil
}

func (r FloatRange) valid() bool {
	if r.Step != nil && *r.Step <= 0 {
		return false
	}
	if r.Min != nil && r.Max != nil {
		if *r.Min > *r.Max {
			return false
		}
		if r.Step != nil && *r.Step > *r.Max-*r.Min {
			return false
		}
	}
	return true
}

// String renders the range back to its "min:max:step" wire form.
func (r FloatRange) String() string {
	var b strings.Builder
	if r.Min != nil {
		b.WriteString(formatFloat(*r.Min))
		if r.Max == nil && r.Step == nil {
			b.WriteString(":")
			return b.String()
		}
	}
	if r.Max != nil {
		b.WriteString(":")
		b.WriteString(formatFloat(*r.Max))
	} else if r.Step != nil {
		b.WriteString(":")
	}
	if r.Step != nil {
		b.WriteString(":")
		b.WriteString(formatFloat(*r.Step))
	}
	return b.String()
}

// Clamp validates value against the range, rounding to the nearest step
// (anchored at min, falling back to max) before the bounds check.
func (r FloatRange) Clamp(value float64) (float64, error) {
	base := value
	if r.Min != nil {
		base = *r.Min
	} else if r.Max != nil {
		base = *r.Max
	}
	rounded := value
	if r.Step != nil && *r.Step > 0 {
		steps := math.Round((value - base) / *r.Step)
		rounded = steps*(*r.Step) + base
	}
	if r.Min != nil && rounded < *r.Min {
		return 0, fmt.Errorf("%w: %s below minimum %s", ErrValueOutOfRange, formatFloat(value), r)
	}
	if r.Max != nil && rounded > *r.Max {
		return 0, fmt.Errorf("%w: %s above maximum %s", ErrValueOutOfRange, formatFloat(value), r)
	}
	return rounded, nil
}

// splitRange splits on ':' and enforces the three-component maximum.
func splitRange(raw string) ([]string, error) {
	parts := strings.Split(raw, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%w: range %q has too many components", ErrInvalidFormat, raw)
	}
	return parts, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

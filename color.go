package homie5

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSpace identifies one of the three color encodings the convention
// supports for color properties.
type ColorSpace int

const (
	ColorSpaceRGB ColorSpace = iota
	ColorSpaceHSV
	ColorSpaceXYZ
)

// String returns the lowercase wire form used in format strings and payload
// prefixes.
func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceRGB:
		return "rgb"
	case ColorSpaceHSV:
		return "hsv"
	case ColorSpaceXYZ:
		return "xyz"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(c))
	}
}

// ParseColorSpace converts a format token ("rgb", "hsv", "xyz") into its
// ColorSpace.
func ParseColorSpace(s string) (ColorSpace, error) {
	switch s {
	case "rgb":
		return ColorSpaceRGB, nil
	case "hsv":
		return ColorSpaceHSV, nil
	case "xyz":
		return ColorSpaceXYZ, nil
	default:
		return 0, fmt.Errorf("%w: unknown color space %q", ErrInvalidColor, s)
	}
}

// ColorValue is a color payload in one of the supported color spaces.
// RGB and HSV carry whole-number components; XYZ carries floating point x/y
// with z always derived as 1-x-y.
type ColorValue struct {
	Space ColorSpace

	// R, G, B are set for ColorSpaceRGB (0-255 each).
	R, G, B int64

	// H, S, V are set for ColorSpaceHSV (H 0-360, S/V 0-100).
	H, S, V int64

	// X, Y, Z are set for ColorSpaceXYZ (each 0.0-1.0, Z derived).
	X, Y, Z float64
}

// RGB builds an RGB color value.
func RGB(r, g, b int64) ColorValue {
	return ColorValue{Space: ColorSpaceRGB, R: r, G: g, B: b}
}

// HSV builds an HSV color value.
func HSV(h, s, v int64) ColorValue {
	return ColorValue{Space: ColorSpaceHSV, H: h, S: s, V: v}
}

// XYZ builds an XYZ color value. The z component is derived from x and y.
func XYZ(x, y float64) ColorValue {
	return ColorValue{Space: ColorSpaceXYZ, X: x, Y: y, Z: 1 - x - y}
}

// ParseColor parses a color payload of the form
// "rgb,<r>,<g>,<b>", "hsv,<h>,<s>,<v>" or "xyz,<x>,<y>".
func ParseColor(s string) (ColorValue, error) {
	tokens := strings.Split(s, ",")
	switch tokens[0] {
	case "rgb", "hsv":
		if len(tokens) != 4 {
			return ColorValue{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		var comps [3]int64
		for i, tok := range tokens[1:] {
			n, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return ColorValue{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
			}
			comps[i] = n
		}
		if tokens[0] == "rgb" {
			return RGB(comps[0], comps[1], comps[2]), nil
		}
		return HSV(comps[0], comps[1], comps[2]), nil
	case "xyz":
		if len(tokens) != 3 {
			return ColorValue{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		x, errX := strconv.ParseFloat(tokens[1], 64)
		y, errY := strconv.ParseFloat(tokens[2], 64)
		if errX != nil || errY != nil {
			return ColorValue{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return XYZ(x, y), nil
	default:
		return ColorValue{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

// String renders the wire form of the color. XYZ omits the derived z
// component.
func (c ColorValue) String() string {
	switch c.Space {
	case ColorSpaceRGB:
		return fmt.Sprintf("rgb,%d,%d,%d", c.R, c.G, c.B)
	case ColorSpaceHSV:
		return fmt.Sprintf("hsv,%d,%d,%d", c.H, c.S, c.V)
	case ColorSpaceXYZ:
		return fmt.Sprintf("xyz,%s,%s",
			strconv.FormatFloat(c.X, 'f', -1, 64),
			strconv.FormatFloat(c.Y, 'f', -1, 64))
	default:
		return ""
	}
}

// colorEpsilon is far more precision than any real color channel needs.
const colorEpsilon = 1e-6

// Equal compares two color values. XYZ components compare within a small
// epsilon; differing color spaces never compare equal.
func (c ColorValue) Equal(other ColorValue) bool {
	if c.Space != other.Space {
		return false
	}
	switch c.Space {
	case ColorSpaceXYZ:
		return absFloat(c.X-other.X) < colorEpsilon &&
			absFloat(c.Y-other.Y) < colorEpsilon &&
			absFloat(c.Z-other.Z) < colorEpsilon
	default:
		return c == other
	}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

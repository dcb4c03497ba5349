package homie5

import (
	"errors"
	"testing"
)

func TestParseIntegerRange(t *testing.T) {
	tests := []struct {
		raw  string
		want string // round-tripped form
	}{
		{"0:100", "0:100"},
		{"0:100:5", "0:100:5"},
		{":100", ":100"},
		{"0::5", "0::5"},
		{"::5", "::5"},
		{"10", "10:"},
		{"10:", "10:"},
		{"-20:120", "-20:120"},
	}
	for _, tt := range tests {
		r, err := ParseIntegerRange(tt.raw)
		if err != nil {
			t.Errorf("ParseIntegerRange(%q): %v", tt.raw, err)
			continue
		}
		if got := r.String(); got != tt.want {
			t.Errorf("ParseIntegerRange(%q).String() = %q, want %q", tt.raw, got, tt.want)
		}
	}

	invalid := []string{"1:2:3:4", "a:b", "10:5", "0:100:200", "0:100:-5", "1.5:2"}
	for _, raw := range invalid {
		if _, err := ParseIntegerRange(raw); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseIntegerRange(%q) = %v, want ErrInvalidFormat", raw, err)
		}
	}
}

func TestParseFloatRange(t *testing.T) {
	r, err := ParseFloatRange("1.02:5.55:0.45")
	if err != nil {
		t.Fatalf("ParseFloatRange: %v", err)
	}
	if r.Min == nil || *r.Min != 1.02 || r.Max == nil || *r.Max != 5.55 || r.Step == nil || *r.Step != 0.45 {
		t.Errorf("ParseFloatRange = %+v", r)
	}
	if got := r.String(); got != "1.02:5.55:0.45" {
		t.Errorf("String() = %q", got)
	}

	if _, err := ParseFloatRange("5:1"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("min > max: got %v", err)
	}
}

func TestParsePropertyFormat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		datatype HomieDataType
		want     string
	}{
		{"integer range", "0:100:5", DataTypeInteger, "0:100:5"},
		{"float range", "-20:120", DataTypeFloat, "-20:120"},
		{"enum", "low,medium,high", DataTypeEnum, "low,medium,high"},
		{"color", "rgb,hsv", DataTypeColor, "rgb,hsv"},
		{"boolean labels", "off,on", DataTypeBoolean, "off,on"},
		{"json schema", `{"type":"object"}`, DataTypeJSON, `{"type":"object"}`},
		{"custom", "anything", DataTypeString, "anything"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParsePropertyFormat(tt.raw, tt.datatype)
			if err != nil {
				t.Fatalf("ParsePropertyFormat: %v", err)
			}
			if got := FormatString(f); got != tt.want {
				t.Errorf("FormatString = %q, want %q", got, tt.want)
			}
		})
	}

	// An empty format string and an all-empty numeric range both yield nil.
	if f, err := ParsePropertyFormat("", DataTypeInteger); err != nil || f != nil {
		t.Errorf("empty format = %v, %v", f, err)
	}

	invalid := []struct {
		raw      string
		datatype HomieDataType
	}{
		{"rgb,cmyk", DataTypeColor},
		{"on", DataTypeBoolean},
		{"on,on", DataTypeBoolean},
		{"on,off,auto", DataTypeBoolean},
		{"x:y", DataTypeInteger},
	}
	for _, tt := range invalid {
		if _, err := ParsePropertyFormat(tt.raw, tt.datatype); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParsePropertyFormat(%q, %v) = %v, want ErrInvalidFormat", tt.raw, tt.datatype, err)
		}
	}
}

func TestEnumAndColorFormatHelpers(t *testing.T) {
	e := EnumFormat{"on", "off"}
	if !e.Contains("on") || e.Contains("auto") {
		t.Errorf("EnumFormat.Contains misbehaves: %v", e)
	}
	c := ColorFormat{ColorSpaceRGB}
	if !c.Supports(ColorSpaceRGB) || c.Supports(ColorSpaceXYZ) {
		t.Errorf("ColorFormat.Supports misbehaves: %v", c)
	}
}

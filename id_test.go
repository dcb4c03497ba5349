package homie5

import (
	"errors"
	"testing"
)

func TestNewID(t *testing.T) {
	valid := []string{
		"device-01",
		"a",
		"0",
		"temp-sensor-outside-2",
		"---",
		"a1b2c3",
	}
	for _, id := range valid {
		if _, err := NewID(id); err != nil {
			t.Errorf("NewID(%q) unexpected error: %v", id, err)
		}
	}

	invalid := []string{
		"",
		"Device",
		"temp sensor",
		"temp_sensor",
		"über",
		"dev/01",
		"dev+01",
		"$state",
	}
	for _, id := range invalid {
		if _, err := NewID(id); !errors.Is(err, ErrInvalidTopic) {
			t.Errorf("NewID(%q) = %v, want ErrInvalidTopic", id, err)
		}
	}
}

func TestMustIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustID with invalid id should panic")
		}
	}()
	MustID("Not Valid")
}

func TestNewDomain(t *testing.T) {
	tests := []struct {
		in      string
		want    HomieDomain
		wantErr bool
	}{
		{in: "homie", want: DefaultDomain},
		{in: "my-custom-root", want: HomieDomain("my-custom-root")},
		{in: "+", want: WildcardDomain},
		{in: "", wantErr: true},
		{in: "a/b", wantErr: true},
		{in: "ho#mie", wantErr: true},
		{in: "ho+mie", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NewDomain(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTopic) {
				t.Errorf("NewDomain(%q) = %v, want ErrInvalidTopic", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewDomain(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NewDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package homie5

import "fmt"

// HomieID is a validated topic identifier for devices, nodes, properties and
// alerts. Per the convention an ID contains only lowercase letters a-z,
// digits 0-9 and hyphens, and is never empty.
//
// The zero value is invalid; construct IDs with NewID or MustID.
type HomieID string

// NewID validates id and returns it as a HomieID.
func NewID(id string) (HomieID, error) {
	if id == "" {
		return "", fmt.Errorf("%w: id cannot be empty", ErrInvalidTopic)
	}
	for _, c := range id {
		if !isIDChar(c) {
			return "", fmt.Errorf("%w: id %q may only contain a-z, 0-9 and hyphens", ErrInvalidTopic, id)
		}
	}
	return HomieID(id), nil
}

// MustID returns the validated HomieID or panics. Intended for compile-time
// constant ids in tests and examples.
func MustID(id string) HomieID {
	hid, err := NewID(id)
	if err != nil {
		panic(err)
	}
	return hid
}

func (id HomieID) String() string { return string(id) }

// Valid reports whether the id conforms to the convention's charset rules.
// Useful for ids taken directly out of wire topics.
func (id HomieID) Valid() bool {
	_, err := NewID(string(id))
	return err == nil
}

func isIDChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}

package homie5

import "errors"

// Protocol-level errors. Use errors.Is() to check for these in calling code.
var (
	// ErrInvalidTopic is returned when a topic does not conform to the
	// Homie v5 topic layout (wrong segment count, bad domain or version).
	ErrInvalidTopic = errors.New("homie5: invalid topic")

	// ErrUnsupportedTopic is returned when a topic is structurally valid
	// but uses a reserved attribute segment this library does not know.
	ErrUnsupportedTopic = errors.New("homie5: unsupported topic attribute")

	// ErrInvalidPayload is returned when a payload cannot be decoded for
	// the topic it was received on (bad UTF-8, malformed description JSON).
	ErrInvalidPayload = errors.New("homie5: invalid payload")

	// ErrInvalidDeviceStatus is returned when a $state payload is not one
	// of the defined device status literals.
	ErrInvalidDeviceStatus = errors.New("homie5: invalid device status")

	// ErrInvalidLogLevel is returned when a $log topic carries an unknown
	// log level segment.
	ErrInvalidLogLevel = errors.New("homie5: invalid device log level")

	// ErrInvalidDataType is returned when a datatype string is not one of
	// the nine Homie datatypes.
	ErrInvalidDataType = errors.New("homie5: invalid datatype")

	// ErrPropertyNotFound is returned when a property-addressed operation
	// does not resolve against the device description.
	ErrPropertyNotFound = errors.New("homie5: property not found in device description")

	// ErrInvalidDescription is returned when a device description document
	// cannot be parsed or serialized.
	ErrInvalidDescription = errors.New("homie5: invalid device description")

	// ErrNonEmptyRootForRootDevice is returned when a root device's
	// description carries a root attribute. Root devices must omit it.
	ErrNonEmptyRootForRootDevice = errors.New("homie5: root device must not declare a root attribute")

	// ErrRootMismatch is returned when publishing for a child device whose
	// description names a different root device.
	ErrRootMismatch = errors.New("homie5: description root does not match the protocol's root device")
)

// Value conversion errors, wrapped by ValueError. Use errors.Is() against
// these to branch on the failure class without inspecting the message.
var (
	// ErrValueParse is the class for payloads that do not parse as the
	// declared datatype at all (bad integer, float, color, datetime,
	// duration or JSON syntax).
	ErrValueParse = errors.New("homie5: value parse error")

	// ErrValueOutOfRange is the class for numeric values outside the
	// declared min/max bounds.
	ErrValueOutOfRange = errors.New("homie5: value out of range")

	// ErrInvalidEnumValue is the class for enum payloads not contained in
	// the declared value set.
	ErrInvalidEnumValue = errors.New("homie5: value not in enum format")

	// ErrFormatMismatch is the class for payloads that violate the
	// declared format in a non-range way (boolean literals, unsupported
	// color space).
	ErrFormatMismatch = errors.New("homie5: value does not match property format")

	// ErrInvalidColor is the class for color payloads with an unknown
	// color space tag or wrong component arity.
	ErrInvalidColor = errors.New("homie5: invalid color value")

	// ErrInvalidFormat is returned when a property format string cannot be
	// parsed for the property's datatype.
	ErrInvalidFormat = errors.New("homie5: invalid property format")
)

package homie5

import "fmt"

// HomieDeviceStatus reflects the lifecycle state a device publishes on its
// $state attribute.
type HomieDeviceStatus int

const (
	// StatusInit: connected to the broker but not yet finished publishing
	// the device tree. Also re-entered during reconfiguration.
	StatusInit HomieDeviceStatus = iota

	// StatusReady: the full device tree is published and all set topics
	// are subscribed.
	StatusReady

	// StatusDisconnected: the device announced a clean disconnect.
	StatusDisconnected

	// StatusSleeping: the device is in a low-power sleep phase.
	StatusSleeping

	// StatusLost: the device disappeared without a clean disconnect. Set
	// via the root device's MQTT last will. A lost root implies every
	// child device in its tree is lost as well.
	StatusLost

	// StatusAlert: the device requires human intervention. The device
	// still operates but wants attention drawn to its $alert topics.
	StatusAlert
)

var deviceStatusNames = map[HomieDeviceStatus]string{
	StatusInit:         "init",
	StatusReady:        "ready",
	StatusDisconnected: "disconnected",
	StatusSleeping:     "sleeping",
	StatusLost:         "lost",
	StatusAlert:        "alert",
}

// ParseDeviceStatus converts a $state payload into a HomieDeviceStatus.
func ParseDeviceStatus(s string) (HomieDeviceStatus, error) {
	switch s {
	case "init":
		return StatusInit, nil
	case "ready":
		return StatusReady, nil
	case "disconnected":
		return StatusDisconnected, nil
	case "sleeping":
		return StatusSleeping, nil
	case "lost":
		return StatusLost, nil
	case "alert":
		return StatusAlert, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDeviceStatus, s)
	}
}

// String returns the lowercase wire form published on $state.
func (s HomieDeviceStatus) String() string {
	if name, ok := deviceStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("HomieDeviceStatus(%d)", int(s))
}

// DeviceLogLevel is the severity segment of a leveled $log topic
// ($log/<level>).
type DeviceLogLevel int

const (
	LogLevelDebug DeviceLogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

var logLevelNames = map[DeviceLogLevel]string{
	LogLevelDebug: "debug",
	LogLevelInfo:  "info",
	LogLevelWarn:  "warn",
	LogLevelError: "error",
	LogLevelFatal: "fatal",
}

// ParseLogLevel converts a $log topic level segment into a DeviceLogLevel.
func ParseLogLevel(s string) (DeviceLogLevel, error) {
	switch s {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "fatal":
		return LogLevelFatal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}

// String returns the lowercase wire form of the log level.
func (l DeviceLogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("DeviceLogLevel(%d)", int(l))
}

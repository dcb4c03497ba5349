package mqtt

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the transport adapter. Failures wrap the sentinel for
// the operation that produced them, so callers match with errors.Is.
var (
	// ErrNotConnected is returned when a homie5 record is handed to a
	// client that has no broker connection.
	ErrNotConnected = errors.New("mqtt: client not connected")

	// ErrConnectionFailed is returned when the initial connection attempt fails.
	ErrConnectionFailed = errors.New("mqtt: connection failed")

	// ErrPublishFailed is returned when publishing a record fails.
	ErrPublishFailed = errors.New("mqtt: publish failed")

	// ErrSubscribeFailed is returned when installing a subscription fails.
	ErrSubscribeFailed = errors.New("mqtt: subscribe failed")

	// ErrUnsubscribeFailed is returned when removing a subscription fails.
	ErrUnsubscribeFailed = errors.New("mqtt: unsubscribe failed")

	// ErrInvalidQoS is returned for a record carrying a QoS above 2. The
	// protocol core never produces one; this guards hand-built records.
	ErrInvalidQoS = errors.New("mqtt: invalid QoS level (must be 0, 1, or 2)")

	// ErrInvalidTopic is returned for a record with an empty topic.
	ErrInvalidTopic = errors.New("mqtt: topic cannot be empty")

	// ErrTimeout is wrapped alongside the operation sentinel when the
	// broker does not acknowledge within the operation deadline.
	ErrTimeout = errors.New("mqtt: operation timed out")
)

// timeoutErr builds the error for an operation whose broker ack did not
// arrive within d. It matches both op and ErrTimeout under errors.Is.
func timeoutErr(op error, d time.Duration) error {
	return fmt.Errorf("%w: %w after %v", op, ErrTimeout, d)
}

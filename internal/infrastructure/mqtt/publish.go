package mqtt

import (
	"fmt"

	"github.com/nerrad567/homie5"
)

// Maximum payload size for MQTT messages (1MB).
// This prevents resource exhaustion and aligns with typical broker limits.
const maxPayloadSize = 1 << 20 // 1MB

// Publish carries a homie5.Publish record to the broker.
//
// The record arrives fully formed from the protocol core (topic, payload,
// QoS and retain flag already decided); this method only validates and
// transmits it.
//
// Returns:
//   - error: nil on success, or wrapped error describing the failure
//
// Example:
//
//	pub := proto.PublishState(homie5.StatusReady)
//	err := client.Publish(pub)
func (c *Client) Publish(pub homie5.Publish) error {
	if pub.Topic == "" {
		return ErrInvalidTopic
	}
	if byte(pub.QoS) > maxQoS {
		return ErrInvalidQoS
	}
	if len(pub.Payload) > maxPayloadSize {
		return fmt.Errorf("%w: payload size %d exceeds maximum %d bytes", ErrPublishFailed, len(pub.Payload), maxPayloadSize)
	}

	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Publish(pub.Topic, byte(pub.QoS), pub.Retain, pub.Payload)
	if !token.WaitTimeout(defaultOpTimeout) {
		return timeoutErr(ErrPublishFailed, defaultOpTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}

// PublishAll sends a batch of publishes in order, stopping at the first
// failure. Device removal and reconfiguration produce ordered batches
// whose sequence matters ($state is always cleared first).
func (c *Client) PublishAll(pubs []homie5.Publish) error {
	for _, pub := range pubs {
		if err := c.Publish(pub); err != nil {
			return fmt.Errorf("publishing %s: %w", pub.Topic, err)
		}
	}
	return nil
}

package mqtt

import (
	"fmt"

	"github.com/nerrad567/homie5"
)

// Subscribe registers a handler for a homie5.Subscription record.
//
// The protocol core produces subscription records with MQTT wildcards
// already in place (device discovery, $log/+, broadcast/#); this method
// forwards them to the broker unchanged.
//
// The handler is called in a separate goroutine for each received message.
// Handlers should not block for extended periods as this may affect message
// processing throughput.
//
// Subscriptions are automatically restored if the connection is lost and
// reconnected (tracked internally).
//
// Example:
//
//	for _, sub := range ctrl.DiscoverDevices(domain) {
//	    err := client.Subscribe(sub, onMessage)
//	}
func (c *Client) Subscribe(sub homie5.Subscription, handler MessageHandler) error {
	if sub.Topic == "" {
		return ErrInvalidTopic
	}
	if byte(sub.QoS) > maxQoS {
		return ErrInvalidQoS
	}
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", ErrSubscribeFailed)
	}

	if !c.IsConnected() {
		return ErrNotConnected
	}

	// Track subscription for reconnection restoration
	c.subMu.Lock()
	c.subscriptions[sub.Topic] = subscription{
		topic:   sub.Topic,
		qos:     byte(sub.QoS),
		handler: handler,
	}
	c.subMu.Unlock()

	// Subscribe with wrapped handler (includes panic recovery)
	token := c.client.Subscribe(sub.Topic, byte(sub.QoS), c.wrapHandler(handler))
	if !token.WaitTimeout(defaultOpTimeout) {
		c.subMu.Lock()
		delete(c.subscriptions, sub.Topic)
		c.subMu.Unlock()
		return timeoutErr(ErrSubscribeFailed, defaultOpTimeout)
	}
	if err := token.Error(); err != nil {
		c.subMu.Lock()
		delete(c.subscriptions, sub.Topic)
		c.subMu.Unlock()
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}

	return nil
}

// SubscribeAll registers the same handler for a batch of subscriptions,
// stopping at the first failure.
func (c *Client) SubscribeAll(subs []homie5.Subscription, handler MessageHandler) error {
	for _, sub := range subs {
		if err := c.Subscribe(sub, handler); err != nil {
			return fmt.Errorf("subscribing %s: %w", sub.Topic, err)
		}
	}
	return nil
}

// Unsubscribe removes a subscription and stops receiving messages for a topic.
//
// After unsubscribing, the handler will no longer be called for new messages
// on this topic. Any messages in flight may still be delivered.
func (c *Client) Unsubscribe(unsub homie5.Unsubscribe) error {
	if unsub.Topic == "" {
		return ErrInvalidTopic
	}

	if !c.IsConnected() {
		return ErrNotConnected
	}

	// Remove from tracking
	c.subMu.Lock()
	delete(c.subscriptions, unsub.Topic)
	c.subMu.Unlock()

	token := c.client.Unsubscribe(unsub.Topic)
	if !token.WaitTimeout(defaultOpTimeout) {
		return timeoutErr(ErrUnsubscribeFailed, defaultOpTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsubscribeFailed, err)
	}

	return nil
}

// UnsubscribeAll removes a batch of subscriptions, stopping at the first failure.
func (c *Client) UnsubscribeAll(unsubs []homie5.Unsubscribe) error {
	for _, unsub := range unsubs {
		if err := c.Unsubscribe(unsub); err != nil {
			return fmt.Errorf("unsubscribing %s: %w", unsub.Topic, err)
		}
	}
	return nil
}

// SubscriptionCount returns the number of active subscriptions.
func (c *Client) SubscriptionCount() int {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return len(c.subscriptions)
}

// HasSubscription checks if a subscription exists for the given topic.
//
// Note: This checks only the exact topic string, not pattern matching.
func (c *Client) HasSubscription(topic string) bool {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	_, exists := c.subscriptions[topic]
	return exists
}

package homie5

// ControllerProtocol generates the wire actions a controller needs to
// discover and follow devices: discovery subscriptions, per-device attribute
// and property subscriptions, set commands and broadcasts. Like
// DeviceProtocol it is stateless; discovery progress lives with the caller.
//
// The discovery flow:
//
//  1. Subscribe the result of DiscoverDevices. Every retained $state in the
//     domain arrives as a DeviceStateMessage.
//  2. For each new device, subscribe SubscribeDevice to receive its
//     $description, $log and $alert attributes.
//  3. On DeviceDescriptionMessage, subscribe SubscribeProps to follow every
//     property value and $target.
//  4. PropertyValueMessage / PropertyTargetMessage are steady-state traffic;
//     no further subscription action is needed.
type ControllerProtocol struct{}

// NewControllerProtocol creates a controller protocol.
func NewControllerProtocol() *ControllerProtocol {
	return &ControllerProtocol{}
}

// DiscoverDevices subscribes to the $state attribute of every device in the
// domain. Use WildcardDomain to discover across all domains.
func (c *ControllerProtocol) DiscoverDevices(domain HomieDomain) []Subscription {
	return []Subscription{{
		Topic: NewTopicBuilder(domain).Add("+").Add(AttrState).String(),
		QoS:   QoSExactlyOnce,
	}}
}

// SubscribeDevice subscribes to a discovered device's remaining attributes:
// $log (all levels), $alert (all alert ids) and $description.
func (c *ControllerProtocol) SubscribeDevice(device DeviceRef) []Subscription {
	subs := make([]Subscription, 0, len(deviceAttributes)-1)
	for _, attr := range deviceAttributes[1:] {
		subs = append(subs, Subscription{
			Topic: deviceAttributeFilter(device, attr),
			QoS:   QoSExactlyOnce,
		})
	}
	return subs
}

// UnsubscribeDevice mirrors SubscribeDevice for a device that disappeared
// or is no longer of interest.
func (c *ControllerProtocol) UnsubscribeDevice(device DeviceRef) []Unsubscribe {
	unsubs := make([]Unsubscribe, 0, len(deviceAttributes)-1)
	for _, attr := range deviceAttributes[1:] {
		unsubs = append(unsubs, Unsubscribe{Topic: deviceAttributeFilter(device, attr)})
	}
	return unsubs
}

// deviceAttributeFilter widens the multi-segment attributes ($log carries a
// level segment, $alert an alert id) with a single-level wildcard.
func deviceAttributeFilter(device DeviceRef, attr string) string {
	switch attr {
	case AttrLog, AttrAlert:
		return device.AttributeTopic(attr) + "/+"
	default:
		return device.AttributeTopic(attr)
	}
}

// SubscribeProps subscribes to every property's value and $target topic of
// a described device, in deterministic description order.
func (c *ControllerProtocol) SubscribeProps(device DeviceRef, desc *DeviceDescription) []Subscription {
	var subs []Subscription
	desc.EachProperty(func(nodeID, propID HomieID, prop *PropertyDescription) bool {
		ref := NewPropertyRef(device.Domain, device.ID, nodeID, propID)
		subs = append(subs,
			Subscription{Topic: ref.Topic(), QoS: QoSExactlyOnce},
			Subscription{Topic: ref.AttributeTopic(AttrTarget), QoS: QoSExactlyOnce},
		)
		return true
	})
	return subs
}

// UnsubscribeProps mirrors SubscribeProps.
func (c *ControllerProtocol) UnsubscribeProps(device DeviceRef, desc *DeviceDescription) []Unsubscribe {
	var unsubs []Unsubscribe
	desc.EachProperty(func(nodeID, propID HomieID, prop *PropertyDescription) bool {
		ref := NewPropertyRef(device.Domain, device.ID, nodeID, propID)
		unsubs = append(unsubs,
			Unsubscribe{Topic: ref.Topic()},
			Unsubscribe{Topic: ref.AttributeTopic(AttrTarget)},
		)
		return true
	})
	return unsubs
}

// SetCommand generates the /set publish that asks a device to change a
// settable property. Set commands are never retained.
func (c *ControllerProtocol) SetCommand(prop PropertyRef, value HomieValue) Publish {
	return Publish{
		Topic:   prop.AttributeTopic(SetSuffix),
		Payload: WirePayload(value),
		QoS:     QoSExactlyOnce,
	}
}

// SendBroadcast generates a domain-wide broadcast publish.
func (c *ControllerProtocol) SendBroadcast(domain HomieDomain, subtopic, message string) Publish {
	return Publish{
		Topic:   NewTopicBuilder(domain).Add(BroadcastSegment).Add(subtopic).String(),
		Payload: StringPayload(message),
		QoS:     QoSExactlyOnce,
	}
}

// SubscribeBroadcast subscribes to all broadcast traffic in the domain.
func (c *ControllerProtocol) SubscribeBroadcast(domain HomieDomain) []Subscription {
	return []Subscription{{
		Topic: NewTopicBuilder(domain).Add(BroadcastSegment).Add("#").String(),
		QoS:   QoSExactlyOnce,
	}}
}

// UnsubscribeBroadcast mirrors SubscribeBroadcast.
func (c *ControllerProtocol) UnsubscribeBroadcast(domain HomieDomain) []Unsubscribe {
	return []Unsubscribe{{
		Topic: NewTopicBuilder(domain).Add(BroadcastSegment).Add("#").String(),
	}}
}

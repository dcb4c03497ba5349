package homie5

import "fmt"

// DeviceProtocol generates the wire actions a device side implementation
// needs: state, description, value, log and alert publishes plus the /set
// subscriptions. It holds no mutable session state and performs no I/O;
// every method is a pure function of its inputs.
//
// A protocol instance is bound to one device id. Child devices in a device
// tree share the root's protocol via ForChild; the *ForID variants let a
// root publish on behalf of its children.
type DeviceProtocol struct {
	ref     DeviceRef
	isChild bool
}

// NewDeviceProtocol creates the protocol for a root device and the last
// will its MQTT connection must register, so consumers see $state = "lost"
// after an unclean disconnect.
func NewDeviceProtocol(domain HomieDomain, deviceID HomieID) (*DeviceProtocol, LastWill) {
	ref := NewDeviceRef(domain, deviceID)
	will := LastWill{
		Topic:   ref.AttributeTopic(AttrState),
		Message: []byte(StatusLost.String()),
		QoS:     QoSAtLeastOnce,
		Retain:  true,
	}
	return &DeviceProtocol{ref: ref}, will
}

// ForChild derives a protocol bound to a child device id in the same
// domain. Child devices register no own last will: a lost root implies the
// whole tree is lost.
func (p *DeviceProtocol) ForChild(deviceID HomieID) *DeviceProtocol {
	return &DeviceProtocol{ref: NewDeviceRef(p.ref.Domain, deviceID), isChild: true}
}

// DeviceRef returns the ref the protocol is bound to.
func (p *DeviceProtocol) DeviceRef() DeviceRef { return p.ref }

// ID returns the bound device id.
func (p *DeviceProtocol) ID() HomieID { return p.ref.ID }

// Domain returns the homie domain the device operates in.
func (p *DeviceProtocol) Domain() HomieDomain { return p.ref.Domain }

// IsChild reports whether the protocol was derived for a child device.
func (p *DeviceProtocol) IsChild() bool { return p.isChild }

// checkRoot enforces the root/child consistency rules of a device tree: a
// root device's own description must not name a root, and a description
// published for another device must name this device as its root.
func (p *DeviceProtocol) checkRoot(deviceID HomieID, desc *DeviceDescription) error {
	if p.isChild {
		return nil
	}
	if p.ref.ID == deviceID {
		if desc.Root != nil {
			return ErrNonEmptyRootForRootDevice
		}
		return nil
	}
	if desc.Root == nil || *desc.Root != p.ref.ID {
		return ErrRootMismatch
	}
	return nil
}

// PublishState generates the retained $state publish.
func (p *DeviceProtocol) PublishState(state HomieDeviceStatus) Publish {
	return p.PublishStateForID(p.ref.ID, state)
}

// PublishStateForID generates the $state publish for another device id in
// the tree.
func (p *DeviceProtocol) PublishStateForID(deviceID HomieID, state HomieDeviceStatus) Publish {
	ref := NewDeviceRef(p.ref.Domain, deviceID)
	return Publish{
		Topic:   ref.AttributeTopic(AttrState),
		Payload: []byte(state.String()),
		QoS:     QoSExactlyOnce,
		Retain:  true,
	}
}

// PublishDescription generates the retained $description publish, encoding
// the description document into its canonical wire form.
func (p *DeviceProtocol) PublishDescription(desc *DeviceDescription) (Publish, error) {
	return p.PublishDescriptionForID(p.ref.ID, desc)
}

// PublishDescriptionForID generates the $description publish for another
// device id in the tree.
func (p *DeviceProtocol) PublishDescriptionForID(deviceID HomieID, desc *DeviceDescription) (Publish, error) {
	if err := p.checkRoot(deviceID, desc); err != nil {
		return Publish{}, err
	}
	payload, err := desc.Marshal()
	if err != nil {
		return Publish{}, err
	}
	ref := NewDeviceRef(p.ref.Domain, deviceID)
	return Publish{
		Topic:   ref.AttributeTopic(AttrDescription),
		Payload: payload,
		QoS:     QoSExactlyOnce,
		Retain:  true,
	}, nil
}

// PublishValue generates a property value publish. The value string is
// encoded with the empty-string-as-zero-byte rule.
func (p *DeviceProtocol) PublishValue(nodeID, propID HomieID, value string, retain bool) Publish {
	return p.PublishValueForID(p.ref.ID, nodeID, propID, value, retain)
}

// PublishValueForID generates a property value publish for another device
// id in the tree.
func (p *DeviceProtocol) PublishValueForID(deviceID, nodeID, propID HomieID, value string, retain bool) Publish {
	ref := NewPropertyRef(p.ref.Domain, deviceID, nodeID, propID)
	return Publish{
		Topic:   ref.Topic(),
		Payload: StringPayload(value),
		QoS:     QoSExactlyOnce,
		Retain:  retain,
	}
}

// PublishTarget generates a property $target publish announcing the desired
// end state of a property transition.
func (p *DeviceProtocol) PublishTarget(nodeID, propID HomieID, target string, retain bool) Publish {
	return p.PublishTargetForID(p.ref.ID, nodeID, propID, target, retain)
}

// PublishTargetForID generates a $target publish for another device id in
// the tree.
func (p *DeviceProtocol) PublishTargetForID(deviceID, nodeID, propID HomieID, target string, retain bool) Publish {
	ref := NewPropertyRef(p.ref.Domain, deviceID, nodeID, propID)
	return Publish{
		Topic:   ref.AttributeTopic(AttrTarget),
		Payload: StringPayload(target),
		QoS:     QoSExactlyOnce,
		Retain:  retain,
	}
}

// PublishLog generates a leveled $log publish.
func (p *DeviceProtocol) PublishLog(level DeviceLogLevel, msg string) Publish {
	return p.PublishLogForID(p.ref.ID, level, msg)
}

// PublishLogForID generates a $log publish for another device id in the
// tree.
func (p *DeviceProtocol) PublishLogForID(deviceID HomieID, level DeviceLogLevel, msg string) Publish {
	ref := NewDeviceRef(p.ref.Domain, deviceID)
	return Publish{
		Topic:   ref.AttributeTopic(AttrLog) + "/" + level.String(),
		Payload: []byte(msg),
		QoS:     QoSAtLeastOnce,
		Retain:  true,
	}
}

// PublishAlert generates an $alert publish. Publishing an empty message
// clears the alert.
func (p *DeviceProtocol) PublishAlert(alertID HomieID, msg string) Publish {
	return p.PublishAlertForID(p.ref.ID, alertID, msg)
}

// PublishAlertForID generates an $alert publish for another device id in
// the tree.
func (p *DeviceProtocol) PublishAlertForID(deviceID, alertID HomieID, msg string) Publish {
	ref := NewDeviceRef(p.ref.Domain, deviceID)
	return Publish{
		Topic:   fmt.Sprintf("%s/%s", ref.AttributeTopic(AttrAlert), alertID),
		Payload: []byte(msg),
		QoS:     QoSAtLeastOnce,
		Retain:  true,
	}
}

// SubscribeProps generates one /set subscription per settable property, in
// deterministic description order.
func (p *DeviceProtocol) SubscribeProps(desc *DeviceDescription) ([]Subscription, error) {
	return p.SubscribePropsForID(p.ref.ID, desc)
}

// SubscribePropsForID generates the /set subscriptions for another device
// id in the tree.
func (p *DeviceProtocol) SubscribePropsForID(deviceID HomieID, desc *DeviceDescription) ([]Subscription, error) {
	if err := p.checkRoot(deviceID, desc); err != nil {
		return nil, err
	}
	var subs []Subscription
	desc.EachProperty(func(nodeID, propID HomieID, prop *PropertyDescription) bool {
		if !prop.Settable {
			return true
		}
		ref := NewPropertyRef(p.ref.Domain, deviceID, nodeID, propID)
		subs = append(subs, Subscription{
			Topic: ref.AttributeTopic(SetSuffix),
			QoS:   QoSExactlyOnce,
		})
		return true
	})
	return subs, nil
}

// UnsubscribeProps generates the unsubscribes mirroring SubscribeProps.
func (p *DeviceProtocol) UnsubscribeProps(desc *DeviceDescription) ([]Unsubscribe, error) {
	return p.UnsubscribePropsForID(p.ref.ID, desc)
}

// UnsubscribePropsForID generates the /set unsubscribes for another device
// id in the tree.
func (p *DeviceProtocol) UnsubscribePropsForID(deviceID HomieID, desc *DeviceDescription) ([]Unsubscribe, error) {
	if err := p.checkRoot(deviceID, desc); err != nil {
		return nil, err
	}
	var unsubs []Unsubscribe
	desc.EachProperty(func(nodeID, propID HomieID, prop *PropertyDescription) bool {
		if !prop.Settable {
			return true
		}
		ref := NewPropertyRef(p.ref.Domain, deviceID, nodeID, propID)
		unsubs = append(unsubs, Unsubscribe{Topic: ref.AttributeTopic(SetSuffix)})
		return true
	})
	return unsubs, nil
}

// RemoveDevice generates the tombstone publishes that clear every retained
// message of the device from the broker: the device attributes ($state
// first, per convention) followed by each retained property's value and
// $target topics.
func (p *DeviceProtocol) RemoveDevice(desc *DeviceDescription) ([]Publish, error) {
	return p.RemoveDeviceForID(p.ref.ID, desc)
}

// RemoveDeviceForID generates the removal publishes for another device id
// in the tree.
func (p *DeviceProtocol) RemoveDeviceForID(deviceID HomieID, desc *DeviceDescription) ([]Publish, error) {
	if err := p.checkRoot(deviceID, desc); err != nil {
		return nil, err
	}
	devRef := NewDeviceRef(p.ref.Domain, deviceID)
	var pubs []Publish
	for _, attr := range deviceAttributes {
		pubs = append(pubs, Publish{
			Topic:  devRef.AttributeTopic(attr),
			QoS:    QoSExactlyOnce,
			Retain: true,
		})
	}
	desc.EachProperty(func(nodeID, propID HomieID, prop *PropertyDescription) bool {
		if !prop.Retained {
			return true
		}
		ref := NewPropertyRef(p.ref.Domain, deviceID, nodeID, propID)
		pubs = append(pubs,
			Publish{Topic: ref.Topic(), QoS: QoSExactlyOnce, Retain: true},
			Publish{Topic: ref.AttributeTopic(AttrTarget), QoS: QoSExactlyOnce, Retain: true},
		)
		return true
	})
	return pubs, nil
}

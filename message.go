package homie5

import "fmt"

// Message is a decoded protocol event. Concrete types are DeviceStateMessage,
// DeviceDescriptionMessage, DeviceLogMessage, DeviceAlertMessage,
// PropertyValueMessage, PropertyTargetMessage, PropertySetMessage,
// BroadcastMessage and DeviceRemovalMessage.
type Message interface {
	message()
}

// DeviceStateMessage reports a device's $state attribute.
type DeviceStateMessage struct {
	Device DeviceRef
	State  HomieDeviceStatus
}

// DeviceDescriptionMessage carries a device's parsed $description document.
type DeviceDescriptionMessage struct {
	Device      DeviceRef
	Description *DeviceDescription
}

// DeviceLogMessage carries a $log entry. Level is LogLevelInfo for bare
// $log topics without a level segment.
type DeviceLogMessage struct {
	Device  DeviceRef
	Level   DeviceLogLevel
	Message string
}

// DeviceAlertMessage carries an $alert entry. An empty Message clears the
// alert.
type DeviceAlertMessage struct {
	Device  DeviceRef
	AlertID HomieID
	Message string
}

// PropertyValueMessage carries a property's published value. The value stays
// a raw string: typed conversion happens against the owning device
// description via ParseValue, which the decoder has no access to.
type PropertyValueMessage struct {
	Property PropertyRef
	Value    string
}

// PropertyTargetMessage carries a property's desired target state.
type PropertyTargetMessage struct {
	Property PropertyRef
	Target   string
}

// PropertySetMessage is a command to change a settable property.
type PropertySetMessage struct {
	Property PropertyRef
	Value    string
}

// BroadcastMessage is a domain-wide broadcast.
type BroadcastMessage struct {
	Domain   HomieDomain
	Subtopic string
	Data     string
}

// DeviceRemovalMessage reports that a device's retained $state was cleared,
// removing the device from the broker.
type DeviceRemovalMessage struct {
	Device DeviceRef
}

func (DeviceStateMessage) message()       {}
func (DeviceDescriptionMessage) message() {}
func (DeviceLogMessage) message()         {}
func (DeviceAlertMessage) message()       {}
func (PropertyValueMessage) message()     {}
func (PropertyTargetMessage) message()    {}
func (PropertySetMessage) message()       {}
func (BroadcastMessage) message()         {}
func (DeviceRemovalMessage) message()     {}

// ParseMQTTMessage decodes a raw MQTT message into a protocol event. The
// topic determines the event type; the payload is decoded as UTF-8 text and,
// where the topic prescribes it, parsed further ($state into a device
// status, $description into the description document).
//
// An empty payload on $state decodes as DeviceRemovalMessage.
func ParseMQTTMessage(topic string, payload []byte) (Message, error) {
	parsed, err := ParseTopic(topic)
	if err != nil {
		return nil, err
	}

	switch parsed.Kind {
	case TopicBroadcast:
		data, err := PayloadString(payload)
		if err != nil {
			return nil, err
		}
		return BroadcastMessage{Domain: parsed.Domain, Subtopic: parsed.Subtopic, Data: data}, nil

	case TopicDeviceState:
		if len(payload) == 0 {
			return DeviceRemovalMessage{Device: parsed.DeviceRef()}, nil
		}
		text, err := PayloadString(payload)
		if err != nil {
			return nil, err
		}
		state, err := ParseDeviceStatus(text)
		if err != nil {
			return nil, err
		}
		return DeviceStateMessage{Device: parsed.DeviceRef(), State: state}, nil

	case TopicDeviceDescription:
		desc, err := ParseDescription(payload)
		if err != nil {
			return nil, err
		}
		return DeviceDescriptionMessage{Device: parsed.DeviceRef(), Description: desc}, nil

	case TopicDeviceLog:
		text, err := PayloadString(payload)
		if err != nil {
			return nil, err
		}
		level := LogLevelInfo
		if parsed.HasLogLevel {
			level = parsed.LogLevel
		}
		return DeviceLogMessage{Device: parsed.DeviceRef(), Level: level, Message: text}, nil

	case TopicDeviceAlert:
		text, err := PayloadString(payload)
		if err != nil {
			return nil, err
		}
		return DeviceAlertMessage{Device: parsed.DeviceRef(), AlertID: parsed.AlertID, Message: text}, nil

	case TopicPropertyValue:
		text, err := PayloadString(payload)
		if err != nil {
			return nil, err
		}
		return PropertyValueMessage{Property: parsed.PropertyRef(), Value: text}, nil

	case TopicPropertyTarget:
		text, err := PayloadString(payload)
		if err != nil {
			return nil, err
		}
		return PropertyTargetMessage{Property: parsed.PropertyRef(), Target: text}, nil

	case TopicPropertySet:
		text, err := PayloadString(payload)
		if err != nil {
			return nil, err
		}
		return PropertySetMessage{Property: parsed.PropertyRef(), Value: text}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTopic, topic)
	}
}

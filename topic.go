package homie5

import (
	"fmt"
	"strings"
)

// ====================================================================
// Topic construction
// ====================================================================

// TopicBuilder assembles Homie topics segment by segment. Every topic starts
// with the homie domain followed by the protocol version segment.
type TopicBuilder struct {
	segments []string
}

// NewTopicBuilder starts a topic under the given domain:
// "<domain>/5".
func NewTopicBuilder(domain HomieDomain) *TopicBuilder {
	return &TopicBuilder{segments: []string{domain.String(), ProtocolVersion}}
}

// Add appends a raw topic segment.
func (t *TopicBuilder) Add(segment string) *TopicBuilder {
	t.segments = append(t.segments, segment)
	return t
}

// AddID appends a validated identifier as a topic segment.
func (t *TopicBuilder) AddID(id HomieID) *TopicBuilder {
	t.segments = append(t.segments, id.String())
	return t
}

// String joins the collected segments into the final topic.
func (t *TopicBuilder) String() string {
	return strings.Join(t.segments, "/")
}

// ====================================================================
// Topic parsing
// ====================================================================

// TopicKind classifies a parsed Homie topic.
type TopicKind int

const (
	// TopicDeviceState is <domain>/5/<device-id>/$state.
	TopicDeviceState TopicKind = iota
	// TopicDeviceDescription is <domain>/5/<device-id>/$description.
	TopicDeviceDescription
	// TopicDeviceLog is <domain>/5/<device-id>/$log or $log/<level>.
	TopicDeviceLog
	// TopicDeviceAlert is <domain>/5/<device-id>/$alert/<alert-id>.
	TopicDeviceAlert
	// TopicPropertyValue is <domain>/5/<device-id>/<node-id>/<property-id>.
	TopicPropertyValue
	// TopicPropertyTarget is the property value topic plus /$target.
	TopicPropertyTarget
	// TopicPropertySet is the property value topic plus /set.
	TopicPropertySet
	// TopicBroadcast is <domain>/5/$broadcast/<subtopic...>.
	TopicBroadcast
)

// String returns a human readable name for the topic kind.
func (k TopicKind) String() string {
	switch k {
	case TopicDeviceState:
		return "device-state"
	case TopicDeviceDescription:
		return "device-description"
	case TopicDeviceLog:
		return "device-log"
	case TopicDeviceAlert:
		return "device-alert"
	case TopicPropertyValue:
		return "property-value"
	case TopicPropertyTarget:
		return "property-target"
	case TopicPropertySet:
		return "property-set"
	case TopicBroadcast:
		return "broadcast"
	default:
		return fmt.Sprintf("TopicKind(%d)", int(k))
	}
}

// Topic is the structured form of a parsed Homie topic. Which fields are
// populated depends on Kind; String() reconstructs the exact original topic.
type Topic struct {
	Kind   TopicKind
	Domain HomieDomain

	// Device is set for every kind except TopicBroadcast.
	Device HomieID

	// Node and Property are set for the property kinds.
	Node     HomieID
	Property HomieID

	// AlertID is set for TopicDeviceAlert.
	AlertID HomieID

	// LogLevel is set for TopicDeviceLog when the topic carried an
	// explicit level segment ($log/<level>); HasLogLevel distinguishes
	// that from a bare $log topic.
	LogLevel    DeviceLogLevel
	HasLogLevel bool

	// Subtopic is set for TopicBroadcast and may itself contain slashes.
	Subtopic string
}

// ParseTopic splits an MQTT topic and classifies it against the Homie v5
// topic grammar. It validates the version segment, the domain and every
// identifier segment.
func ParseTopic(topic string) (Topic, error) {
	tokens := strings.Split(topic, "/")
	if len(tokens) < 4 {
		return Topic{}, fmt.Errorf("%w: %q has too few segments", ErrInvalidTopic, topic)
	}

	domain, err := NewDomain(tokens[0])
	if err != nil {
		return Topic{}, err
	}
	if tokens[1] != ProtocolVersion {
		return Topic{}, fmt.Errorf("%w: unsupported version segment %q", ErrInvalidTopic, tokens[1])
	}

	if tokens[2] == BroadcastSegment {
		return Topic{
			Kind:     TopicBroadcast,
			Domain:   domain,
			Subtopic: strings.Join(tokens[3:], "/"),
		}, nil
	}

	deviceID, err := NewID(tokens[2])
	if err != nil {
		return Topic{}, err
	}

	switch len(tokens) {
	case 4:
		switch tokens[3] {
		case AttrState:
			return Topic{Kind: TopicDeviceState, Domain: domain, Device: deviceID}, nil
		case AttrDescription:
			return Topic{Kind: TopicDeviceDescription, Domain: domain, Device: deviceID}, nil
		case AttrLog:
			return Topic{Kind: TopicDeviceLog, Domain: domain, Device: deviceID}, nil
		default:
			if strings.HasPrefix(tokens[3], "$") {
				return Topic{}, fmt.Errorf("%w: %q", ErrUnsupportedTopic, tokens[3])
			}
			return Topic{}, fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
		}
	case 5:
		switch tokens[3] {
		case AttrAlert:
			alertID, err := NewID(tokens[4])
			if err != nil {
				return Topic{}, err
			}
			return Topic{Kind: TopicDeviceAlert, Domain: domain, Device: deviceID, AlertID: alertID}, nil
		case AttrLog:
			level, err := ParseLogLevel(tokens[4])
			if err != nil {
				return Topic{}, err
			}
			return Topic{
				Kind: TopicDeviceLog, Domain: domain, Device: deviceID,
				LogLevel: level, HasLogLevel: true,
			}, nil
		default:
			nodeID, err := NewID(tokens[3])
			if err != nil {
				return Topic{}, err
			}
			propID, err := NewID(tokens[4])
			if err != nil {
				return Topic{}, err
			}
			return Topic{
				Kind: TopicPropertyValue, Domain: domain, Device: deviceID,
				Node: nodeID, Property: propID,
			}, nil
		}
	case 6:
		nodeID, err := NewID(tokens[3])
		if err != nil {
			return Topic{}, err
		}
		propID, err := NewID(tokens[4])
		if err != nil {
			return Topic{}, err
		}
		base := Topic{Domain: domain, Device: deviceID, Node: nodeID, Property: propID}
		switch tokens[5] {
		case SetSuffix:
			base.Kind = TopicPropertySet
			return base, nil
		case AttrTarget:
			base.Kind = TopicPropertyTarget
			return base, nil
		default:
			if strings.HasPrefix(tokens[5], "$") {
				return Topic{}, fmt.Errorf("%w: %q", ErrUnsupportedTopic, tokens[5])
			}
			return Topic{}, fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
		}
	default:
		return Topic{}, fmt.Errorf("%w: %q has too many segments", ErrInvalidTopic, topic)
	}
}

// String reconstructs the exact MQTT topic the Topic was parsed from.
func (t Topic) String() string {
	b := NewTopicBuilder(t.Domain)
	switch t.Kind {
	case TopicBroadcast:
		return b.Add(BroadcastSegment).Add(t.Subtopic).String()
	case TopicDeviceState:
		return b.AddID(t.Device).Add(AttrState).String()
	case TopicDeviceDescription:
		return b.AddID(t.Device).Add(AttrDescription).String()
	case TopicDeviceLog:
		b.AddID(t.Device).Add(AttrLog)
		if t.HasLogLevel {
			b.Add(t.LogLevel.String())
		}
		return b.String()
	case TopicDeviceAlert:
		return b.AddID(t.Device).Add(AttrAlert).AddID(t.AlertID).String()
	case TopicPropertyValue:
		return b.AddID(t.Device).AddID(t.Node).AddID(t.Property).String()
	case TopicPropertyTarget:
		return b.AddID(t.Device).AddID(t.Node).AddID(t.Property).Add(AttrTarget).String()
	case TopicPropertySet:
		return b.AddID(t.Device).AddID(t.Node).AddID(t.Property).Add(SetSuffix).String()
	default:
		return b.String()
	}
}

// DeviceRef returns the ref of the device the topic addresses. The zero
// DeviceRef is returned for broadcast topics.
func (t Topic) DeviceRef() DeviceRef {
	if t.Kind == TopicBroadcast {
		return DeviceRef{}
	}
	return DeviceRef{Domain: t.Domain, ID: t.Device}
}

// PropertyRef returns the ref of the property the topic addresses. Only
// meaningful for the property kinds.
func (t Topic) PropertyRef() PropertyRef {
	return NewPropertyRef(t.Domain, t.Device, t.Node, t.Property)
}

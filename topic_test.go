package homie5

import (
	"errors"
	"testing"
)

func TestParseTopicRoundTrip(t *testing.T) {
	tests := []struct {
		topic string
		kind  TopicKind
	}{
		{"homie/5/device-1/$state", TopicDeviceState},
		{"homie/5/device-1/$description", TopicDeviceDescription},
		{"homie/5/device-1/$log", TopicDeviceLog},
		{"homie/5/device-1/$log/warn", TopicDeviceLog},
		{"homie/5/device-1/$alert/overheat", TopicDeviceAlert},
		{"homie/5/device-1/node-1/prop-1", TopicPropertyValue},
		{"homie/5/device-1/node-1/prop-1/$target", TopicPropertyTarget},
		{"homie/5/device-1/node-1/prop-1/set", TopicPropertySet},
		{"homie/5/$broadcast/all-clear", TopicBroadcast},
		{"homie/5/$broadcast/zone-1/lights", TopicBroadcast},
		{"custom-root/5/device-1/$state", TopicDeviceState},
	}
	for _, tt := range tests {
		parsed, err := ParseTopic(tt.topic)
		if err != nil {
			t.Errorf("ParseTopic(%q) unexpected error: %v", tt.topic, err)
			continue
		}
		if parsed.Kind != tt.kind {
			t.Errorf("ParseTopic(%q).Kind = %v, want %v", tt.topic, parsed.Kind, tt.kind)
		}
		if got := parsed.String(); got != tt.topic {
			t.Errorf("round trip %q: got %q", tt.topic, got)
		}
	}
}

func TestParseTopicFields(t *testing.T) {
	parsed, err := ParseTopic("homie/5/device-1/node-1/prop-1/set")
	if err != nil {
		t.Fatalf("ParseTopic: %v", err)
	}
	ref := parsed.PropertyRef()
	if ref.DeviceID() != "device-1" || ref.NodeID() != "node-1" || ref.PropID() != "prop-1" {
		t.Errorf("PropertyRef = %+v", ref)
	}
	if ref.DeviceRef() != (DeviceRef{Domain: DefaultDomain, ID: "device-1"}) {
		t.Errorf("DeviceRef = %+v", ref.DeviceRef())
	}

	logTopic, err := ParseTopic("homie/5/device-1/$log/error")
	if err != nil {
		t.Fatalf("ParseTopic: %v", err)
	}
	if !logTopic.HasLogLevel || logTopic.LogLevel != LogLevelError {
		t.Errorf("log topic = %+v, want explicit error level", logTopic)
	}

	bare, err := ParseTopic("homie/5/device-1/$log")
	if err != nil {
		t.Fatalf("ParseTopic: %v", err)
	}
	if bare.HasLogLevel {
		t.Errorf("bare $log topic should not carry a level: %+v", bare)
	}

	bc, err := ParseTopic("homie/5/$broadcast/zone-1/lights")
	if err != nil {
		t.Fatalf("ParseTopic: %v", err)
	}
	if bc.Subtopic != "zone-1/lights" {
		t.Errorf("Subtopic = %q, want %q", bc.Subtopic, "zone-1/lights")
	}
}

func TestParseTopicErrors(t *testing.T) {
	tests := []struct {
		topic string
		want  error
	}{
		{"homie/5/device-1", ErrInvalidTopic},
		{"homie/5", ErrInvalidTopic},
		{"homie/4/device-1/$state", ErrInvalidTopic},
		{"homie/5/device-1/$unknown", ErrUnsupportedTopic},
		{"homie/5/device-1/node-1/prop-1/$unknown", ErrUnsupportedTopic},
		{"homie/5/device-1/node-1/prop-1/other", ErrInvalidTopic},
		{"homie/5/device-1/node-1/prop-1/set/extra", ErrInvalidTopic},
		{"homie/5/Device/$state", ErrInvalidTopic},
		{"homie/5/device-1/$log/trace", ErrInvalidLogLevel},
		{"homie/5/device-1/$alert/Bad ID", ErrInvalidTopic},
		{"", ErrInvalidTopic},
	}
	for _, tt := range tests {
		if _, err := ParseTopic(tt.topic); !errors.Is(err, tt.want) {
			t.Errorf("ParseTopic(%q) = %v, want %v", tt.topic, err, tt.want)
		}
	}
}

func TestTopicBuilder(t *testing.T) {
	got := NewTopicBuilder(DefaultDomain).AddID("device-1").Add(AttrState).String()
	if got != "homie/5/device-1/$state" {
		t.Errorf("builder topic = %q", got)
	}
}

func TestRefTopics(t *testing.T) {
	prop := NewPropertyRef(DefaultDomain, "dev", "node", "prop")
	if got := prop.Topic(); got != "homie/5/dev/node/prop" {
		t.Errorf("PropertyRef.Topic() = %q", got)
	}
	if got := prop.AttributeTopic(AttrTarget); got != "homie/5/dev/node/prop/$target" {
		t.Errorf("PropertyRef.AttributeTopic() = %q", got)
	}
	dev := NewDeviceRef(DefaultDomain, "dev")
	if got := dev.AttributeTopic(AttrDescription); got != "homie/5/dev/$description" {
		t.Errorf("DeviceRef.AttributeTopic() = %q", got)
	}
	node := NewNodeRef(DefaultDomain, "dev", "node")
	if got := node.Topic(); got != "homie/5/dev/node" {
		t.Errorf("NodeRef.Topic() = %q", got)
	}
}

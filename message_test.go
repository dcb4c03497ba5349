package homie5

import (
	"errors"
	"testing"
)

func TestParseMQTTMessageDeviceState(t *testing.T) {
	msg, err := ParseMQTTMessage("homie/5/device-1/$state", []byte("ready"))
	if err != nil {
		t.Fatalf("ParseMQTTMessage: %v", err)
	}
	state, ok := msg.(DeviceStateMessage)
	if !ok {
		t.Fatalf("got %T", msg)
	}
	if state.Device != NewDeviceRef(DefaultDomain, "device-1") || state.State != StatusReady {
		t.Errorf("state = %+v", state)
	}

	if _, err := ParseMQTTMessage("homie/5/device-1/$state", []byte("online")); !errors.Is(err, ErrInvalidDeviceStatus) {
		t.Errorf("bad status: got %v", err)
	}
}

func TestParseMQTTMessageDeviceRemoval(t *testing.T) {
	msg, err := ParseMQTTMessage("homie/5/device-1/$state", nil)
	if err != nil {
		t.Fatalf("ParseMQTTMessage: %v", err)
	}
	removal, ok := msg.(DeviceRemovalMessage)
	if !ok {
		t.Fatalf("empty $state payload should decode as removal, got %T", msg)
	}
	if removal.Device.ID != "device-1" {
		t.Errorf("removal = %+v", removal)
	}
}

func TestParseMQTTMessageDescription(t *testing.T) {
	desc := testDescription()
	payload, err := desc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	msg, err := ParseMQTTMessage("homie/5/device-1/$description", payload)
	if err != nil {
		t.Fatalf("ParseMQTTMessage: %v", err)
	}
	dm, ok := msg.(DeviceDescriptionMessage)
	if !ok {
		t.Fatalf("got %T", msg)
	}
	if dm.Description.Version != desc.Version {
		t.Errorf("version = %d", dm.Description.Version)
	}

	if _, err := ParseMQTTMessage("homie/5/device-1/$description", []byte("{")); !errors.Is(err, ErrInvalidDescription) {
		t.Errorf("bad description: got %v", err)
	}
}

func TestParseMQTTMessageLogAndAlert(t *testing.T) {
	msg, err := ParseMQTTMessage("homie/5/device-1/$log/error", []byte("sensor failure"))
	if err != nil {
		t.Fatalf("ParseMQTTMessage: %v", err)
	}
	logMsg := msg.(DeviceLogMessage)
	if logMsg.Level != LogLevelError || logMsg.Message != "sensor failure" {
		t.Errorf("log = %+v", logMsg)
	}

	// A bare $log topic defaults to the info level.
	msg, err = ParseMQTTMessage("homie/5/device-1/$log", []byte("booting"))
	if err != nil {
		t.Fatalf("ParseMQTTMessage: %v", err)
	}
	if msg.(DeviceLogMessage).Level != LogLevelInfo {
		t.Errorf("bare log level = %v", msg.(DeviceLogMessage).Level)
	}

	msg, err = ParseMQTTMessage("homie/5/device-1/$alert/overheat", []byte("temperature critical"))
	if err != nil {
		t.Fatalf("ParseMQTTMessage: %v", err)
	}
	alert := msg.(DeviceAlertMessage)
	if alert.AlertID != "overheat" || alert.Message != "temperature critical" {
		t.Errorf("alert = %+v", alert)
	}
}

func TestParseMQTTMessagePropertyTraffic(t *testing.T) {
	wantRef := NewPropertyRef(DefaultDomain, "device-1", "engine", "speed")

	tests := []struct {
		topic string
		check func(t *testing.T, msg Message)
	}{
		{"homie/5/device-1/engine/speed", func(t *testing.T, msg Message) {
			v := msg.(PropertyValueMessage)
			if v.Property != wantRef || v.Value != "120" {
				t.Errorf("value = %+v", v)
			}
		}},
		{"homie/5/device-1/engine/speed/$target", func(t *testing.T, msg Message) {
			v := msg.(PropertyTargetMessage)
			if v.Property != wantRef || v.Target != "120" {
				t.Errorf("target = %+v", v)
			}
		}},
		{"homie/5/device-1/engine/speed/set", func(t *testing.T, msg Message) {
			v := msg.(PropertySetMessage)
			if v.Property != wantRef || v.Value != "120" {
				t.Errorf("set = %+v", v)
			}
		}},
	}
	for _, tt := range tests {
		msg, err := ParseMQTTMessage(tt.topic, []byte("120"))
		if err != nil {
			t.Errorf("ParseMQTTMessage(%q): %v", tt.topic, err)
			continue
		}
		tt.check(t, msg)
	}
}

func TestParseMQTTMessageBroadcast(t *testing.T) {
	msg, err := ParseMQTTMessage("homie/5/$broadcast/zone-1/alarm", []byte("armed"))
	if err != nil {
		t.Fatalf("ParseMQTTMessage: %v", err)
	}
	bc := msg.(BroadcastMessage)
	if bc.Domain != DefaultDomain || bc.Subtopic != "zone-1/alarm" || bc.Data != "armed" {
		t.Errorf("broadcast = %+v", bc)
	}
}

func TestParseMQTTMessageZeroBytePayload(t *testing.T) {
	msg, err := ParseMQTTMessage("homie/5/device-1/engine/speed", []byte{0})
	if err != nil {
		t.Fatalf("ParseMQTTMessage: %v", err)
	}
	if msg.(PropertyValueMessage).Value != "" {
		t.Errorf("zero byte should decode as empty string, got %q", msg.(PropertyValueMessage).Value)
	}
}

func TestParseMQTTMessageBadTopics(t *testing.T) {
	bad := []string{
		"homie/5/device-1",
		"homie/4/device-1/$state",
		"homie/5/device-1/$bogus",
	}
	for _, topic := range bad {
		if _, err := ParseMQTTMessage(topic, []byte("x")); err == nil {
			t.Errorf("ParseMQTTMessage(%q) should fail", topic)
		}
	}
}

package homie5

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDeviceProtocolLastWill(t *testing.T) {
	proto, will := NewDeviceProtocol(DefaultDomain, "car")
	if will.Topic != "homie/5/car/$state" {
		t.Errorf("will topic = %q", will.Topic)
	}
	if string(will.Message) != "lost" || !will.Retain || will.QoS != QoSAtLeastOnce {
		t.Errorf("will = %+v", will)
	}
	if proto.ID() != "car" || proto.Domain() != DefaultDomain || proto.IsChild() {
		t.Errorf("proto = %+v", proto)
	}
}

func TestDevicePublishSteps(t *testing.T) {
	steps := DevicePublishSteps()
	want := []DevicePublishStep{
		StepDeviceStateInit,
		StepDeviceDescription,
		StepPropertyValues,
		StepSubscribeProperties,
		StepDeviceStateReady,
	}
	if len(steps) != len(want) {
		t.Fatalf("steps = %v", steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("steps = %v, want %v", steps, want)
		}
	}
	// Replays yield the same fixed sequence.
	again := DevicePublishSteps()
	for i := range want {
		if again[i] != want[i] {
			t.Fatal("sequence must be restartable")
		}
	}

	if n := len(DeviceReconfigureSteps()); n != 7 {
		t.Errorf("reconfigure steps = %d", n)
	}
	if n := len(DeviceDisconnectSteps()); n != 2 {
		t.Errorf("disconnect steps = %d", n)
	}
}

func TestPublishState(t *testing.T) {
	proto, _ := NewDeviceProtocol(DefaultDomain, "car")
	pub := proto.PublishState(StatusInit)
	if pub.Topic != "homie/5/car/$state" || string(pub.Payload) != "init" {
		t.Errorf("publish = %+v", pub)
	}
	if !pub.Retain || pub.QoS != QoSExactlyOnce {
		t.Errorf("publish flags = %+v", pub)
	}
}

func TestPublishDescriptionRootChecks(t *testing.T) {
	proto, _ := NewDeviceProtocol(DefaultDomain, "car")

	// Root devices must not declare a root attribute.
	bad := NewDeviceDescriptionBuilder().Root("other").Build()
	if _, err := proto.PublishDescription(bad); !errors.Is(err, ErrNonEmptyRootForRootDevice) {
		t.Errorf("got %v", err)
	}

	// Publishing for a child requires the description to name this root.
	orphan := NewDeviceDescriptionBuilder().Build()
	if _, err := proto.PublishDescriptionForID("child", orphan); !errors.Is(err, ErrRootMismatch) {
		t.Errorf("got %v", err)
	}
	wrongRoot := NewDeviceDescriptionBuilder().Root("someone-else").Build()
	if _, err := proto.PublishDescriptionForID("child", wrongRoot); !errors.Is(err, ErrRootMismatch) {
		t.Errorf("got %v", err)
	}

	child := NewDeviceDescriptionBuilder().Root("car").Build()
	pub, err := proto.PublishDescriptionForID("child", child)
	if err != nil {
		t.Fatalf("PublishDescriptionForID: %v", err)
	}
	if pub.Topic != "homie/5/child/$description" {
		t.Errorf("topic = %q", pub.Topic)
	}

	ok := NewDeviceDescriptionBuilder().Name("Car").Build()
	pub, err = proto.PublishDescription(ok)
	if err != nil {
		t.Fatalf("PublishDescription: %v", err)
	}
	if !strings.Contains(string(pub.Payload), `"homie":"5.0"`) {
		t.Errorf("payload = %s", pub.Payload)
	}
	if !pub.Retain || pub.QoS != QoSExactlyOnce {
		t.Errorf("flags = %+v", pub)
	}
}

func TestChildProtocolSkipsRootChecks(t *testing.T) {
	proto, _ := NewDeviceProtocol(DefaultDomain, "car")
	childProto := proto.ForChild("child")
	if !childProto.IsChild() {
		t.Fatal("ForChild should mark the protocol as child")
	}
	desc := NewDeviceDescriptionBuilder().Root("car").Build()
	if _, err := childProto.PublishDescription(desc); err != nil {
		t.Errorf("child publish: %v", err)
	}
}

func TestPublishValueAndTarget(t *testing.T) {
	proto, _ := NewDeviceProtocol(DefaultDomain, "car")
	pub := proto.PublishValue("engine", "speed", "120", true)
	if pub.Topic != "homie/5/car/engine/speed" || string(pub.Payload) != "120" || !pub.Retain {
		t.Errorf("value = %+v", pub)
	}

	target := proto.PublishTarget("engine", "speed", "150", true)
	if target.Topic != "homie/5/car/engine/speed/$target" || string(target.Payload) != "150" {
		t.Errorf("target = %+v", target)
	}

	// Empty values are published as the zero-byte marker.
	empty := proto.PublishValue("engine", "label", "", true)
	if len(empty.Payload) != 1 || empty.Payload[0] != 0 {
		t.Errorf("empty payload = %v", empty.Payload)
	}
}

func TestPublishLogAndAlert(t *testing.T) {
	proto, _ := NewDeviceProtocol(DefaultDomain, "car")
	logPub := proto.PublishLog(LogLevelWarn, "battery low")
	if logPub.Topic != "homie/5/car/$log/warn" || string(logPub.Payload) != "battery low" {
		t.Errorf("log = %+v", logPub)
	}
	if logPub.QoS != QoSAtLeastOnce {
		t.Errorf("log qos = %v", logPub.QoS)
	}

	alert := proto.PublishAlert("overheat", "engine too hot")
	if alert.Topic != "homie/5/car/$alert/overheat" || string(alert.Payload) != "engine too hot" {
		t.Errorf("alert = %+v", alert)
	}
}

func TestSubscribePropsSettableOnly(t *testing.T) {
	proto, _ := NewDeviceProtocol(DefaultDomain, "car")
	subs, err := proto.SubscribeProps(testDescription())
	if err != nil {
		t.Fatalf("SubscribeProps: %v", err)
	}
	// speed, color and power are settable; temperature is not.
	want := []string{
		"homie/5/car/engine/speed/set",
		"homie/5/car/lights/color/set",
		"homie/5/car/lights/power/set",
	}
	if len(subs) != len(want) {
		t.Fatalf("subs = %+v", subs)
	}
	for i, sub := range subs {
		if sub.Topic != want[i] {
			t.Errorf("subs[%d] = %q, want %q", i, sub.Topic, want[i])
		}
		if sub.QoS != QoSExactlyOnce {
			t.Errorf("subs[%d] qos = %v", i, sub.QoS)
		}
	}

	unsubs, err := proto.UnsubscribeProps(testDescription())
	if err != nil {
		t.Fatalf("UnsubscribeProps: %v", err)
	}
	if len(unsubs) != len(want) {
		t.Fatalf("unsubs = %+v", unsubs)
	}
	for i, unsub := range unsubs {
		if unsub.Topic != want[i] {
			t.Errorf("unsubs[%d] = %q", i, unsub.Topic)
		}
	}
}

func TestRemoveDevice(t *testing.T) {
	proto, _ := NewDeviceProtocol(DefaultDomain, "car")
	pubs, err := proto.RemoveDevice(testDescription())
	if err != nil {
		t.Fatalf("RemoveDevice: %v", err)
	}

	// Removal starts by clearing $state.
	if pubs[0].Topic != "homie/5/car/$state" {
		t.Fatalf("first removal topic = %q", pubs[0].Topic)
	}
	for _, pub := range pubs {
		if len(pub.Payload) != 0 {
			t.Errorf("removal publish %q carries payload", pub.Topic)
		}
		if !pub.Retain {
			t.Errorf("removal publish %q not retained", pub.Topic)
		}
	}

	// The non-retained color property is not cleared; retained ones are.
	topics := make(map[string]bool, len(pubs))
	for _, pub := range pubs {
		topics[pub.Topic] = true
	}
	if topics["homie/5/car/lights/color"] {
		t.Error("non-retained property should not be cleared")
	}
	if !topics["homie/5/car/engine/speed"] || !topics["homie/5/car/engine/speed/$target"] {
		t.Error("retained property value and target should be cleared")
	}
	if !topics["homie/5/car/$description"] || !topics["homie/5/car/$log"] || !topics["homie/5/car/$alert"] {
		t.Error("device attributes should be cleared")
	}
}

package homie5

// QoS is the MQTT quality of service level for generated actions. The
// numeric values match the MQTT wire encoding so transports can pass them
// through directly.
type QoS byte

const (
	QoSAtMostOnce  QoS = 0
	QoSAtLeastOnce QoS = 1
	QoSExactlyOnce QoS = 2
)

// Publish is a single message the caller's transport must publish. All
// protocol operations produce these records instead of performing I/O.
type Publish struct {
	Topic   string
	Payload []byte
	QoS     QoS
	Retain  bool
}

// Subscription is a single topic filter the caller's transport must
// subscribe to.
type Subscription struct {
	Topic string
	QoS   QoS
}

// Unsubscribe names a topic filter the caller's transport must unsubscribe
// from.
type Unsubscribe struct {
	Topic string
}

// LastWill is the MQTT testament a root device must register with its
// broker connection so consumers see the device as lost on an unclean
// disconnect.
type LastWill struct {
	Topic   string
	Message []byte
	QoS     QoS
	Retain  bool
}

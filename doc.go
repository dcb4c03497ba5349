// Package homie5 implements the Homie v5 IoT convention as a pure,
// transport-agnostic protocol core.
//
// The package turns raw publish/subscribe primitives (topic + payload) into
// strongly typed protocol events, and turns typed device state into the exact
// set of Publish/Subscription/Unsubscribe records the convention requires.
// It performs no network I/O itself: the caller owns the MQTT client, the
// event loop, reconnection and every piece of mutable session state (device
// registry, current property values, discovery progress).
//
// # Architecture
//
// The package is layered bottom-up:
//
//   - Topic grammar and identifiers: HomieDomain, HomieID, DeviceRef,
//     NodeRef, PropertyRef, ParseTopic
//   - Value model: HomieValue with per-datatype parsing and validation
//   - Device description model: DeviceDescription and its builders
//   - Message decoder: ParseMQTTMessage producing the Message sum type
//   - Device protocol: DeviceProtocol and the publish step sequences
//   - Controller protocol: ControllerProtocol and the discovery
//     subscription sets
//
// Every exposed operation is a pure function of its inputs. Identifiers and
// descriptions are immutable after construction and safe to share across
// goroutines without synchronisation.
//
// # Usage
//
// A device announces itself by walking the publish steps and handing each
// generated record to its transport:
//
//	proto, will := homie5.NewDeviceProtocol(homie5.DefaultDomain, deviceID)
//	for _, step := range homie5.DevicePublishSteps() {
//	    switch step {
//	    case homie5.StepDeviceStateInit:
//	        transport.Publish(proto.PublishState(homie5.StatusInit))
//	    case homie5.StepDeviceDescription:
//	        pub, err := proto.PublishDescription(desc)
//	        ...
//	    }
//	}
//
// A controller starts discovery with ControllerProtocol.DiscoverDevices and
// feeds every incoming message through ParseMQTTMessage.
//
// # Related packages
//
//   - internal/infrastructure/mqtt — paho-based transport adapter used by
//     the demo binaries
//   - cmd/homie5-device, cmd/homie5-controller — runnable examples
package homie5
